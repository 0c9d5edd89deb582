package admin

import (
	"net/http"

	"restriction-app/database"
	"restriction-app/internal/domain/billing"
	"restriction-app/internal/domain/roles"
	"restriction-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Lastname           string   `json:"lastname"`
	Email              string   `json:"email"`
	IsVerified         bool     `json:"is_verified"`
	Roles              []string `json:"roles"`
	BypassRestrictions bool     `json:"bypass_restrictions"`
	StripeCustomerID   *string  `json:"stripe_customer_id,omitempty"`
	StripeSubID        *string  `json:"stripe_subscription_id,omitempty"`
}

func buildAdminUser(u users.User) AdminUser {
	return AdminUser{
		ID:                 u.ID,
		Name:               u.Name,
		Lastname:           u.Lastname,
		Email:              u.Email,
		IsVerified:         u.IsVerified,
		Roles:              u.RoleNames(),
		BypassRestrictions: u.BypassRestrictions,
		StripeCustomerID:   u.StripeCustomerID,
		StripeSubID:        u.SubscriptionId,
	}
}

func ListAllUsers(c *gin.Context) {
	var list []users.User
	err := database.DB.Preload("Roles").Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	adminUsers := make([]AdminUser, 0, len(list))
	for _, u := range list {
		adminUsers = append(adminUsers, buildAdminUser(u))
	}

	c.JSON(http.StatusOK, adminUsers)
}

func GetUserDetails(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.Preload("Roles").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.Preload("RolePlan").Where("user_id = ?", userID).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     buildAdminUser(user),
		"payments": payments,
	})
}

// PUT /admin/user/:id/roles
// Replaces the user's manually assigned roles. Membership-granted
// roles are owned by the webhook flow and left untouched.
func SetUserRoles(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var body struct {
		Roles []string `json:"roles"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	catalog := roles.Active()
	for _, r := range body.Roles {
		if !roles.Known(catalog, r) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown role: " + r})
			return
		}
	}

	if err := database.DB.
		Where("user_id = ? AND source = ?", user.ID, users.RoleSourceManual).
		Delete(&users.UserRole{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear roles"})
		return
	}
	for _, r := range body.Roles {
		assignment := users.UserRole{UserID: user.ID, Role: r, Source: users.RoleSourceManual}
		if err := database.DB.Create(&assignment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign role"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Roles updated"})
}

// PUT /admin/user/:id/bypass
func SetUserBypass(c *gin.Context) {
	userID := c.Param("id")

	var body struct {
		BypassRestrictions bool `json:"bypass_restrictions"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := database.DB.Model(&users.User{}).
		Where("id = ?", userID).
		Update("bypass_restrictions", body.BypassRestrictions)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bypass capability updated"})
}

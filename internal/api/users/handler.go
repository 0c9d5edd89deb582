package users

import (
	"net/http"

	"restriction-app/database"
	"restriction-app/internal/domain/settings"
	"restriction-app/internal/domain/users"
	infrastripe "restriction-app/internal/infra/stripe"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.
		Preload("Roles").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	cfg, err := settings.Load(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	resp := MeResponse{
		User: UserDTO{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.Name,
			Lastname:   user.Lastname,
			IsVerified: user.IsVerified,
		},
		Access: AccessDTO{
			Roles:              user.RoleNames(),
			BypassRestrictions: user.BypassRestrictions,
			EffectiveBypass:    user.BypassRestrictions && cfg.AdminOverrideEnabled,
		},
		Membership: buildMembershipDTO(user),
	}

	c.JSON(http.StatusOK, resp)
}

func buildMembershipDTO(u users.User) *MembershipDTO {
	if u.SubscriptionId == nil || *u.SubscriptionId == "" {
		return nil
	}

	dto := &MembershipDTO{
		Status:           infrastripe.NormalizeStripeStatus(u.StripeSubscriptionStatus),
		CurrentPeriodEnd: u.CurrentPeriodEnd,
	}
	for _, r := range u.Roles {
		if r.Source == users.RoleSourceMembership {
			dto.Role = r.Role
			break
		}
	}
	return dto
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	var t users.VerificationToken
	if err := database.DB.Where("token = ?", token).First(&t).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", t.UserID).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	database.DB.Delete(&t)

	c.JSON(http.StatusOK, gin.H{"message": "Email verified. You can now sign in."})
}

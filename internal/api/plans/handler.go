package plansapi

import (
	"net/http"

	"restriction-app/database"
	"restriction-app/internal/domain/memberships"
	"restriction-app/internal/domain/roles"

	"github.com/gin-gonic/gin"
)

// GET /plans
func ListRolePlans(c *gin.Context) {
	var plans []memberships.RolePlan
	if err := database.DB.Order("price_eur ASC").Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// POST /admin/plans
func CreateRolePlan(c *gin.Context) {
	var input memberships.RolePlan
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Role == "" || input.StripePriceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role and stripe_price_id are required"})
		return
	}
	if !roles.Known(roles.Active(), input.Role) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "role is not in the catalog"})
		return
	}

	input.ID = 0
	if err := database.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Price id may already exist"})
		return
	}
	c.JSON(http.StatusOK, input)
}

package rolesapi

import (
	"net/http"

	"restriction-app/internal/domain/roles"

	"github.com/gin-gonic/gin"
)

// GET /roles
// Role pickers in authoring UIs populate from this.
func ListRoles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roles": roles.Active().AvailableRoles()})
}

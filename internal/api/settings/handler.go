package settingsapi

import (
	"net/http"

	"restriction-app/database"
	"restriction-app/internal/domain/restriction"
	"restriction-app/internal/domain/settings"
	"restriction-app/internal/infra/cache"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var messagePolicy = bluemonday.UGCPolicy()

// GET /admin/settings
func GetSettings(c *gin.Context) {
	s, err := settings.Load(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}

type SettingsInput struct {
	AdminOverrideEnabled bool   `json:"admin_override_enabled"`
	DefaultAction        string `json:"default_action"`
	DefaultMessage       string `json:"default_message"`
	DefaultForwardURL    string `json:"default_forward_url"`
}

// PUT /admin/settings
func UpdateSettings(c *gin.Context) {
	var input SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch restriction.ActionKind(input.DefaultAction) {
	case restriction.ActionMessage, restriction.ActionRedirect:
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "default_action must be message or redirect"})
		return
	}

	s, err := settings.Load(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	s.AdminOverrideEnabled = input.AdminOverrideEnabled
	s.DefaultAction = input.DefaultAction
	s.DefaultMessage = messagePolicy.Sanitize(input.DefaultMessage)
	s.DefaultForwardURL = input.DefaultForwardURL

	if err := database.DB.Save(&s).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	// Embedders caching a settings snapshot pick the change up on the
	// next revision check.
	_ = cache.Default.BumpSettingsRevision(c.Request.Context())

	c.JSON(http.StatusOK, s)
}

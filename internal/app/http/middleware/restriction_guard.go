package middleware

import (
	"net/http"

	"restriction-app/config"
	"restriction-app/database"
	"restriction-app/internal/domain/content"
	"restriction-app/internal/domain/enforcement"
	"restriction-app/internal/domain/restriction"
	"restriction-app/internal/domain/settings"
	"restriction-app/internal/domain/visibility"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RestrictionGuard loads the page named by the :slug param, evaluates
// its restriction policy for the current identity and enforces the
// resolved action on DENY. Allowed requests continue with the page and
// settings snapshot stored on the context.
func RestrictionGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var page content.Page
		err := database.DB.
			Preload("Blocks", func(db *gorm.DB) *gorm.DB { return db.Order("sort_index ASC") }).
			First(&page, "slug = ? AND status = ?", slug, content.StatusPublished).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Page not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
			return
		}

		cfg, err := settings.Load(database.DB)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
			return
		}
		snapshot := cfg.Snapshot()
		identity := IdentityFrom(c)

		if visibility.Evaluate(page.RestrictionPolicy(), identity, snapshot) == restriction.Allow {
			c.Set("page", page)
			c.Set("settings", snapshot)
			c.Next()
			return
		}

		enforce(c, page, snapshot)
	}
}

func enforce(c *gin.Context, page content.Page, snapshot restriction.GlobalSettings) {
	action := enforcement.Select(page.Enforcement(), snapshot)

	switch action.Kind {
	case restriction.ActionRedirect:
		target := action.URL
		if action.NeedsLoginFallback {
			target = config.LOGIN_URL
		}
		if enforcement.IsRedirectLoopAt(c.Request.Host, c.Request.URL.Path, target) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Restricted content redirect loop detected",
			})
			return
		}
		c.Redirect(http.StatusFound, target)
		c.Abort()

	default:
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":   "restricted",
			"message": action.Message,
		})
	}
}

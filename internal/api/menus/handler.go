package menusapi

import (
	"net/http"

	"restriction-app/database"
	"restriction-app/internal/app/http/middleware"
	"restriction-app/internal/domain/menus"
	"restriction-app/internal/domain/restriction"
	"restriction-app/internal/domain/settings"
	"restriction-app/internal/domain/visibility"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /menus/:slug
// Renders a menu for the current requester: items whose visibility key
// denies are stripped, not disabled.
func GetMenu(c *gin.Context) {
	slug := c.Param("slug")

	var menu menus.Menu
	err := database.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_index ASC") }).
		First(&menu, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	cfg, err := settings.Load(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	snapshot := cfg.Snapshot()
	identity := middleware.IdentityFrom(c)

	out := MenuDTO{Slug: menu.Slug, Name: menu.Name, Items: make([]ItemDTO, 0, len(menu.Items))}
	for _, item := range menu.Items {
		if visibility.EvaluateKey(item.Visibility, item.RoleList(), identity, snapshot) != restriction.Allow {
			continue
		}
		out.Items = append(out.Items, ItemDTO{
			ID:        item.ID,
			Label:     item.Label,
			URL:       item.URL,
			SortIndex: item.SortIndex,
		})
	}

	c.JSON(http.StatusOK, out)
}

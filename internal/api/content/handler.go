package contentapi

import (
	"net/http"

	"restriction-app/internal/app/http/middleware"
	"restriction-app/internal/domain/content"
	"restriction-app/internal/domain/restriction"
	"restriction-app/internal/domain/visibility"

	"github.com/gin-gonic/gin"
)

// GET /pages/:slug
// The restriction guard already evaluated the page policy; here only
// the per-block visibility keys remain.
func GetPage(c *gin.Context) {
	pageAny, ok := c.Get("page")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Page not loaded"})
		return
	}
	page := pageAny.(content.Page)

	settingsAny, _ := c.Get("settings")
	snapshot, _ := settingsAny.(restriction.GlobalSettings)
	identity := middleware.IdentityFrom(c)

	dto := PageDTO{
		ID:     page.ID,
		Slug:   page.Slug,
		Title:  page.Title,
		Body:   page.Body,
		Blocks: make([]BlockDTO, 0, len(page.Blocks)),
	}

	for _, b := range page.Blocks {
		if visibility.EvaluateKey(b.Visibility, b.RoleList(), identity, snapshot) != restriction.Allow {
			continue
		}
		dto.Blocks = append(dto.Blocks, BlockDTO{
			ID:        b.ID,
			Type:      b.Type,
			SortIndex: b.SortIndex,
			Props:     b.Props,
		})
	}

	c.JSON(http.StatusOK, dto)
}

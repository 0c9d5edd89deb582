package contentapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"restriction-app/database"
	"restriction-app/internal/domain/content"
	"restriction-app/internal/domain/menus"
	"restriction-app/internal/domain/restriction"
	"restriction-app/internal/domain/visibility"
	"restriction-app/internal/infra/cache"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// Custom messages are author-supplied HTML shown to denied visitors;
// UGC policy keeps basic formatting and strips scripts.
var messagePolicy = bluemonday.UGCPolicy()

// GET /admin/pages
func ListPages(c *gin.Context) {
	var pages []content.Page
	if err := database.DB.Order("slug ASC").Find(&pages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pages"})
		return
	}

	out := make([]AdminPageDTO, 0, len(pages))
	for _, p := range pages {
		out = append(out, buildAdminPageDTO(p))
	}
	c.JSON(http.StatusOK, gin.H{"pages": out})
}

// POST /admin/pages
func CreatePage(c *gin.Context) {
	var input PageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := pageFromInput(input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Create(&page).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Slug may already exist"})
		return
	}

	invalidateLinkedMenus(c.Request.Context(), page.ID)
	c.JSON(http.StatusOK, buildAdminPageDTO(page))
}

// PUT /admin/pages/:id
func UpdatePage(c *gin.Context) {
	id := c.Param("id")

	var page content.Page
	if err := database.DB.First(&page, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	var input PageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := pageFromInput(input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	updated.ID = page.ID

	if err := database.DB.Model(&page).Select(
		"slug", "title", "body", "status",
		"who_can_see", "allowed_roles",
		"restricted_action", "custom_message", "custom_forward_url",
	).Updates(&updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page"})
		return
	}

	invalidateLinkedMenus(c.Request.Context(), page.ID)
	c.JSON(http.StatusOK, buildAdminPageDTO(updated))
}

// DELETE /admin/pages/:id
func DeletePage(c *gin.Context) {
	id := c.Param("id")
	invalidateLinkedMenus(c.Request.Context(), id)

	if err := database.DB.Delete(&content.Page{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Page deleted"})
}

// POST /admin/pages/:id/blocks
func CreateBlock(c *gin.Context) {
	pageID := c.Param("id")

	var page content.Page
	if err := database.DB.First(&page, "id = ?", pageID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	var input BlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	block, err := blockFromInput(page.ID, input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Create(&block).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create block"})
		return
	}
	c.JSON(http.StatusOK, block)
}

// PUT /admin/blocks/:id
func UpdateBlock(c *gin.Context) {
	id := c.Param("id")

	var block content.PageBlock
	if err := database.DB.First(&block, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
		return
	}

	var input BlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if vis := visibility.ParseKey(input.Visibility); vis.Kind == visibility.KeyUnknown {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": errUnknownVisibility(input.Visibility).Error()})
		return
	}

	updates := map[string]interface{}{
		"type":             input.Type,
		"sort_index":       input.SortIndex,
		"visibility":       input.Visibility,
		"visibility_roles": content.JoinRoles(input.VisibilityRoles),
	}
	if len(input.Props) > 0 {
		updates["props"] = input.Props
	}

	if err := database.DB.Model(&block).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update block"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Block updated"})
}

// DELETE /admin/blocks/:id
func DeleteBlock(c *gin.Context) {
	if err := database.DB.Delete(&content.PageBlock{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete block"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Block deleted"})
}

// pageFromInput validates the restriction columns once, at the
// authoring boundary; the evaluator assumes validated input.
func pageFromInput(input PageInput) (content.Page, error) {
	requirement, err := restriction.ParseLoginRequirement(input.WhoCanSee)
	if err != nil {
		return content.Page{}, err
	}

	action := restriction.ActionKind(input.RestrictedAction)
	switch action {
	case "", restriction.ActionUseDefault, restriction.ActionMessage, restriction.ActionRedirect:
	default:
		return content.Page{}, errors.New("unknown restricted_action")
	}
	if action == "" {
		action = restriction.ActionUseDefault
	}

	status := input.Status
	if status == "" {
		status = content.StatusDraft
	}

	return content.Page{
		Slug:             input.Slug,
		Title:            input.Title,
		Body:             input.Body,
		Status:           status,
		WhoCanSee:        string(requirement),
		AllowedRoles:     content.JoinRoles(input.AllowedRoles),
		RestrictedAction: string(action),
		CustomMessage:    messagePolicy.Sanitize(input.CustomMessage),
		CustomForwardURL: input.CustomForwardURL,
	}, nil
}

// blockFromInput validates the visibility key before a block row is
// built; unknown keys fail closed at render time, so a typo here would
// silently blank the block for everyone.
func blockFromInput(pageID string, input BlockInput) (content.PageBlock, error) {
	if vis := visibility.ParseKey(input.Visibility); vis.Kind == visibility.KeyUnknown {
		return content.PageBlock{}, errUnknownVisibility(input.Visibility)
	}

	block := content.PageBlock{
		PageID:          pageID,
		Type:            input.Type,
		SortIndex:       input.SortIndex,
		Props:           input.Props,
		Visibility:      input.Visibility,
		VisibilityRoles: content.JoinRoles(input.VisibilityRoles),
	}
	if len(block.Props) == 0 {
		block.Props = []byte("{}")
	}
	return block, nil
}

func errUnknownVisibility(key string) error {
	return fmt.Errorf("unknown visibility key %q", key)
}

// invalidateLinkedMenus marks every menu referencing the page dirty so
// authoring UIs recompute their mismatch indicators.
func invalidateLinkedMenus(ctx context.Context, pageID string) {
	var menuIDs []uint
	if err := database.DB.Model(&menus.MenuItem{}).
		Where("page_id = ?", pageID).
		Distinct().
		Pluck("menu_id", &menuIDs).Error; err != nil {
		return
	}
	for _, id := range menuIDs {
		_ = cache.Default.MarkMenuDirty(ctx, id)
	}
}

package menusapi

import (
	"net/http"
	"strconv"

	"restriction-app/database"
	"restriction-app/internal/domain/content"
	"restriction-app/internal/domain/menus"
	"restriction-app/internal/domain/visibility"
	"restriction-app/internal/infra/cache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /admin/menus
func ListMenus(c *gin.Context) {
	var list []menus.Menu
	if err := database.DB.Order("name ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menus"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": list})
}

// POST /admin/menus
func CreateMenu(c *gin.Context) {
	var input MenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu := menus.Menu{Slug: input.Slug, Name: input.Name}
	if err := database.DB.Create(&menu).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Menu slug may already exist"})
		return
	}
	c.JSON(http.StatusOK, menu)
}

// POST /admin/menus/:id/items
func CreateItem(c *gin.Context) {
	menuID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu id"})
		return
	}

	var menu menus.Menu
	if err := database.DB.First(&menu, menuID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}

	var input ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := itemFromInput(input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	item.MenuID = menu.ID

	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}

	_ = cache.Default.MarkMenuDirty(c.Request.Context(), menu.ID)
	c.JSON(http.StatusOK, item)
}

// PUT /admin/menu-items/:id
func UpdateItem(c *gin.Context) {
	var item menus.MenuItem
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var input ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := itemFromInput(input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Model(&item).Select(
		"label", "url", "page_id", "sort_index", "visibility", "visibility_roles",
	).Updates(&updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}

	_ = cache.Default.MarkMenuDirty(c.Request.Context(), item.MenuID)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated"})
}

// DELETE /admin/menu-items/:id
func DeleteItem(c *gin.Context) {
	var item menus.MenuItem
	if err := database.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}

	_ = cache.Default.MarkMenuDirty(c.Request.Context(), item.MenuID)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// GET /admin/menus/:id/mismatches
// Per-item consistency between the item's authored visibility and the
// linked page's restriction policy. Reading clears the dirty flag.
func GetMismatches(c *gin.Context) {
	menuID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu id"})
		return
	}

	var menu menus.Menu
	errLoad := database.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_index ASC") }).
		Preload("Items.Page").
		First(&menu, menuID).Error
	if errLoad != nil {
		if errLoad == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	dirty, _ := cache.Default.IsMenuDirty(c.Request.Context(), menu.ID)

	resp := MismatchesResponse{
		MenuID: menu.ID,
		Dirty:  dirty,
		Items:  make([]MismatchDTO, 0, len(menu.Items)),
	}
	for _, item := range menu.Items {
		resp.Items = append(resp.Items, MismatchDTO{
			ItemID: item.ID,
			Label:  item.Label,
			Result: item.CompareWithPage(),
		})
	}

	_ = cache.Default.ClearMenuDirty(c.Request.Context(), menu.ID)
	c.JSON(http.StatusOK, resp)
}

// itemFromInput validates the visibility key and the linked page at
// the authoring boundary.
func itemFromInput(input ItemInput) (menus.MenuItem, error) {
	item := menus.MenuItem{
		Label:           input.Label,
		URL:             input.URL,
		PageID:          input.PageID,
		SortIndex:       input.SortIndex,
		Visibility:      input.Visibility,
		VisibilityRoles: content.JoinRoles(input.VisibilityRoles),
	}

	// Unknown keys are storable (they fail closed at render time) but
	// authoring rejects them outright to catch typos early.
	if vis := visibility.ParseKey(input.Visibility); vis.Kind == visibility.KeyUnknown {
		return menus.MenuItem{}, errUnknownVisibility(input.Visibility)
	}

	if input.PageID != nil {
		var page content.Page
		if err := database.DB.First(&page, "id = ?", *input.PageID).Error; err != nil {
			return menus.MenuItem{}, errPageNotFound(*input.PageID)
		}
		item.URL = "/pages/" + page.Slug
	}

	return item, nil
}

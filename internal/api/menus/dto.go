package menusapi

import "restriction-app/internal/domain/mismatch"

type MenuDTO struct {
	Slug  string    `json:"slug"`
	Name  string    `json:"name"`
	Items []ItemDTO `json:"items"`
}

type ItemDTO struct {
	ID        uint   `json:"id"`
	Label     string `json:"label"`
	URL       string `json:"url"`
	SortIndex int    `json:"sort_index"`
}

type ItemInput struct {
	Label           string   `json:"label" binding:"required"`
	URL             string   `json:"url"`
	PageID          *string  `json:"page_id"`
	SortIndex       int      `json:"sort_index"`
	Visibility      string   `json:"visibility"`
	VisibilityRoles []string `json:"visibility_roles"`
}

type MenuInput struct {
	Slug string `json:"slug" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type MismatchDTO struct {
	ItemID uint            `json:"item_id"`
	Label  string          `json:"label"`
	Result mismatch.Result `json:"result"`
}

type MismatchesResponse struct {
	MenuID uint          `json:"menu_id"`
	Dirty  bool          `json:"dirty"`
	Items  []MismatchDTO `json:"items"`
}

package menus

import (
	"time"

	"restriction-app/internal/domain/content"
	"restriction-app/internal/domain/restriction"
	"restriction-app/internal/domain/visibility"
)

type Menu struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Slug string `gorm:"not null;uniqueIndex" json:"slug"`
	Name string `gorm:"not null" json:"name"`

	Items []MenuItem `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MenuItem carries its own visibility key, authored independently from
// the page it links to. PageID is nil for custom links.
type MenuItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	MenuID    uint   `gorm:"not null;index" json:"menu_id"`
	SortIndex int    `gorm:"not null;default:0;index" json:"sort_index"`
	Label     string `gorm:"not null" json:"label"`
	URL       string `gorm:"not null;default:''" json:"url"`

	PageID *string       `gorm:"type:uuid;index" json:"page_id,omitempty"`
	Page   *content.Page `gorm:"foreignKey:PageID" json:"-"`

	Visibility      string `gorm:"not null;default:''" json:"visibility"`
	VisibilityRoles string `gorm:"not null;default:''" json:"visibility_roles"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleList parses the item's comma-separated role column.
func (i MenuItem) RoleList() []string {
	return content.SplitRoles(i.VisibilityRoles)
}

// ItemPolicy translates the item's visibility key into a full policy
// so it can be compared against the linked page's policy.
func (i MenuItem) ItemPolicy() restriction.Policy {
	switch vis := visibility.ParseKey(i.Visibility); vis.Kind {
	case visibility.KeyLoggedIn:
		return restriction.Policy{
			LoginRequirement: restriction.RequireLoggedIn,
			AllowedRoles:     i.RoleList(),
		}
	case visibility.KeyLoggedOut:
		return restriction.Policy{LoginRequirement: restriction.RequireLoggedOut}
	case visibility.KeyRole:
		return restriction.Policy{
			LoginRequirement: restriction.RequireLoggedIn,
			AllowedRoles:     []string{vis.Role},
		}
	default:
		return restriction.Policy{LoginRequirement: restriction.RequireNone}
	}
}

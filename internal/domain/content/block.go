package content

import (
	"encoding/json"
	"time"
)

// PageBlock is one block of page content with its own visibility key.
// Blocks use the loose key form ("everyone", "logged_in", "logged_out",
// legacy "role_<name>") evaluated by visibility.EvaluateKey.
type PageBlock struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	PageID    string `gorm:"type:uuid;not null;index" json:"page_id"`
	SortIndex int    `gorm:"not null;default:0;index" json:"sort_index"`

	Type  string          `gorm:"not null;index" json:"type"`
	Props json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"props"`

	Visibility      string `gorm:"not null;default:''" json:"visibility"`
	VisibilityRoles string `gorm:"not null;default:''" json:"visibility_roles"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleList parses the block's comma-separated role column.
func (b PageBlock) RoleList() []string {
	return SplitRoles(b.VisibilityRoles)
}

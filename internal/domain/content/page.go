package content

import (
	"strings"
	"time"

	"restriction-app/internal/domain/restriction"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Page is a restricted resource. The restriction policy and the
// enforcement override live directly on the row; helpers convert them
// to the pure core types per request.
type Page struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Slug   string `gorm:"not null;uniqueIndex" json:"slug"`
	Title  string `gorm:"not null" json:"title"`
	Body   string `gorm:"type:text;not null;default:''" json:"body"`
	Status string `gorm:"not null;default:'draft'" json:"status"`

	// Restriction policy columns. AllowedRoles is comma-separated;
	// empty means no role restriction.
	WhoCanSee    string `gorm:"not null;default:'everyone'" json:"who_can_see"`
	AllowedRoles string `gorm:"not null;default:''" json:"allowed_roles"`

	// Per-page enforcement override of the global settings.
	RestrictedAction string `gorm:"not null;default:'default'" json:"restricted_action"`
	CustomMessage    string `gorm:"type:text;not null;default:''" json:"custom_message"`
	CustomForwardURL string `gorm:"not null;default:''" json:"custom_forward_url"`

	Blocks []PageBlock `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE" json:"blocks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RestrictionPolicy converts the stored columns into a core policy.
func (p Page) RestrictionPolicy() restriction.Policy {
	return restriction.Policy{
		LoginRequirement: restriction.LoginRequirement(p.WhoCanSee),
		AllowedRoles:     SplitRoles(p.AllowedRoles),
	}
}

// Enforcement converts the stored columns into a core enforcement
// config.
func (p Page) Enforcement() restriction.EnforcementConfig {
	return restriction.EnforcementConfig{
		Action:           restriction.ActionKind(p.RestrictedAction),
		CustomMessage:    p.CustomMessage,
		CustomForwardURL: p.CustomForwardURL,
	}
}

// SplitRoles parses a comma-separated role column.
func SplitRoles(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return restriction.NormalizeRoles(strings.Split(raw, ","))
}

// JoinRoles is the inverse, used when persisting.
func JoinRoles(roles []string) string {
	return strings.Join(restriction.NormalizeRoles(roles), ",")
}

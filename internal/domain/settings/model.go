package settings

import (
	"time"

	"restriction-app/internal/domain/restriction"

	"gorm.io/gorm"
)

// Settings is the site-wide restriction configuration, stored as a
// single row. The core never reads it directly; handlers load a
// snapshot per request and pass it down.
type Settings struct {
	ID uint `gorm:"primaryKey" json:"-"`

	AdminOverrideEnabled bool   `gorm:"not null;default:true" json:"admin_override_enabled"`
	DefaultAction        string `gorm:"not null;default:'message'" json:"default_action"`
	DefaultMessage       string `gorm:"type:text;not null;default:'You do not have permission to view this content.'" json:"default_message"`
	DefaultForwardURL    string `gorm:"not null;default:''" json:"default_forward_url"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Defaults mirrors the column defaults for fresh installs.
func Defaults() Settings {
	return Settings{
		ID:                   1,
		AdminOverrideEnabled: true,
		DefaultAction:        string(restriction.ActionMessage),
		DefaultMessage:       "You do not have permission to view this content.",
	}
}

// Load fetches the singleton row, creating it with defaults on first
// use.
func Load(db *gorm.DB) (Settings, error) {
	var s Settings
	err := db.First(&s, 1).Error
	if err == gorm.ErrRecordNotFound {
		s = Defaults()
		if err := db.Create(&s).Error; err != nil {
			return Settings{}, err
		}
		return s, nil
	}
	if err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Snapshot converts the stored row into the immutable core type.
func (s Settings) Snapshot() restriction.GlobalSettings {
	return restriction.GlobalSettings{
		AdminOverrideEnabled: s.AdminOverrideEnabled,
		DefaultAction:        restriction.ActionKind(s.DefaultAction),
		DefaultMessage:       s.DefaultMessage,
		DefaultForwardURL:    s.DefaultForwardURL,
	}
}

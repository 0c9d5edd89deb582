package contentapi

import (
	"encoding/json"

	"restriction-app/internal/domain/content"
)

type PageDTO struct {
	ID     string     `json:"id"`
	Slug   string     `json:"slug"`
	Title  string     `json:"title"`
	Body   string     `json:"body"`
	Blocks []BlockDTO `json:"blocks"`
}

type BlockDTO struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	SortIndex int             `json:"sort_index"`
	Props     json.RawMessage `json:"props"`
}

type AdminPageDTO struct {
	ID     string `json:"id"`
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Status string `json:"status"`

	WhoCanSee        string   `json:"who_can_see"`
	AllowedRoles     []string `json:"allowed_roles"`
	RestrictedAction string   `json:"restricted_action"`
	CustomMessage    string   `json:"custom_message"`
	CustomForwardURL string   `json:"custom_forward_url"`

	// InvalidSetup flags the contradictory "everyone + roles" authoring
	// state so editors can see and fix it.
	InvalidSetup bool `json:"invalid_setup"`
}

func buildAdminPageDTO(p content.Page) AdminPageDTO {
	roles := content.SplitRoles(p.AllowedRoles)
	return AdminPageDTO{
		ID:               p.ID,
		Slug:             p.Slug,
		Title:            p.Title,
		Status:           p.Status,
		WhoCanSee:        p.WhoCanSee,
		AllowedRoles:     roles,
		RestrictedAction: p.RestrictedAction,
		CustomMessage:    p.CustomMessage,
		CustomForwardURL: p.CustomForwardURL,
		InvalidSetup:     p.WhoCanSee == "everyone" && len(roles) > 0,
	}
}

type PageInput struct {
	Slug   string `json:"slug" binding:"required"`
	Title  string `json:"title" binding:"required"`
	Body   string `json:"body"`
	Status string `json:"status"`

	WhoCanSee        string   `json:"who_can_see"`
	AllowedRoles     []string `json:"allowed_roles"`
	RestrictedAction string   `json:"restricted_action"`
	CustomMessage    string   `json:"custom_message"`
	CustomForwardURL string   `json:"custom_forward_url"`
}

type BlockInput struct {
	Type            string          `json:"type" binding:"required"`
	SortIndex       int             `json:"sort_index"`
	Props           json.RawMessage `json:"props"`
	Visibility      string          `json:"visibility"`
	VisibilityRoles []string        `json:"visibility_roles"`
}

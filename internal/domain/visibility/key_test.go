package visibility

import (
	"testing"

	"restriction-app/internal/domain/restriction"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		raw  string
		want Visibility
	}{
		{"", Visibility{Kind: KeyEveryone}},
		{"everyone", Visibility{Kind: KeyEveryone}},
		{"  Everyone ", Visibility{Kind: KeyEveryone}},
		{"logged_in", Visibility{Kind: KeyLoggedIn}},
		{"logged_out", Visibility{Kind: KeyLoggedOut}},
		{"role_editor", Visibility{Kind: KeyRole, Role: "editor"}},
		{"ROLE_Editor", Visibility{Kind: KeyRole, Role: "editor"}},
		{"role_", Visibility{Kind: KeyUnknown}},
		{"nonsense", Visibility{Kind: KeyUnknown}},
	}

	for _, tt := range tests {
		if got := ParseKey(tt.raw); got != tt.want {
			t.Fatalf("ParseKey(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}
}

func TestEvaluateKey(t *testing.T) {
	anon := restriction.Identity{}
	member := restriction.Identity{Authenticated: true, Roles: []string{"subscriber"}}
	editor := restriction.Identity{Authenticated: true, Roles: []string{"editor"}}

	tests := []struct {
		name     string
		key      string
		roles    []string
		identity restriction.Identity
		want     restriction.Decision
	}{
		{"empty key allows everyone", "", nil, anon, restriction.Allow},
		{"everyone allows authenticated", "everyone", nil, editor, restriction.Allow},
		{"logged_in denies anonymous", "logged_in", nil, anon, restriction.Deny},
		{"logged_in allows authenticated", "logged_in", nil, member, restriction.Allow},
		{"logged_in narrowed by roles denies non-member", "logged_in", []string{"editor"}, member, restriction.Deny},
		{"logged_in narrowed by roles allows member", "logged_in", []string{"editor"}, editor, restriction.Allow},
		{"logged_out allows anonymous", "logged_out", nil, anon, restriction.Allow},
		{"logged_out denies authenticated", "logged_out", nil, member, restriction.Deny},
		{"legacy role key allows holder", "role_editor", nil, editor, restriction.Allow},
		{"legacy role key denies non-holder", "role_editor", nil, member, restriction.Deny},
		{"legacy role key denies anonymous", "role_editor", nil, anon, restriction.Deny},
	}

	settings := restriction.GlobalSettings{AdminOverrideEnabled: true}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateKey(tt.key, tt.roles, tt.identity, settings)
			if got != tt.want {
				t.Fatalf("EvaluateKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestEvaluateKeyFailsClosed(t *testing.T) {
	settings := restriction.GlobalSettings{AdminOverrideEnabled: true}
	identities := []restriction.Identity{
		{},
		{Authenticated: true},
		{Authenticated: true, Roles: []string{"editor", "administrator"}},
	}
	for _, id := range identities {
		if got := EvaluateKey("nonsense", nil, id, settings); got != restriction.Deny {
			t.Fatalf("unknown key must deny for %+v, got %v", id, got)
		}
	}

	// Override capability is the one exception.
	bypass := restriction.Identity{Authenticated: true, BypassRestrictions: true}
	if got := EvaluateKey("nonsense", nil, bypass, settings); got != restriction.Allow {
		t.Fatalf("override identity should bypass unknown key, got %v", got)
	}
}

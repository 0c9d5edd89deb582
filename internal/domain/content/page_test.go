package content

import (
	"reflect"
	"testing"

	"restriction-app/internal/domain/restriction"
)

func TestSplitRoles(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "editor", []string{"editor"}},
		{"trims and drops empties", " editor, , author ,", []string{"editor", "author"}},
		{"keeps case", "Editor,AUTHOR", []string{"Editor", "AUTHOR"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitRoles(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitRoles(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestJoinRolesRoundTrip(t *testing.T) {
	raw := JoinRoles([]string{" editor ", "", "author"})
	if raw != "editor,author" {
		t.Fatalf("JoinRoles = %q, want %q", raw, "editor,author")
	}
	if got := SplitRoles(raw); !reflect.DeepEqual(got, []string{"editor", "author"}) {
		t.Fatalf("SplitRoles(JoinRoles(...)) = %v", got)
	}
}

func TestPageRestrictionPolicy(t *testing.T) {
	p := Page{WhoCanSee: "logged_in", AllowedRoles: "editor, author"}
	policy := p.RestrictionPolicy()
	if policy.LoginRequirement != restriction.RequireLoggedIn {
		t.Fatalf("requirement = %q", policy.LoginRequirement)
	}
	if !reflect.DeepEqual(policy.AllowedRoles, []string{"editor", "author"}) {
		t.Fatalf("roles = %v", policy.AllowedRoles)
	}
}

func TestPageEnforcement(t *testing.T) {
	p := Page{
		RestrictedAction: "redirect",
		CustomMessage:    "members only",
		CustomForwardURL: "https://example.org/join",
	}
	cfg := p.Enforcement()
	if cfg.Action != restriction.ActionRedirect {
		t.Fatalf("action = %q", cfg.Action)
	}
	if cfg.CustomMessage != "members only" || cfg.CustomForwardURL != "https://example.org/join" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

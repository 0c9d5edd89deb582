package decide

import (
	"errors"
	"testing"

	"restriction-app/internal/domain/restriction"
)

var snapshot = restriction.GlobalSettings{
	AdminOverrideEnabled: true,
	DefaultAction:        restriction.ActionMessage,
	DefaultMessage:       "Members only.",
	DefaultForwardURL:    "/login",
}

func TestResolveAllow(t *testing.T) {
	resp, err := resolve(DecideRequest{WhoCanSee: "everyone"}, restriction.Identity{}, snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Decision != restriction.Allow {
		t.Fatalf("decision = %v, want allow", resp.Decision)
	}
	if resp.Enforcement != nil {
		t.Fatal("allow must not carry an enforcement action")
	}
}

func TestResolveDenyCarriesEnforcement(t *testing.T) {
	req := DecideRequest{
		WhoCanSee:        "logged_in",
		AllowedRoles:     []string{"editor"},
		RestrictedAction: "message",
		CustomMessage:    "Editors only.",
	}
	resp, err := resolve(req, restriction.Identity{Authenticated: true, Roles: []string{"subscriber"}}, snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Decision != restriction.Deny {
		t.Fatalf("decision = %v, want deny", resp.Decision)
	}
	if resp.Enforcement == nil {
		t.Fatal("deny must carry the resolved enforcement action")
	}
	if resp.Enforcement.Kind != restriction.ActionMessage || resp.Enforcement.Message != "Editors only." {
		t.Fatalf("unexpected enforcement: %+v", resp.Enforcement)
	}
}

func TestResolveDefaultEnforcement(t *testing.T) {
	req := DecideRequest{
		WhoCanSee:     "logged_in",
		CustomMessage: "stale custom text",
	}
	resp, err := resolve(req, restriction.Identity{}, snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Enforcement.Message != "Members only." {
		t.Fatalf("message = %q, want the global default (custom fields discarded)", resp.Enforcement.Message)
	}
}

func TestResolveInvalidPolicy(t *testing.T) {
	_, err := resolve(DecideRequest{WhoCanSee: "nonsense"}, restriction.Identity{}, snapshot)
	if !errors.Is(err, restriction.ErrInvalidPolicy) {
		t.Fatalf("error = %v, want ErrInvalidPolicy", err)
	}
}

func TestResolveInvalidAction(t *testing.T) {
	req := DecideRequest{WhoCanSee: "logged_in", RestrictedAction: "send_to_url"}
	_, err := resolve(req, restriction.Identity{}, snapshot)
	if !errors.Is(err, restriction.ErrInvalidPolicy) {
		t.Fatalf("error = %v, want ErrInvalidPolicy for unknown restricted_action", err)
	}
}

func TestResolveBypassIdentity(t *testing.T) {
	req := DecideRequest{WhoCanSee: "logged_in", AllowedRoles: []string{"editor"}}
	resp, err := resolve(req, restriction.Identity{Authenticated: true, BypassRestrictions: true}, snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Decision != restriction.Allow {
		t.Fatalf("bypass identity should be allowed, got %v", resp.Decision)
	}
}

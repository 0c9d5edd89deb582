package enforcement

import (
	"errors"
	"testing"

	"restriction-app/internal/domain/restriction"
)

var settings = restriction.GlobalSettings{
	AdminOverrideEnabled: true,
	DefaultAction:        restriction.ActionMessage,
	DefaultMessage:       "Members only.",
	DefaultForwardURL:    "/login",
}

func TestSelectUseDefault(t *testing.T) {
	// Per-resource message/url must be discarded when using defaults,
	// not blended with the default action.
	config := restriction.EnforcementConfig{
		Action:           restriction.ActionUseDefault,
		CustomMessage:    "stale per-page message",
		CustomForwardURL: "/stale",
	}

	got := Select(config, settings)
	if got.Kind != restriction.ActionMessage {
		t.Fatalf("kind = %v, want message", got.Kind)
	}
	if got.Message != "Members only." {
		t.Fatalf("message = %q, want the global default", got.Message)
	}
	if got.URL != "" {
		t.Fatalf("url should be empty for message action, got %q", got.URL)
	}

	// Unset action behaves like an explicit UseDefault.
	got2 := Select(restriction.EnforcementConfig{CustomMessage: "stale"}, settings)
	if got2 != got {
		t.Fatalf("unset action = %+v, want same as use_default %+v", got2, got)
	}
}

func TestSelectUseDefaultRedirect(t *testing.T) {
	redirectSettings := settings
	redirectSettings.DefaultAction = restriction.ActionRedirect

	got := Select(restriction.EnforcementConfig{CustomForwardURL: "/stale"}, redirectSettings)
	if got.Kind != restriction.ActionRedirect {
		t.Fatalf("kind = %v, want redirect", got.Kind)
	}
	if got.URL != "/login" {
		t.Fatalf("url = %q, want global default /login", got.URL)
	}
}

func TestSelectCustomMessage(t *testing.T) {
	got := Select(restriction.EnforcementConfig{
		Action:        restriction.ActionMessage,
		CustomMessage: "Editors only.",
	}, settings)
	if got.Message != "Editors only." {
		t.Fatalf("message = %q, want the custom one", got.Message)
	}

	// Empty custom message falls back to the global default.
	got = Select(restriction.EnforcementConfig{Action: restriction.ActionMessage}, settings)
	if got.Message != "Members only." {
		t.Fatalf("message = %q, want the global default", got.Message)
	}
}

func TestSelectCustomURL(t *testing.T) {
	got := Select(restriction.EnforcementConfig{
		Action:           restriction.ActionRedirect,
		CustomForwardURL: "/members",
	}, settings)
	if got.Kind != restriction.ActionRedirect || got.URL != "/members" {
		t.Fatalf("got %+v, want redirect to /members", got)
	}

	// Empty custom URL falls back to the global default URL.
	got = Select(restriction.EnforcementConfig{Action: restriction.ActionRedirect}, settings)
	if got.URL != "/login" {
		t.Fatalf("url = %q, want /login", got.URL)
	}
	if got.NeedsLoginFallback {
		t.Fatal("fallback flag must be unset when a URL resolved")
	}
}

func TestSelectNoURLAnywhere(t *testing.T) {
	bare := restriction.GlobalSettings{DefaultAction: restriction.ActionRedirect}
	got := Select(restriction.EnforcementConfig{Action: restriction.ActionRedirect}, bare)
	if !got.NeedsLoginFallback {
		t.Fatal("expected NeedsLoginFallback when no URL exists in the chain")
	}

	if _, err := SelectStrict(restriction.EnforcementConfig{Action: restriction.ActionRedirect}, bare); !errors.Is(err, ErrAmbiguousConfig) {
		t.Fatalf("SelectStrict error = %v, want ErrAmbiguousConfig", err)
	}

	if _, err := SelectStrict(restriction.EnforcementConfig{Action: restriction.ActionRedirect}, settings); err != nil {
		t.Fatalf("SelectStrict with resolvable URL: %v", err)
	}
}

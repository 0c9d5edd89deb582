package visibility

import (
	"testing"

	"restriction-app/internal/domain/restriction"
)

var defaultSettings = restriction.GlobalSettings{AdminOverrideEnabled: true}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		policy   restriction.Policy
		identity restriction.Identity
		want     restriction.Decision
	}{
		{
			name:     "open policy anonymous",
			policy:   restriction.Policy{LoginRequirement: restriction.RequireNone},
			identity: restriction.Identity{},
			want:     restriction.Allow,
		},
		{
			name:     "logged_in requirement denies anonymous",
			policy:   restriction.Policy{LoginRequirement: restriction.RequireLoggedIn},
			identity: restriction.Identity{},
			want:     restriction.Deny,
		},
		{
			name:     "logged_in requirement allows authenticated",
			policy:   restriction.Policy{LoginRequirement: restriction.RequireLoggedIn},
			identity: restriction.Identity{Authenticated: true},
			want:     restriction.Allow,
		},
		{
			name:     "logged_out requirement denies authenticated",
			policy:   restriction.Policy{LoginRequirement: restriction.RequireLoggedOut},
			identity: restriction.Identity{Authenticated: true},
			want:     restriction.Deny,
		},
		{
			name:     "logged_out requirement allows anonymous",
			policy:   restriction.Policy{LoginRequirement: restriction.RequireLoggedOut},
			identity: restriction.Identity{},
			want:     restriction.Allow,
		},
		{
			name: "role mismatch denies without falling back to login status",
			policy: restriction.Policy{
				LoginRequirement: restriction.RequireLoggedIn,
				AllowedRoles:     []string{"editor"},
			},
			identity: restriction.Identity{Authenticated: true, Roles: []string{"subscriber"}},
			want:     restriction.Deny,
		},
		{
			name: "role match wins over logged_out requirement",
			policy: restriction.Policy{
				LoginRequirement: restriction.RequireLoggedOut,
				AllowedRoles:     []string{"editor"},
			},
			identity: restriction.Identity{Authenticated: true, Roles: []string{"editor"}},
			want:     restriction.Allow,
		},
		{
			name: "role comparison is case-insensitive",
			policy: restriction.Policy{
				LoginRequirement: restriction.RequireLoggedIn,
				AllowedRoles:     []string{"Editor"},
			},
			identity: restriction.Identity{Authenticated: true, Roles: []string{"eDiToR"}},
			want:     restriction.Allow,
		},
		{
			name: "roles configured but identity holds none",
			policy: restriction.Policy{
				LoginRequirement: restriction.RequireLoggedIn,
				AllowedRoles:     []string{"editor"},
			},
			identity: restriction.Identity{Authenticated: true},
			want:     restriction.Deny,
		},
		{
			name: "contradictory everyone plus roles still denies on role mismatch",
			policy: restriction.Policy{
				LoginRequirement: restriction.RequireNone,
				AllowedRoles:     []string{"editor"},
			},
			identity: restriction.Identity{Authenticated: true, Roles: []string{"subscriber"}},
			want:     restriction.Deny,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.policy, tt.identity, defaultSettings)
			if got != tt.want {
				t.Fatalf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateAdminOverride(t *testing.T) {
	policy := restriction.Policy{
		LoginRequirement: restriction.RequireLoggedIn,
		AllowedRoles:     []string{"editor"},
	}
	bypass := restriction.Identity{Authenticated: true, BypassRestrictions: true}

	if got := Evaluate(policy, bypass, defaultSettings); got != restriction.Allow {
		t.Fatalf("bypass identity should always be allowed, got %v", got)
	}

	disabled := restriction.GlobalSettings{AdminOverrideEnabled: false}
	if got := Evaluate(policy, bypass, disabled); got != restriction.Deny {
		t.Fatalf("override disabled in settings should not bypass, got %v", got)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	policy := restriction.Policy{
		LoginRequirement: restriction.RequireLoggedIn,
		AllowedRoles:     []string{"editor", "author"},
	}
	identity := restriction.Identity{Authenticated: true, Roles: []string{"author"}}

	first := Evaluate(policy, identity, defaultSettings)
	second := Evaluate(policy, identity, defaultSettings)
	if first != second {
		t.Fatalf("repeated evaluation differs: %v then %v", first, second)
	}
}

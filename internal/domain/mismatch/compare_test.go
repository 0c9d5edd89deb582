package mismatch

import (
	"testing"

	"restriction-app/internal/domain/restriction"
)

func TestCompare(t *testing.T) {
	open := restriction.Policy{LoginRequirement: restriction.RequireNone}
	loggedIn := restriction.Policy{LoginRequirement: restriction.RequireLoggedIn}
	editors := restriction.Policy{
		LoginRequirement: restriction.RequireLoggedIn,
		AllowedRoles:     []string{"editor"},
	}
	authors := restriction.Policy{
		LoginRequirement: restriction.RequireLoggedIn,
		AllowedRoles:     []string{"author"},
	}

	tests := []struct {
		name string
		a, b restriction.Policy
		want Result
	}{
		{"both open", open, open, Match},
		{"one side restricted", open, loggedIn, Mismatch},
		{"same login requirement no roles", loggedIn, loggedIn, Match},
		{"different login requirement", loggedIn, restriction.Policy{LoginRequirement: restriction.RequireLoggedOut}, Mismatch},
		{"role sets differ", editors, authors, Mismatch},
		{"equal role sets", editors, editors, Match},
		{
			"role order and case irrelevant",
			restriction.Policy{LoginRequirement: restriction.RequireLoggedIn, AllowedRoles: []string{"Editor", "author"}},
			restriction.Policy{LoginRequirement: restriction.RequireLoggedIn, AllowedRoles: []string{"author", "editor"}},
			Match,
		},
		{
			"whitespace and empties normalized before comparing",
			restriction.Policy{LoginRequirement: restriction.RequireLoggedIn, AllowedRoles: []string{" editor ", ""}},
			restriction.Policy{LoginRequirement: restriction.RequireLoggedIn, AllowedRoles: []string{"editor"}},
			Match,
		},
		{
			"everyone with roles is restricted, not open",
			restriction.Policy{LoginRequirement: restriction.RequireNone, AllowedRoles: []string{"editor"}},
			open,
			Mismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Fatalf("Compare() = %v, want %v", got, tt.want)
			}
			// Symmetry holds for every pair.
			if fwd, rev := Compare(tt.a, tt.b), Compare(tt.b, tt.a); fwd != rev {
				t.Fatalf("Compare not symmetric: %v vs %v", fwd, rev)
			}
		})
	}
}

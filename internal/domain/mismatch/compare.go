package mismatch

import (
	"restriction-app/internal/domain/restriction"
)

// Result classifies how two independently authored policies relate.
// Neutral means no comparison was possible (a custom-link menu item
// with no linked resource); it is produced by callers, Compare itself
// only returns Match or Mismatch.
type Result string

const (
	Match    Result = "match"
	Mismatch Result = "mismatch"
	Neutral  Result = "neutral"
)

// Compare checks two policies for logical consistency. Symmetric:
// Compare(a, b) == Compare(b, a).
func Compare(a, b restriction.Policy) Result {
	a = a.Normalized()
	b = b.Normalized()

	openA, openB := a.Open(), b.Open()
	if openA && openB {
		return Match
	}
	if openA != openB {
		return Mismatch
	}

	if a.LoginRequirement != b.LoginRequirement {
		return Mismatch
	}
	if !sameRoleSet(a.AllowedRoles, b.AllowedRoles) {
		return Mismatch
	}
	return Match
}

// sameRoleSet compares as sets, case-insensitive, order irrelevant.
func sameRoleSet(a, b []string) bool {
	setA := restriction.LowerRoleSet(a)
	setB := restriction.LowerRoleSet(b)
	if len(setA) != len(setB) {
		return false
	}
	for r := range setA {
		if !setB[r] {
			return false
		}
	}
	return true
}

package restriction

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPolicy is returned when a login requirement value is not
// one of the recognized constants. Unknown role names are accepted.
var ErrInvalidPolicy = errors.New("invalid restriction policy")

// ParseLoginRequirement validates a raw requirement value at the
// ingestion boundary. "" maps to RequireNone so unset columns stay
// valid.
func ParseLoginRequirement(raw string) (LoginRequirement, error) {
	switch LoginRequirement(strings.TrimSpace(raw)) {
	case "", RequireNone:
		return RequireNone, nil
	case RequireLoggedIn:
		return RequireLoggedIn, nil
	case RequireLoggedOut:
		return RequireLoggedOut, nil
	default:
		return "", fmt.Errorf("%w: unknown login requirement %q", ErrInvalidPolicy, raw)
	}
}

// NormalizeRoles trims whitespace and drops empty entries. Case is
// preserved here; role names are lowered only at comparison time.
func NormalizeRoles(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Normalized returns a copy of the policy with cleaned roles.
func (p Policy) Normalized() Policy {
	return Policy{
		LoginRequirement: p.LoginRequirement,
		AllowedRoles:     NormalizeRoles(p.AllowedRoles),
	}
}

// Open reports whether the policy restricts nothing at all.
func (p Policy) Open() bool {
	return p.LoginRequirement == RequireNone && len(NormalizeRoles(p.AllowedRoles)) == 0
}

// LowerRoleSet builds a lookup set with lower-cased role names.
func LowerRoleSet(roles []string) map[string]bool {
	set := make(map[string]bool, len(roles))
	for _, r := range NormalizeRoles(roles) {
		set[strings.ToLower(r)] = true
	}
	return set
}

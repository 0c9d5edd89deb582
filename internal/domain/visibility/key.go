package visibility

import (
	"strings"

	"restriction-app/internal/domain/restriction"
)

// Blocks and menu items carry a loose visibility key string instead of
// a full policy. Legacy keys like "role_editor" are converted once,
// here, into a closed variant; nothing downstream branches on raw
// strings.

type KeyKind int

const (
	KeyEveryone KeyKind = iota
	KeyLoggedIn
	KeyLoggedOut
	KeyRole
	KeyUnknown
)

type Visibility struct {
	Kind KeyKind
	Role string // set only for KeyRole
}

const legacyRolePrefix = "role_"

// ParseKey converts a raw visibility key. Unrecognized keys map to
// KeyUnknown, which always denies.
func ParseKey(raw string) Visibility {
	key := strings.ToLower(strings.TrimSpace(raw))
	switch key {
	case "", "everyone":
		return Visibility{Kind: KeyEveryone}
	case "logged_in":
		return Visibility{Kind: KeyLoggedIn}
	case "logged_out":
		return Visibility{Kind: KeyLoggedOut}
	}
	if name, ok := strings.CutPrefix(key, legacyRolePrefix); ok && name != "" {
		return Visibility{Kind: KeyRole, Role: name}
	}
	return Visibility{Kind: KeyUnknown}
}

// EvaluateKey decides visibility for key-based resources. The roles
// argument narrows "logged_in" further when non-empty. Unknown keys
// deny for every identity. Admin override applies first, as in
// Evaluate.
func EvaluateKey(key string, roles []string, identity restriction.Identity, settings restriction.GlobalSettings) restriction.Decision {
	if settings.AdminOverrideEnabled && identity.BypassRestrictions {
		return restriction.Allow
	}

	switch vis := ParseKey(key); vis.Kind {
	case KeyEveryone:
		return restriction.Allow

	case KeyLoggedIn:
		if !identity.Authenticated {
			return restriction.Deny
		}
		if allowed := restriction.LowerRoleSet(roles); len(allowed) > 0 {
			for r := range restriction.LowerRoleSet(identity.Roles) {
				if allowed[r] {
					return restriction.Allow
				}
			}
			return restriction.Deny
		}
		return restriction.Allow

	case KeyLoggedOut:
		if identity.Authenticated {
			return restriction.Deny
		}
		return restriction.Allow

	case KeyRole:
		if !identity.Authenticated {
			return restriction.Deny
		}
		if restriction.LowerRoleSet(identity.Roles)[vis.Role] {
			return restriction.Allow
		}
		return restriction.Deny

	default:
		// Fail closed on anything we do not recognize.
		return restriction.Deny
	}
}

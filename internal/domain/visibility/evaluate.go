package visibility

import (
	"restriction-app/internal/domain/restriction"
)

// Evaluate decides whether the requester may see a resource guarded by
// the given policy. Precedence, in order:
//
//  1. admin override (settings toggle + identity capability)
//  2. role list, when non-empty: a role match wins outright and the
//     login requirement is NOT re-checked
//  3. login-status comparison, only when no roles are configured
//
// A policy with "everyone" plus a non-empty role list is a
// contradictory authoring state; it still takes the role path and can
// deny. Authoring tools surface it via mismatch checks, the evaluator
// does not special-case it.
func Evaluate(policy restriction.Policy, identity restriction.Identity, settings restriction.GlobalSettings) restriction.Decision {
	if settings.AdminOverrideEnabled && identity.BypassRestrictions {
		return restriction.Allow
	}

	allowed := restriction.LowerRoleSet(policy.AllowedRoles)
	if len(allowed) > 0 {
		held := restriction.LowerRoleSet(identity.Roles)
		if len(held) == 0 {
			return restriction.Deny
		}
		for r := range held {
			if allowed[r] {
				return restriction.Allow
			}
		}
		return restriction.Deny
	}

	switch policy.LoginRequirement {
	case restriction.RequireLoggedIn:
		if !identity.Authenticated {
			return restriction.Deny
		}
	case restriction.RequireLoggedOut:
		if identity.Authenticated {
			return restriction.Deny
		}
	}
	return restriction.Allow
}

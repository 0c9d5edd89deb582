package stripe

import "strings"

// NormalizeStripeStatus folds Stripe subscription statuses into the
// small set the membership layer cares about.
func NormalizeStripeStatus(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "none"
	}
	switch strings.TrimSpace(*s) {
	case "active":
		return "active"
	case "trialing":
		return "trialing"
	case "past_due", "unpaid":
		return "past_due"
	case "canceled", "incomplete_expired":
		return "canceled"
	default:
		return strings.TrimSpace(*s)
	}
}

// GrantsRole reports whether a subscription in this status should keep
// its membership role.
func GrantsRole(s *string) bool {
	switch NormalizeStripeStatus(s) {
	case "active", "trialing":
		return true
	default:
		return false
	}
}

package enforcement

import (
	"errors"
	"strings"

	"restriction-app/internal/domain/restriction"
)

// ErrAmbiguousConfig is returned by SelectStrict when a redirect action
// resolves to no URL anywhere in the chain.
var ErrAmbiguousConfig = errors.New("ambiguous enforcement config")

// ResolvedAction is the concrete thing to do after a DENY. When
// NeedsLoginFallback is set the caller must substitute its own login
// destination; the core does not know one.
type ResolvedAction struct {
	Kind               restriction.ActionKind
	Message            string
	URL                string
	NeedsLoginFallback bool
}

// Select resolves a per-resource enforcement config against the global
// defaults.
//
// "Use default" means the full default: the resource's own message and
// URL are discarded, never blended with the default action.
func Select(config restriction.EnforcementConfig, settings restriction.GlobalSettings) ResolvedAction {
	action := config.Action
	if action == "" || action == restriction.ActionUseDefault {
		action = settings.DefaultAction
		config = restriction.EnforcementConfig{}
	}

	switch action {
	case restriction.ActionRedirect:
		url := strings.TrimSpace(config.CustomForwardURL)
		if url == "" {
			url = strings.TrimSpace(settings.DefaultForwardURL)
		}
		return ResolvedAction{
			Kind:               restriction.ActionRedirect,
			URL:                url,
			NeedsLoginFallback: url == "",
		}

	default:
		msg := strings.TrimSpace(config.CustomMessage)
		if msg == "" {
			msg = settings.DefaultMessage
		}
		return ResolvedAction{Kind: restriction.ActionMessage, Message: msg}
	}
}

// SelectStrict is Select with the strict-mode signal from the error
// taxonomy: a redirect with no URL in the whole chain is an error
// instead of a fallback hint.
func SelectStrict(config restriction.EnforcementConfig, settings restriction.GlobalSettings) (ResolvedAction, error) {
	action := Select(config, settings)
	if action.Kind == restriction.ActionRedirect && action.NeedsLoginFallback {
		return ResolvedAction{}, ErrAmbiguousConfig
	}
	return action, nil
}

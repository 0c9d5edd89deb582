package decide

import (
	"errors"
	"fmt"
	"net/http"

	"restriction-app/database"
	"restriction-app/internal/app/http/middleware"
	"restriction-app/internal/domain/enforcement"
	"restriction-app/internal/domain/restriction"
	"restriction-app/internal/domain/settings"
	"restriction-app/internal/domain/visibility"

	"github.com/gin-gonic/gin"
)

// Bare policy-decision endpoints. External consumers (list filters,
// API responders, navigation renderers) post a policy and get back the
// decision for the calling identity, plus the enforcement action to
// apply on deny.

type DecideRequest struct {
	WhoCanSee        string   `json:"who_can_see"`
	AllowedRoles     []string `json:"allowed_roles"`
	RestrictedAction string   `json:"restricted_action"`
	CustomMessage    string   `json:"custom_message"`
	CustomForwardURL string   `json:"custom_forward_url"`
}

type DecideKeyRequest struct {
	Visibility string   `json:"visibility"`
	Roles      []string `json:"roles"`
}

type DecideResponse struct {
	Decision    restriction.Decision `json:"decision"`
	Enforcement *EnforcementDTO      `json:"enforcement,omitempty"`
}

type EnforcementDTO struct {
	Kind               restriction.ActionKind `json:"kind"`
	Message            string                 `json:"message,omitempty"`
	URL                string                 `json:"url,omitempty"`
	NeedsLoginFallback bool                   `json:"needs_login_fallback,omitempty"`
}

// POST /decide
func Decide(c *gin.Context) {
	var req DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := settings.Load(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	resp, err := resolve(req, middleware.IdentityFrom(c), cfg.Snapshot())
	if err != nil {
		if errors.Is(err, restriction.ErrInvalidPolicy) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate policy"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// resolve is the request-independent decision path, kept separate from
// gin so it can be exercised directly.
func resolve(req DecideRequest, identity restriction.Identity, snapshot restriction.GlobalSettings) (DecideResponse, error) {
	requirement, err := restriction.ParseLoginRequirement(req.WhoCanSee)
	if err != nil {
		return DecideResponse{}, err
	}

	kind := restriction.ActionKind(req.RestrictedAction)
	switch kind {
	case "", restriction.ActionUseDefault, restriction.ActionMessage, restriction.ActionRedirect:
	default:
		return DecideResponse{}, fmt.Errorf("%w: unknown restricted_action %q", restriction.ErrInvalidPolicy, req.RestrictedAction)
	}

	policy := restriction.Policy{
		LoginRequirement: requirement,
		AllowedRoles:     req.AllowedRoles,
	}

	resp := DecideResponse{Decision: visibility.Evaluate(policy, identity, snapshot)}
	if resp.Decision == restriction.Deny {
		action := enforcement.Select(restriction.EnforcementConfig{
			Action:           kind,
			CustomMessage:    req.CustomMessage,
			CustomForwardURL: req.CustomForwardURL,
		}, snapshot)
		resp.Enforcement = &EnforcementDTO{
			Kind:               action.Kind,
			Message:            action.Message,
			URL:                action.URL,
			NeedsLoginFallback: action.NeedsLoginFallback,
		}
	}
	return resp, nil
}

// POST /decide/key
func DecideKey(c *gin.Context) {
	var req DecideKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := settings.Load(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	identity := middleware.IdentityFrom(c)
	decision := visibility.EvaluateKey(req.Visibility, req.Roles, identity, cfg.Snapshot())

	c.JSON(http.StatusOK, DecideResponse{Decision: decision})
}

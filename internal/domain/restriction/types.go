package restriction

type LoginRequirement string

const (
	RequireNone      LoginRequirement = "everyone"
	RequireLoggedIn  LoginRequirement = "logged_in"
	RequireLoggedOut LoginRequirement = "logged_out"
)

type Decision string

const (
	Allow Decision = "allow"
	Deny  Decision = "deny"
)

type ActionKind string

const (
	ActionUseDefault ActionKind = "default"
	ActionMessage    ActionKind = "message"
	ActionRedirect   ActionKind = "redirect"
)

// Policy is the restriction rule attached to a resource.
// Empty AllowedRoles means "no role restriction", not "deny all".
type Policy struct {
	LoginRequirement LoginRequirement
	AllowedRoles     []string
}

// Identity is the resolved auth state of the current requester.
// BypassRestrictions is an operator capability, separate from Roles.
type Identity struct {
	Authenticated      bool
	Roles              []string
	BypassRestrictions bool
}

// GlobalSettings is a read-only snapshot of the site-wide restriction
// defaults, passed explicitly so evaluation stays a pure function.
type GlobalSettings struct {
	AdminOverrideEnabled bool
	DefaultAction        ActionKind
	DefaultMessage       string
	DefaultForwardURL    string
}

// EnforcementConfig is the per-resource override of GlobalSettings.
type EnforcementConfig struct {
	Action           ActionKind
	CustomMessage    string
	CustomForwardURL string
}

package users

import "time"

type MeResponse struct {
	User       UserDTO        `json:"user"`
	Access     AccessDTO      `json:"access"`
	Membership *MembershipDTO `json:"membership"`
}

type UserDTO struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	IsVerified bool   `json:"is_verified"`
}

type AccessDTO struct {
	Roles              []string `json:"roles"`
	BypassRestrictions bool     `json:"bypass_restrictions"`
	// EffectiveBypass folds in the global override toggle; when the
	// site disables the override the capability is inert.
	EffectiveBypass bool `json:"effective_bypass"`
}

type MembershipDTO struct {
	Role             string     `json:"role,omitempty"`
	Status           string     `json:"status"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
}

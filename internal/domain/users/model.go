package users

import (
	"time"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Lastname     string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	IsVerified   bool

	// BypassRestrictions is the operator-level override capability.
	// Separate from role assignments on purpose.
	BypassRestrictions bool `gorm:"not null;default:false"`

	Roles []UserRole `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	StripeCustomerID         *string    `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`
	SubscriptionId           *string    `gorm:"column:subscription_id;uniqueIndex:idx_users_subscription_id"`
	StripeSubscriptionStatus *string    `gorm:"column:stripe_subscription_status"`
	CurrentPeriodEnd         *time.Time `gorm:"column:current_period_end"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	RoleSourceManual     = "manual"
	RoleSourceMembership = "membership"
)

// UserRole is one role assignment. Source records whether an admin
// granted it or a membership purchase did; membership revocation only
// removes membership-sourced rows.
type UserRole struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_user_roles_user_role"`
	Role   string `gorm:"not null;uniqueIndex:idx_user_roles_user_role"`
	Source string `gorm:"type:varchar(20);not null;default:'manual'"`

	CreatedAt time.Time
}

// RoleNames flattens the role assignments for JWT claims and identity
// building.
func (u User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Role)
	}
	return names
}

// HasRole reports a direct assignment; comparison semantics for
// restriction checks live in the visibility evaluator, not here.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r.Role == role {
			return true
		}
	}
	return false
}

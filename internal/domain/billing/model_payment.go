package billing

import (
	"time"

	"restriction-app/internal/domain/memberships"
	"restriction-app/internal/domain/users"
)

// Payment records a membership purchase (role grant via Stripe).
type Payment struct {
	ID                   uint `gorm:"primaryKey"`
	UserID               uint
	User                 users.User
	RolePlanID           *uint
	RolePlan             *memberships.RolePlan
	StripeSessionID      string `gorm:"uniqueIndex"`
	StripeSubscriptionID *string
	AmountEUR            float64
	Status               string
	CreatedAt            time.Time
}

package memberships

// RolePlan is a purchasable membership: paying for it grants Role
// until the Stripe subscription lapses.
type RolePlan struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	Role          string  `gorm:"not null;index" json:"role"`
	StripePriceID string  `gorm:"column:stripe_price_id;not null;uniqueIndex:idx_role_plans_stripe_price_id" json:"stripe_price_id"`
	PriceEUR      float64 `json:"price_eur"`
	Interval      string  `json:"interval"`
}

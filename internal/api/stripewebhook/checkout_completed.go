package stripewebhooks

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"restriction-app/database"
	"restriction-app/internal/domain/billing"
	"restriction-app/internal/domain/memberships"
	"restriction-app/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/subscription"
	"gorm.io/gorm/clause"
)

func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	// Fetch full session with expansions
	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("subscription"),
				stripe.String("customer"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch expanded checkout session: %w", err)
	}

	if fullSession.Subscription == nil || fullSession.Subscription.ID == "" {
		return errors.New("checkout session missing subscription")
	}
	subscriptionID := fullSession.Subscription.ID

	subData, err := subscription.Get(subscriptionID, nil)
	if err != nil || subData == nil || subData.Items == nil || len(subData.Items.Data) == 0 || subData.Items.Data[0].Price == nil {
		return fmt.Errorf("failed to fetch subscription items: %w", err)
	}

	// Identify user: metadata.user_id preferred, else ClientReferenceID
	userID, err := userIDFromSubscriptionOrRef(subData, fullSession.ClientReferenceID)
	if err != nil {
		return err
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	// Map Stripe price -> RolePlan
	priceID := subData.Items.Data[0].Price.ID
	var plan memberships.RolePlan
	if err := database.DB.Where("stripe_price_id = ?", priceID).First(&plan).Error; err != nil {
		return fmt.Errorf("role plan not found for stripe price_id=%s: %w", priceID, err)
	}

	periodEnd := time.Unix(subData.CurrentPeriodEnd, 0)
	status := string(subData.Status)

	updates := map[string]interface{}{
		"subscription_id":            subscriptionID,
		"current_period_end":         periodEnd,
		"stripe_subscription_status": status,
	}
	if fullSession.Customer != nil && fullSession.Customer.ID != "" {
		updates["stripe_customer_id"] = fullSession.Customer.ID
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update user after checkout: %w", err)
	}

	// Grant the plan's role. The unique (user_id, role) index makes the
	// grant idempotent across webhook retries.
	grant := users.UserRole{
		UserID: user.ID,
		Role:   plan.Role,
		Source: users.RoleSourceMembership,
	}
	if err := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&grant).Error; err != nil {
		return fmt.Errorf("failed to grant membership role: %w", err)
	}

	payment := billing.Payment{
		UserID:               user.ID,
		RolePlanID:           &plan.ID,
		StripeSessionID:      fullSession.ID,
		StripeSubscriptionID: &subscriptionID,
		AmountEUR:            plan.PriceEUR,
		Status:               status,
	}
	if err := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&payment).Error; err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	return nil
}

func userIDFromSubscriptionOrRef(sub *stripe.Subscription, clientRef string) (uint, error) {
	userIDStr := ""
	if sub.Metadata != nil {
		userIDStr = sub.Metadata["user_id"]
	}
	if userIDStr == "" {
		userIDStr = clientRef
	}
	if userIDStr == "" {
		return 0, errors.New("missing user_id (metadata.user_id or client_reference_id)")
	}

	uid64, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user_id %q: %w", userIDStr, err)
	}
	return uint(uid64), nil
}

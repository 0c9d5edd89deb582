package stripewebhooks

import (
	"time"

	"restriction-app/database"
	"restriction-app/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
)

func handleSubscriptionDeleted(sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	status := string(sub.Status)
	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0)

	var user users.User
	userID := userIDFromMetadata(sub.Metadata)
	if userID != 0 {
		_ = database.DB.Where("id = ?", userID).First(&user).Error
	}
	if user.ID == 0 {
		_ = database.DB.Where("subscription_id = ?", sub.ID).First(&user).Error
	}
	if user.ID == 0 {
		return nil
	}

	updates := map[string]interface{}{
		"stripe_subscription_status": status,
		"current_period_end":         periodEnd,
	}
	if err := database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Updates(updates).Error; err != nil {
		return err
	}

	// Membership roles lapse with the subscription. Manually granted
	// roles are untouched.
	return database.DB.
		Where("user_id = ? AND source = ?", user.ID, users.RoleSourceMembership).
		Delete(&users.UserRole{}).Error
}

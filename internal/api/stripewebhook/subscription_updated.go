package stripewebhooks

import (
	"fmt"
	"strconv"
	"time"

	"restriction-app/database"
	"restriction-app/internal/domain/memberships"
	"restriction-app/internal/domain/users"
	infrastripe "restriction-app/internal/infra/stripe"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm/clause"
)

func handleSubscriptionUpdated(sub *stripe.Subscription) error {
	if sub.ID == "" || sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return fmt.Errorf("subscription missing id/items/price")
	}

	subscriptionID := sub.ID
	activePriceID := sub.Items.Data[0].Price.ID
	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0)
	status := string(sub.Status)

	// Find user
	var user users.User
	userID := userIDFromMetadata(sub.Metadata)
	if userID != 0 {
		if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
			// acknowledge to avoid Stripe retries if user deleted
			return nil
		}
	} else {
		if err := database.DB.Where("subscription_id = ?", subscriptionID).First(&user).Error; err != nil {
			return nil
		}
	}

	updates := map[string]interface{}{
		"current_period_end":         periodEnd,
		"stripe_subscription_status": status,
		"subscription_id":            subscriptionID,
	}
	if err := database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Updates(updates).Error; err != nil {
		return err
	}

	// Sync the membership-sourced role to the subscription's state.
	var plan memberships.RolePlan
	if err := database.DB.Where("stripe_price_id = ?", activePriceID).First(&plan).Error; err != nil {
		return nil
	}

	if infrastripe.GrantsRole(&status) {
		grant := users.UserRole{
			UserID: user.ID,
			Role:   plan.Role,
			Source: users.RoleSourceMembership,
		}
		return database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&grant).Error
	}

	return database.DB.
		Where("user_id = ? AND source = ?", user.ID, users.RoleSourceMembership).
		Delete(&users.UserRole{}).Error
}

func userIDFromMetadata(md map[string]string) uint {
	if md == nil {
		return 0
	}
	s := md["user_id"]
	if s == "" {
		return 0
	}
	uid, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(uid)
}

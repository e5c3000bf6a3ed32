package constants

// BillingCycle is how often a subscription renews.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingAnnual  BillingCycle = "annual"
)

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionPaused    SubscriptionStatus = "paused"
)

// DefaultSubscriptionCategory labels imported subscriptions with no category.
const DefaultSubscriptionCategory = "General"

func ParseBillingCycle(s string) (BillingCycle, error) {
	return parseEnum("billing cycle", s, BillingCycle(""), []BillingCycle{BillingMonthly, BillingAnnual})
}

// ParseSubscriptionStatus defaults a blank cell to active.
func ParseSubscriptionStatus(s string) (SubscriptionStatus, error) {
	return parseEnum("subscription status", s, SubscriptionActive,
		[]SubscriptionStatus{SubscriptionActive, SubscriptionCancelled, SubscriptionPaused})
}

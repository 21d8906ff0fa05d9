package constant

// SubscriptionStatus mirrors the billing provider's view of a subscription.
type SubscriptionStatus string

const (
	// SubscriptionNone is the zero value for users that never subscribed.
	SubscriptionNone SubscriptionStatus = ""
	// SubscriptionActive is a paid, current subscription.
	SubscriptionActive SubscriptionStatus = "active"
	// SubscriptionCanceled is a subscription that will not renew.
	SubscriptionCanceled SubscriptionStatus = "canceled"
	// SubscriptionPastDue is a subscription with a failed payment.
	SubscriptionPastDue SubscriptionStatus = "past_due"
)

// SubscriptionPlan is the plan name attached to a subscription.
type SubscriptionPlan string

const (
	PlanFree    SubscriptionPlan = "free"
	PlanPremium SubscriptionPlan = "premium"
)

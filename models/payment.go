package models

type CreateCheckoutRequest struct {
	PlanType string `json:"planType" form:"planType" binding:"required,oneof=monthly yearly"`
}

type CheckoutResponse struct {
	CheckoutUrl string `json:"checkoutUrl"`
}

type SubscriptionStatus struct {
	IsPremium        bool   `json:"isPremium"`
	ExpiresAt        string `json:"expiresAt,omitempty"`
	StripeCustomerId string `json:"stripeCustomerId,omitempty"`
}

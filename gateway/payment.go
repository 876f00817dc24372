package gateway

import (
	"context"
	"net/http"

	"examgen_client/models"
)

// CreateCheckout opens a Stripe checkout session; the caller redirects the
// browser to the returned URL.
func (c *Client) CreateCheckout(ctx context.Context, token, planType string) (models.CheckoutResponse, error) {
	var resp models.CheckoutResponse
	err := c.do(ctx, "create checkout", http.MethodPost, "/Payment/create-checkout", token, nil,
		models.CreateCheckoutRequest{PlanType: planType}, &resp)
	return resp, err
}

func (c *Client) GetSubscriptionStatus(ctx context.Context, token string) (models.SubscriptionStatus, error) {
	var status models.SubscriptionStatus
	err := c.do(ctx, "get subscription status", http.MethodGet, "/Payment/subscription-status", token, nil, nil, &status)
	return status, err
}

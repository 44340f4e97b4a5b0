package billing

import "context"

// CheckoutSession is a provider-side checkout the tenant is redirected to.
type CheckoutSession struct {
	ID  string
	URL string
}

// ProviderEvent is a normalized billing event pushed by the provider.
type ProviderEvent struct {
	Type           string
	SubscriptionID string
	TenantID       int
	Plan           string
}

// Provider abstracts the payment backend. Production wires the Stripe
// implementation; development and tests run against the mock, which
// activates subscriptions immediately without a real checkout.
type Provider interface {
	CreateCheckout(ctx context.Context, tenantID int, plan, email string) (*CheckoutSession, error)
	CancelSubscription(ctx context.Context, externalID string) error
}

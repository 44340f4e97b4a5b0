package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	stripesubscription "github.com/stripe/stripe-go/v76/subscription"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeConfig holds Stripe configuration
type StripeConfig struct {
	SecretKey         string
	WebhookSecret     string
	PriceEssencial    string
	PriceProfissional string
	SuccessURL        string
	CancelURL         string
}

// StripeProvider implements Provider against the Stripe API.
type StripeProvider struct {
	config *StripeConfig
}

// NewStripeProvider creates a Stripe-backed payment provider.
func NewStripeProvider(config *StripeConfig) *StripeProvider {
	stripe.Key = config.SecretKey
	return &StripeProvider{config: config}
}

func (p *StripeProvider) CreateCheckout(ctx context.Context, tenantID int, plan, email string) (*CheckoutSession, error) {
	priceID, err := p.priceIDForPlan(plan)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.config.SuccessURL),
		CancelURL:  stripe.String(p.config.CancelURL),
		Metadata: map[string]string{
			"tenant_id": strconv.Itoa(tenantID),
			"plan":      plan,
		},
	}
	if email != "" {
		params.CustomerEmail = stripe.String(email)
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

func (p *StripeProvider) CancelSubscription(ctx context.Context, externalID string) error {
	if _, err := stripesubscription.Cancel(externalID, nil); err != nil {
		return fmt.Errorf("failed to cancel stripe subscription: %w", err)
	}
	return nil
}

// ParseWebhook verifies a Stripe webhook and normalizes the events the
// billing service cares about. Other event types return (nil, nil).
func (p *StripeProvider) ParseWebhook(payload []byte, signature string) (*ProviderEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.config.WebhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session: %w", err)
		}
		tenantID, err := strconv.Atoi(sess.Metadata["tenant_id"])
		if err != nil {
			return nil, fmt.Errorf("missing tenant_id in metadata: %w", err)
		}
		subID := ""
		if sess.Subscription != nil {
			subID = sess.Subscription.ID
		}
		return &ProviderEvent{
			Type:           "checkout.completed",
			SubscriptionID: subID,
			TenantID:       tenantID,
			Plan:           sess.Metadata["plan"],
		}, nil
	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("failed to unmarshal subscription: %w", err)
		}
		return &ProviderEvent{
			Type:           "subscription.deleted",
			SubscriptionID: sub.ID,
		}, nil
	}

	return nil, nil
}

func (p *StripeProvider) priceIDForPlan(plan string) (string, error) {
	switch plan {
	case "essencial":
		return p.config.PriceEssencial, nil
	case "profissional":
		return p.config.PriceProfissional, nil
	default:
		return "", fmt.Errorf("invalid plan: %s", plan)
	}
}

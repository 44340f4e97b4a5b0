package billing

import (
	"context"
	"fmt"
	"sync/atomic"
)

// MockProvider fakes the payment backend for development and tests.
// Checkouts "complete" immediately: the OnComplete hook fires before
// CreateCheckout returns, so the subscription activates without anyone
// visiting the checkout URL.
type MockProvider struct {
	BaseURL string
	counter atomic.Int64

	// OnComplete is invoked as if the provider had sent the
	// checkout-completed webhook. Wired by the billing service.
	OnComplete func(ctx context.Context, event ProviderEvent) error
}

// NewMockProvider creates a mock payment provider.
func NewMockProvider(baseURL string) *MockProvider {
	if baseURL == "" {
		baseURL = "https://pagamento.example.com.br"
	}
	return &MockProvider{BaseURL: baseURL}
}

func (m *MockProvider) CreateCheckout(ctx context.Context, tenantID int, plan, email string) (*CheckoutSession, error) {
	id := fmt.Sprintf("mock_sub_%d_%d", tenantID, m.counter.Add(1))

	if m.OnComplete != nil {
		err := m.OnComplete(ctx, ProviderEvent{
			Type:           "checkout.completed",
			SubscriptionID: id,
			TenantID:       tenantID,
			Plan:           plan,
		})
		if err != nil {
			return nil, err
		}
	}

	return &CheckoutSession{
		ID:  id,
		URL: fmt.Sprintf("%s/checkout/%s", m.BaseURL, id),
	}, nil
}

func (m *MockProvider) CancelSubscription(ctx context.Context, externalID string) error {
	return nil
}

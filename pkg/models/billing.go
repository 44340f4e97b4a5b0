package models

// CheckoutRequest starts a plan subscription
type CheckoutRequest struct {
	Plan string `json:"plan" validate:"required,oneof=essencial profissional"`
}

// CheckoutResponse carries the provider checkout redirect
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// SubscriptionResponse describes the tenant's current subscription
type SubscriptionResponse struct {
	Plan             string `json:"plan"`
	Status           string `json:"status"`
	CurrentPeriodEnd string `json:"current_period_end,omitempty"`
	CanceledAt       string `json:"canceled_at,omitempty"`
}

// PricingTier describes one plan offer
type PricingTier struct {
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// PricingResponse lists the available plans
type PricingResponse struct {
	Tiers []PricingTier `json:"tiers"`
}

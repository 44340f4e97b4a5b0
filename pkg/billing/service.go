package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/ent/subscription"
	"github.com/familiasoares/imobicrm/ent/tenant"
	"github.com/familiasoares/imobicrm/pkg/domain"
	"github.com/familiasoares/imobicrm/pkg/logger"
	"github.com/familiasoares/imobicrm/pkg/models"
	"github.com/familiasoares/imobicrm/pkg/session"
)

// Service manages tenant subscriptions on top of a payment Provider.
type Service struct {
	db       *ent.Client
	provider Provider
	log      logger.Logger
}

// NewService creates a new billing service. When the provider is the
// mock, its completion hook is wired so checkouts activate instantly.
func NewService(db *ent.Client, provider Provider, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	s := &Service{
		db:       db,
		provider: provider,
		log:      log,
	}
	if mock, ok := provider.(*MockProvider); ok {
		mock.OnComplete = s.Activate
	}
	return s
}

// Checkout starts a subscription purchase for the caller's tenant.
func (s *Service) Checkout(ctx context.Context, sess *session.Session, plan string) (*models.CheckoutResponse, error) {
	if sess == nil {
		return nil, domain.NewUnauthorizedError()
	}
	if plan != "essencial" && plan != "profissional" {
		return nil, domain.NewValidationError("invalid plan")
	}

	t, err := s.db.Tenant.Get(ctx, sess.TenantID)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to load tenant: %w", err))
	}

	email := ""
	if t.BillingEmail != nil {
		email = *t.BillingEmail
	}

	checkout, err := s.provider.CreateCheckout(ctx, t.ID, plan, email)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to create checkout: %w", err))
	}

	return &models.CheckoutResponse{
		SessionID: checkout.ID,
		URL:       checkout.URL,
	}, nil
}

// Activate records a completed checkout: the tenant moves onto the paid
// plan and its subscription row goes active. Idempotent per external ID.
func (s *Service) Activate(ctx context.Context, event ProviderEvent) error {
	existing, err := s.db.Subscription.
		Query().
		Where(subscription.ExternalID(event.SubscriptionID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check subscription: %w", err)
	}
	if existing {
		return nil
	}

	periodEnd := time.Now().AddDate(0, 1, 0)
	_, err = s.db.Subscription.
		Create().
		SetTenantID(event.TenantID).
		SetPlan(subscription.Plan(event.Plan)).
		SetStatus(subscription.StatusActive).
		SetExternalID(event.SubscriptionID).
		SetCurrentPeriodEnd(periodEnd).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	_, err = s.db.Tenant.
		UpdateOneID(event.TenantID).
		SetPlan(tenant.Plan(event.Plan)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant plan: %w", err)
	}

	s.log.Info("subscription activated",
		"tenant_id", event.TenantID,
		"plan", event.Plan,
		"external_id", event.SubscriptionID)
	return nil
}

// Cancel ends the tenant's active subscription. The tenant drops back
// to trial-tier access at the end of the paid period.
func (s *Service) Cancel(ctx context.Context, sess *session.Session) error {
	if sess == nil {
		return domain.NewUnauthorizedError()
	}

	sub, err := s.db.Subscription.
		Query().
		Where(
			subscription.TenantID(sess.TenantID),
			subscription.StatusEQ(subscription.StatusActive),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("subscription")
		}
		return domain.NewInternalError(err)
	}

	if sub.ExternalID != "" {
		if err := s.provider.CancelSubscription(ctx, sub.ExternalID); err != nil {
			return domain.NewInternalError(fmt.Errorf("failed to cancel with provider: %w", err))
		}
	}

	_, err = sub.Update().
		SetStatus(subscription.StatusCanceled).
		SetCanceledAt(time.Now()).
		Save(ctx)
	if err != nil {
		return domain.NewInternalError(fmt.Errorf("failed to mark subscription canceled: %w", err))
	}

	s.log.Info("subscription canceled", "tenant_id", sess.TenantID, "external_id", sub.ExternalID)
	return nil
}

// Current returns the tenant's latest subscription, or NOT_FOUND when
// the tenant never subscribed.
func (s *Service) Current(ctx context.Context, sess *session.Session) (*models.SubscriptionResponse, error) {
	if sess == nil {
		return nil, domain.NewUnauthorizedError()
	}

	sub, err := s.db.Subscription.
		Query().
		Where(subscription.TenantID(sess.TenantID)).
		Order(ent.Desc(subscription.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("subscription")
		}
		return nil, domain.NewInternalError(err)
	}

	resp := &models.SubscriptionResponse{
		Plan:   string(sub.Plan),
		Status: string(sub.Status),
	}
	if sub.CurrentPeriodEnd != nil {
		resp.CurrentPeriodEnd = sub.CurrentPeriodEnd.Format(time.RFC3339)
	}
	if sub.CanceledAt != nil {
		resp.CanceledAt = sub.CanceledAt.Format(time.RFC3339)
	}
	return resp, nil
}

// ExpireTrials deactivates tenants whose trial ended and who never
// subscribed. Called by the nightly job.
func (s *Service) ExpireTrials(ctx context.Context) (int, error) {
	expired, err := s.db.Tenant.
		Query().
		Where(
			tenant.PlanEQ(tenant.PlanTrial),
			tenant.Active(true),
			tenant.TrialEndsAtLT(time.Now()),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired trials: %w", err)
	}

	count := 0
	for _, t := range expired {
		if _, err := t.Update().SetActive(false).Save(ctx); err != nil {
			s.log.Error("failed to deactivate expired trial", "tenant_id", t.ID, "error", err)
			continue
		}
		s.log.Info("trial expired, tenant deactivated", "tenant_id", t.ID, "slug", t.Slug)
		count++
	}
	return count, nil
}

// Pricing returns the plan catalog shown on the upgrade page.
func (s *Service) Pricing() *models.PricingResponse {
	return &models.PricingResponse{
		Tiers: []models.PricingTier{
			{
				Name:        "essencial",
				Price:       97,
				Description: "Para corretores autônomos e equipes pequenas",
				Features: []string{
					"Funil de leads ilimitado",
					"Histórico completo de atendimento",
					"Até 3 usuários",
				},
			},
			{
				Name:        "profissional",
				Price:       197,
				Description: "Para imobiliárias com equipe de vendas",
				Features: []string{
					"Tudo do Essencial",
					"Usuários ilimitados",
					"Dashboard de conversão",
					"Suporte prioritário",
				},
			},
		},
	}
}

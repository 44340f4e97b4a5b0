package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	apierrors "github.com/familiasoares/imobicrm/pkg/api/errors"
	"github.com/familiasoares/imobicrm/pkg/billing"
	"github.com/familiasoares/imobicrm/pkg/logger"
	"github.com/familiasoares/imobicrm/pkg/models"
	"github.com/familiasoares/imobicrm/pkg/session"
	"github.com/labstack/echo/v4"
)

// BillingHandler handles subscription HTTP requests.
type BillingHandler struct {
	billing *billing.Service
	stripe  *billing.StripeProvider
	log     logger.Logger
}

// NewBillingHandler creates a new billing handler. stripe is nil when
// the mock provider is active; the webhook endpoint then rejects calls.
func NewBillingHandler(billingService *billing.Service, stripe *billing.StripeProvider, log logger.Logger) *BillingHandler {
	if log == nil {
		log = logger.Default()
	}
	return &BillingHandler{
		billing: billingService,
		stripe:  stripe,
		log:     log,
	}
}

// Pricing handles GET /api/v1/billing/pricing
func (h *BillingHandler) Pricing(c echo.Context) error {
	return c.JSON(http.StatusOK, h.billing.Pricing())
}

// Checkout handles POST /api/v1/billing/checkout
func (h *BillingHandler) Checkout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	sess := session.FromEcho(c)
	if sess == nil {
		return apierrors.UnauthorizedError(c)
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.BindError(c, err)
	}

	resp, err := h.billing.Checkout(ctx, sess, req.Plan)
	if err != nil {
		return apierrors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Subscription handles GET /api/v1/billing/subscription
func (h *BillingHandler) Subscription(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	sess := session.FromEcho(c)
	if sess == nil {
		return apierrors.UnauthorizedError(c)
	}

	resp, err := h.billing.Current(ctx, sess)
	if err != nil {
		return apierrors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Cancel handles POST /api/v1/billing/cancel
func (h *BillingHandler) Cancel(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	sess := session.FromEcho(c)
	if sess == nil {
		return apierrors.UnauthorizedError(c)
	}

	if err := h.billing.Cancel(ctx, sess); err != nil {
		return apierrors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Assinatura cancelada"})
}

// Webhook handles POST /api/v1/billing/webhook (Stripe only).
func (h *BillingHandler) Webhook(c echo.Context) error {
	if h.stripe == nil {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Webhooks are not enabled.",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apierrors.BindError(c, err)
	}

	event, err := h.stripe.ParseWebhook(payload, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		h.log.Warn("webhook rejected", "error", err)
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid_webhook"})
	}
	if event == nil {
		// Event type we don't care about.
		return c.NoContent(http.StatusOK)
	}

	if event.Type == "checkout.completed" {
		if err := h.billing.Activate(ctx, *event); err != nil {
			return apierrors.InternalError(c, err)
		}
	}
	return c.NoContent(http.StatusOK)
}

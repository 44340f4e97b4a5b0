package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	apierrors "github.com/familiasoares/imobicrm/pkg/api/errors"
	"github.com/familiasoares/imobicrm/pkg/leads"
	"github.com/familiasoares/imobicrm/pkg/models"
	"github.com/familiasoares/imobicrm/pkg/session"
	"github.com/labstack/echo/v4"
)

// LeadHandler handles lead CRUD HTTP requests.
type LeadHandler struct {
	leads *leads.Service
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(leadService *leads.Service) *LeadHandler {
	return &LeadHandler{leads: leadService}
}

// Create handles POST /api/v1/leads
func (h *LeadHandler) Create(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	sess := session.FromEcho(c)
	if sess == nil {
		return apierrors.UnauthorizedError(c)
	}

	var req models.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.BindError(c, err)
	}

	lead, err := h.leads.Create(ctx, sess, req)
	if err != nil {
		return apierrors.DomainError(c, err)
	}
	return c.JSON(http.StatusCreated, lead)
}

// Get handles GET /api/v1/leads/:id
func (h *LeadHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sess := session.FromEcho(c)
	if sess == nil {
		return apierrors.UnauthorizedError(c)
	}

	id, err := leadID(c)
	if err != nil {
		return apierrors.ValidationError(c, "Invalid lead ID")
	}

	lead, err := h.leads.Get(ctx, sess, id)
	if err != nil {
		return apierrors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// Update handles PATCH /api/v1/leads/:id
func (h *LeadHandler) Update(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	sess := session.FromEcho(c)
	if sess == nil {
		return apierrors.UnauthorizedError(c)
	}

	id, err := leadID(c)
	if err != nil {
		return apierrors.ValidationError(c, "Invalid lead ID")
	}

	var req models.UpdateLeadRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.BindError(c, err)
	}

	lead, err := h.leads.Update(ctx, sess, id, req)
	if err != nil {
		return apierrors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// List handles GET /api/v1/leads
func (h *LeadHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	sess := session.FromEcho(c)
	if sess == nil {
		return apierrors.UnauthorizedError(c)
	}

	var req models.LeadListRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BindError(c, err)
	}

	resp, err := h.leads.List(ctx, sess, req)
	if err != nil {
		return apierrors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Archive handles POST /api/v1/leads/:id/archive
func (h *LeadHandler) Archive(c echo.Context) error {
	return h.lifecycle(c, h.leads.Archive, "Lead arquivado")
}

// Reactivate handles POST /api/v1/leads/:id/reactivate
func (h *LeadHandler) Reactivate(c echo.Context) error {
	return h.lifecycle(c, h.leads.Reactivate, "Lead reativado")
}

// DeleteForever handles DELETE /api/v1/leads/:id
func (h *LeadHandler) DeleteForever(c echo.Context) error {
	return h.lifecycle(c, h.leads.DeleteForever, "Lead excluído permanentemente")
}

func (h *LeadHandler) lifecycle(c echo.Context, op func(context.Context, *session.Session, int) error, message string) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	sess := session.FromEcho(c)
	if sess == nil {
		return apierrors.UnauthorizedError(c)
	}

	id, err := leadID(c)
	if err != nil {
		return apierrors.ValidationError(c, "Invalid lead ID")
	}

	if err := op(ctx, sess, id); err != nil {
		return apierrors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: message})
}

// BulkArchive handles POST /api/v1/leads/bulk/archive
func (h *LeadHandler) BulkArchive(c echo.Context) error {
	return h.bulk(c, h.leads.BulkArchive)
}

// BulkReactivate handles POST /api/v1/leads/bulk/reactivate
func (h *LeadHandler) BulkReactivate(c echo.Context) error {
	return h.bulk(c, h.leads.BulkReactivate)
}

// BulkDeleteForever handles POST /api/v1/leads/bulk/delete
func (h *LeadHandler) BulkDeleteForever(c echo.Context) error {
	return h.bulk(c, h.leads.BulkDeleteForever)
}

func (h *LeadHandler) bulk(c echo.Context, op func(context.Context, *session.Session, []int) *models.BulkResult) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	sess := session.FromEcho(c)
	if sess == nil {
		return apierrors.UnauthorizedError(c)
	}

	var req models.BulkRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.BindError(c, err)
	}

	result := op(ctx, sess, req.IDs)

	// Partial failures still return 200; the body says which items failed.
	return c.JSON(http.StatusOK, result)
}

func leadID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.ErrBadRequest
	}
	return id, nil
}

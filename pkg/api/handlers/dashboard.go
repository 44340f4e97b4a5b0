package handlers

import (
	"context"
	"net/http"
	"time"

	apierrors "github.com/familiasoares/imobicrm/pkg/api/errors"
	"github.com/familiasoares/imobicrm/pkg/dashboard"
	"github.com/familiasoares/imobicrm/pkg/session"
	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the tenant dashboard aggregates.
type DashboardHandler struct {
	dashboard *dashboard.Service
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboardService}
}

// Overview handles GET /api/v1/dashboard
func (h *DashboardHandler) Overview(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	sess := session.FromEcho(c)
	if sess == nil {
		return apierrors.UnauthorizedError(c)
	}

	resp, err := h.dashboard.Overview(ctx, sess)
	if err != nil {
		return apierrors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/ent/tenant"
	"github.com/familiasoares/imobicrm/ent/user"
	apierrors "github.com/familiasoares/imobicrm/pkg/api/errors"
	"github.com/familiasoares/imobicrm/pkg/auth"
	"github.com/familiasoares/imobicrm/pkg/email"
	"github.com/familiasoares/imobicrm/pkg/logger"
	"github.com/familiasoares/imobicrm/pkg/metrics"
	"github.com/familiasoares/imobicrm/pkg/models"
	"github.com/familiasoares/imobicrm/pkg/slug"
	"github.com/labstack/echo/v4"
)

const trialDays = 14

// AuthHandler handles registration and login.
type AuthHandler struct {
	db        *ent.Client
	email     *email.Service
	metrics   *metrics.Metrics
	log       logger.Logger
	jwtSecret string
	jwtHours  int
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(db *ent.Client, e *email.Service, m *metrics.Metrics, log logger.Logger, jwtSecret string, jwtHours int) *AuthHandler {
	if log == nil {
		log = logger.Default()
	}
	return &AuthHandler{
		db:        db,
		email:     e,
		metrics:   m,
		log:       log,
		jwtSecret: jwtSecret,
		jwtHours:  jwtHours,
	}
}

// Register creates an agency (tenant) and its first admin user, and
// logs the new admin in.
func (h *AuthHandler) Register(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.BindError(c, err)
	}

	tenantSlug := slug.Make(req.AgencyName)
	if tenantSlug == "" {
		return apierrors.ValidationError(c, "Invalid agency name")
	}

	taken, err := h.db.Tenant.Query().Where(tenant.Slug(tenantSlug)).Exist(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	if taken {
		return apierrors.ValidationError(c, "An agency with this name already exists")
	}

	emailUsed, err := h.db.User.Query().Where(user.Email(req.Email)).Exist(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	if emailUsed {
		return apierrors.ValidationError(c, "Email already registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	// Tenant and admin are created together or not at all.
	tx, err := h.db.Tx(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	newTenant, err := tx.Tenant.
		Create().
		SetName(req.AgencyName).
		SetSlug(tenantSlug).
		SetTrialEndsAt(time.Now().AddDate(0, 0, trialDays)).
		SetBillingEmail(req.Email).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return apierrors.InternalError(c, err)
	}

	admin, err := tx.User.
		Create().
		SetTenantID(newTenant.ID).
		SetEmail(req.Email).
		SetPasswordHash(hash).
		SetName(req.Name).
		SetRole(user.RoleAdmin).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return apierrors.InternalError(c, err)
	}

	if err := tx.Commit(); err != nil {
		return apierrors.InternalError(c, err)
	}

	token, err := auth.GenerateJWT(admin.ID, newTenant.ID, admin.Email, h.jwtSecret, h.jwtHours)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	h.log.Info("agency registered", "tenant_id", newTenant.ID, "slug", tenantSlug)
	if h.email != nil {
		go func() {
			if err := h.email.SendWelcomeEmail(admin.Email, admin.Name, newTenant.Name); err != nil {
				h.log.Warn("failed to send welcome email", "error", err)
			}
		}()
	}

	return c.JSON(http.StatusCreated, models.AuthResponse{
		Token: token,
		User: &models.UserInfo{
			ID:         admin.ID,
			TenantID:   newTenant.ID,
			Email:      admin.Email,
			Name:       admin.Name,
			Role:       string(admin.Role),
			AgencyName: newTenant.Name,
			Plan:       string(newTenant.Plan),
		},
	})
}

// Login authenticates a user and returns a JWT.
func (h *AuthHandler) Login(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.BindError(c, err)
	}

	u, err := h.db.User.
		Query().
		Where(user.Email(req.Email)).
		WithTenant().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			h.recordLogin(false)
			return h.invalidCredentials(c)
		}
		return apierrors.InternalError(c, err)
	}

	if !auth.CheckPassword(req.Password, u.PasswordHash) {
		h.recordLogin(false)
		return h.invalidCredentials(c)
	}

	t := u.Edges.Tenant
	if t == nil || !t.Active {
		h.recordLogin(false)
		return c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error:   "tenant_inactive",
			Message: "Esta conta está inativa. Entre em contato com o suporte.",
		})
	}

	token, err := auth.GenerateJWT(u.ID, u.TenantID, u.Email, h.jwtSecret, h.jwtHours)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	if _, err := u.Update().SetLastLoginAt(time.Now()).Save(ctx); err != nil {
		h.log.Warn("failed to record last login", "user_id", u.ID, "error", err)
	}

	h.recordLogin(true)
	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User: &models.UserInfo{
			ID:         u.ID,
			TenantID:   u.TenantID,
			Email:      u.Email,
			Name:       u.Name,
			Role:       string(u.Role),
			AgencyName: t.Name,
			Plan:       string(t.Plan),
		},
	})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	u, err := h.db.User.
		Query().
		Where(user.ID(userID)).
		WithTenant().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.NotFoundError(c)
		}
		return apierrors.InternalError(c, err)
	}

	info := models.UserInfo{
		ID:       u.ID,
		TenantID: u.TenantID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     string(u.Role),
	}
	if t := u.Edges.Tenant; t != nil {
		info.AgencyName = t.Name
		info.Plan = string(t.Plan)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *AuthHandler) invalidCredentials(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "invalid_credentials",
		Message: "Email ou senha incorretos",
	})
}

func (h *AuthHandler) recordLogin(success bool) {
	if h.metrics != nil {
		h.metrics.RecordLoginAttempt(success)
	}
}

package handlers

import (
	"context"
	"net/http"
	"time"

	apierrors "github.com/familiasoares/imobicrm/pkg/api/errors"
	"github.com/familiasoares/imobicrm/pkg/models"
	"github.com/familiasoares/imobicrm/pkg/pipeline"
	"github.com/familiasoares/imobicrm/pkg/session"
	"github.com/familiasoares/imobicrm/pkg/timeline"
	"github.com/labstack/echo/v4"
)

// PipelineHandler handles status transitions, history and the Kanban
// board view.
type PipelineHandler struct {
	pipeline *pipeline.Service
	timeline *timeline.Reader
}

// NewPipelineHandler creates a new pipeline handler.
func NewPipelineHandler(pipelineService *pipeline.Service) *PipelineHandler {
	return &PipelineHandler{
		pipeline: pipelineService,
		timeline: timeline.NewReader(pipelineService),
	}
}

// Transition handles PATCH /api/v1/leads/:id/status
func (h *PipelineHandler) Transition(c echo.Context) error {
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

	var req models.TransitionRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.BindError(c, err)
	}

	status, err := pipeline.ParseStatus(req.Status)
	if err != nil {
		return apierrors.ValidationError(c, "Invalid status")
	}

	if err := h.pipeline.Transition(ctx, sess, id, status, req.Note); err != nil {
		return apierrors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// AddNote handles POST /api/v1/leads/:id/notes
func (h *PipelineHandler) AddNote(c echo.Context) error {
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

	var req models.AddNoteRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BindError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.BindError(c, err)
	}

	if err := h.pipeline.AddNote(ctx, sess, id, req.Text); err != nil {
		return apierrors.DomainError(c, err)
	}
	return c.JSON(http.StatusCreated, models.SuccessResponse{Success: true})
}

// History handles GET /api/v1/leads/:id/history
func (h *PipelineHandler) History(c echo.Context) error {
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

	entries, err := h.timeline.Read(ctx, sess, id)
	if err != nil {
		return apierrors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// Board handles GET /api/v1/board
func (h *PipelineHandler) Board(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	sess := session.FromEcho(c)
	if sess == nil {
		return apierrors.UnauthorizedError(c)
	}

	board, err := h.pipeline.BoardSnapshot(ctx, sess)
	if err != nil {
		return apierrors.DomainError(c, err)
	}
	return c.JSON(http.StatusOK, board)
}

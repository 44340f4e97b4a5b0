package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/ent/lead"
	"github.com/familiasoares/imobicrm/ent/leadhistory"
	"github.com/familiasoares/imobicrm/pkg/domain"
	"github.com/familiasoares/imobicrm/pkg/logger"
	"github.com/familiasoares/imobicrm/pkg/metrics"
	"github.com/familiasoares/imobicrm/pkg/session"
)

const maxNoteLen = 1000

// Service executes lead status transitions and guards every read and
// write with the caller's tenant.
type Service struct {
	db      *ent.Client
	views   domain.ViewInvalidator
	metrics *metrics.Metrics
	log     logger.Logger
}

// NewService creates a new pipeline service. views and m may be nil.
func NewService(db *ent.Client, views domain.ViewInvalidator, m *metrics.Metrics, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		db:      db,
		views:   views,
		metrics: m,
		log:     log,
	}
}

// getLead fetches a lead scoped by (id, tenant). A miss is always
// NotFound, whether the lead does not exist or belongs to another
// tenant; the two cases must be indistinguishable.
func (s *Service) getLead(ctx context.Context, sess *session.Session, leadID int) (*ent.Lead, error) {
	l, err := s.db.Lead.
		Query().
		Where(lead.ID(leadID), lead.TenantID(sess.TenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("lead")
		}
		return nil, domain.NewInternalError(err)
	}
	return l, nil
}

// Transition moves a lead to a new pipeline status and appends a
// history record in the same transaction. Requesting the current
// status is an idempotent no-op: no write of any kind happens.
func (s *Service) Transition(ctx context.Context, sess *session.Session, leadID int, newStatus Status, note string) error {
	if sess == nil {
		return domain.NewUnauthorizedError()
	}
	if !newStatus.Valid() {
		return domain.NewValidationError("invalid status: " + string(newStatus))
	}

	current, err := s.getLead(ctx, sess, leadID)
	if err != nil {
		return err
	}

	before := Status(current.Status)
	if before == newStatus {
		return nil
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return domain.NewConflictError("failed to start transaction", err)
	}

	now := time.Now()

	_, err = tx.Lead.
		UpdateOne(current).
		SetStatus(lead.Status(newStatus)).
		SetStatusChangedAt(now).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return domain.NewConflictError("failed to update lead status", err)
	}

	historyBuilder := tx.LeadHistory.
		Create().
		SetLeadID(leadID).
		SetUserID(sess.UserID).
		SetStatusBefore(leadhistory.StatusBefore(before)).
		SetStatusAfter(leadhistory.StatusAfter(newStatus))
	if note != "" {
		historyBuilder.SetNote(note)
	}

	if _, err := historyBuilder.Save(ctx); err != nil {
		tx.Rollback()
		return domain.NewConflictError("failed to create history record", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.NewConflictError("failed to commit transaction", err)
	}

	s.log.Info("lead status transition",
		"tenant_id", sess.TenantID,
		"lead_id", leadID,
		"from", string(before),
		"to", string(newStatus),
	)
	if s.metrics != nil {
		s.metrics.RecordTransition(string(newStatus))
	}
	s.invalidate(ctx, sess.TenantID)

	return nil
}

// AddNote appends a history entry without moving the lead: the entry
// carries status_before == status_after == current status, which is
// how annotations are distinguished from transitions on the wire.
func (s *Service) AddNote(ctx context.Context, sess *session.Session, leadID int, text string) error {
	if sess == nil {
		return domain.NewUnauthorizedError()
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.NewValidationError("note text is required")
	}
	if len(text) > maxNoteLen {
		return domain.NewValidationError("note text exceeds 1000 characters")
	}

	current, err := s.getLead(ctx, sess, leadID)
	if err != nil {
		return err
	}

	_, err = s.db.LeadHistory.
		Create().
		SetLeadID(leadID).
		SetUserID(sess.UserID).
		SetStatusBefore(leadhistory.StatusBefore(current.Status)).
		SetStatusAfter(leadhistory.StatusAfter(current.Status)).
		SetNote(text).
		Save(ctx)
	if err != nil {
		return domain.NewConflictError("failed to create note", err)
	}

	if s.metrics != nil {
		s.metrics.RecordNoteAdded()
	}

	return nil
}

// History returns a lead's raw history rows ordered by creation time
// ascending, oldest first. Pure read, no side effects.
func (s *Service) History(ctx context.Context, sess *session.Session, leadID int) ([]*ent.LeadHistory, error) {
	if sess == nil {
		return nil, domain.NewUnauthorizedError()
	}

	if _, err := s.getLead(ctx, sess, leadID); err != nil {
		return nil, err
	}

	rows, err := s.db.LeadHistory.
		Query().
		Where(leadhistory.LeadID(leadID)).
		Order(ent.Asc(leadhistory.FieldCreatedAt), ent.Asc(leadhistory.FieldID)).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	return rows, nil
}

// BoardSnapshot returns all active (non-archived) leads of the
// caller's tenant grouped by status, cards ordered by most recent
// status change first.
func (s *Service) BoardSnapshot(ctx context.Context, sess *session.Session) (*Board, error) {
	if sess == nil {
		return nil, domain.NewUnauthorizedError()
	}

	leads, err := s.db.Lead.
		Query().
		Where(lead.TenantID(sess.TenantID), lead.Archived(false)).
		Order(ent.Desc(lead.FieldStatusChangedAt)).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	board := NewBoard()
	for _, l := range leads {
		status := Status(l.Status)
		board.Columns[status] = append(board.Columns[status], Card{
			ID:              l.ID,
			Name:            l.Name,
			City:            l.City,
			Interesse:       l.Interesse,
			Status:          status,
			ResponsibleID:   l.ResponsibleID,
			StatusChangedAt: l.StatusChangedAt,
			UpdatedAt:       l.UpdatedAt,
		})
	}

	return board, nil
}

// invalidate signals the cached read views (board, list, dashboard)
// that tenant data changed. Failures are logged, not propagated: the
// transition already committed.
func (s *Service) invalidate(ctx context.Context, tenantID int) {
	if s.views == nil {
		return
	}
	if err := s.views.InvalidateTenantViews(ctx, tenantID); err != nil {
		s.log.Warn("failed to invalidate tenant views", "tenant_id", tenantID, "error", err)
	}
}

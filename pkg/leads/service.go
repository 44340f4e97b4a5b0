package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/ent/lead"
	"github.com/familiasoares/imobicrm/ent/leadhistory"
	"github.com/familiasoares/imobicrm/ent/user"
	"github.com/familiasoares/imobicrm/pkg/cache"
	"github.com/familiasoares/imobicrm/pkg/domain"
	"github.com/familiasoares/imobicrm/pkg/logger"
	"github.com/familiasoares/imobicrm/pkg/metrics"
	"github.com/familiasoares/imobicrm/pkg/models"
	"github.com/familiasoares/imobicrm/pkg/phone"
	"github.com/familiasoares/imobicrm/pkg/session"
)

const listCacheTTL = 5 * time.Minute

// Service handles lead CRUD and lifecycle business logic. Every
// operation is scoped by the caller's tenant.
type Service struct {
	db      *ent.Client
	cache   *cache.Client
	metrics *metrics.Metrics
	log     logger.Logger
}

// NewService creates a new lead service. cache and m may be nil.
func NewService(db *ent.Client, c *cache.Client, m *metrics.Metrics, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		db:      db,
		cache:   c,
		metrics: m,
		log:     log,
	}
}

// Create creates a lead in the novo_lead stage.
func (s *Service) Create(ctx context.Context, sess *session.Session, req models.CreateLeadRequest) (*models.LeadResponse, error) {
	if sess == nil {
		return nil, domain.NewUnauthorizedError()
	}
	if req.Name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if req.Phone != "" && !phone.IsValidBR(req.DDD, req.Phone) {
		return nil, domain.NewValidationError("invalid phone number")
	}
	if req.ResponsibleID != nil {
		if err := s.checkResponsible(ctx, sess.TenantID, *req.ResponsibleID); err != nil {
			return nil, err
		}
	}

	builder := s.db.Lead.
		Create().
		SetTenantID(sess.TenantID).
		SetName(req.Name).
		SetDdd(req.DDD).
		SetPhone(req.Phone).
		SetCity(req.City).
		SetInteresse(req.Interesse).
		SetNotes(req.Notes)
	if req.ResponsibleID != nil {
		builder.SetResponsibleID(*req.ResponsibleID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, domain.NewConflictError("failed to create lead", err)
	}

	if s.metrics != nil {
		s.metrics.RecordLeadCreated()
	}
	s.invalidate(ctx, sess.TenantID)

	resp := toResponse(created)
	return &resp, nil
}

// Get retrieves a single lead by ID, scoped to the caller's tenant.
func (s *Service) Get(ctx context.Context, sess *session.Session, id int) (*models.LeadResponse, error) {
	if sess == nil {
		return nil, domain.NewUnauthorizedError()
	}

	l, err := s.getScoped(ctx, sess.TenantID, id)
	if err != nil {
		return nil, err
	}

	resp := toResponse(l)
	return &resp, nil
}

// Update applies a partial field edit to a lead.
func (s *Service) Update(ctx context.Context, sess *session.Session, id int, req models.UpdateLeadRequest) (*models.LeadResponse, error) {
	if sess == nil {
		return nil, domain.NewUnauthorizedError()
	}

	l, err := s.getScoped(ctx, sess.TenantID, id)
	if err != nil {
		return nil, err
	}

	ddd := l.Ddd
	if req.DDD != nil {
		ddd = *req.DDD
	}
	if req.Phone != nil && *req.Phone != "" && !phone.IsValidBR(ddd, *req.Phone) {
		return nil, domain.NewValidationError("invalid phone number")
	}
	if req.ResponsibleID != nil {
		if err := s.checkResponsible(ctx, sess.TenantID, *req.ResponsibleID); err != nil {
			return nil, err
		}
	}

	builder := l.Update()
	if req.Name != nil {
		if *req.Name == "" {
			return nil, domain.NewValidationError("name cannot be empty")
		}
		builder.SetName(*req.Name)
	}
	if req.DDD != nil {
		builder.SetDdd(*req.DDD)
	}
	if req.Phone != nil {
		builder.SetPhone(*req.Phone)
	}
	if req.City != nil {
		builder.SetCity(*req.City)
	}
	if req.Interesse != nil {
		builder.SetInteresse(*req.Interesse)
	}
	if req.Notes != nil {
		builder.SetNotes(*req.Notes)
	}
	if req.ResponsibleID != nil {
		builder.SetResponsibleID(*req.ResponsibleID)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, domain.NewConflictError("failed to update lead", err)
	}

	s.invalidate(ctx, sess.TenantID)

	resp := toResponse(updated)
	return &resp, nil
}

// Archive removes a lead from active pipeline views. Its history is
// retained.
func (s *Service) Archive(ctx context.Context, sess *session.Session, id int) error {
	return s.setArchived(ctx, sess, id, true)
}

// Reactivate returns an archived lead to the active pipeline.
func (s *Service) Reactivate(ctx context.Context, sess *session.Session, id int) error {
	return s.setArchived(ctx, sess, id, false)
}

func (s *Service) setArchived(ctx context.Context, sess *session.Session, id int, archived bool) error {
	if sess == nil {
		return domain.NewUnauthorizedError()
	}

	l, err := s.getScoped(ctx, sess.TenantID, id)
	if err != nil {
		return err
	}
	if l.Archived == archived {
		return nil
	}

	if _, err := l.Update().SetArchived(archived).Save(ctx); err != nil {
		return domain.NewConflictError("failed to update lead", err)
	}

	if archived && s.metrics != nil {
		s.metrics.RecordLeadArchived()
	}
	s.invalidate(ctx, sess.TenantID)
	return nil
}

// DeleteForever permanently destroys a lead and its history. The lead
// must be archived first; destroying an active lead is rejected.
func (s *Service) DeleteForever(ctx context.Context, sess *session.Session, id int) error {
	if sess == nil {
		return domain.NewUnauthorizedError()
	}

	l, err := s.getScoped(ctx, sess.TenantID, id)
	if err != nil {
		return err
	}
	if !l.Archived {
		return domain.NewValidationError("lead must be archived before permanent deletion")
	}

	// History rows never outlive their lead; both go in one transaction.
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return domain.NewConflictError("failed to start transaction", err)
	}

	if _, err := tx.LeadHistory.Delete().Where(leadhistory.LeadID(id)).Exec(ctx); err != nil {
		tx.Rollback()
		return domain.NewConflictError("failed to delete lead history", err)
	}
	if err := tx.Lead.DeleteOneID(id).Exec(ctx); err != nil {
		tx.Rollback()
		return domain.NewConflictError("failed to delete lead", err)
	}
	if err := tx.Commit(); err != nil {
		return domain.NewConflictError("failed to commit transaction", err)
	}

	s.log.Info("lead permanently deleted", "tenant_id", sess.TenantID, "lead_id", id)
	s.invalidate(ctx, sess.TenantID)
	return nil
}

// List returns a filtered, paginated page of the tenant's leads.
// Responses are cached per tenant and dropped by the view invalidation
// signal after any mutation.
func (s *Service) List(ctx context.Context, sess *session.Session, req models.LeadListRequest) (*models.LeadListResponse, error) {
	if sess == nil {
		return nil, domain.NewUnauthorizedError()
	}

	if req.Page == 0 {
		req.Page = 1
	}
	if req.Limit == 0 {
		req.Limit = 50
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	cacheKey := s.listCacheKey(sess.TenantID, req)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var response models.LeadListResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				if s.metrics != nil {
					s.metrics.RecordCacheHit("leads")
				}
				return &response, nil
			}
		}
		if s.metrics != nil {
			s.metrics.RecordCacheMiss("leads")
		}
	}

	query := s.db.Lead.Query().Where(lead.TenantID(sess.TenantID))

	archived := false
	if req.Archived != nil {
		archived = *req.Archived
	}
	query = query.Where(lead.Archived(archived))

	if req.Status != "" {
		query = query.Where(lead.StatusEQ(lead.Status(req.Status)))
	}
	if req.City != "" {
		query = query.Where(lead.CityEQ(req.City))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to count leads: %w", err))
	}

	offset := (req.Page - 1) * req.Limit
	totalPages := (total + req.Limit - 1) / req.Limit

	rows, err := query.
		Limit(req.Limit).
		Offset(offset).
		Order(ent.Desc(lead.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to query leads: %w", err))
	}

	data := make([]models.LeadResponse, len(rows))
	for i, l := range rows {
		data[i] = toResponse(l)
	}

	response := &models.LeadListResponse{
		Data: data,
		Pagination: models.PaginationInfo{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}

	if s.cache != nil {
		if responseJSON, err := json.Marshal(response); err == nil {
			_ = s.cache.Set(ctx, cacheKey, responseJSON, listCacheTTL)
		}
	}

	return response, nil
}

// BulkArchive archives many leads concurrently.
func (s *Service) BulkArchive(ctx context.Context, sess *session.Session, ids []int) *models.BulkResult {
	return s.bulk(ctx, sess, ids, s.Archive)
}

// BulkReactivate reactivates many leads concurrently.
func (s *Service) BulkReactivate(ctx context.Context, sess *session.Session, ids []int) *models.BulkResult {
	return s.bulk(ctx, sess, ids, s.Reactivate)
}

// BulkDeleteForever permanently deletes many archived leads concurrently.
func (s *Service) BulkDeleteForever(ctx context.Context, sess *session.Session, ids []int) *models.BulkResult {
	return s.bulk(ctx, sess, ids, s.DeleteForever)
}

// bulk fires one call per selected lead, all concurrently, and waits
// for every one to settle. Succeeded items stay changed, failed items
// stay in their prior state; there is no retry and no reconciliation
// across the batch.
func (s *Service) bulk(ctx context.Context, sess *session.Session, ids []int, op func(context.Context, *session.Session, int) error) *models.BulkResult {
	result := &models.BulkResult{
		Succeeded: []int{},
		Failed:    []models.BulkFailure{},
	}

	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, id := range ids {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			err := op(ctx, sess, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, models.BulkFailure{ID: id, Error: err.Error()})
				return
			}
			result.Succeeded = append(result.Succeeded, id)
		}(id)
	}

	wg.Wait()
	return result
}

func (s *Service) getScoped(ctx context.Context, tenantID, id int) (*ent.Lead, error) {
	l, err := s.db.Lead.
		Query().
		Where(lead.ID(id), lead.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("lead")
		}
		return nil, domain.NewInternalError(err)
	}
	return l, nil
}

// checkResponsible rejects assignments to users outside the tenant.
func (s *Service) checkResponsible(ctx context.Context, tenantID, userID int) error {
	exists, err := s.db.User.
		Query().
		Where(user.ID(userID), user.TenantID(tenantID)).
		Exist(ctx)
	if err != nil {
		return domain.NewInternalError(err)
	}
	if !exists {
		return domain.NewValidationError("responsible user not found in tenant")
	}
	return nil
}

func (s *Service) listCacheKey(tenantID int, req models.LeadListRequest) string {
	archived := ""
	if req.Archived != nil {
		archived = fmt.Sprintf("%t", *req.Archived)
	}
	return cache.TenantKey(tenantID, "leads",
		fmt.Sprintf("%s:%s:%s:%d:%d", req.Status, req.City, archived, req.Page, req.Limit))
}

func (s *Service) invalidate(ctx context.Context, tenantID int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateTenantViews(ctx, tenantID); err != nil {
		s.log.Warn("failed to invalidate tenant views", "tenant_id", tenantID, "error", err)
	}
}

func toResponse(l *ent.Lead) models.LeadResponse {
	return models.LeadResponse{
		ID:              l.ID,
		Name:            l.Name,
		DDD:             l.Ddd,
		Phone:           l.Phone,
		City:            l.City,
		Interesse:       l.Interesse,
		Status:          string(l.Status),
		StatusChangedAt: l.StatusChangedAt.Format(time.RFC3339),
		Archived:        l.Archived,
		Notes:           l.Notes,
		ResponsibleID:   l.ResponsibleID,
		CreatedAt:       l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       l.UpdatedAt.Format(time.RFC3339),
	}
}

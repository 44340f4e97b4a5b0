package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/ent/lead"
	"github.com/familiasoares/imobicrm/pkg/cache"
	"github.com/familiasoares/imobicrm/pkg/domain"
	"github.com/familiasoares/imobicrm/pkg/logger"
	"github.com/familiasoares/imobicrm/pkg/metrics"
	"github.com/familiasoares/imobicrm/pkg/models"
	"github.com/familiasoares/imobicrm/pkg/pipeline"
	"github.com/familiasoares/imobicrm/pkg/session"
)

const overviewCacheTTL = 5 * time.Minute

// Service aggregates per-tenant pipeline numbers for the dashboard.
type Service struct {
	db      *ent.Client
	cache   *cache.Client
	metrics *metrics.Metrics
	log     logger.Logger
}

// NewService creates a new dashboard service. cache and m may be nil.
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

// Overview returns the tenant's status counts, weekly activity and
// conversion rate. Aggregates are cached per tenant and invalidated
// alongside the other tenant views.
func (s *Service) Overview(ctx context.Context, sess *session.Session) (*models.DashboardResponse, error) {
	if sess == nil {
		return nil, domain.NewUnauthorizedError()
	}

	cacheKey := cache.TenantKey(sess.TenantID, "dashboard")
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var response models.DashboardResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				if s.metrics != nil {
					s.metrics.RecordCacheHit("dashboard")
				}
				return &response, nil
			}
		}
		if s.metrics != nil {
			s.metrics.RecordCacheMiss("dashboard")
		}
	}

	response, err := s.build(ctx, sess.TenantID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if responseJSON, err := json.Marshal(response); err == nil {
			_ = s.cache.Set(ctx, cacheKey, responseJSON, overviewCacheTTL)
		}
	}

	return response, nil
}

func (s *Service) build(ctx context.Context, tenantID int) (*models.DashboardResponse, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.db.Lead.
		Query().
		Where(lead.TenantID(tenantID), lead.Archived(false)).
		GroupBy(lead.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to aggregate status counts: %w", err))
	}

	// Empty columns still show up with a zero.
	counts := make(map[string]int, len(pipeline.Columns()))
	for _, st := range pipeline.Columns() {
		counts[string(st)] = 0
	}
	totalActive := 0
	for _, row := range rows {
		counts[row.Status] = row.Count
		totalActive += row.Count
	}

	totalArchived, err := s.db.Lead.
		Query().
		Where(lead.TenantID(tenantID), lead.Archived(true)).
		Count(ctx)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to count archived leads: %w", err))
	}

	weekAgo := time.Now().AddDate(0, 0, -7)

	newThisWeek, err := s.db.Lead.
		Query().
		Where(lead.TenantID(tenantID), lead.CreatedAtGTE(weekAgo)).
		Count(ctx)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to count new leads: %w", err))
	}

	closedThisWeek, err := s.db.Lead.
		Query().
		Where(
			lead.TenantID(tenantID),
			lead.StatusEQ(lead.Status(pipeline.StatusVendaFechada)),
			lead.StatusChangedAtGTE(weekAgo),
		).
		Count(ctx)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to count closed leads: %w", err))
	}

	won := counts[string(pipeline.StatusVendaFechada)]
	lost := counts[string(pipeline.StatusVendaPerdida)]
	conversion := 0.0
	if won+lost > 0 {
		conversion = float64(won) / float64(won+lost)
	}

	return &models.DashboardResponse{
		StatusCounts:   counts,
		TotalActive:    totalActive,
		TotalArchived:  totalArchived,
		NewThisWeek:    newThisWeek,
		ClosedThisWeek: closedThisWeek,
		ConversionRate: conversion,
	}, nil
}

// Warm precomputes and caches the overview for a tenant. Used by the
// background refresh job so first morning loads come from cache.
func (s *Service) Warm(ctx context.Context, tenantID int) error {
	if s.cache == nil {
		return nil
	}
	response, err := s.build(ctx, tenantID)
	if err != nil {
		return err
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, cache.TenantKey(tenantID, "dashboard"), responseJSON, overviewCacheTTL)
}

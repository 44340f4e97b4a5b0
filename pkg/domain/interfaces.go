package domain

import (
	"context"
	"time"
)

// CacheRepository defines caching operations
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
	Close() error
}

// ViewInvalidator signals dependent read views (board, list, dashboard)
// that tenant data changed and must be refetched on the next read.
type ViewInvalidator interface {
	InvalidateTenantViews(ctx context.Context, tenantID int) error
}

// Notifier surfaces user-visible notifications from background operations.
type Notifier interface {
	NotifyError(msg string)
}

// EmailSender defines transactional email operations
type EmailSender interface {
	SendWelcomeEmail(to, name string) error
	SendTrialEndingEmail(to, name string, endsAt time.Time) error
}

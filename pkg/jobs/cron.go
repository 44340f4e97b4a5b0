package jobs

import (
	"context"
	"time"

	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/ent/tenant"
	"github.com/familiasoares/imobicrm/pkg/billing"
	"github.com/familiasoares/imobicrm/pkg/dashboard"
	"github.com/familiasoares/imobicrm/pkg/email"
	"github.com/familiasoares/imobicrm/pkg/logger"
	"github.com/robfig/cron/v3"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron      *cron.Cron
	db        *ent.Client
	billing   *billing.Service
	dashboard *dashboard.Service
	email     *email.Service
	log       logger.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, b *billing.Service, d *dashboard.Service, e *email.Service, log logger.Logger) *CronManager {
	if log == nil {
		log = logger.Default()
	}
	return &CronManager{
		cron:      cron.New(),
		db:        db,
		billing:   b,
		dashboard: d,
		email:     e,
		log:       log,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	// Daily at 3 AM: deactivate tenants whose trial ran out.
	_, err := cm.cron.AddFunc("0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		count, err := cm.billing.ExpireTrials(ctx)
		if err != nil {
			cm.log.Error("trial expiry job failed", "error", err)
			return
		}
		cm.log.Info("trial expiry job completed", "deactivated", count)
	})
	if err != nil {
		return err
	}

	// Daily at 9 AM: warn tenants whose trial ends in 3 days.
	_, err = cm.cron.AddFunc("0 9 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		cm.warnExpiringTrials(ctx)
	})
	if err != nil {
		return err
	}

	// Every morning at 6 AM: warm the dashboard cache so first loads
	// of the day come from Redis.
	_, err = cm.cron.AddFunc("0 6 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		cm.warmDashboards(ctx)
	})
	if err != nil {
		return err
	}

	return nil
}

func (cm *CronManager) warnExpiringTrials(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, 3)
	expiring, err := cm.db.Tenant.
		Query().
		Where(
			tenant.PlanEQ(tenant.PlanTrial),
			tenant.Active(true),
			tenant.TrialEndsAtLT(cutoff),
			tenant.TrialEndsAtGT(time.Now()),
		).
		All(ctx)
	if err != nil {
		cm.log.Error("failed to query expiring trials", "error", err)
		return
	}

	for _, t := range expiring {
		if t.BillingEmail == nil || *t.BillingEmail == "" {
			continue
		}
		daysLeft := int(time.Until(*t.TrialEndsAt).Hours() / 24)
		if daysLeft < 1 {
			daysLeft = 1
		}
		if err := cm.email.SendTrialExpiringEmail(*t.BillingEmail, t.Name, daysLeft); err != nil {
			cm.log.Error("failed to send trial warning", "tenant_id", t.ID, "error", err)
		}
	}
	cm.log.Info("trial warning job completed", "warned", len(expiring))
}

func (cm *CronManager) warmDashboards(ctx context.Context) {
	tenants, err := cm.db.Tenant.
		Query().
		Where(tenant.Active(true)).
		All(ctx)
	if err != nil {
		cm.log.Error("failed to query tenants for cache warm", "error", err)
		return
	}

	warmed := 0
	for _, t := range tenants {
		if err := cm.dashboard.Warm(ctx, t.ID); err != nil {
			cm.log.Error("failed to warm dashboard", "tenant_id", t.ID, "error", err)
			continue
		}
		warmed++
	}
	cm.log.Info("dashboard warm job completed", "tenants", warmed)
}

// Start begins executing scheduled jobs
func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.log.Info("cron jobs started")
}

// Stop halts job scheduling. Running jobs finish.
func (cm *CronManager) Stop() {
	cm.cron.Stop()
	cm.log.Info("cron jobs stopped")
}

package billing

import (
	"context"
	"testing"
	"time"

	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/ent/enttest"
	"github.com/familiasoares/imobicrm/ent/subscription"
	"github.com/familiasoares/imobicrm/pkg/domain"
	"github.com/familiasoares/imobicrm/pkg/session"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client, func() { client.Close() }
}

func createTestTenant(t *testing.T, client *ent.Client, slug string) *ent.Tenant {
	tenant, err := client.Tenant.
		Create().
		SetName("Imobiliária " + slug).
		SetSlug(slug).
		Save(context.Background())
	require.NoError(t, err)
	return tenant
}

func TestMockCheckout_ActivatesImmediately(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, NewMockProvider(""), nil)

	tenant := createTestTenant(t, client, "central")
	sess := &session.Session{UserID: 1, TenantID: tenant.ID}

	resp, err := service.Checkout(ctx, sess, "profissional")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.URL)

	// The mock completes the checkout inline, so the subscription is
	// already active and the tenant is off the trial plan.
	sub, err := client.Subscription.
		Query().
		Where(subscription.TenantID(tenant.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "active", string(sub.Status))
	assert.Equal(t, "profissional", string(sub.Plan))

	updated, err := client.Tenant.Get(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, "profissional", string(updated.Plan))

	current, err := service.Current(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, "active", current.Status)
}

func TestCheckout_InvalidPlan(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, NewMockProvider(""), nil)
	tenant := createTestTenant(t, client, "central")
	sess := &session.Session{UserID: 1, TenantID: tenant.ID}

	_, err := service.Checkout(context.Background(), sess, "enterprise")
	assert.True(t, domain.IsValidation(err))
}

func TestCancel(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, NewMockProvider(""), nil)

	tenant := createTestTenant(t, client, "central")
	sess := &session.Session{UserID: 1, TenantID: tenant.ID}

	// Canceling with no subscription is NOT_FOUND.
	err := service.Cancel(ctx, sess)
	assert.True(t, domain.IsNotFound(err))

	_, err = service.Checkout(ctx, sess, "essencial")
	require.NoError(t, err)

	require.NoError(t, service.Cancel(ctx, sess))

	sub, err := client.Subscription.
		Query().
		Where(subscription.TenantID(tenant.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "canceled", string(sub.Status))
	assert.NotNil(t, sub.CanceledAt)
}

func TestExpireTrials(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, NewMockProvider(""), nil)

	expired := createTestTenant(t, client, "vencido")
	_, err := expired.Update().SetTrialEndsAt(time.Now().Add(-24 * time.Hour)).Save(ctx)
	require.NoError(t, err)

	fresh := createTestTenant(t, client, "novo")
	_, err = fresh.Update().SetTrialEndsAt(time.Now().Add(7 * 24 * time.Hour)).Save(ctx)
	require.NoError(t, err)

	count, err := service.ExpireTrials(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	deactivated, err := client.Tenant.Get(ctx, expired.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.Active)

	stillActive, err := client.Tenant.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.True(t, stillActive.Active)
}

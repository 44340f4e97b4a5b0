package dashboard

import (
	"context"
	"testing"

	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/ent/enttest"
	"github.com/familiasoares/imobicrm/ent/lead"
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

func TestOverview(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenant, err := client.Tenant.
		Create().
		SetName("Imobiliária Central").
		SetSlug("central").
		Save(ctx)
	require.NoError(t, err)

	create := func(status lead.Status, archived bool) {
		builder := client.Lead.
			Create().
			SetTenantID(tenant.ID).
			SetName("Lead Teste").
			SetArchived(archived)
		if status != "" {
			builder.SetStatus(status)
		}
		_, err := builder.Save(ctx)
		require.NoError(t, err)
	}

	create("", false) // defaults to novo_lead
	create("", false)
	create("visita", false)
	create("venda_fechada", false)
	create("venda_perdida", false)
	create("venda_fechada", true) // archived, excluded from counts

	sess := &session.Session{UserID: 1, TenantID: tenant.ID}
	resp, err := service.Overview(ctx, sess)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.StatusCounts["novo_lead"])
	assert.Equal(t, 1, resp.StatusCounts["visita"])
	assert.Equal(t, 0, resp.StatusCounts["proposta"], "empty columns report zero")
	assert.Equal(t, 5, resp.TotalActive)
	assert.Equal(t, 1, resp.TotalArchived)
	assert.Equal(t, 6, resp.NewThisWeek)
	assert.InDelta(t, 0.5, resp.ConversionRate, 0.001)
}

func TestOverview_RequiresSession(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil, nil, nil)
	_, err := service.Overview(context.Background(), nil)
	assert.True(t, domain.IsUnauthorized(err))
}

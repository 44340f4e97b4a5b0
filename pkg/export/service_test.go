package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/ent/enttest"
	"github.com/familiasoares/imobicrm/pkg/domain"
	"github.com/familiasoares/imobicrm/pkg/models"
	"github.com/familiasoares/imobicrm/pkg/session"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client, func() { client.Close() }
}

func TestExportCSV(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	tenant, err := client.Tenant.
		Create().
		SetName("Imobiliária Central").
		SetSlug("central").
		Save(ctx)
	require.NoError(t, err)

	other, err := client.Tenant.
		Create().
		SetName("Imobiliária Litoral").
		SetSlug("litoral").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Lead.Create().
		SetTenantID(tenant.ID).
		SetName("Ana Paula").
		SetDdd("11").
		SetPhone("987654321").
		SetCity("São Paulo").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Lead.Create().
		SetTenantID(other.ID).
		SetName("Fora do tenant").
		Save(ctx)
	require.NoError(t, err)

	sess := &session.Session{UserID: 1, TenantID: tenant.ID}
	service := NewService(client)

	data, filename, err := service.Export(ctx, sess, "csv", models.LeadListRequest{})
	require.NoError(t, err)
	assert.Contains(t, filename, ".csv")

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	// Header plus only this tenant's lead.
	require.Len(t, records, 2)
	assert.Equal(t, "Nome", records[0][1])
	assert.Equal(t, "Ana Paula", records[1][1])
}

func TestExport_InvalidFormat(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	sess := &session.Session{UserID: 1, TenantID: 1}
	service := NewService(client)

	_, _, err := service.Export(context.Background(), sess, "pdf", models.LeadListRequest{})
	assert.True(t, domain.IsValidation(err))
}

func TestExportXLSX(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	tenant, err := client.Tenant.
		Create().
		SetName("Imobiliária Central").
		SetSlug("central").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Lead.Create().
		SetTenantID(tenant.ID).
		SetName("Bruno Lima").
		Save(ctx)
	require.NoError(t, err)

	sess := &session.Session{UserID: 1, TenantID: tenant.ID}
	service := NewService(client)

	data, filename, err := service.Export(ctx, sess, "xlsx", models.LeadListRequest{})
	require.NoError(t, err)
	assert.Contains(t, filename, ".xlsx")
	assert.NotEmpty(t, data)
}

package importpkg

import (
	"context"
	"strings"
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

func TestImport(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	tenant, err := client.Tenant.
		Create().
		SetName("Imobiliária Central").
		SetSlug("central").
		Save(ctx)
	require.NoError(t, err)

	sess := &session.Session{UserID: 1, TenantID: tenant.ID}
	service := NewCSVImportService(client)

	csvFile := strings.Join([]string{
		"nome,ddd,telefone,cidade,interesse",
		"Ana Paula,11,987654321,São Paulo,apartamento 2 quartos",
		",11,987654321,São Paulo,sem nome",
		"Bruno Lima,11,123,Campinas,telefone inválido",
		"Carla Souza,,,Santos,casa com quintal",
	}, "\n")

	result, err := service.Import(ctx, sess, strings.NewReader(csvFile))
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalRows)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 2, result.FailureCount)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Equal(t, 4, result.Errors[1].Row)

	// Imported leads are tenant-scoped and start at the first stage.
	rows, err := client.Lead.Query().Where(lead.TenantID(tenant.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, l := range rows {
		assert.Equal(t, "novo_lead", string(l.Status))
	}
}

func TestImport_BadHeader(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	sess := &session.Session{UserID: 1, TenantID: 1}
	service := NewCSVImportService(client)

	_, err := service.Import(context.Background(), sess, strings.NewReader("name,phone\nAna,11987654321"))
	assert.True(t, domain.IsValidation(err))
}

func TestImport_RequiresSession(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewCSVImportService(client)
	_, err := service.Import(context.Background(), nil, strings.NewReader(""))
	assert.True(t, domain.IsUnauthorized(err))
}

package leads

import (
	"context"
	"testing"

	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/ent/enttest"
	"github.com/familiasoares/imobicrm/ent/leadhistory"
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

func createTestTenant(t *testing.T, client *ent.Client, slug string) *ent.Tenant {
	tenant, err := client.Tenant.
		Create().
		SetName("Imobiliária " + slug).
		SetSlug(slug).
		Save(context.Background())
	require.NoError(t, err)
	return tenant
}

func createTestUser(t *testing.T, client *ent.Client, tenantID int, email string) *ent.User {
	user, err := client.User.
		Create().
		SetTenantID(tenantID).
		SetEmail(email).
		SetPasswordHash("hashed_password").
		SetName("Corretor Teste").
		Save(context.Background())
	require.NoError(t, err)
	return user
}

func createTestLead(t *testing.T, client *ent.Client, tenantID int, name string) *ent.Lead {
	lead, err := client.Lead.
		Create().
		SetTenantID(tenantID).
		SetName(name).
		SetCity("São Paulo").
		SetInteresse("apartamento 2 quartos").
		Save(context.Background())
	require.NoError(t, err)
	return lead
}

func TestCreate_DefaultsToNovoLead(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenant := createTestTenant(t, client, "central")
	user := createTestUser(t, client, tenant.ID, "corretor@central.com.br")
	sess := &session.Session{UserID: user.ID, TenantID: tenant.ID}

	resp, err := service.Create(ctx, sess, models.CreateLeadRequest{
		Name:      "Ana Paula",
		DDD:       "11",
		Phone:     "987654321",
		City:      "São Paulo",
		Interesse: "casa com quintal",
	})
	require.NoError(t, err)

	assert.Equal(t, "novo_lead", resp.Status)
	assert.False(t, resp.Archived)
	assert.Equal(t, "Ana Paula", resp.Name)
}

func TestCreate_Validation(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenant := createTestTenant(t, client, "central")
	user := createTestUser(t, client, tenant.ID, "corretor@central.com.br")
	sess := &session.Session{UserID: user.ID, TenantID: tenant.ID}

	_, err := service.Create(ctx, sess, models.CreateLeadRequest{Phone: "987654321"})
	assert.True(t, domain.IsValidation(err), "missing name should be rejected")

	_, err = service.Create(ctx, sess, models.CreateLeadRequest{
		Name:  "Bruno",
		DDD:   "11",
		Phone: "123",
	})
	assert.True(t, domain.IsValidation(err), "bogus phone should be rejected")

	_, err = service.Create(ctx, sess, models.CreateLeadRequest{Name: "Carla"})
	assert.NoError(t, err, "phone is optional")
}

func TestCreate_ResponsibleMustBeInTenant(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenant := createTestTenant(t, client, "central")
	other := createTestTenant(t, client, "litoral")
	user := createTestUser(t, client, tenant.ID, "corretor@central.com.br")
	outsider := createTestUser(t, client, other.ID, "corretor@litoral.com.br")
	sess := &session.Session{UserID: user.ID, TenantID: tenant.ID}

	_, err := service.Create(ctx, sess, models.CreateLeadRequest{
		Name:          "Diego",
		ResponsibleID: &outsider.ID,
	})
	assert.True(t, domain.IsValidation(err))

	_, err = service.Create(ctx, sess, models.CreateLeadRequest{
		Name:          "Diego",
		ResponsibleID: &user.ID,
	})
	assert.NoError(t, err)
}

func TestUpdate_PartialFields(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenant := createTestTenant(t, client, "central")
	user := createTestUser(t, client, tenant.ID, "corretor@central.com.br")
	lead := createTestLead(t, client, tenant.ID, "Eduarda")
	sess := &session.Session{UserID: user.ID, TenantID: tenant.ID}

	city := "Campinas"
	resp, err := service.Update(ctx, sess, lead.ID, models.UpdateLeadRequest{City: &city})
	require.NoError(t, err)

	// Only the city changed; everything else came through untouched.
	assert.Equal(t, "Campinas", resp.City)
	assert.Equal(t, "Eduarda", resp.Name)
	assert.Equal(t, "apartamento 2 quartos", resp.Interesse)

	empty := ""
	_, err = service.Update(ctx, sess, lead.ID, models.UpdateLeadRequest{Name: &empty})
	assert.True(t, domain.IsValidation(err))
}

func TestTenantIsolation(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenantA := createTestTenant(t, client, "central")
	tenantB := createTestTenant(t, client, "litoral")
	userB := createTestUser(t, client, tenantB.ID, "corretor@litoral.com.br")
	leadA := createTestLead(t, client, tenantA.ID, "Fernanda")

	sessB := &session.Session{UserID: userB.ID, TenantID: tenantB.ID}

	// Cross-tenant reads are indistinguishable from missing rows.
	_, err := service.Get(ctx, sessB, leadA.ID)
	assert.True(t, domain.IsNotFound(err))

	_, err = service.Get(ctx, sessB, 99999)
	assert.True(t, domain.IsNotFound(err))

	err = service.Archive(ctx, sessB, leadA.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestArchiveLifecycle(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenant := createTestTenant(t, client, "central")
	user := createTestUser(t, client, tenant.ID, "corretor@central.com.br")
	lead := createTestLead(t, client, tenant.ID, "Gustavo")
	sess := &session.Session{UserID: user.ID, TenantID: tenant.ID}

	require.NoError(t, service.Archive(ctx, sess, lead.ID))

	archived, err := client.Lead.Get(ctx, lead.ID)
	require.NoError(t, err)
	assert.True(t, archived.Archived)

	// Archiving twice is harmless.
	require.NoError(t, service.Archive(ctx, sess, lead.ID))

	require.NoError(t, service.Reactivate(ctx, sess, lead.ID))
	active, err := client.Lead.Get(ctx, lead.ID)
	require.NoError(t, err)
	assert.False(t, active.Archived)
}

func TestDeleteForever(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenant := createTestTenant(t, client, "central")
	user := createTestUser(t, client, tenant.ID, "corretor@central.com.br")
	lead := createTestLead(t, client, tenant.ID, "Helena")
	sess := &session.Session{UserID: user.ID, TenantID: tenant.ID}

	_, err := client.LeadHistory.
		Create().
		SetLeadID(lead.ID).
		SetUserID(user.ID).
		SetStatusBefore("novo_lead").
		SetStatusAfter("visita").
		Save(ctx)
	require.NoError(t, err)

	// Active leads cannot be destroyed.
	err = service.DeleteForever(ctx, sess, lead.ID)
	assert.True(t, domain.IsValidation(err))

	require.NoError(t, service.Archive(ctx, sess, lead.ID))
	require.NoError(t, service.DeleteForever(ctx, sess, lead.ID))

	_, err = client.Lead.Get(ctx, lead.ID)
	assert.True(t, ent.IsNotFound(err))

	count, err := client.LeadHistory.Query().Where(leadhistory.LeadID(lead.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "history must not outlive the lead")
}

func TestList_FiltersAndPagination(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenant := createTestTenant(t, client, "central")
	user := createTestUser(t, client, tenant.ID, "corretor@central.com.br")
	sess := &session.Session{UserID: user.ID, TenantID: tenant.ID}

	for i := 0; i < 3; i++ {
		createTestLead(t, client, tenant.ID, "Lead SP")
	}
	rio, err := client.Lead.
		Create().
		SetTenantID(tenant.ID).
		SetName("Lead RJ").
		SetCity("Rio de Janeiro").
		SetStatus("visita").
		Save(ctx)
	require.NoError(t, err)

	archived := createTestLead(t, client, tenant.ID, "Arquivado")
	require.NoError(t, service.Archive(ctx, sess, archived.ID))

	// Default view excludes archived leads.
	resp, err := service.List(ctx, sess, models.LeadListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Pagination.Total)

	resp, err = service.List(ctx, sess, models.LeadListRequest{City: "Rio de Janeiro"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, rio.ID, resp.Data[0].ID)

	resp, err = service.List(ctx, sess, models.LeadListRequest{Status: "visita"})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)

	showArchived := true
	resp, err = service.List(ctx, sess, models.LeadListRequest{Archived: &showArchived})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, archived.ID, resp.Data[0].ID)

	resp, err = service.List(ctx, sess, models.LeadListRequest{Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasNext)
	assert.False(t, resp.Pagination.HasPrev)
}

func TestBulkArchive_PartialFailure(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenant := createTestTenant(t, client, "central")
	other := createTestTenant(t, client, "litoral")
	user := createTestUser(t, client, tenant.ID, "corretor@central.com.br")
	sess := &session.Session{UserID: user.ID, TenantID: tenant.ID}

	first := createTestLead(t, client, tenant.ID, "Primeiro")
	blocked := createTestLead(t, client, other.ID, "Fora do tenant")
	third := createTestLead(t, client, tenant.ID, "Terceiro")

	result := service.BulkArchive(ctx, sess, []int{first.ID, blocked.ID, third.ID})

	assert.ElementsMatch(t, []int{first.ID, third.ID}, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, blocked.ID, result.Failed[0].ID)

	// Succeeded items stay archived, the failed one is untouched.
	for _, id := range []int{first.ID, third.ID} {
		l, err := client.Lead.Get(ctx, id)
		require.NoError(t, err)
		assert.True(t, l.Archived)
	}
	untouched, err := client.Lead.Get(ctx, blocked.ID)
	require.NoError(t, err)
	assert.False(t, untouched.Archived)
}

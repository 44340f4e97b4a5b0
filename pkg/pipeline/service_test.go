package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/ent/enttest"
	"github.com/familiasoares/imobicrm/ent/leadhistory"
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

// fakeInvalidator records invalidation signals.
type fakeInvalidator struct {
	tenants []int
}

func (f *fakeInvalidator) InvalidateTenantViews(_ context.Context, tenantID int) error {
	f.tenants = append(f.tenants, tenantID)
	return nil
}

func TestTransition_Success(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	invalidator := &fakeInvalidator{}
	service := NewService(client, invalidator, nil, nil)

	tenant := createTestTenant(t, client, "central")
	user := createTestUser(t, client, tenant.ID, "corretor@central.com.br")
	lead := createTestLead(t, client, tenant.ID, "Ana")

	sess := &session.Session{UserID: user.ID, TenantID: tenant.ID}

	err := service.Transition(ctx, sess, lead.ID, StatusVisita, "")
	require.NoError(t, err)

	// Lead moved
	updated, err := client.Lead.Get(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "visita", string(updated.Status))

	// Exactly one audit row with the right before/after pair
	rows, err := client.LeadHistory.Query().Where(leadhistory.LeadID(lead.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "novo_lead", string(rows[0].StatusBefore))
	assert.Equal(t, "visita", string(rows[0].StatusAfter))

	// Downstream views signaled
	assert.Equal(t, []int{tenant.ID}, invalidator.tenants)
}

func TestTransition_SameStatusIsNoOp(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	invalidator := &fakeInvalidator{}
	service := NewService(client, invalidator, nil, nil)

	tenant := createTestTenant(t, client, "central")
	user := createTestUser(t, client, tenant.ID, "corretor@central.com.br")
	lead := createTestLead(t, client, tenant.ID, "Bruno")

	before, err := client.Lead.Get(ctx, lead.ID)
	require.NoError(t, err)

	err = service.Transition(ctx, &session.Session{UserID: user.ID, TenantID: tenant.ID}, lead.ID, StatusNovoLead, "")
	require.NoError(t, err)

	// True no-op: no history row, updated_at untouched, no signal
	count, err := client.LeadHistory.Query().Where(leadhistory.LeadID(lead.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	after, err := client.Lead.Get(ctx, lead.ID)
	require.NoError(t, err)
	assert.True(t, before.UpdatedAt.Equal(after.UpdatedAt))
	assert.Empty(t, invalidator.tenants)
}

func TestTransition_TenantIsolation(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenantA := createTestTenant(t, client, "agencia-a")
	tenantB := createTestTenant(t, client, "agencia-b")
	userB := createTestUser(t, client, tenantB.ID, "corretor@agencia-b.com.br")
	leadA := createTestLead(t, client, tenantA.ID, "Carla")

	sessB := &session.Session{UserID: userB.ID, TenantID: tenantB.ID}

	// Existing lead under another tenant and a missing lead must be
	// indistinguishable.
	err := service.Transition(ctx, sessB, leadA.ID, StatusVisita, "")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	err = service.Transition(ctx, sessB, 99999, StatusVisita, "")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	// Lead A untouched
	unchanged, err := client.Lead.Get(ctx, leadA.ID)
	require.NoError(t, err)
	assert.Equal(t, "novo_lead", string(unchanged.Status))
}

func TestTransition_NilSessionUnauthorized(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil, nil, nil)

	err := service.Transition(context.Background(), nil, 1, StatusVisita, "")
	require.Error(t, err)
	assert.True(t, domain.IsUnauthorized(err))
}

func TestTransition_InvalidStatus(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil, nil, nil)
	sess := &session.Session{UserID: 1, TenantID: 1}

	err := service.Transition(context.Background(), sess, 1, Status("rascunho"), "")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestTransition_AtomicRollback(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenant := createTestTenant(t, client, "central")
	user := createTestUser(t, client, tenant.ID, "corretor@central.com.br")
	lead := createTestLead(t, client, tenant.ID, "Diego")

	sess := &session.Session{UserID: user.ID, TenantID: tenant.ID}

	// The oversized note fails schema validation on the history insert,
	// after the lead update already ran inside the transaction. Both
	// writes must unwind together.
	oversized := strings.Repeat("x", 1001)
	err := service.Transition(ctx, sess, lead.ID, StatusProposta, oversized)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	unchanged, err := client.Lead.Get(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "novo_lead", string(unchanged.Status))

	count, err := client.LeadHistory.Query().Where(leadhistory.LeadID(lead.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAddNote_Validation(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenant := createTestTenant(t, client, "central")
	user := createTestUser(t, client, tenant.ID, "corretor@central.com.br")
	lead := createTestLead(t, client, tenant.ID, "Elisa")

	sess := &session.Session{UserID: user.ID, TenantID: tenant.ID}

	err := service.AddNote(ctx, sess, lead.ID, "   ")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	err = service.AddNote(ctx, sess, lead.ID, strings.Repeat("x", 1001))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

// Scenario from the product spec: Ana starts at novo_lead, moves to
// visita, a repeated move is a no-op, then a note lands on top.
func TestScenario_AnaTransitionNoopNote(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenant := createTestTenant(t, client, "central")
	user := createTestUser(t, client, tenant.ID, "corretor@central.com.br")
	ana := createTestLead(t, client, tenant.ID, "Ana")

	sess := &session.Session{UserID: user.ID, TenantID: tenant.ID}

	require.NoError(t, service.Transition(ctx, sess, ana.ID, StatusVisita, ""))

	rows, err := service.History(ctx, sess, ana.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "novo_lead", string(rows[0].StatusBefore))
	assert.Equal(t, "visita", string(rows[0].StatusAfter))

	updated, err := client.Lead.Get(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "visita", string(updated.Status))

	// Repeating the same status adds nothing
	require.NoError(t, service.Transition(ctx, sess, ana.ID, StatusVisita, ""))
	rows, err = service.History(ctx, sess, ana.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Note lands as before == after == current status
	require.NoError(t, service.AddNote(ctx, sess, ana.ID, "Ligou, pediu retorno"))
	rows, err = service.History(ctx, sess, ana.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "visita", string(rows[1].StatusBefore))
	assert.Equal(t, "visita", string(rows[1].StatusAfter))
	assert.Equal(t, "Ligou, pediu retorno", rows[1].Note)
}

func TestHistory_OrderedOldestFirst(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenant := createTestTenant(t, client, "central")
	user := createTestUser(t, client, tenant.ID, "corretor@central.com.br")
	lead := createTestLead(t, client, tenant.ID, "Fabio")

	sess := &session.Session{UserID: user.ID, TenantID: tenant.ID}

	require.NoError(t, service.Transition(ctx, sess, lead.ID, StatusEmAtendimento, ""))
	require.NoError(t, service.AddNote(ctx, sess, lead.ID, "Prefere contato à noite"))
	require.NoError(t, service.Transition(ctx, sess, lead.ID, StatusVisita, ""))

	rows, err := service.History(ctx, sess, lead.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "novo_lead", string(rows[0].StatusBefore))
	assert.Equal(t, "em_atendimento", string(rows[0].StatusAfter))

	// The middle row is the annotation
	assert.Equal(t, string(rows[1].StatusBefore), string(rows[1].StatusAfter))
	assert.Equal(t, "Prefere contato à noite", rows[1].Note)

	assert.Equal(t, "em_atendimento", string(rows[2].StatusBefore))
	assert.Equal(t, "visita", string(rows[2].StatusAfter))
}

func TestBoardSnapshot(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil, nil, nil)

	tenant := createTestTenant(t, client, "central")
	user := createTestUser(t, client, tenant.ID, "corretor@central.com.br")
	other := createTestTenant(t, client, "vizinha")

	sess := &session.Session{UserID: user.ID, TenantID: tenant.ID}

	l1 := createTestLead(t, client, tenant.ID, "Gustavo")
	l2 := createTestLead(t, client, tenant.ID, "Helena")
	createTestLead(t, client, other.ID, "Alheio")

	require.NoError(t, service.Transition(ctx, sess, l2.ID, StatusProposta, ""))

	// Archived leads disappear from the board but keep their history
	archived := createTestLead(t, client, tenant.ID, "Iris")
	_, err := client.Lead.UpdateOneID(archived.ID).SetArchived(true).Save(ctx)
	require.NoError(t, err)

	board, err := service.BoardSnapshot(ctx, sess)
	require.NoError(t, err)

	require.Len(t, board.Columns[StatusNovoLead], 1)
	assert.Equal(t, l1.ID, board.Columns[StatusNovoLead][0].ID)
	require.Len(t, board.Columns[StatusProposta], 1)
	assert.Equal(t, l2.ID, board.Columns[StatusProposta][0].ID)

	counts := board.Counts()
	assert.Equal(t, 1, counts[StatusNovoLead])
	assert.Equal(t, 1, counts[StatusProposta])
	assert.Equal(t, 0, counts[StatusVendaFechada])
}

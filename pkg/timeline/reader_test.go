package timeline

import (
	"context"
	"testing"

	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/ent/enttest"
	"github.com/familiasoares/imobicrm/pkg/pipeline"
	"github.com/familiasoares/imobicrm/pkg/session"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFixture(t *testing.T) (*ent.Client, *session.Session, int, func()) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")

	ctx := context.Background()

	tenant, err := client.Tenant.Create().
		SetName("Imobiliária Central").
		SetSlug("central").
		Save(ctx)
	require.NoError(t, err)

	user, err := client.User.Create().
		SetTenantID(tenant.ID).
		SetEmail("corretor@central.com.br").
		SetPasswordHash("hash").
		SetName("Corretor").
		Save(ctx)
	require.NoError(t, err)

	lead, err := client.Lead.Create().
		SetTenantID(tenant.ID).
		SetName("Ana").
		Save(ctx)
	require.NoError(t, err)

	sess := &session.Session{UserID: user.ID, TenantID: tenant.ID}
	return client, sess, lead.ID, func() { client.Close() }
}

// Two transitions with a note between them: three entries back in
// chronological order, the middle one tagged as a note.
func TestRead_OrderAndNoteDistinction(t *testing.T) {
	client, sess, leadID, cleanup := setupFixture(t)
	defer cleanup()

	ctx := context.Background()
	svc := pipeline.NewService(client, nil, nil, nil)
	reader := NewReader(svc)

	require.NoError(t, svc.Transition(ctx, sess, leadID, pipeline.StatusVisita, ""))
	require.NoError(t, svc.AddNote(ctx, sess, leadID, "Visita confirmada para sábado"))
	require.NoError(t, svc.Transition(ctx, sess, leadID, pipeline.StatusProposta, ""))

	entries, err := reader.Read(ctx, sess, leadID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, KindTransition, entries[0].Kind)
	assert.Equal(t, pipeline.StatusNovoLead, entries[0].StatusBefore)
	assert.Equal(t, pipeline.StatusVisita, entries[0].StatusAfter)

	assert.Equal(t, KindNote, entries[1].Kind)
	assert.Equal(t, entries[1].StatusBefore, entries[1].StatusAfter)
	assert.Equal(t, "Visita confirmada para sábado", entries[1].Note)

	assert.Equal(t, KindTransition, entries[2].Kind)
	assert.Equal(t, pipeline.StatusVisita, entries[2].StatusBefore)
	assert.Equal(t, pipeline.StatusProposta, entries[2].StatusAfter)

	// Oldest first
	assert.True(t, !entries[1].CreatedAt.Before(entries[0].CreatedAt))
	assert.True(t, !entries[2].CreatedAt.Before(entries[1].CreatedAt))
}

func TestRead_EmptyHistory(t *testing.T) {
	client, sess, leadID, cleanup := setupFixture(t)
	defer cleanup()

	svc := pipeline.NewService(client, nil, nil, nil)
	reader := NewReader(svc)

	entries, err := reader.Read(context.Background(), sess, leadID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRead_TenantScoped(t *testing.T) {
	client, _, leadID, cleanup := setupFixture(t)
	defer cleanup()

	ctx := context.Background()

	other, err := client.Tenant.Create().
		SetName("Imobiliária Vizinha").
		SetSlug("vizinha").
		Save(ctx)
	require.NoError(t, err)

	svc := pipeline.NewService(client, nil, nil, nil)
	reader := NewReader(svc)

	_, err = reader.Read(ctx, &session.Session{UserID: 99, TenantID: other.ID}, leadID)
	assert.Error(t, err)
}

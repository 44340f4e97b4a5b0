package board

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/familiasoares/imobicrm/pkg/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu   sync.Mutex
	msgs []string
}

func (n *recordingNotifier) NotifyError(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func (n *recordingNotifier) messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.msgs...)
}

func testBoard() *pipeline.Board {
	b := pipeline.NewBoard()
	b.Columns[pipeline.StatusNovoLead] = []pipeline.Card{
		{ID: 1, Name: "Ana", Status: pipeline.StatusNovoLead},
		{ID: 2, Name: "Bruno", Status: pipeline.StatusNovoLead},
	}
	b.Columns[pipeline.StatusVisita] = []pipeline.Card{
		{ID: 3, Name: "Carla", Status: pipeline.StatusVisita},
	}
	return b
}

func TestMove_OptimisticApplyThenConfirm(t *testing.T) {
	release := make(chan error, 1)
	transition := func(ctx context.Context, leadID int, s pipeline.Status) error {
		return <-release
	}

	c := NewController(testBoard(), transition, nil, nil)

	move := c.Move(context.Background(), 1, pipeline.StatusVisita)
	require.NotNil(t, move)

	// The snapshot reflects the move before the service call resolves
	snap := c.Snapshot()
	_, col, ok := snap.Find(1)
	require.True(t, ok)
	assert.Equal(t, pipeline.StatusVisita, col)
	assert.Equal(t, 1, c.Counts()[pipeline.StatusNovoLead])
	assert.Equal(t, 2, c.Counts()[pipeline.StatusVisita])
	assert.Equal(t, MoveApplied, move.State())

	release <- nil
	<-move.Done

	assert.Equal(t, MoveConfirmed, move.State())
	require.NoError(t, move.Err())

	// Confirmed move needs no local correction
	_, col, ok = c.Snapshot().Find(1)
	require.True(t, ok)
	assert.Equal(t, pipeline.StatusVisita, col)
}

func TestMove_RollbackOnFailure(t *testing.T) {
	failure := errors.New("storage conflict")
	transition := func(ctx context.Context, leadID int, s pipeline.Status) error {
		return failure
	}
	notifier := &recordingNotifier{}

	c := NewController(testBoard(), transition, notifier, nil)

	move := c.Move(context.Background(), 1, pipeline.StatusProposta)
	require.NotNil(t, move)
	<-move.Done

	assert.Equal(t, MoveRolledBack, move.State())
	assert.ErrorIs(t, move.Err(), failure)

	// Card back in its pre-drag column, counts restored
	_, col, ok := c.Snapshot().Find(1)
	require.True(t, ok)
	assert.Equal(t, pipeline.StatusNovoLead, col)
	assert.Equal(t, 2, c.Counts()[pipeline.StatusNovoLead])
	assert.Equal(t, 0, c.Counts()[pipeline.StatusProposta])

	// User saw an error notification
	require.Len(t, notifier.messages(), 1)
}

func TestMove_SameColumnIsNoOp(t *testing.T) {
	called := false
	transition := func(ctx context.Context, leadID int, s pipeline.Status) error {
		called = true
		return nil
	}

	c := NewController(testBoard(), transition, nil, nil)

	move := c.Move(context.Background(), 1, pipeline.StatusNovoLead)
	assert.Nil(t, move)
	assert.False(t, called)
}

func TestMove_UnknownCard(t *testing.T) {
	c := NewController(testBoard(), func(context.Context, int, pipeline.Status) error { return nil }, nil, nil)

	move := c.Move(context.Background(), 999, pipeline.StatusVisita)
	assert.Nil(t, move)
}

func TestResync_DiscardsOptimisticState(t *testing.T) {
	block := make(chan error)
	transition := func(ctx context.Context, leadID int, s pipeline.Status) error {
		return <-block
	}

	c := NewController(testBoard(), transition, nil, nil)

	move := c.Move(context.Background(), 1, pipeline.StatusVisita)
	require.NotNil(t, move)

	// A fresh server snapshot supersedes the pending optimistic move
	fresh := pipeline.NewBoard()
	fresh.Columns[pipeline.StatusAgendamento] = []pipeline.Card{
		{ID: 1, Name: "Ana", Status: pipeline.StatusAgendamento},
	}
	c.Resync(fresh)

	_, col, ok := c.Snapshot().Find(1)
	require.True(t, ok)
	assert.Equal(t, pipeline.StatusAgendamento, col)

	block <- nil
	<-move.Done
}

func TestVisibleColumns(t *testing.T) {
	c := NewController(testBoard(), nil, nil, nil)

	// Empty terminal columns hidden by default
	visible := c.VisibleColumns()
	assert.NotContains(t, visible, pipeline.StatusVendaFechada)
	assert.NotContains(t, visible, pipeline.StatusVendaPerdida)
	assert.Contains(t, visible, pipeline.StatusNovoLead)

	// Toggle shows them
	c.SetShowClosed(true)
	visible = c.VisibleColumns()
	assert.Contains(t, visible, pipeline.StatusVendaFechada)
	assert.Contains(t, visible, pipeline.StatusVendaPerdida)

	// A terminal column with a card is visible even when untoggled
	c.SetShowClosed(false)
	b := testBoard()
	b.Columns[pipeline.StatusVendaFechada] = []pipeline.Card{
		{ID: 9, Name: "Zeca", Status: pipeline.StatusVendaFechada},
	}
	c.Resync(b)

	visible = c.VisibleColumns()
	assert.Contains(t, visible, pipeline.StatusVendaFechada)
	assert.NotContains(t, visible, pipeline.StatusVendaPerdida)
}

func TestCountsDeriveFromFullSnapshot(t *testing.T) {
	c := NewController(testBoard(), nil, nil, nil)

	// Hidden terminal columns still count their leads
	b := testBoard()
	b.Columns[pipeline.StatusVendaPerdida] = []pipeline.Card{
		{ID: 7, Name: "Otto", Status: pipeline.StatusVendaPerdida},
	}
	c.Resync(b)

	assert.Equal(t, 1, c.Counts()[pipeline.StatusVendaPerdida])
}

func TestMove_StampsUpdatedMarker(t *testing.T) {
	done := make(chan error, 1)
	done <- nil
	c := NewController(testBoard(), func(context.Context, int, pipeline.Status) error { return <-done }, nil, nil)

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	move := c.Move(context.Background(), 2, pipeline.StatusEmAtendimento)
	require.NotNil(t, move)
	<-move.Done

	card, _, ok := c.Snapshot().Find(2)
	require.True(t, ok)
	assert.Equal(t, fixed, card.UpdatedAt)
	assert.Equal(t, fixed, card.StatusChangedAt)
}

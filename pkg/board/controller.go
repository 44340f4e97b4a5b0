// Package board holds the client-side state of the Kanban pipeline:
// cards grouped by column, moved optimistically on drag and reconciled
// against the transition service. All state is dependency-injected so
// tests can run isolated controllers.
package board

import (
	"context"
	"sync"
	"time"

	"github.com/familiasoares/imobicrm/pkg/logger"
	"github.com/familiasoares/imobicrm/pkg/pipeline"
)

// TransitionFunc is the transition service call the controller issues
// after applying a move locally.
type TransitionFunc func(ctx context.Context, leadID int, newStatus pipeline.Status) error

// Notifier surfaces user-visible error notifications when a move is
// rolled back.
type Notifier interface {
	NotifyError(msg string)
}

// MoveState tracks one pending move through its two-phase lifecycle.
type MoveState int

const (
	// MoveApplied means the snapshot was mutated locally and the
	// transition call is still in flight.
	MoveApplied MoveState = iota
	// MoveConfirmed means the server accepted the transition; the
	// local state already reflects it.
	MoveConfirmed
	// MoveRolledBack means the transition failed and the snapshot was
	// restored from the last known-good copy.
	MoveRolledBack
)

// Move is one drag-and-drop operation. Done is closed when the move
// settles in either final state.
type Move struct {
	LeadID int
	From   pipeline.Status
	To     pipeline.Status
	Done   chan struct{}

	mu    sync.Mutex
	state MoveState
	err   error
}

// State returns the move's current lifecycle state.
func (m *Move) State() MoveState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Err returns the transition error for a rolled-back move.
func (m *Move) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *Move) settle(state MoveState, err error) {
	m.mu.Lock()
	m.state = state
	m.err = err
	m.mu.Unlock()
	close(m.Done)
}

// Controller owns the in-memory board snapshot for one client session.
type Controller struct {
	mu         sync.Mutex
	snapshot   *pipeline.Board
	transition TransitionFunc
	notifier   Notifier
	log        logger.Logger
	showClosed bool
	now        func() time.Time
}

// NewController creates a controller seeded with an initial snapshot.
// notifier may be nil.
func NewController(snapshot *pipeline.Board, transition TransitionFunc, notifier Notifier, log logger.Logger) *Controller {
	if snapshot == nil {
		snapshot = pipeline.NewBoard()
	}
	if log == nil {
		log = logger.Default()
	}
	return &Controller{
		snapshot:   snapshot,
		transition: transition,
		notifier:   notifier,
		log:        log,
		now:        time.Now,
	}
}

// Snapshot returns a copy of the current board state, optimistic
// mutations included.
func (c *Controller) Snapshot() *pipeline.Board {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot.Clone()
}

// Counts returns the per-column card counts derived from the current
// snapshot. They recompute from the mutated snapshot, so an optimistic
// move is reflected immediately.
func (c *Controller) Counts() map[pipeline.Status]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot.Counts()
}

// Move applies a drag from the card's column to target. The local
// snapshot mutates synchronously before the transition call is issued;
// the call itself runs on its own goroutine so the UI never blocks on
// the network. Dropping a card on its own column is a no-op and
// returns nil.
//
// Two rapid moves of the same card both go out independently; the last
// write to the store wins and the next resync settles any divergence.
func (c *Controller) Move(ctx context.Context, leadID int, target pipeline.Status) *Move {
	c.mu.Lock()

	_, from, ok := c.snapshot.Find(leadID)
	if !ok || from == target {
		c.mu.Unlock()
		return nil
	}

	// Keep the pre-move snapshot; rollback is a full replacement, not
	// a per-field merge.
	lastGood := c.snapshot.Clone()
	c.snapshot.MoveCard(leadID, target, c.now())
	c.mu.Unlock()

	move := &Move{
		LeadID: leadID,
		From:   from,
		To:     target,
		Done:   make(chan struct{}),
	}

	go func() {
		err := c.transition(ctx, leadID, target)
		if err == nil {
			move.settle(MoveConfirmed, nil)
			return
		}

		c.mu.Lock()
		c.snapshot = lastGood
		c.mu.Unlock()

		c.log.Warn("lead move rolled back", "lead_id", leadID, "to", string(target), "error", err)
		if c.notifier != nil {
			c.notifier.NotifyError("Não foi possível mover o lead. Tente novamente.")
		}
		move.settle(MoveRolledBack, err)
	}()

	return move
}

// Resync replaces the whole snapshot with a fresh one supplied
// externally, discarding any optimistic state not yet superseded.
// Later state wins; there is no cancellation token for in-flight moves.
func (c *Controller) Resync(snapshot *pipeline.Board) {
	if snapshot == nil {
		return
	}
	c.mu.Lock()
	c.snapshot = snapshot.Clone()
	c.mu.Unlock()
}

// SetShowClosed toggles visibility of the terminal columns.
func (c *Controller) SetShowClosed(show bool) {
	c.mu.Lock()
	c.showClosed = show
	c.mu.Unlock()
}

// VisibleColumns returns the columns to render, in board order.
// Terminal columns are hidden unless toggled visible or already
// holding at least one card. Display-only: hidden columns' leads stay
// in the snapshot.
func (c *Controller) VisibleColumns() []pipeline.Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	visible := make([]pipeline.Status, 0, len(pipeline.Columns()))
	for _, s := range pipeline.Columns() {
		if s.Terminal() && !c.showClosed && len(c.snapshot.Columns[s]) == 0 {
			continue
		}
		visible = append(visible, s)
	}
	return visible
}

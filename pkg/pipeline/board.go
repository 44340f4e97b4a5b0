package pipeline

import "time"

// Card is the board representation of a lead.
type Card struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	City            string     `json:"city,omitempty"`
	Interesse       string     `json:"interesse,omitempty"`
	Status          Status     `json:"status"`
	ResponsibleID   *int       `json:"responsible_id,omitempty"`
	StatusChangedAt time.Time  `json:"status_changed_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Board is a snapshot of all active (non-archived) leads of a tenant,
// grouped by status. Hidden columns' leads are still present; hiding
// terminal columns is a display concern, not a data one.
type Board struct {
	Columns map[Status][]Card `json:"columns"`
}

// NewBoard returns an empty board with every column present.
func NewBoard() *Board {
	b := &Board{Columns: make(map[Status][]Card, len(Columns()))}
	for _, s := range Columns() {
		b.Columns[s] = []Card{}
	}
	return b
}

// Counts returns the number of cards per column.
func (b *Board) Counts() map[Status]int {
	counts := make(map[Status]int, len(b.Columns))
	for s, cards := range b.Columns {
		counts[s] = len(cards)
	}
	return counts
}

// Find returns the card with the given lead ID and its column.
func (b *Board) Find(leadID int) (Card, Status, bool) {
	for s, cards := range b.Columns {
		for _, c := range cards {
			if c.ID == leadID {
				return c, s, true
			}
		}
	}
	return Card{}, "", false
}

// Clone returns a deep copy of the board. The optimistic controller
// keeps a clone as its last known-good snapshot before every move.
func (b *Board) Clone() *Board {
	clone := &Board{Columns: make(map[Status][]Card, len(b.Columns))}
	for s, cards := range b.Columns {
		copied := make([]Card, len(cards))
		copy(copied, cards)
		clone.Columns[s] = copied
	}
	return clone
}

// MoveCard removes the lead's card from its current column and
// prepends it to the target column, stamping the updated marker.
// Returns false if the card is not on the board.
func (b *Board) MoveCard(leadID int, target Status, now time.Time) bool {
	for s, cards := range b.Columns {
		for i, c := range cards {
			if c.ID != leadID {
				continue
			}
			b.Columns[s] = append(cards[:i:i], cards[i+1:]...)
			c.Status = target
			c.StatusChangedAt = now
			c.UpdatedAt = now
			b.Columns[target] = append([]Card{c}, b.Columns[target]...)
			return true
		}
	}
	return false
}

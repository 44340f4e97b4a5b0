// Package timeline assembles a lead's ordered history for display.
// Storage keeps one flat history row per event and distinguishes notes
// from transitions by the status_before == status_after rule; this
// package lifts that rule into an explicit tagged variant once, so
// consumers never re-derive it field by field.
package timeline

import (
	"context"
	"time"

	"github.com/familiasoares/imobicrm/ent"
	"github.com/familiasoares/imobicrm/pkg/pipeline"
	"github.com/familiasoares/imobicrm/pkg/session"
)

// Kind discriminates the two history entry variants.
type Kind string

const (
	// KindTransition is an audited move between two pipeline stages.
	KindTransition Kind = "transition"
	// KindNote is a pure annotation; the lead did not move.
	KindNote Kind = "note"
)

// Entry is one event on a lead's timeline.
type Entry struct {
	ID           int             `json:"id"`
	Kind         Kind            `json:"kind"`
	StatusBefore pipeline.Status `json:"status_before"`
	StatusAfter  pipeline.Status `json:"status_after"`
	Note         string          `json:"note,omitempty"`
	UserID       *int            `json:"user_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// FromRow converts a raw history row into a tagged entry.
func FromRow(row *ent.LeadHistory) Entry {
	kind := KindTransition
	if string(row.StatusBefore) == string(row.StatusAfter) {
		kind = KindNote
	}
	return Entry{
		ID:           row.ID,
		Kind:         kind,
		StatusBefore: pipeline.Status(row.StatusBefore),
		StatusAfter:  pipeline.Status(row.StatusAfter),
		Note:         row.Note,
		UserID:       row.UserID,
		CreatedAt:    row.CreatedAt,
	}
}

// HistorySource provides a lead's raw history rows, oldest first.
type HistorySource interface {
	History(ctx context.Context, sess *session.Session, leadID int) ([]*ent.LeadHistory, error)
}

// Reader reads lead timelines.
type Reader struct {
	source HistorySource
}

// NewReader creates a timeline reader on top of a history source.
func NewReader(source HistorySource) *Reader {
	return &Reader{source: source}
}

// Read returns the lead's timeline in chronological order, oldest
// first, with every row tagged as a transition or a note.
func (r *Reader) Read(ctx context.Context, sess *session.Session, leadID int) ([]Entry, error) {
	rows, err := r.source.History(ctx, sess, leadID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = FromRow(row)
	}
	return entries, nil
}

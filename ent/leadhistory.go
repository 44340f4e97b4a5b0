// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/familiasoares/imobicrm/ent/lead"
	"github.com/familiasoares/imobicrm/ent/leadhistory"
	"github.com/familiasoares/imobicrm/ent/user"
)

// LeadHistory is the model entity for the LeadHistory schema.
type LeadHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Lead this entry belongs to
	LeadID int `json:"lead_id,omitempty"`
	// User who performed the change, when known
	UserID *int `json:"user_id,omitempty"`
	// Status before the change
	StatusBefore leadhistory.StatusBefore `json:"status_before,omitempty"`
	// Status after the change; equal to status_before for notes
	StatusAfter leadhistory.StatusAfter `json:"status_after,omitempty"`
	// Free-text note attached to this entry
	Note string `json:"note,omitempty"`
	// When the change occurred
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LeadHistoryQuery when eager-loading is set.
	Edges        LeadHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LeadHistoryEdges holds the relations/edges for other nodes in the graph.
type LeadHistoryEdges struct {
	// Lead holds the value of the lead edge.
	Lead *Lead `json:"lead,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LeadOrErr returns the Lead value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LeadHistoryEdges) LeadOrErr() (*Lead, error) {
	if e.Lead != nil {
		return e.Lead, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lead.Label}
	}
	return nil, &NotLoadedError{edge: "lead"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LeadHistoryEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LeadHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case leadhistory.FieldID, leadhistory.FieldLeadID, leadhistory.FieldUserID:
			values[i] = new(sql.NullInt64)
		case leadhistory.FieldStatusBefore, leadhistory.FieldStatusAfter, leadhistory.FieldNote:
			values[i] = new(sql.NullString)
		case leadhistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LeadHistory fields.
func (_m *LeadHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case leadhistory.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case leadhistory.FieldLeadID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lead_id", values[i])
			} else if value.Valid {
				_m.LeadID = int(value.Int64)
			}
		case leadhistory.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(int)
				*_m.UserID = int(value.Int64)
			}
		case leadhistory.FieldStatusBefore:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_before", values[i])
			} else if value.Valid {
				_m.StatusBefore = leadhistory.StatusBefore(value.String)
			}
		case leadhistory.FieldStatusAfter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_after", values[i])
			} else if value.Valid {
				_m.StatusAfter = leadhistory.StatusAfter(value.String)
			}
		case leadhistory.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		case leadhistory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LeadHistory.
// This includes values selected through modifiers, order, etc.
func (_m *LeadHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLead queries the "lead" edge of the LeadHistory entity.
func (_m *LeadHistory) QueryLead() *LeadQuery {
	return NewLeadHistoryClient(_m.config).QueryLead(_m)
}

// QueryUser queries the "user" edge of the LeadHistory entity.
func (_m *LeadHistory) QueryUser() *UserQuery {
	return NewLeadHistoryClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this LeadHistory.
// Note that you need to call LeadHistory.Unwrap() before calling this method if this LeadHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LeadHistory) Update() *LeadHistoryUpdateOne {
	return NewLeadHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LeadHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LeadHistory) Unwrap() *LeadHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LeadHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LeadHistory) String() string {
	var builder strings.Builder
	builder.WriteString("LeadHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lead_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadID))
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatusBefore))
	builder.WriteString(", ")
	builder.WriteString("status_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatusAfter))
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(_m.Note)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LeadHistories is a parsable slice of LeadHistory.
type LeadHistories []*LeadHistory

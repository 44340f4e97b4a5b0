// Code generated by ent, DO NOT EDIT.

package leadhistory

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the leadhistory type in the database.
	Label = "lead_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLeadID holds the string denoting the lead_id field in the database.
	FieldLeadID = "lead_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatusBefore holds the string denoting the status_before field in the database.
	FieldStatusBefore = "status_before"
	// FieldStatusAfter holds the string denoting the status_after field in the database.
	FieldStatusAfter = "status_after"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeLead holds the string denoting the lead edge name in mutations.
	EdgeLead = "lead"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the leadhistory in the database.
	Table = "lead_histories"
	// LeadTable is the table that holds the lead relation/edge.
	LeadTable = "lead_histories"
	// LeadInverseTable is the table name for the Lead entity.
	// It exists in this package in order to avoid circular dependency with the "lead" package.
	LeadInverseTable = "leads"
	// LeadColumn is the table column denoting the lead relation/edge.
	LeadColumn = "lead_id"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "lead_histories"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for leadhistory fields.
var Columns = []string{
	FieldID,
	FieldLeadID,
	FieldUserID,
	FieldStatusBefore,
	FieldStatusAfter,
	FieldNote,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	LeadIDValidator func(int) error
	// NoteValidator is a validator for the "note" field. It is called by the builders before save.
	NoteValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// StatusBefore defines the type for the "status_before" enum field.
type StatusBefore string

// StatusBefore values.
const (
	StatusBeforeNovoLead      StatusBefore = "novo_lead"
	StatusBeforeEmAtendimento StatusBefore = "em_atendimento"
	StatusBeforeVisita        StatusBefore = "visita"
	StatusBeforeAgendamento   StatusBefore = "agendamento"
	StatusBeforeProposta      StatusBefore = "proposta"
	StatusBeforeVendaFechada  StatusBefore = "venda_fechada"
	StatusBeforeVendaPerdida  StatusBefore = "venda_perdida"
)

func (sb StatusBefore) String() string {
	return string(sb)
}

// StatusBeforeValidator is a validator for the "status_before" field enum values. It is called by the builders before save.
func StatusBeforeValidator(sb StatusBefore) error {
	switch sb {
	case StatusBeforeNovoLead, StatusBeforeEmAtendimento, StatusBeforeVisita, StatusBeforeAgendamento, StatusBeforeProposta, StatusBeforeVendaFechada, StatusBeforeVendaPerdida:
		return nil
	default:
		return fmt.Errorf("leadhistory: invalid enum value for status_before field: %q", sb)
	}
}

// StatusAfter defines the type for the "status_after" enum field.
type StatusAfter string

// StatusAfter values.
const (
	StatusAfterNovoLead      StatusAfter = "novo_lead"
	StatusAfterEmAtendimento StatusAfter = "em_atendimento"
	StatusAfterVisita        StatusAfter = "visita"
	StatusAfterAgendamento   StatusAfter = "agendamento"
	StatusAfterProposta      StatusAfter = "proposta"
	StatusAfterVendaFechada  StatusAfter = "venda_fechada"
	StatusAfterVendaPerdida  StatusAfter = "venda_perdida"
)

func (sa StatusAfter) String() string {
	return string(sa)
}

// StatusAfterValidator is a validator for the "status_after" field enum values. It is called by the builders before save.
func StatusAfterValidator(sa StatusAfter) error {
	switch sa {
	case StatusAfterNovoLead, StatusAfterEmAtendimento, StatusAfterVisita, StatusAfterAgendamento, StatusAfterProposta, StatusAfterVendaFechada, StatusAfterVendaPerdida:
		return nil
	default:
		return fmt.Errorf("leadhistory: invalid enum value for status_after field: %q", sa)
	}
}

// OrderOption defines the ordering options for the LeadHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLeadID orders the results by the lead_id field.
func ByLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatusBefore orders the results by the status_before field.
func ByStatusBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusBefore, opts...).ToFunc()
}

// ByStatusAfter orders the results by the status_after field.
func ByStatusAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusAfter, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLeadField orders the results by lead field.
func ByLeadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadStep(), sql.OrderByField(field, opts...))
	}
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newLeadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
	)
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}

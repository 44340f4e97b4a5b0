package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeadHistory holds the schema definition for the LeadHistory entity.
// Records are append-only: one row per status transition or per note.
// A row with status_before == status_after is a pure annotation.
type LeadHistory struct {
	ent.Schema
}

// Fields of the LeadHistory.
func (LeadHistory) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Positive().
			Immutable().
			Comment("Lead this entry belongs to"),

		field.Int("user_id").
			Optional().
			Nillable().
			Comment("User who performed the change, when known"),

		field.Enum("status_before").
			Values(
				"novo_lead",
				"em_atendimento",
				"visita",
				"agendamento",
				"proposta",
				"venda_fechada",
				"venda_perdida",
			).
			Comment("Status before the change"),

		field.Enum("status_after").
			Values(
				"novo_lead",
				"em_atendimento",
				"visita",
				"agendamento",
				"proposta",
				"venda_fechada",
				"venda_perdida",
			).
			Comment("Status after the change; equal to status_before for notes"),

		field.Text("note").
			Optional().
			MaxLen(1000).
			Comment("Free-text note attached to this entry"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the change occurred"),
	}
}

// Edges of the LeadHistory.
func (LeadHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("history").
			Field("lead_id").
			Unique().
			Required().
			Immutable(),

		edge.From("user", User.Type).
			Ref("history_entries").
			Field("user_id").
			Unique(),
	}
}

// Indexes of the LeadHistory.
func (LeadHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id", "created_at").
			StorageKey("idx_lead_history_lead_time"),

		index.Fields("status_after", "created_at").
			StorageKey("idx_lead_history_status_time"),
	}
}

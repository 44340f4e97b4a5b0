package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Positive().
			Immutable().
			Comment("Tenant that owns this lead; never changes after creation"),
		field.String("name").
			NotEmpty().
			Comment("Lead display name"),
		field.String("ddd").
			Optional().
			MaxLen(3).
			Comment("Phone country-area code (Brazilian DDD)"),
		field.String("phone").
			Optional().
			Comment("Phone number without area code"),
		field.String("city").
			Optional().
			Comment("City of interest"),
		field.String("interesse").
			Optional().
			Comment("Free-form interest category (e.g. apartamento 2 quartos)"),
		field.Enum("status").
			Values(
				"novo_lead",
				"em_atendimento",
				"visita",
				"agendamento",
				"proposta",
				"venda_fechada",
				"venda_perdida",
			).
			Default("novo_lead").
			Comment("Pipeline stage the lead currently occupies"),
		field.Time("status_changed_at").
			Default(time.Now).
			Comment("When the status was last changed"),
		field.Bool("archived").
			Default(false).
			Comment("Archived leads are excluded from active pipeline views"),
		field.Text("notes").
			Optional().
			Comment("Free-text notes on the lead record itself"),
		field.Int("responsible_id").
			Optional().
			Nillable().
			Comment("User responsible for this lead, if assigned"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("leads").
			Field("tenant_id").
			Unique().
			Required().
			Immutable().
			Comment("Owning tenant"),

		edge.From("responsible", User.Type).
			Ref("leads").
			Field("responsible_id").
			Unique().
			Comment("Responsible agent (reference, not ownership)"),

		edge.To("history", LeadHistory.Type).
			Comment("Append-only audit trail of status changes and notes"),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		// Board and list views always filter by tenant first.
		index.Fields("tenant_id", "status"),
		index.Fields("tenant_id", "archived"),
		index.Fields("tenant_id", "city"),
		index.Fields("tenant_id", "created_at"),
		index.Fields("responsible_id"),
		index.Fields("status_changed_at"),
	}
}

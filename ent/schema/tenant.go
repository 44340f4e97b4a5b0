package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tenant holds the schema definition for the Tenant entity.
// Every lead, user and history record belongs to exactly one tenant;
// the tenant is the isolation boundary for all queries.
type Tenant struct {
	ent.Schema
}

// Fields of the Tenant.
func (Tenant) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Agency display name"),
		field.String("slug").
			Unique().
			NotEmpty().
			Comment("URL-friendly tenant identifier"),
		field.Enum("plan").
			Values("trial", "essencial", "profissional").
			Default("trial").
			Comment("Current subscription plan"),
		field.Time("trial_ends_at").
			Optional().
			Nillable().
			Comment("End of the trial period, if on trial"),
		field.String("billing_email").
			Optional().
			Nillable().
			Comment("Email for billing notifications"),
		field.Bool("active").
			Default(true).
			Comment("Whether the tenant is active"),
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

// Edges of the Tenant.
func (Tenant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("users", User.Type).
			Comment("Agents belonging to this tenant"),
		edge.To("leads", Lead.Type).
			Comment("Leads owned by this tenant"),
		edge.To("subscriptions", Subscription.Type).
			Comment("Subscription records for this tenant"),
	}
}

// Indexes of the Tenant.
func (Tenant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug").Unique(),
		index.Fields("active"),
		index.Fields("created_at"),
	}
}

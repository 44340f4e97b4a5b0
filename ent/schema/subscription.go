package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subscription holds the schema definition for the Subscription entity.
type Subscription struct {
	ent.Schema
}

// Fields of the Subscription.
func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Positive().
			Immutable().
			Comment("Tenant this subscription belongs to"),
		field.Enum("plan").
			Values("essencial", "profissional").
			Comment("Subscribed plan"),
		field.Enum("status").
			Values("trialing", "active", "canceled").
			Default("trialing").
			Comment("Subscription lifecycle status"),
		field.String("external_id").
			Optional().
			Comment("Provider-side subscription identifier (mock or Stripe)"),
		field.Time("current_period_end").
			Optional().
			Nillable().
			Comment("End of the current billing period"),
		field.Time("canceled_at").
			Optional().
			Nillable().
			Comment("When the subscription was canceled"),
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

// Edges of the Subscription.
func (Subscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("subscriptions").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Subscription.
func (Subscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("status"),
		index.Fields("external_id"),
	}
}

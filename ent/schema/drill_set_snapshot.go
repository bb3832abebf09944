package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DrillSetSnapshot is an immutable audit record of one generation batch:
// the context that produced it and the drills that came back. Never mutated
// after creation. Daily snapshot counts also back the free-tier quota.
type DrillSetSnapshot struct {
	ent.Schema
}

func (DrillSetSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("niche_key").
			NotEmpty().
			Immutable(),
		field.String("struggle").
			Default("").
			Immutable(),
		field.String("objective").
			Default("").
			Immutable(),
		field.String("mode").
			NotEmpty().
			Immutable().
			Comment("Practice mode the batch was generated for"),
		field.JSON("drills", json.RawMessage{}).
			Comment("Generated drill items as delivered to the session"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (DrillSetSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("niche_key"),
	}
}

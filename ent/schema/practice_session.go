package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeSession stores one session document per (user, niche).
// The document itself is opaque JSON — the session package owns its shape
// and the store never inspects it.
type PracticeSession struct {
	ent.Schema
}

func (PracticeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Owner of the session"),
		field.String("niche_key").
			NotEmpty().
			Comment("Stable key of the skill domain being practiced"),
		field.JSON("doc", json.RawMessage{}).
			Comment("Full serialized session document"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}

func (PracticeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "niche_key").Unique(),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressEvent records one completed drill set. Rows are append-only and
// immutable; the unique client_completion_id makes retried completion calls
// idempotent.
type ProgressEvent struct {
	ent.Schema
}

func (ProgressEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("client_completion_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Client-generated idempotency key, one per completion"),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("niche").
			NotEmpty().
			Immutable(),
		field.String("custom_niche").
			Default("").
			Immutable().
			Comment("User-supplied label when niche is custom"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (ProgressEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "niche"),
		index.Fields("timestamp"),
	}
}

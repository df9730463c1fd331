package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Review holds a public testimonial. The author reference is a weak link:
// deleting the account nulls user_id while patient_name, snapshotted at
// creation time, stays behind.
type Review struct {
	ent.Schema
}

func (Review) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Review) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.String("patient_name").
			MaxLen(100).
			Comment("display name captured at creation, never recomputed"),

		field.Text("review_text").
			NotEmpty(),

		field.Int("rating").
			Default(5).
			Min(1).
			Max(5),
	}
}

func (Review) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("reviews").
			Unique().
			Field("user_id").
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

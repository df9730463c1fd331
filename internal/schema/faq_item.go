package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type FaqItem struct {
	ent.Schema
}

func (FaqItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (FaqItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("category_id", uuid.UUID{}).
			Comment("FK → faq_categories.id"),

		field.String("question").
			NotEmpty().
			MaxLen(500),

		field.Text("answer").
			NotEmpty(),

		field.Int("display_order").
			Default(0),
	}
}

func (FaqItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", FaqCategory.Type).
			Ref("items").
			Unique().
			Required().
			Field("category_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (FaqItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id"),
	}
}

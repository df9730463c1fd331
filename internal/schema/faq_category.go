package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

type FaqCategory struct {
	ent.Schema
}

func (FaqCategory) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (FaqCategory) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			MaxLen(255),

		field.Int("display_order").
			Default(0),
	}
}

func (FaqCategory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("items", FaqItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

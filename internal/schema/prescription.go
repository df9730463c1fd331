package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Prescription belongs to one visit (DentalHistory entry).
type Prescription struct {
	ent.Schema
}

func (Prescription) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Prescription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("history_id", uuid.UUID{}).
			Comment("FK → dental_histories.id"),

		field.String("medicine_name").
			NotEmpty().
			MaxLen(200),

		field.String("dosage").
			Optional().
			MaxLen(100).
			Comment("e.g. 500mg"),

		field.String("instructions").
			Optional().
			MaxLen(500).
			Comment("e.g. twice a day after meals"),
	}
}

func (Prescription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("history", DentalHistory.Type).
			Ref("prescriptions").
			Unique().
			Required().
			Field("history_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Prescription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("history_id"),
	}
}

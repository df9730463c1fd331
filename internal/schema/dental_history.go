package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DentalHistory is a single visit record. A patient can have many;
// listings show the newest visit first.
type DentalHistory struct {
	ent.Schema
}

func (DentalHistory) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DentalHistory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Time("visit_date"),

		field.Text("notes").
			Optional(),

		field.String("treatment_provided").
			Optional().
			MaxLen(500),
	}
}

func (DentalHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("history").
			Unique().
			Required().
			Field("patient_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("prescriptions", Prescription.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (DentalHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("patient_id", "visit_date"),
	}
}

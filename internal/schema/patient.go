package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is the clinical profile linked 1:1 to a non-staff user account.
// It is created by the profile linker, never by direct client action.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id (the patient's account)"),

		field.String("phone").
			Optional().
			MaxLen(20),

		field.Time("date_of_birth").
			Optional().
			Nillable(),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("patient_profile").
			Unique().
			Required().
			Field("user_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("history", DentalHistory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("appointments", Appointment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}

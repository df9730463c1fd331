package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booking request made by a patient for their own profile.
// Status transitions are driven exclusively by staff.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.String("service_requested").
			NotEmpty().
			MaxLen(255),

		field.Time("appointment_date"),

		field.String("appointment_time").
			MaxLen(8).
			Comment("HH:MM:SS as submitted by the booking form"),

		field.Text("notes").
			Optional(),

		field.Enum("status").
			Values("PENDING", "CONFIRMED", "CANCELLED", "COMPLETED").
			Default("PENDING"),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("appointments").
			Unique().
			Required().
			Field("patient_id").
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("status"),
	}
}

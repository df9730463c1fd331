package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User is an authenticable account: either a staff member (dentist/admin)
// or a patient-role account with a linked Patient profile.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			Unique().
			NotEmpty().
			MaxLen(150),

		field.String("email").
			Optional().
			MaxLen(255),

		field.String("first_name").
			Optional().
			MaxLen(100),

		field.String("last_name").
			Optional().
			MaxLen(100),

		field.String("password_hash").
			Sensitive(),

		field.Bool("is_staff").
			Default(false),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("patient_profile", Patient.Type).
			Unique(),
		edge.To("reviews", Review.Type),
	}
}

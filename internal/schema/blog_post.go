package schema

import (
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// URL-safe slugs only: lowercase words separated by single hyphens.
var reSlug = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// BlogPost is looked up externally by its slug, which is unique and
// immutable once published.
type BlogPost struct {
	ent.Schema
}

func (BlogPost) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (BlogPost) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").
			Unique().
			Immutable().
			NotEmpty().
			MaxLen(255).
			Match(reSlug),

		field.String("title").
			NotEmpty().
			MaxLen(255),

		field.Text("content").
			Optional(),

		field.Time("published_at").
			Default(time.Now),
	}
}

func (BlogPost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug").Unique(),
	}
}

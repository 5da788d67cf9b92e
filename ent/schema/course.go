package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Course is a catalog entry the advisor ranks against learner profiles.
type Course struct {
	ent.Schema
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").
			Unique().
			Immutable().
			Comment("Stable catalog identifier, e.g. js-foundations"),
		field.String("title"),
		field.Text("description").
			Default(""),
		field.String("category").
			Default(""),
		field.String("level").
			Comment("Beginner, Intermediate or Advanced"),
		field.Float("price").
			Default(0),
		field.Strings("skills").
			Optional().
			Comment("Skill tags matched against learner skills"),
		field.Int("duration_minutes").
			Default(0),
		field.Int("enrolled_count").
			Default(0),
		field.Float("rating_average").
			Default(0),
		field.Bool("published").
			Default(true).
			Comment("Unpublished courses never surface in listings"),
	}
}

func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
		index.Fields("level"),
		index.Fields("published"),
	}
}

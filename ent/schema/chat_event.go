package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatEvent records every handled chat turn, including the ones where a
// handler failed and the user got the generic apology. Operators read
// these; users never see the error text.
type ChatEvent struct {
	ent.Schema
}

func (ChatEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChatEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id"),
		field.String("intent").
			Comment("Classified intent name"),
		field.String("matched_pattern").
			Default(""),
		field.Float("confidence").
			Default(0),
		field.String("reply_source").
			Default("").
			Comment("remote, fallback, questionnaire or handler"),
		field.Bool("handler_failed").
			Default(false),
		field.String("error_message").
			Default("").
			Comment("Internal error masked from the user, kept for operators"),
	}
}

func (ChatEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("intent"),
		index.Fields("handler_failed"),
	}
}

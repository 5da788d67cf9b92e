package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AdviceSession persists a questionnaire session between chat turns.
// The engine only defines the transition function; this table is the
// caller-owned storage for it.
type AdviceSession struct {
	ent.Schema
}

func (AdviceSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable(),
		field.String("flow").
			Default("").
			Comment("Step list the session runs: conversational or guided"),
		field.Int("current_step").
			Default(1).
			Comment("1-based; only ever increases until terminal"),
		field.JSON("answers", map[string]string{}).
			Optional().
			Comment("Accumulated step answers keyed by step key"),
		field.Bool("terminal").
			Default(false),
		field.Time("last_activity").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (AdviceSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("terminal"),
		index.Fields("last_activity"),
	}
}

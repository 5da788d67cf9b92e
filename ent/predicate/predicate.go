// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdviceSession is the predicate function for advicesession builders.
type AdviceSession func(*sql.Selector)

// ChatEvent is the predicate function for chatevent builders.
type ChatEvent func(*sql.Selector)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

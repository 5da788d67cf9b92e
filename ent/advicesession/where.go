// Code generated by ent, DO NOT EDIT.

package advicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/apetrov/coursemate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldEQ(FieldSessionID, v))
}

// Flow applies equality check predicate on the "flow" field. It's identical to FlowEQ.
func Flow(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldEQ(FieldFlow, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldEQ(FieldCurrentStep, v))
}

// Terminal applies equality check predicate on the "terminal" field. It's identical to TerminalEQ.
func Terminal(v bool) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldEQ(FieldTerminal, v))
}

// LastActivity applies equality check predicate on the "last_activity" field. It's identical to LastActivityEQ.
func LastActivity(v time.Time) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldEQ(FieldLastActivity, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldContainsFold(FieldSessionID, v))
}

// FlowEQ applies the EQ predicate on the "flow" field.
func FlowEQ(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldEQ(FieldFlow, v))
}

// FlowNEQ applies the NEQ predicate on the "flow" field.
func FlowNEQ(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldNEQ(FieldFlow, v))
}

// FlowIn applies the In predicate on the "flow" field.
func FlowIn(vs ...string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldIn(FieldFlow, vs...))
}

// FlowNotIn applies the NotIn predicate on the "flow" field.
func FlowNotIn(vs ...string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldNotIn(FieldFlow, vs...))
}

// FlowGT applies the GT predicate on the "flow" field.
func FlowGT(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldGT(FieldFlow, v))
}

// FlowGTE applies the GTE predicate on the "flow" field.
func FlowGTE(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldGTE(FieldFlow, v))
}

// FlowLT applies the LT predicate on the "flow" field.
func FlowLT(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldLT(FieldFlow, v))
}

// FlowLTE applies the LTE predicate on the "flow" field.
func FlowLTE(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldLTE(FieldFlow, v))
}

// FlowContains applies the Contains predicate on the "flow" field.
func FlowContains(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldContains(FieldFlow, v))
}

// FlowHasPrefix applies the HasPrefix predicate on the "flow" field.
func FlowHasPrefix(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldHasPrefix(FieldFlow, v))
}

// FlowHasSuffix applies the HasSuffix predicate on the "flow" field.
func FlowHasSuffix(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldHasSuffix(FieldFlow, v))
}

// FlowEqualFold applies the EqualFold predicate on the "flow" field.
func FlowEqualFold(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldEqualFold(FieldFlow, v))
}

// FlowContainsFold applies the ContainsFold predicate on the "flow" field.
func FlowContainsFold(v string) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldContainsFold(FieldFlow, v))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v int) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldLTE(FieldCurrentStep, v))
}

// AnswersIsNil applies the IsNil predicate on the "answers" field.
func AnswersIsNil() predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldIsNull(FieldAnswers))
}

// AnswersNotNil applies the NotNil predicate on the "answers" field.
func AnswersNotNil() predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldNotNull(FieldAnswers))
}

// TerminalEQ applies the EQ predicate on the "terminal" field.
func TerminalEQ(v bool) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldEQ(FieldTerminal, v))
}

// TerminalNEQ applies the NEQ predicate on the "terminal" field.
func TerminalNEQ(v bool) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldNEQ(FieldTerminal, v))
}

// LastActivityEQ applies the EQ predicate on the "last_activity" field.
func LastActivityEQ(v time.Time) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldEQ(FieldLastActivity, v))
}

// LastActivityNEQ applies the NEQ predicate on the "last_activity" field.
func LastActivityNEQ(v time.Time) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldNEQ(FieldLastActivity, v))
}

// LastActivityIn applies the In predicate on the "last_activity" field.
func LastActivityIn(vs ...time.Time) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldIn(FieldLastActivity, vs...))
}

// LastActivityNotIn applies the NotIn predicate on the "last_activity" field.
func LastActivityNotIn(vs ...time.Time) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldNotIn(FieldLastActivity, vs...))
}

// LastActivityGT applies the GT predicate on the "last_activity" field.
func LastActivityGT(v time.Time) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldGT(FieldLastActivity, v))
}

// LastActivityGTE applies the GTE predicate on the "last_activity" field.
func LastActivityGTE(v time.Time) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldGTE(FieldLastActivity, v))
}

// LastActivityLT applies the LT predicate on the "last_activity" field.
func LastActivityLT(v time.Time) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldLT(FieldLastActivity, v))
}

// LastActivityLTE applies the LTE predicate on the "last_activity" field.
func LastActivityLTE(v time.Time) predicate.AdviceSession {
	return predicate.AdviceSession(sql.FieldLTE(FieldLastActivity, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AdviceSession) predicate.AdviceSession {
	return predicate.AdviceSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AdviceSession) predicate.AdviceSession {
	return predicate.AdviceSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AdviceSession) predicate.AdviceSession {
	return predicate.AdviceSession(sql.NotPredicates(p))
}

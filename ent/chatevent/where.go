// Code generated by ent, DO NOT EDIT.

package chatevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/apetrov/coursemate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldSessionID, v))
}

// Intent applies equality check predicate on the "intent" field. It's identical to IntentEQ.
func Intent(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldIntent, v))
}

// MatchedPattern applies equality check predicate on the "matched_pattern" field. It's identical to MatchedPatternEQ.
func MatchedPattern(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldMatchedPattern, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldConfidence, v))
}

// ReplySource applies equality check predicate on the "reply_source" field. It's identical to ReplySourceEQ.
func ReplySource(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldReplySource, v))
}

// HandlerFailed applies equality check predicate on the "handler_failed" field. It's identical to HandlerFailedEQ.
func HandlerFailed(v bool) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldHandlerFailed, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// IntentEQ applies the EQ predicate on the "intent" field.
func IntentEQ(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldIntent, v))
}

// IntentNEQ applies the NEQ predicate on the "intent" field.
func IntentNEQ(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNEQ(FieldIntent, v))
}

// IntentIn applies the In predicate on the "intent" field.
func IntentIn(vs ...string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldIn(FieldIntent, vs...))
}

// IntentNotIn applies the NotIn predicate on the "intent" field.
func IntentNotIn(vs ...string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNotIn(FieldIntent, vs...))
}

// IntentGT applies the GT predicate on the "intent" field.
func IntentGT(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGT(FieldIntent, v))
}

// IntentGTE applies the GTE predicate on the "intent" field.
func IntentGTE(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGTE(FieldIntent, v))
}

// IntentLT applies the LT predicate on the "intent" field.
func IntentLT(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLT(FieldIntent, v))
}

// IntentLTE applies the LTE predicate on the "intent" field.
func IntentLTE(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLTE(FieldIntent, v))
}

// IntentContains applies the Contains predicate on the "intent" field.
func IntentContains(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldContains(FieldIntent, v))
}

// IntentHasPrefix applies the HasPrefix predicate on the "intent" field.
func IntentHasPrefix(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldHasPrefix(FieldIntent, v))
}

// IntentHasSuffix applies the HasSuffix predicate on the "intent" field.
func IntentHasSuffix(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldHasSuffix(FieldIntent, v))
}

// IntentEqualFold applies the EqualFold predicate on the "intent" field.
func IntentEqualFold(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEqualFold(FieldIntent, v))
}

// IntentContainsFold applies the ContainsFold predicate on the "intent" field.
func IntentContainsFold(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldContainsFold(FieldIntent, v))
}

// MatchedPatternEQ applies the EQ predicate on the "matched_pattern" field.
func MatchedPatternEQ(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldMatchedPattern, v))
}

// MatchedPatternNEQ applies the NEQ predicate on the "matched_pattern" field.
func MatchedPatternNEQ(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNEQ(FieldMatchedPattern, v))
}

// MatchedPatternIn applies the In predicate on the "matched_pattern" field.
func MatchedPatternIn(vs ...string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldIn(FieldMatchedPattern, vs...))
}

// MatchedPatternNotIn applies the NotIn predicate on the "matched_pattern" field.
func MatchedPatternNotIn(vs ...string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNotIn(FieldMatchedPattern, vs...))
}

// MatchedPatternGT applies the GT predicate on the "matched_pattern" field.
func MatchedPatternGT(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGT(FieldMatchedPattern, v))
}

// MatchedPatternGTE applies the GTE predicate on the "matched_pattern" field.
func MatchedPatternGTE(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGTE(FieldMatchedPattern, v))
}

// MatchedPatternLT applies the LT predicate on the "matched_pattern" field.
func MatchedPatternLT(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLT(FieldMatchedPattern, v))
}

// MatchedPatternLTE applies the LTE predicate on the "matched_pattern" field.
func MatchedPatternLTE(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLTE(FieldMatchedPattern, v))
}

// MatchedPatternContains applies the Contains predicate on the "matched_pattern" field.
func MatchedPatternContains(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldContains(FieldMatchedPattern, v))
}

// MatchedPatternHasPrefix applies the HasPrefix predicate on the "matched_pattern" field.
func MatchedPatternHasPrefix(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldHasPrefix(FieldMatchedPattern, v))
}

// MatchedPatternHasSuffix applies the HasSuffix predicate on the "matched_pattern" field.
func MatchedPatternHasSuffix(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldHasSuffix(FieldMatchedPattern, v))
}

// MatchedPatternEqualFold applies the EqualFold predicate on the "matched_pattern" field.
func MatchedPatternEqualFold(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEqualFold(FieldMatchedPattern, v))
}

// MatchedPatternContainsFold applies the ContainsFold predicate on the "matched_pattern" field.
func MatchedPatternContainsFold(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldContainsFold(FieldMatchedPattern, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLTE(FieldConfidence, v))
}

// ReplySourceEQ applies the EQ predicate on the "reply_source" field.
func ReplySourceEQ(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldReplySource, v))
}

// ReplySourceNEQ applies the NEQ predicate on the "reply_source" field.
func ReplySourceNEQ(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNEQ(FieldReplySource, v))
}

// ReplySourceIn applies the In predicate on the "reply_source" field.
func ReplySourceIn(vs ...string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldIn(FieldReplySource, vs...))
}

// ReplySourceNotIn applies the NotIn predicate on the "reply_source" field.
func ReplySourceNotIn(vs ...string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNotIn(FieldReplySource, vs...))
}

// ReplySourceGT applies the GT predicate on the "reply_source" field.
func ReplySourceGT(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGT(FieldReplySource, v))
}

// ReplySourceGTE applies the GTE predicate on the "reply_source" field.
func ReplySourceGTE(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGTE(FieldReplySource, v))
}

// ReplySourceLT applies the LT predicate on the "reply_source" field.
func ReplySourceLT(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLT(FieldReplySource, v))
}

// ReplySourceLTE applies the LTE predicate on the "reply_source" field.
func ReplySourceLTE(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLTE(FieldReplySource, v))
}

// ReplySourceContains applies the Contains predicate on the "reply_source" field.
func ReplySourceContains(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldContains(FieldReplySource, v))
}

// ReplySourceHasPrefix applies the HasPrefix predicate on the "reply_source" field.
func ReplySourceHasPrefix(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldHasPrefix(FieldReplySource, v))
}

// ReplySourceHasSuffix applies the HasSuffix predicate on the "reply_source" field.
func ReplySourceHasSuffix(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldHasSuffix(FieldReplySource, v))
}

// ReplySourceEqualFold applies the EqualFold predicate on the "reply_source" field.
func ReplySourceEqualFold(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEqualFold(FieldReplySource, v))
}

// ReplySourceContainsFold applies the ContainsFold predicate on the "reply_source" field.
func ReplySourceContainsFold(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldContainsFold(FieldReplySource, v))
}

// HandlerFailedEQ applies the EQ predicate on the "handler_failed" field.
func HandlerFailedEQ(v bool) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldHandlerFailed, v))
}

// HandlerFailedNEQ applies the NEQ predicate on the "handler_failed" field.
func HandlerFailedNEQ(v bool) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNEQ(FieldHandlerFailed, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ChatEvent {
	return predicate.ChatEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChatEvent) predicate.ChatEvent {
	return predicate.ChatEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChatEvent) predicate.ChatEvent {
	return predicate.ChatEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChatEvent) predicate.ChatEvent {
	return predicate.ChatEvent(sql.NotPredicates(p))
}

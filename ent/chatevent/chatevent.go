// Code generated by ent, DO NOT EDIT.

package chatevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the chatevent type in the database.
	Label = "chat_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldIntent holds the string denoting the intent field in the database.
	FieldIntent = "intent"
	// FieldMatchedPattern holds the string denoting the matched_pattern field in the database.
	FieldMatchedPattern = "matched_pattern"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldReplySource holds the string denoting the reply_source field in the database.
	FieldReplySource = "reply_source"
	// FieldHandlerFailed holds the string denoting the handler_failed field in the database.
	FieldHandlerFailed = "handler_failed"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the chatevent in the database.
	Table = "chat_events"
)

// Columns holds all SQL columns for chatevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldIntent,
	FieldMatchedPattern,
	FieldConfidence,
	FieldReplySource,
	FieldHandlerFailed,
	FieldErrorMessage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultMatchedPattern holds the default value on creation for the "matched_pattern" field.
	DefaultMatchedPattern string
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultReplySource holds the default value on creation for the "reply_source" field.
	DefaultReplySource string
	// DefaultHandlerFailed holds the default value on creation for the "handler_failed" field.
	DefaultHandlerFailed bool
	// DefaultErrorMessage holds the default value on creation for the "error_message" field.
	DefaultErrorMessage string
)

// OrderOption defines the ordering options for the ChatEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByIntent orders the results by the intent field.
func ByIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntent, opts...).ToFunc()
}

// ByMatchedPattern orders the results by the matched_pattern field.
func ByMatchedPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchedPattern, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByReplySource orders the results by the reply_source field.
func ByReplySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplySource, opts...).ToFunc()
}

// ByHandlerFailed orders the results by the handler_failed field.
func ByHandlerFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHandlerFailed, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

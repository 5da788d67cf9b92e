// Code generated by ent, DO NOT EDIT.

package advicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the advicesession type in the database.
	Label = "advice_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldFlow holds the string denoting the flow field in the database.
	FieldFlow = "flow"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldTerminal holds the string denoting the terminal field in the database.
	FieldTerminal = "terminal"
	// FieldLastActivity holds the string denoting the last_activity field in the database.
	FieldLastActivity = "last_activity"
	// Table holds the table name of the advicesession in the database.
	Table = "advice_sessions"
)

// Columns holds all SQL columns for advicesession fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldFlow,
	FieldCurrentStep,
	FieldAnswers,
	FieldTerminal,
	FieldLastActivity,
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
	// DefaultFlow holds the default value on creation for the "flow" field.
	DefaultFlow string
	// DefaultCurrentStep holds the default value on creation for the "current_step" field.
	DefaultCurrentStep int
	// DefaultTerminal holds the default value on creation for the "terminal" field.
	DefaultTerminal bool
	// DefaultLastActivity holds the default value on creation for the "last_activity" field.
	DefaultLastActivity func() time.Time
	// UpdateDefaultLastActivity holds the default value on update for the "last_activity" field.
	UpdateDefaultLastActivity func() time.Time
)

// OrderOption defines the ordering options for the AdviceSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByFlow orders the results by the flow field.
func ByFlow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlow, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// ByTerminal orders the results by the terminal field.
func ByTerminal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminal, opts...).ToFunc()
}

// ByLastActivity orders the results by the last_activity field.
func ByLastActivity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivity, opts...).ToFunc()
}

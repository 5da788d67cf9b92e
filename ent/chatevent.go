// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apetrov/coursemate/ent/chatevent"
)

// ChatEvent is the model entity for the ChatEvent schema.
type ChatEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Classified intent name
	Intent string `json:"intent,omitempty"`
	// MatchedPattern holds the value of the "matched_pattern" field.
	MatchedPattern string `json:"matched_pattern,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// remote, fallback, questionnaire or handler
	ReplySource string `json:"reply_source,omitempty"`
	// HandlerFailed holds the value of the "handler_failed" field.
	HandlerFailed bool `json:"handler_failed,omitempty"`
	// Internal error masked from the user, kept for operators
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChatEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chatevent.FieldHandlerFailed:
			values[i] = new(sql.NullBool)
		case chatevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case chatevent.FieldID, chatevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case chatevent.FieldSessionID, chatevent.FieldIntent, chatevent.FieldMatchedPattern, chatevent.FieldReplySource, chatevent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case chatevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChatEvent fields.
func (_m *ChatEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chatevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case chatevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case chatevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case chatevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case chatevent.FieldIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent", values[i])
			} else if value.Valid {
				_m.Intent = value.String
			}
		case chatevent.FieldMatchedPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field matched_pattern", values[i])
			} else if value.Valid {
				_m.MatchedPattern = value.String
			}
		case chatevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case chatevent.FieldReplySource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reply_source", values[i])
			} else if value.Valid {
				_m.ReplySource = value.String
			}
		case chatevent.FieldHandlerFailed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field handler_failed", values[i])
			} else if value.Valid {
				_m.HandlerFailed = value.Bool
			}
		case chatevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChatEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ChatEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChatEvent.
// Note that you need to call ChatEvent.Unwrap() before calling this method if this ChatEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChatEvent) Update() *ChatEventUpdateOne {
	return NewChatEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChatEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChatEvent) Unwrap() *ChatEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChatEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChatEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ChatEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("intent=")
	builder.WriteString(_m.Intent)
	builder.WriteString(", ")
	builder.WriteString("matched_pattern=")
	builder.WriteString(_m.MatchedPattern)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("reply_source=")
	builder.WriteString(_m.ReplySource)
	builder.WriteString(", ")
	builder.WriteString("handler_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.HandlerFailed))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// ChatEvents is a parsable slice of ChatEvent.
type ChatEvents []*ChatEvent

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/apetrov/coursemate/ent/advicesession"
)

// AdviceSession is the model entity for the AdviceSession schema.
type AdviceSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Step list the session runs: conversational or guided
	Flow string `json:"flow,omitempty"`
	// 1-based; only ever increases until terminal
	CurrentStep int `json:"current_step,omitempty"`
	// Accumulated step answers keyed by step key
	Answers map[string]string `json:"answers,omitempty"`
	// Terminal holds the value of the "terminal" field.
	Terminal bool `json:"terminal,omitempty"`
	// LastActivity holds the value of the "last_activity" field.
	LastActivity time.Time `json:"last_activity,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AdviceSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case advicesession.FieldAnswers:
			values[i] = new([]byte)
		case advicesession.FieldTerminal:
			values[i] = new(sql.NullBool)
		case advicesession.FieldID, advicesession.FieldCurrentStep:
			values[i] = new(sql.NullInt64)
		case advicesession.FieldSessionID, advicesession.FieldFlow:
			values[i] = new(sql.NullString)
		case advicesession.FieldLastActivity:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AdviceSession fields.
func (_m *AdviceSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case advicesession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case advicesession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case advicesession.FieldFlow:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flow", values[i])
			} else if value.Valid {
				_m.Flow = value.String
			}
		case advicesession.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = int(value.Int64)
			}
		case advicesession.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case advicesession.FieldTerminal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field terminal", values[i])
			} else if value.Valid {
				_m.Terminal = value.Bool
			}
		case advicesession.FieldLastActivity:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity", values[i])
			} else if value.Valid {
				_m.LastActivity = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AdviceSession.
// This includes values selected through modifiers, order, etc.
func (_m *AdviceSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AdviceSession.
// Note that you need to call AdviceSession.Unwrap() before calling this method if this AdviceSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AdviceSession) Update() *AdviceSessionUpdateOne {
	return NewAdviceSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AdviceSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AdviceSession) Unwrap() *AdviceSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AdviceSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AdviceSession) String() string {
	var builder strings.Builder
	builder.WriteString("AdviceSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("flow=")
	builder.WriteString(_m.Flow)
	builder.WriteString(", ")
	builder.WriteString("current_step=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStep))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("terminal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Terminal))
	builder.WriteString(", ")
	builder.WriteString("last_activity=")
	builder.WriteString(_m.LastActivity.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AdviceSessions is a parsable slice of AdviceSession.
type AdviceSessions []*AdviceSession

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apetrov/coursemate/ent/chatevent"
	"github.com/apetrov/coursemate/ent/predicate"
)

// ChatEventUpdate is the builder for updating ChatEvent entities.
type ChatEventUpdate struct {
	config
	hooks    []Hook
	mutation *ChatEventMutation
}

// Where appends a list predicates to the ChatEventUpdate builder.
func (_u *ChatEventUpdate) Where(ps ...predicate.ChatEvent) *ChatEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ChatEventUpdate) SetSessionID(v string) *ChatEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableSessionID(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetIntent sets the "intent" field.
func (_u *ChatEventUpdate) SetIntent(v string) *ChatEventUpdate {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableIntent(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// SetMatchedPattern sets the "matched_pattern" field.
func (_u *ChatEventUpdate) SetMatchedPattern(v string) *ChatEventUpdate {
	_u.mutation.SetMatchedPattern(v)
	return _u
}

// SetNillableMatchedPattern sets the "matched_pattern" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableMatchedPattern(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetMatchedPattern(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ChatEventUpdate) SetConfidence(v float64) *ChatEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableConfidence(v *float64) *ChatEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ChatEventUpdate) AddConfidence(v float64) *ChatEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReplySource sets the "reply_source" field.
func (_u *ChatEventUpdate) SetReplySource(v string) *ChatEventUpdate {
	_u.mutation.SetReplySource(v)
	return _u
}

// SetNillableReplySource sets the "reply_source" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableReplySource(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetReplySource(*v)
	}
	return _u
}

// SetHandlerFailed sets the "handler_failed" field.
func (_u *ChatEventUpdate) SetHandlerFailed(v bool) *ChatEventUpdate {
	_u.mutation.SetHandlerFailed(v)
	return _u
}

// SetNillableHandlerFailed sets the "handler_failed" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableHandlerFailed(v *bool) *ChatEventUpdate {
	if v != nil {
		_u.SetHandlerFailed(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ChatEventUpdate) SetErrorMessage(v string) *ChatEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableErrorMessage(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the ChatEventMutation object of the builder.
func (_u *ChatEventUpdate) Mutation() *ChatEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChatEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(chatevent.Table, chatevent.Columns, sqlgraph.NewFieldSpec(chatevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(chatevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(chatevent.FieldIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.MatchedPattern(); ok {
		_spec.SetField(chatevent.FieldMatchedPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(chatevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(chatevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReplySource(); ok {
		_spec.SetField(chatevent.FieldReplySource, field.TypeString, value)
	}
	if value, ok := _u.mutation.HandlerFailed(); ok {
		_spec.SetField(chatevent.FieldHandlerFailed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(chatevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatEventUpdateOne is the builder for updating a single ChatEvent entity.
type ChatEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ChatEventUpdateOne) SetSessionID(v string) *ChatEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableSessionID(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetIntent sets the "intent" field.
func (_u *ChatEventUpdateOne) SetIntent(v string) *ChatEventUpdateOne {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableIntent(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// SetMatchedPattern sets the "matched_pattern" field.
func (_u *ChatEventUpdateOne) SetMatchedPattern(v string) *ChatEventUpdateOne {
	_u.mutation.SetMatchedPattern(v)
	return _u
}

// SetNillableMatchedPattern sets the "matched_pattern" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableMatchedPattern(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetMatchedPattern(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ChatEventUpdateOne) SetConfidence(v float64) *ChatEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableConfidence(v *float64) *ChatEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ChatEventUpdateOne) AddConfidence(v float64) *ChatEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReplySource sets the "reply_source" field.
func (_u *ChatEventUpdateOne) SetReplySource(v string) *ChatEventUpdateOne {
	_u.mutation.SetReplySource(v)
	return _u
}

// SetNillableReplySource sets the "reply_source" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableReplySource(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetReplySource(*v)
	}
	return _u
}

// SetHandlerFailed sets the "handler_failed" field.
func (_u *ChatEventUpdateOne) SetHandlerFailed(v bool) *ChatEventUpdateOne {
	_u.mutation.SetHandlerFailed(v)
	return _u
}

// SetNillableHandlerFailed sets the "handler_failed" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableHandlerFailed(v *bool) *ChatEventUpdateOne {
	if v != nil {
		_u.SetHandlerFailed(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ChatEventUpdateOne) SetErrorMessage(v string) *ChatEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableErrorMessage(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the ChatEventMutation object of the builder.
func (_u *ChatEventUpdateOne) Mutation() *ChatEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatEventUpdate builder.
func (_u *ChatEventUpdateOne) Where(ps ...predicate.ChatEvent) *ChatEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatEventUpdateOne) Select(field string, fields ...string) *ChatEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatEvent entity.
func (_u *ChatEventUpdateOne) Save(ctx context.Context) (*ChatEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatEventUpdateOne) SaveX(ctx context.Context) *ChatEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChatEventUpdateOne) sqlSave(ctx context.Context) (_node *ChatEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(chatevent.Table, chatevent.Columns, sqlgraph.NewFieldSpec(chatevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatevent.FieldID)
		for _, f := range fields {
			if !chatevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(chatevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(chatevent.FieldIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.MatchedPattern(); ok {
		_spec.SetField(chatevent.FieldMatchedPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(chatevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(chatevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReplySource(); ok {
		_spec.SetField(chatevent.FieldReplySource, field.TypeString, value)
	}
	if value, ok := _u.mutation.HandlerFailed(); ok {
		_spec.SetField(chatevent.FieldHandlerFailed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(chatevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &ChatEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

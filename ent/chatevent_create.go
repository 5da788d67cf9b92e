// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apetrov/coursemate/ent/chatevent"
)

// ChatEventCreate is the builder for creating a ChatEvent entity.
type ChatEventCreate struct {
	config
	mutation *ChatEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ChatEventCreate) SetSequence(v int64) *ChatEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ChatEventCreate) SetTimestamp(v time.Time) *ChatEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ChatEventCreate) SetNillableTimestamp(v *time.Time) *ChatEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ChatEventCreate) SetSessionID(v string) *ChatEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetIntent sets the "intent" field.
func (_c *ChatEventCreate) SetIntent(v string) *ChatEventCreate {
	_c.mutation.SetIntent(v)
	return _c
}

// SetMatchedPattern sets the "matched_pattern" field.
func (_c *ChatEventCreate) SetMatchedPattern(v string) *ChatEventCreate {
	_c.mutation.SetMatchedPattern(v)
	return _c
}

// SetNillableMatchedPattern sets the "matched_pattern" field if the given value is not nil.
func (_c *ChatEventCreate) SetNillableMatchedPattern(v *string) *ChatEventCreate {
	if v != nil {
		_c.SetMatchedPattern(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ChatEventCreate) SetConfidence(v float64) *ChatEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ChatEventCreate) SetNillableConfidence(v *float64) *ChatEventCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetReplySource sets the "reply_source" field.
func (_c *ChatEventCreate) SetReplySource(v string) *ChatEventCreate {
	_c.mutation.SetReplySource(v)
	return _c
}

// SetNillableReplySource sets the "reply_source" field if the given value is not nil.
func (_c *ChatEventCreate) SetNillableReplySource(v *string) *ChatEventCreate {
	if v != nil {
		_c.SetReplySource(*v)
	}
	return _c
}

// SetHandlerFailed sets the "handler_failed" field.
func (_c *ChatEventCreate) SetHandlerFailed(v bool) *ChatEventCreate {
	_c.mutation.SetHandlerFailed(v)
	return _c
}

// SetNillableHandlerFailed sets the "handler_failed" field if the given value is not nil.
func (_c *ChatEventCreate) SetNillableHandlerFailed(v *bool) *ChatEventCreate {
	if v != nil {
		_c.SetHandlerFailed(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ChatEventCreate) SetErrorMessage(v string) *ChatEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ChatEventCreate) SetNillableErrorMessage(v *string) *ChatEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the ChatEventMutation object of the builder.
func (_c *ChatEventCreate) Mutation() *ChatEventMutation {
	return _c.mutation
}

// Save creates the ChatEvent in the database.
func (_c *ChatEventCreate) Save(ctx context.Context) (*ChatEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatEventCreate) SaveX(ctx context.Context) *ChatEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := chatevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.MatchedPattern(); !ok {
		v := chatevent.DefaultMatchedPattern
		_c.mutation.SetMatchedPattern(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := chatevent.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.ReplySource(); !ok {
		v := chatevent.DefaultReplySource
		_c.mutation.SetReplySource(v)
	}
	if _, ok := _c.mutation.HandlerFailed(); !ok {
		v := chatevent.DefaultHandlerFailed
		_c.mutation.SetHandlerFailed(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := chatevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ChatEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ChatEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ChatEvent.session_id"`)}
	}
	if _, ok := _c.mutation.Intent(); !ok {
		return &ValidationError{Name: "intent", err: errors.New(`ent: missing required field "ChatEvent.intent"`)}
	}
	if _, ok := _c.mutation.MatchedPattern(); !ok {
		return &ValidationError{Name: "matched_pattern", err: errors.New(`ent: missing required field "ChatEvent.matched_pattern"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ChatEvent.confidence"`)}
	}
	if _, ok := _c.mutation.ReplySource(); !ok {
		return &ValidationError{Name: "reply_source", err: errors.New(`ent: missing required field "ChatEvent.reply_source"`)}
	}
	if _, ok := _c.mutation.HandlerFailed(); !ok {
		return &ValidationError{Name: "handler_failed", err: errors.New(`ent: missing required field "ChatEvent.handler_failed"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "ChatEvent.error_message"`)}
	}
	return nil
}

func (_c *ChatEventCreate) sqlSave(ctx context.Context) (*ChatEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatEventCreate) createSpec() (*ChatEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatevent.Table, sqlgraph.NewFieldSpec(chatevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(chatevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(chatevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(chatevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Intent(); ok {
		_spec.SetField(chatevent.FieldIntent, field.TypeString, value)
		_node.Intent = value
	}
	if value, ok := _c.mutation.MatchedPattern(); ok {
		_spec.SetField(chatevent.FieldMatchedPattern, field.TypeString, value)
		_node.MatchedPattern = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(chatevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ReplySource(); ok {
		_spec.SetField(chatevent.FieldReplySource, field.TypeString, value)
		_node.ReplySource = value
	}
	if value, ok := _c.mutation.HandlerFailed(); ok {
		_spec.SetField(chatevent.FieldHandlerFailed, field.TypeBool, value)
		_node.HandlerFailed = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(chatevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// ChatEventCreateBulk is the builder for creating many ChatEvent entities in bulk.
type ChatEventCreateBulk struct {
	config
	err      error
	builders []*ChatEventCreate
}

// Save creates the ChatEvent entities in the database.
func (_c *ChatEventCreateBulk) Save(ctx context.Context) ([]*ChatEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChatEventCreateBulk) SaveX(ctx context.Context) []*ChatEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apetrov/coursemate/ent/advicesession"
)

// AdviceSessionCreate is the builder for creating a AdviceSession entity.
type AdviceSessionCreate struct {
	config
	mutation *AdviceSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AdviceSessionCreate) SetSessionID(v string) *AdviceSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetFlow sets the "flow" field.
func (_c *AdviceSessionCreate) SetFlow(v string) *AdviceSessionCreate {
	_c.mutation.SetFlow(v)
	return _c
}

// SetNillableFlow sets the "flow" field if the given value is not nil.
func (_c *AdviceSessionCreate) SetNillableFlow(v *string) *AdviceSessionCreate {
	if v != nil {
		_c.SetFlow(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *AdviceSessionCreate) SetCurrentStep(v int) *AdviceSessionCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *AdviceSessionCreate) SetNillableCurrentStep(v *int) *AdviceSessionCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *AdviceSessionCreate) SetAnswers(v map[string]string) *AdviceSessionCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetTerminal sets the "terminal" field.
func (_c *AdviceSessionCreate) SetTerminal(v bool) *AdviceSessionCreate {
	_c.mutation.SetTerminal(v)
	return _c
}

// SetNillableTerminal sets the "terminal" field if the given value is not nil.
func (_c *AdviceSessionCreate) SetNillableTerminal(v *bool) *AdviceSessionCreate {
	if v != nil {
		_c.SetTerminal(*v)
	}
	return _c
}

// SetLastActivity sets the "last_activity" field.
func (_c *AdviceSessionCreate) SetLastActivity(v time.Time) *AdviceSessionCreate {
	_c.mutation.SetLastActivity(v)
	return _c
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_c *AdviceSessionCreate) SetNillableLastActivity(v *time.Time) *AdviceSessionCreate {
	if v != nil {
		_c.SetLastActivity(*v)
	}
	return _c
}

// Mutation returns the AdviceSessionMutation object of the builder.
func (_c *AdviceSessionCreate) Mutation() *AdviceSessionMutation {
	return _c.mutation
}

// Save creates the AdviceSession in the database.
func (_c *AdviceSessionCreate) Save(ctx context.Context) (*AdviceSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AdviceSessionCreate) SaveX(ctx context.Context) *AdviceSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdviceSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdviceSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AdviceSessionCreate) defaults() {
	if _, ok := _c.mutation.Flow(); !ok {
		v := advicesession.DefaultFlow
		_c.mutation.SetFlow(v)
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		v := advicesession.DefaultCurrentStep
		_c.mutation.SetCurrentStep(v)
	}
	if _, ok := _c.mutation.Terminal(); !ok {
		v := advicesession.DefaultTerminal
		_c.mutation.SetTerminal(v)
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		v := advicesession.DefaultLastActivity()
		_c.mutation.SetLastActivity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AdviceSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AdviceSession.session_id"`)}
	}
	if _, ok := _c.mutation.Flow(); !ok {
		return &ValidationError{Name: "flow", err: errors.New(`ent: missing required field "AdviceSession.flow"`)}
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		return &ValidationError{Name: "current_step", err: errors.New(`ent: missing required field "AdviceSession.current_step"`)}
	}
	if _, ok := _c.mutation.Terminal(); !ok {
		return &ValidationError{Name: "terminal", err: errors.New(`ent: missing required field "AdviceSession.terminal"`)}
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		return &ValidationError{Name: "last_activity", err: errors.New(`ent: missing required field "AdviceSession.last_activity"`)}
	}
	return nil
}

func (_c *AdviceSessionCreate) sqlSave(ctx context.Context) (*AdviceSession, error) {
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

func (_c *AdviceSessionCreate) createSpec() (*AdviceSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AdviceSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(advicesession.Table, sqlgraph.NewFieldSpec(advicesession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(advicesession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Flow(); ok {
		_spec.SetField(advicesession.FieldFlow, field.TypeString, value)
		_node.Flow = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(advicesession.FieldCurrentStep, field.TypeInt, value)
		_node.CurrentStep = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(advicesession.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Terminal(); ok {
		_spec.SetField(advicesession.FieldTerminal, field.TypeBool, value)
		_node.Terminal = value
	}
	if value, ok := _c.mutation.LastActivity(); ok {
		_spec.SetField(advicesession.FieldLastActivity, field.TypeTime, value)
		_node.LastActivity = value
	}
	return _node, _spec
}

// AdviceSessionCreateBulk is the builder for creating many AdviceSession entities in bulk.
type AdviceSessionCreateBulk struct {
	config
	err      error
	builders []*AdviceSessionCreate
}

// Save creates the AdviceSession entities in the database.
func (_c *AdviceSessionCreateBulk) Save(ctx context.Context) ([]*AdviceSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AdviceSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdviceSessionMutation)
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
func (_c *AdviceSessionCreateBulk) SaveX(ctx context.Context) []*AdviceSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AdviceSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AdviceSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apetrov/coursemate/ent/advicesession"
	"github.com/apetrov/coursemate/ent/predicate"
)

// AdviceSessionUpdate is the builder for updating AdviceSession entities.
type AdviceSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AdviceSessionMutation
}

// Where appends a list predicates to the AdviceSessionUpdate builder.
func (_u *AdviceSessionUpdate) Where(ps ...predicate.AdviceSession) *AdviceSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFlow sets the "flow" field.
func (_u *AdviceSessionUpdate) SetFlow(v string) *AdviceSessionUpdate {
	_u.mutation.SetFlow(v)
	return _u
}

// SetNillableFlow sets the "flow" field if the given value is not nil.
func (_u *AdviceSessionUpdate) SetNillableFlow(v *string) *AdviceSessionUpdate {
	if v != nil {
		_u.SetFlow(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *AdviceSessionUpdate) SetCurrentStep(v int) *AdviceSessionUpdate {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *AdviceSessionUpdate) SetNillableCurrentStep(v *int) *AdviceSessionUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *AdviceSessionUpdate) AddCurrentStep(v int) *AdviceSessionUpdate {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AdviceSessionUpdate) SetAnswers(v map[string]string) *AdviceSessionUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *AdviceSessionUpdate) ClearAnswers() *AdviceSessionUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetTerminal sets the "terminal" field.
func (_u *AdviceSessionUpdate) SetTerminal(v bool) *AdviceSessionUpdate {
	_u.mutation.SetTerminal(v)
	return _u
}

// SetNillableTerminal sets the "terminal" field if the given value is not nil.
func (_u *AdviceSessionUpdate) SetNillableTerminal(v *bool) *AdviceSessionUpdate {
	if v != nil {
		_u.SetTerminal(*v)
	}
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *AdviceSessionUpdate) SetLastActivity(v time.Time) *AdviceSessionUpdate {
	_u.mutation.SetLastActivity(v)
	return _u
}

// Mutation returns the AdviceSessionMutation object of the builder.
func (_u *AdviceSessionUpdate) Mutation() *AdviceSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdviceSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdviceSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdviceSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdviceSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdviceSessionUpdate) defaults() {
	if _, ok := _u.mutation.LastActivity(); !ok {
		v := advicesession.UpdateDefaultLastActivity()
		_u.mutation.SetLastActivity(v)
	}
}

func (_u *AdviceSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(advicesession.Table, advicesession.Columns, sqlgraph.NewFieldSpec(advicesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Flow(); ok {
		_spec.SetField(advicesession.FieldFlow, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(advicesession.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(advicesession.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(advicesession.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(advicesession.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Terminal(); ok {
		_spec.SetField(advicesession.FieldTerminal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(advicesession.FieldLastActivity, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{advicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdviceSessionUpdateOne is the builder for updating a single AdviceSession entity.
type AdviceSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdviceSessionMutation
}

// SetFlow sets the "flow" field.
func (_u *AdviceSessionUpdateOne) SetFlow(v string) *AdviceSessionUpdateOne {
	_u.mutation.SetFlow(v)
	return _u
}

// SetNillableFlow sets the "flow" field if the given value is not nil.
func (_u *AdviceSessionUpdateOne) SetNillableFlow(v *string) *AdviceSessionUpdateOne {
	if v != nil {
		_u.SetFlow(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *AdviceSessionUpdateOne) SetCurrentStep(v int) *AdviceSessionUpdateOne {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *AdviceSessionUpdateOne) SetNillableCurrentStep(v *int) *AdviceSessionUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *AdviceSessionUpdateOne) AddCurrentStep(v int) *AdviceSessionUpdateOne {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AdviceSessionUpdateOne) SetAnswers(v map[string]string) *AdviceSessionUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *AdviceSessionUpdateOne) ClearAnswers() *AdviceSessionUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetTerminal sets the "terminal" field.
func (_u *AdviceSessionUpdateOne) SetTerminal(v bool) *AdviceSessionUpdateOne {
	_u.mutation.SetTerminal(v)
	return _u
}

// SetNillableTerminal sets the "terminal" field if the given value is not nil.
func (_u *AdviceSessionUpdateOne) SetNillableTerminal(v *bool) *AdviceSessionUpdateOne {
	if v != nil {
		_u.SetTerminal(*v)
	}
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *AdviceSessionUpdateOne) SetLastActivity(v time.Time) *AdviceSessionUpdateOne {
	_u.mutation.SetLastActivity(v)
	return _u
}

// Mutation returns the AdviceSessionMutation object of the builder.
func (_u *AdviceSessionUpdateOne) Mutation() *AdviceSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdviceSessionUpdate builder.
func (_u *AdviceSessionUpdateOne) Where(ps ...predicate.AdviceSession) *AdviceSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdviceSessionUpdateOne) Select(field string, fields ...string) *AdviceSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdviceSession entity.
func (_u *AdviceSessionUpdateOne) Save(ctx context.Context) (*AdviceSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdviceSessionUpdateOne) SaveX(ctx context.Context) *AdviceSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdviceSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdviceSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AdviceSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.LastActivity(); !ok {
		v := advicesession.UpdateDefaultLastActivity()
		_u.mutation.SetLastActivity(v)
	}
}

func (_u *AdviceSessionUpdateOne) sqlSave(ctx context.Context) (_node *AdviceSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(advicesession.Table, advicesession.Columns, sqlgraph.NewFieldSpec(advicesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdviceSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, advicesession.FieldID)
		for _, f := range fields {
			if !advicesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != advicesession.FieldID {
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
	if value, ok := _u.mutation.Flow(); ok {
		_spec.SetField(advicesession.FieldFlow, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(advicesession.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(advicesession.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(advicesession.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(advicesession.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Terminal(); ok {
		_spec.SetField(advicesession.FieldTerminal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(advicesession.FieldLastActivity, field.TypeTime, value)
	}
	_node = &AdviceSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{advicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apetrov/coursemate/ent/advicesession"
	"github.com/apetrov/coursemate/ent/predicate"
)

// AdviceSessionDelete is the builder for deleting a AdviceSession entity.
type AdviceSessionDelete struct {
	config
	hooks    []Hook
	mutation *AdviceSessionMutation
}

// Where appends a list predicates to the AdviceSessionDelete builder.
func (_d *AdviceSessionDelete) Where(ps ...predicate.AdviceSession) *AdviceSessionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AdviceSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdviceSessionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AdviceSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(advicesession.Table, sqlgraph.NewFieldSpec(advicesession.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AdviceSessionDeleteOne is the builder for deleting a single AdviceSession entity.
type AdviceSessionDeleteOne struct {
	_d *AdviceSessionDelete
}

// Where appends a list predicates to the AdviceSessionDelete builder.
func (_d *AdviceSessionDeleteOne) Where(ps ...predicate.AdviceSession) *AdviceSessionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AdviceSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{advicesession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AdviceSessionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/apetrov/coursemate/ent/course"
	"github.com/apetrov/coursemate/ent/predicate"
)

// CourseUpdate is the builder for updating Course entities.
type CourseUpdate struct {
	config
	hooks    []Hook
	mutation *CourseMutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdate) Where(ps ...predicate.Course) *CourseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseUpdate) SetTitle(v string) *CourseUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableTitle(v *string) *CourseUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CourseUpdate) SetDescription(v string) *CourseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableDescription(v *string) *CourseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CourseUpdate) SetCategory(v string) *CourseUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableCategory(v *string) *CourseUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *CourseUpdate) SetLevel(v string) *CourseUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableLevel(v *string) *CourseUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *CourseUpdate) SetPrice(v float64) *CourseUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *CourseUpdate) SetNillablePrice(v *float64) *CourseUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *CourseUpdate) AddPrice(v float64) *CourseUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetSkills sets the "skills" field.
func (_u *CourseUpdate) SetSkills(v []string) *CourseUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *CourseUpdate) AppendSkills(v []string) *CourseUpdate {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *CourseUpdate) ClearSkills() *CourseUpdate {
	_u.mutation.ClearSkills()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *CourseUpdate) SetDurationMinutes(v int) *CourseUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableDurationMinutes(v *int) *CourseUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *CourseUpdate) AddDurationMinutes(v int) *CourseUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetEnrolledCount sets the "enrolled_count" field.
func (_u *CourseUpdate) SetEnrolledCount(v int) *CourseUpdate {
	_u.mutation.ResetEnrolledCount()
	_u.mutation.SetEnrolledCount(v)
	return _u
}

// SetNillableEnrolledCount sets the "enrolled_count" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableEnrolledCount(v *int) *CourseUpdate {
	if v != nil {
		_u.SetEnrolledCount(*v)
	}
	return _u
}

// AddEnrolledCount adds value to the "enrolled_count" field.
func (_u *CourseUpdate) AddEnrolledCount(v int) *CourseUpdate {
	_u.mutation.AddEnrolledCount(v)
	return _u
}

// SetRatingAverage sets the "rating_average" field.
func (_u *CourseUpdate) SetRatingAverage(v float64) *CourseUpdate {
	_u.mutation.ResetRatingAverage()
	_u.mutation.SetRatingAverage(v)
	return _u
}

// SetNillableRatingAverage sets the "rating_average" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableRatingAverage(v *float64) *CourseUpdate {
	if v != nil {
		_u.SetRatingAverage(*v)
	}
	return _u
}

// AddRatingAverage adds value to the "rating_average" field.
func (_u *CourseUpdate) AddRatingAverage(v float64) *CourseUpdate {
	_u.mutation.AddRatingAverage(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *CourseUpdate) SetPublished(v bool) *CourseUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *CourseUpdate) SetNillablePublished(v *bool) *CourseUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdate) Mutation() *CourseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CourseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(course.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(course.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(course.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(course.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(course.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, course.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(course.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(course.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(course.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnrolledCount(); ok {
		_spec.SetField(course.FieldEnrolledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEnrolledCount(); ok {
		_spec.AddField(course.FieldEnrolledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RatingAverage(); ok {
		_spec.SetField(course.FieldRatingAverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRatingAverage(); ok {
		_spec.AddField(course.FieldRatingAverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(course.FieldPublished, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseUpdateOne is the builder for updating a single Course entity.
type CourseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseMutation
}

// SetTitle sets the "title" field.
func (_u *CourseUpdateOne) SetTitle(v string) *CourseUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableTitle(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CourseUpdateOne) SetDescription(v string) *CourseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableDescription(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CourseUpdateOne) SetCategory(v string) *CourseUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableCategory(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *CourseUpdateOne) SetLevel(v string) *CourseUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableLevel(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *CourseUpdateOne) SetPrice(v float64) *CourseUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillablePrice(v *float64) *CourseUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *CourseUpdateOne) AddPrice(v float64) *CourseUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetSkills sets the "skills" field.
func (_u *CourseUpdateOne) SetSkills(v []string) *CourseUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *CourseUpdateOne) AppendSkills(v []string) *CourseUpdateOne {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *CourseUpdateOne) ClearSkills() *CourseUpdateOne {
	_u.mutation.ClearSkills()
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *CourseUpdateOne) SetDurationMinutes(v int) *CourseUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableDurationMinutes(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *CourseUpdateOne) AddDurationMinutes(v int) *CourseUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetEnrolledCount sets the "enrolled_count" field.
func (_u *CourseUpdateOne) SetEnrolledCount(v int) *CourseUpdateOne {
	_u.mutation.ResetEnrolledCount()
	_u.mutation.SetEnrolledCount(v)
	return _u
}

// SetNillableEnrolledCount sets the "enrolled_count" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableEnrolledCount(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetEnrolledCount(*v)
	}
	return _u
}

// AddEnrolledCount adds value to the "enrolled_count" field.
func (_u *CourseUpdateOne) AddEnrolledCount(v int) *CourseUpdateOne {
	_u.mutation.AddEnrolledCount(v)
	return _u
}

// SetRatingAverage sets the "rating_average" field.
func (_u *CourseUpdateOne) SetRatingAverage(v float64) *CourseUpdateOne {
	_u.mutation.ResetRatingAverage()
	_u.mutation.SetRatingAverage(v)
	return _u
}

// SetNillableRatingAverage sets the "rating_average" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableRatingAverage(v *float64) *CourseUpdateOne {
	if v != nil {
		_u.SetRatingAverage(*v)
	}
	return _u
}

// AddRatingAverage adds value to the "rating_average" field.
func (_u *CourseUpdateOne) AddRatingAverage(v float64) *CourseUpdateOne {
	_u.mutation.AddRatingAverage(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *CourseUpdateOne) SetPublished(v bool) *CourseUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillablePublished(v *bool) *CourseUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdateOne) Mutation() *CourseMutation {
	return _u.mutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdateOne) Where(ps ...predicate.Course) *CourseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseUpdateOne) Select(field string, fields ...string) *CourseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Course entity.
func (_u *CourseUpdateOne) Save(ctx context.Context) (*Course, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdateOne) SaveX(ctx context.Context) *Course {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CourseUpdateOne) sqlSave(ctx context.Context) (_node *Course, err error) {
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Course.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, course.FieldID)
		for _, f := range fields {
			if !course.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != course.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(course.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(course.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(course.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(course.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(course.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, course.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(course.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(course.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(course.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnrolledCount(); ok {
		_spec.SetField(course.FieldEnrolledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEnrolledCount(); ok {
		_spec.AddField(course.FieldEnrolledCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RatingAverage(); ok {
		_spec.SetField(course.FieldRatingAverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRatingAverage(); ok {
		_spec.AddField(course.FieldRatingAverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(course.FieldPublished, field.TypeBool, value)
	}
	_node = &Course{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

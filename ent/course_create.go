// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/apetrov/coursemate/ent/course"
)

// CourseCreate is the builder for creating a Course entity.
type CourseCreate struct {
	config
	mutation *CourseMutation
	hooks    []Hook
}

// SetCourseID sets the "course_id" field.
func (_c *CourseCreate) SetCourseID(v string) *CourseCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CourseCreate) SetTitle(v string) *CourseCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CourseCreate) SetDescription(v string) *CourseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CourseCreate) SetNillableDescription(v *string) *CourseCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *CourseCreate) SetCategory(v string) *CourseCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *CourseCreate) SetNillableCategory(v *string) *CourseCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *CourseCreate) SetLevel(v string) *CourseCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *CourseCreate) SetPrice(v float64) *CourseCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *CourseCreate) SetNillablePrice(v *float64) *CourseCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetSkills sets the "skills" field.
func (_c *CourseCreate) SetSkills(v []string) *CourseCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *CourseCreate) SetDurationMinutes(v int) *CourseCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *CourseCreate) SetNillableDurationMinutes(v *int) *CourseCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetEnrolledCount sets the "enrolled_count" field.
func (_c *CourseCreate) SetEnrolledCount(v int) *CourseCreate {
	_c.mutation.SetEnrolledCount(v)
	return _c
}

// SetNillableEnrolledCount sets the "enrolled_count" field if the given value is not nil.
func (_c *CourseCreate) SetNillableEnrolledCount(v *int) *CourseCreate {
	if v != nil {
		_c.SetEnrolledCount(*v)
	}
	return _c
}

// SetRatingAverage sets the "rating_average" field.
func (_c *CourseCreate) SetRatingAverage(v float64) *CourseCreate {
	_c.mutation.SetRatingAverage(v)
	return _c
}

// SetNillableRatingAverage sets the "rating_average" field if the given value is not nil.
func (_c *CourseCreate) SetNillableRatingAverage(v *float64) *CourseCreate {
	if v != nil {
		_c.SetRatingAverage(*v)
	}
	return _c
}

// SetPublished sets the "published" field.
func (_c *CourseCreate) SetPublished(v bool) *CourseCreate {
	_c.mutation.SetPublished(v)
	return _c
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_c *CourseCreate) SetNillablePublished(v *bool) *CourseCreate {
	if v != nil {
		_c.SetPublished(*v)
	}
	return _c
}

// Mutation returns the CourseMutation object of the builder.
func (_c *CourseCreate) Mutation() *CourseMutation {
	return _c.mutation
}

// Save creates the Course in the database.
func (_c *CourseCreate) Save(ctx context.Context) (*Course, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseCreate) SaveX(ctx context.Context) *Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := course.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := course.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Price(); !ok {
		v := course.DefaultPrice
		_c.mutation.SetPrice(v)
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		v := course.DefaultDurationMinutes
		_c.mutation.SetDurationMinutes(v)
	}
	if _, ok := _c.mutation.EnrolledCount(); !ok {
		v := course.DefaultEnrolledCount
		_c.mutation.SetEnrolledCount(v)
	}
	if _, ok := _c.mutation.RatingAverage(); !ok {
		v := course.DefaultRatingAverage
		_c.mutation.SetRatingAverage(v)
	}
	if _, ok := _c.mutation.Published(); !ok {
		v := course.DefaultPublished
		_c.mutation.SetPublished(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseCreate) check() error {
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "Course.course_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Course.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Course.description"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Course.category"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Course.level"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Course.price"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "Course.duration_minutes"`)}
	}
	if _, ok := _c.mutation.EnrolledCount(); !ok {
		return &ValidationError{Name: "enrolled_count", err: errors.New(`ent: missing required field "Course.enrolled_count"`)}
	}
	if _, ok := _c.mutation.RatingAverage(); !ok {
		return &ValidationError{Name: "rating_average", err: errors.New(`ent: missing required field "Course.rating_average"`)}
	}
	if _, ok := _c.mutation.Published(); !ok {
		return &ValidationError{Name: "published", err: errors.New(`ent: missing required field "Course.published"`)}
	}
	return nil
}

func (_c *CourseCreate) sqlSave(ctx context.Context) (*Course, error) {
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

func (_c *CourseCreate) createSpec() (*Course, *sqlgraph.CreateSpec) {
	var (
		_node = &Course{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(course.Table, sqlgraph.NewFieldSpec(course.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(course.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(course.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(course.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(course.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(course.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(course.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.EnrolledCount(); ok {
		_spec.SetField(course.FieldEnrolledCount, field.TypeInt, value)
		_node.EnrolledCount = value
	}
	if value, ok := _c.mutation.RatingAverage(); ok {
		_spec.SetField(course.FieldRatingAverage, field.TypeFloat64, value)
		_node.RatingAverage = value
	}
	if value, ok := _c.mutation.Published(); ok {
		_spec.SetField(course.FieldPublished, field.TypeBool, value)
		_node.Published = value
	}
	return _node, _spec
}

// CourseCreateBulk is the builder for creating many Course entities in bulk.
type CourseCreateBulk struct {
	config
	err      error
	builders []*CourseCreate
}

// Save creates the Course entities in the database.
func (_c *CourseCreateBulk) Save(ctx context.Context) ([]*Course, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Course, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseMutation)
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
func (_c *CourseCreateBulk) SaveX(ctx context.Context) []*Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

package store

import (
	"context"
	"fmt"

	"github.com/apetrov/coursemate/ent"
	entcourse "github.com/apetrov/coursemate/ent/course"
	"github.com/apetrov/coursemate/internal/catalog"
)

// courseRepo implements CourseRepo backed by ent.
type courseRepo struct {
	client *ent.Client
}

// List returns published courses matching the filter, in insertion order.
// Stable order matters: Rank preserves it for tied scores.
func (r *courseRepo) List(ctx context.Context, f catalog.Filter) ([]catalog.Course, error) {
	q := r.client.Course.Query().
		Where(entcourse.Published(true))

	if f.Category != "" {
		q = q.Where(entcourse.CategoryEqualFold(f.Category))
	}
	if f.Level != "" {
		q = q.Where(entcourse.Level(string(f.Level)))
	}

	rows, err := q.Order(ent.Asc(entcourse.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	courses := make([]catalog.Course, len(rows))
	for i, row := range rows {
		courses[i] = catalog.Course{
			ID:              row.CourseID,
			Title:           row.Title,
			Description:     row.Description,
			Category:        row.Category,
			Level:           catalog.Level(row.Level),
			Price:           row.Price,
			Skills:          row.Skills,
			DurationMinutes: row.DurationMinutes,
			EnrolledCount:   row.EnrolledCount,
			RatingAverage:   row.RatingAverage,
		}
	}
	return courses, nil
}

// Seed inserts the given courses, skipping IDs already present.
// Returns the number inserted.
func (r *courseRepo) Seed(ctx context.Context, courses []catalog.Course) (int, error) {
	inserted := 0
	for _, c := range courses {
		exists, err := r.client.Course.Query().
			Where(entcourse.CourseID(c.ID)).
			Exist(ctx)
		if err != nil {
			return inserted, fmt.Errorf("check course %s: %w", c.ID, err)
		}
		if exists {
			continue
		}

		_, err = r.client.Course.Create().
			SetCourseID(c.ID).
			SetTitle(c.Title).
			SetDescription(c.Description).
			SetCategory(c.Category).
			SetLevel(string(c.Level)).
			SetPrice(c.Price).
			SetSkills(c.Skills).
			SetDurationMinutes(c.DurationMinutes).
			SetEnrolledCount(c.EnrolledCount).
			SetRatingAverage(c.RatingAverage).
			Save(ctx)
		if err != nil {
			return inserted, fmt.Errorf("insert course %s: %w", c.ID, err)
		}
		inserted++
	}
	return inserted, nil
}

func (r *courseRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Course.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return n, nil
}

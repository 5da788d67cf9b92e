package catalog

import "context"

// Level represents the difficulty level of a course.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// AllLevels returns the levels in ascending difficulty order.
func AllLevels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// ParseLevel normalizes a free-text level to one of the three enum values.
// Unrecognized input maps to Beginner.
func ParseLevel(s string) Level {
	switch s {
	case "Beginner", "beginner", "none", "new":
		return LevelBeginner
	case "Intermediate", "intermediate", "some":
		return LevelIntermediate
	case "Advanced", "advanced", "expert":
		return LevelAdvanced
	default:
		return LevelBeginner
	}
}

// Course is a learnable unit with scorable metadata.
type Course struct {
	ID              string
	Title           string
	Description     string
	Category        string
	Level           Level
	Price           float64
	Skills          []string
	DurationMinutes int
	EnrolledCount   int
	RatingAverage   float64
}

// Filter narrows a catalog listing. Zero values mean "no constraint".
type Filter struct {
	Category string
	Level    Level
}

// Provider is a read-only view of the published course catalog.
// Implementations own persistence; the engine never writes courses.
type Provider interface {
	// List returns published courses matching the filter, in catalog order.
	List(ctx context.Context, f Filter) ([]Course, error)
}

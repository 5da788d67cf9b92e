// Code generated by ent, DO NOT EDIT.

package course

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the course type in the database.
	Label = "course"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldSkills holds the string denoting the skills field in the database.
	FieldSkills = "skills"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldEnrolledCount holds the string denoting the enrolled_count field in the database.
	FieldEnrolledCount = "enrolled_count"
	// FieldRatingAverage holds the string denoting the rating_average field in the database.
	FieldRatingAverage = "rating_average"
	// FieldPublished holds the string denoting the published field in the database.
	FieldPublished = "published"
	// Table holds the table name of the course in the database.
	Table = "courses"
)

// Columns holds all SQL columns for course fields.
var Columns = []string{
	FieldID,
	FieldCourseID,
	FieldTitle,
	FieldDescription,
	FieldCategory,
	FieldLevel,
	FieldPrice,
	FieldSkills,
	FieldDurationMinutes,
	FieldEnrolledCount,
	FieldRatingAverage,
	FieldPublished,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// DefaultPrice holds the default value on creation for the "price" field.
	DefaultPrice float64
	// DefaultDurationMinutes holds the default value on creation for the "duration_minutes" field.
	DefaultDurationMinutes int
	// DefaultEnrolledCount holds the default value on creation for the "enrolled_count" field.
	DefaultEnrolledCount int
	// DefaultRatingAverage holds the default value on creation for the "rating_average" field.
	DefaultRatingAverage float64
	// DefaultPublished holds the default value on creation for the "published" field.
	DefaultPublished bool
)

// OrderOption defines the ordering options for the Course queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCourseID orders the results by the course_id field.
func ByCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}

// ByEnrolledCount orders the results by the enrolled_count field.
func ByEnrolledCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrolledCount, opts...).ToFunc()
}

// ByRatingAverage orders the results by the rating_average field.
func ByRatingAverage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRatingAverage, opts...).ToFunc()
}

// ByPublished orders the results by the published field.
func ByPublished(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublished, opts...).ToFunc()
}

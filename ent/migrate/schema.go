// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdviceSessionsColumns holds the columns for the "advice_sessions" table.
	AdviceSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "flow", Type: field.TypeString, Default: ""},
		{Name: "current_step", Type: field.TypeInt, Default: 1},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "terminal", Type: field.TypeBool, Default: false},
		{Name: "last_activity", Type: field.TypeTime},
	}
	// AdviceSessionsTable holds the schema information for the "advice_sessions" table.
	AdviceSessionsTable = &schema.Table{
		Name:       "advice_sessions",
		Columns:    AdviceSessionsColumns,
		PrimaryKey: []*schema.Column{AdviceSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "advicesession_terminal",
				Unique:  false,
				Columns: []*schema.Column{AdviceSessionsColumns[5]},
			},
			{
				Name:    "advicesession_last_activity",
				Unique:  false,
				Columns: []*schema.Column{AdviceSessionsColumns[6]},
			},
		},
	}
	// ChatEventsColumns holds the columns for the "chat_events" table.
	ChatEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "intent", Type: field.TypeString},
		{Name: "matched_pattern", Type: field.TypeString, Default: ""},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "reply_source", Type: field.TypeString, Default: ""},
		{Name: "handler_failed", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// ChatEventsTable holds the schema information for the "chat_events" table.
	ChatEventsTable = &schema.Table{
		Name:       "chat_events",
		Columns:    ChatEventsColumns,
		PrimaryKey: []*schema.Column{ChatEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ChatEventsColumns[1]},
			},
			{
				Name:    "chatevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChatEventsColumns[2]},
			},
			{
				Name:    "chatevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ChatEventsColumns[3]},
			},
			{
				Name:    "chatevent_intent",
				Unique:  false,
				Columns: []*schema.Column{ChatEventsColumns[4]},
			},
			{
				Name:    "chatevent_handler_failed",
				Unique:  false,
				Columns: []*schema.Column{ChatEventsColumns[8]},
			},
		},
	}
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "level", Type: field.TypeString},
		{Name: "price", Type: field.TypeFloat64, Default: 0},
		{Name: "skills", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 0},
		{Name: "enrolled_count", Type: field.TypeInt, Default: 0},
		{Name: "rating_average", Type: field.TypeFloat64, Default: 0},
		{Name: "published", Type: field.TypeBool, Default: true},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "course_category",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[4]},
			},
			{
				Name:    "course_level",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[5]},
			},
			{
				Name:    "course_published",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[11]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdviceSessionsTable,
		ChatEventsTable,
		CoursesTable,
		LlmRequestEventsTable,
	}
)

func init() {
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
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
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
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
	// LessonBatchesColumns holds the columns for the "lesson_batches" table.
	LessonBatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "batch_id", Type: field.TypeString, Unique: true},
		{Name: "level", Type: field.TypeInt, Default: 0},
		{Name: "unit_ids", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeString, Default: "in_progress"},
		{Name: "completed_count", Type: field.TypeInt, Default: 0},
		{Name: "total_count", Type: field.TypeInt, Default: 0},
		{Name: "mistakes", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// LessonBatchesTable holds the schema information for the "lesson_batches" table.
	LessonBatchesTable = &schema.Table{
		Name:       "lesson_batches",
		Columns:    LessonBatchesColumns,
		PrimaryKey: []*schema.Column{LessonBatchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonbatch_batch_id",
				Unique:  false,
				Columns: []*schema.Column{LessonBatchesColumns[1]},
			},
			{
				Name:    "lessonbatch_status",
				Unique:  false,
				Columns: []*schema.Column{LessonBatchesColumns[4]},
			},
			{
				Name:    "lessonbatch_created_at",
				Unique:  false,
				Columns: []*schema.Column{LessonBatchesColumns[8]},
			},
		},
	}
	// MemoryStatesColumns holds the columns for the "memory_states" table.
	MemoryStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "facet", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString, Default: "new"},
		{Name: "stability", Type: field.TypeFloat64},
		{Name: "interval_days", Type: field.TypeFloat64, Default: 0},
		{Name: "due_at", Type: field.TypeTime},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "reps", Type: field.TypeInt, Default: 0},
		{Name: "lapses", Type: field.TypeInt, Default: 0},
		{Name: "lapse_streak", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MemoryStatesTable holds the schema information for the "memory_states" table.
	MemoryStatesTable = &schema.Table{
		Name:       "memory_states",
		Columns:    MemoryStatesColumns,
		PrimaryKey: []*schema.Column{MemoryStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "memorystate_unit_id_facet",
				Unique:  true,
				Columns: []*schema.Column{MemoryStatesColumns[1], MemoryStatesColumns[2]},
			},
			{
				Name:    "memorystate_due_at",
				Unique:  false,
				Columns: []*schema.Column{MemoryStatesColumns[6]},
			},
			{
				Name:    "memorystate_stage",
				Unique:  false,
				Columns: []*schema.Column{MemoryStatesColumns[3]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "facet", Type: field.TypeString},
		{Name: "batch_id", Type: field.TypeString, Default: ""},
		{Name: "rating", Type: field.TypeString},
		{Name: "passed", Type: field.TypeBool},
		{Name: "stage_before", Type: field.TypeString},
		{Name: "stage_after", Type: field.TypeString},
		{Name: "interval_days", Type: field.TypeFloat64},
		{Name: "due_at", Type: field.TypeTime},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_unit_id_facet",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3], ReviewEventsColumns[4]},
			},
			{
				Name:    "reviewevent_batch_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[5]},
			},
			{
				Name:    "reviewevent_passed",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		LessonBatchesTable,
		MemoryStatesTable,
		ReviewEventsTable,
	}
)

func init() {
}

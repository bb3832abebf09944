// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DrillSetSnapshotsColumns holds the columns for the "drill_set_snapshots" table.
	DrillSetSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "niche_key", Type: field.TypeString},
		{Name: "struggle", Type: field.TypeString, Default: ""},
		{Name: "objective", Type: field.TypeString, Default: ""},
		{Name: "mode", Type: field.TypeString},
		{Name: "drills", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DrillSetSnapshotsTable holds the schema information for the "drill_set_snapshots" table.
	DrillSetSnapshotsTable = &schema.Table{
		Name:       "drill_set_snapshots",
		Columns:    DrillSetSnapshotsColumns,
		PrimaryKey: []*schema.Column{DrillSetSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "drillsetsnapshot_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DrillSetSnapshotsColumns[1], DrillSetSnapshotsColumns[7]},
			},
			{
				Name:    "drillsetsnapshot_niche_key",
				Unique:  false,
				Columns: []*schema.Column{DrillSetSnapshotsColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[7]},
			},
		},
	}
	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "niche_key", Type: field.TypeString},
		{Name: "doc", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesession_user_id_niche_key",
				Unique:  true,
				Columns: []*schema.Column{PracticeSessionsColumns[1], PracticeSessionsColumns[2]},
			},
		},
	}
	// ProgressEventsColumns holds the columns for the "progress_events" table.
	ProgressEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "client_completion_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "niche", Type: field.TypeString},
		{Name: "custom_niche", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// ProgressEventsTable holds the schema information for the "progress_events" table.
	ProgressEventsTable = &schema.Table{
		Name:       "progress_events",
		Columns:    ProgressEventsColumns,
		PrimaryKey: []*schema.Column{ProgressEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressevent_user_id_niche",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[2], ProgressEventsColumns[3]},
			},
			{
				Name:    "progressevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DrillSetSnapshotsTable,
		LlmRequestEventsTable,
		PracticeSessionsTable,
		ProgressEventsTable,
	}
)

func init() {
}

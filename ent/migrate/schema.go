// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentPerformancesColumns holds the columns for the "agent_performances" table.
	AgentPerformancesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "agent", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "recorded_at", Type: field.TypeTime},
	}
	// AgentPerformancesTable holds the schema information for the "agent_performances" table.
	AgentPerformancesTable = &schema.Table{
		Name:       "agent_performances",
		Columns:    AgentPerformancesColumns,
		PrimaryKey: []*schema.Column{AgentPerformancesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentperformance_agent_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{AgentPerformancesColumns[1], AgentPerformancesColumns[5]},
			},
			{
				Name:    "agentperformance_stage_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{AgentPerformancesColumns[2], AgentPerformancesColumns[5]},
			},
			{
				Name:    "agentperformance_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{AgentPerformancesColumns[5]},
			},
		},
	}
	// DagTemplatesColumns holds the columns for the "dag_templates" table.
	DagTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "stages", Type: field.TypeJSON},
		{Name: "selector", Type: field.TypeJSON, Nullable: true},
		{Name: "reasoning_max_tokens", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DagTemplatesTable holds the schema information for the "dag_templates" table.
	DagTemplatesTable = &schema.Table{
		Name:       "dag_templates",
		Columns:    DagTemplatesColumns,
		PrimaryKey: []*schema.Column{DagTemplatesColumns[0]},
	}
	// StageTransitionsColumns holds the columns for the "stage_transitions" table.
	StageTransitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "outcome", Type: field.TypeEnum, Enums: []string{"complete", "failed", "timed_out", "broker_unavailable", "canceled"}},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "recorded_at", Type: field.TypeTime},
	}
	// StageTransitionsTable holds the schema information for the "stage_transitions" table.
	StageTransitionsTable = &schema.Table{
		Name:       "stage_transitions",
		Columns:    StageTransitionsColumns,
		PrimaryKey: []*schema.Column{StageTransitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stagetransition_task_id",
				Unique:  false,
				Columns: []*schema.Column{StageTransitionsColumns[1]},
			},
			{
				Name:    "stagetransition_stage_outcome_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{StageTransitionsColumns[2], StageTransitionsColumns[4], StageTransitionsColumns[7]},
			},
			{
				Name:    "stagetransition_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{StageTransitionsColumns[7]},
			},
		},
	}
	// TaskHistoriesColumns holds the columns for the "task_histories" table.
	TaskHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "query", Type: field.TypeString, Size: 2147483647},
		{Name: "template_name", Type: field.TypeString},
		{Name: "plan", Type: field.TypeJSON},
		{Name: "completed_stages", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"complete", "failed", "aborted", "timed_out"}},
		{Name: "response_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "error_stage", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "archived_at", Type: field.TypeTime},
	}
	// TaskHistoriesTable holds the schema information for the "task_histories" table.
	TaskHistoriesTable = &schema.Table{
		Name:       "task_histories",
		Columns:    TaskHistoriesColumns,
		PrimaryKey: []*schema.Column{TaskHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taskhistory_task_id_status",
				Unique:  true,
				Columns: []*schema.Column{TaskHistoriesColumns[1], TaskHistoriesColumns[7]},
			},
			{
				Name:    "taskhistory_user_id",
				Unique:  false,
				Columns: []*schema.Column{TaskHistoriesColumns[2]},
			},
			{
				Name:    "taskhistory_status_completed_at",
				Unique:  false,
				Columns: []*schema.Column{TaskHistoriesColumns[7], TaskHistoriesColumns[14]},
			},
			{
				Name:    "taskhistory_template_name_completed_at",
				Unique:  false,
				Columns: []*schema.Column{TaskHistoriesColumns[4], TaskHistoriesColumns[14]},
			},
			{
				Name:    "taskhistory_archived_at",
				Unique:  false,
				Columns: []*schema.Column{TaskHistoriesColumns[16]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentPerformancesTable,
		DagTemplatesTable,
		StageTransitionsTable,
		TaskHistoriesTable,
	}
)

func init() {
}

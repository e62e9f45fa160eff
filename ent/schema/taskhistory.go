package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskHistory holds the schema definition for the TaskHistory entity: the
// durable record of a finished task, written once per (task, status).
type TaskHistory struct {
	ent.Schema
}

// Fields of the TaskHistory.
func (TaskHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Immutable(),
		field.String("user_id"),
		field.Text("query").
			Comment("Original user query (full-text searchable)"),
		field.String("template_name"),
		field.JSON("plan", []string{}),
		field.JSON("completed_stages", []string{}).
			Optional(),
		field.Enum("status").
			Values("complete", "failed", "aborted", "timed_out"),
		field.Text("response_summary").
			Optional().
			Nillable().
			Comment("Truncated response content for analytics and search"),
		field.Float("confidence").
			Optional(),
		field.String("error_kind").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("error_stage").
			Optional().
			Nillable(),
		field.Time("started_at"),
		field.Time("completed_at"),
		field.Int64("duration_ms"),
		field.Time("archived_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TaskHistory.
func (TaskHistory) Indexes() []ent.Index {
	return []ent.Index{
		// Idempotent archive upsert key.
		index.Fields("task_id", "status").
			Unique(),
		index.Fields("user_id"),
		index.Fields("status", "completed_at"),
		index.Fields("template_name", "completed_at"),
		index.Fields("archived_at"),
	}
}

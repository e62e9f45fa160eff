package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageTransition holds the schema definition for the StageTransition
// entity: one row per stage dispatch attempt, success or not.
type StageTransition struct {
	ent.Schema
}

// Fields of the StageTransition.
func (StageTransition) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Immutable(),
		field.String("stage"),
		field.Int("attempt"),
		field.Enum("outcome").
			Values("complete", "failed", "timed_out", "broker_unavailable", "canceled"),
		field.Time("started_at"),
		field.Int64("duration_ms"),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the StageTransition.
func (StageTransition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("stage", "outcome", "recorded_at"),
		index.Fields("recorded_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentPerformance holds the schema definition for the AgentPerformance
// entity: per-agent execution samples backing the agent analytics window.
type AgentPerformance struct {
	ent.Schema
}

// Fields of the AgentPerformance.
func (AgentPerformance) Fields() []ent.Field {
	return []ent.Field{
		field.String("agent").
			Comment("Agent instance name, e.g. 'retrieval-1'"),
		field.String("stage"),
		field.Int64("duration_ms"),
		field.Bool("success"),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AgentPerformance.
func (AgentPerformance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent", "recorded_at"),
		index.Fields("stage", "recorded_at"),
		index.Fields("recorded_at"),
	}
}

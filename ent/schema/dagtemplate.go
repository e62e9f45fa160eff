package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// DagTemplate holds the schema definition for the DagTemplate entity: the
// persisted copy of the template registry, hydrated on startup so custom
// templates survive config loss.
type DagTemplate struct {
	ent.Schema
}

// Fields of the DagTemplate.
func (DagTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Immutable(),
		field.String("description").
			Optional(),
		field.JSON("stages", []string{}),
		field.JSON("selector", map[string]interface{}{}).
			Optional().
			Comment("Selection predicate over intent signals"),
		field.Int("reasoning_max_tokens").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

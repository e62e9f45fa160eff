// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ragweave/maestro/ent/agentperformance"
	"github.com/ragweave/maestro/ent/dagtemplate"
	"github.com/ragweave/maestro/ent/schema"
	"github.com/ragweave/maestro/ent/stagetransition"
	"github.com/ragweave/maestro/ent/taskhistory"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentperformanceFields := schema.AgentPerformance{}.Fields()
	_ = agentperformanceFields
	// agentperformanceDescRecordedAt is the schema descriptor for recorded_at field.
	agentperformanceDescRecordedAt := agentperformanceFields[4].Descriptor()
	// agentperformance.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	agentperformance.DefaultRecordedAt = agentperformanceDescRecordedAt.Default.(func() time.Time)
	dagtemplateFields := schema.DagTemplate{}.Fields()
	_ = dagtemplateFields
	// dagtemplateDescReasoningMaxTokens is the schema descriptor for reasoning_max_tokens field.
	dagtemplateDescReasoningMaxTokens := dagtemplateFields[4].Descriptor()
	// dagtemplate.DefaultReasoningMaxTokens holds the default value on creation for the reasoning_max_tokens field.
	dagtemplate.DefaultReasoningMaxTokens = dagtemplateDescReasoningMaxTokens.Default.(int)
	// dagtemplateDescUpdatedAt is the schema descriptor for updated_at field.
	dagtemplateDescUpdatedAt := dagtemplateFields[5].Descriptor()
	// dagtemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dagtemplate.DefaultUpdatedAt = dagtemplateDescUpdatedAt.Default.(func() time.Time)
	// dagtemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dagtemplate.UpdateDefaultUpdatedAt = dagtemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	stagetransitionFields := schema.StageTransition{}.Fields()
	_ = stagetransitionFields
	// stagetransitionDescRecordedAt is the schema descriptor for recorded_at field.
	stagetransitionDescRecordedAt := stagetransitionFields[6].Descriptor()
	// stagetransition.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	stagetransition.DefaultRecordedAt = stagetransitionDescRecordedAt.Default.(func() time.Time)
	taskhistoryFields := schema.TaskHistory{}.Fields()
	_ = taskhistoryFields
	// taskhistoryDescArchivedAt is the schema descriptor for archived_at field.
	taskhistoryDescArchivedAt := taskhistoryFields[15].Descriptor()
	// taskhistory.DefaultArchivedAt holds the default value on creation for the archived_at field.
	taskhistory.DefaultArchivedAt = taskhistoryDescArchivedAt.Default.(func() time.Time)
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentPerformance is the predicate function for agentperformance builders.
type AgentPerformance func(*sql.Selector)

// DagTemplate is the predicate function for dagtemplate builders.
type DagTemplate func(*sql.Selector)

// StageTransition is the predicate function for stagetransition builders.
type StageTransition func(*sql.Selector)

// TaskHistory is the predicate function for taskhistory builders.
type TaskHistory func(*sql.Selector)

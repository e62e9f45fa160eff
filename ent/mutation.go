// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ragweave/maestro/ent/agentperformance"
	"github.com/ragweave/maestro/ent/dagtemplate"
	"github.com/ragweave/maestro/ent/predicate"
	"github.com/ragweave/maestro/ent/stagetransition"
	"github.com/ragweave/maestro/ent/taskhistory"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentPerformance = "AgentPerformance"
	TypeDagTemplate      = "DagTemplate"
	TypeStageTransition  = "StageTransition"
	TypeTaskHistory      = "TaskHistory"
)

// AgentPerformanceMutation represents an operation that mutates the AgentPerformance nodes in the graph.
type AgentPerformanceMutation struct {
	config
	op             Op
	typ            string
	id             *int
	agent          *string
	stage          *string
	duration_ms    *int64
	addduration_ms *int64
	success        *bool
	recorded_at    *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AgentPerformance, error)
	predicates     []predicate.AgentPerformance
}

var _ ent.Mutation = (*AgentPerformanceMutation)(nil)

// agentperformanceOption allows management of the mutation configuration using functional options.
type agentperformanceOption func(*AgentPerformanceMutation)

// newAgentPerformanceMutation creates new mutation for the AgentPerformance entity.
func newAgentPerformanceMutation(c config, op Op, opts ...agentperformanceOption) *AgentPerformanceMutation {
	m := &AgentPerformanceMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentPerformance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentPerformanceID sets the ID field of the mutation.
func withAgentPerformanceID(id int) agentperformanceOption {
	return func(m *AgentPerformanceMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentPerformance
		)
		m.oldValue = func(ctx context.Context) (*AgentPerformance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentPerformance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentPerformance sets the old AgentPerformance of the mutation.
func withAgentPerformance(node *AgentPerformance) agentperformanceOption {
	return func(m *AgentPerformanceMutation) {
		m.oldValue = func(context.Context) (*AgentPerformance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentPerformanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentPerformanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentPerformanceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentPerformanceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentPerformance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgent sets the "agent" field.
func (m *AgentPerformanceMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *AgentPerformanceMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ResetAgent resets all changes to the "agent" field.
func (m *AgentPerformanceMutation) ResetAgent() {
	m.agent = nil
}

// SetStage sets the "stage" field.
func (m *AgentPerformanceMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *AgentPerformanceMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *AgentPerformanceMutation) ResetStage() {
	m.stage = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *AgentPerformanceMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *AgentPerformanceMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *AgentPerformanceMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *AgentPerformanceMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *AgentPerformanceMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetSuccess sets the "success" field.
func (m *AgentPerformanceMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *AgentPerformanceMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *AgentPerformanceMutation) ResetSuccess() {
	m.success = nil
}

// SetRecordedAt sets the "recorded_at" field.
func (m *AgentPerformanceMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *AgentPerformanceMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the AgentPerformance entity.
// If the AgentPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPerformanceMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *AgentPerformanceMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// Where appends a list predicates to the AgentPerformanceMutation builder.
func (m *AgentPerformanceMutation) Where(ps ...predicate.AgentPerformance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentPerformanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentPerformanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentPerformance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentPerformanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentPerformanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentPerformance).
func (m *AgentPerformanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentPerformanceMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.agent != nil {
		fields = append(fields, agentperformance.FieldAgent)
	}
	if m.stage != nil {
		fields = append(fields, agentperformance.FieldStage)
	}
	if m.duration_ms != nil {
		fields = append(fields, agentperformance.FieldDurationMs)
	}
	if m.success != nil {
		fields = append(fields, agentperformance.FieldSuccess)
	}
	if m.recorded_at != nil {
		fields = append(fields, agentperformance.FieldRecordedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentPerformanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentperformance.FieldAgent:
		return m.Agent()
	case agentperformance.FieldStage:
		return m.Stage()
	case agentperformance.FieldDurationMs:
		return m.DurationMs()
	case agentperformance.FieldSuccess:
		return m.Success()
	case agentperformance.FieldRecordedAt:
		return m.RecordedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentPerformanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentperformance.FieldAgent:
		return m.OldAgent(ctx)
	case agentperformance.FieldStage:
		return m.OldStage(ctx)
	case agentperformance.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case agentperformance.FieldSuccess:
		return m.OldSuccess(ctx)
	case agentperformance.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentPerformance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentPerformanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentperformance.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case agentperformance.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case agentperformance.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case agentperformance.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case agentperformance.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentPerformance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentPerformanceMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, agentperformance.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentPerformanceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentperformance.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentPerformanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentperformance.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown AgentPerformance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentPerformanceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentPerformanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentPerformanceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AgentPerformance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentPerformanceMutation) ResetField(name string) error {
	switch name {
	case agentperformance.FieldAgent:
		m.ResetAgent()
		return nil
	case agentperformance.FieldStage:
		m.ResetStage()
		return nil
	case agentperformance.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case agentperformance.FieldSuccess:
		m.ResetSuccess()
		return nil
	case agentperformance.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentPerformance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentPerformanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentPerformanceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentPerformanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentPerformanceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentPerformanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentPerformanceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentPerformanceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentPerformance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentPerformanceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentPerformance edge %s", name)
}

// DagTemplateMutation represents an operation that mutates the DagTemplate nodes in the graph.
type DagTemplateMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	name                    *string
	description             *string
	stages                  *[]string
	appendstages            []string
	selector                *map[string]interface{}
	reasoning_max_tokens    *int
	addreasoning_max_tokens *int
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*DagTemplate, error)
	predicates              []predicate.DagTemplate
}

var _ ent.Mutation = (*DagTemplateMutation)(nil)

// dagtemplateOption allows management of the mutation configuration using functional options.
type dagtemplateOption func(*DagTemplateMutation)

// newDagTemplateMutation creates new mutation for the DagTemplate entity.
func newDagTemplateMutation(c config, op Op, opts ...dagtemplateOption) *DagTemplateMutation {
	m := &DagTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeDagTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDagTemplateID sets the ID field of the mutation.
func withDagTemplateID(id int) dagtemplateOption {
	return func(m *DagTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *DagTemplate
		)
		m.oldValue = func(ctx context.Context) (*DagTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DagTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDagTemplate sets the old DagTemplate of the mutation.
func withDagTemplate(node *DagTemplate) dagtemplateOption {
	return func(m *DagTemplateMutation) {
		m.oldValue = func(context.Context) (*DagTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DagTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DagTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DagTemplateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DagTemplateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DagTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *DagTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DagTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DagTemplate entity.
// If the DagTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DagTemplateMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *DagTemplateMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DagTemplateMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the DagTemplate entity.
// If the DagTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagTemplateMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *DagTemplateMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[dagtemplate.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *DagTemplateMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[dagtemplate.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *DagTemplateMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, dagtemplate.FieldDescription)
}

// SetStages sets the "stages" field.
func (m *DagTemplateMutation) SetStages(s []string) {
	m.stages = &s
	m.appendstages = nil
}

// Stages returns the value of the "stages" field in the mutation.
func (m *DagTemplateMutation) Stages() (r []string, exists bool) {
	v := m.stages
	if v == nil {
		return
	}
	return *v, true
}

// OldStages returns the old "stages" field's value of the DagTemplate entity.
// If the DagTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagTemplateMutation) OldStages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStages: %w", err)
	}
	return oldValue.Stages, nil
}

// AppendStages adds s to the "stages" field.
func (m *DagTemplateMutation) AppendStages(s []string) {
	m.appendstages = append(m.appendstages, s...)
}

// AppendedStages returns the list of values that were appended to the "stages" field in this mutation.
func (m *DagTemplateMutation) AppendedStages() ([]string, bool) {
	if len(m.appendstages) == 0 {
		return nil, false
	}
	return m.appendstages, true
}

// ResetStages resets all changes to the "stages" field.
func (m *DagTemplateMutation) ResetStages() {
	m.stages = nil
	m.appendstages = nil
}

// SetSelector sets the "selector" field.
func (m *DagTemplateMutation) SetSelector(value map[string]interface{}) {
	m.selector = &value
}

// Selector returns the value of the "selector" field in the mutation.
func (m *DagTemplateMutation) Selector() (r map[string]interface{}, exists bool) {
	v := m.selector
	if v == nil {
		return
	}
	return *v, true
}

// OldSelector returns the old "selector" field's value of the DagTemplate entity.
// If the DagTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagTemplateMutation) OldSelector(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelector: %w", err)
	}
	return oldValue.Selector, nil
}

// ClearSelector clears the value of the "selector" field.
func (m *DagTemplateMutation) ClearSelector() {
	m.selector = nil
	m.clearedFields[dagtemplate.FieldSelector] = struct{}{}
}

// SelectorCleared returns if the "selector" field was cleared in this mutation.
func (m *DagTemplateMutation) SelectorCleared() bool {
	_, ok := m.clearedFields[dagtemplate.FieldSelector]
	return ok
}

// ResetSelector resets all changes to the "selector" field.
func (m *DagTemplateMutation) ResetSelector() {
	m.selector = nil
	delete(m.clearedFields, dagtemplate.FieldSelector)
}

// SetReasoningMaxTokens sets the "reasoning_max_tokens" field.
func (m *DagTemplateMutation) SetReasoningMaxTokens(i int) {
	m.reasoning_max_tokens = &i
	m.addreasoning_max_tokens = nil
}

// ReasoningMaxTokens returns the value of the "reasoning_max_tokens" field in the mutation.
func (m *DagTemplateMutation) ReasoningMaxTokens() (r int, exists bool) {
	v := m.reasoning_max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoningMaxTokens returns the old "reasoning_max_tokens" field's value of the DagTemplate entity.
// If the DagTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagTemplateMutation) OldReasoningMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoningMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoningMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoningMaxTokens: %w", err)
	}
	return oldValue.ReasoningMaxTokens, nil
}

// AddReasoningMaxTokens adds i to the "reasoning_max_tokens" field.
func (m *DagTemplateMutation) AddReasoningMaxTokens(i int) {
	if m.addreasoning_max_tokens != nil {
		*m.addreasoning_max_tokens += i
	} else {
		m.addreasoning_max_tokens = &i
	}
}

// AddedReasoningMaxTokens returns the value that was added to the "reasoning_max_tokens" field in this mutation.
func (m *DagTemplateMutation) AddedReasoningMaxTokens() (r int, exists bool) {
	v := m.addreasoning_max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetReasoningMaxTokens resets all changes to the "reasoning_max_tokens" field.
func (m *DagTemplateMutation) ResetReasoningMaxTokens() {
	m.reasoning_max_tokens = nil
	m.addreasoning_max_tokens = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DagTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DagTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DagTemplate entity.
// If the DagTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DagTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DagTemplateMutation builder.
func (m *DagTemplateMutation) Where(ps ...predicate.DagTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DagTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DagTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DagTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DagTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DagTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DagTemplate).
func (m *DagTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DagTemplateMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, dagtemplate.FieldName)
	}
	if m.description != nil {
		fields = append(fields, dagtemplate.FieldDescription)
	}
	if m.stages != nil {
		fields = append(fields, dagtemplate.FieldStages)
	}
	if m.selector != nil {
		fields = append(fields, dagtemplate.FieldSelector)
	}
	if m.reasoning_max_tokens != nil {
		fields = append(fields, dagtemplate.FieldReasoningMaxTokens)
	}
	if m.updated_at != nil {
		fields = append(fields, dagtemplate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DagTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dagtemplate.FieldName:
		return m.Name()
	case dagtemplate.FieldDescription:
		return m.Description()
	case dagtemplate.FieldStages:
		return m.Stages()
	case dagtemplate.FieldSelector:
		return m.Selector()
	case dagtemplate.FieldReasoningMaxTokens:
		return m.ReasoningMaxTokens()
	case dagtemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DagTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dagtemplate.FieldName:
		return m.OldName(ctx)
	case dagtemplate.FieldDescription:
		return m.OldDescription(ctx)
	case dagtemplate.FieldStages:
		return m.OldStages(ctx)
	case dagtemplate.FieldSelector:
		return m.OldSelector(ctx)
	case dagtemplate.FieldReasoningMaxTokens:
		return m.OldReasoningMaxTokens(ctx)
	case dagtemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DagTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DagTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dagtemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case dagtemplate.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case dagtemplate.FieldStages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStages(v)
		return nil
	case dagtemplate.FieldSelector:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelector(v)
		return nil
	case dagtemplate.FieldReasoningMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoningMaxTokens(v)
		return nil
	case dagtemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DagTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DagTemplateMutation) AddedFields() []string {
	var fields []string
	if m.addreasoning_max_tokens != nil {
		fields = append(fields, dagtemplate.FieldReasoningMaxTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DagTemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dagtemplate.FieldReasoningMaxTokens:
		return m.AddedReasoningMaxTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DagTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dagtemplate.FieldReasoningMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReasoningMaxTokens(v)
		return nil
	}
	return fmt.Errorf("unknown DagTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DagTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dagtemplate.FieldDescription) {
		fields = append(fields, dagtemplate.FieldDescription)
	}
	if m.FieldCleared(dagtemplate.FieldSelector) {
		fields = append(fields, dagtemplate.FieldSelector)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DagTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DagTemplateMutation) ClearField(name string) error {
	switch name {
	case dagtemplate.FieldDescription:
		m.ClearDescription()
		return nil
	case dagtemplate.FieldSelector:
		m.ClearSelector()
		return nil
	}
	return fmt.Errorf("unknown DagTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DagTemplateMutation) ResetField(name string) error {
	switch name {
	case dagtemplate.FieldName:
		m.ResetName()
		return nil
	case dagtemplate.FieldDescription:
		m.ResetDescription()
		return nil
	case dagtemplate.FieldStages:
		m.ResetStages()
		return nil
	case dagtemplate.FieldSelector:
		m.ResetSelector()
		return nil
	case dagtemplate.FieldReasoningMaxTokens:
		m.ResetReasoningMaxTokens()
		return nil
	case dagtemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DagTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DagTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DagTemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DagTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DagTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DagTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DagTemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DagTemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DagTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DagTemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DagTemplate edge %s", name)
}

// StageTransitionMutation represents an operation that mutates the StageTransition nodes in the graph.
type StageTransitionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	task_id        *string
	stage          *string
	attempt        *int
	addattempt     *int
	outcome        *stagetransition.Outcome
	started_at     *time.Time
	duration_ms    *int64
	addduration_ms *int64
	recorded_at    *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*StageTransition, error)
	predicates     []predicate.StageTransition
}

var _ ent.Mutation = (*StageTransitionMutation)(nil)

// stagetransitionOption allows management of the mutation configuration using functional options.
type stagetransitionOption func(*StageTransitionMutation)

// newStageTransitionMutation creates new mutation for the StageTransition entity.
func newStageTransitionMutation(c config, op Op, opts ...stagetransitionOption) *StageTransitionMutation {
	m := &StageTransitionMutation{
		config:        c,
		op:            op,
		typ:           TypeStageTransition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageTransitionID sets the ID field of the mutation.
func withStageTransitionID(id int) stagetransitionOption {
	return func(m *StageTransitionMutation) {
		var (
			err   error
			once  sync.Once
			value *StageTransition
		)
		m.oldValue = func(ctx context.Context) (*StageTransition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageTransition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageTransition sets the old StageTransition of the mutation.
func withStageTransition(node *StageTransition) stagetransitionOption {
	return func(m *StageTransitionMutation) {
		m.oldValue = func(context.Context) (*StageTransition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageTransitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageTransitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageTransitionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageTransitionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageTransition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *StageTransitionMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *StageTransitionMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the StageTransition entity.
// If the StageTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageTransitionMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *StageTransitionMutation) ResetTaskID() {
	m.task_id = nil
}

// SetStage sets the "stage" field.
func (m *StageTransitionMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *StageTransitionMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the StageTransition entity.
// If the StageTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageTransitionMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *StageTransitionMutation) ResetStage() {
	m.stage = nil
}

// SetAttempt sets the "attempt" field.
func (m *StageTransitionMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *StageTransitionMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the StageTransition entity.
// If the StageTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageTransitionMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *StageTransitionMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *StageTransitionMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *StageTransitionMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetOutcome sets the "outcome" field.
func (m *StageTransitionMutation) SetOutcome(s stagetransition.Outcome) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *StageTransitionMutation) Outcome() (r stagetransition.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the StageTransition entity.
// If the StageTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageTransitionMutation) OldOutcome(ctx context.Context) (v stagetransition.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *StageTransitionMutation) ResetOutcome() {
	m.outcome = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StageTransitionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StageTransitionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StageTransition entity.
// If the StageTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageTransitionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StageTransitionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *StageTransitionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *StageTransitionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the StageTransition entity.
// If the StageTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageTransitionMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *StageTransitionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *StageTransitionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *StageTransitionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetRecordedAt sets the "recorded_at" field.
func (m *StageTransitionMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *StageTransitionMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the StageTransition entity.
// If the StageTransition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageTransitionMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *StageTransitionMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// Where appends a list predicates to the StageTransitionMutation builder.
func (m *StageTransitionMutation) Where(ps ...predicate.StageTransition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageTransitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageTransitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageTransition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageTransitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageTransitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageTransition).
func (m *StageTransitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageTransitionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task_id != nil {
		fields = append(fields, stagetransition.FieldTaskID)
	}
	if m.stage != nil {
		fields = append(fields, stagetransition.FieldStage)
	}
	if m.attempt != nil {
		fields = append(fields, stagetransition.FieldAttempt)
	}
	if m.outcome != nil {
		fields = append(fields, stagetransition.FieldOutcome)
	}
	if m.started_at != nil {
		fields = append(fields, stagetransition.FieldStartedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, stagetransition.FieldDurationMs)
	}
	if m.recorded_at != nil {
		fields = append(fields, stagetransition.FieldRecordedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageTransitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagetransition.FieldTaskID:
		return m.TaskID()
	case stagetransition.FieldStage:
		return m.Stage()
	case stagetransition.FieldAttempt:
		return m.Attempt()
	case stagetransition.FieldOutcome:
		return m.Outcome()
	case stagetransition.FieldStartedAt:
		return m.StartedAt()
	case stagetransition.FieldDurationMs:
		return m.DurationMs()
	case stagetransition.FieldRecordedAt:
		return m.RecordedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageTransitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagetransition.FieldTaskID:
		return m.OldTaskID(ctx)
	case stagetransition.FieldStage:
		return m.OldStage(ctx)
	case stagetransition.FieldAttempt:
		return m.OldAttempt(ctx)
	case stagetransition.FieldOutcome:
		return m.OldOutcome(ctx)
	case stagetransition.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case stagetransition.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case stagetransition.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StageTransition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageTransitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagetransition.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case stagetransition.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case stagetransition.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case stagetransition.FieldOutcome:
		v, ok := value.(stagetransition.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case stagetransition.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case stagetransition.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case stagetransition.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StageTransition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageTransitionMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, stagetransition.FieldAttempt)
	}
	if m.addduration_ms != nil {
		fields = append(fields, stagetransition.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageTransitionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stagetransition.FieldAttempt:
		return m.AddedAttempt()
	case stagetransition.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageTransitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stagetransition.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case stagetransition.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown StageTransition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageTransitionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageTransitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageTransitionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StageTransition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageTransitionMutation) ResetField(name string) error {
	switch name {
	case stagetransition.FieldTaskID:
		m.ResetTaskID()
		return nil
	case stagetransition.FieldStage:
		m.ResetStage()
		return nil
	case stagetransition.FieldAttempt:
		m.ResetAttempt()
		return nil
	case stagetransition.FieldOutcome:
		m.ResetOutcome()
		return nil
	case stagetransition.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case stagetransition.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case stagetransition.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	}
	return fmt.Errorf("unknown StageTransition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageTransitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageTransitionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageTransitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageTransitionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageTransitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageTransitionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageTransitionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StageTransition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageTransitionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StageTransition edge %s", name)
}

// TaskHistoryMutation represents an operation that mutates the TaskHistory nodes in the graph.
type TaskHistoryMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	task_id                *string
	user_id                *string
	query                  *string
	template_name          *string
	plan                   *[]string
	appendplan             []string
	completed_stages       *[]string
	appendcompleted_stages []string
	status                 *taskhistory.Status
	response_summary       *string
	confidence             *float64
	addconfidence          *float64
	error_kind             *string
	error_message          *string
	error_stage            *string
	started_at             *time.Time
	completed_at           *time.Time
	duration_ms            *int64
	addduration_ms         *int64
	archived_at            *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*TaskHistory, error)
	predicates             []predicate.TaskHistory
}

var _ ent.Mutation = (*TaskHistoryMutation)(nil)

// taskhistoryOption allows management of the mutation configuration using functional options.
type taskhistoryOption func(*TaskHistoryMutation)

// newTaskHistoryMutation creates new mutation for the TaskHistory entity.
func newTaskHistoryMutation(c config, op Op, opts ...taskhistoryOption) *TaskHistoryMutation {
	m := &TaskHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskHistoryID sets the ID field of the mutation.
func withTaskHistoryID(id int) taskhistoryOption {
	return func(m *TaskHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskHistory
		)
		m.oldValue = func(ctx context.Context) (*TaskHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskHistory sets the old TaskHistory of the mutation.
func withTaskHistory(node *TaskHistory) taskhistoryOption {
	return func(m *TaskHistoryMutation) {
		m.oldValue = func(context.Context) (*TaskHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskHistoryMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskHistoryMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskHistoryMutation) ResetTaskID() {
	m.task_id = nil
}

// SetUserID sets the "user_id" field.
func (m *TaskHistoryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TaskHistoryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TaskHistoryMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuery sets the "query" field.
func (m *TaskHistoryMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *TaskHistoryMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ResetQuery resets all changes to the "query" field.
func (m *TaskHistoryMutation) ResetQuery() {
	m.query = nil
}

// SetTemplateName sets the "template_name" field.
func (m *TaskHistoryMutation) SetTemplateName(s string) {
	m.template_name = &s
}

// TemplateName returns the value of the "template_name" field in the mutation.
func (m *TaskHistoryMutation) TemplateName() (r string, exists bool) {
	v := m.template_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateName returns the old "template_name" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldTemplateName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateName: %w", err)
	}
	return oldValue.TemplateName, nil
}

// ResetTemplateName resets all changes to the "template_name" field.
func (m *TaskHistoryMutation) ResetTemplateName() {
	m.template_name = nil
}

// SetPlan sets the "plan" field.
func (m *TaskHistoryMutation) SetPlan(s []string) {
	m.plan = &s
	m.appendplan = nil
}

// Plan returns the value of the "plan" field in the mutation.
func (m *TaskHistoryMutation) Plan() (r []string, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldPlan(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// AppendPlan adds s to the "plan" field.
func (m *TaskHistoryMutation) AppendPlan(s []string) {
	m.appendplan = append(m.appendplan, s...)
}

// AppendedPlan returns the list of values that were appended to the "plan" field in this mutation.
func (m *TaskHistoryMutation) AppendedPlan() ([]string, bool) {
	if len(m.appendplan) == 0 {
		return nil, false
	}
	return m.appendplan, true
}

// ResetPlan resets all changes to the "plan" field.
func (m *TaskHistoryMutation) ResetPlan() {
	m.plan = nil
	m.appendplan = nil
}

// SetCompletedStages sets the "completed_stages" field.
func (m *TaskHistoryMutation) SetCompletedStages(s []string) {
	m.completed_stages = &s
	m.appendcompleted_stages = nil
}

// CompletedStages returns the value of the "completed_stages" field in the mutation.
func (m *TaskHistoryMutation) CompletedStages() (r []string, exists bool) {
	v := m.completed_stages
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedStages returns the old "completed_stages" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldCompletedStages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedStages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedStages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedStages: %w", err)
	}
	return oldValue.CompletedStages, nil
}

// AppendCompletedStages adds s to the "completed_stages" field.
func (m *TaskHistoryMutation) AppendCompletedStages(s []string) {
	m.appendcompleted_stages = append(m.appendcompleted_stages, s...)
}

// AppendedCompletedStages returns the list of values that were appended to the "completed_stages" field in this mutation.
func (m *TaskHistoryMutation) AppendedCompletedStages() ([]string, bool) {
	if len(m.appendcompleted_stages) == 0 {
		return nil, false
	}
	return m.appendcompleted_stages, true
}

// ClearCompletedStages clears the value of the "completed_stages" field.
func (m *TaskHistoryMutation) ClearCompletedStages() {
	m.completed_stages = nil
	m.appendcompleted_stages = nil
	m.clearedFields[taskhistory.FieldCompletedStages] = struct{}{}
}

// CompletedStagesCleared returns if the "completed_stages" field was cleared in this mutation.
func (m *TaskHistoryMutation) CompletedStagesCleared() bool {
	_, ok := m.clearedFields[taskhistory.FieldCompletedStages]
	return ok
}

// ResetCompletedStages resets all changes to the "completed_stages" field.
func (m *TaskHistoryMutation) ResetCompletedStages() {
	m.completed_stages = nil
	m.appendcompleted_stages = nil
	delete(m.clearedFields, taskhistory.FieldCompletedStages)
}

// SetStatus sets the "status" field.
func (m *TaskHistoryMutation) SetStatus(t taskhistory.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskHistoryMutation) Status() (r taskhistory.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldStatus(ctx context.Context) (v taskhistory.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskHistoryMutation) ResetStatus() {
	m.status = nil
}

// SetResponseSummary sets the "response_summary" field.
func (m *TaskHistoryMutation) SetResponseSummary(s string) {
	m.response_summary = &s
}

// ResponseSummary returns the value of the "response_summary" field in the mutation.
func (m *TaskHistoryMutation) ResponseSummary() (r string, exists bool) {
	v := m.response_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseSummary returns the old "response_summary" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldResponseSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseSummary: %w", err)
	}
	return oldValue.ResponseSummary, nil
}

// ClearResponseSummary clears the value of the "response_summary" field.
func (m *TaskHistoryMutation) ClearResponseSummary() {
	m.response_summary = nil
	m.clearedFields[taskhistory.FieldResponseSummary] = struct{}{}
}

// ResponseSummaryCleared returns if the "response_summary" field was cleared in this mutation.
func (m *TaskHistoryMutation) ResponseSummaryCleared() bool {
	_, ok := m.clearedFields[taskhistory.FieldResponseSummary]
	return ok
}

// ResetResponseSummary resets all changes to the "response_summary" field.
func (m *TaskHistoryMutation) ResetResponseSummary() {
	m.response_summary = nil
	delete(m.clearedFields, taskhistory.FieldResponseSummary)
}

// SetConfidence sets the "confidence" field.
func (m *TaskHistoryMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *TaskHistoryMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *TaskHistoryMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *TaskHistoryMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *TaskHistoryMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[taskhistory.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *TaskHistoryMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[taskhistory.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *TaskHistoryMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, taskhistory.FieldConfidence)
}

// SetErrorKind sets the "error_kind" field.
func (m *TaskHistoryMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *TaskHistoryMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *TaskHistoryMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[taskhistory.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *TaskHistoryMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[taskhistory.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *TaskHistoryMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, taskhistory.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskHistoryMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskHistoryMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskHistoryMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[taskhistory.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskHistoryMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[taskhistory.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskHistoryMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, taskhistory.FieldErrorMessage)
}

// SetErrorStage sets the "error_stage" field.
func (m *TaskHistoryMutation) SetErrorStage(s string) {
	m.error_stage = &s
}

// ErrorStage returns the value of the "error_stage" field in the mutation.
func (m *TaskHistoryMutation) ErrorStage() (r string, exists bool) {
	v := m.error_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorStage returns the old "error_stage" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldErrorStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorStage: %w", err)
	}
	return oldValue.ErrorStage, nil
}

// ClearErrorStage clears the value of the "error_stage" field.
func (m *TaskHistoryMutation) ClearErrorStage() {
	m.error_stage = nil
	m.clearedFields[taskhistory.FieldErrorStage] = struct{}{}
}

// ErrorStageCleared returns if the "error_stage" field was cleared in this mutation.
func (m *TaskHistoryMutation) ErrorStageCleared() bool {
	_, ok := m.clearedFields[taskhistory.FieldErrorStage]
	return ok
}

// ResetErrorStage resets all changes to the "error_stage" field.
func (m *TaskHistoryMutation) ResetErrorStage() {
	m.error_stage = nil
	delete(m.clearedFields, taskhistory.FieldErrorStage)
}

// SetStartedAt sets the "started_at" field.
func (m *TaskHistoryMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskHistoryMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskHistoryMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskHistoryMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskHistoryMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskHistoryMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *TaskHistoryMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *TaskHistoryMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *TaskHistoryMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *TaskHistoryMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *TaskHistoryMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *TaskHistoryMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *TaskHistoryMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the TaskHistory entity.
// If the TaskHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskHistoryMutation) OldArchivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *TaskHistoryMutation) ResetArchivedAt() {
	m.archived_at = nil
}

// Where appends a list predicates to the TaskHistoryMutation builder.
func (m *TaskHistoryMutation) Where(ps ...predicate.TaskHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskHistory).
func (m *TaskHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskHistoryMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.task_id != nil {
		fields = append(fields, taskhistory.FieldTaskID)
	}
	if m.user_id != nil {
		fields = append(fields, taskhistory.FieldUserID)
	}
	if m.query != nil {
		fields = append(fields, taskhistory.FieldQuery)
	}
	if m.template_name != nil {
		fields = append(fields, taskhistory.FieldTemplateName)
	}
	if m.plan != nil {
		fields = append(fields, taskhistory.FieldPlan)
	}
	if m.completed_stages != nil {
		fields = append(fields, taskhistory.FieldCompletedStages)
	}
	if m.status != nil {
		fields = append(fields, taskhistory.FieldStatus)
	}
	if m.response_summary != nil {
		fields = append(fields, taskhistory.FieldResponseSummary)
	}
	if m.confidence != nil {
		fields = append(fields, taskhistory.FieldConfidence)
	}
	if m.error_kind != nil {
		fields = append(fields, taskhistory.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, taskhistory.FieldErrorMessage)
	}
	if m.error_stage != nil {
		fields = append(fields, taskhistory.FieldErrorStage)
	}
	if m.started_at != nil {
		fields = append(fields, taskhistory.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, taskhistory.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, taskhistory.FieldDurationMs)
	}
	if m.archived_at != nil {
		fields = append(fields, taskhistory.FieldArchivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskhistory.FieldTaskID:
		return m.TaskID()
	case taskhistory.FieldUserID:
		return m.UserID()
	case taskhistory.FieldQuery:
		return m.Query()
	case taskhistory.FieldTemplateName:
		return m.TemplateName()
	case taskhistory.FieldPlan:
		return m.Plan()
	case taskhistory.FieldCompletedStages:
		return m.CompletedStages()
	case taskhistory.FieldStatus:
		return m.Status()
	case taskhistory.FieldResponseSummary:
		return m.ResponseSummary()
	case taskhistory.FieldConfidence:
		return m.Confidence()
	case taskhistory.FieldErrorKind:
		return m.ErrorKind()
	case taskhistory.FieldErrorMessage:
		return m.ErrorMessage()
	case taskhistory.FieldErrorStage:
		return m.ErrorStage()
	case taskhistory.FieldStartedAt:
		return m.StartedAt()
	case taskhistory.FieldCompletedAt:
		return m.CompletedAt()
	case taskhistory.FieldDurationMs:
		return m.DurationMs()
	case taskhistory.FieldArchivedAt:
		return m.ArchivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskhistory.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskhistory.FieldUserID:
		return m.OldUserID(ctx)
	case taskhistory.FieldQuery:
		return m.OldQuery(ctx)
	case taskhistory.FieldTemplateName:
		return m.OldTemplateName(ctx)
	case taskhistory.FieldPlan:
		return m.OldPlan(ctx)
	case taskhistory.FieldCompletedStages:
		return m.OldCompletedStages(ctx)
	case taskhistory.FieldStatus:
		return m.OldStatus(ctx)
	case taskhistory.FieldResponseSummary:
		return m.OldResponseSummary(ctx)
	case taskhistory.FieldConfidence:
		return m.OldConfidence(ctx)
	case taskhistory.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case taskhistory.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case taskhistory.FieldErrorStage:
		return m.OldErrorStage(ctx)
	case taskhistory.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case taskhistory.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case taskhistory.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case taskhistory.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskhistory.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskhistory.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case taskhistory.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case taskhistory.FieldTemplateName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateName(v)
		return nil
	case taskhistory.FieldPlan:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case taskhistory.FieldCompletedStages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedStages(v)
		return nil
	case taskhistory.FieldStatus:
		v, ok := value.(taskhistory.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case taskhistory.FieldResponseSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseSummary(v)
		return nil
	case taskhistory.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case taskhistory.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case taskhistory.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case taskhistory.FieldErrorStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorStage(v)
		return nil
	case taskhistory.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case taskhistory.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case taskhistory.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case taskhistory.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, taskhistory.FieldConfidence)
	}
	if m.addduration_ms != nil {
		fields = append(fields, taskhistory.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskhistory.FieldConfidence:
		return m.AddedConfidence()
	case taskhistory.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskhistory.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case taskhistory.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown TaskHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskhistory.FieldCompletedStages) {
		fields = append(fields, taskhistory.FieldCompletedStages)
	}
	if m.FieldCleared(taskhistory.FieldResponseSummary) {
		fields = append(fields, taskhistory.FieldResponseSummary)
	}
	if m.FieldCleared(taskhistory.FieldConfidence) {
		fields = append(fields, taskhistory.FieldConfidence)
	}
	if m.FieldCleared(taskhistory.FieldErrorKind) {
		fields = append(fields, taskhistory.FieldErrorKind)
	}
	if m.FieldCleared(taskhistory.FieldErrorMessage) {
		fields = append(fields, taskhistory.FieldErrorMessage)
	}
	if m.FieldCleared(taskhistory.FieldErrorStage) {
		fields = append(fields, taskhistory.FieldErrorStage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskHistoryMutation) ClearField(name string) error {
	switch name {
	case taskhistory.FieldCompletedStages:
		m.ClearCompletedStages()
		return nil
	case taskhistory.FieldResponseSummary:
		m.ClearResponseSummary()
		return nil
	case taskhistory.FieldConfidence:
		m.ClearConfidence()
		return nil
	case taskhistory.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case taskhistory.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case taskhistory.FieldErrorStage:
		m.ClearErrorStage()
		return nil
	}
	return fmt.Errorf("unknown TaskHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskHistoryMutation) ResetField(name string) error {
	switch name {
	case taskhistory.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskhistory.FieldUserID:
		m.ResetUserID()
		return nil
	case taskhistory.FieldQuery:
		m.ResetQuery()
		return nil
	case taskhistory.FieldTemplateName:
		m.ResetTemplateName()
		return nil
	case taskhistory.FieldPlan:
		m.ResetPlan()
		return nil
	case taskhistory.FieldCompletedStages:
		m.ResetCompletedStages()
		return nil
	case taskhistory.FieldStatus:
		m.ResetStatus()
		return nil
	case taskhistory.FieldResponseSummary:
		m.ResetResponseSummary()
		return nil
	case taskhistory.FieldConfidence:
		m.ResetConfidence()
		return nil
	case taskhistory.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case taskhistory.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case taskhistory.FieldErrorStage:
		m.ResetErrorStage()
		return nil
	case taskhistory.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case taskhistory.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case taskhistory.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case taskhistory.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskHistory edge %s", name)
}

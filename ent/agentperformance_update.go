// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ragweave/maestro/ent/agentperformance"
	"github.com/ragweave/maestro/ent/predicate"
)

// AgentPerformanceUpdate is the builder for updating AgentPerformance entities.
type AgentPerformanceUpdate struct {
	config
	hooks    []Hook
	mutation *AgentPerformanceMutation
}

// Where appends a list predicates to the AgentPerformanceUpdate builder.
func (_u *AgentPerformanceUpdate) Where(ps ...predicate.AgentPerformance) *AgentPerformanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgent sets the "agent" field.
func (_u *AgentPerformanceUpdate) SetAgent(v string) *AgentPerformanceUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableAgent(v *string) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *AgentPerformanceUpdate) SetStage(v string) *AgentPerformanceUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableStage(v *string) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentPerformanceUpdate) SetDurationMs(v int64) *AgentPerformanceUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableDurationMs(v *int64) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentPerformanceUpdate) AddDurationMs(v int64) *AgentPerformanceUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AgentPerformanceUpdate) SetSuccess(v bool) *AgentPerformanceUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AgentPerformanceUpdate) SetNillableSuccess(v *bool) *AgentPerformanceUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// Mutation returns the AgentPerformanceMutation object of the builder.
func (_u *AgentPerformanceUpdate) Mutation() *AgentPerformanceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentPerformanceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentPerformanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentPerformanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentPerformanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentPerformanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentperformance.Table, agentperformance.Columns, sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(agentperformance.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(agentperformance.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentperformance.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentperformance.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(agentperformance.FieldSuccess, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentperformance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentPerformanceUpdateOne is the builder for updating a single AgentPerformance entity.
type AgentPerformanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentPerformanceMutation
}

// SetAgent sets the "agent" field.
func (_u *AgentPerformanceUpdateOne) SetAgent(v string) *AgentPerformanceUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableAgent(v *string) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *AgentPerformanceUpdateOne) SetStage(v string) *AgentPerformanceUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableStage(v *string) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentPerformanceUpdateOne) SetDurationMs(v int64) *AgentPerformanceUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableDurationMs(v *int64) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentPerformanceUpdateOne) AddDurationMs(v int64) *AgentPerformanceUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AgentPerformanceUpdateOne) SetSuccess(v bool) *AgentPerformanceUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AgentPerformanceUpdateOne) SetNillableSuccess(v *bool) *AgentPerformanceUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// Mutation returns the AgentPerformanceMutation object of the builder.
func (_u *AgentPerformanceUpdateOne) Mutation() *AgentPerformanceMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentPerformanceUpdate builder.
func (_u *AgentPerformanceUpdateOne) Where(ps ...predicate.AgentPerformance) *AgentPerformanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentPerformanceUpdateOne) Select(field string, fields ...string) *AgentPerformanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentPerformance entity.
func (_u *AgentPerformanceUpdateOne) Save(ctx context.Context) (*AgentPerformance, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentPerformanceUpdateOne) SaveX(ctx context.Context) *AgentPerformance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentPerformanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentPerformanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentPerformanceUpdateOne) sqlSave(ctx context.Context) (_node *AgentPerformance, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentperformance.Table, agentperformance.Columns, sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentPerformance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentperformance.FieldID)
		for _, f := range fields {
			if !agentperformance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentperformance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(agentperformance.FieldAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(agentperformance.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentperformance.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentperformance.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(agentperformance.FieldSuccess, field.TypeBool, value)
	}
	_node = &AgentPerformance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentperformance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ragweave/maestro/ent/predicate"
	"github.com/ragweave/maestro/ent/stagetransition"
)

// StageTransitionUpdate is the builder for updating StageTransition entities.
type StageTransitionUpdate struct {
	config
	hooks    []Hook
	mutation *StageTransitionMutation
}

// Where appends a list predicates to the StageTransitionUpdate builder.
func (_u *StageTransitionUpdate) Where(ps ...predicate.StageTransition) *StageTransitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStage sets the "stage" field.
func (_u *StageTransitionUpdate) SetStage(v string) *StageTransitionUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *StageTransitionUpdate) SetNillableStage(v *string) *StageTransitionUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *StageTransitionUpdate) SetAttempt(v int) *StageTransitionUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *StageTransitionUpdate) SetNillableAttempt(v *int) *StageTransitionUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *StageTransitionUpdate) AddAttempt(v int) *StageTransitionUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *StageTransitionUpdate) SetOutcome(v stagetransition.Outcome) *StageTransitionUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *StageTransitionUpdate) SetNillableOutcome(v *stagetransition.Outcome) *StageTransitionUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StageTransitionUpdate) SetStartedAt(v time.Time) *StageTransitionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StageTransitionUpdate) SetNillableStartedAt(v *time.Time) *StageTransitionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StageTransitionUpdate) SetDurationMs(v int64) *StageTransitionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StageTransitionUpdate) SetNillableDurationMs(v *int64) *StageTransitionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StageTransitionUpdate) AddDurationMs(v int64) *StageTransitionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the StageTransitionMutation object of the builder.
func (_u *StageTransitionUpdate) Mutation() *StageTransitionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageTransitionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageTransitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageTransitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageTransitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageTransitionUpdate) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := stagetransition.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "StageTransition.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *StageTransitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagetransition.Table, stagetransition.Columns, sqlgraph.NewFieldSpec(stagetransition.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(stagetransition.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(stagetransition.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(stagetransition.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(stagetransition.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stagetransition.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stagetransition.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stagetransition.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagetransition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageTransitionUpdateOne is the builder for updating a single StageTransition entity.
type StageTransitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageTransitionMutation
}

// SetStage sets the "stage" field.
func (_u *StageTransitionUpdateOne) SetStage(v string) *StageTransitionUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *StageTransitionUpdateOne) SetNillableStage(v *string) *StageTransitionUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *StageTransitionUpdateOne) SetAttempt(v int) *StageTransitionUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *StageTransitionUpdateOne) SetNillableAttempt(v *int) *StageTransitionUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *StageTransitionUpdateOne) AddAttempt(v int) *StageTransitionUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *StageTransitionUpdateOne) SetOutcome(v stagetransition.Outcome) *StageTransitionUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *StageTransitionUpdateOne) SetNillableOutcome(v *stagetransition.Outcome) *StageTransitionUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StageTransitionUpdateOne) SetStartedAt(v time.Time) *StageTransitionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StageTransitionUpdateOne) SetNillableStartedAt(v *time.Time) *StageTransitionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StageTransitionUpdateOne) SetDurationMs(v int64) *StageTransitionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StageTransitionUpdateOne) SetNillableDurationMs(v *int64) *StageTransitionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StageTransitionUpdateOne) AddDurationMs(v int64) *StageTransitionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the StageTransitionMutation object of the builder.
func (_u *StageTransitionUpdateOne) Mutation() *StageTransitionMutation {
	return _u.mutation
}

// Where appends a list predicates to the StageTransitionUpdate builder.
func (_u *StageTransitionUpdateOne) Where(ps ...predicate.StageTransition) *StageTransitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageTransitionUpdateOne) Select(field string, fields ...string) *StageTransitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageTransition entity.
func (_u *StageTransitionUpdateOne) Save(ctx context.Context) (*StageTransition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageTransitionUpdateOne) SaveX(ctx context.Context) *StageTransition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageTransitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageTransitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageTransitionUpdateOne) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := stagetransition.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "StageTransition.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *StageTransitionUpdateOne) sqlSave(ctx context.Context) (_node *StageTransition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagetransition.Table, stagetransition.Columns, sqlgraph.NewFieldSpec(stagetransition.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageTransition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagetransition.FieldID)
		for _, f := range fields {
			if !stagetransition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagetransition.FieldID {
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
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(stagetransition.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(stagetransition.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(stagetransition.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(stagetransition.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stagetransition.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(stagetransition.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(stagetransition.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &StageTransition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagetransition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

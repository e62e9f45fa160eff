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
	"github.com/ragweave/maestro/ent/stagetransition"
)

// StageTransitionCreate is the builder for creating a StageTransition entity.
type StageTransitionCreate struct {
	config
	mutation *StageTransitionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *StageTransitionCreate) SetTaskID(v string) *StageTransitionCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *StageTransitionCreate) SetStage(v string) *StageTransitionCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *StageTransitionCreate) SetAttempt(v int) *StageTransitionCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *StageTransitionCreate) SetOutcome(v stagetransition.Outcome) *StageTransitionCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StageTransitionCreate) SetStartedAt(v time.Time) *StageTransitionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *StageTransitionCreate) SetDurationMs(v int64) *StageTransitionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *StageTransitionCreate) SetRecordedAt(v time.Time) *StageTransitionCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *StageTransitionCreate) SetNillableRecordedAt(v *time.Time) *StageTransitionCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// Mutation returns the StageTransitionMutation object of the builder.
func (_c *StageTransitionCreate) Mutation() *StageTransitionMutation {
	return _c.mutation
}

// Save creates the StageTransition in the database.
func (_c *StageTransitionCreate) Save(ctx context.Context) (*StageTransition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageTransitionCreate) SaveX(ctx context.Context) *StageTransition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageTransitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageTransitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageTransitionCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := stagetransition.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageTransitionCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "StageTransition.task_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "StageTransition.stage"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "StageTransition.attempt"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "StageTransition.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := stagetransition.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "StageTransition.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "StageTransition.started_at"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "StageTransition.duration_ms"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "StageTransition.recorded_at"`)}
	}
	return nil
}

func (_c *StageTransitionCreate) sqlSave(ctx context.Context) (*StageTransition, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageTransitionCreate) createSpec() (*StageTransition, *sqlgraph.CreateSpec) {
	var (
		_node = &StageTransition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagetransition.Table, sqlgraph.NewFieldSpec(stagetransition.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(stagetransition.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(stagetransition.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(stagetransition.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(stagetransition.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(stagetransition.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(stagetransition.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(stagetransition.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StageTransition.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageTransitionUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *StageTransitionCreate) OnConflict(opts ...sql.ConflictOption) *StageTransitionUpsertOne {
	_c.conflict = opts
	return &StageTransitionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageTransition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageTransitionCreate) OnConflictColumns(columns ...string) *StageTransitionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageTransitionUpsertOne{
		create: _c,
	}
}

type (
	// StageTransitionUpsertOne is the builder for "upsert"-ing
	//  one StageTransition node.
	StageTransitionUpsertOne struct {
		create *StageTransitionCreate
	}

	// StageTransitionUpsert is the "OnConflict" setter.
	StageTransitionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStage sets the "stage" field.
func (u *StageTransitionUpsert) SetStage(v string) *StageTransitionUpsert {
	u.Set(stagetransition.FieldStage, v)
	return u
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *StageTransitionUpsert) UpdateStage() *StageTransitionUpsert {
	u.SetExcluded(stagetransition.FieldStage)
	return u
}

// SetAttempt sets the "attempt" field.
func (u *StageTransitionUpsert) SetAttempt(v int) *StageTransitionUpsert {
	u.Set(stagetransition.FieldAttempt, v)
	return u
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *StageTransitionUpsert) UpdateAttempt() *StageTransitionUpsert {
	u.SetExcluded(stagetransition.FieldAttempt)
	return u
}

// AddAttempt adds v to the "attempt" field.
func (u *StageTransitionUpsert) AddAttempt(v int) *StageTransitionUpsert {
	u.Add(stagetransition.FieldAttempt, v)
	return u
}

// SetOutcome sets the "outcome" field.
func (u *StageTransitionUpsert) SetOutcome(v stagetransition.Outcome) *StageTransitionUpsert {
	u.Set(stagetransition.FieldOutcome, v)
	return u
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *StageTransitionUpsert) UpdateOutcome() *StageTransitionUpsert {
	u.SetExcluded(stagetransition.FieldOutcome)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *StageTransitionUpsert) SetStartedAt(v time.Time) *StageTransitionUpsert {
	u.Set(stagetransition.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StageTransitionUpsert) UpdateStartedAt() *StageTransitionUpsert {
	u.SetExcluded(stagetransition.FieldStartedAt)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *StageTransitionUpsert) SetDurationMs(v int64) *StageTransitionUpsert {
	u.Set(stagetransition.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StageTransitionUpsert) UpdateDurationMs() *StageTransitionUpsert {
	u.SetExcluded(stagetransition.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StageTransitionUpsert) AddDurationMs(v int64) *StageTransitionUpsert {
	u.Add(stagetransition.FieldDurationMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.StageTransition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StageTransitionUpsertOne) UpdateNewValues() *StageTransitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(stagetransition.FieldTaskID)
		}
		if _, exists := u.create.mutation.RecordedAt(); exists {
			s.SetIgnore(stagetransition.FieldRecordedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageTransition.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StageTransitionUpsertOne) Ignore() *StageTransitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageTransitionUpsertOne) DoNothing() *StageTransitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageTransitionCreate.OnConflict
// documentation for more info.
func (u *StageTransitionUpsertOne) Update(set func(*StageTransitionUpsert)) *StageTransitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageTransitionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStage sets the "stage" field.
func (u *StageTransitionUpsertOne) SetStage(v string) *StageTransitionUpsertOne {
	return u.Update(func(s *StageTransitionUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *StageTransitionUpsertOne) UpdateStage() *StageTransitionUpsertOne {
	return u.Update(func(s *StageTransitionUpsert) {
		s.UpdateStage()
	})
}

// SetAttempt sets the "attempt" field.
func (u *StageTransitionUpsertOne) SetAttempt(v int) *StageTransitionUpsertOne {
	return u.Update(func(s *StageTransitionUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *StageTransitionUpsertOne) AddAttempt(v int) *StageTransitionUpsertOne {
	return u.Update(func(s *StageTransitionUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *StageTransitionUpsertOne) UpdateAttempt() *StageTransitionUpsertOne {
	return u.Update(func(s *StageTransitionUpsert) {
		s.UpdateAttempt()
	})
}

// SetOutcome sets the "outcome" field.
func (u *StageTransitionUpsertOne) SetOutcome(v stagetransition.Outcome) *StageTransitionUpsertOne {
	return u.Update(func(s *StageTransitionUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *StageTransitionUpsertOne) UpdateOutcome() *StageTransitionUpsertOne {
	return u.Update(func(s *StageTransitionUpsert) {
		s.UpdateOutcome()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StageTransitionUpsertOne) SetStartedAt(v time.Time) *StageTransitionUpsertOne {
	return u.Update(func(s *StageTransitionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StageTransitionUpsertOne) UpdateStartedAt() *StageTransitionUpsertOne {
	return u.Update(func(s *StageTransitionUpsert) {
		s.UpdateStartedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *StageTransitionUpsertOne) SetDurationMs(v int64) *StageTransitionUpsertOne {
	return u.Update(func(s *StageTransitionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StageTransitionUpsertOne) AddDurationMs(v int64) *StageTransitionUpsertOne {
	return u.Update(func(s *StageTransitionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StageTransitionUpsertOne) UpdateDurationMs() *StageTransitionUpsertOne {
	return u.Update(func(s *StageTransitionUpsert) {
		s.UpdateDurationMs()
	})
}

// Exec executes the query.
func (u *StageTransitionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageTransitionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageTransitionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StageTransitionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StageTransitionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StageTransitionCreateBulk is the builder for creating many StageTransition entities in bulk.
type StageTransitionCreateBulk struct {
	config
	err      error
	builders []*StageTransitionCreate
	conflict []sql.ConflictOption
}

// Save creates the StageTransition entities in the database.
func (_c *StageTransitionCreateBulk) Save(ctx context.Context) ([]*StageTransition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageTransition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageTransitionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StageTransitionCreateBulk) SaveX(ctx context.Context) []*StageTransition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageTransitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageTransitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StageTransition.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageTransitionUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *StageTransitionCreateBulk) OnConflict(opts ...sql.ConflictOption) *StageTransitionUpsertBulk {
	_c.conflict = opts
	return &StageTransitionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageTransition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageTransitionCreateBulk) OnConflictColumns(columns ...string) *StageTransitionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageTransitionUpsertBulk{
		create: _c,
	}
}

// StageTransitionUpsertBulk is the builder for "upsert"-ing
// a bulk of StageTransition nodes.
type StageTransitionUpsertBulk struct {
	create *StageTransitionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StageTransition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StageTransitionUpsertBulk) UpdateNewValues() *StageTransitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(stagetransition.FieldTaskID)
			}
			if _, exists := b.mutation.RecordedAt(); exists {
				s.SetIgnore(stagetransition.FieldRecordedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageTransition.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StageTransitionUpsertBulk) Ignore() *StageTransitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageTransitionUpsertBulk) DoNothing() *StageTransitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageTransitionCreateBulk.OnConflict
// documentation for more info.
func (u *StageTransitionUpsertBulk) Update(set func(*StageTransitionUpsert)) *StageTransitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageTransitionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStage sets the "stage" field.
func (u *StageTransitionUpsertBulk) SetStage(v string) *StageTransitionUpsertBulk {
	return u.Update(func(s *StageTransitionUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *StageTransitionUpsertBulk) UpdateStage() *StageTransitionUpsertBulk {
	return u.Update(func(s *StageTransitionUpsert) {
		s.UpdateStage()
	})
}

// SetAttempt sets the "attempt" field.
func (u *StageTransitionUpsertBulk) SetAttempt(v int) *StageTransitionUpsertBulk {
	return u.Update(func(s *StageTransitionUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *StageTransitionUpsertBulk) AddAttempt(v int) *StageTransitionUpsertBulk {
	return u.Update(func(s *StageTransitionUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *StageTransitionUpsertBulk) UpdateAttempt() *StageTransitionUpsertBulk {
	return u.Update(func(s *StageTransitionUpsert) {
		s.UpdateAttempt()
	})
}

// SetOutcome sets the "outcome" field.
func (u *StageTransitionUpsertBulk) SetOutcome(v stagetransition.Outcome) *StageTransitionUpsertBulk {
	return u.Update(func(s *StageTransitionUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *StageTransitionUpsertBulk) UpdateOutcome() *StageTransitionUpsertBulk {
	return u.Update(func(s *StageTransitionUpsert) {
		s.UpdateOutcome()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StageTransitionUpsertBulk) SetStartedAt(v time.Time) *StageTransitionUpsertBulk {
	return u.Update(func(s *StageTransitionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StageTransitionUpsertBulk) UpdateStartedAt() *StageTransitionUpsertBulk {
	return u.Update(func(s *StageTransitionUpsert) {
		s.UpdateStartedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *StageTransitionUpsertBulk) SetDurationMs(v int64) *StageTransitionUpsertBulk {
	return u.Update(func(s *StageTransitionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *StageTransitionUpsertBulk) AddDurationMs(v int64) *StageTransitionUpsertBulk {
	return u.Update(func(s *StageTransitionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *StageTransitionUpsertBulk) UpdateDurationMs() *StageTransitionUpsertBulk {
	return u.Update(func(s *StageTransitionUpsert) {
		s.UpdateDurationMs()
	})
}

// Exec executes the query.
func (u *StageTransitionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StageTransitionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageTransitionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageTransitionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/ragweave/maestro/ent/agentperformance"
)

// AgentPerformanceCreate is the builder for creating a AgentPerformance entity.
type AgentPerformanceCreate struct {
	config
	mutation *AgentPerformanceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgent sets the "agent" field.
func (_c *AgentPerformanceCreate) SetAgent(v string) *AgentPerformanceCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *AgentPerformanceCreate) SetStage(v string) *AgentPerformanceCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *AgentPerformanceCreate) SetDurationMs(v int64) *AgentPerformanceCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *AgentPerformanceCreate) SetSuccess(v bool) *AgentPerformanceCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *AgentPerformanceCreate) SetRecordedAt(v time.Time) *AgentPerformanceCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *AgentPerformanceCreate) SetNillableRecordedAt(v *time.Time) *AgentPerformanceCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// Mutation returns the AgentPerformanceMutation object of the builder.
func (_c *AgentPerformanceCreate) Mutation() *AgentPerformanceMutation {
	return _c.mutation
}

// Save creates the AgentPerformance in the database.
func (_c *AgentPerformanceCreate) Save(ctx context.Context) (*AgentPerformance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentPerformanceCreate) SaveX(ctx context.Context) *AgentPerformance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentPerformanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentPerformanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentPerformanceCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := agentperformance.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentPerformanceCreate) check() error {
	if _, ok := _c.mutation.Agent(); !ok {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required field "AgentPerformance.agent"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "AgentPerformance.stage"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "AgentPerformance.duration_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "AgentPerformance.success"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "AgentPerformance.recorded_at"`)}
	}
	return nil
}

func (_c *AgentPerformanceCreate) sqlSave(ctx context.Context) (*AgentPerformance, error) {
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

func (_c *AgentPerformanceCreate) createSpec() (*AgentPerformance, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentPerformance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentperformance.Table, sqlgraph.NewFieldSpec(agentperformance.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(agentperformance.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(agentperformance.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(agentperformance.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(agentperformance.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(agentperformance.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentPerformance.Create().
//		SetAgent(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentPerformanceUpsert) {
//			SetAgent(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentPerformanceCreate) OnConflict(opts ...sql.ConflictOption) *AgentPerformanceUpsertOne {
	_c.conflict = opts
	return &AgentPerformanceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentPerformance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentPerformanceCreate) OnConflictColumns(columns ...string) *AgentPerformanceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentPerformanceUpsertOne{
		create: _c,
	}
}

type (
	// AgentPerformanceUpsertOne is the builder for "upsert"-ing
	//  one AgentPerformance node.
	AgentPerformanceUpsertOne struct {
		create *AgentPerformanceCreate
	}

	// AgentPerformanceUpsert is the "OnConflict" setter.
	AgentPerformanceUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgent sets the "agent" field.
func (u *AgentPerformanceUpsert) SetAgent(v string) *AgentPerformanceUpsert {
	u.Set(agentperformance.FieldAgent, v)
	return u
}

// UpdateAgent sets the "agent" field to the value that was provided on create.
func (u *AgentPerformanceUpsert) UpdateAgent() *AgentPerformanceUpsert {
	u.SetExcluded(agentperformance.FieldAgent)
	return u
}

// SetStage sets the "stage" field.
func (u *AgentPerformanceUpsert) SetStage(v string) *AgentPerformanceUpsert {
	u.Set(agentperformance.FieldStage, v)
	return u
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *AgentPerformanceUpsert) UpdateStage() *AgentPerformanceUpsert {
	u.SetExcluded(agentperformance.FieldStage)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *AgentPerformanceUpsert) SetDurationMs(v int64) *AgentPerformanceUpsert {
	u.Set(agentperformance.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *AgentPerformanceUpsert) UpdateDurationMs() *AgentPerformanceUpsert {
	u.SetExcluded(agentperformance.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *AgentPerformanceUpsert) AddDurationMs(v int64) *AgentPerformanceUpsert {
	u.Add(agentperformance.FieldDurationMs, v)
	return u
}

// SetSuccess sets the "success" field.
func (u *AgentPerformanceUpsert) SetSuccess(v bool) *AgentPerformanceUpsert {
	u.Set(agentperformance.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *AgentPerformanceUpsert) UpdateSuccess() *AgentPerformanceUpsert {
	u.SetExcluded(agentperformance.FieldSuccess)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AgentPerformance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentPerformanceUpsertOne) UpdateNewValues() *AgentPerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.RecordedAt(); exists {
			s.SetIgnore(agentperformance.FieldRecordedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentPerformance.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentPerformanceUpsertOne) Ignore() *AgentPerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentPerformanceUpsertOne) DoNothing() *AgentPerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentPerformanceCreate.OnConflict
// documentation for more info.
func (u *AgentPerformanceUpsertOne) Update(set func(*AgentPerformanceUpsert)) *AgentPerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentPerformanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgent sets the "agent" field.
func (u *AgentPerformanceUpsertOne) SetAgent(v string) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetAgent(v)
	})
}

// UpdateAgent sets the "agent" field to the value that was provided on create.
func (u *AgentPerformanceUpsertOne) UpdateAgent() *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateAgent()
	})
}

// SetStage sets the "stage" field.
func (u *AgentPerformanceUpsertOne) SetStage(v string) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *AgentPerformanceUpsertOne) UpdateStage() *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateStage()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *AgentPerformanceUpsertOne) SetDurationMs(v int64) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *AgentPerformanceUpsertOne) AddDurationMs(v int64) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *AgentPerformanceUpsertOne) UpdateDurationMs() *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateDurationMs()
	})
}

// SetSuccess sets the "success" field.
func (u *AgentPerformanceUpsertOne) SetSuccess(v bool) *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *AgentPerformanceUpsertOne) UpdateSuccess() *AgentPerformanceUpsertOne {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateSuccess()
	})
}

// Exec executes the query.
func (u *AgentPerformanceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentPerformanceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentPerformanceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentPerformanceUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentPerformanceUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentPerformanceCreateBulk is the builder for creating many AgentPerformance entities in bulk.
type AgentPerformanceCreateBulk struct {
	config
	err      error
	builders []*AgentPerformanceCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentPerformance entities in the database.
func (_c *AgentPerformanceCreateBulk) Save(ctx context.Context) ([]*AgentPerformance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentPerformance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentPerformanceMutation)
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
func (_c *AgentPerformanceCreateBulk) SaveX(ctx context.Context) []*AgentPerformance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentPerformanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentPerformanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentPerformance.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentPerformanceUpsert) {
//			SetAgent(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentPerformanceCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentPerformanceUpsertBulk {
	_c.conflict = opts
	return &AgentPerformanceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentPerformance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentPerformanceCreateBulk) OnConflictColumns(columns ...string) *AgentPerformanceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentPerformanceUpsertBulk{
		create: _c,
	}
}

// AgentPerformanceUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentPerformance nodes.
type AgentPerformanceUpsertBulk struct {
	create *AgentPerformanceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentPerformance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentPerformanceUpsertBulk) UpdateNewValues() *AgentPerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.RecordedAt(); exists {
				s.SetIgnore(agentperformance.FieldRecordedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentPerformance.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentPerformanceUpsertBulk) Ignore() *AgentPerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentPerformanceUpsertBulk) DoNothing() *AgentPerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentPerformanceCreateBulk.OnConflict
// documentation for more info.
func (u *AgentPerformanceUpsertBulk) Update(set func(*AgentPerformanceUpsert)) *AgentPerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentPerformanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgent sets the "agent" field.
func (u *AgentPerformanceUpsertBulk) SetAgent(v string) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetAgent(v)
	})
}

// UpdateAgent sets the "agent" field to the value that was provided on create.
func (u *AgentPerformanceUpsertBulk) UpdateAgent() *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateAgent()
	})
}

// SetStage sets the "stage" field.
func (u *AgentPerformanceUpsertBulk) SetStage(v string) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *AgentPerformanceUpsertBulk) UpdateStage() *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateStage()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *AgentPerformanceUpsertBulk) SetDurationMs(v int64) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *AgentPerformanceUpsertBulk) AddDurationMs(v int64) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *AgentPerformanceUpsertBulk) UpdateDurationMs() *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateDurationMs()
	})
}

// SetSuccess sets the "success" field.
func (u *AgentPerformanceUpsertBulk) SetSuccess(v bool) *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *AgentPerformanceUpsertBulk) UpdateSuccess() *AgentPerformanceUpsertBulk {
	return u.Update(func(s *AgentPerformanceUpsert) {
		s.UpdateSuccess()
	})
}

// Exec executes the query.
func (u *AgentPerformanceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentPerformanceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentPerformanceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentPerformanceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/ragweave/maestro/ent/dagtemplate"
)

// DagTemplateCreate is the builder for creating a DagTemplate entity.
type DagTemplateCreate struct {
	config
	mutation *DagTemplateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *DagTemplateCreate) SetName(v string) *DagTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *DagTemplateCreate) SetDescription(v string) *DagTemplateCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *DagTemplateCreate) SetNillableDescription(v *string) *DagTemplateCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStages sets the "stages" field.
func (_c *DagTemplateCreate) SetStages(v []string) *DagTemplateCreate {
	_c.mutation.SetStages(v)
	return _c
}

// SetSelector sets the "selector" field.
func (_c *DagTemplateCreate) SetSelector(v map[string]interface{}) *DagTemplateCreate {
	_c.mutation.SetSelector(v)
	return _c
}

// SetReasoningMaxTokens sets the "reasoning_max_tokens" field.
func (_c *DagTemplateCreate) SetReasoningMaxTokens(v int) *DagTemplateCreate {
	_c.mutation.SetReasoningMaxTokens(v)
	return _c
}

// SetNillableReasoningMaxTokens sets the "reasoning_max_tokens" field if the given value is not nil.
func (_c *DagTemplateCreate) SetNillableReasoningMaxTokens(v *int) *DagTemplateCreate {
	if v != nil {
		_c.SetReasoningMaxTokens(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DagTemplateCreate) SetUpdatedAt(v time.Time) *DagTemplateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DagTemplateCreate) SetNillableUpdatedAt(v *time.Time) *DagTemplateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the DagTemplateMutation object of the builder.
func (_c *DagTemplateCreate) Mutation() *DagTemplateMutation {
	return _c.mutation
}

// Save creates the DagTemplate in the database.
func (_c *DagTemplateCreate) Save(ctx context.Context) (*DagTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DagTemplateCreate) SaveX(ctx context.Context) *DagTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DagTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DagTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DagTemplateCreate) defaults() {
	if _, ok := _c.mutation.ReasoningMaxTokens(); !ok {
		v := dagtemplate.DefaultReasoningMaxTokens
		_c.mutation.SetReasoningMaxTokens(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dagtemplate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DagTemplateCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DagTemplate.name"`)}
	}
	if _, ok := _c.mutation.Stages(); !ok {
		return &ValidationError{Name: "stages", err: errors.New(`ent: missing required field "DagTemplate.stages"`)}
	}
	if _, ok := _c.mutation.ReasoningMaxTokens(); !ok {
		return &ValidationError{Name: "reasoning_max_tokens", err: errors.New(`ent: missing required field "DagTemplate.reasoning_max_tokens"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DagTemplate.updated_at"`)}
	}
	return nil
}

func (_c *DagTemplateCreate) sqlSave(ctx context.Context) (*DagTemplate, error) {
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

func (_c *DagTemplateCreate) createSpec() (*DagTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &DagTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dagtemplate.Table, sqlgraph.NewFieldSpec(dagtemplate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(dagtemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(dagtemplate.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Stages(); ok {
		_spec.SetField(dagtemplate.FieldStages, field.TypeJSON, value)
		_node.Stages = value
	}
	if value, ok := _c.mutation.Selector(); ok {
		_spec.SetField(dagtemplate.FieldSelector, field.TypeJSON, value)
		_node.Selector = value
	}
	if value, ok := _c.mutation.ReasoningMaxTokens(); ok {
		_spec.SetField(dagtemplate.FieldReasoningMaxTokens, field.TypeInt, value)
		_node.ReasoningMaxTokens = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dagtemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DagTemplate.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DagTemplateUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *DagTemplateCreate) OnConflict(opts ...sql.ConflictOption) *DagTemplateUpsertOne {
	_c.conflict = opts
	return &DagTemplateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DagTemplate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DagTemplateCreate) OnConflictColumns(columns ...string) *DagTemplateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DagTemplateUpsertOne{
		create: _c,
	}
}

type (
	// DagTemplateUpsertOne is the builder for "upsert"-ing
	//  one DagTemplate node.
	DagTemplateUpsertOne struct {
		create *DagTemplateCreate
	}

	// DagTemplateUpsert is the "OnConflict" setter.
	DagTemplateUpsert struct {
		*sql.UpdateSet
	}
)

// SetDescription sets the "description" field.
func (u *DagTemplateUpsert) SetDescription(v string) *DagTemplateUpsert {
	u.Set(dagtemplate.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DagTemplateUpsert) UpdateDescription() *DagTemplateUpsert {
	u.SetExcluded(dagtemplate.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *DagTemplateUpsert) ClearDescription() *DagTemplateUpsert {
	u.SetNull(dagtemplate.FieldDescription)
	return u
}

// SetStages sets the "stages" field.
func (u *DagTemplateUpsert) SetStages(v []string) *DagTemplateUpsert {
	u.Set(dagtemplate.FieldStages, v)
	return u
}

// UpdateStages sets the "stages" field to the value that was provided on create.
func (u *DagTemplateUpsert) UpdateStages() *DagTemplateUpsert {
	u.SetExcluded(dagtemplate.FieldStages)
	return u
}

// SetSelector sets the "selector" field.
func (u *DagTemplateUpsert) SetSelector(v map[string]interface{}) *DagTemplateUpsert {
	u.Set(dagtemplate.FieldSelector, v)
	return u
}

// UpdateSelector sets the "selector" field to the value that was provided on create.
func (u *DagTemplateUpsert) UpdateSelector() *DagTemplateUpsert {
	u.SetExcluded(dagtemplate.FieldSelector)
	return u
}

// ClearSelector clears the value of the "selector" field.
func (u *DagTemplateUpsert) ClearSelector() *DagTemplateUpsert {
	u.SetNull(dagtemplate.FieldSelector)
	return u
}

// SetReasoningMaxTokens sets the "reasoning_max_tokens" field.
func (u *DagTemplateUpsert) SetReasoningMaxTokens(v int) *DagTemplateUpsert {
	u.Set(dagtemplate.FieldReasoningMaxTokens, v)
	return u
}

// UpdateReasoningMaxTokens sets the "reasoning_max_tokens" field to the value that was provided on create.
func (u *DagTemplateUpsert) UpdateReasoningMaxTokens() *DagTemplateUpsert {
	u.SetExcluded(dagtemplate.FieldReasoningMaxTokens)
	return u
}

// AddReasoningMaxTokens adds v to the "reasoning_max_tokens" field.
func (u *DagTemplateUpsert) AddReasoningMaxTokens(v int) *DagTemplateUpsert {
	u.Add(dagtemplate.FieldReasoningMaxTokens, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DagTemplateUpsert) SetUpdatedAt(v time.Time) *DagTemplateUpsert {
	u.Set(dagtemplate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DagTemplateUpsert) UpdateUpdatedAt() *DagTemplateUpsert {
	u.SetExcluded(dagtemplate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.DagTemplate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DagTemplateUpsertOne) UpdateNewValues() *DagTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Name(); exists {
			s.SetIgnore(dagtemplate.FieldName)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DagTemplate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DagTemplateUpsertOne) Ignore() *DagTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DagTemplateUpsertOne) DoNothing() *DagTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DagTemplateCreate.OnConflict
// documentation for more info.
func (u *DagTemplateUpsertOne) Update(set func(*DagTemplateUpsert)) *DagTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DagTemplateUpsert{UpdateSet: update})
	}))
	return u
}

// SetDescription sets the "description" field.
func (u *DagTemplateUpsertOne) SetDescription(v string) *DagTemplateUpsertOne {
	return u.Update(func(s *DagTemplateUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DagTemplateUpsertOne) UpdateDescription() *DagTemplateUpsertOne {
	return u.Update(func(s *DagTemplateUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *DagTemplateUpsertOne) ClearDescription() *DagTemplateUpsertOne {
	return u.Update(func(s *DagTemplateUpsert) {
		s.ClearDescription()
	})
}

// SetStages sets the "stages" field.
func (u *DagTemplateUpsertOne) SetStages(v []string) *DagTemplateUpsertOne {
	return u.Update(func(s *DagTemplateUpsert) {
		s.SetStages(v)
	})
}

// UpdateStages sets the "stages" field to the value that was provided on create.
func (u *DagTemplateUpsertOne) UpdateStages() *DagTemplateUpsertOne {
	return u.Update(func(s *DagTemplateUpsert) {
		s.UpdateStages()
	})
}

// SetSelector sets the "selector" field.
func (u *DagTemplateUpsertOne) SetSelector(v map[string]interface{}) *DagTemplateUpsertOne {
	return u.Update(func(s *DagTemplateUpsert) {
		s.SetSelector(v)
	})
}

// UpdateSelector sets the "selector" field to the value that was provided on create.
func (u *DagTemplateUpsertOne) UpdateSelector() *DagTemplateUpsertOne {
	return u.Update(func(s *DagTemplateUpsert) {
		s.UpdateSelector()
	})
}

// ClearSelector clears the value of the "selector" field.
func (u *DagTemplateUpsertOne) ClearSelector() *DagTemplateUpsertOne {
	return u.Update(func(s *DagTemplateUpsert) {
		s.ClearSelector()
	})
}

// SetReasoningMaxTokens sets the "reasoning_max_tokens" field.
func (u *DagTemplateUpsertOne) SetReasoningMaxTokens(v int) *DagTemplateUpsertOne {
	return u.Update(func(s *DagTemplateUpsert) {
		s.SetReasoningMaxTokens(v)
	})
}

// AddReasoningMaxTokens adds v to the "reasoning_max_tokens" field.
func (u *DagTemplateUpsertOne) AddReasoningMaxTokens(v int) *DagTemplateUpsertOne {
	return u.Update(func(s *DagTemplateUpsert) {
		s.AddReasoningMaxTokens(v)
	})
}

// UpdateReasoningMaxTokens sets the "reasoning_max_tokens" field to the value that was provided on create.
func (u *DagTemplateUpsertOne) UpdateReasoningMaxTokens() *DagTemplateUpsertOne {
	return u.Update(func(s *DagTemplateUpsert) {
		s.UpdateReasoningMaxTokens()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DagTemplateUpsertOne) SetUpdatedAt(v time.Time) *DagTemplateUpsertOne {
	return u.Update(func(s *DagTemplateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DagTemplateUpsertOne) UpdateUpdatedAt() *DagTemplateUpsertOne {
	return u.Update(func(s *DagTemplateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DagTemplateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DagTemplateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DagTemplateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DagTemplateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DagTemplateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DagTemplateCreateBulk is the builder for creating many DagTemplate entities in bulk.
type DagTemplateCreateBulk struct {
	config
	err      error
	builders []*DagTemplateCreate
	conflict []sql.ConflictOption
}

// Save creates the DagTemplate entities in the database.
func (_c *DagTemplateCreateBulk) Save(ctx context.Context) ([]*DagTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DagTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DagTemplateMutation)
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
func (_c *DagTemplateCreateBulk) SaveX(ctx context.Context) []*DagTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DagTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DagTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DagTemplate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DagTemplateUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *DagTemplateCreateBulk) OnConflict(opts ...sql.ConflictOption) *DagTemplateUpsertBulk {
	_c.conflict = opts
	return &DagTemplateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DagTemplate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DagTemplateCreateBulk) OnConflictColumns(columns ...string) *DagTemplateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DagTemplateUpsertBulk{
		create: _c,
	}
}

// DagTemplateUpsertBulk is the builder for "upsert"-ing
// a bulk of DagTemplate nodes.
type DagTemplateUpsertBulk struct {
	create *DagTemplateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DagTemplate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DagTemplateUpsertBulk) UpdateNewValues() *DagTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Name(); exists {
				s.SetIgnore(dagtemplate.FieldName)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DagTemplate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DagTemplateUpsertBulk) Ignore() *DagTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DagTemplateUpsertBulk) DoNothing() *DagTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DagTemplateCreateBulk.OnConflict
// documentation for more info.
func (u *DagTemplateUpsertBulk) Update(set func(*DagTemplateUpsert)) *DagTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DagTemplateUpsert{UpdateSet: update})
	}))
	return u
}

// SetDescription sets the "description" field.
func (u *DagTemplateUpsertBulk) SetDescription(v string) *DagTemplateUpsertBulk {
	return u.Update(func(s *DagTemplateUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DagTemplateUpsertBulk) UpdateDescription() *DagTemplateUpsertBulk {
	return u.Update(func(s *DagTemplateUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *DagTemplateUpsertBulk) ClearDescription() *DagTemplateUpsertBulk {
	return u.Update(func(s *DagTemplateUpsert) {
		s.ClearDescription()
	})
}

// SetStages sets the "stages" field.
func (u *DagTemplateUpsertBulk) SetStages(v []string) *DagTemplateUpsertBulk {
	return u.Update(func(s *DagTemplateUpsert) {
		s.SetStages(v)
	})
}

// UpdateStages sets the "stages" field to the value that was provided on create.
func (u *DagTemplateUpsertBulk) UpdateStages() *DagTemplateUpsertBulk {
	return u.Update(func(s *DagTemplateUpsert) {
		s.UpdateStages()
	})
}

// SetSelector sets the "selector" field.
func (u *DagTemplateUpsertBulk) SetSelector(v map[string]interface{}) *DagTemplateUpsertBulk {
	return u.Update(func(s *DagTemplateUpsert) {
		s.SetSelector(v)
	})
}

// UpdateSelector sets the "selector" field to the value that was provided on create.
func (u *DagTemplateUpsertBulk) UpdateSelector() *DagTemplateUpsertBulk {
	return u.Update(func(s *DagTemplateUpsert) {
		s.UpdateSelector()
	})
}

// ClearSelector clears the value of the "selector" field.
func (u *DagTemplateUpsertBulk) ClearSelector() *DagTemplateUpsertBulk {
	return u.Update(func(s *DagTemplateUpsert) {
		s.ClearSelector()
	})
}

// SetReasoningMaxTokens sets the "reasoning_max_tokens" field.
func (u *DagTemplateUpsertBulk) SetReasoningMaxTokens(v int) *DagTemplateUpsertBulk {
	return u.Update(func(s *DagTemplateUpsert) {
		s.SetReasoningMaxTokens(v)
	})
}

// AddReasoningMaxTokens adds v to the "reasoning_max_tokens" field.
func (u *DagTemplateUpsertBulk) AddReasoningMaxTokens(v int) *DagTemplateUpsertBulk {
	return u.Update(func(s *DagTemplateUpsert) {
		s.AddReasoningMaxTokens(v)
	})
}

// UpdateReasoningMaxTokens sets the "reasoning_max_tokens" field to the value that was provided on create.
func (u *DagTemplateUpsertBulk) UpdateReasoningMaxTokens() *DagTemplateUpsertBulk {
	return u.Update(func(s *DagTemplateUpsert) {
		s.UpdateReasoningMaxTokens()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DagTemplateUpsertBulk) SetUpdatedAt(v time.Time) *DagTemplateUpsertBulk {
	return u.Update(func(s *DagTemplateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DagTemplateUpsertBulk) UpdateUpdatedAt() *DagTemplateUpsertBulk {
	return u.Update(func(s *DagTemplateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DagTemplateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DagTemplateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DagTemplateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DagTemplateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

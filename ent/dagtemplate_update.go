// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ragweave/maestro/ent/dagtemplate"
	"github.com/ragweave/maestro/ent/predicate"
)

// DagTemplateUpdate is the builder for updating DagTemplate entities.
type DagTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *DagTemplateMutation
}

// Where appends a list predicates to the DagTemplateUpdate builder.
func (_u *DagTemplateUpdate) Where(ps ...predicate.DagTemplate) *DagTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *DagTemplateUpdate) SetDescription(v string) *DagTemplateUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DagTemplateUpdate) SetNillableDescription(v *string) *DagTemplateUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DagTemplateUpdate) ClearDescription() *DagTemplateUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStages sets the "stages" field.
func (_u *DagTemplateUpdate) SetStages(v []string) *DagTemplateUpdate {
	_u.mutation.SetStages(v)
	return _u
}

// AppendStages appends value to the "stages" field.
func (_u *DagTemplateUpdate) AppendStages(v []string) *DagTemplateUpdate {
	_u.mutation.AppendStages(v)
	return _u
}

// SetSelector sets the "selector" field.
func (_u *DagTemplateUpdate) SetSelector(v map[string]interface{}) *DagTemplateUpdate {
	_u.mutation.SetSelector(v)
	return _u
}

// ClearSelector clears the value of the "selector" field.
func (_u *DagTemplateUpdate) ClearSelector() *DagTemplateUpdate {
	_u.mutation.ClearSelector()
	return _u
}

// SetReasoningMaxTokens sets the "reasoning_max_tokens" field.
func (_u *DagTemplateUpdate) SetReasoningMaxTokens(v int) *DagTemplateUpdate {
	_u.mutation.ResetReasoningMaxTokens()
	_u.mutation.SetReasoningMaxTokens(v)
	return _u
}

// SetNillableReasoningMaxTokens sets the "reasoning_max_tokens" field if the given value is not nil.
func (_u *DagTemplateUpdate) SetNillableReasoningMaxTokens(v *int) *DagTemplateUpdate {
	if v != nil {
		_u.SetReasoningMaxTokens(*v)
	}
	return _u
}

// AddReasoningMaxTokens adds value to the "reasoning_max_tokens" field.
func (_u *DagTemplateUpdate) AddReasoningMaxTokens(v int) *DagTemplateUpdate {
	_u.mutation.AddReasoningMaxTokens(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DagTemplateUpdate) SetUpdatedAt(v time.Time) *DagTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DagTemplateMutation object of the builder.
func (_u *DagTemplateUpdate) Mutation() *DagTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DagTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DagTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DagTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DagTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DagTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dagtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DagTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(dagtemplate.Table, dagtemplate.Columns, sqlgraph.NewFieldSpec(dagtemplate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(dagtemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(dagtemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Stages(); ok {
		_spec.SetField(dagtemplate.FieldStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dagtemplate.FieldStages, value)
		})
	}
	if value, ok := _u.mutation.Selector(); ok {
		_spec.SetField(dagtemplate.FieldSelector, field.TypeJSON, value)
	}
	if _u.mutation.SelectorCleared() {
		_spec.ClearField(dagtemplate.FieldSelector, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReasoningMaxTokens(); ok {
		_spec.SetField(dagtemplate.FieldReasoningMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReasoningMaxTokens(); ok {
		_spec.AddField(dagtemplate.FieldReasoningMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dagtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dagtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DagTemplateUpdateOne is the builder for updating a single DagTemplate entity.
type DagTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DagTemplateMutation
}

// SetDescription sets the "description" field.
func (_u *DagTemplateUpdateOne) SetDescription(v string) *DagTemplateUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DagTemplateUpdateOne) SetNillableDescription(v *string) *DagTemplateUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DagTemplateUpdateOne) ClearDescription() *DagTemplateUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStages sets the "stages" field.
func (_u *DagTemplateUpdateOne) SetStages(v []string) *DagTemplateUpdateOne {
	_u.mutation.SetStages(v)
	return _u
}

// AppendStages appends value to the "stages" field.
func (_u *DagTemplateUpdateOne) AppendStages(v []string) *DagTemplateUpdateOne {
	_u.mutation.AppendStages(v)
	return _u
}

// SetSelector sets the "selector" field.
func (_u *DagTemplateUpdateOne) SetSelector(v map[string]interface{}) *DagTemplateUpdateOne {
	_u.mutation.SetSelector(v)
	return _u
}

// ClearSelector clears the value of the "selector" field.
func (_u *DagTemplateUpdateOne) ClearSelector() *DagTemplateUpdateOne {
	_u.mutation.ClearSelector()
	return _u
}

// SetReasoningMaxTokens sets the "reasoning_max_tokens" field.
func (_u *DagTemplateUpdateOne) SetReasoningMaxTokens(v int) *DagTemplateUpdateOne {
	_u.mutation.ResetReasoningMaxTokens()
	_u.mutation.SetReasoningMaxTokens(v)
	return _u
}

// SetNillableReasoningMaxTokens sets the "reasoning_max_tokens" field if the given value is not nil.
func (_u *DagTemplateUpdateOne) SetNillableReasoningMaxTokens(v *int) *DagTemplateUpdateOne {
	if v != nil {
		_u.SetReasoningMaxTokens(*v)
	}
	return _u
}

// AddReasoningMaxTokens adds value to the "reasoning_max_tokens" field.
func (_u *DagTemplateUpdateOne) AddReasoningMaxTokens(v int) *DagTemplateUpdateOne {
	_u.mutation.AddReasoningMaxTokens(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DagTemplateUpdateOne) SetUpdatedAt(v time.Time) *DagTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DagTemplateMutation object of the builder.
func (_u *DagTemplateUpdateOne) Mutation() *DagTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the DagTemplateUpdate builder.
func (_u *DagTemplateUpdateOne) Where(ps ...predicate.DagTemplate) *DagTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DagTemplateUpdateOne) Select(field string, fields ...string) *DagTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DagTemplate entity.
func (_u *DagTemplateUpdateOne) Save(ctx context.Context) (*DagTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DagTemplateUpdateOne) SaveX(ctx context.Context) *DagTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DagTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DagTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DagTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dagtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DagTemplateUpdateOne) sqlSave(ctx context.Context) (_node *DagTemplate, err error) {
	_spec := sqlgraph.NewUpdateSpec(dagtemplate.Table, dagtemplate.Columns, sqlgraph.NewFieldSpec(dagtemplate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DagTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dagtemplate.FieldID)
		for _, f := range fields {
			if !dagtemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dagtemplate.FieldID {
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
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(dagtemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(dagtemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Stages(); ok {
		_spec.SetField(dagtemplate.FieldStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dagtemplate.FieldStages, value)
		})
	}
	if value, ok := _u.mutation.Selector(); ok {
		_spec.SetField(dagtemplate.FieldSelector, field.TypeJSON, value)
	}
	if _u.mutation.SelectorCleared() {
		_spec.ClearField(dagtemplate.FieldSelector, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReasoningMaxTokens(); ok {
		_spec.SetField(dagtemplate.FieldReasoningMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReasoningMaxTokens(); ok {
		_spec.AddField(dagtemplate.FieldReasoningMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dagtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DagTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dagtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

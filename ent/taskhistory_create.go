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
	"github.com/ragweave/maestro/ent/taskhistory"
)

// TaskHistoryCreate is the builder for creating a TaskHistory entity.
type TaskHistoryCreate struct {
	config
	mutation *TaskHistoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *TaskHistoryCreate) SetTaskID(v string) *TaskHistoryCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TaskHistoryCreate) SetUserID(v string) *TaskHistoryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuery sets the "query" field.
func (_c *TaskHistoryCreate) SetQuery(v string) *TaskHistoryCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetTemplateName sets the "template_name" field.
func (_c *TaskHistoryCreate) SetTemplateName(v string) *TaskHistoryCreate {
	_c.mutation.SetTemplateName(v)
	return _c
}

// SetPlan sets the "plan" field.
func (_c *TaskHistoryCreate) SetPlan(v []string) *TaskHistoryCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetCompletedStages sets the "completed_stages" field.
func (_c *TaskHistoryCreate) SetCompletedStages(v []string) *TaskHistoryCreate {
	_c.mutation.SetCompletedStages(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskHistoryCreate) SetStatus(v taskhistory.Status) *TaskHistoryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetResponseSummary sets the "response_summary" field.
func (_c *TaskHistoryCreate) SetResponseSummary(v string) *TaskHistoryCreate {
	_c.mutation.SetResponseSummary(v)
	return _c
}

// SetNillableResponseSummary sets the "response_summary" field if the given value is not nil.
func (_c *TaskHistoryCreate) SetNillableResponseSummary(v *string) *TaskHistoryCreate {
	if v != nil {
		_c.SetResponseSummary(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *TaskHistoryCreate) SetConfidence(v float64) *TaskHistoryCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *TaskHistoryCreate) SetNillableConfidence(v *float64) *TaskHistoryCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *TaskHistoryCreate) SetErrorKind(v string) *TaskHistoryCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *TaskHistoryCreate) SetNillableErrorKind(v *string) *TaskHistoryCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TaskHistoryCreate) SetErrorMessage(v string) *TaskHistoryCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TaskHistoryCreate) SetNillableErrorMessage(v *string) *TaskHistoryCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetErrorStage sets the "error_stage" field.
func (_c *TaskHistoryCreate) SetErrorStage(v string) *TaskHistoryCreate {
	_c.mutation.SetErrorStage(v)
	return _c
}

// SetNillableErrorStage sets the "error_stage" field if the given value is not nil.
func (_c *TaskHistoryCreate) SetNillableErrorStage(v *string) *TaskHistoryCreate {
	if v != nil {
		_c.SetErrorStage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskHistoryCreate) SetStartedAt(v time.Time) *TaskHistoryCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskHistoryCreate) SetCompletedAt(v time.Time) *TaskHistoryCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *TaskHistoryCreate) SetDurationMs(v int64) *TaskHistoryCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetArchivedAt sets the "archived_at" field.
func (_c *TaskHistoryCreate) SetArchivedAt(v time.Time) *TaskHistoryCreate {
	_c.mutation.SetArchivedAt(v)
	return _c
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (_c *TaskHistoryCreate) SetNillableArchivedAt(v *time.Time) *TaskHistoryCreate {
	if v != nil {
		_c.SetArchivedAt(*v)
	}
	return _c
}

// Mutation returns the TaskHistoryMutation object of the builder.
func (_c *TaskHistoryCreate) Mutation() *TaskHistoryMutation {
	return _c.mutation
}

// Save creates the TaskHistory in the database.
func (_c *TaskHistoryCreate) Save(ctx context.Context) (*TaskHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskHistoryCreate) SaveX(ctx context.Context) *TaskHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskHistoryCreate) defaults() {
	if _, ok := _c.mutation.ArchivedAt(); !ok {
		v := taskhistory.DefaultArchivedAt()
		_c.mutation.SetArchivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskHistoryCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskHistory.task_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TaskHistory.user_id"`)}
	}
	if _, ok := _c.mutation.Query(); !ok {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required field "TaskHistory.query"`)}
	}
	if _, ok := _c.mutation.TemplateName(); !ok {
		return &ValidationError{Name: "template_name", err: errors.New(`ent: missing required field "TaskHistory.template_name"`)}
	}
	if _, ok := _c.mutation.Plan(); !ok {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required field "TaskHistory.plan"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TaskHistory.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := taskhistory.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskHistory.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "TaskHistory.started_at"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "TaskHistory.completed_at"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "TaskHistory.duration_ms"`)}
	}
	if _, ok := _c.mutation.ArchivedAt(); !ok {
		return &ValidationError{Name: "archived_at", err: errors.New(`ent: missing required field "TaskHistory.archived_at"`)}
	}
	return nil
}

func (_c *TaskHistoryCreate) sqlSave(ctx context.Context) (*TaskHistory, error) {
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

func (_c *TaskHistoryCreate) createSpec() (*TaskHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskhistory.Table, sqlgraph.NewFieldSpec(taskhistory.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(taskhistory.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(taskhistory.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(taskhistory.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.TemplateName(); ok {
		_spec.SetField(taskhistory.FieldTemplateName, field.TypeString, value)
		_node.TemplateName = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(taskhistory.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.CompletedStages(); ok {
		_spec.SetField(taskhistory.FieldCompletedStages, field.TypeJSON, value)
		_node.CompletedStages = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(taskhistory.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ResponseSummary(); ok {
		_spec.SetField(taskhistory.FieldResponseSummary, field.TypeString, value)
		_node.ResponseSummary = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(taskhistory.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(taskhistory.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(taskhistory.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ErrorStage(); ok {
		_spec.SetField(taskhistory.FieldErrorStage, field.TypeString, value)
		_node.ErrorStage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(taskhistory.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(taskhistory.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(taskhistory.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.ArchivedAt(); ok {
		_spec.SetField(taskhistory.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskHistory.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskHistoryUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskHistoryCreate) OnConflict(opts ...sql.ConflictOption) *TaskHistoryUpsertOne {
	_c.conflict = opts
	return &TaskHistoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskHistoryCreate) OnConflictColumns(columns ...string) *TaskHistoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskHistoryUpsertOne{
		create: _c,
	}
}

type (
	// TaskHistoryUpsertOne is the builder for "upsert"-ing
	//  one TaskHistory node.
	TaskHistoryUpsertOne struct {
		create *TaskHistoryCreate
	}

	// TaskHistoryUpsert is the "OnConflict" setter.
	TaskHistoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *TaskHistoryUpsert) SetUserID(v string) *TaskHistoryUpsert {
	u.Set(taskhistory.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TaskHistoryUpsert) UpdateUserID() *TaskHistoryUpsert {
	u.SetExcluded(taskhistory.FieldUserID)
	return u
}

// SetQuery sets the "query" field.
func (u *TaskHistoryUpsert) SetQuery(v string) *TaskHistoryUpsert {
	u.Set(taskhistory.FieldQuery, v)
	return u
}

// UpdateQuery sets the "query" field to the value that was provided on create.
func (u *TaskHistoryUpsert) UpdateQuery() *TaskHistoryUpsert {
	u.SetExcluded(taskhistory.FieldQuery)
	return u
}

// SetTemplateName sets the "template_name" field.
func (u *TaskHistoryUpsert) SetTemplateName(v string) *TaskHistoryUpsert {
	u.Set(taskhistory.FieldTemplateName, v)
	return u
}

// UpdateTemplateName sets the "template_name" field to the value that was provided on create.
func (u *TaskHistoryUpsert) UpdateTemplateName() *TaskHistoryUpsert {
	u.SetExcluded(taskhistory.FieldTemplateName)
	return u
}

// SetPlan sets the "plan" field.
func (u *TaskHistoryUpsert) SetPlan(v []string) *TaskHistoryUpsert {
	u.Set(taskhistory.FieldPlan, v)
	return u
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *TaskHistoryUpsert) UpdatePlan() *TaskHistoryUpsert {
	u.SetExcluded(taskhistory.FieldPlan)
	return u
}

// SetCompletedStages sets the "completed_stages" field.
func (u *TaskHistoryUpsert) SetCompletedStages(v []string) *TaskHistoryUpsert {
	u.Set(taskhistory.FieldCompletedStages, v)
	return u
}

// UpdateCompletedStages sets the "completed_stages" field to the value that was provided on create.
func (u *TaskHistoryUpsert) UpdateCompletedStages() *TaskHistoryUpsert {
	u.SetExcluded(taskhistory.FieldCompletedStages)
	return u
}

// ClearCompletedStages clears the value of the "completed_stages" field.
func (u *TaskHistoryUpsert) ClearCompletedStages() *TaskHistoryUpsert {
	u.SetNull(taskhistory.FieldCompletedStages)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskHistoryUpsert) SetStatus(v taskhistory.Status) *TaskHistoryUpsert {
	u.Set(taskhistory.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskHistoryUpsert) UpdateStatus() *TaskHistoryUpsert {
	u.SetExcluded(taskhistory.FieldStatus)
	return u
}

// SetResponseSummary sets the "response_summary" field.
func (u *TaskHistoryUpsert) SetResponseSummary(v string) *TaskHistoryUpsert {
	u.Set(taskhistory.FieldResponseSummary, v)
	return u
}

// UpdateResponseSummary sets the "response_summary" field to the value that was provided on create.
func (u *TaskHistoryUpsert) UpdateResponseSummary() *TaskHistoryUpsert {
	u.SetExcluded(taskhistory.FieldResponseSummary)
	return u
}

// ClearResponseSummary clears the value of the "response_summary" field.
func (u *TaskHistoryUpsert) ClearResponseSummary() *TaskHistoryUpsert {
	u.SetNull(taskhistory.FieldResponseSummary)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *TaskHistoryUpsert) SetConfidence(v float64) *TaskHistoryUpsert {
	u.Set(taskhistory.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *TaskHistoryUpsert) UpdateConfidence() *TaskHistoryUpsert {
	u.SetExcluded(taskhistory.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *TaskHistoryUpsert) AddConfidence(v float64) *TaskHistoryUpsert {
	u.Add(taskhistory.FieldConfidence, v)
	return u
}

// ClearConfidence clears the value of the "confidence" field.
func (u *TaskHistoryUpsert) ClearConfidence() *TaskHistoryUpsert {
	u.SetNull(taskhistory.FieldConfidence)
	return u
}

// SetErrorKind sets the "error_kind" field.
func (u *TaskHistoryUpsert) SetErrorKind(v string) *TaskHistoryUpsert {
	u.Set(taskhistory.FieldErrorKind, v)
	return u
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *TaskHistoryUpsert) UpdateErrorKind() *TaskHistoryUpsert {
	u.SetExcluded(taskhistory.FieldErrorKind)
	return u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *TaskHistoryUpsert) ClearErrorKind() *TaskHistoryUpsert {
	u.SetNull(taskhistory.FieldErrorKind)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *TaskHistoryUpsert) SetErrorMessage(v string) *TaskHistoryUpsert {
	u.Set(taskhistory.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TaskHistoryUpsert) UpdateErrorMessage() *TaskHistoryUpsert {
	u.SetExcluded(taskhistory.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TaskHistoryUpsert) ClearErrorMessage() *TaskHistoryUpsert {
	u.SetNull(taskhistory.FieldErrorMessage)
	return u
}

// SetErrorStage sets the "error_stage" field.
func (u *TaskHistoryUpsert) SetErrorStage(v string) *TaskHistoryUpsert {
	u.Set(taskhistory.FieldErrorStage, v)
	return u
}

// UpdateErrorStage sets the "error_stage" field to the value that was provided on create.
func (u *TaskHistoryUpsert) UpdateErrorStage() *TaskHistoryUpsert {
	u.SetExcluded(taskhistory.FieldErrorStage)
	return u
}

// ClearErrorStage clears the value of the "error_stage" field.
func (u *TaskHistoryUpsert) ClearErrorStage() *TaskHistoryUpsert {
	u.SetNull(taskhistory.FieldErrorStage)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *TaskHistoryUpsert) SetStartedAt(v time.Time) *TaskHistoryUpsert {
	u.Set(taskhistory.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskHistoryUpsert) UpdateStartedAt() *TaskHistoryUpsert {
	u.SetExcluded(taskhistory.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskHistoryUpsert) SetCompletedAt(v time.Time) *TaskHistoryUpsert {
	u.Set(taskhistory.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskHistoryUpsert) UpdateCompletedAt() *TaskHistoryUpsert {
	u.SetExcluded(taskhistory.FieldCompletedAt)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *TaskHistoryUpsert) SetDurationMs(v int64) *TaskHistoryUpsert {
	u.Set(taskhistory.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *TaskHistoryUpsert) UpdateDurationMs() *TaskHistoryUpsert {
	u.SetExcluded(taskhistory.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *TaskHistoryUpsert) AddDurationMs(v int64) *TaskHistoryUpsert {
	u.Add(taskhistory.FieldDurationMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TaskHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskHistoryUpsertOne) UpdateNewValues() *TaskHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(taskhistory.FieldTaskID)
		}
		if _, exists := u.create.mutation.ArchivedAt(); exists {
			s.SetIgnore(taskhistory.FieldArchivedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskHistory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskHistoryUpsertOne) Ignore() *TaskHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskHistoryUpsertOne) DoNothing() *TaskHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskHistoryCreate.OnConflict
// documentation for more info.
func (u *TaskHistoryUpsertOne) Update(set func(*TaskHistoryUpsert)) *TaskHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *TaskHistoryUpsertOne) SetUserID(v string) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TaskHistoryUpsertOne) UpdateUserID() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateUserID()
	})
}

// SetQuery sets the "query" field.
func (u *TaskHistoryUpsertOne) SetQuery(v string) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetQuery(v)
	})
}

// UpdateQuery sets the "query" field to the value that was provided on create.
func (u *TaskHistoryUpsertOne) UpdateQuery() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateQuery()
	})
}

// SetTemplateName sets the "template_name" field.
func (u *TaskHistoryUpsertOne) SetTemplateName(v string) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetTemplateName(v)
	})
}

// UpdateTemplateName sets the "template_name" field to the value that was provided on create.
func (u *TaskHistoryUpsertOne) UpdateTemplateName() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateTemplateName()
	})
}

// SetPlan sets the "plan" field.
func (u *TaskHistoryUpsertOne) SetPlan(v []string) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *TaskHistoryUpsertOne) UpdatePlan() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdatePlan()
	})
}

// SetCompletedStages sets the "completed_stages" field.
func (u *TaskHistoryUpsertOne) SetCompletedStages(v []string) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetCompletedStages(v)
	})
}

// UpdateCompletedStages sets the "completed_stages" field to the value that was provided on create.
func (u *TaskHistoryUpsertOne) UpdateCompletedStages() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateCompletedStages()
	})
}

// ClearCompletedStages clears the value of the "completed_stages" field.
func (u *TaskHistoryUpsertOne) ClearCompletedStages() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.ClearCompletedStages()
	})
}

// SetStatus sets the "status" field.
func (u *TaskHistoryUpsertOne) SetStatus(v taskhistory.Status) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskHistoryUpsertOne) UpdateStatus() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateStatus()
	})
}

// SetResponseSummary sets the "response_summary" field.
func (u *TaskHistoryUpsertOne) SetResponseSummary(v string) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetResponseSummary(v)
	})
}

// UpdateResponseSummary sets the "response_summary" field to the value that was provided on create.
func (u *TaskHistoryUpsertOne) UpdateResponseSummary() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateResponseSummary()
	})
}

// ClearResponseSummary clears the value of the "response_summary" field.
func (u *TaskHistoryUpsertOne) ClearResponseSummary() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.ClearResponseSummary()
	})
}

// SetConfidence sets the "confidence" field.
func (u *TaskHistoryUpsertOne) SetConfidence(v float64) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *TaskHistoryUpsertOne) AddConfidence(v float64) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *TaskHistoryUpsertOne) UpdateConfidence() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *TaskHistoryUpsertOne) ClearConfidence() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.ClearConfidence()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *TaskHistoryUpsertOne) SetErrorKind(v string) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *TaskHistoryUpsertOne) UpdateErrorKind() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *TaskHistoryUpsertOne) ClearErrorKind() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *TaskHistoryUpsertOne) SetErrorMessage(v string) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TaskHistoryUpsertOne) UpdateErrorMessage() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TaskHistoryUpsertOne) ClearErrorMessage() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.ClearErrorMessage()
	})
}

// SetErrorStage sets the "error_stage" field.
func (u *TaskHistoryUpsertOne) SetErrorStage(v string) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetErrorStage(v)
	})
}

// UpdateErrorStage sets the "error_stage" field to the value that was provided on create.
func (u *TaskHistoryUpsertOne) UpdateErrorStage() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateErrorStage()
	})
}

// ClearErrorStage clears the value of the "error_stage" field.
func (u *TaskHistoryUpsertOne) ClearErrorStage() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.ClearErrorStage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TaskHistoryUpsertOne) SetStartedAt(v time.Time) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskHistoryUpsertOne) UpdateStartedAt() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskHistoryUpsertOne) SetCompletedAt(v time.Time) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskHistoryUpsertOne) UpdateCompletedAt() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *TaskHistoryUpsertOne) SetDurationMs(v int64) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *TaskHistoryUpsertOne) AddDurationMs(v int64) *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *TaskHistoryUpsertOne) UpdateDurationMs() *TaskHistoryUpsertOne {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateDurationMs()
	})
}

// Exec executes the query.
func (u *TaskHistoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskHistoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskHistoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskHistoryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskHistoryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskHistoryCreateBulk is the builder for creating many TaskHistory entities in bulk.
type TaskHistoryCreateBulk struct {
	config
	err      error
	builders []*TaskHistoryCreate
	conflict []sql.ConflictOption
}

// Save creates the TaskHistory entities in the database.
func (_c *TaskHistoryCreateBulk) Save(ctx context.Context) ([]*TaskHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskHistoryMutation)
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
func (_c *TaskHistoryCreateBulk) SaveX(ctx context.Context) []*TaskHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskHistory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskHistoryUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskHistoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskHistoryUpsertBulk {
	_c.conflict = opts
	return &TaskHistoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskHistoryCreateBulk) OnConflictColumns(columns ...string) *TaskHistoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskHistoryUpsertBulk{
		create: _c,
	}
}

// TaskHistoryUpsertBulk is the builder for "upsert"-ing
// a bulk of TaskHistory nodes.
type TaskHistoryUpsertBulk struct {
	create *TaskHistoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TaskHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskHistoryUpsertBulk) UpdateNewValues() *TaskHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(taskhistory.FieldTaskID)
			}
			if _, exists := b.mutation.ArchivedAt(); exists {
				s.SetIgnore(taskhistory.FieldArchivedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskHistory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskHistoryUpsertBulk) Ignore() *TaskHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskHistoryUpsertBulk) DoNothing() *TaskHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskHistoryCreateBulk.OnConflict
// documentation for more info.
func (u *TaskHistoryUpsertBulk) Update(set func(*TaskHistoryUpsert)) *TaskHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *TaskHistoryUpsertBulk) SetUserID(v string) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TaskHistoryUpsertBulk) UpdateUserID() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateUserID()
	})
}

// SetQuery sets the "query" field.
func (u *TaskHistoryUpsertBulk) SetQuery(v string) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetQuery(v)
	})
}

// UpdateQuery sets the "query" field to the value that was provided on create.
func (u *TaskHistoryUpsertBulk) UpdateQuery() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateQuery()
	})
}

// SetTemplateName sets the "template_name" field.
func (u *TaskHistoryUpsertBulk) SetTemplateName(v string) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetTemplateName(v)
	})
}

// UpdateTemplateName sets the "template_name" field to the value that was provided on create.
func (u *TaskHistoryUpsertBulk) UpdateTemplateName() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateTemplateName()
	})
}

// SetPlan sets the "plan" field.
func (u *TaskHistoryUpsertBulk) SetPlan(v []string) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *TaskHistoryUpsertBulk) UpdatePlan() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdatePlan()
	})
}

// SetCompletedStages sets the "completed_stages" field.
func (u *TaskHistoryUpsertBulk) SetCompletedStages(v []string) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetCompletedStages(v)
	})
}

// UpdateCompletedStages sets the "completed_stages" field to the value that was provided on create.
func (u *TaskHistoryUpsertBulk) UpdateCompletedStages() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateCompletedStages()
	})
}

// ClearCompletedStages clears the value of the "completed_stages" field.
func (u *TaskHistoryUpsertBulk) ClearCompletedStages() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.ClearCompletedStages()
	})
}

// SetStatus sets the "status" field.
func (u *TaskHistoryUpsertBulk) SetStatus(v taskhistory.Status) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskHistoryUpsertBulk) UpdateStatus() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateStatus()
	})
}

// SetResponseSummary sets the "response_summary" field.
func (u *TaskHistoryUpsertBulk) SetResponseSummary(v string) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetResponseSummary(v)
	})
}

// UpdateResponseSummary sets the "response_summary" field to the value that was provided on create.
func (u *TaskHistoryUpsertBulk) UpdateResponseSummary() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateResponseSummary()
	})
}

// ClearResponseSummary clears the value of the "response_summary" field.
func (u *TaskHistoryUpsertBulk) ClearResponseSummary() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.ClearResponseSummary()
	})
}

// SetConfidence sets the "confidence" field.
func (u *TaskHistoryUpsertBulk) SetConfidence(v float64) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *TaskHistoryUpsertBulk) AddConfidence(v float64) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *TaskHistoryUpsertBulk) UpdateConfidence() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *TaskHistoryUpsertBulk) ClearConfidence() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.ClearConfidence()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *TaskHistoryUpsertBulk) SetErrorKind(v string) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *TaskHistoryUpsertBulk) UpdateErrorKind() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *TaskHistoryUpsertBulk) ClearErrorKind() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *TaskHistoryUpsertBulk) SetErrorMessage(v string) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TaskHistoryUpsertBulk) UpdateErrorMessage() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TaskHistoryUpsertBulk) ClearErrorMessage() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.ClearErrorMessage()
	})
}

// SetErrorStage sets the "error_stage" field.
func (u *TaskHistoryUpsertBulk) SetErrorStage(v string) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetErrorStage(v)
	})
}

// UpdateErrorStage sets the "error_stage" field to the value that was provided on create.
func (u *TaskHistoryUpsertBulk) UpdateErrorStage() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateErrorStage()
	})
}

// ClearErrorStage clears the value of the "error_stage" field.
func (u *TaskHistoryUpsertBulk) ClearErrorStage() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.ClearErrorStage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TaskHistoryUpsertBulk) SetStartedAt(v time.Time) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskHistoryUpsertBulk) UpdateStartedAt() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskHistoryUpsertBulk) SetCompletedAt(v time.Time) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskHistoryUpsertBulk) UpdateCompletedAt() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *TaskHistoryUpsertBulk) SetDurationMs(v int64) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *TaskHistoryUpsertBulk) AddDurationMs(v int64) *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *TaskHistoryUpsertBulk) UpdateDurationMs() *TaskHistoryUpsertBulk {
	return u.Update(func(s *TaskHistoryUpsert) {
		s.UpdateDurationMs()
	})
}

// Exec executes the query.
func (u *TaskHistoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskHistoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskHistoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskHistoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

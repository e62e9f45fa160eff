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
	"github.com/ragweave/maestro/ent/predicate"
	"github.com/ragweave/maestro/ent/taskhistory"
)

// TaskHistoryUpdate is the builder for updating TaskHistory entities.
type TaskHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *TaskHistoryMutation
}

// Where appends a list predicates to the TaskHistoryUpdate builder.
func (_u *TaskHistoryUpdate) Where(ps ...predicate.TaskHistory) *TaskHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TaskHistoryUpdate) SetUserID(v string) *TaskHistoryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TaskHistoryUpdate) SetNillableUserID(v *string) *TaskHistoryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *TaskHistoryUpdate) SetQuery(v string) *TaskHistoryUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *TaskHistoryUpdate) SetNillableQuery(v *string) *TaskHistoryUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetTemplateName sets the "template_name" field.
func (_u *TaskHistoryUpdate) SetTemplateName(v string) *TaskHistoryUpdate {
	_u.mutation.SetTemplateName(v)
	return _u
}

// SetNillableTemplateName sets the "template_name" field if the given value is not nil.
func (_u *TaskHistoryUpdate) SetNillableTemplateName(v *string) *TaskHistoryUpdate {
	if v != nil {
		_u.SetTemplateName(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *TaskHistoryUpdate) SetPlan(v []string) *TaskHistoryUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *TaskHistoryUpdate) AppendPlan(v []string) *TaskHistoryUpdate {
	_u.mutation.AppendPlan(v)
	return _u
}

// SetCompletedStages sets the "completed_stages" field.
func (_u *TaskHistoryUpdate) SetCompletedStages(v []string) *TaskHistoryUpdate {
	_u.mutation.SetCompletedStages(v)
	return _u
}

// AppendCompletedStages appends value to the "completed_stages" field.
func (_u *TaskHistoryUpdate) AppendCompletedStages(v []string) *TaskHistoryUpdate {
	_u.mutation.AppendCompletedStages(v)
	return _u
}

// ClearCompletedStages clears the value of the "completed_stages" field.
func (_u *TaskHistoryUpdate) ClearCompletedStages() *TaskHistoryUpdate {
	_u.mutation.ClearCompletedStages()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskHistoryUpdate) SetStatus(v taskhistory.Status) *TaskHistoryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskHistoryUpdate) SetNillableStatus(v *taskhistory.Status) *TaskHistoryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResponseSummary sets the "response_summary" field.
func (_u *TaskHistoryUpdate) SetResponseSummary(v string) *TaskHistoryUpdate {
	_u.mutation.SetResponseSummary(v)
	return _u
}

// SetNillableResponseSummary sets the "response_summary" field if the given value is not nil.
func (_u *TaskHistoryUpdate) SetNillableResponseSummary(v *string) *TaskHistoryUpdate {
	if v != nil {
		_u.SetResponseSummary(*v)
	}
	return _u
}

// ClearResponseSummary clears the value of the "response_summary" field.
func (_u *TaskHistoryUpdate) ClearResponseSummary() *TaskHistoryUpdate {
	_u.mutation.ClearResponseSummary()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TaskHistoryUpdate) SetConfidence(v float64) *TaskHistoryUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TaskHistoryUpdate) SetNillableConfidence(v *float64) *TaskHistoryUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TaskHistoryUpdate) AddConfidence(v float64) *TaskHistoryUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *TaskHistoryUpdate) ClearConfidence() *TaskHistoryUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *TaskHistoryUpdate) SetErrorKind(v string) *TaskHistoryUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *TaskHistoryUpdate) SetNillableErrorKind(v *string) *TaskHistoryUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *TaskHistoryUpdate) ClearErrorKind() *TaskHistoryUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskHistoryUpdate) SetErrorMessage(v string) *TaskHistoryUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskHistoryUpdate) SetNillableErrorMessage(v *string) *TaskHistoryUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskHistoryUpdate) ClearErrorMessage() *TaskHistoryUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorStage sets the "error_stage" field.
func (_u *TaskHistoryUpdate) SetErrorStage(v string) *TaskHistoryUpdate {
	_u.mutation.SetErrorStage(v)
	return _u
}

// SetNillableErrorStage sets the "error_stage" field if the given value is not nil.
func (_u *TaskHistoryUpdate) SetNillableErrorStage(v *string) *TaskHistoryUpdate {
	if v != nil {
		_u.SetErrorStage(*v)
	}
	return _u
}

// ClearErrorStage clears the value of the "error_stage" field.
func (_u *TaskHistoryUpdate) ClearErrorStage() *TaskHistoryUpdate {
	_u.mutation.ClearErrorStage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskHistoryUpdate) SetStartedAt(v time.Time) *TaskHistoryUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskHistoryUpdate) SetNillableStartedAt(v *time.Time) *TaskHistoryUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskHistoryUpdate) SetCompletedAt(v time.Time) *TaskHistoryUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskHistoryUpdate) SetNillableCompletedAt(v *time.Time) *TaskHistoryUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TaskHistoryUpdate) SetDurationMs(v int64) *TaskHistoryUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TaskHistoryUpdate) SetNillableDurationMs(v *int64) *TaskHistoryUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TaskHistoryUpdate) AddDurationMs(v int64) *TaskHistoryUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the TaskHistoryMutation object of the builder.
func (_u *TaskHistoryUpdate) Mutation() *TaskHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskHistoryUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskhistory.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskHistory.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskhistory.Table, taskhistory.Columns, sqlgraph.NewFieldSpec(taskhistory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(taskhistory.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(taskhistory.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateName(); ok {
		_spec.SetField(taskhistory.FieldTemplateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(taskhistory.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskhistory.FieldPlan, value)
		})
	}
	if value, ok := _u.mutation.CompletedStages(); ok {
		_spec.SetField(taskhistory.FieldCompletedStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskhistory.FieldCompletedStages, value)
		})
	}
	if _u.mutation.CompletedStagesCleared() {
		_spec.ClearField(taskhistory.FieldCompletedStages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskhistory.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResponseSummary(); ok {
		_spec.SetField(taskhistory.FieldResponseSummary, field.TypeString, value)
	}
	if _u.mutation.ResponseSummaryCleared() {
		_spec.ClearField(taskhistory.FieldResponseSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(taskhistory.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(taskhistory.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(taskhistory.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(taskhistory.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(taskhistory.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(taskhistory.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(taskhistory.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorStage(); ok {
		_spec.SetField(taskhistory.FieldErrorStage, field.TypeString, value)
	}
	if _u.mutation.ErrorStageCleared() {
		_spec.ClearField(taskhistory.FieldErrorStage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(taskhistory.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskhistory.FieldCompletedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(taskhistory.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(taskhistory.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskHistoryUpdateOne is the builder for updating a single TaskHistory entity.
type TaskHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskHistoryMutation
}

// SetUserID sets the "user_id" field.
func (_u *TaskHistoryUpdateOne) SetUserID(v string) *TaskHistoryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TaskHistoryUpdateOne) SetNillableUserID(v *string) *TaskHistoryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuery sets the "query" field.
func (_u *TaskHistoryUpdateOne) SetQuery(v string) *TaskHistoryUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *TaskHistoryUpdateOne) SetNillableQuery(v *string) *TaskHistoryUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetTemplateName sets the "template_name" field.
func (_u *TaskHistoryUpdateOne) SetTemplateName(v string) *TaskHistoryUpdateOne {
	_u.mutation.SetTemplateName(v)
	return _u
}

// SetNillableTemplateName sets the "template_name" field if the given value is not nil.
func (_u *TaskHistoryUpdateOne) SetNillableTemplateName(v *string) *TaskHistoryUpdateOne {
	if v != nil {
		_u.SetTemplateName(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *TaskHistoryUpdateOne) SetPlan(v []string) *TaskHistoryUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *TaskHistoryUpdateOne) AppendPlan(v []string) *TaskHistoryUpdateOne {
	_u.mutation.AppendPlan(v)
	return _u
}

// SetCompletedStages sets the "completed_stages" field.
func (_u *TaskHistoryUpdateOne) SetCompletedStages(v []string) *TaskHistoryUpdateOne {
	_u.mutation.SetCompletedStages(v)
	return _u
}

// AppendCompletedStages appends value to the "completed_stages" field.
func (_u *TaskHistoryUpdateOne) AppendCompletedStages(v []string) *TaskHistoryUpdateOne {
	_u.mutation.AppendCompletedStages(v)
	return _u
}

// ClearCompletedStages clears the value of the "completed_stages" field.
func (_u *TaskHistoryUpdateOne) ClearCompletedStages() *TaskHistoryUpdateOne {
	_u.mutation.ClearCompletedStages()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskHistoryUpdateOne) SetStatus(v taskhistory.Status) *TaskHistoryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskHistoryUpdateOne) SetNillableStatus(v *taskhistory.Status) *TaskHistoryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResponseSummary sets the "response_summary" field.
func (_u *TaskHistoryUpdateOne) SetResponseSummary(v string) *TaskHistoryUpdateOne {
	_u.mutation.SetResponseSummary(v)
	return _u
}

// SetNillableResponseSummary sets the "response_summary" field if the given value is not nil.
func (_u *TaskHistoryUpdateOne) SetNillableResponseSummary(v *string) *TaskHistoryUpdateOne {
	if v != nil {
		_u.SetResponseSummary(*v)
	}
	return _u
}

// ClearResponseSummary clears the value of the "response_summary" field.
func (_u *TaskHistoryUpdateOne) ClearResponseSummary() *TaskHistoryUpdateOne {
	_u.mutation.ClearResponseSummary()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TaskHistoryUpdateOne) SetConfidence(v float64) *TaskHistoryUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TaskHistoryUpdateOne) SetNillableConfidence(v *float64) *TaskHistoryUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TaskHistoryUpdateOne) AddConfidence(v float64) *TaskHistoryUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *TaskHistoryUpdateOne) ClearConfidence() *TaskHistoryUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *TaskHistoryUpdateOne) SetErrorKind(v string) *TaskHistoryUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *TaskHistoryUpdateOne) SetNillableErrorKind(v *string) *TaskHistoryUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *TaskHistoryUpdateOne) ClearErrorKind() *TaskHistoryUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskHistoryUpdateOne) SetErrorMessage(v string) *TaskHistoryUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskHistoryUpdateOne) SetNillableErrorMessage(v *string) *TaskHistoryUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskHistoryUpdateOne) ClearErrorMessage() *TaskHistoryUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorStage sets the "error_stage" field.
func (_u *TaskHistoryUpdateOne) SetErrorStage(v string) *TaskHistoryUpdateOne {
	_u.mutation.SetErrorStage(v)
	return _u
}

// SetNillableErrorStage sets the "error_stage" field if the given value is not nil.
func (_u *TaskHistoryUpdateOne) SetNillableErrorStage(v *string) *TaskHistoryUpdateOne {
	if v != nil {
		_u.SetErrorStage(*v)
	}
	return _u
}

// ClearErrorStage clears the value of the "error_stage" field.
func (_u *TaskHistoryUpdateOne) ClearErrorStage() *TaskHistoryUpdateOne {
	_u.mutation.ClearErrorStage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskHistoryUpdateOne) SetStartedAt(v time.Time) *TaskHistoryUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskHistoryUpdateOne) SetNillableStartedAt(v *time.Time) *TaskHistoryUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskHistoryUpdateOne) SetCompletedAt(v time.Time) *TaskHistoryUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskHistoryUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskHistoryUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TaskHistoryUpdateOne) SetDurationMs(v int64) *TaskHistoryUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TaskHistoryUpdateOne) SetNillableDurationMs(v *int64) *TaskHistoryUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TaskHistoryUpdateOne) AddDurationMs(v int64) *TaskHistoryUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the TaskHistoryMutation object of the builder.
func (_u *TaskHistoryUpdateOne) Mutation() *TaskHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskHistoryUpdate builder.
func (_u *TaskHistoryUpdateOne) Where(ps ...predicate.TaskHistory) *TaskHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskHistoryUpdateOne) Select(field string, fields ...string) *TaskHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskHistory entity.
func (_u *TaskHistoryUpdateOne) Save(ctx context.Context) (*TaskHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskHistoryUpdateOne) SaveX(ctx context.Context) *TaskHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := taskhistory.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskHistory.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskHistoryUpdateOne) sqlSave(ctx context.Context) (_node *TaskHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskhistory.Table, taskhistory.Columns, sqlgraph.NewFieldSpec(taskhistory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskhistory.FieldID)
		for _, f := range fields {
			if !taskhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskhistory.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(taskhistory.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(taskhistory.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateName(); ok {
		_spec.SetField(taskhistory.FieldTemplateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(taskhistory.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskhistory.FieldPlan, value)
		})
	}
	if value, ok := _u.mutation.CompletedStages(); ok {
		_spec.SetField(taskhistory.FieldCompletedStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskhistory.FieldCompletedStages, value)
		})
	}
	if _u.mutation.CompletedStagesCleared() {
		_spec.ClearField(taskhistory.FieldCompletedStages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taskhistory.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResponseSummary(); ok {
		_spec.SetField(taskhistory.FieldResponseSummary, field.TypeString, value)
	}
	if _u.mutation.ResponseSummaryCleared() {
		_spec.ClearField(taskhistory.FieldResponseSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(taskhistory.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(taskhistory.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(taskhistory.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(taskhistory.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(taskhistory.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(taskhistory.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(taskhistory.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorStage(); ok {
		_spec.SetField(taskhistory.FieldErrorStage, field.TypeString, value)
	}
	if _u.mutation.ErrorStageCleared() {
		_spec.ClearField(taskhistory.FieldErrorStage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(taskhistory.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(taskhistory.FieldCompletedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(taskhistory.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(taskhistory.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &TaskHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

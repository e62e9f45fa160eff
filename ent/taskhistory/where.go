// Code generated by ent, DO NOT EDIT.

package taskhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ragweave/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLTE(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldTaskID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldUserID, v))
}

// Query applies equality check predicate on the "query" field. It's identical to QueryEQ.
func Query(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldQuery, v))
}

// TemplateName applies equality check predicate on the "template_name" field. It's identical to TemplateNameEQ.
func TemplateName(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldTemplateName, v))
}

// ResponseSummary applies equality check predicate on the "response_summary" field. It's identical to ResponseSummaryEQ.
func ResponseSummary(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldResponseSummary, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldConfidence, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorStage applies equality check predicate on the "error_stage" field. It's identical to ErrorStageEQ.
func ErrorStage(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldErrorStage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldDurationMs, v))
}

// ArchivedAt applies equality check predicate on the "archived_at" field. It's identical to ArchivedAtEQ.
func ArchivedAt(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldArchivedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContainsFold(FieldTaskID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContainsFold(FieldUserID, v))
}

// QueryEQ applies the EQ predicate on the "query" field.
func QueryEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldQuery, v))
}

// QueryNEQ applies the NEQ predicate on the "query" field.
func QueryNEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNEQ(FieldQuery, v))
}

// QueryIn applies the In predicate on the "query" field.
func QueryIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIn(FieldQuery, vs...))
}

// QueryNotIn applies the NotIn predicate on the "query" field.
func QueryNotIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotIn(FieldQuery, vs...))
}

// QueryGT applies the GT predicate on the "query" field.
func QueryGT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGT(FieldQuery, v))
}

// QueryGTE applies the GTE predicate on the "query" field.
func QueryGTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGTE(FieldQuery, v))
}

// QueryLT applies the LT predicate on the "query" field.
func QueryLT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLT(FieldQuery, v))
}

// QueryLTE applies the LTE predicate on the "query" field.
func QueryLTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLTE(FieldQuery, v))
}

// QueryContains applies the Contains predicate on the "query" field.
func QueryContains(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContains(FieldQuery, v))
}

// QueryHasPrefix applies the HasPrefix predicate on the "query" field.
func QueryHasPrefix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasPrefix(FieldQuery, v))
}

// QueryHasSuffix applies the HasSuffix predicate on the "query" field.
func QueryHasSuffix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasSuffix(FieldQuery, v))
}

// QueryEqualFold applies the EqualFold predicate on the "query" field.
func QueryEqualFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEqualFold(FieldQuery, v))
}

// QueryContainsFold applies the ContainsFold predicate on the "query" field.
func QueryContainsFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContainsFold(FieldQuery, v))
}

// TemplateNameEQ applies the EQ predicate on the "template_name" field.
func TemplateNameEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldTemplateName, v))
}

// TemplateNameNEQ applies the NEQ predicate on the "template_name" field.
func TemplateNameNEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNEQ(FieldTemplateName, v))
}

// TemplateNameIn applies the In predicate on the "template_name" field.
func TemplateNameIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIn(FieldTemplateName, vs...))
}

// TemplateNameNotIn applies the NotIn predicate on the "template_name" field.
func TemplateNameNotIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotIn(FieldTemplateName, vs...))
}

// TemplateNameGT applies the GT predicate on the "template_name" field.
func TemplateNameGT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGT(FieldTemplateName, v))
}

// TemplateNameGTE applies the GTE predicate on the "template_name" field.
func TemplateNameGTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGTE(FieldTemplateName, v))
}

// TemplateNameLT applies the LT predicate on the "template_name" field.
func TemplateNameLT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLT(FieldTemplateName, v))
}

// TemplateNameLTE applies the LTE predicate on the "template_name" field.
func TemplateNameLTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLTE(FieldTemplateName, v))
}

// TemplateNameContains applies the Contains predicate on the "template_name" field.
func TemplateNameContains(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContains(FieldTemplateName, v))
}

// TemplateNameHasPrefix applies the HasPrefix predicate on the "template_name" field.
func TemplateNameHasPrefix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasPrefix(FieldTemplateName, v))
}

// TemplateNameHasSuffix applies the HasSuffix predicate on the "template_name" field.
func TemplateNameHasSuffix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasSuffix(FieldTemplateName, v))
}

// TemplateNameEqualFold applies the EqualFold predicate on the "template_name" field.
func TemplateNameEqualFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEqualFold(FieldTemplateName, v))
}

// TemplateNameContainsFold applies the ContainsFold predicate on the "template_name" field.
func TemplateNameContainsFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContainsFold(FieldTemplateName, v))
}

// CompletedStagesIsNil applies the IsNil predicate on the "completed_stages" field.
func CompletedStagesIsNil() predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIsNull(FieldCompletedStages))
}

// CompletedStagesNotNil applies the NotNil predicate on the "completed_stages" field.
func CompletedStagesNotNil() predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotNull(FieldCompletedStages))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotIn(FieldStatus, vs...))
}

// ResponseSummaryEQ applies the EQ predicate on the "response_summary" field.
func ResponseSummaryEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldResponseSummary, v))
}

// ResponseSummaryNEQ applies the NEQ predicate on the "response_summary" field.
func ResponseSummaryNEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNEQ(FieldResponseSummary, v))
}

// ResponseSummaryIn applies the In predicate on the "response_summary" field.
func ResponseSummaryIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIn(FieldResponseSummary, vs...))
}

// ResponseSummaryNotIn applies the NotIn predicate on the "response_summary" field.
func ResponseSummaryNotIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotIn(FieldResponseSummary, vs...))
}

// ResponseSummaryGT applies the GT predicate on the "response_summary" field.
func ResponseSummaryGT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGT(FieldResponseSummary, v))
}

// ResponseSummaryGTE applies the GTE predicate on the "response_summary" field.
func ResponseSummaryGTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGTE(FieldResponseSummary, v))
}

// ResponseSummaryLT applies the LT predicate on the "response_summary" field.
func ResponseSummaryLT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLT(FieldResponseSummary, v))
}

// ResponseSummaryLTE applies the LTE predicate on the "response_summary" field.
func ResponseSummaryLTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLTE(FieldResponseSummary, v))
}

// ResponseSummaryContains applies the Contains predicate on the "response_summary" field.
func ResponseSummaryContains(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContains(FieldResponseSummary, v))
}

// ResponseSummaryHasPrefix applies the HasPrefix predicate on the "response_summary" field.
func ResponseSummaryHasPrefix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasPrefix(FieldResponseSummary, v))
}

// ResponseSummaryHasSuffix applies the HasSuffix predicate on the "response_summary" field.
func ResponseSummaryHasSuffix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasSuffix(FieldResponseSummary, v))
}

// ResponseSummaryIsNil applies the IsNil predicate on the "response_summary" field.
func ResponseSummaryIsNil() predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIsNull(FieldResponseSummary))
}

// ResponseSummaryNotNil applies the NotNil predicate on the "response_summary" field.
func ResponseSummaryNotNil() predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotNull(FieldResponseSummary))
}

// ResponseSummaryEqualFold applies the EqualFold predicate on the "response_summary" field.
func ResponseSummaryEqualFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEqualFold(FieldResponseSummary, v))
}

// ResponseSummaryContainsFold applies the ContainsFold predicate on the "response_summary" field.
func ResponseSummaryContainsFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContainsFold(FieldResponseSummary, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotNull(FieldConfidence))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContainsFold(FieldErrorKind, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ErrorStageEQ applies the EQ predicate on the "error_stage" field.
func ErrorStageEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldErrorStage, v))
}

// ErrorStageNEQ applies the NEQ predicate on the "error_stage" field.
func ErrorStageNEQ(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNEQ(FieldErrorStage, v))
}

// ErrorStageIn applies the In predicate on the "error_stage" field.
func ErrorStageIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIn(FieldErrorStage, vs...))
}

// ErrorStageNotIn applies the NotIn predicate on the "error_stage" field.
func ErrorStageNotIn(vs ...string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotIn(FieldErrorStage, vs...))
}

// ErrorStageGT applies the GT predicate on the "error_stage" field.
func ErrorStageGT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGT(FieldErrorStage, v))
}

// ErrorStageGTE applies the GTE predicate on the "error_stage" field.
func ErrorStageGTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGTE(FieldErrorStage, v))
}

// ErrorStageLT applies the LT predicate on the "error_stage" field.
func ErrorStageLT(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLT(FieldErrorStage, v))
}

// ErrorStageLTE applies the LTE predicate on the "error_stage" field.
func ErrorStageLTE(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLTE(FieldErrorStage, v))
}

// ErrorStageContains applies the Contains predicate on the "error_stage" field.
func ErrorStageContains(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContains(FieldErrorStage, v))
}

// ErrorStageHasPrefix applies the HasPrefix predicate on the "error_stage" field.
func ErrorStageHasPrefix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasPrefix(FieldErrorStage, v))
}

// ErrorStageHasSuffix applies the HasSuffix predicate on the "error_stage" field.
func ErrorStageHasSuffix(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldHasSuffix(FieldErrorStage, v))
}

// ErrorStageIsNil applies the IsNil predicate on the "error_stage" field.
func ErrorStageIsNil() predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIsNull(FieldErrorStage))
}

// ErrorStageNotNil applies the NotNil predicate on the "error_stage" field.
func ErrorStageNotNil() predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotNull(FieldErrorStage))
}

// ErrorStageEqualFold applies the EqualFold predicate on the "error_stage" field.
func ErrorStageEqualFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEqualFold(FieldErrorStage, v))
}

// ErrorStageContainsFold applies the ContainsFold predicate on the "error_stage" field.
func ErrorStageContainsFold(v string) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldContainsFold(FieldErrorStage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLTE(FieldCompletedAt, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLTE(FieldDurationMs, v))
}

// ArchivedAtEQ applies the EQ predicate on the "archived_at" field.
func ArchivedAtEQ(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldEQ(FieldArchivedAt, v))
}

// ArchivedAtNEQ applies the NEQ predicate on the "archived_at" field.
func ArchivedAtNEQ(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNEQ(FieldArchivedAt, v))
}

// ArchivedAtIn applies the In predicate on the "archived_at" field.
func ArchivedAtIn(vs ...time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldIn(FieldArchivedAt, vs...))
}

// ArchivedAtNotIn applies the NotIn predicate on the "archived_at" field.
func ArchivedAtNotIn(vs ...time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldNotIn(FieldArchivedAt, vs...))
}

// ArchivedAtGT applies the GT predicate on the "archived_at" field.
func ArchivedAtGT(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGT(FieldArchivedAt, v))
}

// ArchivedAtGTE applies the GTE predicate on the "archived_at" field.
func ArchivedAtGTE(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldGTE(FieldArchivedAt, v))
}

// ArchivedAtLT applies the LT predicate on the "archived_at" field.
func ArchivedAtLT(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLT(FieldArchivedAt, v))
}

// ArchivedAtLTE applies the LTE predicate on the "archived_at" field.
func ArchivedAtLTE(v time.Time) predicate.TaskHistory {
	return predicate.TaskHistory(sql.FieldLTE(FieldArchivedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskHistory) predicate.TaskHistory {
	return predicate.TaskHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskHistory) predicate.TaskHistory {
	return predicate.TaskHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskHistory) predicate.TaskHistory {
	return predicate.TaskHistory(sql.NotPredicates(p))
}

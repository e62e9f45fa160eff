// Code generated by ent, DO NOT EDIT.

package dagtemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ragweave/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldEQ(FieldDescription, v))
}

// ReasoningMaxTokens applies equality check predicate on the "reasoning_max_tokens" field. It's identical to ReasoningMaxTokensEQ.
func ReasoningMaxTokens(v int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldEQ(FieldReasoningMaxTokens, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldContainsFold(FieldDescription, v))
}

// SelectorIsNil applies the IsNil predicate on the "selector" field.
func SelectorIsNil() predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldIsNull(FieldSelector))
}

// SelectorNotNil applies the NotNil predicate on the "selector" field.
func SelectorNotNil() predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldNotNull(FieldSelector))
}

// ReasoningMaxTokensEQ applies the EQ predicate on the "reasoning_max_tokens" field.
func ReasoningMaxTokensEQ(v int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldEQ(FieldReasoningMaxTokens, v))
}

// ReasoningMaxTokensNEQ applies the NEQ predicate on the "reasoning_max_tokens" field.
func ReasoningMaxTokensNEQ(v int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldNEQ(FieldReasoningMaxTokens, v))
}

// ReasoningMaxTokensIn applies the In predicate on the "reasoning_max_tokens" field.
func ReasoningMaxTokensIn(vs ...int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldIn(FieldReasoningMaxTokens, vs...))
}

// ReasoningMaxTokensNotIn applies the NotIn predicate on the "reasoning_max_tokens" field.
func ReasoningMaxTokensNotIn(vs ...int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldNotIn(FieldReasoningMaxTokens, vs...))
}

// ReasoningMaxTokensGT applies the GT predicate on the "reasoning_max_tokens" field.
func ReasoningMaxTokensGT(v int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldGT(FieldReasoningMaxTokens, v))
}

// ReasoningMaxTokensGTE applies the GTE predicate on the "reasoning_max_tokens" field.
func ReasoningMaxTokensGTE(v int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldGTE(FieldReasoningMaxTokens, v))
}

// ReasoningMaxTokensLT applies the LT predicate on the "reasoning_max_tokens" field.
func ReasoningMaxTokensLT(v int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldLT(FieldReasoningMaxTokens, v))
}

// ReasoningMaxTokensLTE applies the LTE predicate on the "reasoning_max_tokens" field.
func ReasoningMaxTokensLTE(v int) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldLTE(FieldReasoningMaxTokens, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DagTemplate {
	return predicate.DagTemplate(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DagTemplate) predicate.DagTemplate {
	return predicate.DagTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DagTemplate) predicate.DagTemplate {
	return predicate.DagTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DagTemplate) predicate.DagTemplate {
	return predicate.DagTemplate(sql.NotPredicates(p))
}

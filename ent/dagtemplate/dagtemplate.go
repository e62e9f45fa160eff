// Code generated by ent, DO NOT EDIT.

package dagtemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dagtemplate type in the database.
	Label = "dag_template"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStages holds the string denoting the stages field in the database.
	FieldStages = "stages"
	// FieldSelector holds the string denoting the selector field in the database.
	FieldSelector = "selector"
	// FieldReasoningMaxTokens holds the string denoting the reasoning_max_tokens field in the database.
	FieldReasoningMaxTokens = "reasoning_max_tokens"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the dagtemplate in the database.
	Table = "dag_templates"
)

// Columns holds all SQL columns for dagtemplate fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldStages,
	FieldSelector,
	FieldReasoningMaxTokens,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultReasoningMaxTokens holds the default value on creation for the "reasoning_max_tokens" field.
	DefaultReasoningMaxTokens int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DagTemplate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByReasoningMaxTokens orders the results by the reasoning_max_tokens field.
func ByReasoningMaxTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoningMaxTokens, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

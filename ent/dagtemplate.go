// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ragweave/maestro/ent/dagtemplate"
)

// DagTemplate is the model entity for the DagTemplate schema.
type DagTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Stages holds the value of the "stages" field.
	Stages []string `json:"stages,omitempty"`
	// Selection predicate over intent signals
	Selector map[string]interface{} `json:"selector,omitempty"`
	// ReasoningMaxTokens holds the value of the "reasoning_max_tokens" field.
	ReasoningMaxTokens int `json:"reasoning_max_tokens,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DagTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dagtemplate.FieldStages, dagtemplate.FieldSelector:
			values[i] = new([]byte)
		case dagtemplate.FieldID, dagtemplate.FieldReasoningMaxTokens:
			values[i] = new(sql.NullInt64)
		case dagtemplate.FieldName, dagtemplate.FieldDescription:
			values[i] = new(sql.NullString)
		case dagtemplate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DagTemplate fields.
func (_m *DagTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dagtemplate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case dagtemplate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case dagtemplate.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case dagtemplate.FieldStages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Stages); err != nil {
					return fmt.Errorf("unmarshal field stages: %w", err)
				}
			}
		case dagtemplate.FieldSelector:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field selector", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Selector); err != nil {
					return fmt.Errorf("unmarshal field selector: %w", err)
				}
			}
		case dagtemplate.FieldReasoningMaxTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning_max_tokens", values[i])
			} else if value.Valid {
				_m.ReasoningMaxTokens = int(value.Int64)
			}
		case dagtemplate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DagTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *DagTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DagTemplate.
// Note that you need to call DagTemplate.Unwrap() before calling this method if this DagTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DagTemplate) Update() *DagTemplateUpdateOne {
	return NewDagTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DagTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DagTemplate) Unwrap() *DagTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DagTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DagTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("DagTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("stages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stages))
	builder.WriteString(", ")
	builder.WriteString("selector=")
	builder.WriteString(fmt.Sprintf("%v", _m.Selector))
	builder.WriteString(", ")
	builder.WriteString("reasoning_max_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReasoningMaxTokens))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DagTemplates is a parsable slice of DagTemplate.
type DagTemplates []*DagTemplate

package archive

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ragweave/maestro/ent"
	"github.com/ragweave/maestro/ent/dagtemplate"
	"github.com/ragweave/maestro/pkg/templates"
)

// SaveTemplates upserts the current template table so custom templates
// survive outside the config file. Builtins are persisted too; on hydrate
// the registry keeps its own definitions for names it already knows.
func (s *Service) SaveTemplates(ctx context.Context, tmpls []*templates.Template) error {
	for _, tmpl := range tmpls {
		var selector map[string]interface{}
		if tmpl.Select != nil {
			raw, err := json.Marshal(tmpl.Select)
			if err != nil {
				return fmt.Errorf("failed to marshal selector for template %s: %w", tmpl.Name, err)
			}
			if err := json.Unmarshal(raw, &selector); err != nil {
				return fmt.Errorf("failed to convert selector for template %s: %w", tmpl.Name, err)
			}
		}

		builder := s.client.DagTemplate.Create().
			SetName(tmpl.Name).
			SetDescription(tmpl.Description).
			SetStages(tmpl.Stages).
			SetReasoningMaxTokens(tmpl.ReasoningMaxTokens)
		if len(selector) > 0 {
			builder.SetSelector(selector)
		}
		err := builder.
			OnConflictColumns(dagtemplate.FieldName).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to persist template %s: %w", tmpl.Name, err)
		}
	}
	return nil
}

// LoadTemplates reads the persisted template table, skipping rows that no
// longer validate so one bad row cannot block startup.
func (s *Service) LoadTemplates(ctx context.Context) ([]*templates.Template, error) {
	rows, err := s.client.DagTemplate.Query().
		Order(ent.Asc(dagtemplate.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	out := make([]*templates.Template, 0, len(rows))
	for _, row := range rows {
		tmpl := &templates.Template{
			Name:               row.Name,
			Description:        row.Description,
			Stages:             row.Stages,
			ReasoningMaxTokens: row.ReasoningMaxTokens,
		}
		if len(row.Selector) > 0 {
			raw, err := json.Marshal(row.Selector)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal selector for template %s: %w", row.Name, err)
			}
			var sel templates.Selector
			if err := json.Unmarshal(raw, &sel); err != nil {
				return nil, fmt.Errorf("failed to decode selector for template %s: %w", row.Name, err)
			}
			tmpl.Select = &sel
		}
		if err := tmpl.Validate(); err != nil {
			continue
		}
		out = append(out, tmpl)
	}
	return out, nil
}

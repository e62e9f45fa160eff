// Package templates holds the DAG template registry: the built-in execution
// plans, optional overrides from templates.yaml, and the selection logic that
// maps intent signals to a template.
package templates

import (
	"fmt"
	"slices"

	"github.com/ragweave/maestro/pkg/models"
)

// Selector describes when a template should be chosen from intent signals.
// A nil Selector means the template is never auto-selected (explicit or
// fallback use only).
type Selector struct {
	// NeedsWeb, when set, must equal the intent's needs_web signal.
	NeedsWeb *bool `yaml:"needs_web,omitempty" json:"needs_web,omitempty"`
	// Complexity, when non-empty, must contain the intent's complexity signal.
	Complexity []string `yaml:"complexity,omitempty" json:"complexity,omitempty"`
}

// Template is a named execution plan.
type Template struct {
	Name        string   `yaml:"-" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Stages      []string `yaml:"stages" json:"stages"`
	// ReasoningMaxTokens overrides the global reasoning budget; 0 keeps it.
	ReasoningMaxTokens int       `yaml:"reasoning_max_tokens,omitempty" json:"reasoning_max_tokens,omitempty"`
	Select             *Selector `yaml:"select,omitempty" json:"select,omitempty"`
}

// Clone returns a deep copy so callers can hold templates across reloads.
func (t *Template) Clone() *Template {
	c := *t
	c.Stages = slices.Clone(t.Stages)
	if t.Select != nil {
		sel := *t.Select
		sel.Complexity = slices.Clone(t.Select.Complexity)
		if t.Select.NeedsWeb != nil {
			v := *t.Select.NeedsWeb
			sel.NeedsWeb = &v
		}
		c.Select = &sel
	}
	return &c
}

var knownStages = map[string]bool{
	models.StageIntent:            true,
	models.StageRetrieval:         true,
	models.StageWebAugmentation:   true,
	models.StageReasoning:         true,
	models.StageModeration:        true,
	models.StageResponsePackaging: true,
}

// Validate checks that the plan is executable: at least one stage, only
// known stages, no repeats, and response_packaging exactly at the end.
func (t *Template) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("template has no name")
	}
	if len(t.Stages) == 0 {
		return fmt.Errorf("template %s has no stages", t.Name)
	}
	seen := make(map[string]bool, len(t.Stages))
	for _, stage := range t.Stages {
		if !knownStages[stage] {
			return fmt.Errorf("template %s references unknown stage %q", t.Name, stage)
		}
		if seen[stage] {
			return fmt.Errorf("template %s repeats stage %q", t.Name, stage)
		}
		seen[stage] = true
	}
	if t.Stages[len(t.Stages)-1] != models.StageResponsePackaging {
		return fmt.Errorf("template %s must end with %s", t.Name, models.StageResponsePackaging)
	}
	if idx := slices.Index(t.Stages, models.StageResponsePackaging); idx != len(t.Stages)-1 {
		return fmt.Errorf("template %s places %s before the end", t.Name, models.StageResponsePackaging)
	}
	return nil
}

// matches reports whether the selector accepts the given intent signals.
func (s *Selector) matches(needsWeb bool, complexity string) bool {
	if s == nil {
		return false
	}
	if s.NeedsWeb != nil && *s.NeedsWeb != needsWeb {
		return false
	}
	if len(s.Complexity) > 0 && !slices.Contains(s.Complexity, complexity) {
		return false
	}
	return true
}

package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragweave/maestro/pkg/models"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry("", "standard")
	require.NoError(t, err)
	return r
}

func TestBuiltinTemplatesAreValid(t *testing.T) {
	r := newTestRegistry(t)
	list := r.List()
	require.Len(t, list, 4)
	for _, tmpl := range list {
		assert.NoError(t, tmpl.Validate())
	}
}

func TestGetUnknownTemplate(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.Get("nonexistent")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestChooseBySignals(t *testing.T) {
	r := newTestRegistry(t)

	cases := []struct {
		name    string
		signals map[string]any
		want    string
	}{
		{
			name:    "low complexity local query",
			signals: map[string]any{models.ResultKeyComplexity: "low", models.ResultKeyNeedsWeb: false},
			want:    "simple_lookup",
		},
		{
			name:    "web needed wins over complexity",
			signals: map[string]any{models.ResultKeyComplexity: "low", models.ResultKeyNeedsWeb: true},
			want:    "web_augmented",
		},
		{
			name:    "high complexity",
			signals: map[string]any{models.ResultKeyComplexity: "high", models.ResultKeyNeedsWeb: false},
			want:    "deep_reasoning",
		},
		{
			name:    "nothing matches falls back to standard",
			signals: map[string]any{models.ResultKeyComplexity: "medium", models.ResultKeyNeedsWeb: false},
			want:    "standard",
		},
		{
			name:    "empty signals fall back to standard",
			signals: map[string]any{},
			want:    "standard",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Choose(tc.signals)
			assert.Equal(t, tc.want, got.Name)
		})
	}
}

func TestChooseHonorsRegisteredSuggestion(t *testing.T) {
	r := newTestRegistry(t)

	got := r.Choose(map[string]any{
		models.ResultKeyTemplateSuggestion: "deep_reasoning",
		models.ResultKeyComplexity:         "low",
	})
	assert.Equal(t, "deep_reasoning", got.Name)

	// Unregistered suggestions are advisory noise, not errors.
	got = r.Choose(map[string]any{
		models.ResultKeyTemplateSuggestion: "made_up",
		models.ResultKeyComplexity:         "high",
	})
	assert.Equal(t, "deep_reasoning", got.Name)
}

func TestYAMLOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	yml := `
templates:
  deep_reasoning:
    reasoning_max_tokens: 16384
  two_step:
    description: retrieval then reasoning
    stages: [retrieval, reasoning, response_packaging]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, templatesFileName), []byte(yml), 0o644))

	r, err := NewRegistry(dir, "standard")
	require.NoError(t, err)

	deep, err := r.Get("deep_reasoning")
	require.NoError(t, err)
	assert.Equal(t, 16384, deep.ReasoningMaxTokens)
	// Fields not overridden keep their builtin values.
	assert.Equal(t, []string{
		models.StageIntent, models.StageRetrieval, models.StageReasoning,
		models.StageModeration, models.StageResponsePackaging,
	}, deep.Stages)
	assert.NotNil(t, deep.Select)

	custom, err := r.Get("two_step")
	require.NoError(t, err)
	assert.Equal(t, []string{models.StageRetrieval, models.StageReasoning, models.StageResponsePackaging}, custom.Stages)
}

func TestReloadRejectsInvalidTemplates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, templatesFileName)

	require.NoError(t, os.WriteFile(path, []byte("templates: {}\n"), 0o644))
	r, err := NewRegistry(dir, "standard")
	require.NoError(t, err)

	// A template that does not end in response_packaging is rejected and
	// the previous table stays live.
	bad := `
templates:
  broken:
    stages: [retrieval, reasoning]
`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))
	assert.Error(t, r.Reload())

	_, err = r.Get("standard")
	assert.NoError(t, err)
	_, err = r.Get("broken")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestHydrateNeverOverridesExisting(t *testing.T) {
	r := newTestRegistry(t)

	r.Hydrate([]*Template{
		{
			Name:   "standard",
			Stages: []string{models.StageRetrieval, models.StageResponsePackaging},
		},
		{
			Name:   "archived_flow",
			Stages: []string{models.StageRetrieval, models.StageResponsePackaging},
		},
	})

	std, err := r.Get("standard")
	require.NoError(t, err)
	assert.Len(t, std.Stages, 5, "builtin must win over archived copy")

	_, err = r.Get("archived_flow")
	assert.NoError(t, err)
}

func TestTemplateValidate(t *testing.T) {
	cases := []struct {
		name string
		tmpl Template
		ok   bool
	}{
		{"valid", Template{Name: "x", Stages: []string{models.StageRetrieval, models.StageResponsePackaging}}, true},
		{"empty stages", Template{Name: "x"}, false},
		{"unknown stage", Template{Name: "x", Stages: []string{"mystery", models.StageResponsePackaging}}, false},
		{"repeat", Template{Name: "x", Stages: []string{models.StageRetrieval, models.StageRetrieval, models.StageResponsePackaging}}, false},
		{"no packaging at end", Template{Name: "x", Stages: []string{models.StageRetrieval}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.tmpl.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

package templates

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/ragweave/maestro/pkg/models"
)

// ErrUnknownTemplate is returned by Get for names not in the registry.
var ErrUnknownTemplate = errors.New("unknown template")

// templatesFileName is the optional override file inside the config dir.
const templatesFileName = "templates.yaml"

// Registry resolves template names and selects templates from intent
// signals. It is safe for concurrent use; Reload swaps the whole table
// atomically under the lock.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]*Template
	order     []string
	configDir string
	fallback  string
}

// NewRegistry builds a registry from the built-in templates plus any
// overrides found in configDir/templates.yaml. fallback names the template
// Choose returns when nothing matches; it must resolve after loading.
func NewRegistry(configDir, fallback string) (*Registry, error) {
	r := &Registry{configDir: configDir, fallback: fallback}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	if _, err := r.Get(fallback); err != nil {
		return nil, fmt.Errorf("fallback template %q is not registered", fallback)
	}
	return r, nil
}

type templatesFile struct {
	Templates map[string]*Template `yaml:"templates"`
}

// Reload rebuilds the table from builtins overlaid with templates.yaml.
// On any error the previous table stays in effect.
func (r *Registry) Reload() error {
	merged := builtinTemplates()
	order := append([]string(nil), builtinOrder...)

	if r.configDir != "" {
		path := filepath.Join(r.configDir, templatesFileName)
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// No overrides; builtins stand.
		case err != nil:
			return fmt.Errorf("failed to read %s: %w", path, err)
		default:
			var file templatesFile
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}
			for name, user := range file.Templates {
				user.Name = name
				if base, ok := merged[name]; ok {
					// User fields win over the builtin they override.
					if err := mergo.Merge(user, base); err != nil {
						return fmt.Errorf("failed to merge template %s: %w", name, err)
					}
				} else {
					order = append(order, name)
				}
				merged[name] = user
			}
		}
	}

	for _, name := range order {
		if err := merged[name].Validate(); err != nil {
			return fmt.Errorf("invalid template: %w", err)
		}
	}

	r.mu.Lock()
	r.templates = merged
	r.order = order
	r.mu.Unlock()
	slog.Info("Template registry loaded", "templates", len(merged))
	return nil
}

// Get returns a copy of the named template.
func (r *Registry) Get(name string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tmpl, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}
	return tmpl.Clone(), nil
}

// List returns all templates in declaration order.
func (r *Registry) List() []*Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Template, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.templates[name].Clone())
	}
	return out
}

// Choose picks a template from intent signals. A registered
// template_suggestion wins outright; otherwise the first template whose
// selector accepts the signals is taken in declaration order, and the
// fallback covers the rest. Unregistered suggestions are ignored, not
// errors: the intent stage is advisory.
func (r *Registry) Choose(signals map[string]any) *Template {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if suggestion, ok := signals[models.ResultKeyTemplateSuggestion].(string); ok {
		if tmpl, found := r.templates[suggestion]; found {
			return tmpl.Clone()
		}
	}

	needsWeb, _ := signals[models.ResultKeyNeedsWeb].(bool)
	complexity, _ := signals[models.ResultKeyComplexity].(string)
	for _, name := range r.order {
		if r.templates[name].Select.matches(needsWeb, complexity) {
			return r.templates[name].Clone()
		}
	}
	return r.templates[r.fallback].Clone()
}

// Hydrate registers templates recovered from the archive that are not
// already present. Builtin and file-based definitions always win.
func (r *Registry) Hydrate(tmpls []*Template) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tmpl := range tmpls {
		if _, exists := r.templates[tmpl.Name]; exists {
			continue
		}
		if err := tmpl.Validate(); err != nil {
			slog.Warn("Skipping invalid archived template", "template", tmpl.Name, "error", err)
			continue
		}
		r.templates[tmpl.Name] = tmpl.Clone()
		r.order = append(r.order, tmpl.Name)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaults(t *testing.T) {
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 300*time.Second, cfg.Coordinator.StageTimeout)
	assert.Equal(t, 600*time.Second, cfg.Coordinator.TaskTTL)
	assert.Equal(t, 1, cfg.Coordinator.MaxStageRetries)
	assert.Equal(t, "standard", cfg.Coordinator.DefaultTemplate)
	assert.Equal(t, 8, cfg.Broker.ConsumerPrefetch)
	assert.Equal(t, 7, cfg.Archive.RetentionDays)
}

func TestInitializeYAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
coordinator:
  stage_timeout: 30s
  default_template: simple_lookup
broker:
  consumer_prefetch: 4
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "maestro.yaml"), []byte(yaml), 0o644))

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Coordinator.StageTimeout)
	assert.Equal(t, "simple_lookup", cfg.Coordinator.DefaultTemplate)
	assert.Equal(t, 4, cfg.Broker.ConsumerPrefetch)
	// Untouched values keep their defaults.
	assert.Equal(t, 600*time.Second, cfg.Coordinator.TaskTTL)
}

func TestInitializeEnvWinsOverYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := "coordinator:\n  stage_timeout: 30s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "maestro.yaml"), []byte(yaml), 0o644))

	t.Setenv("STAGE_TIMEOUT_SECONDS", "5")
	t.Setenv("DEFAULT_TEMPLATE", "web_augmented")

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Coordinator.StageTimeout)
	// The redelivery lease follows the stage timeout.
	assert.Equal(t, 5*time.Second, cfg.Broker.AckWait)
	assert.Equal(t, "web_augmented", cfg.Coordinator.DefaultTemplate)
}

func TestInitializeRejectsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "maestro.yaml"), []byte("{not yaml"), 0o644))

	_, err := Initialize(dir)
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := defaults()
	cfg.Coordinator.StageTimeout = 0
	assert.Error(t, cfg.Validate())

	cfg = defaults()
	cfg.LLM.ModerationThreshold = 1.5
	assert.Error(t, cfg.Validate())

	cfg = defaults()
	cfg.Coordinator.DefaultTemplate = ""
	assert.Error(t, cfg.Validate())
}

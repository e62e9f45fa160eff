package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Defaults mirror the documented configuration surface: 300s stage timeout,
// 600s live record TTL, one in-stage retry, prefetch of 8, 7-day archive
// retention.
func defaults() *Config {
	return &Config{
		Coordinator: &CoordinatorConfig{
			StageTimeout:    300 * time.Second,
			TaskTTL:         600 * time.Second,
			MaxStageRetries: 1,
			DefaultTemplate: "standard",
		},
		Broker: &BrokerConfig{
			URL:               "nats://localhost:4222",
			ConsumerPrefetch:  8,
			AckWait:           300 * time.Second,
			HeartbeatInterval: 15 * time.Second,
		},
		Store: &StoreConfig{
			Addr: "localhost:6379",
		},
		Archive: &ArchiveConfig{
			RetentionDays:   7,
			CleanupInterval: time.Hour,
		},
		LLM: &LLMConfig{
			Model:               "gpt-4o-mini",
			ReasoningMaxTokens:  2048,
			ModerationThreshold: 0.6,
		},
	}
}

// Initialize loads configuration: defaults, then maestro.yaml overrides from
// configDir (if present), then environment variables. Environment wins.
func Initialize(configDir string) (*Config, error) {
	cfg := defaults()

	if err := applyYAML(cfg, filepath.Join(configDir, "maestro.yaml")); err != nil {
		return nil, err
	}
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	slog.Info("Configuration initialized",
		"stage_timeout", cfg.Coordinator.StageTimeout,
		"task_ttl", cfg.Coordinator.TaskTTL,
		"default_template", cfg.Coordinator.DefaultTemplate,
		"broker_url", cfg.Broker.URL)
	return cfg, nil
}

// yamlConfig mirrors Config for the overrides file. Durations are strings
// ("30s", "5m") and parsed explicitly, since yaml.v3 has no native
// time.Duration support.
type yamlConfig struct {
	Coordinator struct {
		StageTimeout    string `yaml:"stage_timeout"`
		TaskTTL         string `yaml:"task_ttl"`
		MaxStageRetries *int   `yaml:"max_stage_retries"`
		DefaultTemplate string `yaml:"default_template"`
	} `yaml:"coordinator"`
	Broker struct {
		URL               string `yaml:"url"`
		ConsumerPrefetch  *int   `yaml:"consumer_prefetch"`
		AckWait           string `yaml:"ack_wait"`
		HeartbeatInterval string `yaml:"heartbeat_interval"`
	} `yaml:"broker"`
	Store   *StoreConfig `yaml:"store"`
	Archive struct {
		RetentionDays   *int   `yaml:"retention_days"`
		CleanupInterval string `yaml:"cleanup_interval"`
	} `yaml:"archive"`
	LLM struct {
		BaseURL             string   `yaml:"base_url"`
		Model               string   `yaml:"model"`
		ReasoningMaxTokens  *int     `yaml:"reasoning_max_tokens"`
		ModerationThreshold *float64 `yaml:"moderation_threshold"`
	} `yaml:"llm"`
}

// applyYAML merges an optional overrides file onto cfg. A missing file is
// not an error.
func applyYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(data, &y); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := setDuration(&cfg.Coordinator.StageTimeout, y.Coordinator.StageTimeout); err != nil {
		return fmt.Errorf("%s: coordinator.stage_timeout: %w", path, err)
	}
	if err := setDuration(&cfg.Coordinator.TaskTTL, y.Coordinator.TaskTTL); err != nil {
		return fmt.Errorf("%s: coordinator.task_ttl: %w", path, err)
	}
	if y.Coordinator.MaxStageRetries != nil {
		cfg.Coordinator.MaxStageRetries = *y.Coordinator.MaxStageRetries
	}
	if y.Coordinator.DefaultTemplate != "" {
		cfg.Coordinator.DefaultTemplate = y.Coordinator.DefaultTemplate
	}

	if y.Broker.URL != "" {
		cfg.Broker.URL = y.Broker.URL
	}
	if y.Broker.ConsumerPrefetch != nil {
		cfg.Broker.ConsumerPrefetch = *y.Broker.ConsumerPrefetch
	}
	if err := setDuration(&cfg.Broker.AckWait, y.Broker.AckWait); err != nil {
		return fmt.Errorf("%s: broker.ack_wait: %w", path, err)
	}
	if err := setDuration(&cfg.Broker.HeartbeatInterval, y.Broker.HeartbeatInterval); err != nil {
		return fmt.Errorf("%s: broker.heartbeat_interval: %w", path, err)
	}

	if y.Store != nil {
		if err := mergo.Merge(cfg.Store, y.Store, mergo.WithOverride); err != nil {
			return fmt.Errorf("failed to merge %s: %w", path, err)
		}
	}

	if y.Archive.RetentionDays != nil {
		cfg.Archive.RetentionDays = *y.Archive.RetentionDays
	}
	if err := setDuration(&cfg.Archive.CleanupInterval, y.Archive.CleanupInterval); err != nil {
		return fmt.Errorf("%s: archive.cleanup_interval: %w", path, err)
	}

	if y.LLM.BaseURL != "" {
		cfg.LLM.BaseURL = y.LLM.BaseURL
	}
	if y.LLM.Model != "" {
		cfg.LLM.Model = y.LLM.Model
	}
	if y.LLM.ReasoningMaxTokens != nil {
		cfg.LLM.ReasoningMaxTokens = *y.LLM.ReasoningMaxTokens
	}
	if y.LLM.ModerationThreshold != nil {
		cfg.LLM.ModerationThreshold = *y.LLM.ModerationThreshold
	}
	return nil
}

// setDuration parses a non-empty duration string into dst.
func setDuration(dst *time.Duration, s string) error {
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := envSeconds("STAGE_TIMEOUT_SECONDS"); v > 0 {
		cfg.Coordinator.StageTimeout = v
		cfg.Broker.AckWait = v
	}
	if v := envSeconds("TASK_TTL_SECONDS"); v > 0 {
		cfg.Coordinator.TaskTTL = v
	}
	if v, ok := envInt("MAX_STAGE_RETRIES"); ok && v >= 0 {
		cfg.Coordinator.MaxStageRetries = v
	}
	if v, ok := envInt("CONSUMER_PREFETCH"); ok && v > 0 {
		cfg.Broker.ConsumerPrefetch = v
	}
	if v, ok := envInt("ARCHIVE_RETENTION_DAYS"); ok && v > 0 {
		cfg.Archive.RetentionDays = v
	}
	if v := os.Getenv("DEFAULT_TEMPLATE"); v != "" {
		cfg.Coordinator.DefaultTemplate = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.Broker.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Store.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Store.Password = v
	}
	if v, ok := envInt("REDIS_DB"); ok {
		cfg.Store.DB = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v, ok := envInt("REASONING_MAX_TOKENS"); ok && v > 0 {
		cfg.LLM.ReasoningMaxTokens = v
	}
	if v := os.Getenv("MODERATION_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.LLM.ModerationThreshold = f
		}
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring non-integer environment value", "key", key, "value", v)
		return 0, false
	}
	return n, true
}

func envSeconds(key string) time.Duration {
	n, ok := envInt(key)
	if !ok || n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}

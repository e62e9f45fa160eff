// Package config loads and validates maestro configuration from environment
// variables and an optional maestro.yaml overrides file in the config
// directory.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration shared by the control plane and agents.
type Config struct {
	Coordinator *CoordinatorConfig `yaml:"coordinator"`
	Broker      *BrokerConfig      `yaml:"broker"`
	Store       *StoreConfig       `yaml:"store"`
	Archive     *ArchiveConfig     `yaml:"archive"`
	LLM         *LLMConfig         `yaml:"llm"`
}

// CoordinatorConfig tunes stage sequencing, timeouts and retries.
type CoordinatorConfig struct {
	// StageTimeout is the per-stage completion deadline.
	StageTimeout time.Duration `yaml:"stage_timeout"`
	// TaskTTL is the live-record retention in the task store.
	TaskTTL time.Duration `yaml:"task_ttl"`
	// MaxStageRetries bounds in-stage redispatch attempts.
	MaxStageRetries int `yaml:"max_stage_retries"`
	// DefaultTemplate is used when no template is given and selection fails.
	DefaultTemplate string `yaml:"default_template"`
}

// BrokerConfig holds NATS connection and consumer settings.
type BrokerConfig struct {
	URL string `yaml:"url"`
	// ConsumerPrefetch caps in-flight messages per stage consumer.
	ConsumerPrefetch int `yaml:"consumer_prefetch"`
	// AckWait is the redelivery lease for an unacknowledged stage message.
	AckWait time.Duration `yaml:"ack_wait"`
	// HeartbeatInterval paces agent health heartbeats.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`
}

// StoreConfig holds Redis connection settings for the live task store.
type StoreConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// ArchiveConfig tunes the relational archive retention sweeper.
type ArchiveConfig struct {
	RetentionDays   int           `yaml:"retention_days"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// LLMConfig configures the model client used by the reasoning, intent and
// moderation stage bodies. Threshold and token budgets are policy values,
// deliberately configurable rather than designed-in.
type LLMConfig struct {
	APIKey              string  `yaml:"-"`
	BaseURL             string  `yaml:"base_url"`
	Model               string  `yaml:"model"`
	ReasoningMaxTokens  int     `yaml:"reasoning_max_tokens"`
	ModerationThreshold float64 `yaml:"moderation_threshold"`
}

// Validate checks cross-field constraints after load and merge.
func (c *Config) Validate() error {
	if c.Coordinator.StageTimeout <= 0 {
		return fmt.Errorf("coordinator.stage_timeout must be positive, got %v", c.Coordinator.StageTimeout)
	}
	if c.Coordinator.TaskTTL <= 0 {
		return fmt.Errorf("coordinator.task_ttl must be positive, got %v", c.Coordinator.TaskTTL)
	}
	if c.Coordinator.MaxStageRetries < 0 {
		return fmt.Errorf("coordinator.max_stage_retries must not be negative, got %d", c.Coordinator.MaxStageRetries)
	}
	if c.Coordinator.DefaultTemplate == "" {
		return fmt.Errorf("coordinator.default_template must not be empty")
	}
	if c.Broker.ConsumerPrefetch <= 0 {
		return fmt.Errorf("broker.consumer_prefetch must be positive, got %d", c.Broker.ConsumerPrefetch)
	}
	if c.Broker.AckWait <= 0 {
		return fmt.Errorf("broker.ack_wait must be positive, got %v", c.Broker.AckWait)
	}
	if c.Archive.RetentionDays <= 0 {
		return fmt.Errorf("archive.retention_days must be positive, got %d", c.Archive.RetentionDays)
	}
	if c.LLM.ModerationThreshold < 0 || c.LLM.ModerationThreshold > 1 {
		return fmt.Errorf("llm.moderation_threshold must be in [0,1], got %v", c.LLM.ModerationThreshold)
	}
	return nil
}

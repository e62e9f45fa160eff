// Maestro agent worker — runs one or more specialist stage agents against
// the shared broker and task store.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/ragweave/maestro/pkg/agent"
	"github.com/ragweave/maestro/pkg/agent/bodies"
	"github.com/ragweave/maestro/pkg/broker"
	"github.com/ragweave/maestro/pkg/config"
	"github.com/ragweave/maestro/pkg/llm"
	"github.com/ragweave/maestro/pkg/models"
	"github.com/ragweave/maestro/pkg/search"
	"github.com/ragweave/maestro/pkg/taskstore"
	"github.com/ragweave/maestro/pkg/version"
)

// defaultStages is every stage this binary can host. The packaging stage is
// not here: it runs in-process in the control plane.
var defaultStages = []string{
	models.StageIntent,
	models.StageRetrieval,
	models.StageWebAugmentation,
	models.StageReasoning,
	models.StageModeration,
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolveAgentName determines the agent identifier for heartbeats.
// Priority: AGENT_NAME env > HOSTNAME env > "agent-local"
func resolveAgentName() string {
	if name := os.Getenv("AGENT_NAME"); name != "" {
		return name
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "agent-local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	stagesFlag := flag.String("stages",
		getEnv("AGENT_STAGES", strings.Join(defaultStages, ",")),
		"Comma-separated stages to host")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	agentName := resolveAgentName()
	stages := splitStages(*stagesFlag)
	if len(stages) == 0 {
		slog.Error("No stages requested", "flag", *stagesFlag)
		os.Exit(1)
	}

	slog.Info("Starting maestro agent",
		"version", version.Full(), "agent", agentName, "stages", stages)

	ctx := context.Background()

	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// Task store
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Store.Addr,
		Password: cfg.Store.Password,
		DB:       cfg.Store.DB,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("Error closing Redis client", "error", err)
		}
	}()
	store := taskstore.New(rdb, cfg.Coordinator.TaskTTL)
	if err := store.Ping(ctx); err != nil {
		slog.Error("Failed to reach Redis", "addr", cfg.Store.Addr, "error", err)
		os.Exit(1)
	}

	// Broker
	natsBroker, err := broker.ConnectNATS(ctx, broker.NATSOptions{
		URL:     cfg.Broker.URL,
		AckWait: cfg.Broker.AckWait,
		Name:    agentName,
	})
	if err != nil {
		slog.Error("Failed to connect to NATS", "url", cfg.Broker.URL, "error", err)
		os.Exit(1)
	}
	defer natsBroker.Close()

	// Model client. Intent and moderation degrade to heuristics without one;
	// reasoning cannot.
	var llmClient llm.Client
	if cfg.LLM.APIKey != "" {
		client, err := llm.NewOpenAI(llm.Options{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
		})
		if err != nil {
			slog.Error("Failed to build model client", "error", err)
			os.Exit(1)
		}
		llmClient = client
		slog.Info("Model client initialized", "model", cfg.LLM.Model)
	} else {
		slog.Warn("No OPENAI_API_KEY set, model-backed stages run on heuristics only")
	}

	body, err := buildBodies(cfg, llmClient, stages)
	if err != nil {
		slog.Error("Failed to build stage bodies", "error", err)
		os.Exit(1)
	}

	runtimes := make([]*agent.Runtime, 0, len(body))
	for _, b := range body {
		rt := agent.NewRuntime(agent.Config{
			Name:              agentName + "-" + b.Stage(),
			Concurrency:       cfg.Broker.ConsumerPrefetch,
			StageTimeout:      cfg.Coordinator.StageTimeout,
			HeartbeatInterval: cfg.Broker.HeartbeatInterval,
		}, b, store, natsBroker)
		if err := rt.Start(ctx); err != nil {
			slog.Error("Failed to start agent runtime", "stage", b.Stage(), "error", err)
			os.Exit(1)
		}
		runtimes = append(runtimes, rt)
	}

	slog.Info("Maestro agent started", "agent", agentName, "runtimes", len(runtimes))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// Stop consumers first so in-flight stage work finishes before the
	// broker connection drains.
	for _, rt := range runtimes {
		rt.Stop()
	}

	slog.Info("Shutdown complete")
}

// buildBodies constructs the requested specialist bodies with their external
// dependencies wired from configuration.
func buildBodies(cfg *config.Config, llmClient llm.Client, stages []string) ([]agent.Body, error) {
	built := make([]agent.Body, 0, len(stages))
	for _, stage := range stages {
		switch stage {
		case models.StageIntent:
			built = append(built, bodies.NewIntent(llmClient))
		case models.StageRetrieval:
			indexURL := getEnv("VECTOR_INDEX_URL", "http://localhost:9200")
			searcher := search.NewClient(indexURL, os.Getenv("VECTOR_INDEX_TOKEN"))
			built = append(built, bodies.NewRetrieval(searcher))
		case models.StageWebAugmentation:
			fetchURL := getEnv("WEB_FETCH_URL", "http://localhost:9300")
			fetcher := search.NewWebFetcher(fetchURL, time.Minute)
			built = append(built, bodies.NewWebAugment(fetcher))
		case models.StageReasoning:
			if llmClient == nil {
				return nil, errors.New("reasoning stage requires OPENAI_API_KEY")
			}
			built = append(built, bodies.NewReasoning(llmClient, cfg.LLM.ReasoningMaxTokens))
		case models.StageModeration:
			built = append(built, bodies.NewModeration(llmClient, cfg.LLM.ModerationThreshold))
		default:
			return nil, fmt.Errorf("unknown stage %q", stage)
		}
	}
	return built, nil
}

func splitStages(s string) []string {
	var stages []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			stages = append(stages, part)
		}
	}
	return stages
}

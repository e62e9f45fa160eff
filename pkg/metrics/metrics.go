// Package metrics exposes the Prometheus instruments shared by the
// coordinator and agents. Collectors are registered on the default
// registry; the API serves them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TasksCreated counts accepted task submissions.
	TasksCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maestro_tasks_created_total",
		Help: "Tasks accepted by the coordinator.",
	})

	// TasksFinished counts tasks reaching a terminal status.
	TasksFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maestro_tasks_finished_total",
		Help: "Tasks reaching a terminal status, by status.",
	}, []string{"status"})

	// ActiveTasks tracks execute loops currently running.
	ActiveTasks = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "maestro_active_tasks",
		Help: "Task execute loops currently registered.",
	})

	// StageDuration observes per-stage wall time by outcome.
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "maestro_stage_duration_seconds",
		Help:    "Stage execution duration, by stage and outcome.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
	}, []string{"stage", "outcome"})

	// StageRetries counts redispatches after stage failure or timeout.
	StageRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maestro_stage_retries_total",
		Help: "Stage redispatches after a failed or timed-out attempt.",
	}, []string{"stage"})

	// LLMCalls counts model invocations by stage.
	LLMCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "maestro_llm_calls_total",
		Help: "Language-model calls, by stage and outcome.",
	}, []string{"stage", "outcome"})
)

package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/ragweave/maestro/ent"
	"github.com/ragweave/maestro/ent/agentperformance"
	"github.com/ragweave/maestro/ent/stagetransition"
	"github.com/ragweave/maestro/ent/taskhistory"
)

// TaskAnalytics aggregates archived tasks over a trailing window.
type TaskAnalytics struct {
	Window        string           `json:"window"`
	Total         int              `json:"total"`
	ByStatus      map[string]int   `json:"by_status"`
	AvgDurationMS float64          `json:"avg_duration_ms"`
	AvgConfidence float64          `json:"avg_confidence"`
	ByTemplate    []TemplateUsage  `json:"by_template"`
	StageRetries  map[string]int   `json:"stage_retries"`
}

// TemplateUsage counts archived tasks per DAG template.
type TemplateUsage struct {
	Template      string  `json:"template"`
	Count         int     `json:"count"`
	AvgDurationMS float64 `json:"avg_duration_ms"`
}

// AgentStats summarizes one agent's execution samples over a window.
type AgentStats struct {
	Agent         string  `json:"agent"`
	Stage         string  `json:"stage"`
	Samples       int     `json:"samples"`
	Successes     int     `json:"successes"`
	SuccessRate   float64 `json:"success_rate"`
	AvgDurationMS float64 `json:"avg_duration_ms"`
}

// TaskAnalytics computes the task dashboard aggregates for tasks completed
// within the trailing window.
func (s *Service) TaskAnalytics(ctx context.Context, window time.Duration) (*TaskAnalytics, error) {
	cutoff := time.Now().Add(-window)
	out := &TaskAnalytics{
		Window:       window.String(),
		ByStatus:     make(map[string]int),
		StageRetries: make(map[string]int),
	}

	var statusRows []struct {
		Status string  `json:"status"`
		Count  int     `json:"count"`
		AvgMS  float64 `json:"avg_ms"`
	}
	err := s.client.TaskHistory.Query().
		Where(taskhistory.CompletedAtGTE(cutoff)).
		GroupBy(taskhistory.FieldStatus).
		Aggregate(
			ent.Count(),
			ent.As(ent.Mean(taskhistory.FieldDurationMs), "avg_ms"),
		).
		Scan(ctx, &statusRows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tasks by status: %w", err)
	}

	var weightedMS float64
	for _, row := range statusRows {
		out.ByStatus[row.Status] = row.Count
		out.Total += row.Count
		weightedMS += row.AvgMS * float64(row.Count)
	}
	if out.Total > 0 {
		out.AvgDurationMS = weightedMS / float64(out.Total)
	}

	// The mean over zero rows comes back NULL, hence the pointer.
	var confRows []struct {
		AvgConf *float64 `json:"avg_conf"`
	}
	err = s.client.TaskHistory.Query().
		Where(
			taskhistory.CompletedAtGTE(cutoff),
			taskhistory.StatusEQ(taskhistory.StatusComplete),
			taskhistory.ConfidenceNotNil(),
		).
		Aggregate(ent.As(ent.Mean(taskhistory.FieldConfidence), "avg_conf")).
		Scan(ctx, &confRows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate confidence: %w", err)
	}
	if len(confRows) > 0 && confRows[0].AvgConf != nil {
		out.AvgConfidence = *confRows[0].AvgConf
	}

	var templateRows []struct {
		Template string  `json:"template_name"`
		Count    int     `json:"count"`
		AvgMS    float64 `json:"avg_ms"`
	}
	err = s.client.TaskHistory.Query().
		Where(taskhistory.CompletedAtGTE(cutoff)).
		GroupBy(taskhistory.FieldTemplateName).
		Aggregate(
			ent.Count(),
			ent.As(ent.Mean(taskhistory.FieldDurationMs), "avg_ms"),
		).
		Scan(ctx, &templateRows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tasks by template: %w", err)
	}
	for _, row := range templateRows {
		out.ByTemplate = append(out.ByTemplate, TemplateUsage{
			Template:      row.Template,
			Count:         row.Count,
			AvgDurationMS: row.AvgMS,
		})
	}

	// A retry shows up as a transition with attempt > 1.
	var retryRows []struct {
		Stage string `json:"stage"`
		Count int    `json:"count"`
	}
	err = s.client.StageTransition.Query().
		Where(
			stagetransition.RecordedAtGTE(cutoff),
			stagetransition.AttemptGT(1),
		).
		GroupBy(stagetransition.FieldStage).
		Aggregate(ent.Count()).
		Scan(ctx, &retryRows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stage retries: %w", err)
	}
	for _, row := range retryRows {
		out.StageRetries[row.Stage] = row.Count
	}

	return out, nil
}

// AgentAnalytics computes per-agent execution stats over the trailing window.
func (s *Service) AgentAnalytics(ctx context.Context, window time.Duration) ([]AgentStats, error) {
	cutoff := time.Now().Add(-window)

	var rows []struct {
		Agent string  `json:"agent"`
		Stage string  `json:"stage"`
		Count int     `json:"count"`
		AvgMS float64 `json:"avg_ms"`
	}
	err := s.client.AgentPerformance.Query().
		Where(agentperformance.RecordedAtGTE(cutoff)).
		GroupBy(agentperformance.FieldAgent, agentperformance.FieldStage).
		Aggregate(
			ent.Count(),
			ent.As(ent.Mean(agentperformance.FieldDurationMs), "avg_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate agent performance: %w", err)
	}

	var successRows []struct {
		Agent string `json:"agent"`
		Stage string `json:"stage"`
		Count int    `json:"count"`
	}
	err = s.client.AgentPerformance.Query().
		Where(
			agentperformance.RecordedAtGTE(cutoff),
			agentperformance.SuccessEQ(true),
		).
		GroupBy(agentperformance.FieldAgent, agentperformance.FieldStage).
		Aggregate(ent.Count()).
		Scan(ctx, &successRows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate agent successes: %w", err)
	}
	successes := make(map[[2]string]int, len(successRows))
	for _, row := range successRows {
		successes[[2]string{row.Agent, row.Stage}] = row.Count
	}

	stats := make([]AgentStats, 0, len(rows))
	for _, row := range rows {
		ok := successes[[2]string{row.Agent, row.Stage}]
		st := AgentStats{
			Agent:         row.Agent,
			Stage:         row.Stage,
			Samples:       row.Count,
			Successes:     ok,
			AvgDurationMS: row.AvgMS,
		}
		if row.Count > 0 {
			st.SuccessRate = float64(ok) / float64(row.Count)
		}
		stats = append(stats, st)
	}
	return stats, nil
}

package archive

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ragweave/maestro/ent/agentperformance"
	"github.com/ragweave/maestro/ent/stagetransition"
	"github.com/ragweave/maestro/ent/taskhistory"
	"github.com/ragweave/maestro/pkg/config"
)

// Sweeper periodically enforces the archive retention policy:
//   - Deletes task history rows past their retention window
//   - Deletes stage transitions and agent performance samples past it
//
// All deletes are idempotent and safe to run from multiple pods.
type Sweeper struct {
	config  *config.ArchiveConfig
	service *Service

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a retention sweeper over the archive.
func NewSweeper(cfg *config.ArchiveConfig, service *Service) *Sweeper {
	return &Sweeper{
		config:  cfg,
		service: service,
	}
}

// Start launches the background sweep loop.
func (s *Sweeper) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Archive sweeper started",
		"retention_days", s.config.RetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Archive sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(_ context.Context) {
	count, err := s.service.DeleteExpired(context.Background(), s.config.RetentionDays)
	if err != nil {
		slog.Error("Retention: archive sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired archive rows", "count", count)
	}
}

// DeleteExpired removes archive rows older than the retention window and
// returns the total number deleted.
func (s *Service) DeleteExpired(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	total := 0
	n, err := s.client.TaskHistory.Delete().
		Where(taskhistory.ArchivedAtLT(cutoff)).
		Exec(deleteCtx)
	if err != nil {
		return total, fmt.Errorf("failed to delete expired task histories: %w", err)
	}
	total += n

	n, err = s.client.StageTransition.Delete().
		Where(stagetransition.RecordedAtLT(cutoff)).
		Exec(deleteCtx)
	if err != nil {
		return total, fmt.Errorf("failed to delete expired transitions: %w", err)
	}
	total += n

	n, err = s.client.AgentPerformance.Delete().
		Where(agentperformance.RecordedAtLT(cutoff)).
		Exec(deleteCtx)
	if err != nil {
		return total, fmt.Errorf("failed to delete expired agent samples: %w", err)
	}
	total += n

	return total, nil
}

package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/reelworks/reelpipe/ent"
	"github.com/reelworks/reelpipe/ent/task"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for claims whose worker stopped
// heartbeating. All workers run this independently; the release is a
// conditional update, so double recovery is harmless.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans releases in-flight tasks with stale heartbeats
// back to queued. The ledger is untouched: completed sub-items survive,
// and the next claim resumes where the dead worker stopped.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Task.Query().
		Where(
			task.StatusIn(inFlightStatuses()...),
			task.LastHeartbeatAtNotNil(),
			task.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	recovered := 0
	for _, t := range orphans {
		if err := p.releaseOrphan(ctx, t); err != nil {
			slog.Error("Failed to release orphaned task", "task_id", t.ID, "error", err)
			continue
		}
		recovered++
	}

	if recovered > 0 {
		slog.Warn("Released orphaned tasks back to queue", "count", recovered)
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// releaseOrphan returns a single orphaned task to queued. Conditional on
// the status still matching, so a concurrent recovery or a late worker
// write turns this into a no-op.
func (p *WorkerPool) releaseOrphan(ctx context.Context, t *ent.Task) error {
	claimedBy := ""
	if t.ClaimedBy != nil {
		claimedBy = *t.ClaimedBy
	}

	n, err := p.client.Task.Update().
		Where(task.IDEQ(t.ID), task.StatusEQ(t.Status)).
		SetStatus(task.StatusQueued).
		ClearClaimedBy().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	slog.Warn("Orphaned task released",
		"task_id", t.ID,
		"was_status", string(t.Status),
		"dead_worker", claimedBy)
	return nil
}

// CleanupStartupOrphans releases tasks still claimed by this worker id
// from a previous run that crashed. Called once during startup, before
// the pool begins claiming.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, workerID string) error {
	orphans, err := client.Task.Query().
		Where(
			task.StatusIn(inFlightStatuses()...),
			task.ClaimedByEQ(workerID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"worker_id", workerID, "count", len(orphans))

	for _, t := range orphans {
		_, err := client.Task.Update().
			Where(task.IDEQ(t.ID), task.StatusEQ(t.Status)).
			SetStatus(task.StatusQueued).
			ClearClaimedBy().
			ClearLastHeartbeatAt().
			Save(ctx)
		if err != nil {
			slog.Error("Failed to release startup orphan", "task_id", t.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan released", "task_id", t.ID)
	}

	return nil
}

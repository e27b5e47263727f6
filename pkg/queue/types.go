// Package queue provides task claiming and worker pool infrastructure:
// the fair multi-channel scheduler, the polling workers with heartbeats,
// and orphaned-claim recovery.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/reelworks/reelpipe/ent"
	"github.com/reelworks/reelpipe/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no claimable tasks passed the
	// scheduler's filters this poll.
	ErrNoTasksAvailable = errors.New("no tasks available")
)

// Claimed is a task handed to a worker, together with the status it was
// claimed out of. The row already holds status=claimed, claimed_by, and
// a fresh heartbeat.
type Claimed struct {
	Task *ent.Task
	Prev models.Status
}

// ExecutionResult is what one orchestrator run left behind. All status
// transitions were already written progressively during execution; the
// worker uses this only for logging and metrics.
type ExecutionResult struct {
	// FinalStatus is the status the task was left in (a review gate, an
	// error status, retry, or queued when released).
	FinalStatus models.Status

	// Released is true when the task went back to queued unfinished, for
	// shutdown or a full governor.
	Released bool

	Err error
}

// TaskExecutor drives a claimed task until it parks: at a review gate,
// in an error status, in retry backoff, or released back to queued.
//
// drain reports whether graceful shutdown was requested; the executor
// checks it between sub-items and releases the claim cleanly when set.
type TaskExecutor interface {
	Execute(ctx context.Context, claimed *Claimed, drain func() bool) *ExecutionResult
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	WorkerID         string         `json:"worker_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single claim loop.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}

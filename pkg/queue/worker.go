package queue

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/reelworks/reelpipe/ent"
	"github.com/reelworks/reelpipe/pkg/config"
	"github.com/reelworks/reelpipe/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single claim loop: poll the scheduler, run the executor,
// keep the heartbeat fresh while working.
type Worker struct {
	id        string
	client    *ent.Client
	config    *config.QueueConfig
	scheduler *Scheduler
	tasks     *services.TaskService
	executor  TaskExecutor

	stopCh   chan struct{}
	stopOnce sync.Once
	draining atomic.Bool
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a claim-loop worker.
func NewWorker(id string, client *ent.Client, cfg *config.QueueConfig, scheduler *Scheduler, tasks *services.TaskService, executor TaskExecutor) *Worker {
	return &Worker{
		id:           id,
		client:       client,
		config:       cfg,
		scheduler:    scheduler,
		tasks:        tasks,
		executor:     executor,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// task. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		w.draining.Store(true)
		close(w.stopCh)
	})
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims one task and runs the orchestrator on it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	claimed, err := w.scheduler.ClaimNext(ctx, w.id)
	if err != nil {
		return err
	}

	log := slog.With("task_id", claimed.Task.ID, "worker", w.id)
	log.Info("Task claimed", "prev_status", string(claimed.Prev))

	w.setStatus(WorkerStatusWorking, claimed.Task.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// Heartbeat while the orchestrator works, so the claim is never
	// mistaken for an orphan.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(ctx)
	go w.runHeartbeat(heartbeatCtx, claimed.Task.ID)

	result := w.executor.Execute(ctx, claimed, w.draining.Load)
	cancelHeartbeat()

	if result == nil {
		result = &ExecutionResult{Err: errors.New("executor returned nil result")}
	}
	if result.Err != nil {
		log.Warn("Task parked with error",
			"status", string(result.FinalStatus), "error", result.Err)
	} else {
		log.Info("Task parked", "status", string(result.FinalStatus), "released", result.Released)
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()
	return nil
}

// runHeartbeat periodically refreshes last_heartbeat_at for orphan
// detection.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.tasks.Heartbeat(ctx, taskID); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}

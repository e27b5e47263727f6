package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/reelworks/reelpipe/ent"
	"github.com/reelworks/reelpipe/ent/task"
	"github.com/reelworks/reelpipe/pkg/config"
	"github.com/reelworks/reelpipe/pkg/models"
	"github.com/reelworks/reelpipe/pkg/services"
)

// WorkerPool manages the claim-loop workers and the orphan scanner for
// one process.
type WorkerPool struct {
	workerID  string
	client    *ent.Client
	config    *config.QueueConfig
	scheduler *Scheduler
	tasks     *services.TaskService
	executor  TaskExecutor
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	started   bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(workerID string, client *ent.Client, cfg *config.QueueConfig, scheduler *Scheduler, tasks *services.TaskService, executor TaskExecutor) *WorkerPool {
	return &WorkerPool{
		workerID:  workerID,
		client:    client,
		config:    cfg,
		scheduler: scheduler,
		tasks:     tasks,
		executor:  executor,
		workers:   make([]*Worker, 0, cfg.WorkerCount),
		stopCh:    make(chan struct{}),
	}
}

// Start spawns worker goroutines and the orphan detection background
// task. Safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "worker_id", p.workerID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "worker_id", p.workerID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		id := fmt.Sprintf("%s-%d", p.workerID, i)
		worker := NewWorker(id, p.client, p.config, p.scheduler, p.tasks, p.executor)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish. Workers
// finish the current sub-item and release their claims (graceful
// shutdown); ledgers stay consistent.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.scheduler.QueueDepth(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"worker_id", p.workerID, "error", errQ)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	return &PoolHealth{
		IsHealthy:        len(p.workers) > 0 && dbHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		WorkerID:         p.workerID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// inFlightStatuses are statuses that imply a live worker claim.
func inFlightStatuses() []task.Status {
	in := []models.Status{
		models.StatusClaimed,
		models.StatusGeneratingAssets, models.StatusGeneratingComposites,
		models.StatusGeneratingVideo, models.StatusGeneratingAudio,
		models.StatusGeneratingSFX, models.StatusGeneratingAssembly,
	}
	out := make([]task.Status, len(in))
	for i, s := range in {
		out[i] = task.Status(s)
	}
	return out
}

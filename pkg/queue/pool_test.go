package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelworks/reelpipe/ent"
	"github.com/reelworks/reelpipe/ent/task"
	"github.com/reelworks/reelpipe/pkg/config"
	"github.com/reelworks/reelpipe/pkg/models"
	"github.com/reelworks/reelpipe/pkg/services"
)

// stubExecutor drives every claimed task straight to assets_ready, the
// way the real orchestrator parks at the first review gate.
type stubExecutor struct {
	tasks *services.TaskService

	mu       sync.Mutex
	executed []string
}

func (e *stubExecutor) Execute(ctx context.Context, claimed *Claimed, _ func() bool) *ExecutionResult {
	e.mu.Lock()
	e.executed = append(e.executed, claimed.Task.ID)
	e.mu.Unlock()

	if err := e.tasks.Transition(ctx, claimed.Task.ID, models.StatusClaimed, models.StatusGeneratingAssets); err != nil {
		return &ExecutionResult{FinalStatus: models.StatusClaimed, Err: err}
	}
	err := e.tasks.Transition(ctx, claimed.Task.ID, models.StatusGeneratingAssets, models.StatusAssetsReady,
		func(u *ent.TaskUpdate) { u.ClearClaimedBy().ClearLastHeartbeatAt() })
	if err != nil {
		return &ExecutionResult{FinalStatus: models.StatusGeneratingAssets, Err: err}
	}
	return &ExecutionResult{FinalStatus: models.StatusAssetsReady}
}

func (e *stubExecutor) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.executed)
}

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		PollInterval:            20 * time.Millisecond,
		PollIntervalJitter:      5 * time.Millisecond,
		HeartbeatInterval:       20 * time.Millisecond,
		OrphanDetectionInterval: 50 * time.Millisecond,
		OrphanThreshold:         time.Minute,
		GracefulShutdownTimeout: 5 * time.Second,
		ClaimBatchSize:          8,
	}
}

func newTestPool(f *schedFixture, executor TaskExecutor) *WorkerPool {
	return NewWorkerPool("w-test", f.client, testQueueConfig(), f.scheduler, f.tasks, executor)
}

func TestWorkerPool_ProcessesQueuedTasks(t *testing.T) {
	f := setupScheduler(t)
	mkChannel(t, f.client, "alpha")
	ctx := context.Background()

	t1 := mkTask(t, f.tasks, "alpha", "page-p1", models.PriorityNormal)
	t2 := mkTask(t, f.tasks, "alpha", "page-p2", models.PriorityNormal)

	executor := &stubExecutor{tasks: f.tasks}
	pool := newTestPool(f, executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	assert.Eventually(t, func() bool {
		return executor.count() >= 2
	}, 5*time.Second, 20*time.Millisecond)

	pool.Stop()

	for _, id := range []string{t1.ID, t2.ID} {
		got, err := f.tasks.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, task.StatusAssetsReady, got.Status)
		assert.Nil(t, got.ClaimedBy)
	}
}

func TestWorkerPool_Health(t *testing.T) {
	f := setupScheduler(t)
	mkChannel(t, f.client, "alpha")

	pool := newTestPool(f, &stubExecutor{tasks: f.tasks})
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "w-test", health.WorkerID)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 2)
}

func TestDetectAndRecoverOrphans(t *testing.T) {
	f := setupScheduler(t)
	mkChannel(t, f.client, "alpha")
	ctx := context.Background()

	stale := mkTask(t, f.tasks, "alpha", "page-orphan", models.PriorityNormal)
	_, err := stale.Update().
		SetStatus(task.StatusGeneratingVideo).
		SetClaimedBy("w-dead").
		SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)
	err = f.tasks.UpdateLedger(ctx, stale.ID, func(l models.Ledger) {
		l.Step(models.StageVideo).MarkDone(1)
		l.Step(models.StageVideo).MarkDone(2)
	})
	require.NoError(t, err)

	alive := mkTask(t, f.tasks, "alpha", "page-alive", models.PriorityNormal)
	_, err = alive.Update().
		SetStatus(task.StatusClaimed).
		SetClaimedBy("w-live").
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	pool := newTestPool(f, &stubExecutor{tasks: f.tasks})
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	got, err := f.tasks.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusQueued, got.Status)
	assert.Nil(t, got.ClaimedBy)
	assert.Nil(t, got.LastHeartbeatAt)
	// Partial progress survives recovery.
	assert.Equal(t, []int{1, 2}, got.Steps.Step(models.StageVideo).DoneIndices)

	live, err := f.tasks.Get(ctx, alive.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusClaimed, live.Status)
}

func TestCleanupStartupOrphans(t *testing.T) {
	f := setupScheduler(t)
	mkChannel(t, f.client, "alpha")
	ctx := context.Background()

	mine := mkTask(t, f.tasks, "alpha", "page-mine", models.PriorityNormal)
	_, err := mine.Update().
		SetStatus(task.StatusGeneratingAudio).
		SetClaimedBy("w-restarted").
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	other := mkTask(t, f.tasks, "alpha", "page-other", models.PriorityNormal)
	_, err = other.Update().
		SetStatus(task.StatusClaimed).
		SetClaimedBy("w-peer").
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, f.client, "w-restarted"))

	got, err := f.tasks.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusQueued, got.Status)
	assert.Nil(t, got.ClaimedBy)

	untouched, err := f.tasks.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusClaimed, untouched.Status)
}

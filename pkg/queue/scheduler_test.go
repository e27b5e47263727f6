package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelworks/reelpipe/ent"
	"github.com/reelworks/reelpipe/ent/channel"
	"github.com/reelworks/reelpipe/ent/task"
	"github.com/reelworks/reelpipe/pkg/config"
	"github.com/reelworks/reelpipe/pkg/governor"
	"github.com/reelworks/reelpipe/pkg/models"
	"github.com/reelworks/reelpipe/pkg/services"
	testdb "github.com/reelworks/reelpipe/test/database"
)

type schedFixture struct {
	client    *ent.Client
	tasks     *services.TaskService
	channels  *services.ChannelService
	gov       *governor.Governor
	scheduler *Scheduler
}

func setupScheduler(t *testing.T) *schedFixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	f := &schedFixture{
		client:   db.Client,
		tasks:    services.NewTaskService(db.Client),
		channels: services.NewChannelService(db.Client),
		gov: governor.New(config.GovernorConfig{
			MaxConcurrentAssetGen: 12,
			MaxConcurrentVideoGen: 3,
			MaxConcurrentAudioGen: 6,
		}),
	}
	f.scheduler = NewScheduler(db.Client, f.channels, f.gov, 16)
	return f
}

func mkChannel(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Channel.Create().
		SetID(id).
		SetName("Channel " + id).
		SetActive(true).
		SetPriority(channel.PriorityNormal).
		SetStorageStrategy("local").
		SetDefaultAssetCount(4).
		SetDefaultClipCount(3).
		Save(context.Background())
	require.NoError(t, err)
}

func mkTask(t *testing.T, tasks *services.TaskService, channelID, pageID string, prio models.Priority) *ent.Task {
	t.Helper()
	tk, _, err := tasks.UpsertFromBoard(context.Background(), models.UpsertTaskInput{
		BoardPageID: pageID,
		ChannelID:   channelID,
		Title:       "Task " + pageID,
		Priority:    prio,
	})
	require.NoError(t, err)
	return tk
}

func TestClaimNext_NoTasks(t *testing.T) {
	f := setupScheduler(t)
	mkChannel(t, f.client, "alpha")

	_, err := f.scheduler.ClaimNext(context.Background(), "w-1")
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestClaimNext_SetsClaimMarkers(t *testing.T) {
	f := setupScheduler(t)
	mkChannel(t, f.client, "alpha")
	tk := mkTask(t, f.tasks, "alpha", "page-1", models.PriorityNormal)

	claimed, err := f.scheduler.ClaimNext(context.Background(), "w-1")
	require.NoError(t, err)
	assert.Equal(t, tk.ID, claimed.Task.ID)
	assert.Equal(t, models.StatusQueued, claimed.Prev)
	assert.Equal(t, task.StatusClaimed, claimed.Task.Status)
	require.NotNil(t, claimed.Task.ClaimedBy)
	assert.Equal(t, "w-1", *claimed.Task.ClaimedBy)
	assert.NotNil(t, claimed.Task.LastHeartbeatAt)

	// A claimed task is invisible to the next poll.
	_, err = f.scheduler.ClaimNext(context.Background(), "w-2")
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestClaimNext_PriorityThenAge(t *testing.T) {
	f := setupScheduler(t)
	mkChannel(t, f.client, "alpha")
	ctx := context.Background()

	// Insertion order doubles as age: the first row is the oldest.
	oldNormal := mkTask(t, f.tasks, "alpha", "page-old-normal", models.PriorityNormal)
	mkTask(t, f.tasks, "alpha", "page-young-normal", models.PriorityNormal)
	mkTask(t, f.tasks, "alpha", "page-low", models.PriorityLow)
	high := mkTask(t, f.tasks, "alpha", "page-high", models.PriorityHigh)

	first, err := f.scheduler.ClaimNext(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, high.ID, first.Task.ID)

	second, err := f.scheduler.ClaimNext(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, oldNormal.ID, second.Task.ID)
}

func TestClaimNext_PriorityBeatsChannelRotation(t *testing.T) {
	f := setupScheduler(t)
	mkChannel(t, f.client, "alpha")
	mkChannel(t, f.client, "beta")
	ctx := context.Background()

	// Beta was served recently, alpha never; alpha is first in rotation.
	_, err := f.client.Channel.UpdateOneID("beta").
		SetLastClaimedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	low := mkTask(t, f.tasks, "alpha", "page-low", models.PriorityLow)
	high := mkTask(t, f.tasks, "beta", "page-high", models.PriorityHigh)

	first, err := f.scheduler.ClaimNext(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, high.ID, first.Task.ID)

	second, err := f.scheduler.ClaimNext(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, low.ID, second.Task.ID)
}

func TestClaimNext_RotationBreaksTiesWithinPriority(t *testing.T) {
	f := setupScheduler(t)
	mkChannel(t, f.client, "alpha")
	mkChannel(t, f.client, "beta")
	ctx := context.Background()

	_, err := f.client.Channel.UpdateOneID("alpha").
		SetLastClaimedAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)
	_, err = f.client.Channel.UpdateOneID("beta").
		SetLastClaimedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// The alpha task is older, but beta waited longer for a turn.
	mkTask(t, f.tasks, "alpha", "page-a1", models.PriorityNormal)
	b1 := mkTask(t, f.tasks, "beta", "page-b1", models.PriorityNormal)

	first, err := f.scheduler.ClaimNext(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, b1.ID, first.Task.ID)
}

func TestClaimNext_ChannelRoundRobin(t *testing.T) {
	f := setupScheduler(t)
	mkChannel(t, f.client, "alpha")
	mkChannel(t, f.client, "beta")
	ctx := context.Background()

	mkTask(t, f.tasks, "alpha", "page-a1", models.PriorityNormal)
	mkTask(t, f.tasks, "alpha", "page-a2", models.PriorityNormal)
	mkTask(t, f.tasks, "beta", "page-b1", models.PriorityNormal)

	first, err := f.scheduler.ClaimNext(ctx, "w-1")
	require.NoError(t, err)
	second, err := f.scheduler.ClaimNext(ctx, "w-1")
	require.NoError(t, err)

	// Alpha's backlog cannot absorb both claims; beta gets a turn.
	assert.NotEqual(t, first.Task.ChannelID, second.Task.ChannelID)
}

func TestClaimNext_RetryAfterGate(t *testing.T) {
	f := setupScheduler(t)
	mkChannel(t, f.client, "alpha")
	ctx := context.Background()

	tk := mkTask(t, f.tasks, "alpha", "page-backoff", models.PriorityNormal)
	_, err := tk.Update().
		SetStatus(task.StatusRetry).
		SetRetryAfter(time.Now().Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = f.scheduler.ClaimNext(ctx, "w-1")
	assert.ErrorIs(t, err, ErrNoTasksAvailable)

	_, err = f.client.Task.UpdateOneID(tk.ID).
		SetRetryAfter(time.Now().Add(-time.Second)).
		Save(ctx)
	require.NoError(t, err)

	claimed, err := f.scheduler.ClaimNext(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRetry, claimed.Prev)
}

func TestClaimNext_ApprovedStatusesAreClaimable(t *testing.T) {
	f := setupScheduler(t)
	mkChannel(t, f.client, "alpha")
	ctx := context.Background()

	tk := mkTask(t, f.tasks, "alpha", "page-approved", models.PriorityNormal)
	_, err := tk.Update().SetStatus(task.StatusVideoApproved).Save(ctx)
	require.NoError(t, err)

	claimed, err := f.scheduler.ClaimNext(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusVideoApproved, claimed.Prev)
}

func TestClaimNext_SkipsSaturatedClass(t *testing.T) {
	f := setupScheduler(t)
	mkChannel(t, f.client, "alpha")
	ctx := context.Background()

	mkTask(t, f.tasks, "alpha", "page-gated", models.PriorityNormal)

	f.gov.SetCaps(config.GovernorConfig{
		MaxConcurrentAssetGen: 1,
		MaxConcurrentVideoGen: 1,
		MaxConcurrentAudioGen: 1,
	})
	require.True(t, f.gov.Admit(models.StageAssets))

	_, err := f.scheduler.ClaimNext(ctx, "w-1")
	assert.ErrorIs(t, err, ErrNoTasksAvailable)

	f.gov.Release(models.StageAssets)
	_, err = f.scheduler.ClaimNext(ctx, "w-1")
	assert.NoError(t, err)
}

func TestClaimNext_AdmissionUsesResumeStage(t *testing.T) {
	// A queued task whose ledger shows assets and composites complete
	// resumes at video, so it is gated by the video cap, not the asset cap.
	f := setupScheduler(t)
	mkChannel(t, f.client, "alpha")
	ctx := context.Background()

	tk := mkTask(t, f.tasks, "alpha", "page-resume-video", models.PriorityNormal)
	err := f.tasks.UpdateLedger(ctx, tk.ID, func(l models.Ledger) {
		l.Step(models.StageAssets).Completed = true
		l.Step(models.StageComposites).Completed = true
	})
	require.NoError(t, err)

	f.gov.SetCaps(config.GovernorConfig{
		MaxConcurrentAssetGen: 1,
		MaxConcurrentVideoGen: 1,
		MaxConcurrentAudioGen: 1,
	})
	require.True(t, f.gov.Admit(models.StageVideo))

	_, err = f.scheduler.ClaimNext(ctx, "w-1")
	assert.ErrorIs(t, err, ErrNoTasksAvailable)

	f.gov.Release(models.StageVideo)
	claimed, err := f.scheduler.ClaimNext(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, tk.ID, claimed.Task.ID)
}

func TestQueueDepth(t *testing.T) {
	f := setupScheduler(t)
	mkChannel(t, f.client, "alpha")
	ctx := context.Background()

	depth, err := f.scheduler.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Zero(t, depth)

	mkTask(t, f.tasks, "alpha", "page-d1", models.PriorityNormal)
	mkTask(t, f.tasks, "alpha", "page-d2", models.PriorityNormal)

	depth, err = f.scheduler.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)
}

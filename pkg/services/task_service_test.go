package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelworks/reelpipe/ent"
	"github.com/reelworks/reelpipe/ent/channel"
	"github.com/reelworks/reelpipe/ent/task"
	"github.com/reelworks/reelpipe/pkg/models"
	testdb "github.com/reelworks/reelpipe/test/database"
)

func seedChannel(t *testing.T, client *ent.Client, id string) *ent.Channel {
	t.Helper()
	ch, err := client.Channel.Create().
		SetID(id).
		SetName("Test " + id).
		SetActive(true).
		SetPriority(channel.PriorityNormal).
		SetVoiceID("voice-a").
		SetStorageStrategy("local").
		SetDefaultAssetCount(22).
		SetDefaultClipCount(18).
		Save(context.Background())
	require.NoError(t, err)
	return ch
}

func seedTask(t *testing.T, svc *TaskService, channelID, pageID string) *ent.Task {
	t.Helper()
	created, isNew, err := svc.UpsertFromBoard(context.Background(), models.UpsertTaskInput{
		BoardPageID: pageID,
		ChannelID:   channelID,
		Title:       "Lost Cities of the Sahara",
		Topic:       "archaeology",
		Priority:    models.PriorityNormal,
	})
	require.NoError(t, err)
	require.True(t, isNew)
	return created
}

func TestTaskService_UpsertFromBoard(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()
	seedChannel(t, client.Client, "history")

	t.Run("creates task with channel defaults", func(t *testing.T) {
		created, isNew, err := svc.UpsertFromBoard(ctx, models.UpsertTaskInput{
			BoardPageID: "page-1",
			ChannelID:   "history",
			Title:       "The Bronze Age Collapse",
			Priority:    models.PriorityHigh,
		})
		require.NoError(t, err)
		assert.True(t, isNew)
		assert.Equal(t, task.StatusQueued, created.Status)
		assert.Equal(t, 22, created.AssetCount)
		assert.Equal(t, 18, created.ClipCount)
		assert.Equal(t, 2, created.PriorityRank)
		assert.NotNil(t, created.Steps)
	})

	t.Run("second upsert for same page returns existing row", func(t *testing.T) {
		first, isNew, err := svc.UpsertFromBoard(ctx, models.UpsertTaskInput{
			BoardPageID: "page-2",
			ChannelID:   "history",
			Title:       "Original Title",
			Priority:    models.PriorityNormal,
		})
		require.NoError(t, err)
		require.True(t, isNew)

		second, isNew, err := svc.UpsertFromBoard(ctx, models.UpsertTaskInput{
			BoardPageID: "page-2",
			ChannelID:   "history",
			Title:       "Different Title",
			Priority:    models.PriorityLow,
		})
		require.NoError(t, err)
		assert.False(t, isNew)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Original Title", second.Title)
	})

	t.Run("explicit counts override channel defaults", func(t *testing.T) {
		created, _, err := svc.UpsertFromBoard(ctx, models.UpsertTaskInput{
			BoardPageID: "page-3",
			ChannelID:   "history",
			Title:       "Short Form",
			Priority:    models.PriorityNormal,
			AssetCount:  10,
			ClipCount:   8,
		})
		require.NoError(t, err)
		assert.Equal(t, 10, created.AssetCount)
		assert.Equal(t, 8, created.ClipCount)
	})

	t.Run("unknown channel", func(t *testing.T) {
		_, _, err := svc.UpsertFromBoard(ctx, models.UpsertTaskInput{
			BoardPageID: "page-4",
			ChannelID:   "nope",
			Title:       "Orphan",
			Priority:    models.PriorityNormal,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing required fields", func(t *testing.T) {
		_, _, err := svc.UpsertFromBoard(ctx, models.UpsertTaskInput{
			ChannelID: "history",
			Title:     "No Page",
			Priority:  models.PriorityNormal,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestTaskService_Transition(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()
	seedChannel(t, client.Client, "science")

	t.Run("legal edge succeeds", func(t *testing.T) {
		tk := seedTask(t, svc, "science", "tr-1")

		err := svc.Transition(ctx, tk.ID, models.StatusQueued, models.StatusClaimed)
		require.NoError(t, err)

		got, err := svc.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusClaimed, got.Status)
	})

	t.Run("edge outside state machine is rejected", func(t *testing.T) {
		tk := seedTask(t, svc, "science", "tr-2")

		err := svc.Transition(ctx, tk.ID, models.StatusQueued, models.StatusPublished)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		var terr *TransitionError
		require.ErrorAs(t, err, &terr)
		assert.False(t, terr.Stale)
	})

	t.Run("lost race reports stale", func(t *testing.T) {
		tk := seedTask(t, svc, "science", "tr-3")
		require.NoError(t, svc.Transition(ctx, tk.ID, models.StatusQueued, models.StatusClaimed))

		// Row is no longer queued, so a second claim attempt must fail.
		err := svc.Transition(ctx, tk.ID, models.StatusQueued, models.StatusClaimed)
		require.Error(t, err)

		var terr *TransitionError
		require.ErrorAs(t, err, &terr)
		assert.True(t, terr.Stale)
	})

	t.Run("patch applies alongside status change", func(t *testing.T) {
		tk := seedTask(t, svc, "science", "tr-4")

		err := svc.Transition(ctx, tk.ID, models.StatusQueued, models.StatusClaimed, func(u *ent.TaskUpdate) {
			u.SetClaimedBy("worker-7")
		})
		require.NoError(t, err)

		got, err := svc.Get(ctx, tk.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ClaimedBy)
		assert.Equal(t, "worker-7", *got.ClaimedBy)
	})

	t.Run("review timestamps", func(t *testing.T) {
		tk := seedTask(t, svc, "science", "tr-5")
		require.NoError(t, svc.Transition(ctx, tk.ID, models.StatusQueued, models.StatusClaimed))
		require.NoError(t, svc.Transition(ctx, tk.ID, models.StatusClaimed, models.StatusGeneratingAssets))

		// Entering the first gate stamps review_started_at in the same
		// transaction: the gate status is never visible without it.
		require.NoError(t, svc.Transition(ctx, tk.ID, models.StatusGeneratingAssets, models.StatusAssetsReady))
		got, err := svc.Get(ctx, tk.ID)
		require.NoError(t, err)
		require.Equal(t, task.StatusAssetsReady, got.Status)
		require.NotNil(t, got.ReviewStartedAt)
		firstStarted := *got.ReviewStartedAt
		assert.Nil(t, got.ReviewCompletedAt)

		// Leaving the gate stamps review_completed_at.
		require.NoError(t, svc.Transition(ctx, tk.ID, models.StatusAssetsReady, models.StatusAssetsApproved))
		got, err = svc.Get(ctx, tk.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ReviewCompletedAt)

		// A later gate must not move review_started_at.
		require.NoError(t, svc.Transition(ctx, tk.ID, models.StatusAssetsApproved, models.StatusGeneratingComposites))
		require.NoError(t, svc.Transition(ctx, tk.ID, models.StatusGeneratingComposites, models.StatusGeneratingVideo))
		require.NoError(t, svc.Transition(ctx, tk.ID, models.StatusGeneratingVideo, models.StatusVideoReady))
		got, err = svc.Get(ctx, tk.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ReviewStartedAt)
		assert.Equal(t, firstStarted.UTC(), got.ReviewStartedAt.UTC())
	})
}

func TestTaskService_AppendError(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()
	seedChannel(t, client.Client, "nature")
	tk := seedTask(t, svc, "nature", "ae-1")

	require.NoError(t, svc.AppendError(ctx, tk.ID, "image generator exited 1"))
	require.NoError(t, svc.AppendError(ctx, tk.ID, "image generator exited 1 (retry)"))

	got, err := svc.Get(ctx, tk.ID)
	require.NoError(t, err)

	lines := strings.Split(got.ErrorLog, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "image generator exited 1")
	assert.Contains(t, lines[1], "(retry)")
	for _, line := range lines {
		assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2}T`, line)
	}

	err = svc.AppendError(ctx, "missing-task", "whatever")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTaskService_RecordCost(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()
	seedChannel(t, client.Client, "space")
	tk := seedTask(t, svc, "space", "rc-1")

	require.NoError(t, svc.RecordCost(ctx, tk.ID, models.StageAssets, 0.88, 22))
	require.NoError(t, svc.RecordCost(ctx, tk.ID, models.StageVideo, 6.30, 18))

	got, err := svc.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.InDelta(t, 7.18, got.PipelineCostUsd, 1e-9)

	entries, err := got.QueryCostEntries().All(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestTaskService_Ledger(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()
	seedChannel(t, client.Client, "ocean")
	tk := seedTask(t, svc, "ocean", "lg-1")

	t.Run("fresh task has empty ledger", func(t *testing.T) {
		ledger, err := svc.Ledger(ctx, tk.ID)
		require.NoError(t, err)
		assert.Empty(t, ledger)
	})

	t.Run("update persists progress", func(t *testing.T) {
		err := svc.UpdateLedger(ctx, tk.ID, func(l models.Ledger) {
			step := l.Step(models.StageAssets)
			step.MarkDone(1)
			step.MarkDone(2)
			step.DurationS = 41.5
		})
		require.NoError(t, err)

		ledger, err := svc.Ledger(ctx, tk.ID)
		require.NoError(t, err)
		step := ledger.Step(models.StageAssets)
		assert.True(t, step.Done(1))
		assert.True(t, step.Done(2))
		assert.False(t, step.Done(3))
		assert.InDelta(t, 41.5, step.DurationS, 1e-9)
	})

	t.Run("completion flag survives round trip", func(t *testing.T) {
		err := svc.UpdateLedger(ctx, tk.ID, func(l models.Ledger) {
			l.Step(models.StageAssets).Completed = true
		})
		require.NoError(t, err)

		ledger, err := svc.Ledger(ctx, tk.ID)
		require.NoError(t, err)
		assert.True(t, ledger.StageCompleted(models.StageAssets))
	})
}

func TestTaskService_Release(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTaskService(client.Client)
	ctx := context.Background()
	seedChannel(t, client.Client, "myth")
	tk := seedTask(t, svc, "myth", "rl-1")

	require.NoError(t, svc.Transition(ctx, tk.ID, models.StatusQueued, models.StatusClaimed, func(u *ent.TaskUpdate) {
		u.SetClaimedBy("worker-1")
	}))
	require.NoError(t, svc.Heartbeat(ctx, tk.ID))
	require.NoError(t, svc.UpdateLedger(ctx, tk.ID, func(l models.Ledger) {
		l.Step(models.StageAssets).MarkDone(5)
	}))

	require.NoError(t, svc.Release(ctx, tk.ID, models.StatusClaimed))

	got, err := svc.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusQueued, got.Status)
	assert.Empty(t, got.ClaimedBy)
	assert.Nil(t, got.LastHeartbeatAt)

	// Release keeps completed work.
	ledger, err := svc.Ledger(ctx, tk.ID)
	require.NoError(t, err)
	assert.True(t, ledger.Step(models.StageAssets).Done(5))
}

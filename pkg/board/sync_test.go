package board

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelworks/reelpipe/ent"
	"github.com/reelworks/reelpipe/ent/channel"
	"github.com/reelworks/reelpipe/ent/task"
	"github.com/reelworks/reelpipe/pkg/config"
	"github.com/reelworks/reelpipe/pkg/models"
	"github.com/reelworks/reelpipe/pkg/services"
	testdb "github.com/reelworks/reelpipe/test/database"
)

// fakeAPI is an in-memory board.
type fakeAPI struct {
	mu      sync.Mutex
	pages   map[string][]Page // databaseID → pages
	updates []string          // "pageID:status" in call order
	fail    int               // remaining UpdateStatus calls to fail
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{pages: map[string][]Page{}}
}

func (f *fakeAPI) QueryPages(_ context.Context, databaseID string) ([]Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Page(nil), f.pages[databaseID]...), nil
}

func (f *fakeAPI) UpdateStatus(_ context.Context, pageID, boardStatus string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail > 0 {
		f.fail--
		return assert.AnError
	}
	f.updates = append(f.updates, pageID+":"+boardStatus)
	return nil
}

func (f *fakeAPI) updateLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.updates...)
}

func boardTestConfig() *config.BoardConfig {
	return &config.BoardConfig{
		DatabaseIDs:       []string{"db-1"},
		SyncInterval:      10 * time.Second,
		RequestsPerSecond: 3,
		FlushInterval:     10 * time.Millisecond,
		MaxPushRetries:    3,
	}
}

func TestPusher(t *testing.T) {
	t.Run("debounce keeps only the latest status per page", func(t *testing.T) {
		api := newFakeAPI()
		p := NewPusher(api, boardTestConfig())

		p.Push("page-1", models.StatusGeneratingAssets)
		p.Push("page-1", models.StatusAssetsReady)
		p.Push("page-2", models.StatusQueued)
		p.flush(context.Background())

		log := api.updateLog()
		assert.Len(t, log, 2)
		assert.Contains(t, log, "page-1:Assets Ready")
		assert.Contains(t, log, "page-2:Queued")
	})

	t.Run("claimed is dropped, retry maps to Queued", func(t *testing.T) {
		api := newFakeAPI()
		p := NewPusher(api, boardTestConfig())

		p.Push("page-1", models.StatusClaimed)
		p.Push("page-2", models.StatusRetry)
		p.flush(context.Background())

		assert.Equal(t, []string{"page-2:Queued"}, api.updateLog())
	})

	t.Run("transient push failure is retried", func(t *testing.T) {
		api := newFakeAPI()
		api.fail = 1
		p := NewPusher(api, boardTestConfig())

		p.Push("page-1", models.StatusAssetsReady)
		p.flush(context.Background())

		assert.Equal(t, []string{"page-1:Assets Ready"}, api.updateLog())
	})

	t.Run("stop flushes the queue", func(t *testing.T) {
		api := newFakeAPI()
		p := NewPusher(api, boardTestConfig())
		p.Start(context.Background())

		p.Push("page-1", models.StatusFinalReview)
		p.Stop()

		assert.Equal(t, []string{"page-1:Final Review"}, api.updateLog())
	})

	t.Run("nil api is a no-op", func(t *testing.T) {
		p := NewPusher(nil, boardTestConfig())
		p.Push("page-1", models.StatusQueued)
		p.Start(context.Background())
		p.Stop()
	})
}

func setupPoller(t *testing.T) (*fakeAPI, *Poller, *services.TaskService, *ent.Client) {
	client := testdb.NewTestClient(t)
	tasks := services.NewTaskService(client.Client)

	_, err := client.Channel.Create().
		SetID("history").
		SetName("History").
		SetActive(true).
		SetPriority(channel.PriorityNormal).
		SetVoiceID("voice-a").
		SetStorageStrategy("local").
		SetDefaultAssetCount(22).
		SetDefaultClipCount(18).
		Save(context.Background())
	require.NoError(t, err)

	api := newFakeAPI()
	return api, NewPoller(api, tasks, boardTestConfig()), tasks, client.Client
}

func TestPoller_PollOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("new queued page creates a task, idempotently", func(t *testing.T) {
		api, poller, tasks, _ := setupPoller(t)
		api.pages["db-1"] = []Page{{
			ID: "page-1", Title: "Hanging Gardens", ChannelID: "history",
			Status: "Queued", Priority: "High",
		}}

		require.NoError(t, poller.PollOnce(ctx))
		require.NoError(t, poller.PollOnce(ctx))

		tk, err := tasks.GetByBoardPage(ctx, "page-1")
		require.NoError(t, err)
		assert.Equal(t, task.StatusQueued, tk.Status)
		assert.Equal(t, 2, tk.PriorityRank)
	})

	t.Run("page in non-queued status without a task is ignored", func(t *testing.T) {
		api, poller, tasks, _ := setupPoller(t)
		api.pages["db-1"] = []Page{{ID: "page-x", Title: "Stray", ChannelID: "history", Status: "Published"}}

		require.NoError(t, poller.PollOnce(ctx))
		_, err := tasks.GetByBoardPage(ctx, "page-x")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("approval releases the review gate and records evidence", func(t *testing.T) {
		api, poller, tasks, _ := setupPoller(t)
		tk := mustSeedAt(t, tasks, "page-2", models.StatusAssetsReady)

		api.pages["db-1"] = []Page{{
			ID: "page-2", ChannelID: "history",
			Status: "Assets Approved", Reviewer: "sam",
		}}
		require.NoError(t, poller.PollOnce(ctx))

		got, err := tasks.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusAssetsApproved, got.Status)
		require.Len(t, got.ReviewLog, 1)
		assert.Equal(t, "approved", got.ReviewLog[0].Decision)
		assert.Equal(t, "sam", got.ReviewLog[0].Reviewer)
	})

	t.Run("final review approval moves to approved", func(t *testing.T) {
		api, poller, tasks, _ := setupPoller(t)
		tk := mustSeedAt(t, tasks, "page-3", models.StatusFinalReview)

		api.pages["db-1"] = []Page{{ID: "page-3", ChannelID: "history", Status: "Approved"}}
		require.NoError(t, poller.PollOnce(ctx))

		got, err := tasks.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusApproved, got.Status)
	})

	t.Run("rejection writes feedback into the ledger", func(t *testing.T) {
		api, poller, tasks, _ := setupPoller(t)
		tk := mustSeedAt(t, tasks, "page-4", models.StatusAudioReady)

		api.pages["db-1"] = []Page{{
			ID: "page-4", ChannelID: "history",
			Status:   "Audio Error",
			Feedback: "Bad narration: 5,12; Bad SFX: 7,9,15",
			Reviewer: "kim",
		}}
		require.NoError(t, poller.PollOnce(ctx))

		got, err := tasks.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusAudioError, got.Status)
		assert.Contains(t, got.ErrorLog, "Bad narration: 5,12")

		ledger, err := tasks.Ledger(ctx, tk.ID)
		require.NoError(t, err)
		repair := ledger.Step(models.StageAudio).FailedAudioClipNumbers
		require.NotNil(t, repair)
		assert.Equal(t, []int{5, 12}, repair.Narration)
		assert.Equal(t, []int{7, 9, 15}, repair.SFX)
	})

	t.Run("asset rejection marks failed indices and reopens them", func(t *testing.T) {
		api, poller, tasks, _ := setupPoller(t)
		tk := mustSeedAt(t, tasks, "page-5", models.StatusAssetsReady)
		require.NoError(t, tasks.UpdateLedger(ctx, tk.ID, func(l models.Ledger) {
			step := l.Step(models.StageAssets)
			for i := 1; i <= 4; i++ {
				step.MarkDone(i)
			}
			step.Completed = true
		}))

		api.pages["db-1"] = []Page{{
			ID: "page-5", ChannelID: "history",
			Status: "Asset Error", Feedback: "Bad assets: 2,3",
		}}
		require.NoError(t, poller.PollOnce(ctx))

		ledger, err := tasks.Ledger(ctx, tk.ID)
		require.NoError(t, err)
		step := ledger.Step(models.StageAssets)
		assert.Equal(t, []int{2, 3}, step.FailedIndices)
		assert.False(t, step.Completed)
		assert.False(t, step.Done(2))
		assert.True(t, step.Done(1))
	})

	t.Run("rejection without item feedback reopens the whole stage", func(t *testing.T) {
		api, poller, tasks, _ := setupPoller(t)
		tk := mustSeedAt(t, tasks, "page-8", models.StatusAssetsReady)
		require.NoError(t, tasks.UpdateLedger(ctx, tk.ID, func(l models.Ledger) {
			for _, stage := range []models.Stage{models.StageAssets, models.StageComposites} {
				step := l.Step(stage)
				for i := 1; i <= 4; i++ {
					step.MarkDone(i)
				}
				step.Completed = true
			}
		}))

		api.pages["db-1"] = []Page{{
			ID: "page-8", ChannelID: "history",
			Status: "Asset Error", Feedback: "wrong tone throughout, start over",
		}}
		require.NoError(t, poller.PollOnce(ctx))

		got, err := tasks.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusAssetError, got.Status)

		ledger, err := tasks.Ledger(ctx, tk.ID)
		require.NoError(t, err)
		for _, stage := range []models.Stage{models.StageAssets, models.StageComposites} {
			step := ledger.Step(stage)
			assert.False(t, step.Completed, string(stage))
			assert.Empty(t, step.DoneIndices, string(stage))
		}
		// A requeue now resumes at assets, not past it.
		assert.Equal(t, models.StageAssets, ledger.NextPendingStage())
	})

	t.Run("queued flip on errored task re-enqueues it", func(t *testing.T) {
		api, poller, tasks, _ := setupPoller(t)
		tk := mustSeedAt(t, tasks, "page-6", models.StatusAudioError)

		api.pages["db-1"] = []Page{{ID: "page-6", ChannelID: "history", Status: "Queued"}}
		require.NoError(t, poller.PollOnce(ctx))

		got, err := tasks.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusQueued, got.Status)
	})

	t.Run("board lagging a generating task is a no-op", func(t *testing.T) {
		api, poller, tasks, _ := setupPoller(t)
		tk := mustSeedAt(t, tasks, "page-7", models.StatusGeneratingVideo)

		api.pages["db-1"] = []Page{{ID: "page-7", ChannelID: "history", Status: "Queued"}}
		require.NoError(t, poller.PollOnce(ctx))

		got, err := tasks.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusGeneratingVideo, got.Status)
	})
}

// mustSeedAt creates a task for page pageID and force-sets its status.
func mustSeedAt(t *testing.T, tasks *services.TaskService, pageID string, status models.Status) *ent.Task {
	t.Helper()
	ctx := context.Background()
	tk, _, err := tasks.UpsertFromBoard(ctx, models.UpsertTaskInput{
		BoardPageID: pageID,
		ChannelID:   "history",
		Title:       "Seeded",
		Priority:    models.PriorityNormal,
	})
	require.NoError(t, err)
	// Tests jump straight to the state under test.
	got, err := tk.Update().SetStatus(task.Status(status)).Save(ctx)
	require.NoError(t, err)
	return got
}

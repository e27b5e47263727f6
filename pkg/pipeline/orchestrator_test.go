package pipeline

import (
	"context"
	"image"
	"image/png"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelworks/reelpipe/ent"
	"github.com/reelworks/reelpipe/ent/channel"
	"github.com/reelworks/reelpipe/ent/task"
	"github.com/reelworks/reelpipe/pkg/config"
	"github.com/reelworks/reelpipe/pkg/driver"
	"github.com/reelworks/reelpipe/pkg/governor"
	"github.com/reelworks/reelpipe/pkg/models"
	"github.com/reelworks/reelpipe/pkg/queue"
	"github.com/reelworks/reelpipe/pkg/services"
	"github.com/reelworks/reelpipe/pkg/workspace"
	testdb "github.com/reelworks/reelpipe/test/database"
)

// fakeRunner records generator invocations and, by default, writes the
// requested output file so the ledger reconciler sees it.
type fakeRunner struct {
	mu    sync.Mutex
	calls []driver.Request

	// onRun, when set, can fail a request before any output is written.
	onRun func(req driver.Request) error
}

func (f *fakeRunner) Run(_ context.Context, req driver.Request) (*driver.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if f.onRun != nil {
		if err := f.onRun(req); err != nil {
			return nil, err
		}
	}
	if out := argValue(req.Args, "--output"); out != "" {
		if err := os.WriteFile(out, []byte("generated-bytes-0123456789abcdef"), 0o644); err != nil {
			return nil, err
		}
	}
	return &driver.Result{Duration: 50 * time.Millisecond}, nil
}

func (f *fakeRunner) callsFor(command string) []driver.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []driver.Request
	for _, c := range f.calls {
		if c.Command == command {
			out = append(out, c)
		}
	}
	return out
}

func argValue(args []string, flag string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}

type pushRecord struct {
	pageID string
	status models.Status
}

type fakePusher struct {
	mu     sync.Mutex
	pushes []pushRecord
}

func (p *fakePusher) Push(pageID string, status models.Status) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pushes = append(p.pushes, pushRecord{pageID, status})
}

func (p *fakePusher) statuses() []models.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Status, len(p.pushes))
	for i, r := range p.pushes {
		out[i] = r.status
	}
	return out
}

type fixture struct {
	client   *ent.Client
	tasks    *services.TaskService
	channels *services.ChannelService
	runner   *fakeRunner
	pusher   *fakePusher
	gov      *governor.Governor
	layout   *workspace.Layout
	orch     *Orchestrator
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	layout, err := workspace.New(t.TempDir())
	require.NoError(t, err)

	f := &fixture{
		client:   db.Client,
		tasks:    services.NewTaskService(db.Client),
		channels: services.NewChannelService(db.Client),
		runner:   &fakeRunner{},
		pusher:   &fakePusher{},
		gov: governor.New(config.GovernorConfig{
			MaxConcurrentAssetGen: 12,
			MaxConcurrentVideoGen: 3,
			MaxConcurrentAudioGen: 6,
		}),
		layout: layout,
	}

	stages := config.DefaultStageConfig()
	f.orch = New(f.tasks, f.channels, f.runner, f.gov, layout, f.pusher, nil, nil, Config{
		Stages: stages,
		Generators: &config.GeneratorConfig{
			ImageCmd:    "imagegen",
			VideoCmd:    "videogen",
			TTSCmd:      "tts",
			SFXCmd:      "sfxgen",
			AssembleCmd: "assemble",
		},
		DefaultVoiceID:     "voice-default",
		PublicAssetBaseURL: "https://assets.example.com",
	})
	return f
}

func seedChannel(t *testing.T, client *ent.Client, id string) *ent.Channel {
	t.Helper()
	ch, err := client.Channel.Create().
		SetID(id).
		SetName("Test " + id).
		SetActive(true).
		SetPriority(channel.PriorityNormal).
		SetVoiceID("voice-a").
		SetStorageStrategy("local").
		SetDefaultAssetCount(4).
		SetDefaultClipCount(3).
		Save(context.Background())
	require.NoError(t, err)
	return ch
}

// seedClaimed creates a task and force-moves it into claimed, the state
// Execute always starts from.
func seedClaimed(t *testing.T, f *fixture, pageID string) *ent.Task {
	t.Helper()
	ctx := context.Background()
	tk, _, err := f.tasks.UpsertFromBoard(ctx, models.UpsertTaskInput{
		BoardPageID: pageID,
		ChannelID:   "history",
		Title:       "The Silk Road",
		Topic:       "trade routes of antiquity",
		Priority:    models.PriorityNormal,
	})
	require.NoError(t, err)
	got, err := tk.Update().
		SetStatus(task.StatusClaimed).
		SetClaimedBy("w-test").
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)
	return got
}

func execute(f *fixture, tk *ent.Task, prev models.Status) *queue.ExecutionResult {
	return f.orch.Execute(context.Background(), &queue.Claimed{Task: tk, Prev: prev}, func() bool { return false })
}

func reload(t *testing.T, f *fixture, id string) *ent.Task {
	t.Helper()
	got, err := f.tasks.Get(context.Background(), id)
	require.NoError(t, err)
	return got
}

func project(t *testing.T, f *fixture, tk *ent.Task) *workspace.Project {
	t.Helper()
	p, err := f.layout.Project(tk.ChannelID, tk.ID)
	require.NoError(t, err)
	require.NoError(t, p.EnsureDirs())
	return p
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(out, img))
	require.NoError(t, out.Close())
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("media-bytes-0123456789abcdef"), 0o644))
}

// markStageDone fills a stage's ledger entry as fully complete.
func markStageDone(t *testing.T, f *fixture, taskID string, stage models.Stage, n int) {
	t.Helper()
	err := f.tasks.UpdateLedger(context.Background(), taskID, func(l models.Ledger) {
		step := l.Step(stage)
		for i := 1; i <= n; i++ {
			step.MarkDone(i)
		}
		step.Completed = true
	})
	require.NoError(t, err)
}

func TestExecute_AssetsStage(t *testing.T) {
	f := setup(t)
	seedChannel(t, f.client, "history")
	tk := seedClaimed(t, f, "page-assets")

	res := execute(f, tk, models.StatusQueued)
	require.NoError(t, res.Err)
	assert.Equal(t, models.StatusAssetsReady, res.FinalStatus)

	got := reload(t, f, tk.ID)
	assert.Equal(t, task.StatusAssetsReady, got.Status)
	assert.Nil(t, got.ClaimedBy)
	assert.Zero(t, got.Attempts)
	assert.NotNil(t, got.PipelineStartTime)
	assert.NotNil(t, got.ReviewStartedAt)

	assert.Len(t, f.runner.callsFor("imagegen"), 4)
	step := got.Steps.Step(models.StageAssets)
	assert.True(t, step.Completed)
	assert.Equal(t, []int{1, 2, 3, 4}, step.DoneIndices)
	assert.InDelta(t, 4*0.04, got.PipelineCostUsd, 0.0001)

	p, err := f.layout.Project(tk.ChannelID, tk.ID)
	require.NoError(t, err)
	for i := 1; i <= 4; i++ {
		assert.True(t, workspace.FileReady(p.AssetPath(i)), "asset %d", i)
	}

	assert.Equal(t, []models.Status{models.StatusGeneratingAssets, models.StatusAssetsReady}, f.pusher.statuses())
}

func TestExecute_ChannelTimeoutOverride(t *testing.T) {
	f := setup(t)
	seedChannel(t, f.client, "history")
	ctx := context.Background()

	err := f.client.Channel.UpdateOneID("history").
		SetStageTimeoutsS(map[string]int{"assets": 7}).
		Exec(ctx)
	require.NoError(t, err)

	tk := seedClaimed(t, f, "page-timeout")
	res := execute(f, tk, models.StatusQueued)
	require.NoError(t, res.Err)

	calls := f.runner.callsFor("imagegen")
	require.NotEmpty(t, calls)
	for _, call := range calls {
		assert.Equal(t, 7*time.Second, call.Timeout)
	}
}

func TestExecute_ResumeSkipsSettledUnits(t *testing.T) {
	f := setup(t)
	seedChannel(t, f.client, "history")
	tk := seedClaimed(t, f, "page-resume")
	p := project(t, f, tk)

	// Two assets already on disk and marked done by a previous run.
	writeFile(t, p.AssetPath(1))
	writeFile(t, p.AssetPath(2))
	err := f.tasks.UpdateLedger(context.Background(), tk.ID, func(l models.Ledger) {
		step := l.Step(models.StageAssets)
		step.MarkDone(1)
		step.MarkDone(2)
	})
	require.NoError(t, err)

	res := execute(f, tk, models.StatusQueued)
	require.NoError(t, res.Err)
	assert.Equal(t, models.StatusAssetsReady, res.FinalStatus)
	assert.Len(t, f.runner.callsFor("imagegen"), 2)

	got := reload(t, f, tk.ID)
	assert.InDelta(t, 2*0.04, got.PipelineCostUsd, 0.0001)
}

func TestExecute_StaleLedgerMarkRegenerated(t *testing.T) {
	f := setup(t)
	seedChannel(t, f.client, "history")
	tk := seedClaimed(t, f, "page-stale")
	project(t, f, tk)

	// Ledger says unit 1 is done but the file is gone. Disk wins.
	err := f.tasks.UpdateLedger(context.Background(), tk.ID, func(l models.Ledger) {
		l.Step(models.StageAssets).MarkDone(1)
	})
	require.NoError(t, err)

	res := execute(f, tk, models.StatusQueued)
	require.NoError(t, res.Err)
	assert.Len(t, f.runner.callsFor("imagegen"), 4)
}

func TestExecute_CompositesChainIntoVideo(t *testing.T) {
	f := setup(t)
	seedChannel(t, f.client, "history")
	tk := seedClaimed(t, f, "page-composites")
	p := project(t, f, tk)

	for i := 1; i <= 4; i++ {
		writePNG(t, p.AssetPath(i))
	}
	markStageDone(t, f, tk.ID, models.StageAssets, 4)

	res := execute(f, tk, models.StatusAssetsApproved)
	require.NoError(t, res.Err)
	assert.Equal(t, models.StatusVideoReady, res.FinalStatus)

	got := reload(t, f, tk.ID)
	assert.True(t, got.Steps.Step(models.StageComposites).Completed)
	assert.True(t, got.Steps.Step(models.StageVideo).Completed)

	// Composites render in-process; only the clips hit a generator.
	assert.Empty(t, f.runner.callsFor("imagegen"))
	videoCalls := f.runner.callsFor("videogen")
	require.Len(t, videoCalls, 3)
	assert.Contains(t, argValue(videoCalls[0].Args, "--image"), "https://assets.example.com/channels/history/")

	for i := 1; i <= 3; i++ {
		assert.True(t, workspace.FileReady(p.CompositePath(i)), "composite %d", i)
	}

	assert.Equal(t, []models.Status{
		models.StatusGeneratingComposites,
		models.StatusGeneratingVideo,
		models.StatusVideoReady,
	}, f.pusher.statuses())
}

func TestExecute_TransientFailureSchedulesRetry(t *testing.T) {
	f := setup(t)
	seedChannel(t, f.client, "history")
	tk := seedClaimed(t, f, "page-retry")

	f.runner.onRun = func(req driver.Request) error {
		return &driver.GeneratorError{Command: req.Command, Kind: driver.KindTransient, ExitCode: 1}
	}

	res := execute(f, tk, models.StatusQueued)
	require.Error(t, res.Err)
	assert.Equal(t, models.StatusRetry, res.FinalStatus)

	got := reload(t, f, tk.ID)
	assert.Equal(t, task.StatusRetry, got.Status)
	assert.Equal(t, 1, got.Attempts)
	require.NotNil(t, got.RetryAfter)
	assert.True(t, got.RetryAfter.After(time.Now()))
	assert.Nil(t, got.ClaimedBy)

	// Transient failures leave the error log alone.
	assert.Empty(t, got.ErrorLog)
}

func TestExecute_PermanentFailureParksInError(t *testing.T) {
	f := setup(t)
	seedChannel(t, f.client, "history")
	tk := seedClaimed(t, f, "page-auth")

	f.runner.onRun = func(req driver.Request) error {
		return &driver.GeneratorError{Command: req.Command, Kind: driver.KindAuthFailed, ExitCode: 1, Stderr: "401 unauthorized"}
	}

	res := execute(f, tk, models.StatusQueued)
	require.Error(t, res.Err)
	assert.Equal(t, models.StatusAssetError, res.FinalStatus)

	got := reload(t, f, tk.ID)
	assert.Equal(t, task.StatusAssetError, got.Status)
	assert.Contains(t, got.ErrorLog, "assets stage failed")
	assert.Contains(t, f.pusher.statuses(), models.StatusAssetError)
}

func TestExecute_GovernorSlotReleasedOnPanic(t *testing.T) {
	f := setup(t)
	seedChannel(t, f.client, "history")
	tk := seedClaimed(t, f, "page-panic")

	f.runner.onRun = func(driver.Request) error {
		panic("generator wrapper bug")
	}

	require.Panics(t, func() { execute(f, tk, models.StatusQueued) })

	// The admitted asset slot came back even though the run never
	// returned: with a cap of 1 the class must still admit.
	f.gov.SetCaps(config.GovernorConfig{
		MaxConcurrentAssetGen: 1,
		MaxConcurrentVideoGen: 1,
		MaxConcurrentAudioGen: 1,
	})
	assert.True(t, f.gov.WouldAdmit(models.StageAssets))
}

func TestExecute_AttemptCapExhaustsToError(t *testing.T) {
	f := setup(t)
	seedChannel(t, f.client, "history")
	tk := seedClaimed(t, f, "page-cap")
	_, err := tk.Update().SetAttempts(4).Save(context.Background())
	require.NoError(t, err)

	f.runner.onRun = func(req driver.Request) error {
		return &driver.GeneratorError{Command: req.Command, Kind: driver.KindTransient, ExitCode: 1}
	}

	res := execute(f, tk, models.StatusRetry)
	assert.Equal(t, models.StatusAssetError, res.FinalStatus)

	got := reload(t, f, tk.ID)
	assert.Equal(t, task.StatusAssetError, got.Status)
	assert.Contains(t, got.ErrorLog, "after 5 attempts")
}

func TestExecute_RateLimitPausesService(t *testing.T) {
	f := setup(t)
	seedChannel(t, f.client, "history")
	tk := seedClaimed(t, f, "page-ratelimit")

	f.runner.onRun = func(req driver.Request) error {
		return &driver.GeneratorError{Command: req.Command, Kind: driver.KindRateLimited, ExitCode: 1}
	}

	res := execute(f, tk, models.StatusQueued)
	assert.Equal(t, models.StatusRetry, res.FinalStatus)
	assert.True(t, f.gov.ServicePaused("image"))
}

func TestExecute_DrainReleasesClaim(t *testing.T) {
	f := setup(t)
	seedChannel(t, f.client, "history")
	tk := seedClaimed(t, f, "page-drain")

	res := f.orch.Execute(context.Background(), &queue.Claimed{Task: tk, Prev: models.StatusQueued}, func() bool { return true })
	require.NoError(t, res.Err)
	assert.True(t, res.Released)
	assert.Equal(t, models.StatusQueued, res.FinalStatus)

	got := reload(t, f, tk.ID)
	assert.Equal(t, task.StatusQueued, got.Status)
	assert.Nil(t, got.ClaimedBy)
	assert.Empty(t, f.runner.calls)
}

func TestExecute_SaturatedClassReleasesClaim(t *testing.T) {
	f := setup(t)
	seedChannel(t, f.client, "history")
	tk := seedClaimed(t, f, "page-saturated")

	f.gov.SetCaps(config.GovernorConfig{
		MaxConcurrentAssetGen: 1,
		MaxConcurrentVideoGen: 1,
		MaxConcurrentAudioGen: 1,
	})
	require.True(t, f.gov.Admit(models.StageAssets)) // take the only slot

	res := execute(f, tk, models.StatusQueued)
	require.NoError(t, res.Err)
	assert.True(t, res.Released)

	got := reload(t, f, tk.ID)
	assert.Equal(t, task.StatusQueued, got.Status)
}

func TestExecute_AudioRepairRegeneratesOnlyFlaggedClips(t *testing.T) {
	f := setup(t)
	seedChannel(t, f.client, "history")
	tk := seedClaimed(t, f, "page-repair")
	p := project(t, f, tk)

	for i := 1; i <= 3; i++ {
		writeFile(t, p.NarrationPath(i))
		writeFile(t, p.SFXPath(i))
	}
	markStageDone(t, f, tk.ID, models.StageAudio, 3)
	markStageDone(t, f, tk.ID, models.StageSFX, 3)
	err := f.tasks.UpdateLedger(context.Background(), tk.ID, func(l models.Ledger) {
		l.Step(models.StageAudio).FailedAudioClipNumbers = &models.AudioRepair{
			Narration: []int{2},
			SFX:       []int{1, 3},
		}
	})
	require.NoError(t, err)

	res := execute(f, tk, models.StatusQueued)
	require.NoError(t, res.Err)
	assert.Equal(t, models.StatusAudioReady, res.FinalStatus)

	ttsCalls := f.runner.callsFor("tts")
	require.Len(t, ttsCalls, 1)
	assert.Equal(t, p.NarrationPath(2), argValue(ttsCalls[0].Args, "--output"))
	assert.Equal(t, "voice-a", ttsCalls[0].Env["VOICE_ID"])
	assert.Len(t, f.runner.callsFor("sfxgen"), 2)

	got := reload(t, f, tk.ID)
	assert.True(t, got.Steps.Step(models.StageAudio).FailedAudioClipNumbers.Empty())
	assert.Contains(t, got.Steps.Step(models.StageAudio).NarrationDurations, 2)
}

func TestExecute_AssemblyWritesManifestAndFinalizes(t *testing.T) {
	f := setup(t)
	seedChannel(t, f.client, "history")
	tk := seedClaimed(t, f, "page-assembly")
	p := project(t, f, tk)

	for i := 1; i <= 3; i++ {
		writeFile(t, p.ClipPath(i))
		writeFile(t, p.NarrationPath(i))
		writeFile(t, p.SFXPath(i))
	}
	for _, s := range []models.Stage{models.StageAssets, models.StageComposites, models.StageVideo} {
		markStageDone(t, f, tk.ID, s, 3)
	}
	markStageDone(t, f, tk.ID, models.StageAudio, 3)
	markStageDone(t, f, tk.ID, models.StageSFX, 3)
	err := f.tasks.UpdateLedger(context.Background(), tk.ID, func(l models.Ledger) {
		l.Step(models.StageAudio).NarrationDurations = map[int]float64{1: 8.5, 2: 7.0, 3: 9.25}
	})
	require.NoError(t, err)

	res := execute(f, tk, models.StatusSFXApproved)
	require.NoError(t, res.Err)
	assert.Equal(t, models.StatusFinalReview, res.FinalStatus)

	require.Len(t, f.runner.callsFor("assemble"), 1)
	assert.True(t, workspace.FileReady(p.ManifestPath()))

	data, err := os.ReadFile(p.ManifestPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"clip_number": 1`)
	assert.Contains(t, string(data), `"narration_duration": 8.5`)

	got := reload(t, f, tk.ID)
	assert.Equal(t, task.StatusFinalReview, got.Status)
	require.NotNil(t, got.OutputPath)
	assert.Equal(t, p.FinalPath(), *got.OutputPath)
	require.NotNil(t, got.OutputDurationS)
	assert.InDelta(t, 24.75, *got.OutputDurationS, 0.001)
	assert.NotNil(t, got.PipelineEndTime)
}

func TestExecute_AssemblyMissingInputFailsPermanently(t *testing.T) {
	f := setup(t)
	seedChannel(t, f.client, "history")
	tk := seedClaimed(t, f, "page-assembly-missing")
	p := project(t, f, tk)

	// Clip 2's narration is missing.
	for i := 1; i <= 3; i++ {
		writeFile(t, p.ClipPath(i))
		writeFile(t, p.SFXPath(i))
	}
	writeFile(t, p.NarrationPath(1))
	writeFile(t, p.NarrationPath(3))

	res := execute(f, tk, models.StatusSFXApproved)
	require.Error(t, res.Err)
	assert.Equal(t, models.StatusAssemblyError, res.FinalStatus)
	assert.Empty(t, f.runner.callsFor("assemble"))

	got := reload(t, f, tk.ID)
	assert.Contains(t, got.ErrorLog, "assembly input missing")
}

func TestOutstandingAfterPartialFailure(t *testing.T) {
	// A failure mid-stage keeps earlier units settled; the retry only
	// regenerates the remainder.
	f := setup(t)
	seedChannel(t, f.client, "history")
	tk := seedClaimed(t, f, "page-partial")

	failed := 0
	f.runner.onRun = func(req driver.Request) error {
		if len(f.runner.callsFor("imagegen")) > 2 && failed == 0 {
			failed++
			return &driver.GeneratorError{Command: req.Command, Kind: driver.KindTransient, ExitCode: 1}
		}
		return nil
	}

	res := execute(f, tk, models.StatusQueued)
	assert.Equal(t, models.StatusRetry, res.FinalStatus)

	got := reload(t, f, tk.ID)
	step := got.Steps.Step(models.StageAssets)
	assert.Equal(t, []int{1, 2}, step.DoneIndices)
	assert.False(t, step.Completed)

	// Second pass finishes only the outstanding units.
	_, err := got.Update().SetStatus(task.StatusClaimed).SetClaimedBy("w-test").Save(context.Background())
	require.NoError(t, err)
	res = execute(f, reload(t, f, tk.ID), models.StatusRetry)
	require.NoError(t, res.Err)
	assert.Equal(t, models.StatusAssetsReady, res.FinalStatus)
	assert.Len(t, f.runner.callsFor("imagegen"), 5)
}

func TestBackoffGrowsAndCaps(t *testing.T) {
	f := setup(t)
	base := f.orch.cfg.Stages.BackoffBase
	max := f.orch.cfg.Stages.BackoffMax

	prevCeil := time.Duration(0)
	for attempt := 1; attempt <= 8; attempt++ {
		d := f.orch.backoff(attempt)
		assert.GreaterOrEqual(t, d, base, "attempt %d", attempt)
		assert.LessOrEqual(t, d, max+max/5, "attempt %d", attempt)
		if attempt <= 5 {
			assert.Greater(t, d, prevCeil/4, "attempt %d should grow", attempt)
		}
		prevCeil = d
	}
}

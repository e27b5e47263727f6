// Package pipeline drives a claimed task through its generation stages.
// The orchestrator resolves the entry stage from the claim and the resume
// ledger, runs generators unit by unit, and parks the task at a review
// gate, in retry backoff, or in an error status. It never waits for a
// human: gates release the claim and the board poller brings the decision
// back as a new claimable status.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/reelworks/reelpipe/ent"
	"github.com/reelworks/reelpipe/pkg/config"
	"github.com/reelworks/reelpipe/pkg/driver"
	"github.com/reelworks/reelpipe/pkg/governor"
	"github.com/reelworks/reelpipe/pkg/models"
	"github.com/reelworks/reelpipe/pkg/notify"
	"github.com/reelworks/reelpipe/pkg/queue"
	"github.com/reelworks/reelpipe/pkg/secrets"
	"github.com/reelworks/reelpipe/pkg/services"
	"github.com/reelworks/reelpipe/pkg/workspace"
)

var stageRuns = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "reelpipe_stage_runs_total",
	Help: "Stage executions by stage and outcome.",
}, []string{"stage", "outcome"})

// errDrained aborts a stage between sub-items during graceful shutdown.
// The in-flight sub-item always finishes; only the next one is skipped.
var errDrained = errors.New("worker draining")

// StatusPusher mirrors status changes to the external board. Pushes are
// fire-and-forget; the pipeline never blocks on the board.
type StatusPusher interface {
	Push(pageID string, status models.Status)
}

// Config carries the orchestrator's execution policy.
type Config struct {
	Stages     *config.StageConfig
	Generators *config.GeneratorConfig

	// DefaultVoiceID is the TTS fallback when a channel has no voice.
	DefaultVoiceID string

	// PublicAssetBaseURL maps workspace-relative paths to the public URLs
	// the video generator fetches composites from.
	PublicAssetBaseURL string
}

// Orchestrator executes claimed tasks. It implements queue.TaskExecutor.
type Orchestrator struct {
	tasks     *services.TaskService
	channels  *services.ChannelService
	runner    driver.Runner
	gov       *governor.Governor
	layout    *workspace.Layout
	pusher    StatusPusher
	decryptor *secrets.Decryptor
	notifier  *notify.Service
	cfg       Config
	logger    *slog.Logger
}

// New creates an Orchestrator. notifier may be nil; pusher may be nil when
// board sync is disabled.
func New(
	tasks *services.TaskService,
	channels *services.ChannelService,
	runner driver.Runner,
	gov *governor.Governor,
	layout *workspace.Layout,
	pusher StatusPusher,
	decryptor *secrets.Decryptor,
	notifier *notify.Service,
	cfg Config,
) *Orchestrator {
	return &Orchestrator{
		tasks:     tasks,
		channels:  channels,
		runner:    runner,
		gov:       gov,
		layout:    layout,
		pusher:    pusher,
		decryptor: decryptor,
		notifier:  notifier,
		cfg:       cfg,
		logger:    slog.Default().With("component", "orchestrator"),
	}
}

// Execute drives a claimed task until it parks. The loop normally runs a
// single stage and stops at its review gate; composites are the
// exception and flow straight into video generation.
func (o *Orchestrator) Execute(ctx context.Context, claimed *queue.Claimed, drain func() bool) *queue.ExecutionResult {
	t := claimed.Task
	log := o.logger.With("task_id", t.ID, "channel_id", t.ChannelID)

	ch, err := o.channels.Get(ctx, t.ChannelID)
	if err != nil {
		res := o.releaseClaim(ctx, t, models.StatusClaimed, log)
		res.Err = fmt.Errorf("loading channel: %w", err)
		return res
	}

	steps, err := o.tasks.Ledger(ctx, t.ID)
	if err != nil {
		res := o.releaseClaim(ctx, t, models.StatusClaimed, log)
		res.Err = fmt.Errorf("loading ledger: %w", err)
		return res
	}

	stage := models.EntryStage(claimed.Prev, steps)
	current := models.StatusClaimed

	for stage.Valid() {
		if drain() {
			return o.releaseClaim(ctx, t, current, log)
		}
		if svc := upstreamService(stage); svc != "" && o.gov.ServicePaused(svc) {
			log.Info("Upstream service in backoff, releasing claim",
				"stage", string(stage), "service", svc)
			return o.releaseClaim(ctx, t, current, log)
		}
		if !o.gov.Admit(stage) {
			log.Info("Stage class saturated, releasing claim", "stage", string(stage))
			return o.releaseClaim(ctx, t, current, log)
		}

		// The admitted slot is released on every exit from this closure,
		// panics included.
		abort, runErr := func() (*queue.ExecutionResult, error) {
			defer o.gov.Release(stage)

			gen := models.GeneratingStatus(stage)
			if err := o.tasks.Transition(ctx, t.ID, current, gen); err != nil {
				return &queue.ExecutionResult{FinalStatus: current, Err: err}, nil
			}
			current = gen
			if err := o.tasks.StampPipelineStart(ctx, t.ID); err != nil {
				log.Warn("Failed to stamp pipeline start", "error", err)
			}
			o.push(t.BoardPageID, gen)
			log.Info("Stage started", "stage", string(stage), "status", string(gen))

			return nil, o.runStage(ctx, t, ch, stage, drain)
		}()
		if abort != nil {
			return abort
		}

		if errors.Is(runErr, errDrained) {
			stageRuns.WithLabelValues(string(stage), "released").Inc()
			return o.releaseClaim(ctx, t, current, log)
		}
		if runErr != nil {
			return o.parkFailure(ctx, t, ch, current, stage, runErr, log)
		}

		stageRuns.WithLabelValues(string(stage), "completed").Inc()
		ready := models.ReadyStatus(stage)
		if ready == "" {
			// Composites have no gate; continue into the next stage.
			stage = stage.Next()
			continue
		}
		return o.parkReady(ctx, t, ch, current, stage, ready, log)
	}

	return &queue.ExecutionResult{
		FinalStatus: current,
		Err:         fmt.Errorf("no runnable stage for status %s", claimed.Prev),
	}
}

// parkReady moves a finished stage to its review gate, releasing the
// claim and resetting the retry counters.
func (o *Orchestrator) parkReady(ctx context.Context, t *ent.Task, ch *ent.Channel, gen models.Status, stage models.Stage, ready models.Status, log *slog.Logger) *queue.ExecutionResult {
	patches := []services.Patch{func(u *ent.TaskUpdate) {
		u.SetAttempts(0).ClearRetryAfter().ClearClaimedBy().ClearLastHeartbeatAt()
	}}

	if stage == models.StageAssembly {
		finalize, err := o.finalizePatch(ctx, t, log)
		if err != nil {
			return &queue.ExecutionResult{FinalStatus: gen, Err: err}
		}
		patches = append(patches, finalize)
	}

	if err := o.tasks.Transition(ctx, t.ID, gen, ready, patches...); err != nil {
		return &queue.ExecutionResult{FinalStatus: gen, Err: err}
	}
	o.push(t.BoardPageID, ready)
	log.Info("Stage complete, waiting for review", "stage", string(stage), "status", string(ready))

	o.notifier.NotifyReviewReady(ctx, notify.ReviewReadyInput{
		TaskID:      t.ID,
		Title:       t.Title,
		ChannelName: ch.Name,
		Gate:        ready,
	})
	return &queue.ExecutionResult{FinalStatus: ready}
}

// finalizePatch builds the terminal-output patch for assembly: output
// path, total duration from the narration ledger, and the end timestamp.
func (o *Orchestrator) finalizePatch(ctx context.Context, t *ent.Task, log *slog.Logger) (services.Patch, error) {
	project, err := o.layout.Project(t.ChannelID, t.ID)
	if err != nil {
		return nil, err
	}
	steps, err := o.tasks.Ledger(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	total := 0.0
	for _, d := range steps.Step(models.StageAudio).NarrationDurations {
		total += d
	}
	now := time.Now()

	if fresh, err := o.tasks.Get(ctx, t.ID); err == nil && fresh.PipelineStartTime != nil {
		if wall := now.Sub(*fresh.PipelineStartTime); wall > o.cfg.Stages.MaxDuration {
			log.Warn("Pipeline exceeded wall-clock target",
				"elapsed", wall.Round(time.Second).String(),
				"target", o.cfg.Stages.MaxDuration.String())
		}
	}

	outPath := project.FinalPath()
	return func(u *ent.TaskUpdate) {
		u.SetOutputPath(outPath).
			SetOutputDurationS(total).
			SetPipelineEndTime(now)
	}, nil
}

// parkFailure applies the retry policy to a failed stage run: transient
// kinds back off and requeue up to the attempt cap, everything else parks
// the task in the stage's error status.
func (o *Orchestrator) parkFailure(ctx context.Context, t *ent.Task, ch *ent.Channel, gen models.Status, stage models.Stage, runErr error, log *slog.Logger) *queue.ExecutionResult {
	var genErr *driver.GeneratorError
	var cfgErr *configError

	retryable := true
	switch {
	case errors.As(runErr, &genErr):
		retryable = genErr.Kind.Retryable()
	case errors.As(runErr, &cfgErr):
		retryable = false
	}

	attempts := t.Attempts
	if fresh, err := o.tasks.Get(ctx, t.ID); err == nil {
		attempts = fresh.Attempts
	}
	attempts++ // counting this failure

	clearClaim := func(u *ent.TaskUpdate) {
		u.ClearClaimedBy().ClearLastHeartbeatAt()
	}

	if retryable && attempts < o.cfg.Stages.AttemptCap {
		delay := o.backoff(attempts)
		if genErr != nil && genErr.Kind == driver.KindRateLimited {
			if svc := upstreamService(stage); svc != "" {
				o.gov.PauseService(svc, time.Now().Add(delay))
			}
		}
		retryAt := time.Now().Add(delay)
		err := o.tasks.Transition(ctx, t.ID, gen, models.StatusRetry, clearClaim,
			func(u *ent.TaskUpdate) {
				u.AddAttempts(1).SetRetryAfter(retryAt)
			})
		if err != nil {
			return &queue.ExecutionResult{FinalStatus: gen, Err: err}
		}
		o.push(t.BoardPageID, models.StatusRetry)
		stageRuns.WithLabelValues(string(stage), "retry").Inc()
		log.Warn("Stage failed, retry scheduled",
			"stage", string(stage), "attempt", attempts,
			"retry_after", retryAt.Format(time.RFC3339), "error", runErr)
		return &queue.ExecutionResult{FinalStatus: models.StatusRetry}
	}

	errStatus := models.ErrorStatus(stage)
	msg := fmt.Sprintf("%s stage failed: %v", stage, runErr)
	if retryable {
		msg = fmt.Sprintf("%s stage failed after %d attempts: %v", stage, attempts, runErr)
	}

	if err := o.tasks.Transition(ctx, t.ID, gen, errStatus, clearClaim, func(u *ent.TaskUpdate) {
		u.AddAttempts(1)
	}); err != nil {
		return &queue.ExecutionResult{FinalStatus: gen, Err: err}
	}
	if err := o.tasks.AppendError(ctx, t.ID, msg); err != nil {
		log.Error("Failed to append error log", "error", err)
	}
	o.push(t.BoardPageID, errStatus)
	stageRuns.WithLabelValues(string(stage), "error").Inc()
	log.Error("Stage failed permanently",
		"stage", string(stage), "status", string(errStatus), "error", runErr)

	o.notifier.NotifyTaskErrored(ctx, notify.TaskErroredInput{
		TaskID:      t.ID,
		Title:       t.Title,
		ChannelName: ch.Name,
		Status:      errStatus,
		Reason:      msg,
	})
	return &queue.ExecutionResult{FinalStatus: errStatus, Err: runErr}
}

// releaseClaim returns the task to the queue with its ledger intact.
func (o *Orchestrator) releaseClaim(ctx context.Context, t *ent.Task, from models.Status, log *slog.Logger) *queue.ExecutionResult {
	if err := o.tasks.Release(ctx, t.ID, from); err != nil {
		return &queue.ExecutionResult{FinalStatus: from, Err: fmt.Errorf("releasing claim: %w", err)}
	}
	o.push(t.BoardPageID, models.StatusQueued)
	log.Info("Claim released", "was_status", string(from))
	return &queue.ExecutionResult{FinalStatus: models.StatusQueued, Released: true}
}

// backoff computes the retry delay for the given attempt number: base
// doubled per attempt with up to 20% jitter, capped at the maximum.
func (o *Orchestrator) backoff(attempt int) time.Duration {
	d := o.cfg.Stages.BackoffBase
	for i := 1; i < attempt && d < o.cfg.Stages.BackoffMax; i++ {
		d *= 2
	}
	if d > o.cfg.Stages.BackoffMax {
		d = o.cfg.Stages.BackoffMax
	}
	jitter := time.Duration(rand.Int64N(int64(d/5) + 1))
	return d + jitter
}

func (o *Orchestrator) push(pageID string, status models.Status) {
	if o.pusher == nil || pageID == "" {
		return
	}
	o.pusher.Push(pageID, status)
}

// upstreamService names the external service a stage class contends on,
// for rate-limit pauses. Assembly is local work and has none.
func upstreamService(stage models.Stage) string {
	switch stage.Class() {
	case models.ClassAsset:
		return "image"
	case models.ClassVideo:
		return "video"
	case models.ClassAudio:
		return "audio"
	}
	return ""
}

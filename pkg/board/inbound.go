package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"

	"github.com/reelworks/reelpipe/pkg/config"
	"github.com/reelworks/reelpipe/pkg/models"
	"github.com/reelworks/reelpipe/pkg/services"
)

var pollCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "reelpipe_board_poll_actions_total",
	Help: "Inbound board poll actions, by kind.",
}, []string{"action"})

// Poller pulls human edits from the board into the task store: new
// queued pages become tasks, approval flips release review gates,
// rejection flips carry feedback into the resume ledger, and queued
// flips on errored tasks re-enqueue them.
type Poller struct {
	api   API
	tasks *services.TaskService

	mu          sync.Mutex
	interval    time.Duration
	databaseIDs []string

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	logger   *slog.Logger
}

// NewPoller creates a Poller. With no database ids, or a nil api, inbound
// sync is disabled.
func NewPoller(api API, tasks *services.TaskService, cfg *config.BoardConfig) *Poller {
	return &Poller{
		api:         api,
		tasks:       tasks,
		interval:    cfg.SyncInterval,
		databaseIDs: cfg.DatabaseIDs,
		stopCh:      make(chan struct{}),
		logger:      slog.Default().With("component", "board-poller"),
	}
}

// Reconfigure applies a reloaded interval and database id list. Takes
// effect at the next tick.
func (p *Poller) Reconfigure(cfg *config.BoardConfig) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.interval = cfg.SyncInterval
	p.databaseIDs = cfg.DatabaseIDs
}

func (p *Poller) enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.api != nil && len(p.databaseIDs) > 0
}

// Start begins the poll loop.
func (p *Poller) Start(ctx context.Context) {
	if p.api == nil {
		p.logger.Info("Inbound board sync disabled")
		return
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for {
			p.mu.Lock()
			interval := p.interval
			p.mu.Unlock()

			select {
			case <-ctx.Done():
				return
			case <-p.stopCh:
				return
			case <-time.After(interval):
				if !p.enabled() {
					continue
				}
				if err := p.PollOnce(ctx); err != nil {
					p.logger.Error("Board poll failed", "error", err)
				}
			}
		}
	}()
}

// Stop stops the poll loop.
func (p *Poller) Stop() {
	if p.api == nil {
		return
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

// PollOnce scans every configured board database and reconciles each
// page. Databases are scanned concurrently; the shared rate limiter
// still serializes the API calls underneath. Exposed for tests and for
// the ops API's manual sync trigger.
func (p *Poller) PollOnce(ctx context.Context) error {
	p.mu.Lock()
	ids := append([]string(nil), p.databaseIDs...)
	p.mu.Unlock()

	// Plain group on purpose: one failing database must not cancel the
	// scans of the others.
	var g errgroup.Group
	g.SetLimit(4)
	for _, dbID := range ids {
		g.Go(func() error {
			pages, err := p.api.QueryPages(ctx, dbID)
			if err != nil {
				return fmt.Errorf("database %s: %w", dbID, err)
			}
			for i := range pages {
				if err := p.reconcilePage(ctx, &pages[i]); err != nil {
					p.logger.Error("Page reconciliation failed",
						"page_id", pages[i].ID, "error", err)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// reconcilePage applies one page's board state to the task store.
func (p *Poller) reconcilePage(ctx context.Context, page *Page) error {
	boardStatus, known := CoreStatus(page.Status)
	if !known {
		return nil
	}

	t, err := p.tasks.GetByBoardPage(ctx, page.ID)
	if errors.Is(err, services.ErrNotFound) {
		if boardStatus != models.StatusQueued {
			return nil
		}
		return p.createTask(ctx, page)
	}
	if err != nil {
		return err
	}

	current := models.Status(t.Status)
	if current == boardStatus {
		return nil
	}
	// The board lags the store while a worker is generating; only human
	// edits that change the machine's course are pulled in.
	switch {
	case current.IsReviewGate() && boardStatus == models.ApprovedStatusForGate(current):
		return p.approve(ctx, t.ID, current, boardStatus, page)
	case current.IsReviewGate() && boardStatus.IsError():
		return p.reject(ctx, t.ID, current, boardStatus, page)
	case current.IsError() && boardStatus == models.StatusQueued:
		return p.requeue(ctx, t.ID, current)
	case current == models.StatusDraft && boardStatus == models.StatusQueued:
		return p.requeue(ctx, t.ID, current)
	}
	return nil
}

func (p *Poller) createTask(ctx context.Context, page *Page) error {
	if page.ChannelID == "" {
		p.logger.Warn("Queued board page has no channel, skipping", "page_id", page.ID)
		return nil
	}
	_, created, err := p.tasks.UpsertFromBoard(ctx, models.UpsertTaskInput{
		BoardPageID:    page.ID,
		ChannelID:      page.ChannelID,
		Title:          page.Title,
		Topic:          page.Topic,
		StoryDirection: page.StoryDirection,
		Priority:       models.ParsePriority(page.Priority),
	})
	if err != nil {
		return err
	}
	if created {
		pollCounter.WithLabelValues("task_created").Inc()
		p.logger.Info("Task created from board page",
			"page_id", page.ID, "channel_id", page.ChannelID, "title", page.Title)
	}
	return nil
}

func (p *Poller) approve(ctx context.Context, taskID string, gate, to models.Status, page *Page) error {
	err := p.tasks.Transition(ctx, taskID, gate, to)
	if err != nil {
		var terr *services.TransitionError
		if errors.As(err, &terr) && terr.Stale {
			p.logger.Debug("Approval lost race, skipping", "task_id", taskID)
			return nil
		}
		return err
	}
	pollCounter.WithLabelValues("approved").Inc()
	p.logger.Info("Review approved",
		"task_id", taskID, "gate", string(gate), "reviewer", page.Reviewer)
	return p.tasks.RecordReview(ctx, taskID, models.ReviewEvidence{
		Gate:     gate,
		Reviewer: page.Reviewer,
		Decision: "approved",
		Feedback: page.Feedback,
	})
}

func (p *Poller) reject(ctx context.Context, taskID string, gate, to models.Status, page *Page) error {
	stage, ok := to.StageFor()
	if !ok || !models.CanTransition(gate, to) {
		return nil
	}

	fb, err := ParseFeedback(page.Feedback)
	if err != nil {
		p.logger.Warn("Unparseable rejection feedback, reopening the whole stage",
			"task_id", taskID, "error", err)
		fb = &Feedback{}
	}
	if err := p.tasks.UpdateLedger(ctx, taskID, func(l models.Ledger) {
		if fb.Empty() {
			// No per-item annotations: the next claim reruns the stage
			// from scratch.
			reopenStage(l, stage)
		} else {
			applyFeedback(l, stage, fb)
		}
	}); err != nil {
		return err
	}

	err = p.tasks.Transition(ctx, taskID, gate, to)
	if err != nil {
		var terr *services.TransitionError
		if errors.As(err, &terr) && terr.Stale {
			p.logger.Debug("Rejection lost race, skipping", "task_id", taskID)
			return nil
		}
		return err
	}
	pollCounter.WithLabelValues("rejected").Inc()

	if page.Feedback != "" {
		_ = p.tasks.AppendError(ctx, taskID, fmt.Sprintf("review rejected at %s: %s", gate, page.Feedback))
	}
	return p.tasks.RecordReview(ctx, taskID, models.ReviewEvidence{
		Gate:     gate,
		Reviewer: page.Reviewer,
		Decision: "rejected",
		Feedback: page.Feedback,
	})
}

func (p *Poller) requeue(ctx context.Context, taskID string, from models.Status) error {
	err := p.tasks.Transition(ctx, taskID, from, models.StatusQueued)
	if err != nil {
		var terr *services.TransitionError
		if errors.As(err, &terr) && terr.Stale {
			return nil
		}
		return err
	}
	pollCounter.WithLabelValues("requeued").Inc()
	p.logger.Info("Task re-enqueued from board", "task_id", taskID, "from", string(from))
	return nil
}

// applyFeedback writes rejection annotations into the ledger entry of the
// rejected stage so the repair pass regenerates exactly those items.
func applyFeedback(l models.Ledger, stage models.Stage, fb *Feedback) {
	switch stage {
	case models.StageAssets:
		markFailed(l, models.StageAssets, fb.Assets)
		markFailed(l, models.StageComposites, fb.Composites)
	case models.StageVideo:
		markFailed(l, models.StageVideo, fb.Videos)
	case models.StageAudio, models.StageSFX:
		// Narration and SFX rejections ride the audio repair pass together
		// regardless of which gate the rejection came from.
		step := l.Step(models.StageAudio)
		repair := step.FailedAudioClipNumbers
		if repair == nil {
			repair = &models.AudioRepair{}
		}
		repair.Narration = mergeIndices(repair.Narration, fb.Narration)
		repair.SFX = mergeIndices(repair.SFX, fb.SFX)
		step.FailedAudioClipNumbers = repair
	}
}

// reopenStage clears a stage's completion record so the next claim
// regenerates it whole. Paired stages reopen together, the same grouping
// applyFeedback uses.
func reopenStage(l models.Ledger, stage models.Stage) {
	reset := func(st models.Stage) {
		step := l.Step(st)
		step.Completed = false
		step.DoneIndices = nil
		step.FailedIndices = nil
	}
	switch stage {
	case models.StageAssets:
		reset(models.StageAssets)
		reset(models.StageComposites)
	case models.StageAudio, models.StageSFX:
		reset(models.StageAudio)
		reset(models.StageSFX)
		l.Step(models.StageAudio).FailedAudioClipNumbers = nil
	default:
		reset(stage)
	}
}

func markFailed(l models.Ledger, stage models.Stage, indices []int) {
	if len(indices) == 0 {
		return
	}
	step := l.Step(stage)
	step.FailedIndices = mergeIndices(step.FailedIndices, indices)
	step.Completed = false
	for _, i := range indices {
		step.DoneIndices = removeIndex(step.DoneIndices, i)
	}
}

func mergeIndices(existing, add []int) []int {
	seen := map[int]bool{}
	for _, i := range existing {
		seen[i] = true
	}
	for _, i := range add {
		if !seen[i] {
			existing = append(existing, i)
			seen[i] = true
		}
	}
	return existing
}

func removeIndex(s []int, v int) []int {
	out := s[:0]
	for _, i := range s {
		if i != v {
			out = append(out, i)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

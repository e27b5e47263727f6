// Package services implements the task store contract on top of the Ent
// client: idempotent upsert from the board, conditional status
// transitions, the append-only error log, the cost ledger, and resume
// ledger access. All mutations are short transactions; retries are the
// caller's responsibility.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/reelworks/reelpipe/ent"
	"github.com/reelworks/reelpipe/ent/costentry"
	"github.com/reelworks/reelpipe/ent/task"
	"github.com/reelworks/reelpipe/pkg/models"
)

// TaskService owns all task row mutation.
type TaskService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewTaskService creates a TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{
		client: client,
		logger: slog.Default().With("component", "task-service"),
	}
}

// UpsertFromBoard creates a task for a board page, or returns the existing
// one. Idempotent on BoardPageID: concurrent duplicate creations collapse
// to at-most-one row. The second return is true when a new row was created.
func (s *TaskService) UpsertFromBoard(ctx context.Context, in models.UpsertTaskInput) (*ent.Task, bool, error) {
	if in.BoardPageID == "" {
		return nil, false, fmt.Errorf("%w: board_page_id is required", ErrInvalidInput)
	}
	if in.ChannelID == "" {
		return nil, false, fmt.Errorf("%w: channel_id is required", ErrInvalidInput)
	}
	if in.Title == "" {
		return nil, false, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if existing, err := s.client.Task.Query().
		Where(task.BoardPageIDEQ(in.BoardPageID)).
		Only(ctx); err == nil {
		return existing, false, nil
	} else if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("querying task by board page: %w", err)
	}

	ch, err := s.client.Channel.Get(ctx, in.ChannelID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, fmt.Errorf("channel %q: %w", in.ChannelID, ErrNotFound)
		}
		return nil, false, fmt.Errorf("loading channel: %w", err)
	}

	assetCount := in.AssetCount
	if assetCount <= 0 {
		assetCount = ch.DefaultAssetCount
	}
	clipCount := in.ClipCount
	if clipCount <= 0 {
		clipCount = ch.DefaultClipCount
	}

	created, err := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetChannelID(ch.ID).
		SetBoardPageID(in.BoardPageID).
		SetTitle(in.Title).
		SetTopic(in.Topic).
		SetStoryDirection(in.StoryDirection).
		SetPriority(task.Priority(in.Priority)).
		SetPriorityRank(in.Priority.Rank()).
		SetStatus(task.StatusQueued).
		SetAssetCount(assetCount).
		SetClipCount(clipCount).
		SetSteps(models.Ledger{}).
		Save(ctx)
	if err != nil {
		// A concurrent upsert won the unique race on board_page_id.
		if ent.IsConstraintError(err) {
			existing, qerr := s.client.Task.Query().
				Where(task.BoardPageIDEQ(in.BoardPageID)).
				Only(ctx)
			if qerr != nil {
				return nil, false, fmt.Errorf("resolving upsert race: %w", qerr)
			}
			s.logger.Info("Task already exists for board page",
				"board_page_id", in.BoardPageID, "task_id", existing.ID)
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("creating task: %w", err)
	}

	return created, true, nil
}

// Patch mutates a conditional transition update beyond the status change.
type Patch func(*ent.TaskUpdate)

// Transition performs a conditional status update: it succeeds only when
// (from, to) is a state machine edge and the row is currently in from.
// Review gate timestamps commit in the same transaction as the status
// change: a gate entry is never visible without its timestamp.
func (s *TaskService) Transition(ctx context.Context, taskID string, from, to models.Status, patches ...Patch) error {
	if !models.CanTransition(from, to) {
		return &TransitionError{TaskID: taskID, From: from, To: to}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	upd := tx.Task.Update().
		Where(task.IDEQ(taskID), task.StatusEQ(task.Status(from))).
		SetStatus(task.Status(to))
	for _, p := range patches {
		p(upd)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("transition %s -> %s: %w", from, to, err)
	}
	if n == 0 {
		return &TransitionError{TaskID: taskID, From: from, To: to, Stale: true}
	}

	now := time.Now()
	if to.IsReviewGate() {
		// Stamped once, on first entry to any review gate.
		_, err = tx.Task.Update().
			Where(task.IDEQ(taskID), task.ReviewStartedAtIsNil()).
			SetReviewStartedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("stamping review_started_at: %w", err)
		}
	}
	if from.IsReviewGate() && !to.IsReviewGate() {
		// Leaving a gate to an approval or rejection status.
		err = tx.Task.UpdateOneID(taskID).
			SetReviewCompletedAt(now).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("stamping review_completed_at: %w", err)
		}
	}
	return tx.Commit()
}

// AppendError appends a timestamp-prefixed entry to the task's error log.
// The log is append-only: existing entries are never rewritten.
func (s *TaskService) AppendError(ctx context.Context, taskID, text string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	t, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("loading task: %w", err)
	}

	entry := fmt.Sprintf("[%s] %s", time.Now().UTC().Format(time.RFC3339), text)
	log := t.ErrorLog
	if log != "" {
		log += "\n"
	}
	log += entry

	if err := tx.Task.UpdateOneID(taskID).SetErrorLog(log).Exec(ctx); err != nil {
		return fmt.Errorf("appending error log: %w", err)
	}
	return tx.Commit()
}

// RecordCost appends a cost entry and bumps the task's rolling total in
// the same transaction, keeping pipeline_cost_usd equal to the entry sum.
func (s *TaskService) RecordCost(ctx context.Context, taskID string, stage models.Stage, amountUSD float64, units int) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.CostEntry.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetStage(costentry.Stage(stage)).
		SetAmountUsd(amountUSD).
		SetUnits(units).
		Exec(ctx); err != nil {
		return fmt.Errorf("creating cost entry: %w", err)
	}

	if err := tx.Task.UpdateOneID(taskID).
		AddPipelineCostUsd(amountUSD).
		Exec(ctx); err != nil {
		return fmt.Errorf("updating task cost total: %w", err)
	}
	return tx.Commit()
}

// RecordReview appends a review decision to the task's review log. The
// log is append-only; the board keeps the authoritative review trail and
// this is the core's local copy.
func (s *TaskService) RecordReview(ctx context.Context, taskID string, ev models.ReviewEvidence) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	t, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("loading task: %w", err)
	}

	if ev.At == "" {
		ev.At = time.Now().UTC().Format(time.RFC3339)
	}
	log := append(t.ReviewLog, ev)

	if err := tx.Task.UpdateOneID(taskID).SetReviewLog(log).Exec(ctx); err != nil {
		return fmt.Errorf("appending review log: %w", err)
	}
	return tx.Commit()
}

// Ledger loads the task's resume ledger. A never-written ledger is empty,
// not nil.
func (s *TaskService) Ledger(ctx context.Context, taskID string) (models.Ledger, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading task: %w", err)
	}
	if t.Steps == nil {
		return models.Ledger{}, nil
	}
	return t.Steps, nil
}

// UpdateLedger applies fn to the ledger under a row lock and writes the
// result atomically. No intermediate half-ledger state is ever visible.
func (s *TaskService) UpdateLedger(ctx context.Context, taskID string, fn func(models.Ledger)) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	t, err := tx.Task.Query().
		Where(task.IDEQ(taskID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("loading task: %w", err)
	}

	ledger := t.Steps
	if ledger == nil {
		ledger = models.Ledger{}
	}
	fn(ledger)

	if err := tx.Task.UpdateOneID(taskID).SetSteps(ledger).Exec(ctx); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return tx.Commit()
}

// StampPipelineStart records the moment generation work first began.
// Idempotent: only the first call writes.
func (s *TaskService) StampPipelineStart(ctx context.Context, taskID string) error {
	_, err := s.client.Task.Update().
		Where(task.IDEQ(taskID), task.PipelineStartTimeIsNil()).
		SetPipelineStartTime(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("stamping pipeline_start_time: %w", err)
	}
	return nil
}

// Heartbeat refreshes the claim liveness marker.
func (s *TaskService) Heartbeat(ctx context.Context, taskID string) error {
	return s.client.Task.UpdateOneID(taskID).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
}

// Release returns a claimed or in-flight task to the queue with its
// ledger intact, clearing the claim markers.
func (s *TaskService) Release(ctx context.Context, taskID string, from models.Status) error {
	return s.Transition(ctx, taskID, from, models.StatusQueued, func(u *ent.TaskUpdate) {
		u.ClearClaimedBy().ClearLastHeartbeatAt()
	})
}

// Get loads a task.
func (s *TaskService) Get(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// GetByBoardPage loads a task by its board page identifier.
func (s *TaskService) GetByBoardPage(ctx context.Context, pageID string) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(task.BoardPageIDEQ(pageID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

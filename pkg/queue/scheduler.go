package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/reelworks/reelpipe/ent"
	"github.com/reelworks/reelpipe/ent/task"
	"github.com/reelworks/reelpipe/pkg/governor"
	"github.com/reelworks/reelpipe/pkg/models"
	"github.com/reelworks/reelpipe/pkg/services"
)

// Scheduler picks the next claimable task. Priority decides first,
// across every channel; within one priority bucket channels rotate
// round-robin by last_claimed_at, then age breaks the remaining ties.
// The governor's admission predicate filters out stages whose resource
// class is saturated. Skipped candidates are never mutated.
type Scheduler struct {
	client    *ent.Client
	channels  *services.ChannelService
	gov       *governor.Governor
	batchSize int
	logger    *slog.Logger
}

// NewScheduler creates a Scheduler.
func NewScheduler(client *ent.Client, channels *services.ChannelService, gov *governor.Governor, batchSize int) *Scheduler {
	if batchSize < 1 {
		batchSize = 1
	}
	return &Scheduler{
		client:    client,
		channels:  channels,
		gov:       gov,
		batchSize: batchSize,
		logger:    slog.Default().With("component", "scheduler"),
	}
}

// ClaimNext claims one task for workerID, or returns ErrNoTasksAvailable.
// The claimed task's channel moves to the back of the rotation.
func (s *Scheduler) ClaimNext(ctx context.Context, workerID string) (*Claimed, error) {
	channels, err := s.channels.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing channels: %w", err)
	}
	if len(channels) == 0 {
		return nil, ErrNoTasksAvailable
	}

	// ListActive orders least-recently-claimed first; the index is each
	// channel's rotation rank for this poll.
	rotation := make(map[string]int, len(channels))
	channelIDs := make([]string, len(channels))
	for i, ch := range channels {
		rotation[ch.ID] = i
		channelIDs[i] = ch.ID
	}

	claimed, err := s.claimBest(ctx, workerID, channelIDs, rotation)
	if err != nil {
		return nil, err
	}
	if err := s.channels.TouchLastClaimed(ctx, claimed.Task.ChannelID); err != nil {
		s.logger.Warn("Failed to rotate channel fairness marker",
			"channel_id", claimed.Task.ChannelID, "error", err)
	}
	return claimed, nil
}

// claimBest atomically claims the best admissible candidate across all
// channels using FOR UPDATE SKIP LOCKED, so concurrent workers never
// fight over the same row. Candidates are ranked priority DESC, then by
// channel rotation, then created_at ASC: a high-priority task in a
// recently served channel still beats every lower-priority task.
func (s *Scheduler) claimBest(ctx context.Context, workerID string, channelIDs []string, rotation map[string]int) (*Claimed, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	claimableStatuses := make([]task.Status, 0, 6)
	for _, st := range models.ClaimableStatuses() {
		claimableStatuses = append(claimableStatuses, task.Status(st))
	}

	candidates, err := tx.Task.Query().
		Where(
			task.ChannelIDIn(channelIDs...),
			task.StatusIn(claimableStatuses...),
			task.Or(task.RetryAfterIsNil(), task.RetryAfterLT(time.Now())),
		).
		Order(ent.Desc(task.FieldPriorityRank), ent.Asc(task.FieldCreatedAt)).
		Limit(s.batchSize).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query claim candidates: %w", err)
	}

	// The query's priority-then-age order keeps the batch cut correct; the
	// rotation tie-break only reorders equals within it.
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.PriorityRank != b.PriorityRank {
			return a.PriorityRank > b.PriorityRank
		}
		if ra, rb := rotation[a.ChannelID], rotation[b.ChannelID]; ra != rb {
			return ra < rb
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})

	for _, t := range candidates {
		prev := models.Status(t.Status)
		stage := models.EntryStage(prev, t.Steps)
		if !s.gov.WouldAdmit(stage) {
			continue
		}

		updated, err := t.Update().
			SetStatus(task.StatusClaimed).
			SetClaimedBy(workerID).
			SetLastHeartbeatAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to claim task: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit claim: %w", err)
		}
		return &Claimed{Task: updated, Prev: prev}, nil
	}

	return nil, ErrNoTasksAvailable
}

// QueueDepth counts tasks currently eligible for claim, for health
// reporting.
func (s *Scheduler) QueueDepth(ctx context.Context) (int, error) {
	claimableStatuses := make([]task.Status, 0, 6)
	for _, st := range models.ClaimableStatuses() {
		claimableStatuses = append(claimableStatuses, task.Status(st))
	}
	return s.client.Task.Query().
		Where(task.StatusIn(claimableStatuses...)).
		Count(ctx)
}

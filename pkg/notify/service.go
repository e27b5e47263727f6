// Package notify delivers ops notifications to Slack when tasks park in
// an error status or reach a review gate. The whole package is optional:
// without a token and channel the service is nil and every method is a
// no-op.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/reelworks/reelpipe/pkg/models"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token   string
	Channel string
}

// TaskErroredInput contains data for a stage failure notification.
type TaskErroredInput struct {
	TaskID      string
	Title       string
	ChannelName string
	Status      models.Status
	Reason      string // already redacted
}

// ReviewReadyInput contains data for a review gate notification.
type ReviewReadyInput struct {
	TaskID      string
	Title       string
	ChannelName string
	Gate        models.Status
}

// Service handles Slack notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client *Client
	logger *slog.Logger
}

// NewService creates a notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client: NewClient(cfg.Token, cfg.Channel),
		logger: slog.Default().With("component", "notify-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client) *Service {
	return &Service{
		client: client,
		logger: slog.Default().With("component", "notify-service"),
	}
}

// NotifyTaskErrored announces a task parked in an error status.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyTaskErrored(ctx context.Context, in TaskErroredInput) {
	if s == nil {
		return
	}
	blocks := BuildTaskErroredMessage(in)
	if err := s.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		s.logger.Error("Failed to send error notification",
			"task_id", in.TaskID, "status", string(in.Status), "error", err)
		return
	}
	s.logger.Info("Sent error notification", "task_id", in.TaskID, "status", string(in.Status))
}

// NotifyReviewReady announces a task waiting at a review gate.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyReviewReady(ctx context.Context, in ReviewReadyInput) {
	if s == nil {
		return
	}
	blocks := BuildReviewReadyMessage(in)
	if err := s.client.PostMessage(ctx, blocks, 5*time.Second); err != nil {
		s.logger.Error("Failed to send review notification",
			"task_id", in.TaskID, "gate", string(in.Gate), "error", err)
	}
}

package services

import (
	"errors"
	"fmt"

	"github.com/reelworks/reelpipe/pkg/models"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when an upsert collapses onto an
	// existing row. Callers log at info and move on.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidTransition is returned when a status change is outside the
	// state machine, or when the row's current status no longer matches
	// the expected source (lost race).
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)

// TransitionError carries the offending edge for logs.
type TransitionError struct {
	TaskID string
	From   models.Status
	To     models.Status
	// Stale is true when the edge itself is legal but the row was no
	// longer in From at update time.
	Stale bool
}

func (e *TransitionError) Error() string {
	if e.Stale {
		return fmt.Sprintf("task %s: transition %s -> %s lost race (row moved)", e.TaskID, e.From, e.To)
	}
	return fmt.Sprintf("task %s: transition %s -> %s not in state machine", e.TaskID, e.From, e.To)
}

// Unwrap lets callers match on ErrInvalidTransition.
func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

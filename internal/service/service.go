// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"
	"errors"
)

// ErrInvalidIndex is returned when a task index is outside the list.
var ErrInvalidIndex = errors.New("invalid task index")

// Service defines the interface for task backend operations.
// Menu commands only talk to the task list through this interface.
// Indexes are 0-based positions in the current list.
type Service interface {
	// Tasks returns a copy of all tasks in insertion order.
	Tasks(ctx context.Context) ([]Task, error)

	// AddTask appends an open task and persists the list.
	AddTask(ctx context.Context, description string) (Task, error)

	// CompleteTask marks the task at index completed and persists the list.
	// Completing an already completed task is not an error.
	// Returns ErrInvalidIndex without mutating anything if index is out of range.
	CompleteTask(ctx context.Context, index int) (Task, error)

	// DeleteTask removes the task at index and persists the list.
	// Later tasks shift down by one position.
	// Returns ErrInvalidIndex without mutating anything if index is out of range.
	DeleteTask(ctx context.Context, index int) (Task, error)
}

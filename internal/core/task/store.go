package task

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a task id does not exist.
	ErrNotFound = errors.New("task not found")
	// ErrValidation is returned when a field value is empty or unrecognized.
	ErrValidation = errors.New("invalid field value")
	// ErrInvalidDueDate is returned when a due-date expression is rejected.
	// The wrapped cause distinguishes malformed input from an invalid
	// calendar date.
	ErrInvalidDueDate = errors.New("invalid due date")
)

// ListFilter controls which tasks are returned by list operations.
type ListFilter struct {
	Status Status   // empty means all statuses
	Sort   SortMode // empty means SortDue
}

// Store defines the interface for task persistence.
type Store interface {
	// Create persists a new task, assigning the next id. Ids are
	// monotonically increasing and never reused, even after deletes.
	Create(ctx context.Context, t *Task) error

	// Get returns a single task by id.
	// Returns ErrNotFound if the task does not exist.
	Get(ctx context.Context, id int) (Task, error)

	// List returns every task in the store in unspecified order.
	List(ctx context.Context) ([]Task, error)

	// Update replaces the stored task with the same id.
	// Returns ErrNotFound if the task does not exist.
	Update(ctx context.Context, t Task) error

	// Delete removes a task permanently. The id is not reassigned.
	// Returns ErrNotFound if the task does not exist.
	Delete(ctx context.Context, id int) error
}

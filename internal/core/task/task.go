// Package task defines the task domain model for the tracker.
package task

import "time"

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// IsValid returns true if the status is a recognized lifecycle state.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Rank returns the lifecycle ordering used by status sorting:
// todo(0) < in-progress(1) < done(2). Unknown statuses are rejected
// at the input and load boundaries, so they never reach here.
func (s Status) Rank() int {
	switch s {
	case StatusTodo:
		return 0
	case StatusInProgress:
		return 1
	case StatusDone:
		return 2
	default:
		return 3
	}
}

// SortMode selects the ordering of list results.
type SortMode string

const (
	// SortDue orders by ascending due date; tasks without a due date
	// sort after all tasks that have one.
	SortDue SortMode = "due"
	// SortCreated orders by created_at descending (newest first).
	SortCreated SortMode = "created"
	// SortUpdated orders by updated_at descending (newest first).
	SortUpdated SortMode = "updated"
	// SortStatus orders by lifecycle rank, ties broken by ascending id.
	SortStatus SortMode = "status"
	// SortID orders by ascending id.
	SortID SortMode = "id"
)

// IsValid returns true if the sort mode is recognized.
func (m SortMode) IsValid() bool {
	switch m {
	case SortDue, SortCreated, SortUpdated, SortStatus, SortID:
		return true
	}
	return false
}

// Task represents a single trackable unit of work.
type Task struct {
	ID          int        `json:"id"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Overdue reports whether the task's due date has passed without the
// task being done. Derived at read time, never stored.
func (t Task) Overdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != StatusDone
}

// Row is a task as returned by list operations, carrying the derived
// overdue flag computed against the clock at list time.
type Row struct {
	Task
	Overdue bool `json:"overdue"`
}

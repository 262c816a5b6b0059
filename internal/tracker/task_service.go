package tracker

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/tasker/internal/core/dateparse"
	"github.com/colonyops/tasker/internal/core/task"
	"github.com/colonyops/tasker/internal/core/validate"
)

// TaskService wraps task.Store with the tracker's domain logic:
// validation, due-date interpretation, status transitions, and the
// sorted/filtered list view.
type TaskService struct {
	store task.Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewTaskService creates a new TaskService.
func NewTaskService(store task.Store, log zerolog.Logger) *TaskService {
	return &TaskService{
		store: store,
		log:   log.With().Str("component", "task-service").Logger(),
		now:   time.Now,
	}
}

// Add creates a new task with status todo. dueRaw is interpreted by
// the date parser when non-empty; empty means no deadline.
func (s *TaskService) Add(ctx context.Context, description, dueRaw string) (task.Task, error) {
	if err := validate.Description(description); err != nil {
		return task.Task{}, fmt.Errorf("%w: %v", task.ErrValidation, err)
	}

	now := s.now()

	var due *time.Time
	if dueRaw != "" {
		parsed, err := dateparse.Parse(dueRaw, now)
		if err != nil {
			return task.Task{}, fmt.Errorf("%w: %w", task.ErrInvalidDueDate, err)
		}
		due = &parsed
	}

	t := task.Task{
		Description: description,
		Status:      task.StatusTodo,
		DueDate:     due,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Create(ctx, &t); err != nil {
		return task.Task{}, fmt.Errorf("add task: %w", err)
	}

	s.log.Info().Int("id", t.ID).Msg("task added")

	return t, nil
}

// Update modifies an existing task. A nil description leaves it
// unchanged. dueRaw has three meanings: nil leaves the due date
// unchanged, a pointer to the empty string clears it, and anything
// else is re-parsed. updated_at is always refreshed.
func (s *TaskService) Update(ctx context.Context, id int, description, dueRaw *string) (task.Task, error) {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return task.Task{}, fmt.Errorf("update task: %w", err)
	}

	if description != nil {
		if err := validate.Description(*description); err != nil {
			return task.Task{}, fmt.Errorf("%w: %v", task.ErrValidation, err)
		}
		t.Description = *description
	}

	if dueRaw != nil {
		if *dueRaw == "" {
			t.DueDate = nil
		} else {
			parsed, err := dateparse.Parse(*dueRaw, s.now())
			if err != nil {
				return task.Task{}, fmt.Errorf("%w: %w", task.ErrInvalidDueDate, err)
			}
			t.DueDate = &parsed
		}
	}

	t.UpdatedAt = s.now()

	if err := s.store.Update(ctx, t); err != nil {
		return task.Task{}, fmt.Errorf("update task: %w", err)
	}

	s.log.Info().Int("id", t.ID).Msg("task updated")

	return t, nil
}

// Delete removes a task permanently. Its id is never reissued.
func (s *TaskService) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.log.Info().Int("id", id).Msg("task deleted")

	return nil
}

// MarkInProgress sets a task's status to in-progress.
func (s *TaskService) MarkInProgress(ctx context.Context, id int) (task.Task, error) {
	return s.setStatus(ctx, id, task.StatusInProgress)
}

// MarkDone sets a task's status to done.
func (s *TaskService) MarkDone(ctx context.Context, id int) (task.Task, error) {
	return s.setStatus(ctx, id, task.StatusDone)
}

// setStatus is the single mutation path for status changes. It is
// idempotent; re-marking an already marked task still refreshes
// updated_at.
func (s *TaskService) setStatus(ctx context.Context, id int, status task.Status) (task.Task, error) {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return task.Task{}, fmt.Errorf("mark task: %w", err)
	}

	t.Status = status
	t.UpdatedAt = s.now()

	if err := s.store.Update(ctx, t); err != nil {
		return task.Task{}, fmt.Errorf("mark task: %w", err)
	}

	s.log.Info().Int("id", t.ID).Str("status", string(status)).Msg("task status changed")

	return t, nil
}

// List returns the current task set as rows, filtered and sorted. The
// view is recomputed fresh on every call; the overdue flag is derived
// against the clock at list time and never stored.
func (s *TaskService) List(ctx context.Context, filter task.ListFilter) ([]task.Row, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: %v", task.ErrValidation, validate.Status(string(filter.Status)))
	}

	sortBy := filter.Sort
	if sortBy == "" {
		sortBy = task.SortDue
	}
	if !sortBy.IsValid() {
		return nil, fmt.Errorf("%w: %v", task.ErrValidation, validate.SortMode(string(sortBy)))
	}

	tasks, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	now := s.now()

	rows := make([]task.Row, 0, len(tasks))
	for _, t := range tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		rows = append(rows, task.Row{Task: t, Overdue: t.Overdue(now)})
	}

	slices.SortFunc(rows, comparatorFor(sortBy))

	return rows, nil
}

// comparatorFor maps a sort mode to its ordering. Callers validate the
// mode first; every recognized mode is matched exhaustively.
func comparatorFor(mode task.SortMode) func(a, b task.Row) int {
	switch mode {
	case task.SortDue:
		return compareDue
	case task.SortCreated:
		return func(a, b task.Row) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case task.SortUpdated:
		return func(a, b task.Row) int { return b.UpdatedAt.Compare(a.UpdatedAt) }
	case task.SortStatus:
		return func(a, b task.Row) int {
			if c := cmp.Compare(a.Status.Rank(), b.Status.Rank()); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		}
	case task.SortID:
		return func(a, b task.Row) int { return cmp.Compare(a.ID, b.ID) }
	default:
		panic(fmt.Sprintf("unvalidated sort mode %q", mode))
	}
}

// compareDue orders by ascending due date. Tasks without a due date
// sort after all tasks that have one; ties break by ascending id so
// the ordering is deterministic.
func compareDue(a, b task.Row) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return cmp.Compare(a.ID, b.ID)
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	}

	if c := a.DueDate.Compare(*b.DueDate); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

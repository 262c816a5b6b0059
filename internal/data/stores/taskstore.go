package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/colonyops/tasker/internal/core/task"
)

// taskFile is the root JSON structure stored on disk. The next-id
// counter is persisted alongside the tasks so ids survive deletes and
// are never reused.
type taskFile struct {
	NextID int         `json:"next_id"`
	Tasks  []task.Task `json:"tasks"`
}

// TaskStore implements task.Store using a single JSON file.
type TaskStore struct {
	path string
	mu   sync.RWMutex
}

var _ task.Store = (*TaskStore)(nil)

// NewTaskStore creates a JSON file task store at the given path. The
// file is created lazily on the first write; a missing file reads as
// an empty store.
func NewTaskStore(path string) *TaskStore {
	return &TaskStore{path: path}
}

// Create persists a new task, assigning the next id.
func (s *TaskStore) Create(ctx context.Context, t *task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}

	t.ID = file.NextID
	file.NextID++
	file.Tasks = append(file.Tasks, *t)

	return s.save(file)
}

// Get returns a single task by id.
func (s *TaskStore) Get(ctx context.Context, id int) (task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.load()
	if err != nil {
		return task.Task{}, err
	}

	for _, t := range file.Tasks {
		if t.ID == id {
			return t, nil
		}
	}

	return task.Task{}, task.ErrNotFound
}

// List returns every task in the store.
func (s *TaskStore) List(ctx context.Context) ([]task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}

	return file.Tasks, nil
}

// Update replaces the stored task with the same id.
func (s *TaskStore) Update(ctx context.Context, t task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(file.Tasks, func(existing task.Task) bool {
		return existing.ID == t.ID
	})
	if idx < 0 {
		return task.ErrNotFound
	}

	file.Tasks[idx] = t

	return s.save(file)
}

// Delete removes a task permanently. The next-id counter is untouched
// so the id is never reissued.
func (s *TaskStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(file.Tasks, func(existing task.Task) bool {
		return existing.ID == id
	})
	if idx < 0 {
		return task.ErrNotFound
	}

	file.Tasks = slices.Delete(file.Tasks, idx, idx+1)

	return s.save(file)
}

// load reads the task file from disk.
// Returns an empty store if the file doesn't exist yet.
func (s *TaskStore) load() (taskFile, error) {
	empty := taskFile{NextID: 1}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return empty, nil
		}
		return taskFile{}, fmt.Errorf("read task file: %w", err)
	}

	if len(data) == 0 {
		return empty, nil
	}

	var file taskFile
	if err := json.Unmarshal(data, &file); err != nil {
		return taskFile{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}

	maxID := 0
	for _, t := range file.Tasks {
		if !t.Status.IsValid() {
			return taskFile{}, fmt.Errorf("%w: task %d has unknown status %q", ErrCorrupt, t.ID, t.Status)
		}
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	// Files written before the counter existed derive it from the
	// highest id present.
	if file.NextID <= maxID {
		file.NextID = maxID + 1
	}

	return file, nil
}

// save writes the task file to disk atomically. A failed write leaves
// the previously persisted file unmodified.
func (s *TaskStore) save(file taskFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode task file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace task file: %w", err)
	}

	return nil
}

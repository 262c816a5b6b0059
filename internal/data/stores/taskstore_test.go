package stores

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tasker/internal/core/task"
)

func testStore(t *testing.T) *TaskStore {
	t.Helper()
	return NewTaskStore(filepath.Join(t.TempDir(), "tasks.json"))
}

func TestTaskStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns sequential ids from one", func(t *testing.T) {
		store := testStore(t)

		for want := 1; want <= 3; want++ {
			tk := task.Task{Description: "task", Status: task.StatusTodo}
			require.NoError(t, store.Create(ctx, &tk))
			assert.Equal(t, want, tk.ID)
		}
	})

	t.Run("ids survive deletes and are never reused", func(t *testing.T) {
		store := testStore(t)

		first := task.Task{Description: "only", Status: task.StatusTodo}
		require.NoError(t, store.Create(ctx, &first))
		require.Equal(t, 1, first.ID)

		require.NoError(t, store.Delete(ctx, 1))

		tasks, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)

		second := task.Task{Description: "next", Status: task.StatusTodo}
		require.NoError(t, store.Create(ctx, &second))
		assert.Equal(t, 2, second.ID)
	})

	t.Run("counter persists across store instances", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")

		store := NewTaskStore(path)
		tk := task.Task{Description: "one", Status: task.StatusTodo}
		require.NoError(t, store.Create(ctx, &tk))
		require.NoError(t, store.Delete(ctx, tk.ID))

		reopened := NewTaskStore(path)
		next := task.Task{Description: "two", Status: task.StatusTodo}
		require.NoError(t, reopened.Create(ctx, &next))
		assert.Equal(t, 2, next.ID)
	})
}

func TestTaskStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")

	due := time.Date(2025, time.December, 24, 18, 30, 0, 0, time.Local)
	created := time.Date(2025, time.October, 1, 9, 30, 12, 500, time.Local)

	original := task.Task{
		Description: "Write report",
		Status:      task.StatusInProgress,
		DueDate:     &due,
		CreatedAt:   created,
		UpdatedAt:   created.Add(time.Hour),
	}

	store := NewTaskStore(path)
	require.NoError(t, store.Create(ctx, &original))

	got, err := NewTaskStore(path).Get(ctx, original.ID)
	require.NoError(t, err)

	assert.Equal(t, original.ID, got.ID)
	assert.Equal(t, original.Description, got.Description)
	assert.Equal(t, original.Status, got.Status)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))
	assert.True(t, got.CreatedAt.Equal(original.CreatedAt))
	assert.True(t, got.UpdatedAt.Equal(original.UpdatedAt))
}

func TestTaskStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		store := testStore(t)

		_, err := store.Get(ctx, 42)
		assert.ErrorIs(t, err, task.ErrNotFound)
	})
}

func TestTaskStore_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the stored task", func(t *testing.T) {
		store := testStore(t)

		tk := task.Task{Description: "before", Status: task.StatusTodo}
		require.NoError(t, store.Create(ctx, &tk))

		tk.Description = "after"
		tk.Status = task.StatusDone
		require.NoError(t, store.Update(ctx, tk))

		got, err := store.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, "after", got.Description)
		assert.Equal(t, task.StatusDone, got.Status)
	})

	t.Run("not found", func(t *testing.T) {
		store := testStore(t)

		err := store.Update(ctx, task.Task{ID: 7, Description: "ghost", Status: task.StatusTodo})
		assert.ErrorIs(t, err, task.ErrNotFound)
	})
}

func TestTaskStore_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		store := testStore(t)

		assert.ErrorIs(t, store.Delete(ctx, 1), task.ErrNotFound)
	})
}

func TestTaskStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file reads as empty store", func(t *testing.T) {
		store := testStore(t)

		tasks, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("unparseable file fails loudly", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := NewTaskStore(path).List(ctx)
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("unknown status fails loudly", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		blob := `{"next_id": 2, "tasks": [{"id": 1, "description": "x", "status": "archived", "created_at": "2025-01-01T00:00:00Z", "updated_at": "2025-01-01T00:00:00Z"}]}`
		require.NoError(t, os.WriteFile(path, []byte(blob), 0o644))

		_, err := NewTaskStore(path).List(ctx)
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("missing counter derives from highest id", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		blob := `{"tasks": [{"id": 5, "description": "x", "status": "todo", "created_at": "2025-01-01T00:00:00Z", "updated_at": "2025-01-01T00:00:00Z"}]}`
		require.NoError(t, os.WriteFile(path, []byte(blob), 0o644))

		store := NewTaskStore(path)

		tk := task.Task{Description: "y", Status: task.StatusTodo}
		require.NoError(t, store.Create(ctx, &tk))
		assert.Equal(t, 6, tk.ID)
	})

	t.Run("failed load does not clobber the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		blob := []byte("{not json")
		require.NoError(t, os.WriteFile(path, blob, 0o644))

		store := NewTaskStore(path)
		err := store.Create(ctx, &task.Task{Description: "x", Status: task.StatusTodo})
		require.ErrorIs(t, err, ErrCorrupt)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, blob, data)
	})
}

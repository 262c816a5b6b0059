// Package tracker implements the task record engine: CRUD, status
// transitions, due-date interpretation, and the sorted list view.
package tracker

import (
	"github.com/colonyops/tasker/internal/core/config"
)

// App is the central entry point for all tracker operations.
// Commands consume App instead of cherry-picking raw dependencies.
type App struct {
	Tasks  *TaskService
	Config *config.Config
}

// NewApp constructs an App from explicit dependencies.
func NewApp(tasks *TaskService, cfg *config.Config) *App {
	return &App{
		Tasks:  tasks,
		Config: cfg,
	}
}

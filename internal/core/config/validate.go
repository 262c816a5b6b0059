package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tasker/internal/core/validate"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("tasks_file", c.TasksFile, tasksFileName),
		validate.SortModeField("default_sort", c.DefaultSort),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

// tasksFileName validates the task file is a bare file name, not a path.
func tasksFileName(name string) error {
	if name == "" {
		return fmt.Errorf("file name is required")
	}
	if filepath.Base(name) != name {
		return fmt.Errorf("%s must be a file name, not a path", name)
	}
	return nil
}

// isDirectoryOrNotExist validates a path is a directory or absent.
// The data directory is created lazily on first write.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is a file, not a directory", path)
	}
	return nil
}

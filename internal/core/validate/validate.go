// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tasker/internal/core/task"
)

// Description validates a task description is non-empty after trimming whitespace.
func Description(desc string) error {
	if strings.TrimSpace(desc) == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}

// DescriptionField returns a criterio validator for task descriptions.
func DescriptionField(field, desc string) error {
	return criterio.Run(field, desc, Description)
}

// Status validates a status string names a known lifecycle state.
func Status(s string) error {
	if !task.Status(s).IsValid() {
		return fmt.Errorf("unknown status %q: must be one of todo, in-progress, done", s)
	}
	return nil
}

// SortMode validates a sort mode string names a known ordering.
func SortMode(m string) error {
	if !task.SortMode(m).IsValid() {
		return fmt.Errorf("unknown sort mode %q: must be one of due, created, updated, status, id", m)
	}
	return nil
}

// SortModeField returns a criterio validator for sort modes.
func SortModeField(field, m string) error {
	return criterio.Run(field, m, SortMode)
}

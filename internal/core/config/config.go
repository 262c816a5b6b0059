// Package config handles configuration loading and validation for tasker.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/tasker/internal/core/task"
)

// Config holds the application configuration.
type Config struct {
	// TasksFile is the name of the task file inside the data directory.
	TasksFile string `yaml:"tasks_file"`
	// DefaultSort is the sort mode used by list when none is given.
	DefaultSort string `yaml:"default_sort"`
	// DataDir is set by the caller, not from the config file.
	DataDir string `yaml:"-"`
}

// DefaultConfig returns the built-in configuration defaults.
func DefaultConfig() Config {
	return Config{
		TasksFile:   "tasks.json",
		DefaultSort: string(task.SortDue),
	}
}

// Load reads the config file at configPath, falling back to defaults
// when the file does not exist. dataDir always comes from the caller.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TasksFile == "" {
		c.TasksFile = defaults.TasksFile
	}
	if c.DefaultSort == "" {
		c.DefaultSort = defaults.DefaultSort
	}
}

// TasksPath returns the absolute path of the persisted task file.
func (c *Config) TasksPath() string {
	return filepath.Join(c.DataDir, c.TasksFile)
}

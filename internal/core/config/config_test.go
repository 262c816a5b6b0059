package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		dir := t.TempDir()

		cfg, err := Load(filepath.Join(dir, "nope.yaml"), dir)
		require.NoError(t, err)

		assert.Equal(t, "tasks.json", cfg.TasksFile)
		assert.Equal(t, "due", cfg.DefaultSort)
		assert.Equal(t, dir, cfg.DataDir)
	})

	t.Run("empty path uses defaults", func(t *testing.T) {
		dir := t.TempDir()

		cfg, err := Load("", dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "tasks.json"), cfg.TasksPath())
	})
}

func TestLoad_File(t *testing.T) {
	t.Run("values override defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tasks_file: work.json\ndefault_sort: id\n"), 0o644))

		cfg, err := Load(path, dir)
		require.NoError(t, err)

		assert.Equal(t, "work.json", cfg.TasksFile)
		assert.Equal(t, "id", cfg.DefaultSort)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("default_sort: status\n"), 0o644))

		cfg, err := Load(path, dir)
		require.NoError(t, err)

		assert.Equal(t, "tasks.json", cfg.TasksFile)
		assert.Equal(t, "status", cfg.DefaultSort)
	})

	t.Run("unparseable file fails", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tasks_file: [oops\n"), 0o644))

		_, err := Load(path, dir)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"unknown sort mode", func(c *Config) { c.DefaultSort = "priority" }, true},
		{"tasks file with path separator", func(c *Config) { c.TasksFile = "../tasks.json" }, true},
		{"empty tasks file", func(c *Config) { c.TasksFile = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DataDir = t.TempDir()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.Equal(t, tt.wantErr, err != nil, "Validate() error = %v, wantErr %v", err, tt.wantErr)
		})
	}
}

func TestValidate_DataDirIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notadir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	cfg := DefaultConfig()
	cfg.DataDir = file

	assert.Error(t, cfg.Validate())
}

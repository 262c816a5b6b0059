package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "tasker.log")

		logger, closer, err := New("info", path)
		require.NoError(t, err)

		logger.Info().Msg("hello")
		closer()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"hello"`)
	})

	t.Run("appends across loggers", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasker.log")

		for _, msg := range []string{"first", "second"} {
			logger, closer, err := New("info", path)
			require.NoError(t, err)
			logger.Info().Msg(msg)
			closer()
		}

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "first")
		assert.Contains(t, string(data), "second")
	})

	t.Run("respects level", func(t *testing.T) {
		logger, closer, err := New("warn", "")
		require.NoError(t, err)
		defer closer()

		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, _, err := New("loud", "")
		assert.Error(t, err)
	})
}

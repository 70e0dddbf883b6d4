package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads board settings from yaml", func(t *testing.T) {
		// Given: a config file with a custom board
		path := writeConfig(t, "log-level: debug\nboard:\n  width: 9\n  height: 8\n  run-length: 5\n")

		// When: loading the config
		conf, err := Load(path)

		// Then: the values from the file should be used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, Board{Width: 9, Height: 8, RunLength: 5}, conf.Board)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		// Given: a config file without a board section
		path := writeConfig(t, "log-level: info\n")

		// When: loading the config
		conf, err := Load(path)

		// Then: the classic 7x6 board with a run of four should be used
		require.NoError(t, err)
		assert.Equal(t, Board{Width: 7, Height: 6, RunLength: 4}, conf.Board)
		assert.Equal(t, "connectfour.log", conf.LogFile)
	})

	t.Run("Env overrides the file", func(t *testing.T) {
		// Given: a config file and a BOARD_WIDTH override
		path := writeConfig(t, "board:\n  width: 7\n  height: 6\n  run-length: 4\n")
		t.Setenv("BOARD_WIDTH", "10")

		// When: loading the config
		conf, err := Load(path)

		// Then: the env value should win
		require.NoError(t, err)
		assert.Equal(t, 10, conf.Board.Width)
	})

	t.Run("Rejects non-positive dimensions", func(t *testing.T) {
		// Given: a config file with a negative height
		path := writeConfig(t, "board:\n  width: 7\n  height: -1\n  run-length: 4\n")

		// When: loading the config
		_, err := Load(path)

		// Then: ErrInvalidDimensions should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidDimensions)
	})

	t.Run("Missing file", func(t *testing.T) {
		// When: loading a config that does not exist
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: an error should be returned
		require.Error(t, err)
	})
}

func TestMustLoad_Panics(t *testing.T) {
	// Given: a path without a config file
	path := filepath.Join(t.TempDir(), "missing.yml")

	// Then: MustLoad should panic
	assert.Panics(t, func() { MustLoad(path) })
}

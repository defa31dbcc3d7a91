package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajee05/effortless-time-tracker/internal/config"
)

func loggerConfig(level, file string) *config.Config {
	return &config.Config{
		Logger: config.LoggerConfig{
			Level: level,
			File:  file,
		},
	}
}

func TestNewLogProvider_FileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ett.log")

	logger, err := NewLogProvider(loggerConfig("debug", path))
	require.NoError(t, err)
	defer logger.Close()

	logger.Infof("started with %d sessions", 3)
	logger.Debugf("debug message")
	logger.Warnf("warn message")
	logger.Errorf("error message")
	logger.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started with 3 sessions")
	assert.Contains(t, string(data), `"level":"debug"`)
}

func TestNewLogProvider_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ett.log")

	logger, err := NewLogProvider(loggerConfig("error", path))
	require.NoError(t, err)

	logger.Infof("should be filtered")
	logger.Errorf("should appear")
	logger.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "should be filtered")
	assert.Contains(t, string(data), "should appear")
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	_, err := NewLogProvider(loggerConfig("shouty", ""))
	assert.Error(t, err)
}

func TestNewLogProvider_UnwritableFile(t *testing.T) {
	_, err := NewLogProvider(loggerConfig("info", "/nonexistent/directory/ett.log"))
	assert.Error(t, err)
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()

	// Must be safe to call every method.
	logger.Debugf("debug")
	logger.Infof("info")
	logger.Warnf("warn")
	logger.Errorf("error")
	logger.Close()
}

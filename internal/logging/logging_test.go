package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestNewWritesJSONWithFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	logger, err := New(
		WithLevel("warn"),
		WithOutput(path),
		WithFields(map[string]any{"component": "test", "": "dropped"}),
	)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "warn", entry["level"])
}

func TestWithDevelopment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.log")
	logger, err := New(WithDevelopment(true), WithOutput(path))
	require.NoError(t, err)
	logger.Info("hello")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "INFO")
	assert.Contains(t, string(raw), "hello")
}

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("json", "info", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("distance computed", "metric", "euclidean", "value", 5.0)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "distance computed", entry["msg"])
	assert.Equal(t, "euclidean", entry["metric"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("text", "warn", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("visible")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("xml", "info", nil)
	assert.Error(t, err)

	_, err = New("json", "trace", nil)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}
}

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{" WARN ", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tc := range testCases {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, errUnknownLevel)
}

func TestNewFiltersLevel(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, slog.LevelInfo)
	l.Debug("hidden")
	l.Info("phase changed", slog.String("phase", "Break"))

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "phase changed", entry["msg"])
	assert.Equal(t, "Break", entry["phase"])
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "pomo.log")

	l, closer := NewFile(path, slog.LevelDebug)
	l.Debug("hello")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}

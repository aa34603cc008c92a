package debug

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesJSONRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	require.NoError(t, Init(path, slog.LevelDebug))
	t.Cleanup(func() { Close() })

	Logger().Debug("split inserted", "index", 2)
	require.NoError(t, Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan(), "expected one log line")

	var record map[string]any
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
	assert.Equal(t, "split inserted", record["msg"])
	assert.Equal(t, float64(2), record["index"])
}

func TestInit_RespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	require.NoError(t, Init(path, slog.LevelWarn))
	t.Cleanup(func() { Close() })

	Logger().Debug("dropped")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLogger_DiscardsAfterClose(t *testing.T) {
	require.NoError(t, Close())

	if Logger() == nil {
		t.Fatal("Logger() returned nil after Close")
	}
	// Must not panic.
	Logger().Info("nowhere")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ParseLevel(name); got != want {
				t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
			}
		})
	}
}

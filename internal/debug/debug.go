package debug

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "BOXDOCK_DEBUG"

var (
	logFile *os.File
	logger  *slog.Logger
	mu      sync.Mutex
)

// Init initializes debug logging to the specified file path at the given
// level. If path is empty, uses "debug.log" in the current directory.
func Init(path string, level slog.Level) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path, level)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string, level slog.Level) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// Close closes the debug log file. Later calls to Logger discard output
// until Init is called again.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = slog.New(slog.DiscardHandler)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Logger returns the debug logger. On first use it honors BOXDOCK_DEBUG;
// if that is unset or the file cannot be opened the logger discards output.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		return logger
	}
	if path := os.Getenv(EnvVar); path != "" {
		if err := initLocked(path, slog.LevelDebug); err == nil {
			return logger
		}
	}
	logger = slog.New(slog.DiscardHandler)
	return logger
}

// ParseLevel maps a config level name to a slog level. Unknown names map to
// info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

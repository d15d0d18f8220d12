package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "FLEX_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
	enabled atomic.Bool
)

func init() {
	if os.Getenv(EnvVar) != "" {
		enabled.Store(true)
	}
}

// Enabled reports whether Log writes anywhere. Hot paths check it before
// building log arguments.
func Enabled() bool {
	return enabled.Load()
}

// Init initializes debug logging to the specified file path.
// If path is empty, uses $FLEX_DEBUG, then "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		path = "debug.log"
	}

	// Ensure directory exists
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
	enabled.Store(true)
	return nil
}

// Close closes the debug log file and turns logging off.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	enabled.Store(false)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp. It does nothing
// unless logging is enabled.
func Log(format string, args ...any) {
	if !enabled.Load() {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		if err := initLocked(""); err != nil {
			enabled.Store(false)
			return
		}
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}

package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "FLEXUI_DEBUG"

var (
	out      io.Writer
	logFile  *os.File
	mu       sync.Mutex
	resolved bool
)

// Init opens path for appending and routes debug output to it.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	resolved = true
	if path == "" {
		return nil
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

	logFile = f
	out = f
	return nil
}

// SetOutput routes debug output to w. Passing nil disables logging.
// Used by tests that want to inspect log lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	resolved = true
	out = w
}

// Enabled reports whether debug output is configured.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	resolveLocked()
	return out != nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	out = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

func resolveLocked() {
	if resolved {
		return
	}
	// A bad path silently leaves logging off; debug output must never
	// break the caller.
	_ = initLocked(os.Getenv(EnvVar))
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	resolveLocked()
	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%s] %s\n", timestamp, msg)
	if logFile != nil {
		logFile.Sync()
	}
}

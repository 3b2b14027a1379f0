package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	Log("layout pass %d for %s", 3, "window")

	got := buf.String()
	if !strings.Contains(got, "layout pass 3 for window") {
		t.Errorf("Log output = %q, want message", got)
	}
	if !strings.HasPrefix(got, "[") {
		t.Errorf("Log output = %q, want timestamp prefix", got)
	}
}

func TestLog_DisabledIsNoop(t *testing.T) {
	SetOutput(nil)
	if Enabled() {
		t.Fatal("Enabled() = true after SetOutput(nil)")
	}
	// Must not panic.
	Log("ignored %d", 1)
}

func TestInit_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Close()

	Log("hello")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, want it to contain hello", data)
	}
}

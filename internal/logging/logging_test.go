package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWritesPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "snake-test", log.InfoLevel)

	logger.Info("session started", "user", "alice")
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "snake-test") || !strings.Contains(out, "session started") {
		t.Errorf("output missing prefix or message: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered at info level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"WARN", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", log.InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	New(f, "snake", log.InfoLevel).Info("hello")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q", data)
	}
}

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		ok       bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"fatal", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("ParseLevel(%q) error = %v, expected ok=%v", tt.input, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestHandlerFormat(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, Options{Level: slog.LevelDebug, Now: fixedNow}))

	logger.Info("Successfully created session", "points", 50, "note", "two words")

	// slog stamps the record itself; only check the shape of the prefix.
	line := out.String()
	if !strings.HasPrefix(line, "[") || !strings.Contains(line, "][INFO] Successfully created session") {
		t.Errorf("Unexpected line %q", line)
	}
	if !strings.HasSuffix(line, " points=50 note=\"two words\"\n") {
		t.Errorf("Unexpected attrs in %q", line)
	}
}

func TestHandlerTimestamp(t *testing.T) {
	paris, err := LoadLocation("")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}
	var out bytes.Buffer
	h := NewHandler(&out, Options{Location: paris, Now: fixedNow})

	// A zero record time falls back to Now.
	r := slog.NewRecord(time.Time{}, slog.LevelWarn, "secondary diagram skipped", 0)
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	expected := "[05032024 15:07:09][WARN] secondary diagram skipped\n"
	if out.String() != expected {
		t.Errorf("Handle wrote %q, expected %q", out.String(), expected)
	}
}

func TestHandlerConsoleThreshold(t *testing.T) {
	var file, console bytes.Buffer
	logger := slog.New(NewHandler(&file, Options{
		Level:        slog.LevelDebug,
		Console:      &console,
		ConsoleLevel: slog.LevelWarn,
		Now:          fixedNow,
	}))

	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	if n := strings.Count(file.String(), "\n"); n != 4 {
		t.Errorf("file got %d lines, expected 4", n)
	}
	if strings.Contains(console.String(), "] i") || !strings.Contains(console.String(), "[WARN] w") || !strings.Contains(console.String(), "[ERROR] e") {
		t.Errorf("Unexpected console output %q", console.String())
	}
}

func TestHandlerFileLevel(t *testing.T) {
	var file bytes.Buffer
	h := NewHandler(&file, Options{Level: slog.LevelInfo})
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("debug must be disabled without a console")
	}
	slog.New(h).Debug("hidden")
	if file.Len() != 0 {
		t.Errorf("Expected no output, got %q", file.String())
	}
}

func TestHandlerAttrsAndGroups(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, Options{Now: fixedNow}))

	logger.With("diagram", "S_i").WithGroup("op").Info("hide", "pattern", "S_w", "matches", 3)

	line := out.String()
	if !strings.Contains(line, " diagram=S_i op.pattern=S_w op.matches=3\n") {
		t.Errorf("Unexpected attrs in %q", line)
	}
}

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "supersat.log")

	for _, msg := range []string{"first", "second"} {
		l, err := Open(path, Options{Now: fixedNow})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		l.Info(msg)
		if err := l.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 || !strings.HasSuffix(lines[0], "first") || !strings.HasSuffix(lines[1], "second") {
		t.Errorf("Unexpected log file content %q", data)
	}
}

func TestOpenMissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "x.log"), Options{})
	if err == nil {
		t.Error("Expected error for a missing directory")
	}
}

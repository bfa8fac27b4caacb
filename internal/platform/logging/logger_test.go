package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConsoleLogger_WritesKeyValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsole(LevelInfo, &buf)

	logger.Info("pager refetch failed", "resource", "teams", "error", errors.New("boom"))
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "pager refetch failed") {
		t.Fatalf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "teams") || !strings.Contains(out, "boom") {
		t.Fatalf("expected fields in output, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered at info level")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		"WARN":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%s want %s", in, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected nop logger from nil receiver")
	}
}

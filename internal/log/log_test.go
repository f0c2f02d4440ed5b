package log

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(level)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelInfo)
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, LevelError)

	Debug("quiet")
	Info("quiet too")
	Error("loud", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("sub-threshold lines written: %q", out)
	}
	if !strings.Contains(out, "[ERROR] loud err=boom") {
		t.Errorf("error line missing: %q", out)
	}
}

func TestKeyValueFormatting(t *testing.T) {
	buf := capture(t, LevelDebug)

	Info("indexed", "cohorts", 120, "file", "a.xlsx")
	Debug("odd trailing key ignored", "only")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d: %q", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "[INFO] indexed cohorts=120 file=a.xlsx") {
		t.Errorf("kv line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "[DEBUG] odd trailing key ignored") {
		t.Errorf("odd-arity line = %q", lines[1])
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" ERROR ": LevelError,
		"info":    LevelInfo,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]pterm.LogLevel{
		"debug":    pterm.LogLevelDebug,
		" WARN ":   pterm.LogLevelWarn,
		"error":    pterm.LogLevelError,
		"disabled": pterm.LogLevelDisabled,
		"":         pterm.LogLevelInfo,
		"verbose":  pterm.LogLevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")
	l.Info("hidden")
	l.Warn("shown", l.Args("kind", "fetch_failed"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "fetch_failed") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestOpenFileDefaultsToStateDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_STATE_HOME", base)

	f, err := OpenFile("")
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	defer f.Close()

	want := filepath.Join(base, "gtranslate", DefaultFileName)
	if f.Name() != want {
		t.Errorf("OpenFile() path = %q, want %q", f.Name(), want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestPresentError(t *testing.T) {
	err := errors.New(`Get "https://translate.google.com/m?q=hi&tl=vi": timeout`)
	got := PresentError("translate", err)
	want := `translate: Get "https://translate.google.com/m?q=***&tl=vi": timeout`
	if got != want {
		t.Errorf("PresentError() = %q, want %q", got, want)
	}
	if PresentError("x", nil) != "" {
		t.Error("PresentError(nil) should be empty")
	}
}

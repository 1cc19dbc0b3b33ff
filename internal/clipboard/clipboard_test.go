package clipboard

import (
	"errors"
	"os"
	"runtime"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Bonjour", want: "Bonjour"},
		{name: "surrounding whitespace", in: "  Xin chào\n", want: "Xin chào"},
		{name: "inner newlines kept", in: "line one\nline two ", want: "line one\nline two"},
		{name: "shell metacharacters", in: `a & b | "c" $(d)`, want: `a & b | "c" $(d)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Memory
			if err := m.Copy(tt.in); err != nil {
				t.Fatalf("Copy() error: %v", err)
			}
			got, err := m.Read()
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Read() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMemoryCountsWrites(t *testing.T) {
	var m Memory
	_ = m.Copy("a")
	_ = m.Copy("b")
	if m.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", m.Writes())
	}
}

func TestSystemRoundTrip(t *testing.T) {
	if os.Getenv("GTRANSLATE_CLIPBOARD_TEST") != "1" {
		t.Skip("set GTRANSLATE_CLIPBOARD_TEST=1 to exercise the real clipboard")
	}
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		t.Skip("no display server")
	}

	s, err := NewSystem()
	if err != nil {
		t.Skipf("clipboard unavailable: %v", err)
	}
	if err := s.Copy("  gtranslate round trip \n"); err != nil {
		t.Fatalf("Copy() error: %v", err)
	}
	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got != "gtranslate round trip" {
		t.Errorf("Read() = %q, want %q", got, "gtranslate round trip")
	}
}

func TestUnavailableReturnsReason(t *testing.T) {
	reason := errors.New("no xclip")
	u := Unavailable{Err: reason}
	if err := u.Copy("x"); !errors.Is(err, reason) {
		t.Errorf("Copy() error = %v, want %v", err, reason)
	}
	if _, err := u.Read(); !errors.Is(err, reason) {
		t.Errorf("Read() error = %v, want %v", err, reason)
	}
}

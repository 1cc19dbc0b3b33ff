package xdg

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestConfigDirHonoursEnv(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if want := filepath.Join(base, AppName); dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Errorf("ConfigDir() did not create %q", dir)
	}
}

func TestStateDirFallsBackToHome(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("home directory comes from USERPROFILE on windows")
	}
	home := t.TempDir()
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", home)

	dir, err := StateDir()
	if err != nil {
		t.Fatalf("StateDir() error: %v", err)
	}
	if want := filepath.Join(home, ".local", "state", AppName); dir != want {
		t.Errorf("StateDir() = %q, want %q", dir, want)
	}
}

// Package xdg provides helpers to resolve XDG Base Directory paths for gtranslate.
// It falls back to the traditional ~/.config and ~/.local/state locations when
// the XDG environment variables are not set.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under every XDG base directory.
const AppName = "gtranslate"

// ConfigDir returns the XDG config directory for gtranslate.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/gtranslate when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return appDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for gtranslate.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.local/state/gtranslate when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	return appDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func appDir(env, fallback string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, fallback)
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}

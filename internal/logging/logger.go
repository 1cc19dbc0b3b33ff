// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"gtranslate/plugin/internal/xdg"
)

// DefaultFileName is the log file name inside the XDG state directory.
const DefaultFileName = "plugin.log"

// ParseLevel maps a config level name to a pterm level. Unknown names mean info.
func ParseLevel(name string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	case "disabled", "off", "none":
		return pterm.LogLevelDisabled
	default:
		return pterm.LogLevelInfo
	}
}

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level string) *pterm.Logger {
	return pterm.DefaultLogger.
		WithWriter(w).
		WithLevel(ParseLevel(level)).
		WithFormatter(pterm.LogFormatterJSON)
}

// Discard returns a logger that drops everything.
func Discard() *pterm.Logger {
	return New(io.Discard, "disabled")
}

// OpenFile opens path for appending, or plugin.log in the XDG state directory
// when path is empty. The caller closes the returned file.
func OpenFile(path string) (*os.File, error) {
	if path == "" {
		dir, err := xdg.StateDir()
		if err != nil {
			return nil, fmt.Errorf("resolve state dir: %w", err)
		}
		path = filepath.Join(dir, DefaultFileName)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// PresentError formats an error for display with query text masked.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", context, Mask(err.Error()))
}

// NewConsole returns a colorful logger for interactive commands.
func NewConsole(w io.Writer, level string) *pterm.Logger {
	return pterm.DefaultLogger.
		WithWriter(w).
		WithLevel(ParseLevel(level))
}

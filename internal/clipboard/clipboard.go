// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package clipboard writes translations to the system clipboard.
//
// The Sink interface is the only thing the launcher adapter depends on. System
// talks to the native clipboard of the current OS (Win32 API on Windows,
// pbcopy/pbpaste on macOS, xclip, xsel or wl-clipboard on Linux) without going
// through a shell, so the copied text is never interpreted. Memory keeps the
// text in process for tests and headless runs.
package clipboard

import (
	"strings"
	"sync"

	"github.com/atotto/clipboard"

	perrors "gtranslate/plugin/internal/errors"
)

// Sink copies text to a clipboard and reads it back.
type Sink interface {
	// Copy writes text with leading and trailing whitespace removed.
	Copy(text string) error
	// Read returns the current clipboard content.
	Read() (string, error)
}

// System is the native clipboard of the running OS.
type System struct{}

// NewSystem returns the native clipboard, or ClipboardFailed when the OS has
// no supported clipboard mechanism (for example Linux without xclip/xsel/wl-copy).
func NewSystem() (System, error) {
	if clipboard.Unsupported {
		return System{}, perrors.New(perrors.ClipboardFailed, "no clipboard utility available on this system")
	}
	return System{}, nil
}

func (System) Copy(text string) error {
	if err := clipboard.WriteAll(strings.TrimSpace(text)); err != nil {
		return perrors.Wrap(perrors.ClipboardFailed, "write clipboard", err)
	}
	return nil
}

func (System) Read() (string, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", perrors.Wrap(perrors.ClipboardFailed, "read clipboard", err)
	}
	return s, nil
}

// Memory is an in-process clipboard. The zero value is ready to use.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
}

func (m *Memory) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = strings.TrimSpace(text)
	m.writes++
	return nil
}

func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// Writes reports how many times Copy was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Unavailable is used when no system clipboard exists; every call returns Err.
type Unavailable struct {
	Err error
}

func (u Unavailable) Copy(string) error      { return u.Err }
func (u Unavailable) Read() (string, error) { return "", u.Err }

// Detect returns the system clipboard, or Unavailable carrying the reason.
func Detect() Sink {
	s, err := NewSystem()
	if err != nil {
		return Unavailable{Err: err}
	}
	return s
}

// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"io"
	"os"

	"gtranslate/plugin/internal/clipboard"
	"gtranslate/plugin/internal/config"
	"gtranslate/plugin/internal/logging"
	"gtranslate/plugin/internal/plugin"

	"github.com/pterm/pterm"
)

// env bundles what every command needs: configuration, a logger and a clipboard.
type env struct {
	cfg     config.Config
	logger  *pterm.Logger
	sink    clipboard.Sink
	closers []io.Closer
}

// setup loads the configuration and opens the logger. Plugin mode logs JSON to
// the log file because stdout carries the reply; interactive mode logs to stderr.
func setup(interactive bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	e := &env{cfg: cfg, sink: clipboard.Detect()}
	if interactive {
		e.logger = logging.NewConsole(os.Stderr, level)
		return e, nil
	}

	f, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		// Logging must never break the launcher reply.
		e.logger = logging.Discard()
		return e, nil
	}
	e.closers = append(e.closers, f)
	e.logger = logging.New(f, level)
	return e, nil
}

func (e *env) service() *plugin.Service {
	return plugin.New(e.cfg, e.sink, e.logger)
}

// Close releases the log file.
func (e *env) Close() {
	for _, c := range e.closers {
		_ = c.Close()
	}
}

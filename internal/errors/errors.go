// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines typed errors with categories for user-friendly reporting.
// Every failure the plugin can surface to the launcher carries a machine-readable
// Kind, so the adapter can pick the right result item without string matching.
//
// Empty input is not an error and has no Kind; it is a branch in the adapter.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// ConnectivityFailed indicates the reachability probe could not reach the site.
	ConnectivityFailed Kind = "connectivity_failed"
	// FetchFailed indicates the translation request failed or returned a non-2xx status.
	FetchFailed Kind = "fetch_failed"
	// ExtractionFailed indicates the response did not contain a translation.
	ExtractionFailed Kind = "extraction_failed"
	// ClipboardFailed indicates the system clipboard rejected the write.
	ClipboardFailed Kind = "clipboard_failed"
	// InvalidConfig indicates a configuration value failed validation.
	InvalidConfig Kind = "invalid_config"
	// InvalidRequest indicates a malformed launcher request.
	InvalidRequest Kind = "invalid_request"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the Kind of the first *E in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

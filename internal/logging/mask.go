// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging configures the plugin logger and keeps user text out of logs.
//
// Stdout belongs to the launcher's JSON-RPC channel, so the logger writes to a
// file in the XDG state directory (or stderr for interactive commands). Query
// text is redacted from every URL before it is logged.
package logging

import (
	"regexp"
)

var (
	reQueryText = regexp.MustCompile(`([?&]q=)([^&\s]*)`)
)

// Mask replaces the translated text carried in a request URL with "***".
func Mask(s string) string {
	return reQueryText.ReplaceAllString(s, "${1}***")
}

// Truncate returns the first n runes of s followed by "…" when s is longer.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

package translator

import (
	"strconv"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// DefaultWrapLength is the column width used when no valid width is given.
const DefaultWrapLength = 200

// ParseWrapLength returns s as a width when it is a positive integer, def otherwise.
// A non-positive def falls back to DefaultWrapLength.
func ParseWrapLength(s string, def int) int {
	if def <= 0 {
		def = DefaultWrapLength
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// Wrap collapses runs of ASCII whitespace and word-wraps text to width columns.
// Non-breaking spaces are kept and never break a line.
// Lines never exceed width unless they hold a single longer word.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWrapLength
	}
	collapsed := strings.Join(strings.FieldsFunc(text, isASCIISpace), " ")
	return wordwrap.WrapString(collapsed, uint(width))
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Package main is the entry point for the gtranslate Flow Launcher plugin.
// It translates short texts through Google Translate and copies results to the clipboard.
package main

import (
	"gtranslate/plugin/cmd"
)

// main is the entry point for the gtranslate plugin.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}

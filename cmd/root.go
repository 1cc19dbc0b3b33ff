// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for gtranslate.
// The root command is the Flow Launcher entry point: the launcher runs the
// binary with one JSON-RPC request as its argument and reads the reply from
// stdout. The subcommands expose the same operations for humans and scripts.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"gtranslate/plugin/internal/logging"
	"gtranslate/plugin/internal/plugin"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	showVersion bool
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands.
// Given a JSON-RPC request (as argument or on stdin) it answers it and exits.
var rootCmd = &cobra.Command{
	Use:   "gtranslate [request]",
	Short: "Google Translate plugin for Flow Launcher",
	Long: `gtranslate translates short texts through Google Translate.

Flow Launcher runs it with a JSON-RPC request such as
  {"method":"query","parameters":["en:fr hello"]}
and renders the result items printed on stdout.

Query notation:
  hello            translate with the default languages
  en:fr hello      translate from en to fr
  :fr hello        translate to fr, detect the source
  en: hello        translate from en to the default target`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "gtranslate %s\n", Version)
			return nil
		}

		payload, ok, err := requestPayload(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		if !ok {
			return cmd.Help()
		}

		env, err := setup(false)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := plugin.Serve(cmd.Context(), env.service(), payload, cmd.OutOrStdout()); err != nil {
			env.logger.Error("request failed", env.logger.Args("error", logging.PresentError("serve", err)))
			return err
		}
		return nil
	},
}

// requestPayload returns the JSON-RPC request from the first argument, or from
// stdin when no argument is given and stdin is not a terminal.
func requestPayload(args []string, stdin io.Reader) ([]byte, bool, error) {
	if len(args) == 1 {
		if !plugin.LooksLikeRequest(args[0]) {
			return nil, false, fmt.Errorf("expected a JSON-RPC request, got %q (see 'gtranslate translate --help')", args[0])
		}
		return []byte(args[0]), true, nil
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, false, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, false, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, false, nil
	}
	return data, true, nil
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, logging.PresentError("gtranslate", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

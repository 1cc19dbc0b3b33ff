// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"strings"

	"gtranslate/plugin/internal/plugin"

	"github.com/spf13/cobra"
)

// queryCmd answers a query exactly like the launcher entry point and prints
// the JSON result list. Useful for scripting and for checking plugin output.
var queryCmd = &cobra.Command{
	Use:   "query <text...>",
	Short: "Print the launcher result items for a query",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(false)
		if err != nil {
			return err
		}
		defer env.Close()

		resp := plugin.Response{Result: env.service().Query(cmd.Context(), strings.Join(args, " "))}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	},
}

// copyCmd runs the copy action and prints the launcher notification request.
var copyCmd = &cobra.Command{
	Use:   "copy <text...>",
	Short: "Copy text to the system clipboard",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(false)
		if err != nil {
			return err
		}
		defer env.Close()

		msg, err := env.service().Copy(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		return enc.Encode(msg)
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(copyCmd)
}

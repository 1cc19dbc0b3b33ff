// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"gtranslate/plugin/internal/config"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// configCmd prints the effective configuration as TOML, ready to be saved as
// the config file.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration and where it is read from",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := config.Path()
		if err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		out, err := toml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", p, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

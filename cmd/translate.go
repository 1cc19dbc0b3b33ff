// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gtranslate/plugin/internal/config"
	"gtranslate/plugin/internal/httperrors"
	"gtranslate/plugin/internal/notation"
	"gtranslate/plugin/internal/translator"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	copyResult bool
	wrapFlag   string
)

// translateCmd translates from the terminal using the same notation as the launcher.
var translateCmd = &cobra.Command{
	Use:   "translate <text...>",
	Short: "Translate text from the terminal",
	Long: `The translate command accepts the same notation as the launcher query
("en:fr hello", ":fr hello", "hello") and prints the translation.

With --copy the translation is also written to the system clipboard.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(true)
		if err != nil {
			return err
		}
		defer env.Close()

		cfg := env.cfg
		if wrapFlag != "" {
			cfg.WrapLength = translator.ParseWrapLength(wrapFlag, cfg.WrapLength)
		}

		req := notation.Parse(strings.Join(args, " "), notation.Defaults{From: cfg.DefaultFrom, To: cfg.DefaultTo})
		if req.Empty() {
			return fmt.Errorf("nothing to translate")
		}

		client := translator.New(cfg, env.logger)
		translation, err := client.Translate(cmd.Context(), req.Text, req.To, req.From)
		if err != nil {
			if isTTY() {
				host := httperrors.ExtractHostFromURL(cfg.TranslateURL)
				return httperrors.FormatNetworkError(err, "translating via "+host, host)
			}
			return err
		}

		from := req.From
		if from == config.AutoLanguage {
			if guess := translator.DetectLanguage(req.Text); guess != "" {
				from += " (" + guess + "?)"
			}
		}

		if isTTY() {
			pterm.DefaultSection.Printf("%s → %s", from, req.To)
			pterm.Println(translation)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), translation)
		}

		if copyResult {
			if err := env.sink.Copy(translation); err != nil {
				return err
			}
			if isTTY() {
				pterm.Success.Println("Copied to clipboard")
			}
		}
		return nil
	},
}

func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().BoolVarP(&copyResult, "copy", "c", false, "Copy the translation to the clipboard")
	translateCmd.Flags().StringVarP(&wrapFlag, "wrap", "w", "", "Wrap width in columns (default from config, "+strconv.Itoa(translator.DefaultWrapLength)+")")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/pkg/types"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Show or save the display theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(types.ThemeLight), string(types.ThemeDark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		out := cmd.OutOrStdout()
		if len(args) == 0 {
			theme, ok, err := store.Setting(cmd.Context(), themeSetting)
			if err != nil {
				return err
			}
			if !ok {
				theme = string(types.ThemeLight)
			}
			fmt.Fprintln(out, theme)
			return nil
		}

		theme := types.Theme(args[0])
		if theme != types.ThemeLight && theme != types.ThemeDark {
			return fmt.Errorf("unknown theme %q: use light or dark", args[0])
		}
		if err := store.SetSetting(cmd.Context(), themeSetting, string(theme)); err != nil {
			return err
		}
		fmt.Fprintf(out, "Theme set to %s\n", theme)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vmunix/pdfimport/internal/tui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit vault settings",
	Long:  "Opens the settings panel. Changes are saved as you type.",
	Args:  cobra.NoArgs,
	RunE:  runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	a, cleanup, err := openApp()
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.RunSettings(cmd.Context(), a.Settings, nil)
}

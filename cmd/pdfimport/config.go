package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vmunix/pdfimport/internal/config"
	"github.com/vmunix/pdfimport/internal/vault"
)

const keyImportFolder = "import-folder"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Long: `Writes the commented example config. With --vault, writes a config
pinned to that vault instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configGetCmd = &cobra.Command{
	Use:   "get " + keyImportFolder,
	Short: "Print a vault setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set " + keyImportFolder + " <value>",
	Short: "Change a vault setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd, configInitCmd, configGetCmd, configSetCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := "config.toml"
	if len(args) > 0 {
		path = args[0]
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(out io.Writer, e *config.Error) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(out, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(out, "  - %s\n", m)
		}
		fmt.Fprintln(out)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(out, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(out, "  - %s\n", err)
		}
		fmt.Fprintln(out)
	}
}

func printConfigSummary(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Configuration Summary:")
	fmt.Fprintf(out, "  Vault:      %s\n", cfg.Vault.Root)
	logTo := "stderr"
	if cfg.Log.File != "" {
		logTo = cfg.Log.File
	}
	fmt.Fprintf(out, "  Log:        %s (%s)\n", cfg.Log.Level, logTo)
	if cfg.History.Enabled {
		fmt.Fprintf(out, "  History:    %s\n", cfg.HistoryPath(vault.ConfigDir))
	} else {
		fmt.Fprintln(out, "  History:    disabled")
	}
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	if vaultRoot != "" {
		root, err := filepath.Abs(vaultRoot)
		if err != nil {
			return err
		}
		cfg := config.Default()
		cfg.Vault.Root = root
		if err := cfg.Write(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	} else if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if args[0] != keyImportFolder {
		return fmt.Errorf("unknown setting %q (known: %s)", args[0], keyImportFolder)
	}
	a, cleanup, err := openApp()
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Fprintln(cmd.OutOrStdout(), a.Settings.ImportFolder())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if args[0] != keyImportFolder {
		return fmt.Errorf("unknown setting %q (known: %s)", args[0], keyImportFolder)
	}
	a, cleanup, err := openApp()
	if err != nil {
		return err
	}
	defer cleanup()

	value := args[1]
	if err := a.Settings.Set(func(s *config.Settings) { s.ImportFolder = value }); err != nil {
		return err
	}
	a.Log.Info("setting saved", "key", keyImportFolder, "value", value, "file", a.Settings.Path())
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vmunix/pdfimport/internal/importer"
	"github.com/vmunix/pdfimport/internal/prompt"
	"github.com/vmunix/pdfimport/internal/tui"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a PDF into the vault",
	Long: `Pick a PDF, optionally rename it, and copy it into the import folder.

With no flags a file picker opens, followed by a rename prompt
pre-filled with the original filename. --file skips the picker;
--name (or --keep-name) skips the rename prompt.`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().String("file", "", "PDF to import (skips the file picker)")
	importCmd.Flags().String("name", "", "Filename to import as (skips the rename prompt)")
	importCmd.Flags().Bool("keep-name", false, "Keep the original filename (skips the rename prompt)")
	importCmd.Flags().String("dir", "", "Directory the file picker starts in (default: current directory)")
	importCmd.Flags().Bool("dry-run", false, "Show where the file would go without writing")
}

func runImport(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	keepName, _ := cmd.Flags().GetBool("keep-name")
	dir, _ := cmd.Flags().GetString("dir")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	a, cleanup, err := openApp()
	if err != nil {
		return err
	}
	defer cleanup()

	var chooser importer.FileChooser
	if file != "" {
		chooser = importer.PathChooser{Fs: afero.NewOsFs(), Path: file}
	} else {
		if dir == "" {
			dir, _ = os.Getwd()
		}
		chooser = tui.NewChooser(dir)
	}

	var prompter importer.Prompter = tui.NewPrompter(a.Log.With("component", "prompt"))
	switch {
	case cmd.Flags().Changed("name"):
		name, _ := cmd.Flags().GetString("name")
		prompter = prompt.Fixed{Name: &name}
	case keepName:
		prompter = prompt.Fixed{}
	}

	notifier := tui.NewNotifier(cmd.OutOrStdout())
	if jsonOutput {
		notifier = tui.NewNotifier(cmd.ErrOrStderr())
	}
	p := a.Pipeline(chooser, prompter, notifier, importer.Options{DryRun: dryRun})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var res *importer.Result
	err = a.Runner().Run(ctx, func(ctx context.Context) error {
		var err error
		res, err = p.ImportPDF(ctx)
		return err
	})
	if res != nil {
		printImportResult(cmd, res)
	}
	return err
}

func printImportResult(cmd *cobra.Command, res *importer.Result) {
	if jsonOutput {
		printJSON(cmd.OutOrStdout(), res)
		return
	}
	out := cmd.OutOrStdout()
	switch res.Status {
	case importer.StatusPlanned:
		folder := "exists"
		if !res.FolderExists {
			folder = "will be created"
		}
		fmt.Fprintf(out, "Would import %s -> %s (folder %s)\n", res.SourceName, res.DestPath, folder)
	case importer.StatusImported:
		fmt.Fprintf(out, "  %s -> %s (%s)\n", res.SourcePath, res.DestPath, formatSize(res.SizeBytes))
	}
}

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/pdfimport/internal/importer"
)

var errHistoryDisabled = errors.New("history is disabled in config")

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past imports",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 20, "Number of entries to show")
	historyCmd.Flags().String("status", "", "Only show entries with this status (imported, failed)")
	historyCmd.Flags().StringP("match", "m", "", "Find entries with a similar filename")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	status, _ := cmd.Flags().GetString("status")
	query, _ := cmd.Flags().GetString("match")

	a, cleanup, err := openApp()
	if err != nil {
		return err
	}
	defer cleanup()
	if a.History == nil {
		return errHistoryDisabled
	}

	filter := importer.HistoryFilter{Limit: limit}
	if status != "" {
		filter.Status = &status
	}
	if query != "" {
		// Match ranks over everything, then trims.
		filter.Limit = 0
	}
	entries, err := a.History.List(filter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if query != "" {
		scored := importer.Match(query, entries)
		if limit > 0 && len(scored) > limit {
			scored = scored[:limit]
		}
		if jsonOutput {
			printJSON(out, scored)
			return nil
		}
		if len(scored) == 0 {
			fmt.Fprintf(out, "No imports similar to %q\n", query)
			return nil
		}
		fmt.Fprintf(out, "  %-6s %-10s %-9s %s\n", "SCORE", "WHEN", "STATUS", "FILE")
		fmt.Fprintln(out, "  "+strings.Repeat("-", 60))
		for _, s := range scored {
			fmt.Fprintf(out, "  %-6.2f %-10s %-9s %s\n", s.Score, formatTimeAgo(s.CreatedAt), s.Status, truncate(displayPath(s.HistoryEntry), 40))
		}
		return nil
	}

	if jsonOutput {
		printJSON(out, entries)
		return nil
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No imports yet")
		return nil
	}

	fmt.Fprintf(out, "  %-10s %-9s %-9s %s\n", "WHEN", "STATUS", "SIZE", "FILE")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 60))
	for _, e := range entries {
		size := "-"
		if e.Status == string(importer.StatusImported) {
			size = formatSize(e.SizeBytes)
		}
		fmt.Fprintf(out, "  %-10s %-9s %-9s %s\n", formatTimeAgo(e.CreatedAt), e.Status, size, truncate(displayPath(e), 40))
		if e.Reason != "" {
			fmt.Fprintf(out, "  %-10s %s: %s\n", "", e.Stage, e.Reason)
		}
	}
	return nil
}

func displayPath(e *importer.HistoryEntry) string {
	if e.DestPath != "" {
		return e.DestPath
	}
	return e.SourceName
}

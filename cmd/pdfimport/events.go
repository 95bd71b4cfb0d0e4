package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/pdfimport/internal/events"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show recent events",
	Args:  cobra.NoArgs,
	RunE:  runEventsCmd,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
}

type eventView struct {
	ID         int64        `json:"id"`
	Type       string       `json:"type"`
	EntityType string       `json:"entity_type"`
	EntityID   int64        `json:"entity_id"`
	OccurredAt string       `json:"occurred_at"`
	Event      events.Event `json:"event,omitempty"`
}

func runEventsCmd(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	a, cleanup, err := openApp()
	if err != nil {
		return err
	}
	defer cleanup()
	if a.DB == nil {
		return errHistoryDisabled
	}

	raw, err := events.NewEventLog(a.DB).Recent(limit)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}

	registry := events.DefaultRegistry()
	out := cmd.OutOrStdout()

	if jsonOutput {
		views := make([]eventView, 0, len(raw))
		for _, r := range raw {
			v := eventView{
				ID:         r.ID,
				Type:       r.EventType,
				EntityType: r.EntityType,
				EntityID:   r.EntityID,
				OccurredAt: r.OccurredAt.Format(time.RFC3339),
			}
			if e, err := registry.Unmarshal(r); err == nil {
				v.Event = e
			}
			views = append(views, v)
		}
		printJSON(out, views)
		return nil
	}

	if len(raw) == 0 {
		fmt.Fprintln(out, "No events")
		return nil
	}

	fmt.Fprintf(out, "Recent Events (%d):\n\n", len(raw))
	fmt.Fprintf(out, "  %-12s %-18s %-22s %s\n", "TIME", "TYPE", "ENTITY", "DETAIL")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 70))

	for _, r := range raw {
		entity := fmt.Sprintf("%s/%d", r.EntityType, r.EntityID)
		detail := ""
		if e, err := registry.Unmarshal(r); err == nil {
			detail = describeEvent(e)
		}
		fmt.Fprintf(out, "  %-12s %-18s %-22s %s\n", formatTimeAgo(r.OccurredAt), r.EventType, entity, detail)
	}

	return nil
}

func describeEvent(e events.Event) string {
	switch ev := e.(type) {
	case *events.ImportStarted:
		return ev.SourceName
	case *events.ImportCompleted:
		return fmt.Sprintf("%s (%s)", ev.DestPath, formatSize(ev.FileSize))
	case *events.ImportFailed:
		return fmt.Sprintf("%s: %s", ev.Stage, ev.Reason)
	case *events.ImportCancelled:
		return ev.SourceName
	}
	return ""
}

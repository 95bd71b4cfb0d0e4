// Package app wires the vault, settings, history, and event bus together
// and runs import work alongside the history recorder.
package app

import (
	"context"
	"log/slog"

	"github.com/vmunix/pdfimport/internal/events"
	"github.com/vmunix/pdfimport/internal/importer"
	"golang.org/x/sync/errgroup"
)

// Runner runs one unit of work with the background components it needs.
type Runner struct {
	bus      *events.Bus
	recorder *importer.Recorder // nil when history is disabled
	logger   *slog.Logger
}

// NewRunner creates a new runner.
func NewRunner(bus *events.Bus, recorder *importer.Recorder, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		bus:      bus,
		recorder: recorder,
		logger:   logger,
	}
}

// Run calls work and blocks until it returns and every event it published
// has been recorded. The bus is closed when work finishes.
func (r *Runner) Run(ctx context.Context, work func(ctx context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)

	if r.recorder != nil {
		g.Go(func() error {
			return r.recorder.Run(ctx)
		})
	}

	g.Go(func() error {
		defer func() {
			if err := r.bus.Close(); err != nil {
				r.logger.Warn("close event bus", "error", err)
			}
		}()
		return work(ctx)
	})

	return g.Wait()
}

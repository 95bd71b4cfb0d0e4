// internal/importer/recorder.go
package importer

import (
	"context"
	"log/slog"

	"github.com/vmunix/pdfimport/internal/events"
)

// Subscriber is the part of the event bus the Recorder listens on.
type Subscriber interface {
	SubscribeAll(bufferSize int) <-chan events.Event
	Unsubscribe(ch <-chan events.Event)
}

// Recorder writes finished import attempts to the history store.
type Recorder struct {
	bus     Subscriber
	history *HistoryStore
	events  <-chan events.Event
	log     *slog.Logger
}

// NewRecorder subscribes to bus immediately so no event published after
// this call is missed.
func NewRecorder(bus Subscriber, history *HistoryStore, log *slog.Logger) *Recorder {
	if log == nil {
		log = slog.Default()
	}
	return &Recorder{
		bus:     bus,
		history: history,
		events:  bus.SubscribeAll(16),
		log:     log,
	}
}

// Run records events until the subscription closes or ctx is done.
// Once ctx is done it unsubscribes and records what was already buffered.
func (r *Recorder) Run(ctx context.Context) error {
	for {
		select {
		case e, ok := <-r.events:
			if !ok {
				return nil
			}
			r.record(e)
		case <-ctx.Done():
			r.bus.Unsubscribe(r.events)
			r.drain()
			return nil
		}
	}
}

// drain records buffered events. The channel is closed by then.
func (r *Recorder) drain() {
	for e := range r.events {
		r.record(e)
	}
}

func (r *Recorder) record(e events.Event) {
	var entry *HistoryEntry
	switch ev := e.(type) {
	case *events.ImportCompleted:
		entry = &HistoryEntry{
			AttemptID:  ev.EntityID(),
			Status:     HistoryImported,
			SourceName: ev.SourceName,
			SourcePath: ev.SourcePath,
			DestPath:   ev.DestPath,
			SizeBytes:  ev.FileSize,
		}
	case *events.ImportFailed:
		entry = &HistoryEntry{
			AttemptID:  ev.EntityID(),
			Status:     HistoryFailed,
			SourceName: ev.SourceName,
			SourcePath: ev.SourcePath,
			DestPath:   ev.DestPath,
			Stage:      ev.Stage,
			Reason:     ev.Reason,
		}
	default:
		return
	}

	if err := r.history.Add(entry); err != nil {
		r.log.Error("record history failed", "attempt", entry.AttemptID, "error", err)
		return
	}
	r.log.Debug("recorded history", "attempt", entry.AttemptID, "status", entry.Status)
}

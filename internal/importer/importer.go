// Package importer copies a user-chosen PDF into the vault.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/vmunix/pdfimport/internal/events"
	"github.com/vmunix/pdfimport/internal/vault"
)

// User-facing notification text.
const (
	MsgSuccess = "PDF imported successfully: %s"
	MsgFailure = "Error importing PDF. Check console for details."
)

// Status is how an import attempt ended.
type Status string

const (
	StatusDismissed Status = "dismissed" // no file chosen
	StatusCancelled Status = "cancelled" // rename prompt cancelled
	StatusImported  Status = "imported"
	StatusFailed    Status = "failed"
	StatusPlanned   Status = "planned" // dry run, nothing written
)

// Result describes a finished import attempt.
type Result struct {
	Status     Status
	Attempt    int64
	SourceName string
	SourcePath string
	Filename   string
	DestPath   string
	SizeBytes  int64

	// FolderExists is only set for dry runs.
	FolderExists bool
}

// Deps are the host capabilities the pipeline runs against.
type Deps struct {
	Chooser  FileChooser
	Prompter Prompter
	Vault    Vault
	Notifier Notifier
	Settings Settings
	Events   Publisher // optional
}

// Options tune a Pipeline.
type Options struct {
	// DryRun stops after the rename prompt and reports the destination.
	DryRun bool
}

// Pipeline runs the choose, rename, ensure folder, read, write sequence.
type Pipeline struct {
	deps     Deps
	opts     Options
	attempts atomic.Int64
	log      *slog.Logger
}

// New creates a pipeline.
func New(deps Deps, opts Options, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	p := &Pipeline{deps: deps, opts: opts, log: log}
	p.attempts.Store(time.Now().UnixMilli())
	return p
}

// ImportPDF asks for a PDF, offers to rename it, and copies it into the
// configured import folder.
//
// Dismissing the chooser or cancelling the prompt ends the attempt with no
// vault access and no notification. A failure while ensuring the folder,
// reading, or writing is logged, reported with a generic notification, and
// returned. Nothing is retried or rolled back.
func (p *Pipeline) ImportPDF(ctx context.Context) (*Result, error) {
	src, err := p.deps.Chooser.ChooseFile(ctx, PDFFilter)
	if err != nil {
		if ctx.Err() != nil {
			p.log.Debug("file chooser interrupted", "error", err)
			return &Result{Status: StatusDismissed}, nil
		}
		p.log.Error("file chooser failed", "error", err)
		return nil, fmt.Errorf("choose file: %w", err)
	}
	if src == nil {
		p.log.Debug("file chooser dismissed")
		return &Result{Status: StatusDismissed}, nil
	}

	attempt := p.attempts.Add(1)
	log := p.log.With("attempt", attempt, "source", src.Name())
	log.Info("import started", "path", src.Path())
	p.publish(ctx, events.NewImportStarted(attempt, src.Name(), src.Path()))

	name, ok := p.promptFilename(ctx, src.Name())
	if !ok {
		log.Info("import cancelled")
		// The attempt may have been cancelled through ctx; still record it.
		p.publish(context.WithoutCancel(ctx), events.NewImportCancelled(attempt, src.Name(), "rename"))
		return &Result{
			Status:     StatusCancelled,
			Attempt:    attempt,
			SourceName: src.Name(),
			SourcePath: src.Path(),
		}, nil
	}

	folder := vault.NormalizePath(p.deps.Settings.ImportFolder())
	req := &Request{
		Attempt:  attempt,
		Source:   src,
		Filename: name,
		Folder:   folder,
		DestPath: vault.Join(folder, name),
	}
	result := &Result{
		Attempt:    attempt,
		SourceName: src.Name(),
		SourcePath: src.Path(),
		Filename:   name,
		DestPath:   req.DestPath,
	}

	if p.opts.DryRun {
		exists, err := p.deps.Vault.Exists(ctx, folder)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCheckFolder, err)
		}
		result.Status = StatusPlanned
		result.FolderExists = exists
		log.Info("dry run", "dest", req.DestPath, "folder_exists", exists)
		return result, nil
	}

	size, err := p.execute(ctx, req)
	if err != nil {
		log.Error("import failed", "dest", req.DestPath, "stage", Stage(err), "error", err)
		p.deps.Notifier.Notify(MsgFailure)
		p.publish(context.WithoutCancel(ctx), events.NewImportFailed(attempt, src.Name(), src.Path(), req.DestPath, Stage(err), err))
		result.Status = StatusFailed
		return result, err
	}

	result.Status = StatusImported
	result.SizeBytes = size
	log.Info("import complete", "dest", req.DestPath, "size", size)
	p.deps.Notifier.Notify(fmt.Sprintf(MsgSuccess, name))
	p.publish(ctx, events.NewImportCompleted(attempt, src.Name(), src.Path(), req.DestPath, size))
	return result, nil
}

// promptFilename waits for the rename prompt. A done context counts as cancel.
func (p *Pipeline) promptFilename(ctx context.Context, original string) (string, bool) {
	req := p.deps.Prompter.PromptFilename(ctx, original)
	name, ok, err := req.Wait(ctx)
	if err != nil {
		p.log.Debug("rename prompt interrupted", "error", err)
		return "", false
	}
	return name, ok
}

// execute ensures the folder, reads the source, then writes the destination.
func (p *Pipeline) execute(ctx context.Context, req *Request) (int64, error) {
	created, err := EnsureFolder(ctx, p.deps.Vault, req.Folder)
	if err != nil {
		return 0, err
	}
	if created {
		p.log.Debug("created import folder", "folder", req.Folder)
	}

	data, err := req.Source.ReadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrReadSource, err)
	}

	if err := p.deps.Vault.WriteBinary(ctx, req.DestPath, data); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWriteDest, err)
	}
	return int64(len(data)), nil
}

// EnsureFolder creates folder in v unless it already exists.
// It reports whether the folder was created.
func EnsureFolder(ctx context.Context, v Vault, folder string) (bool, error) {
	exists, err := v.Exists(ctx, folder)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrCheckFolder, err)
	}
	if exists {
		return false, nil
	}
	if err := v.CreateFolder(ctx, folder); err != nil {
		return false, fmt.Errorf("%w: %w", ErrCreateFolder, err)
	}
	return true, nil
}

func (p *Pipeline) publish(ctx context.Context, e events.Event) {
	if p.deps.Events == nil {
		return
	}
	if err := p.deps.Events.Publish(ctx, e); err != nil && !errors.Is(err, context.Canceled) {
		p.log.Warn("publish event failed", "type", e.EventType(), "error", err)
	}
}

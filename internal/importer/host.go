// internal/importer/host.go
package importer

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/vmunix/pdfimport/internal/events"
	"github.com/vmunix/pdfimport/internal/prompt"
)

//go:generate mockgen -destination=mocks/host.go -package=mocks . FileChooser,Source,Prompter,Vault,Notifier

// Filter restricts which files a chooser offers.
type Filter struct {
	Name       string
	Extensions []string // lower-case, with leading dot
}

// PDFFilter admits only .pdf files.
var PDFFilter = Filter{Name: "PDF", Extensions: []string{".pdf"}}

// Match reports whether name has one of the filter's extensions.
// An empty filter matches everything.
func (f Filter) Match(name string) bool {
	if len(f.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range f.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Source is a file picked by the user.
type Source interface {
	// Name is the base filename shown in the rename prompt.
	Name() string
	// Path is where the file lives outside the vault, for logs and history.
	Path() string
	ReadAll(ctx context.Context) ([]byte, error)
}

// FileChooser asks the user for a single file.
// A nil Source with a nil error means the chooser was dismissed.
type FileChooser interface {
	ChooseFile(ctx context.Context, filter Filter) (Source, error)
}

// Prompter opens a rename prompt pre-filled with original.
type Prompter interface {
	PromptFilename(ctx context.Context, original string) *prompt.Request
}

// Vault is the storage the file is copied into.
// Paths are vault-relative and use forward slashes.
type Vault interface {
	Exists(ctx context.Context, path string) (bool, error)
	CreateFolder(ctx context.Context, path string) error
	WriteBinary(ctx context.Context, path string, data []byte) error
}

// Notifier shows a short, non-blocking message to the user.
type Notifier interface {
	Notify(message string)
}

// Settings supplies the configured import folder. It is read on every import.
type Settings interface {
	ImportFolder() string
}

// SettingsFunc adapts a function to Settings.
type SettingsFunc func() string

func (f SettingsFunc) ImportFolder() string { return f() }

// Publisher receives import lifecycle events.
type Publisher interface {
	Publish(ctx context.Context, e events.Event) error
}

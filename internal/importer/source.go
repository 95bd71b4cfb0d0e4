// internal/importer/source.go
package importer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileSource is a Source backed by a file on an afero filesystem.
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource returns a Source for path on fs.
func NewFileSource(fs afero.Fs, path string) *FileSource {
	return &FileSource{fs: fs, path: path}
}

func (s *FileSource) Name() string { return filepath.Base(s.path) }
func (s *FileSource) Path() string { return s.path }

// ReadAll reads the whole file into memory.
func (s *FileSource) ReadAll(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return data, nil
}

// PathChooser is a FileChooser that always picks the same path.
// It backs the non-interactive import command.
type PathChooser struct {
	Fs   afero.Fs
	Path string
}

// ChooseFile returns the configured path if it passes filter.
func (c PathChooser) ChooseFile(ctx context.Context, filter Filter) (Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !filter.Match(c.Path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, c.Path)
	}
	info, err := c.Fs.Stat(c.Path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", c.Path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnsupportedFile, c.Path)
	}
	return NewFileSource(c.Fs, c.Path), nil
}

// Package vault is the document store that imported files are copied into.
// Every path it accepts is vault-relative and normalized with NormalizePath.
package vault

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// ConfigDir is the vault-relative folder holding tool state (settings, history).
const ConfigDir = ".pdfimport"

// Vault provides folder and binary file operations rooted at a directory.
type Vault struct {
	fs   afero.Fs
	root string
}

// New opens the vault rooted at root on the local filesystem.
func New(root string) *Vault {
	return &Vault{
		fs:   afero.NewBasePathFs(afero.NewOsFs(), root),
		root: root,
	}
}

// NewWithFs wraps an existing filesystem. Tests pass afero.NewMemMapFs().
func NewWithFs(fs afero.Fs) *Vault {
	return &Vault{fs: fs}
}

// Root returns the on-disk root, or "" for vaults not backed by a directory.
func (v *Vault) Root() string {
	return v.root
}

// Fs exposes the underlying filesystem.
func (v *Vault) Fs() afero.Fs {
	return v.fs
}

// Exists reports whether anything (file or folder) exists at path.
func (v *Vault) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := afero.Exists(v.fs, NormalizePath(path))
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return ok, nil
}

// CreateFolder creates path and any missing parents.
// Creating a folder that already exists is not an error.
func (v *Vault) CreateFolder(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p := NormalizePath(path)
	if info, err := v.fs.Stat(p); err == nil && !info.IsDir() {
		return fmt.Errorf("create folder %s: %w", p, ErrNotDirectory)
	}
	if err := v.fs.MkdirAll(p, 0o755); err != nil {
		return fmt.Errorf("create folder %s: %w", p, err)
	}
	return nil
}

// WriteBinary writes data to path, replacing any existing file.
// The parent folder must already exist.
func (v *Vault) WriteBinary(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if info, err := v.fs.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("write %s: %w", path, ErrIsDirectory)
	}

	f, err := v.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", path, err)
	}
	return nil
}

// ReadBinary returns the full contents of the file at path.
func (v *Vault) ReadBinary(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(v.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Stat returns file info for path.
func (v *Vault) Stat(path string) (os.FileInfo, error) {
	return v.fs.Stat(path)
}

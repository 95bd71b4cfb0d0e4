// internal/importer/errors.go
package importer

import "errors"

var (
	// ErrCheckFolder indicates the import folder existence check failed.
	ErrCheckFolder = errors.New("failed to check import folder")

	// ErrCreateFolder indicates the import folder could not be created.
	ErrCreateFolder = errors.New("failed to create import folder")

	// ErrReadSource indicates the chosen file could not be read.
	ErrReadSource = errors.New("failed to read source file")

	// ErrWriteDest indicates the bytes could not be written into the vault.
	ErrWriteDest = errors.New("failed to write destination file")

	// ErrUnsupportedFile indicates a file the chooser filter does not admit.
	ErrUnsupportedFile = errors.New("unsupported file type")
)

// Stage names the step of an import that failed.
func Stage(err error) string {
	switch {
	case errors.Is(err, ErrCheckFolder), errors.Is(err, ErrCreateFolder):
		return "folder"
	case errors.Is(err, ErrReadSource):
		return "read"
	case errors.Is(err, ErrWriteDest):
		return "write"
	default:
		return "unknown"
	}
}

// internal/vault/errors.go
package vault

import "errors"

var (
	// ErrIsDirectory indicates a binary write targeted an existing folder.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrNotDirectory indicates a folder operation hit an existing file.
	ErrNotDirectory = errors.New("path exists and is not a directory")
)

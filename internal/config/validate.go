// internal/config/validate.go
package config

import (
	"fmt"
	"os"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.Vault.Root != "" {
		info, err := os.Stat(c.Vault.Root)
		switch {
		case os.IsNotExist(err):
			errs = append(errs, fmt.Sprintf("vault.root: directory %q does not exist", c.Vault.Root))
		case err == nil && !info.IsDir():
			errs = append(errs, fmt.Sprintf("vault.root: %q is not a directory", c.Vault.Root))
		}
	}

	return errs
}

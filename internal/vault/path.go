// internal/vault/path.go
package vault

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// separatorRun matches one or more forward or back slashes.
var separatorRun = regexp.MustCompile(`[\\/]+`)

// spaceLike maps the no-break spaces that editors like to insert into plain spaces.
var spaceLike = strings.NewReplacer("\u00a0", " ", "\u202f", " ")

// NormalizePath converts a user-supplied path into the vault's canonical form.
// Runs of slashes or backslashes collapse to a single "/", one leading and one
// trailing "/" are removed, no-break spaces become spaces, and the result is
// NFC-normalized. An empty result is "/" (the vault root).
//
// Traversal segments such as ".." are left untouched.
func NormalizePath(p string) string {
	p = separatorRun.ReplaceAllString(p, "/")
	p = strings.TrimPrefix(p, "/")
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		p = "/"
	}
	p = spaceLike.Replace(p)
	return norm.NFC.String(p)
}

// Join builds the destination path for filename inside folder.
// The folder is normalized; the filename is used verbatim.
func Join(folder, filename string) string {
	return NormalizePath(folder) + "/" + filename
}

package importer

// Request is one file being copied into the vault.
// It lives only for the duration of a single ImportPDF call.
type Request struct {
	// Attempt identifies this import in events and history.
	Attempt int64

	// Source is the chosen file.
	Source Source

	// Filename is the name confirmed in the rename prompt, used verbatim.
	Filename string

	// Folder is the normalized import folder read from settings.
	Folder string

	// DestPath is Folder + "/" + Filename.
	DestPath string
}

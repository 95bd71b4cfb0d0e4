// internal/events/import.go
package events

// Import event types.
const (
	EventImportStarted   = "import.started"
	EventImportCompleted = "import.completed"
	EventImportFailed    = "import.failed"
	EventImportCancelled = "import.cancelled"
)

// ImportStarted is emitted once a source file has been chosen.
type ImportStarted struct {
	BaseEvent
	SourceName string `json:"source_name"`
	SourcePath string `json:"source_path,omitempty"`
}

// ImportCompleted is emitted after the bytes are written to the vault.
type ImportCompleted struct {
	BaseEvent
	SourceName string `json:"source_name"`
	SourcePath string `json:"source_path,omitempty"`
	DestPath   string `json:"dest_path"`
	FileSize   int64  `json:"file_size"`
}

// ImportFailed is emitted when any stage after the rename prompt fails.
type ImportFailed struct {
	BaseEvent
	SourceName string `json:"source_name"`
	SourcePath string `json:"source_path,omitempty"`
	DestPath   string `json:"dest_path,omitempty"`
	Stage      string `json:"stage"`
	Reason     string `json:"reason"`
}

// ImportCancelled is emitted when the user backs out of the rename prompt.
// Dismissing the file chooser publishes nothing.
type ImportCancelled struct {
	BaseEvent
	SourceName string `json:"source_name,omitempty"`
	Stage      string `json:"stage"`
}

// NewImportStarted builds an ImportStarted for attempt.
func NewImportStarted(attempt int64, name, path string) *ImportStarted {
	return &ImportStarted{
		BaseEvent:  NewBaseEvent(EventImportStarted, EntityImport, attempt),
		SourceName: name,
		SourcePath: path,
	}
}

// NewImportCompleted builds an ImportCompleted for attempt.
func NewImportCompleted(attempt int64, name, path, dest string, size int64) *ImportCompleted {
	return &ImportCompleted{
		BaseEvent:  NewBaseEvent(EventImportCompleted, EntityImport, attempt),
		SourceName: name,
		SourcePath: path,
		DestPath:   dest,
		FileSize:   size,
	}
}

// NewImportFailed builds an ImportFailed for attempt.
func NewImportFailed(attempt int64, name, path, dest, stage string, err error) *ImportFailed {
	reason := ""
	if err != nil {
		reason = err.Error()
	}
	return &ImportFailed{
		BaseEvent:  NewBaseEvent(EventImportFailed, EntityImport, attempt),
		SourceName: name,
		SourcePath: path,
		DestPath:   dest,
		Stage:      stage,
		Reason:     reason,
	}
}

// NewImportCancelled builds an ImportCancelled for attempt.
func NewImportCancelled(attempt int64, name, stage string) *ImportCancelled {
	return &ImportCancelled{
		BaseEvent:  NewBaseEvent(EventImportCancelled, EntityImport, attempt),
		SourceName: name,
		Stage:      stage,
	}
}

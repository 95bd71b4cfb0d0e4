package app

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/vmunix/pdfimport/internal/config"
	"github.com/vmunix/pdfimport/internal/events"
	"github.com/vmunix/pdfimport/internal/importer"
	"github.com/vmunix/pdfimport/internal/migrations"
	"github.com/vmunix/pdfimport/internal/vault"
	_ "modernc.org/sqlite"
)

// SettingsFile is the vault-relative location of the persisted settings.
var SettingsFile = path.Join(vault.ConfigDir, "data.toml")

// App holds the long-lived components for one vault.
type App struct {
	Config   *config.Config
	Vault    *vault.Vault
	Settings *config.Store
	DB       *sql.DB // nil when history is disabled
	Bus      *events.Bus
	History  *importer.HistoryStore // nil when history is disabled
	Log      *slog.Logger
}

// Open loads the vault's settings and, if enabled, the history database.
func Open(cfg *config.Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.Default()
	}

	v := vault.New(cfg.Vault.Root)
	store := config.NewStore(v.Fs(), SettingsFile)
	if _, err := store.Load(); err != nil {
		return nil, err
	}

	a := &App{
		Config:   cfg,
		Vault:    v,
		Settings: store,
		Log:      log,
	}

	var eventLog *events.EventLog
	if cfg.History.Enabled {
		db, err := OpenDB(cfg.HistoryPath(vault.ConfigDir))
		if err != nil {
			return nil, err
		}
		a.DB = db
		a.History = importer.NewHistoryStore(db)
		eventLog = events.NewEventLog(db)
	}
	a.Bus = events.NewBus(eventLog, log.With("component", "bus"))

	log.Debug("vault opened", "root", cfg.Vault.Root, "import_folder", store.ImportFolder(), "history", cfg.History.Enabled)
	return a, nil
}

// OpenDB opens the SQLite database at path and applies the schema.
func OpenDB(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("creating database dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := migrations.Apply(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Runner returns a runner that records history while work runs.
func (a *App) Runner() *Runner {
	var rec *importer.Recorder
	if a.History != nil {
		rec = importer.NewRecorder(a.Bus, a.History, a.Log.With("component", "history"))
	}
	return NewRunner(a.Bus, rec, a.Log)
}

// Pipeline builds an import pipeline against this vault.
// The settings store is read on every import.
func (a *App) Pipeline(chooser importer.FileChooser, prompter importer.Prompter, notifier importer.Notifier, opts importer.Options) *importer.Pipeline {
	return importer.New(importer.Deps{
		Chooser:  chooser,
		Prompter: prompter,
		Vault:    a.Vault,
		Notifier: notifier,
		Settings: a.Settings,
		Events:   a.Bus,
	}, opts, a.Log.With("component", "importer"))
}

// Close releases the database and event bus.
func (a *App) Close() error {
	_ = a.Bus.Close()
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

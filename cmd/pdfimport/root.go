package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/pdfimport/internal/app"
	"github.com/vmunix/pdfimport/internal/config"
)

var version = "dev"

var (
	configPath string
	vaultRoot  string
	logLevel   string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "pdfimport",
	Short: "Import PDF files into a vault",
	Long: `pdfimport - copy PDF files into a vault folder

Pick a PDF, optionally rename it, and copy it into the configured
import folder inside the vault (default "PDFs").

Run 'pdfimport import' to start.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().StringVar(&vaultRoot, "vault", "", "Vault root directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("pdfimport {{.Version}}\n")
}

// loadConfig resolves the config file and applies flag overrides.
// With no --config and nothing discovered, defaults apply.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		found, err := config.Discover()
		switch {
		case errors.Is(err, config.ErrNotFound):
		case err != nil:
			return nil, err
		default:
			path = found
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		cfg = loaded
	}

	if vaultRoot != "" {
		cfg.Vault.Root = vaultRoot
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger logs to cfg.Log.File when set, otherwise stderr.
// The returned closer releases the log file.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	return logger, closer, nil
}

// openApp loads config, sets up logging, and opens the vault.
// Callers must call the returned cleanup.
func openApp() (*app.App, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, closer, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	a, err := app.Open(cfg, logger)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	cleanup := func() {
		if err := a.Close(); err != nil {
			logger.Warn("close", "error", err)
		}
		_ = closer.Close()
	}
	return a, cleanup, nil
}

// internal/config/load_test.go
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Valid(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	content := `
[vault]
root = "` + tmp + `"

[log]
level = "debug"
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Vault.Root != tmp {
		t.Errorf("expected root %s, got %s", tmp, cfg.Vault.Root)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Log.Level)
	}
}

func TestLoad_MissingEnvVar(t *testing.T) {
	os.Unsetenv("PDFIMPORT_MISSING_ROOT")
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	content := `
[vault]
root = "${PDFIMPORT_MISSING_ROOT}"
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for missing env var")
	}
	if !strings.Contains(err.Error(), "PDFIMPORT_MISSING_ROOT") {
		t.Errorf("expected PDFIMPORT_MISSING_ROOT in error, got %v", err)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	content := `
[vault]
root = "` + tmp + `"

[log]
level = "chatty"
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "log.level") {
		t.Errorf("expected log.level in error, got %v", err)
	}
}

func TestLoad_MissingVaultRoot(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	content := `
[vault]
root = "` + filepath.Join(tmp, "nope") + `"
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	_, err := Load(cfgPath)
	if err == nil || !strings.Contains(err.Error(), "vault.root") {
		t.Errorf("expected vault.root error, got %v", err)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Chdir(tmp)
	cfgPath := filepath.Join(tmp, "config.toml")
	os.WriteFile(cfgPath, []byte("# empty\n"), 0644)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Vault.Root != "." {
		t.Errorf("expected default root ., got %s", cfg.Vault.Root)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Log.Level)
	}
	if !cfg.History.Enabled {
		t.Error("expected history enabled by default")
	}
}

func TestLoad_HistoryDisabled(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	content := `
[vault]
root = "` + tmp + `"

[history]
enabled = false
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.History.Enabled {
		t.Error("expected history disabled")
	}
}

func TestLoadWithoutValidation(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	content := `
[log]
level = "chatty"
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	cfg, err := LoadWithoutValidation(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "chatty" {
		t.Errorf("expected level chatty, got %s", cfg.Log.Level)
	}
}

func TestLoad_EnvVarDefault(t *testing.T) {
	os.Unsetenv("PDFIMPORT_OPTIONAL_LEVEL")
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	content := `
[vault]
root = "` + tmp + `"

[log]
level = "${PDFIMPORT_OPTIONAL_LEVEL:-warn}"
`
	os.WriteFile(cfgPath, []byte(content), 0644)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected level warn, got %s", cfg.Log.Level)
	}
}

func TestConfig_HistoryPath(t *testing.T) {
	cfg := &Config{Vault: VaultConfig{Root: "/vault"}}
	if got := cfg.HistoryPath(".pdfimport"); got != "/vault/.pdfimport/history.db" {
		t.Errorf("default history path = %s", got)
	}

	cfg.History.Path = "state/h.db"
	if got := cfg.HistoryPath(".pdfimport"); got != "/vault/state/h.db" {
		t.Errorf("relative history path = %s", got)
	}

	cfg.History.Path = "/var/lib/pdfimport/h.db"
	if got := cfg.HistoryPath(".pdfimport"); got != "/var/lib/pdfimport/h.db" {
		t.Errorf("absolute history path = %s", got)
	}
}

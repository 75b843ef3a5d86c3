package config

import (
	"testing"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{
		Version:    "1",
		ListenAddr: ":9090",
		Store:      StoreSQLite,
		SQLiteDSN:  "file:kanban.db",
		ServerURL:  "http://localhost:9090",
	}
	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	cfg := LoadOrDefault(t.TempDir())

	if cfg.ListenAddr != DefaultListenAddr {
		t.Errorf("expected %s, got %s", DefaultListenAddr, cfg.ListenAddr)
	}
	if cfg.Store != StoreMemory {
		t.Errorf("expected %s, got %s", StoreMemory, cfg.Store)
	}
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := SaveConfig(dir, &Config{Version: "1", Store: StoreSQLite}); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.SQLiteDSN != DefaultSQLiteDSN {
		t.Errorf("expected default DSN, got %s", cfg.SQLiteDSN)
	}
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("expected default server URL, got %s", cfg.ServerURL)
	}
}

func TestValidateRejectsUnknownStore(t *testing.T) {
	cfg := Default()
	cfg.Store = "postgres"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown store backend")
	}
}

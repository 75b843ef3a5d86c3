package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store backend constants
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

const (
	DefaultListenAddr = ":8080"
	DefaultServerURL  = "http://localhost:8080"
	DefaultSQLiteDSN  = ":memory:"
)

// Config represents the flat kanban configuration
type Config struct {
	Version    string `json:"version"`
	ListenAddr string `json:"listen_addr,omitempty"` // address the API server binds to
	Store      string `json:"store,omitempty"`       // "memory" or "sqlite"
	SQLiteDSN  string `json:"sqlite_dsn,omitempty"`  // used when store is "sqlite"
	ServerURL  string `json:"server_url,omitempty"`  // base URL client commands talk to
}

// Default returns a config with every field set to its default.
func Default() *Config {
	return &Config{
		Version:    "1",
		ListenAddr: DefaultListenAddr,
		Store:      StoreMemory,
		SQLiteDSN:  DefaultSQLiteDSN,
		ServerURL:  DefaultServerURL,
	}
}

// LoadConfig reads .kanban/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".kanban", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// LoadOrDefault loads config from dir, falling back to defaults when the
// file is absent.
func LoadOrDefault(dir string) *Config {
	cfg, err := LoadConfig(dir)
	if err != nil {
		return Default()
	}
	return cfg
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, ".kanban")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .kanban dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.Store == "" {
		c.Store = StoreMemory
	}
	if c.SQLiteDSN == "" {
		c.SQLiteDSN = DefaultSQLiteDSN
	}
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
}

// Validate reports configuration values the rest of the program cannot use.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreSQLite:
		return nil
	default:
		return fmt.Errorf("unknown store backend %q (want %q or %q)", c.Store, StoreMemory, StoreSQLite)
	}
}

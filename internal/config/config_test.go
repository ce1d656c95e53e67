package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := load(t.TempDir())
	if cfg.Format != "json" {
		t.Errorf("expected default format json, got %q", cfg.Format)
	}
	if !strings.HasSuffix(cfg.DBPath, "library.db") {
		t.Errorf("expected default db path under the config dir, got %q", cfg.DBPath)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	content := "db_path = \"/tmp/custom.db\"\nformat = \"text\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := load(dir)
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("expected custom db path, got %q", cfg.DBPath)
	}
	if cfg.Format != "text" {
		t.Errorf("expected format text, got %q", cfg.Format)
	}
}

func TestLoadIgnoresBrokenTOML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("{{not toml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := load(dir)
	if cfg.Format != "json" {
		t.Errorf("expected defaults on a broken config, got %q", cfg.Format)
	}
}

// Package config loads tcxedit settings from ~/.config/tcxedit/.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user-level defaults. Flags and environment variables
// override it.
type Config struct {
	DBPath string
	Format string
}

type tomlConfig struct {
	DBPath string `toml:"db_path"`
	Format string `toml:"format"`
}

// Load reads config from ~/.config/tcxedit/config.toml. A missing or
// unreadable file yields the defaults, never an error.
func Load() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaults("")
	}
	return load(filepath.Join(home, ".config", "tcxedit"))
}

func load(configDir string) *Config {
	cfg := defaults(configDir)

	tomlPath := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		var tc tomlConfig
		if _, err := toml.DecodeFile(tomlPath, &tc); err == nil {
			if tc.DBPath != "" {
				cfg.DBPath = tc.DBPath
			}
			if tc.Format != "" {
				cfg.Format = tc.Format
			}
		}
	}

	return cfg
}

func defaults(configDir string) *Config {
	cfg := &Config{Format: "json"}
	if configDir != "" {
		cfg.DBPath = filepath.Join(configDir, "library.db")
	}
	return cfg
}

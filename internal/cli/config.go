package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds optional settings read from ~/.config/swapplan/config.toml.
// All fields have sensible zero defaults, so a missing file is fine.
type Config struct {
	// RedisURL switches the plan cache from files to Redis when set,
	// e.g. redis://localhost:6379/0.
	RedisURL string `toml:"redis_url"`

	// MongoURI switches the plan history from files to MongoDB when set,
	// e.g. mongodb://localhost:27017.
	MongoURI string `toml:"mongo_uri"`

	// HistoryDir overrides the default file history location.
	HistoryDir string `toml:"history_dir"`

	// Addr is the default listen address for the serve command.
	Addr string `toml:"addr"`
}

// configPath returns the config file location (~/.config/swapplan/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file if present. Errors are swallowed: a broken
// or missing config never blocks the CLI, it just runs with defaults.
func loadConfig() *Config {
	cfg := &Config{}
	path, err := configPath()
	if err != nil {
		return cfg
	}
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	_, _ = toml.DecodeFile(path, cfg)
	return cfg
}

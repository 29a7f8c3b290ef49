package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the application settings.
//
// Settings are read, lowest precedence first, from the defaults, the config
// file, the environment and the command line flags.
type Config struct {
	DataFile string `json:"data-file" env:"TRANSACT_DATA_FILE"`
	Currency string `json:"currency" env:"TRANSACT_CURRENCY"`
	LogLevel string `json:"log-level" env:"TRANSACT_LOG_LEVEL"`
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		DataFile: filepath.Join("data", "transact.json"),
		Currency: "USD",
		LogLevel: "info",
	}
}

// ReadConfig reads the config file at path over the defaults.
// A missing file is not an error, a malformed one is.
func ReadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config file %q is not a valid json: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to the config file at path.
func SaveConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for %q: %w", path, err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("could not write config file %q: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg with the environment variables that are set.
func applyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

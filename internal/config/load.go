package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names an environment variable that points at a config file.
// It is consulted when --config is not given.
const EnvConfigPath = "TOUCHCONE_CONFIG"

// Load builds the effective config: defaults, then the config file, then
// flags. The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	if path := resolvePath(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if err := applyFlags(cfg); err != nil {
		return nil, fmt.Errorf("applying flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePath picks the config file: --config, then $TOUCHCONE_CONFIG,
// then the first existing standard location.
func resolvePath() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return findConfigFile()
}

// findConfigFile returns the first existing config.yaml in the working
// directory or the user config directory.
func findConfigFile() string {
	for _, path := range []string{
		"config.yaml",
		DefaultPath(),
	} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory, falling back to the
// working directory when the OS provides none.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "touchcone"
	}
	return filepath.Join(base, "touchcone")
}

// loadFromFile overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

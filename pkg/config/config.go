package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	Language       string            `json:"language,omitempty"`
	BaseURL        string            `json:"base_url,omitempty"`
	Stations       map[string]string `json:"stations,omitempty"`
	DefaultStation string            `json:"default_station,omitempty"`
	AccentColor    string            `json:"accent_color,omitempty"`
}

// DefaultStations is the seed station name-to-ID mapping used until the
// user saves their own.
func DefaultStations() map[string]string {
	return map[string]string{
		"karlovy vary terminál": "17902024",
		"karlovy vary tržnice":  "17902023",
		"sokolov terminál":      "721181001",
		"sokolov těšovice":      "721181000",
		"praha florenc":         "10204003",
		"cheb":                  "721181002",
	}
}

// getConfigPath returns the absolute path to ~/.regiojet-delays.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".regiojet-delays.json"), nil
}

// Load reads the application configuration from disk. A missing file or
// missing fields fall back to defaults: Czech labels, the public API
// root and the seed station list.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	var cfg AppConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if cfg.Language == "" {
		cfg.Language = "cs"
	}
	if cfg.Stations == nil {
		cfg.Stations = DefaultStations()
	}
	if cfg.DefaultStation == "" {
		cfg.DefaultStation = "karlovy vary terminál"
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

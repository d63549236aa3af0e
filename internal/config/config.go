// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"rental-pricing/core/types"
	"rental-pricing/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing engine configuration
	Pricing PricingConfig `json:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains API server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing-related settings.
// These are passed explicitly into the engine; the engine itself
// never reads ambient process state.
type PricingConfig struct {
	// DefaultCurrency is used when a listing carries no currency
	DefaultCurrency types.Currency `json:"default_currency"`

	// DefaultLocale is used for display formatting
	DefaultLocale string `json:"default_locale"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowNightly shows the per-night rate breakdown
	ShowNightly bool `json:"show_nightly"`
}

// ServerConfig contains API server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// ReadTimeoutSeconds bounds request body reads
	ReadTimeoutSeconds int `json:"read_timeout_seconds"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			DefaultCurrency: types.CurrencyUSD,
			DefaultLocale:   "en",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowNightly:   true,
		},
		Server: ServerConfig{
			Addr:               ":8080",
			ReadTimeoutSeconds: 15,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete journal configuration
type Config struct {
	Portfolio PortfolioConfig `json:"portfolio" yaml:"portfolio"`
	Journal   JournalConfig   `json:"journal" yaml:"journal"`
	Import    ImportConfig    `json:"import" yaml:"import"`
	Logging   LoggingConfig   `json:"logging" yaml:"logging"`
}

// PortfolioConfig contains the account baseline
type PortfolioConfig struct {
	StartingCapital float64 `json:"starting_capital" yaml:"starting_capital"`
	Currency        string  `json:"currency" yaml:"currency"`
}

// JournalConfig contains persistence parameters
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// ImportConfig contains CSV normalization defaults
type ImportConfig struct {
	// DefaultFeePerContract fills a missing fees column, per contract.
	// Brokerage costs are negative.
	DefaultFeePerContract float64 `json:"default_fee_per_contract" yaml:"default_fee_per_contract"`
}

// LoggingConfig controls the zap logger
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "json" or "console"
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Portfolio.StartingCapital < 0 {
		return fmt.Errorf("portfolio.starting_capital must not be negative")
	}
	if c.Portfolio.Currency == "" {
		return fmt.Errorf("portfolio.currency is required")
	}
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	if c.Import.DefaultFeePerContract > 0 {
		return fmt.Errorf("import.default_fee_per_contract must be zero or negative")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Portfolio: PortfolioConfig{
			StartingCapital: 10000,
			Currency:        "USD",
		},
		Journal: JournalConfig{
			DBPath: "./tradelog.sqlite",
		},
		Import: ImportConfig{
			DefaultFeePerContract: -0.65,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

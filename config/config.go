package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ali-ardakani/TradingViewDataFeed/analytics"
)

// Config is the complete analysis configuration.
type Config struct {
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// AnalysisConfig holds the engine options.
type AnalysisConfig struct {
	// Basis is the starting-capital reference for percentage fields.
	// Zero means derive it from the first trade's entry notional.
	Basis float64 `json:"basis" yaml:"basis"`

	// WithSeparateLongShort adds per-direction rows to the monthly table.
	WithSeparateLongShort bool `json:"with_separate_long_short" yaml:"with_separate_long_short"`

	// MonthAnchor is the day keying a month bucket: "end" or "start".
	MonthAnchor string `json:"month_anchor" yaml:"month_anchor"`
}

// JournalConfig selects where analysis runs are persisted.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	RunsFile   string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
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

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Analysis.Basis < 0 {
		return fmt.Errorf("analysis.basis must not be negative")
	}
	switch strings.ToLower(c.Analysis.MonthAnchor) {
	case "", "end", "start":
	default:
		return fmt.Errorf("analysis.month_anchor must be 'end' or 'start'")
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.RunsFile == "" || c.Journal.TradesFile == "" {
			return fmt.Errorf("journal runs_file and trades_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// Options converts the file representation into engine options.
func (c *Config) Options() analytics.Options {
	anchor := analytics.MonthEnd
	if strings.ToLower(c.Analysis.MonthAnchor) == "start" {
		anchor = analytics.MonthStart
	}
	return analytics.Options{
		Basis:             c.Analysis.Basis,
		SeparateLongShort: c.Analysis.WithSeparateLongShort,
		MonthAnchor:       anchor,
	}
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			MonthAnchor: "end",
		},
		Journal: JournalConfig{
			Type: "none",
		},
	}
}

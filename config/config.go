// Package config provides configuration loading and management for the
// PPOD graph converter.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fslgroup/ppodgraph/export"
	"github.com/fslgroup/ppodgraph/vocabulary/ppod"
)

// Config represents the complete converter configuration.
type Config struct {
	// Base is the namespace all hashed identifiers are minted under.
	Base     string         `yaml:"base"`
	Workbook WorkbookConfig `yaml:"workbook"`
	Lookups  LookupsConfig  `yaml:"lookups"`
	Output   OutputConfig   `yaml:"output"`
	NATS     NATSConfig     `yaml:"nats"`
	Watch    WatchConfig    `yaml:"watch"`
}

// WorkbookConfig locates the exported workbook sheets.
type WorkbookConfig struct {
	// Dir is the directory holding the CSV exports (default: cwd).
	Dir string `yaml:"dir"`
	// Pattern is the glob selecting sheet files within Dir.
	Pattern string `yaml:"pattern"`
}

// LookupsConfig names the external lookup tables.
type LookupsConfig struct {
	// Dir is the lookup directory (empty = the workbook directory).
	Dir string `yaml:"dir"`
	// Counties is the county term/IRI table file name.
	Counties string `yaml:"counties"`
	// Commodities is the commodity term/IRI table file name.
	Commodities string `yaml:"commodities"`
	// Habitats is the CWHR habitat listing file name.
	Habitats string `yaml:"habitats"`
}

// OutputConfig controls the serialized result.
type OutputConfig struct {
	// Path is the output file (default: PPOD.ttl).
	Path string `yaml:"path"`
	// Format is the serialization format: turtle, ntriples or jsonld.
	Format string `yaml:"format"`
	// Diagnostics is an optional file for the vocabulary-miss report;
	// empty writes the report to stderr.
	Diagnostics string `yaml:"diagnostics"`
}

// NATSConfig configures optional publishing of the converted graph.
type NATSConfig struct {
	// URL is the NATS server URL (empty = publishing disabled).
	URL string `yaml:"url"`
	// Source tags published triples with their producing system.
	Source string `yaml:"source"`
}

// WatchConfig tunes watch mode.
type WatchConfig struct {
	// Debounce is how long to wait after the last file event before
	// reconverting.
	Debounce time.Duration `yaml:"debounce"`
	// MetricsAddr serves Prometheus metrics when set (e.g. ":9464").
	MetricsAddr string `yaml:"metrics_addr"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Base: ppod.AuxPrefix,
		Workbook: WorkbookConfig{
			Dir:     "",
			Pattern: "*.csv",
		},
		Lookups: LookupsConfig{
			Counties:    "CACounties_WD.csv",
			Commodities: "commodities.csv",
			Habitats:    "CWHR_Habitat_Lookup_Table.csv",
		},
		Output: OutputConfig{
			Path:   "PPOD.ttl",
			Format: string(export.FormatTurtle),
		},
		NATS: NATSConfig{
			URL:    "",
			Source: "ppodgraph",
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Base == "" {
		return fmt.Errorf("base is required")
	}
	if c.Workbook.Pattern == "" {
		return fmt.Errorf("workbook.pattern is required")
	}
	if c.Lookups.Counties == "" || c.Lookups.Commodities == "" || c.Lookups.Habitats == "" {
		return fmt.Errorf("lookups.counties, lookups.commodities and lookups.habitats are required")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence
// for non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Base != "" {
		c.Base = other.Base
	}

	if other.Workbook.Dir != "" {
		c.Workbook.Dir = other.Workbook.Dir
	}
	if other.Workbook.Pattern != "" {
		c.Workbook.Pattern = other.Workbook.Pattern
	}

	if other.Lookups.Dir != "" {
		c.Lookups.Dir = other.Lookups.Dir
	}
	if other.Lookups.Counties != "" {
		c.Lookups.Counties = other.Lookups.Counties
	}
	if other.Lookups.Commodities != "" {
		c.Lookups.Commodities = other.Lookups.Commodities
	}
	if other.Lookups.Habitats != "" {
		c.Lookups.Habitats = other.Lookups.Habitats
	}

	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Diagnostics != "" {
		c.Output.Diagnostics = other.Output.Diagnostics
	}

	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Source != "" {
		c.NATS.Source = other.NATS.Source
	}

	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}
	if other.Watch.MetricsAddr != "" {
		c.Watch.MetricsAddr = other.Watch.MetricsAddr
	}
}

// LookupDir resolves the lookup table directory, falling back to the
// workbook directory.
func (c *Config) LookupDir() string {
	if c.Lookups.Dir != "" {
		return c.Lookups.Dir
	}
	return c.Workbook.Dir
}

// LookupPath returns the full path of one lookup file.
func (c *Config) LookupPath(name string) string {
	return filepath.Join(c.LookupDir(), name)
}

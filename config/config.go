// Package config provides configuration loading and management for rostergraph.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/rostergraph/export"
	"github.com/c360studio/rostergraph/roster"
)

// Config represents the complete rostergraph configuration
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Scope    ScopeConfig    `yaml:"scope"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Export   ExportConfig   `yaml:"export"`
	NATS     NATSConfig     `yaml:"nats"`
}

// SourceConfig configures the crawl artifact input
type SourceConfig struct {
	// Glob selects the crawl artifact files to load (doublestar pattern)
	Glob string `yaml:"glob"`
}

// ScopeConfig restricts which sightings enter the pipeline
type ScopeConfig struct {
	// Competition limits the run to a single competition (empty = all)
	Competition string `yaml:"competition"`
	// SeasonFrom is the earliest season label to include, e.g. "2020/21"
	SeasonFrom string `yaml:"season_from"`
	// SeasonTo is the latest season label to include, e.g. "2024/25"
	SeasonTo string `yaml:"season_to"`
}

// PipelineConfig configures stage artifact persistence
type PipelineConfig struct {
	// Workdir is the directory where stage artifacts are written
	Workdir string `yaml:"workdir"`
}

// ExportConfig configures RDF serialization
type ExportConfig struct {
	// Format is the RDF serialization: turtle, ntriples, or jsonld
	Format string `yaml:"format"`
	// Output is the path of the emitted graph file
	Output string `yaml:"output"`
}

// NATSConfig configures the knowledge graph connection
type NATSConfig struct {
	// URL is the NATS server URL (empty = file-only run, no publishing)
	URL string `yaml:"url"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Glob: "data/rosters/**/*.json",
		},
		Pipeline: PipelineConfig{
			Workdir: "artifacts",
		},
		Export: ExportConfig{
			Format: string(export.FormatTurtle),
			Output: "graph.ttl",
		},
		NATS: NATSConfig{
			URL: "",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Source.Glob == "" {
		return fmt.Errorf("source.glob is required")
	}
	if c.Pipeline.Workdir == "" {
		return fmt.Errorf("pipeline.workdir is required")
	}
	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	if c.Export.Output == "" {
		return fmt.Errorf("export.output is required")
	}
	if _, err := roster.NewScope(c.Scope.Competition, c.Scope.SeasonFrom, c.Scope.SeasonTo); err != nil {
		return fmt.Errorf("scope: %w", err)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
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

// SaveToFile saves configuration to a YAML file
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

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Source.Glob != "" {
		c.Source.Glob = other.Source.Glob
	}

	if other.Scope.Competition != "" {
		c.Scope.Competition = other.Scope.Competition
	}
	if other.Scope.SeasonFrom != "" {
		c.Scope.SeasonFrom = other.Scope.SeasonFrom
	}
	if other.Scope.SeasonTo != "" {
		c.Scope.SeasonTo = other.Scope.SeasonTo
	}

	if other.Pipeline.Workdir != "" {
		c.Pipeline.Workdir = other.Pipeline.Workdir
	}

	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}
	if other.Export.Output != "" {
		c.Export.Output = other.Export.Output
	}

	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
}

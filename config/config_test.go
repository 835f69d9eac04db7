package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Source.Glob != "data/rosters/**/*.json" {
		t.Errorf("expected default source glob data/rosters/**/*.json, got %s", cfg.Source.Glob)
	}
	if cfg.Pipeline.Workdir != "artifacts" {
		t.Errorf("expected default workdir artifacts, got %s", cfg.Pipeline.Workdir)
	}
	if cfg.Export.Format != "turtle" {
		t.Errorf("expected default format turtle, got %s", cfg.Export.Format)
	}
	if cfg.NATS.URL != "" {
		t.Errorf("expected no NATS URL by default, got %s", cfg.NATS.URL)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing source glob",
			modify:  func(c *Config) { c.Source.Glob = "" },
			wantErr: true,
		},
		{
			name:    "missing workdir",
			modify:  func(c *Config) { c.Pipeline.Workdir = "" },
			wantErr: true,
		},
		{
			name:    "unknown export format",
			modify:  func(c *Config) { c.Export.Format = "rdfxml" },
			wantErr: true,
		},
		{
			name:    "missing export output",
			modify:  func(c *Config) { c.Export.Output = "" },
			wantErr: true,
		},
		{
			name:    "malformed season label",
			modify:  func(c *Config) { c.Scope.SeasonFrom = "twenty-twenty" },
			wantErr: true,
		},
		{
			name:    "open-ended season range",
			modify:  func(c *Config) { c.Scope.SeasonFrom = "2020/21" },
			wantErr: false,
		},
		{
			name: "complete season range",
			modify: func(c *Config) {
				c.Scope.SeasonFrom = "2020/21"
				c.Scope.SeasonTo = "2024/25"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
source:
  glob: "crawl/**/*.json"
scope:
  competition: "premier-league"
  season_from: "2022/23"
  season_to: "2024/25"
export:
  format: "ntriples"
  output: "out/graph.nt"
nats:
  url: "nats://test:4222"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Source.Glob != "crawl/**/*.json" {
		t.Errorf("expected source glob crawl/**/*.json, got %s", cfg.Source.Glob)
	}
	if cfg.Scope.Competition != "premier-league" {
		t.Errorf("expected competition premier-league, got %s", cfg.Scope.Competition)
	}
	if cfg.Scope.SeasonFrom != "2022/23" {
		t.Errorf("expected season_from 2022/23, got %s", cfg.Scope.SeasonFrom)
	}
	if cfg.Export.Format != "ntriples" {
		t.Errorf("expected format ntriples, got %s", cfg.Export.Format)
	}
	if cfg.Export.Output != "out/graph.nt" {
		t.Errorf("expected output out/graph.nt, got %s", cfg.Export.Output)
	}
	// Workdir should keep its default since the file didn't set it
	if cfg.Pipeline.Workdir != "artifacts" {
		t.Errorf("expected workdir to remain default, got %s", cfg.Pipeline.Workdir)
	}
	if cfg.NATS.URL != "nats://test:4222" {
		t.Errorf("expected NATS URL nats://test:4222, got %s", cfg.NATS.URL)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Source: SourceConfig{
			Glob: "override/**/*.json",
		},
		Export: ExportConfig{
			Format: "jsonld",
		},
	}

	base.Merge(override)

	if base.Source.Glob != "override/**/*.json" {
		t.Errorf("expected source glob override/**/*.json, got %s", base.Source.Glob)
	}
	if base.Export.Format != "jsonld" {
		t.Errorf("expected format jsonld, got %s", base.Export.Format)
	}
	// Output should remain from base since override didn't set it
	if base.Export.Output != "graph.ttl" {
		t.Errorf("expected output to remain default, got %s", base.Export.Output)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Scope.Competition = "la-liga"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Scope.Competition != "la-liga" {
		t.Errorf("expected competition la-liga, got %s", loaded.Scope.Competition)
	}
}

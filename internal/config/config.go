// Package config provides configuration loading and structs for the
// kaimono server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hyperjump/kaimono/internal/ranking"
	"github.com/hyperjump/kaimono/internal/suggest"
)

// Config holds all configuration for the application.
type Config struct {
	Debug    bool                  `yaml:"debug"`
	Server   ServerConfig          `yaml:"server"`
	Storage  StorageConfig         `yaml:"storage"`
	Catalog  CatalogConfig         `yaml:"catalog"`
	Search   SearchConfig          `yaml:"search"`
	Suggest  SuggestConfig         `yaml:"suggest"`
	Scoring  ranking.ScoringConfig `yaml:"scoring"`
	Synonyms map[string][]string   `yaml:"synonyms"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig holds the database path.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// CatalogConfig holds catalog snapshot import settings.
type CatalogConfig struct {
	// ImportDir is a drop directory for catalog snapshot files (.json,
	// .xlsx). Empty disables file imports.
	ImportDir string `yaml:"import_dir"`
	// Watch enables hot reload of snapshots dropped into ImportDir.
	// Defaults to true when ImportDir is set.
	Watch *bool `yaml:"watch"`
}

// WatchOrDefault returns whether to watch the import directory; defaults
// to true when unset.
func (c *CatalogConfig) WatchOrDefault() bool {
	if c.Watch != nil {
		return *c.Watch
	}
	return true
}

// SearchConfig holds search pipeline settings.
type SearchConfig struct {
	// EnableTextScoring defaults to true. When false, relevance ordering
	// always uses the popularity heuristic.
	EnableTextScoring *bool `yaml:"enable_text_scoring"`
	// Workers sets the scoring pool size for large catalogs. Values below
	// 2 keep scoring sequential.
	Workers int `yaml:"workers"`
	// HistorySize is how many recent searches feed the suggestion
	// generator.
	HistorySize int `yaml:"history_size"`
}

// TextScoringOrDefault returns whether text scoring is enabled; defaults
// to true when unset.
func (c *SearchConfig) TextScoringOrDefault() bool {
	if c.EnableTextScoring != nil {
		return *c.EnableTextScoring
	}
	return true
}

// SuggestConfig holds suggestion generator settings.
type SuggestConfig struct {
	Caps     suggest.Caps `yaml:"caps"`
	Suffixes []string     `yaml:"suffixes"`
}

// Load reads and parses the config file at path, expands paths, and
// applies defaults. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)
	if cfg.Catalog.ImportDir != "" {
		cfg.Catalog.ImportDir = expandPath(cfg.Catalog.ImportDir, configDir)
	}

	return &cfg, nil
}

// SynonymTable builds the scorer's synonym table from config, falling back
// to the built-in bilingual table when none is configured.
func (c *Config) SynonymTable() *ranking.SynonymTable {
	if len(c.Synonyms) == 0 {
		return ranking.DefaultSynonymTable()
	}
	return ranking.NewSynonymTable(c.Synonyms)
}

// expandPath converts a path to absolute. Paths starting with "./" are
// relative to configDir; other relative paths are relative to the home
// directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}

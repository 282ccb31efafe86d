// Package config provides configuration management for unilook.
// It loads settings from environment variables with the UNILOOK_ prefix,
// optionally overlaid on a YAML config file, and provides sensible defaults
// for every option.
//
// Precedence, lowest to highest: built-in defaults, YAML file, environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Default locations for the external data sources.
const (
	DefaultDataDir     = "/usr/share/unicode"
	DefaultComposePath = "/usr/share/X11/locale/en_US.UTF-8/Compose"

	// DefaultScanLimit bounds the name-search scan: all assigned planes,
	// excluding the supplementary private-use planes.
	DefaultScanLimit = 0xF0000
)

// Config holds all configuration settings for unilook.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Search SearchConfig `yaml:"search"`
}

// DataConfig locates the external data sources. Relative per-file paths
// are resolved against Dir.
type DataConfig struct {
	Dir         string `yaml:"dir"`          // Base directory for Unicode data files
	UnicodeData string `yaml:"unicode_data"` // UnicodeData.txt (numeric values)
	Blocks      string `yaml:"blocks"`       // Blocks.txt
	NamesList   string `yaml:"names_list"`   // NamesList.txt (annotations)
	Aliases     string `yaml:"aliases"`      // NameAliases.txt
	Mnemonics   string `yaml:"mnemonics"`    // RFC 1345 mnemonic table
	Compose     string `yaml:"compose"`      // X11 Compose table
	Entities    string `yaml:"entities"`     // entities.json
}

// SearchConfig tunes the name-search engine.
type SearchConfig struct {
	ScanLimit int `yaml:"scan_limit"` // Exclusive upper code-point bound of the scan
}

// LoadConfig loads configuration from environment variables with defaults.
// All environment variables use the UNILOOK_ prefix.
func LoadConfig() (*Config, error) {
	cfg := defaults()
	applyEnv(cfg)
	cfg.resolvePaths()
	return cfg, nil
}

// LoadConfigFile loads configuration from a YAML file, then applies
// environment overrides on top.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	applyEnv(cfg)
	cfg.resolvePaths()
	return cfg, nil
}

// defaults constructs a Config with built-in default values. Per-file
// paths stay empty until resolvePaths fills them from Dir.
func defaults() *Config {
	return &Config{
		Data: DataConfig{
			Dir:     DefaultDataDir,
			Compose: DefaultComposePath,
		},
		Search: SearchConfig{
			ScanLimit: DefaultScanLimit,
		},
	}
}

// applyEnv overrides cfg from UNILOOK_ environment variables.
func applyEnv(cfg *Config) {
	cfg.Data.Dir = getEnv("UNILOOK_DATA_DIR", cfg.Data.Dir)
	cfg.Data.UnicodeData = getEnv("UNILOOK_UNICODE_DATA", cfg.Data.UnicodeData)
	cfg.Data.Blocks = getEnv("UNILOOK_BLOCKS", cfg.Data.Blocks)
	cfg.Data.NamesList = getEnv("UNILOOK_NAMES_LIST", cfg.Data.NamesList)
	cfg.Data.Aliases = getEnv("UNILOOK_ALIASES", cfg.Data.Aliases)
	cfg.Data.Mnemonics = getEnv("UNILOOK_MNEMONICS", cfg.Data.Mnemonics)
	cfg.Data.Compose = getEnv("UNILOOK_COMPOSE", cfg.Data.Compose)
	cfg.Data.Entities = getEnv("UNILOOK_ENTITIES", cfg.Data.Entities)
	cfg.Search.ScanLimit = getEnvInt("UNILOOK_SCAN_LIMIT", cfg.Search.ScanLimit)
}

// resolvePaths fills empty per-file paths with their default file names and
// resolves relative paths against Data.Dir.
func (c *Config) resolvePaths() {
	resolve := func(p *string, defaultName string) {
		if *p == "" {
			*p = defaultName
		}
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(c.Data.Dir, *p)
		}
	}
	resolve(&c.Data.UnicodeData, "UnicodeData.txt")
	resolve(&c.Data.Blocks, "Blocks.txt")
	resolve(&c.Data.NamesList, "NamesList.txt")
	resolve(&c.Data.Aliases, "NameAliases.txt")
	resolve(&c.Data.Mnemonics, "rfc1345.txt")
	resolve(&c.Data.Entities, "entities.json")
	// The compose table lives outside the Unicode data directory, so its
	// default is already absolute.
	if !filepath.IsAbs(c.Data.Compose) {
		c.Data.Compose = filepath.Join(c.Data.Dir, c.Data.Compose)
	}
}

// getEnv retrieves a string environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default
// value. Hex values with a 0x prefix are accepted, since code-point bounds
// read naturally in hex.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 0, 64); err == nil {
			return int(intValue)
		}
	}
	return defaultValue
}

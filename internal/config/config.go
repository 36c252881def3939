// Package config provides configuration management for commitment.
// Configuration is loaded from multiple sources with the following precedence:
// embedded defaults → global file → env vars → local file → CLI flags
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/alexander-akhmetov/commitment/internal/dirs"
)

//go:embed defaults/config.yaml
var defaultsFS embed.FS

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// AuthorConfig is the fallback commit identity.
type AuthorConfig struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// Config holds all configuration settings for commitment.
// Fields ending in *Set track whether that field was explicitly set in config,
// so a later source can override an earlier one with a zero value.
type Config struct {
	Author AuthorConfig `yaml:"author"`
	Output string       `yaml:"output"`
	Debug  bool         `yaml:"debug"`

	DebugSet bool `yaml:"-"`

	configDir string
	localDir  string
	sources   []string // ordered list of sources that contributed to this config
}

// Sources returns the ordered list of sources that contributed to this config.
func (c *Config) Sources() []string {
	return c.sources
}

// LocalDir returns the local project config directory if one was detected.
func (c *Config) LocalDir() string {
	return c.localDir
}

// ConfigDir returns the global config directory.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Load loads configuration from the default global directory and the
// .commitment/ directory under root, if present.
func Load(root string) (*Config, error) {
	return LoadWithDirs(dirs.ConfigDir(), dirs.LocalDir(root))
}

// LoadWithDirs loads configuration with explicit global and local directories.
// Missing files are skipped. If localDir is empty, only global config is used.
func LoadWithDirs(globalDir, localDir string) (*Config, error) {
	cfg, err := loadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load embedded defaults: %w", err)
	}
	cfg.sources = append(cfg.sources, "embedded")

	globalPath := filepath.Join(globalDir, "config.yaml")
	if globalCfg, err := loadFile(globalPath); err == nil {
		cfg.mergeFrom(globalCfg)
		cfg.sources = append(cfg.sources, globalPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("load global config: %w", err)
	}

	cfg.applyEnv()

	if localDir != "" {
		localPath := filepath.Join(localDir, "config.yaml")
		if localCfg, err := loadFile(localPath); err == nil {
			cfg.mergeFrom(localCfg)
			cfg.sources = append(cfg.sources, localPath)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load local config: %w", err)
		}
	}

	cfg.configDir = globalDir
	cfg.localDir = localDir
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, c.Output)
	}
	if (c.Author.Name == "") != (c.Author.Email == "") {
		return fmt.Errorf("author.name and author.email must be set together")
	}
	return nil
}

// ApplyCLIFlags applies CLI flag overrides to the config.
// CLI flags have the highest precedence.
func (c *Config) ApplyCLIFlags(jsonOutput, debug bool) {
	if jsonOutput {
		c.Output = OutputJSON
		c.sources = append(c.sources, "cli:json")
	}
	if debug {
		c.Debug = true
		c.DebugSet = true
		c.sources = append(c.sources, "cli:debug")
	}
}

// loadEmbedded loads config from the embedded defaults.
func loadEmbedded() (*Config, error) {
	data, err := defaultsFS.ReadFile("defaults/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded defaults: %w", err)
	}
	return parseConfig(data)
}

// loadFile loads config from a file path.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user's config file
	if err != nil {
		return nil, err
	}
	return parseConfigWithTracking(data)
}

// parseConfig parses YAML config data into a Config struct.
func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// parseConfigWithTracking parses YAML config and tracks which fields were set.
func parseConfigWithTracking(data []byte) (*Config, error) {
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if _, ok := raw["debug"]; ok {
		cfg.DebugSet = true
	}
	return cfg, nil
}

// applyEnv applies environment variables to the config.
// Env vars sit between global and local config in precedence.
func (c *Config) applyEnv() {
	if v := os.Getenv("COMMITMENT_AUTHOR_NAME"); v != "" {
		c.Author.Name = v
		c.sources = append(c.sources, "env:COMMITMENT_AUTHOR_NAME")
	}
	if v := os.Getenv("COMMITMENT_AUTHOR_EMAIL"); v != "" {
		c.Author.Email = v
		c.sources = append(c.sources, "env:COMMITMENT_AUTHOR_EMAIL")
	}
	if v := os.Getenv("COMMITMENT_OUTPUT"); v != "" {
		c.Output = v
		c.sources = append(c.sources, "env:COMMITMENT_OUTPUT")
	}
}

// mergeFrom merges non-empty/set values from src into c.
func (c *Config) mergeFrom(src *Config) {
	if src.Author.Name != "" {
		c.Author.Name = src.Author.Name
	}
	if src.Author.Email != "" {
		c.Author.Email = src.Author.Email
	}
	if src.Output != "" {
		c.Output = src.Output
	}
	if src.DebugSet {
		c.Debug = src.Debug
		c.DebugSet = true
	}
}

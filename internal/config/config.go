// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// armatupc.
//
// Configuration is TOML with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.armatupc/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete armatupc configuration.
type Config struct {
	Version string `toml:"version"`

	// Server connection configuration
	Server ServerConfig `toml:"server"`

	// Recommendation configuration
	Recommend RecommendConfig `toml:"recommend"`

	// Catalog explorer configuration
	Catalog CatalogConfig `toml:"catalog"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Logging configuration
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig contains the recommendation service connection settings.
type ServerConfig struct {
	// URL is the base URL of the recommendation service
	URL string `toml:"url"`
	// TimeoutSecs is the per-request timeout in seconds.
	// Recommendations can take a while; keep this generous.
	TimeoutSecs int `toml:"timeout_secs"`
}

// RecommendConfig contains recommendation request settings.
type RecommendConfig struct {
	// ModelType pins the service recommendation model. Empty lets the
	// service pick its default.
	ModelType string `toml:"model_type"`
}

// CatalogConfig contains component explorer settings.
type CatalogConfig struct {
	// Limit is the maximum number of components fetched per listing
	Limit int `toml:"limit"`
}

// UIConfig contains UI appearance settings.
type UIConfig struct {
	// Theme is the color theme: "dark", "light", or "auto"
	Theme string `toml:"theme"`
	// ShowExamples shows example prompts in an empty conversation
	ShowExamples bool `toml:"show_examples"`
}

// LoggingConfig contains diagnostic log settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`
	// Path is the log file path (empty = ~/.armatupc/armatupc.log)
	Path string `toml:"path"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			URL:         "http://localhost:8000",
			TimeoutSecs: 30,
		},
		Recommend: RecommendConfig{
			ModelType: "",
		},
		Catalog: CatalogConfig{
			Limit: 50,
		},
		UI: UIConfig{
			Theme:        "auto",
			ShowExamples: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the armatupc configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".armatupc"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the effective diagnostic log path for a configuration.
func (c *Config) LogPath() (string, error) {
	if c.Logging.Path != "" {
		return c.Logging.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "armatupc.log"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to defaults
// when no file exists. Environment overrides are applied last, then the
// result is validated.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		return cfg, cfg.Validate()
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific TOML file with full
// validation. A missing file is not an error; defaults are used.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, statErr := os.Stat(path); statErr == nil {
		if err := loadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadTOML decodes a TOML file over an existing configuration.
func loadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// fillDefaults fills in any missing values with defaults.
func (c *Config) fillDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Server.URL == "" {
		c.Server.URL = defaults.Server.URL
	}
	if c.Server.TimeoutSecs == 0 {
		c.Server.TimeoutSecs = defaults.Server.TimeoutSecs
	}
	if c.Catalog.Limit == 0 {
		c.Catalog.Limit = defaults.Catalog.Limit
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# armatupc configuration file")
	fmt.Fprintln(file, "# Generated by armatupc - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Server.URL == "" {
		errs = append(errs, ValidationError{
			Field:   "server.url",
			Message: "must not be empty",
		})
	} else {
		parsed, err := url.Parse(c.Server.URL)
		if err != nil {
			errs = append(errs, ValidationError{
				Field:   "server.url",
				Message: fmt.Sprintf("invalid URL: %v", err),
			})
		} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
			errs = append(errs, ValidationError{
				Field:   "server.url",
				Message: fmt.Sprintf("unsupported scheme '%s', must be http or https", parsed.Scheme),
			})
		}
	}

	if c.Server.TimeoutSecs < 1 || c.Server.TimeoutSecs > 300 {
		errs = append(errs, ValidationError{
			Field:   "server.timeout_secs",
			Message: fmt.Sprintf("must be 1-300, got %d", c.Server.TimeoutSecs),
		})
	}

	if c.Catalog.Limit < 1 || c.Catalog.Limit > 200 {
		errs = append(errs, ValidationError{
			Field:   "catalog.limit",
			Message: fmt.Sprintf("must be 1-200, got %d", c.Catalog.Limit),
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Logging.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the
// configuration. Environment always wins over the file.
func (c *Config) ApplyEnvOverrides() {
	// ARMATUPC_SERVER_URL
	if serverURL := os.Getenv("ARMATUPC_SERVER_URL"); serverURL != "" {
		c.Server.URL = serverURL
	}

	// ARMATUPC_TIMEOUT_SECS
	if timeout := os.Getenv("ARMATUPC_TIMEOUT_SECS"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil && secs > 0 {
			c.Server.TimeoutSecs = secs
		}
	}

	// ARMATUPC_MODEL_TYPE
	if modelType := os.Getenv("ARMATUPC_MODEL_TYPE"); modelType != "" {
		c.Recommend.ModelType = modelType
	}

	// ARMATUPC_THEME
	if theme := os.Getenv("ARMATUPC_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	// ARMATUPC_LOG_LEVEL
	if level := os.Getenv("ARMATUPC_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// =============================================================================
// GLOBAL CONFIG INSTANCE
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			// Log but don't fail - use defaults
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}

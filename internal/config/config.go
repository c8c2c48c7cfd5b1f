// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Config represents the resumetex configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Document store
	StoreURL   string `json:"store_url,omitempty"`   // Base URL of the document store
	StoreToken string `json:"store_token,omitempty"` // Bearer token sent to the document store
	UserID     string `json:"user_id,omitempty"`     // Default user UUID for document fetches

	// Output
	Output string `json:"output,omitempty"` // Default output path for rendered LaTeX

	// Server
	Port int `json:"port,omitempty"` // HTTP server port

	// Behavior
	FetchTimeout int  `json:"fetch_timeout,omitempty"` // Document fetch timeout in seconds
	Verbose      bool `json:"verbose,omitempty"`       // Print a parse summary after rendering
}

// DefaultConfig returns the built-in defaults applied beneath both the config
// file and CLI flags.
func DefaultConfig() Config {
	return Config{
		Port:         8080,
		FetchTimeout: 30,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.StoreURL != "" {
		u, err := url.Parse(c.StoreURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config error: 'store_url' must be an absolute http(s) URL")
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("config error: 'store_url' scheme must be http or https")
		}
	}

	if c.StoreToken != "" && c.StoreURL == "" {
		return fmt.Errorf("config error: 'store_token' requires 'store_url'")
	}

	// Validate numeric ranges
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("config error: 'fetch_timeout' must be non-negative")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.StoreURL == "" {
		result.StoreURL = defaults.StoreURL
	}
	if result.StoreToken == "" {
		result.StoreToken = defaults.StoreToken
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.FetchTimeout == 0 {
		result.FetchTimeout = defaults.FetchTimeout
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

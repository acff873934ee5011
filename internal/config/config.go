// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Catalog string `json:"catalog,omitempty"` // Path to a trait catalog JSON file (built-in catalog when empty)
	Output  string `json:"output,omitempty"`  // Path to write the CSV result to

	// Vacancy inputs
	RoleName    string `json:"role_name,omitempty"`
	JobLevel    string `json:"job_level,omitempty"`
	RolePurpose string `json:"role_purpose,omitempty"`

	// Benchmark selection
	BenchmarkIDs []string `json:"benchmark_ids,omitempty"` // Explicit benchmark employee IDs (top-rating predicate when empty)

	// Behavior
	ExcludeBenchmark bool   `json:"exclude_benchmark,omitempty"` // Drop benchmark members from the output
	Verbose          bool   `json:"verbose,omitempty"`           // Print detailed debug information
	TimeoutSeconds   int    `json:"timeout_seconds,omitempty"`   // Wall-clock budget for one run
	APIKey           string `json:"api_key,omitempty"`           // Gemini API key for the job-profile narrative
	DatabaseURL      string `json:"database_url,omitempty"`      // PostgreSQL connection URL
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
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.RoleName == "" {
		result.RoleName = defaults.RoleName
	}
	if result.JobLevel == "" {
		result.JobLevel = defaults.JobLevel
	}
	if result.RolePurpose == "" {
		result.RolePurpose = defaults.RolePurpose
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if len(result.BenchmarkIDs) == 0 {
		result.BenchmarkIDs = defaults.BenchmarkIDs
	}

	// Int fields: use default if zero
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Package config loads and validates converter configuration from a YAML
// file, with environment overrides for the logging settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/marine-obs-etl/internal/domain"
)

// ConfigurationError reports missing or malformed configuration. It is
// fatal for the whole run.
type ConfigurationError struct {
	Field string
	Msg   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Msg)
}

// Config holds all converter settings.
type Config struct {
	InputPaths       []string          `yaml:"input_path"`
	OutputPaths      []string          `yaml:"output_path"`
	GlobalAttributes map[string]string `yaml:"global_attributes"`

	MetadataProfile string `yaml:"metadata_profile"` // "plain" or "cf"
	NumericPolicy   string `yaml:"numeric_policy"`   // "all_float" or "mixed"

	// ContinueOnError decides the batch policy when one file fails:
	// true moves on to the next input, false aborts the batch. Per-file
	// failures never corrupt other files' state either way.
	ContinueOnError *bool `yaml:"continue_on_error"`

	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	MetricsAddr string `yaml:"metrics_addr"` // empty disables the metrics listener
}

// Load reads the YAML configuration at path, applies defaults and the
// LOG_LEVEL / LOG_FORMAT environment overrides, and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Field: "config file", Msg: err.Error()}
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigurationError{Field: "config file", Msg: err.Error()}
	}

	if cfg.MetadataProfile == "" {
		cfg.MetadataProfile = "cf"
	}
	if cfg.NumericPolicy == "" {
		cfg.NumericPolicy = "all_float"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.InputPaths) == 0 {
		return &ConfigurationError{Field: "input_path", Msg: "at least one input file is required"}
	}
	for i, p := range c.InputPaths {
		if p == "" {
			return &ConfigurationError{Field: "input_path", Msg: fmt.Sprintf("entry %d is empty", i)}
		}
	}
	if len(c.OutputPaths) == 0 || c.OutputPaths[0] == "" {
		return &ConfigurationError{Field: "output_path", Msg: "an output directory is required"}
	}
	if _, err := c.Profile(); err != nil {
		return err
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	return nil
}

// OutputDir returns the destination directory for artifacts.
func (c *Config) OutputDir() string { return c.OutputPaths[0] }

// Profile resolves the configured metadata profile.
func (c *Config) Profile() (domain.MetadataProfile, error) {
	switch c.MetadataProfile {
	case "plain":
		return domain.ProfilePlain, nil
	case "cf":
		return domain.ProfileCF, nil
	default:
		return 0, &ConfigurationError{Field: "metadata_profile",
			Msg: fmt.Sprintf("unknown profile %q (want plain or cf)", c.MetadataProfile)}
	}
}

// Policy resolves the configured numeric typing policy.
func (c *Config) Policy() (domain.NumericPolicy, error) {
	switch c.NumericPolicy {
	case "all_float":
		return domain.AllFloat, nil
	case "mixed":
		return domain.MixedInt, nil
	default:
		return 0, &ConfigurationError{Field: "numeric_policy",
			Msg: fmt.Sprintf("unknown policy %q (want all_float or mixed)", c.NumericPolicy)}
	}
}

// ContinueOnFailure reports the batch error policy, defaulting to true.
func (c *Config) ContinueOnFailure() bool {
	if c.ContinueOnError == nil {
		return true
	}
	return *c.ContinueOnError
}

// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"pattern-catalog/internal/errors"
	"pattern-catalog/internal/logging"
)

// EnvPrefix is prepended to every environment override, e.g. PATTERNS_LOGGING_LEVEL.
const EnvPrefix = "PATTERNS"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version" mapstructure:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`

	// Pricing contains settings for the bill-of-materials commands
	Pricing PricingConfig `json:"pricing" yaml:"pricing" mapstructure:"pricing"`

	// Headers contains the fragments used by the header chain command
	Headers HeadersConfig `json:"headers" yaml:"headers" mapstructure:"headers"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging" mapstructure:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default listing format (text, json, yaml)
	DefaultFormat string `json:"default_format" yaml:"default_format" mapstructure:"default_format"`

	// NoColor disables ANSI colors
	NoColor bool `json:"no_color" yaml:"no_color" mapstructure:"no_color"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// Currency is printed next to totals
	Currency string `json:"currency" yaml:"currency" mapstructure:"currency"`

	// ShowBreakdown prints every node of the tree, not just the total
	ShowBreakdown bool `json:"show_breakdown" yaml:"show_breakdown" mapstructure:"show_breakdown"`
}

// HeadersConfig contains default header fragments
type HeadersConfig struct {
	Token       string `json:"token" yaml:"token" mapstructure:"token"`
	ContentType string `json:"content_type" yaml:"content_type" mapstructure:"content_type"`
	Body        string `json:"body" yaml:"body" mapstructure:"body"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: "text",
			NoColor:       false,
		},
		Pricing: PricingConfig{
			Currency:      "USD",
			ShowBreakdown: true,
		},
		Headers: HeadersConfig{
			Token:       "token",
			ContentType: "application/json",
			Body:        `Body: {"username" = "joseph"}`,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a json or yaml file. A missing file yields
// the defaults. Environment variables prefixed with PATTERNS_ override both.
func Load(path string) (*Config, error) {
	v := newViper(Default())

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Config("read config "+path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Config("stat config "+path, err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Config("decode config", err)
	}
	return config, nil
}

func newViper(defaults *Config) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("version", defaults.Version)
	v.SetDefault("output.default_format", defaults.Output.DefaultFormat)
	v.SetDefault("output.no_color", defaults.Output.NoColor)
	v.SetDefault("pricing.currency", defaults.Pricing.Currency)
	v.SetDefault("pricing.show_breakdown", defaults.Pricing.ShowBreakdown)
	v.SetDefault("headers.token", defaults.Headers.Token)
	v.SetDefault("headers.content_type", defaults.Headers.ContentType)
	v.SetDefault("headers.body", defaults.Headers.Body)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.output", defaults.Logging.Output)
	v.SetDefault("logging.development", defaults.Logging.Development)
	return v
}

// Marshal encodes the configuration as yaml or json.
func (c *Config) Marshal(format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(c, "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(c)
	default:
		return nil, errors.Unsupported("config format " + format)
	}
}

// Save saves configuration to a file, choosing the encoding from its extension.
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	format := strings.TrimPrefix(filepath.Ext(path), ".")
	data, err := c.Marshal(format)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}

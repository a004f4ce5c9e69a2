// Package config loads runtime settings for the calculators from defaults,
// an optional YAML file, a .env file and COUNTERDESK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. COUNTERDESK_LOGGING_LEVEL.
const EnvPrefix = "COUNTERDESK"

// Config holds all configuration for the calculators.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`             // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format"`           // console, json
	OutputFile string `mapstructure:"output_file" yaml:"output_file"` // optional file output
}

// OutputConfig selects how records are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // console, json, yaml, csv
}

// ServerConfig defines HTTP hosting settings for the serve command.
type ServerConfig struct {
	Address string `mapstructure:"address" yaml:"address"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn", Format: "console"},
		Output:  OutputConfig{Format: "console"},
		Server:  ServerConfig{Address: ":8080"},
	}
}

// Load reads configuration. An empty path means defaults plus environment.
// A .env file in the working directory is honoured when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	def := Default()
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.output_file", def.Logging.OutputFile)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("server.address", def.Server.Address)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

var (
	validLevels        = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats    = []string{"console", "json"}
	validOutputFormats = []string{"console", "text", "pretty", "json", "json-pretty", "yaml", "yml", "csv"}
)

// Validate rejects unknown levels and formats.
func (c *Config) Validate() error {
	if !oneOf(c.Logging.Level, validLevels) {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	if !oneOf(c.Logging.Format, validLogFormats) {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	if !oneOf(c.Output.Format, validOutputFormats) {
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}
	if strings.TrimSpace(c.Server.Address) == "" {
		return fmt.Errorf("server address is required")
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

const defaultCacheTTL = 500 * time.Millisecond

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Log      LogConfig      `mapstructure:"log"`
	Output   OutputConfig   `mapstructure:"output"`
}

// CalendarConfig represents calendar configuration
type CalendarConfig struct {
	CacheTTL string `mapstructure:"cache_ttl"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty means stderr
	Level string `mapstructure:"level"`
}

// OutputConfig represents CLI output configuration
type OutputConfig struct {
	Format string `mapstructure:"format"` // "text" or "json"
}

// Load loads configuration from file and FRIDAGAR_* environment variables.
// With an empty configPath the default locations are searched and a missing
// file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("calendar.cache_ttl", defaultCacheTTL.String())
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("output.format", FormatText)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.fridagar")
		v.AddConfigPath("/etc/fridagar")
	}

	// Read environment variables
	v.SetEnvPrefix("FRIDAGAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format must be '%s' or '%s', got '%s'", FormatText, FormatJSON, c.Output.Format)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	if c.Calendar.CacheTTL != "" {
		if _, err := time.ParseDuration(c.Calendar.CacheTTL); err != nil {
			return fmt.Errorf("calendar.cache_ttl: %w", err)
		}
	}

	return nil
}

// GetCacheTTL returns cache TTL duration
func (c *CalendarConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return defaultCacheTTL
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return defaultCacheTTL
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
}

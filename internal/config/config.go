// Package config loads schemagen settings from an optional config file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SCHEMAGEN_OUTPUT_DIR.
const EnvPrefix = "SCHEMAGEN"

// Config represents the schemagen configuration.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Render RenderConfig `mapstructure:"render"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig controls where and in which formats artifacts are written.
type OutputConfig struct {
	Dir     string   `mapstructure:"dir"`
	Formats []string `mapstructure:"formats"`
}

// RenderConfig controls node-link diagrams.
type RenderConfig struct {
	Detailed   bool `mapstructure:"detailed"`
	References bool `mapstructure:"references"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Formats accepted in output.formats.
var Formats = []string{"dot", "svg", "png", "json", "msgpack"}

var logLevels = []string{"debug", "info", "warn", "error"}

// Load reads schemagen.{yaml,yml,toml} from dir, or the file at path when
// path is non-empty. A missing file in dir is not an error.
func Load(dir, path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("output.dir", ".")
	v.SetDefault("output.formats", []string{"svg"})
	v.SetDefault("render.detailed", false)
	v.SetDefault("render.references", true)
	v.SetDefault("log.level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("schemagen")
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Output.Formats = UniqueFormats(cfg.Output.Formats)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks formats and the log level.
func (c *Config) Validate() error {
	if err := ValidateFormats(c.Output.Formats); err != nil {
		return fmt.Errorf("output.formats: %w", err)
	}
	if !contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level: invalid level %q (must be one of %s)", c.Log.Level, strings.Join(logLevels, ", "))
	}
	return nil
}

// ValidateFormats checks that formats is non-empty and lists only [Formats].
func ValidateFormats(formats []string) error {
	if len(formats) == 0 {
		return fmt.Errorf("must not be empty")
	}
	for _, f := range formats {
		if !contains(Formats, f) {
			return fmt.Errorf("invalid format %q (must be one of %s)", f, strings.Join(Formats, ", "))
		}
	}
	return nil
}

// UniqueFormats returns formats with repeats removed, keeping the first
// occurrence of each.
func UniqueFormats(formats []string) []string {
	if len(formats) == 0 {
		return formats
	}
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

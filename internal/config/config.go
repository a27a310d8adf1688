// Package config holds the configuration of the moneyctl command.
// Values are read from an optional YAML file and then overridden by
// command-line flags.
package config

import (
	"fmt"
	"os"

	"github.com/govalues/money/v2"
	"github.com/govalues/money/v2/currencies"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Flag names shared by the config file overlay and the command.
const (
	FlagRounding   = "rounding"
	FlagDecimal    = "decimal"
	FlagCurrencies = "currencies"
	FlagLogLevel   = "log-level"
	FlagLogFormat  = "log-format"
)

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config represents the entire configuration.
type Config struct {
	// Rounding is the name of the rounding mode, such as "half-even".
	Rounding string `yaml:"rounding"`
	// Decimal makes the command read and print amounts in decimal
	// notation instead of minor units.
	Decimal bool `yaml:"decimal"`
	// Currencies lists YAML files with custom currencies. They take
	// precedence over the ISO list, earlier files first.
	Currencies []string  `yaml:"currencies,omitempty"`
	Log        LogConfig `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Rounding: money.HalfUp.String(),
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads configuration from a YAML file.
// Settings missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// RegisterFlags defines the flags that can override the configuration.
func RegisterFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.String(FlagRounding, def.Rounding, "rounding mode: half-up, half-down, half-even, half-odd, up, down, ceiling, floor, ...")
	fs.Bool(FlagDecimal, def.Decimal, "read and print amounts in decimal notation")
	fs.StringSlice(FlagCurrencies, nil, "YAML files with custom currencies")
	fs.String(FlagLogLevel, def.Log.Level, "log level: debug, info, warn, error")
	fs.String(FlagLogFormat, def.Log.Format, "log format: text, json")
}

// ApplyFlags overrides the configuration with the flags that were set
// explicitly on the command line.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	if fs.Changed(FlagRounding) {
		if c.Rounding, err = fs.GetString(FlagRounding); err != nil {
			return err
		}
	}
	if fs.Changed(FlagDecimal) {
		if c.Decimal, err = fs.GetBool(FlagDecimal); err != nil {
			return err
		}
	}
	if fs.Changed(FlagCurrencies) {
		files, err := fs.GetStringSlice(FlagCurrencies)
		if err != nil {
			return err
		}
		c.Currencies = append(files, c.Currencies...)
	}
	if fs.Changed(FlagLogLevel) {
		if c.Log.Level, err = fs.GetString(FlagLogLevel); err != nil {
			return err
		}
	}
	if fs.Changed(FlagLogFormat) {
		if c.Log.Format, err = fs.GetString(FlagLogFormat); err != nil {
			return err
		}
	}
	return c.Validate()
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, err := c.RoundingMode(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", c.Log.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}

// RoundingMode returns the configured rounding mode.
func (c *Config) RoundingMode() (money.RoundingMode, error) {
	return money.ParseRoundingMode(c.Rounding)
}

// LoadCurrencies returns the custom currency lists followed by the ISO list.
func (c *Config) LoadCurrencies() (currencies.Aggregate, error) {
	agg := make(currencies.Aggregate, 0, len(c.Currencies)+1)
	for _, path := range c.Currencies {
		l, err := currencies.LoadFile(path)
		if err != nil {
			return nil, err
		}
		agg = append(agg, l)
	}
	return append(agg, currencies.ISO()), nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load resolves the configuration.
	// Priority: defaults → flags → file argument (argument wins)
	Load() (*Config, error)
}

type loader struct {
	flags *pflag.FlagSet
	args  []string
}

// NewLoader creates a loader for a command's parsed flags and positional arguments.
// flags may be nil.
func NewLoader(flags *pflag.FlagSet, args []string) Loader {
	return &loader{
		flags: flags,
		args:  args,
	}
}

// Load resolves the configuration and validates it.
func (l *loader) Load() (*Config, error) {
	// A private instance: the global viper may have env or file sources attached.
	v := viper.New()

	setDefaults(v)

	if l.flags != nil {
		if err := v.BindPFlags(l.flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if len(l.args) > 0 {
		v.Set("path", l.args[0])
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Color = ColorMode(strings.ToLower(string(cfg.Color)))

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("path", defaults.Path)
	v.SetDefault("color", string(defaults.Color))
	v.SetDefault("verbose", defaults.Verbose)
}

// Load is a convenience function that creates a loader and loads config.
func Load(flags *pflag.FlagSet, args []string) (*Config, error) {
	return NewLoader(flags, args).Load()
}

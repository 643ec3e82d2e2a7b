package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColorMode indicates an unsupported --color value
	ErrInvalidColorMode = errors.New("invalid color mode")
)

// Validate checks that the configuration is valid and complete.
// An empty or missing path is not checked here; the extractor reports it as unavailable input.
func Validate(cfg *Config) error {
	switch cfg.Color {
	case ColorAuto, ColorOn, ColorOff:
		return nil
	default:
		return fmt.Errorf("%w: must be 'auto', 'on' or 'off', got '%s'", ErrInvalidColorMode, cfg.Color)
	}
}

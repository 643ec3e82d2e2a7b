// Package config resolves funcsplit's run settings.
//
// Settings come from two places only (highest priority first):
//  1. Command line: the optional file argument and the --color/--verbose flags
//  2. Built-in defaults
//
// No configuration file and no environment variables are consulted.
package config

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultPath is analyzed when no file argument is given.
const DefaultPath = "config.js"

// ColorMode selects when the report is colorized.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

// Config holds the settings for one run.
type Config struct {
	Path    string    `mapstructure:"path"`    // file to analyze
	Color   ColorMode `mapstructure:"color"`   // "auto", "on" or "off"
	Verbose bool      `mapstructure:"verbose"` // log progress to stderr
}

// Default returns a configuration with the built-in defaults.
func Default() *Config {
	return &Config{
		Path:    DefaultPath,
		Color:   ColorOff,
		Verbose: false,
	}
}

// Enabled reports whether output written to w should be colorized.
// In auto mode only a terminal gets colors.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorOn:
		return true
	case ColorAuto:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	default:
		return false
	}
}

// Package config carries the explicit startup configuration object.
// It replaces the process-wide mutable settings the app grew up with:
// everything is loaded once, handed to the application, and never
// touched by the computation core.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultLogLevel     = "INFO"
)

// Preferences holds host-layer settings: window geometry and the
// initial logging configuration. The computation core never reads it.
type Preferences struct {
	WindowWidth  float32 `toml:"window_width"`
	WindowHeight float32 `toml:"window_height"`
	LogLevel     string  `toml:"log_level"`
	LogStdout    bool    `toml:"log_stdout"`
}

// DefaultPreferences returns the built-in settings used when no
// preferences file exists.
func DefaultPreferences() Preferences {
	return Preferences{
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		LogLevel:     DefaultLogLevel,
		LogStdout:    true,
	}
}

// Load reads preferences from a TOML file, falling back to defaults
// when the file is absent. A present but malformed file is an error:
// silently ignoring a file the user wrote hides their mistake.
func Load(path string) (Preferences, error) {
	prefs := DefaultPreferences()
	if path == "" {
		return applyEnvOverrides(prefs), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return applyEnvOverrides(prefs), nil
	}
	if _, err := toml.DecodeFile(path, &prefs); err != nil {
		return Preferences{}, fmt.Errorf("parse preferences %s: %w", path, err)
	}
	if prefs.WindowWidth <= 0 {
		prefs.WindowWidth = DefaultWindowWidth
	}
	if prefs.WindowHeight <= 0 {
		prefs.WindowHeight = DefaultWindowHeight
	}
	if prefs.LogLevel == "" {
		prefs.LogLevel = DefaultLogLevel
	}
	return applyEnvOverrides(prefs), nil
}

// applyEnvOverrides lets environment variables win over the file, in
// the same spirit as the debug toggles this app's tooling always used.
func applyEnvOverrides(prefs Preferences) Preferences {
	if v := os.Getenv("BIORHYTHM_LOG_LEVEL"); v != "" {
		prefs.LogLevel = v
	}
	if v := os.Getenv("BIORHYTHM_LOG_STDOUT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			prefs.LogStdout = b
		}
	}
	if v := os.Getenv("BIORHYTHM_WINDOW_WIDTH"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 {
			prefs.WindowWidth = float32(f)
		}
	}
	if v := os.Getenv("BIORHYTHM_WINDOW_HEIGHT"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 {
			prefs.WindowHeight = float32(f)
		}
	}
	return prefs
}

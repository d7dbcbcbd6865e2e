// ABOUTME: Configuration management for shot list editor limits
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

// Package config loads and saves the tunable limits for the shot list editor.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Limits holds all bounds the shot list model enforces
type Limits struct {
	// Count bounds
	MinShots int `toml:"min_shots"`
	MaxShots int `toml:"max_shots"`

	// Duration bounds (seconds)
	MinDuration      int `toml:"min_duration"`
	MaxDuration      int `toml:"max_duration"`
	MaxTotalDuration int `toml:"max_total_duration"`

	// Duration assigned to newly added shots (clamped to remaining budget)
	DefaultAddDuration int `toml:"default_add_duration"`

	// Description length cap (characters)
	MaxDescriptionLength int `toml:"max_description_length"`
}

// DefaultLimits returns the default editor limits matching the generation
// backend's multi-shot constraints (max 6 shots, 15 seconds total)
func DefaultLimits() Limits {
	return Limits{
		MinShots:             1,
		MaxShots:             6,
		MinDuration:          1,
		MaxDuration:          15,
		MaxTotalDuration:     15,
		DefaultAddDuration:   2,
		MaxDescriptionLength: 2500,
	}
}

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to ~/.config/shotlist-editor/config.toml
func GetConfigPath() string {
	// First try current directory
	if _, err := os.Stat("./shotlist-editor.toml"); err == nil {
		return "./shotlist-editor.toml"
	}

	// Then try ~/.config/shotlist-editor/config.toml
	home, err := os.UserHomeDir()
	if err != nil {
		return "./shotlist-editor.toml"
	}

	return filepath.Join(home, ".config", "shotlist-editor", "config.toml")
}

// LoadLimits loads limits from a TOML file
// If the file doesn't exist or fails to load, returns default limits
func LoadLimits(path string) (Limits, error) {
	// Try to read the file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return DefaultLimits(), nil
		}
		return DefaultLimits(), fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse TOML
	var limits Limits
	if err := toml.Unmarshal(data, &limits); err != nil {
		return DefaultLimits(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return sanitizeLimits(limits), nil
}

// SaveLimits saves limits to a TOML file
func SaveLimits(path string, limits Limits) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	// Encode limits as TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(limits); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// sanitizeLimits replaces nonsensical values from a hand-edited config file
// with defaults, field by field
func sanitizeLimits(limits Limits) Limits {
	defaults := DefaultLimits()

	if limits.MinShots < 1 {
		limits.MinShots = defaults.MinShots
	}

	if limits.MaxShots < limits.MinShots {
		limits.MaxShots = defaults.MaxShots
	}

	if limits.MinDuration < 1 {
		limits.MinDuration = defaults.MinDuration
	}

	if limits.MaxDuration < limits.MinDuration {
		limits.MaxDuration = defaults.MaxDuration
	}

	if limits.MaxTotalDuration < limits.MinDuration {
		limits.MaxTotalDuration = defaults.MaxTotalDuration
	}

	if limits.DefaultAddDuration < limits.MinDuration {
		limits.DefaultAddDuration = defaults.DefaultAddDuration
	}

	if limits.MaxDescriptionLength < 1 {
		limits.MaxDescriptionLength = defaults.MaxDescriptionLength
	}

	return limits
}

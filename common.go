// ABOUTME: Shared initialization code for all modes (edit, check, watch)
// ABOUTME: Provides shot list loading, limits setup, and debug logging

package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"shotlist-editor/config"
	"shotlist-editor/shot"
)

var debugLog *log.Logger

// RunOptions contains command-line options for all modes
type RunOptions struct {
	ShotsPath  string
	DryRun     bool
	OutputPath string
	DebugLog   bool
	Disabled   bool
}

// loadEditorState loads the configured limits and the shot list file.
// When requireFile is false a missing file is not an error: the editor
// starts from the default seeded list and creates the file on first save.
func loadEditorState(path string, requireFile bool) ([]shot.Shot, config.Limits, error) {
	limits, err := config.LoadLimits(config.GetConfigPath())
	if err != nil {
		// LoadLimits already fell back to defaults, but note the bad config
		debugf("[CONFIG] %v", err)
	}

	shots, err := shot.ReadShots(path)
	if err != nil {
		if !requireFile && errors.Is(err, os.ErrNotExist) {
			return nil, limits, nil
		}

		return nil, limits, err
	}

	return shots, limits, nil
}

// SetupDebugLog initializes debug logging
func SetupDebugLog(filename string) error {
	if err := InitDebugLog(filename); err != nil {
		return fmt.Errorf("failed to initialize debug log: %w", err)
	}

	fileInfo, _ := os.Stdout.Stat()
	if (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		fmt.Printf("Debug logging enabled: %s\n", filename)
	}

	return nil
}

// InitDebugLog initializes debug logging
func InitDebugLog(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %w", err)
	}

	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)

	return nil
}

// debugf logs debug messages if enabled
func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}

// truncate shortens string to maxLen, adding "..." if needed
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return s[:maxLen]
	}

	return s[:maxLen-3] + "..."
}

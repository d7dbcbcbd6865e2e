// ABOUTME: Handles reading and writing shot list JSON files
// ABOUTME: Provides load/save with a .bak backup before overwriting

package shot

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadShots reads a JSON shot list file.
// The records carry exactly the fields the editor emits, so a saved file
// round-trips unchanged.
func ReadShots(path string) ([]Shot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shot list: %w", err)
	}

	var shots []Shot
	if err := json.Unmarshal(data, &shots); err != nil {
		return nil, fmt.Errorf("failed to parse shot list: %w", err)
	}

	return shots, nil
}

// WriteShots writes shots to a JSON file.
// Creates a backup (.bak) of the existing file before overwriting.
func WriteShots(path string, shots []Shot) error {
	// Create backup if file exists
	if _, err := os.Stat(path); err == nil {
		backupPath := path + ".bak"
		if err := os.Rename(path, backupPath); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	data, err := json.MarshalIndent(shots, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode shot list: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write shot list: %w", err)
	}

	return nil
}

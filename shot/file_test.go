// ABOUTME: Tests for shot list JSON file reading and writing
// ABOUTME: Verifies round-tripping, backup creation, and malformed input handling

package shot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAndReadShots(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "shots.json")

	shots := []Shot{
		{ID: "shot-1", Name: "Shot1", Duration: 2, Description: "opening wide"},
		{ID: "shot-2", Name: "Shot2", Duration: 5, Description: ""},
	}

	if err := WriteShots(tmpFile, shots); err != nil {
		t.Fatalf("WriteShots failed: %v", err)
	}

	loaded, err := ReadShots(tmpFile)
	if err != nil {
		t.Fatalf("ReadShots failed: %v", err)
	}

	if len(loaded) != len(shots) {
		t.Fatalf("Expected %d shots, got %d", len(shots), len(loaded))
	}

	for i := range shots {
		if loaded[i] != shots[i] {
			t.Errorf("Shot %d mismatch: got %+v, want %+v", i, loaded[i], shots[i])
		}
	}
}

func TestWriteShotsCreatesBackup(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "shots.json")

	first := []Shot{{ID: "shot-1", Name: "Shot1", Duration: 2}}
	if err := WriteShots(tmpFile, first); err != nil {
		t.Fatalf("First write failed: %v", err)
	}

	second := []Shot{{ID: "shot-2", Name: "Shot1", Duration: 3}}
	if err := WriteShots(tmpFile, second); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	// Backup should hold the first version
	backup, err := ReadShots(tmpFile + ".bak")
	if err != nil {
		t.Fatalf("Failed to read backup: %v", err)
	}

	if len(backup) != 1 || backup[0].ID != "shot-1" {
		t.Errorf("Backup does not contain first version: %+v", backup)
	}
}

func TestReadShotsMissingFile(t *testing.T) {
	if _, err := ReadShots(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestReadShotsMalformedJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "shots.json")
	if err := os.WriteFile(tmpFile, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadShots(tmpFile); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

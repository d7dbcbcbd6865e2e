// ABOUTME: Defines the Shot record and stable id assignment
// ABOUTME: Ids follow the shot-<number> scheme and are never reused or reordered

// Package shot owns the ordered shot sequence and all invariant enforcement:
// count bounds, per-shot duration bounds, the shared duration budget, the
// description length cap, stable identity, and display-name derivation.
package shot

import (
	"regexp"
	"strconv"
)

// Shot represents one item in the editable shot sequence.
// The field names round-trip unchanged through host persistence.
type Shot struct {
	ID          string `json:"id"`          // Opaque stable identifier, assigned once
	Name        string `json:"name"`        // Derived: "Shot" + 1-based position
	Duration    int    `json:"duration"`    // Seconds
	Description string `json:"description"` // Free text, length-capped
}

// Ids parse as "shot-<number>"; anything else is tolerated as an opaque string
var idSuffixRegex = regexp.MustCompile(`^shot-(\d+)$`)

// parseIDSuffix extracts the numeric suffix from a shot-<number> id
// Returns the suffix and true, or 0 and false for opaque ids
func parseIDSuffix(id string) (int, bool) {
	matches := idSuffixRegex.FindStringSubmatch(id)
	if len(matches) < 2 {
		return 0, false
	}

	suffix, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, false
	}

	return suffix, true
}

// displayName returns the derived name for the shot at a 1-based position
func displayName(position int) string {
	return "Shot" + strconv.Itoa(position)
}

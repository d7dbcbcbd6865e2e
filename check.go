// ABOUTME: Non-interactive check mode for shot list files
// ABOUTME: Normalizes a shot file against the configured limits and prints a summary

package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"shotlist-editor/shot"
)

// RunCheck validates a shot list file against the configured limits.
// Out-of-range values are normalized the same way the editor normalizes them
// on load; the normalized list is written back unless --dry-run is set.
func RunCheck(opts RunOptions) error {
	shots, limits, err := loadEditorState(opts.ShotsPath, true)
	if err != nil {
		return err
	}

	list := shot.NewList(shots, limits)
	normalized := list.Shots()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "#\tID\tName\tDur\tDescription"); err != nil {
		log.Printf("Warning: failed to write header: %v", err)
	}

	if _, err := fmt.Fprintln(w, "---\t---\t----\t---\t-----------"); err != nil {
		log.Printf("Warning: failed to write separator: %v", err)
	}

	for i, s := range normalized {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%ds\t%s\n",
			i+1,
			s.ID,
			s.Name,
			s.Duration,
			truncate(s.Description, 40),
		); err != nil {
			log.Printf("Warning: failed to write shot %d: %v", i+1, err)
		}
	}

	if err := w.Flush(); err != nil {
		log.Printf("Warning: failed to flush output: %v", err)
	}

	fmt.Printf("\n%d shots, %d/%ds used\n", list.Len(), list.TotalDuration(), limits.MaxTotalDuration)

	if shotsEqual(shots, normalized) {
		fmt.Println("Shot list is valid, no changes needed")

		return nil
	}

	if opts.DryRun {
		fmt.Println("--dry-run mode: normalized shot list not written")

		return nil
	}

	outputPath := opts.ShotsPath
	if opts.OutputPath != "" {
		outputPath = opts.OutputPath
	}

	fmt.Printf("Writing normalized shot list to: %s\n", outputPath)

	if err := shot.WriteShots(outputPath, normalized); err != nil {
		return fmt.Errorf("failed to write shot list: %w", err)
	}

	fmt.Println("Done!")

	return nil
}

// shotsEqual reports whether two shot sequences match field for field
func shotsEqual(a, b []shot.Shot) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

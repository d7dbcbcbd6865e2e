// ABOUTME: Interactive edit mode wiring the editor widget to the shot list file
// ABOUTME: Persists every committed change so a watch-mode viewer follows along live

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"shotlist-editor/editor"
	"shotlist-editor/shot"
)

// RunEdit opens the interactive editor on the shot list file
func RunEdit(opts RunOptions) error {
	initial, limits, err := loadEditorState(opts.ShotsPath, false)
	if err != nil {
		return err
	}

	outputPath := opts.ShotsPath
	if opts.OutputPath != "" {
		outputPath = opts.OutputPath
	}

	editorOpts := []editor.Option{
		editor.WithDebugf(debugf),
		editor.WithDisabled(opts.Disabled),
	}

	if !opts.DryRun && !opts.Disabled {
		// Save after every committed change so --watch viewers see edits live
		editorOpts = append(editorOpts, editor.WithOnChange(func(shots []shot.Shot) {
			if err := shot.WriteShots(outputPath, shots); err != nil {
				debugf("[SAVE] Failed to write shot list: %v", err)
			}
		}))
	}

	m := editor.New(initial, limits, editorOpts...)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("editor error: %w", err)
	}

	if opts.DryRun {
		fmt.Println("--dry-run mode: shot list not modified")

		return nil
	}

	if opts.Disabled {
		return nil
	}

	finalModel, ok := final.(editor.Model)
	if !ok {
		return nil
	}

	shots := finalModel.Shots()
	if err := shot.WriteShots(outputPath, shots); err != nil {
		return fmt.Errorf("failed to write shot list: %w", err)
	}

	fmt.Printf("Wrote %d shots to %s\n", len(shots), outputPath)

	return nil
}

// ABOUTME: Entry point for shotlist-editor application
// ABOUTME: Handles command-line parsing, profiling, and routing to edit, check, or watch modes

// Package main provides the entry point for shotlist-editor, an interactive shot list builder for storyboarding.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
)

func main() {
	os.Exit(run())
}

func run() int {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	check := flag.Bool("check", false, "validate and normalize the shot list without opening the editor")
	watch := flag.Bool("watch", false, "read-only live view that reloads when the file changes")
	debug := flag.Bool("debug", false, "enable debug logging to shotlist-editor-debug.log")
	dryRun := flag.Bool("dry-run", false, "preview edits without writing changes")
	output := flag.String("output", "", "write the shot list to this file (default: overwrite input)")
	disabled := flag.Bool("disabled", false, "open the editor read-only")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: shotlist-editor [flags] <shots.json>")
		fmt.Println("Example: shotlist-editor storyboard/shots.json")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}

	shotsPath := args[0]

	if *cpuprofile != "" {
		stopCPUProfile := setupCPUProfile(*cpuprofile)
		defer stopCPUProfile()
	}

	if *memprofile != "" {
		defer writeMemoryProfile(*memprofile)
	}

	if *debug {
		if err := SetupDebugLog("shotlist-editor-debug.log"); err != nil {
			log.Printf("Failed to setup debug log: %v", err)

			return 1
		}
	}

	opts := RunOptions{
		ShotsPath:  shotsPath,
		DryRun:     *dryRun,
		OutputPath: *output,
		DebugLog:   *debug,
		Disabled:   *disabled,
	}

	switch {
	case *check:
		if err := RunCheck(opts); err != nil {
			log.Printf("Check error: %v", err)

			return 1
		}

	case *watch:
		if err := RunWatchMode(shotsPath); err != nil {
			log.Printf("Watch error: %v", err)

			return 1
		}

	default:
		if err := RunEdit(opts); err != nil {
			log.Printf("Editor error: %v", err)

			return 1
		}
	}

	return 0
}

// setupCPUProfile starts CPU profiling, returns cleanup function
func setupCPUProfile(filename string) func() {
	f, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		log.Fatalf("could not start CPU profile: %v", err)
	}

	return func() {
		pprof.StopCPUProfile()

		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close CPU profile: %v", err)
		}
	}
}

// writeMemoryProfile writes memory profile to file
func writeMemoryProfile(filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("could not create memory profile: %v", err)

		return
	}

	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close memory profile: %v", err)
		}
	}()

	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %v", err)
	}
}

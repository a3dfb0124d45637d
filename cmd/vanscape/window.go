package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vanscape/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a VanScape session in a desktop window. One pixel is one world
unit; the window size comes from the config (arena.window_width and
arena.window_height).

Controls:
  Mouse   - Steer
  P       - Pause
  Q/Esc   - Quit
  Any key - Try again (after game over)

Examples:
  vanscape window
  vanscape window --difficulty hard --fps 120`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal is free, so logs go to stderr
	logger := newLogger(os.Stderr, "vanscape")

	best := openBest()
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	watcher := watchConfig(preset, logger)
	if watcher != nil {
		defer watcher.Close()
	}

	err = window.Run(window.Options{
		Config:     cfg,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Best:       bestStore(best),
		Store:      store,
		Watcher:    watcher,
		Logger:     logger,
		Player:     localPlayer(),
		Difficulty: string(preset),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

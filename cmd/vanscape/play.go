package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vanscape/internal/core"
	"github.com/vovakirdan/vanscape/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a VanScape session in the terminal. Your ship follows the mouse.

Controls:
  Mouse        - Steer
  Arrows/hjkl  - Nudge the pointer one cell
  P            - Pause
  Q/Esc/Ctrl+C - Quit
  Any key      - Try again (after game over)

Difficulty options:
  easy   - More lives, the enemy fires half as often
  normal - Config as is
  hard   - Fewer lives, faster enemy, twice the fire rate
  fixed  - No level progression

Examples:
  vanscape play
  vanscape play --difficulty easy
  vanscape play --config ./my-vanscape.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, preset, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logFile = nopCloser{os.Stderr}
	}
	defer logFile.Close()
	logger := newLogger(logFile, "vanscape")

	best := openBest()
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	watcher := watchConfig(preset, logger)
	if watcher != nil {
		defer watcher.Close()
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	err = tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
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

	fmt.Printf("Best: %d\n", bestValue(best))
}

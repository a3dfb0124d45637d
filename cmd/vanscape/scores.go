package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vanscape/internal/platform/tui"
	"github.com/vovakirdan/vanscape/internal/storage"
)

var (
	flagClearRuns bool
	flagPlayer    string
	flagRunID     string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and run history",
	Long: `Display the best-ever score and the top recorded runs.

In a terminal the scoreboard is interactive; when the output is piped a
plain table is printed instead.

Examples:
  vanscape scores
  vanscape scores | head
  vanscape scores --player alice
  vanscape scores --run 6f1c0f6e-8d3e-4b43-9d1e-2f0b6c3a9e51
  vanscape scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearRuns, "clear", false, "Delete the run history (the best score is kept)")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show the recent runs of this player")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by id")
}

func runScores(_ *cobra.Command, _ []string) {
	best := openBest()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearRuns {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagRunID != "" {
		showRun(store, flagRunID)
		return
	}

	scores, err := tui.LoadScores(bestValue(best), store)
	if err == nil && flagPlayer != "" {
		scores.Runs, err = store.PlayerRuns(flagPlayer, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		if err := tui.WriteScores(os.Stdout, scores); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width = w
		height = h
	}
	if err := tui.RunScoreboard(scores, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showRun(store *storage.Store, runID string) {
	run, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with id %q\n", runID)
		os.Exit(1)
	}

	fmt.Printf("Run:        %s\n", run.RunID)
	fmt.Printf("Player:     %s\n", run.Player)
	if run.Difficulty != "" {
		fmt.Printf("Difficulty: %s\n", run.Difficulty)
	}
	fmt.Printf("Score:      %d\n", run.Score)
	fmt.Printf("Level:      %d\n", run.Level)
	fmt.Printf("Ticks:      %d\n", run.Ticks)
	fmt.Printf("Date:       %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
}

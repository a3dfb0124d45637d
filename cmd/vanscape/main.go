// vanscape is a survival arcade game: steer with the mouse, dodge the
// enemy, its bullets and its bombs, and keep your lives for as long as you can.
//
// Usage:
//
//	vanscape play            - Play in the terminal
//	vanscape window          - Play in a desktop window
//	vanscape serve           - Start SSH server for remote play
//	vanscape scores          - Show the best score and recent runs
//	vanscape config          - Print the default config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--best <path>         - Best score file (default: ~/.vanscape/high_score.txt)
//	--db <path>           - Run history database (default: ~/.vanscape/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagBestPath   string
	flagDBPath     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vanscape",
	Short: "VanScape - dodge everything, survive as long as you can",
	Long: `VanScape is a survival arcade game. Your ship follows the mouse.
An enemy chases you, fires bullets and throws bombs that burst into
fragments. Every hit costs a life; pink bonuses give one back.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the best score and run history
  config   - Print the default config

Examples:
  vanscape play
  vanscape play --difficulty hard
  vanscape window --seed 42
  vanscape serve --ssh :2222
  vanscape scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagBestPath, "best", "~/.vanscape/high_score.txt", "Path to best score file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.vanscape/scores.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.vanscape/vanscape.log", "Log file for interactive sessions")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

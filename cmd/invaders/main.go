// invaders plays a wave of Space Invaders in the terminal.
//
// Usage:
//
//	invaders list              - List available games
//	invaders play [game]       - Play a game (default: invaders)
//	invaders sim               - Run a wave headless and print the outcome
//	invaders config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Append logs to a file while playing
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string

	// Game config flags shared by play, sim and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Defend the line against a marching alien formation.

Available commands:
  list     - Show all available games
  play     - Play a game
  sim      - Simulate a wave without a terminal UI
  config   - Show the effective configuration

Examples:
  invaders play
  invaders play --difficulty hard
  invaders sim --frames 7200 --autofire --seed 42
  invaders config --difficulty easy > ~/.invaders/configs/invaders.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

func addGameConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

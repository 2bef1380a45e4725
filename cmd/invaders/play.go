package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: invaders).

Controls:
  Left/A, Right/D  - Move the ship
  Space/Up         - Fire
  P/Esc            - Pause
  R                - Restart (after the wave ends)
  Ctrl+S           - Save a text screenshot to ~/.invaders/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, slower formation, fewer alien shots
  normal - Configured values
  hard   - Fewer lives, faster formation, more alien shots

Examples:
  invaders play
  invaders play invaders --difficulty hard
  invaders play --config ./my-invaders.yaml --log-file invaders.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameConfigFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "invaders"
	if len(args) > 0 {
		gameID = args[0]
	}

	if err := playGame(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if !registry.Exists(gameID) {
			fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available games.")
		}
		os.Exit(1)
	}
}

// playGame runs gameID in the terminal UI. The log file is closed on every
// return path.
func playGame(gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q", gameID)
	}

	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := openPlayLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Settings must be in place before the game is created
	invaders.SetLogger(logger)
	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game exited", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

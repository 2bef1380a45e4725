package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way 'play' does, applies the
difficulty preset, and prints the result as YAML.

Search order: --config, ~/.invaders/configs/invaders.yaml,
./configs/invaders.yaml, then the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameConfigFlags(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// loadGameConfig resolves --config and --difficulty into a configuration.
func loadGameConfig(logger *log.Logger) (config.InvadersConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.InvadersConfig{}, err
	}

	cfg, src, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return config.InvadersConfig{}, err
	}
	config.ApplyInvadersPreset(&cfg, preset)

	logger.Debug("config loaded", "source", src, "difficulty", preset)
	return cfg, nil
}

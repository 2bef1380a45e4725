// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders platform.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains all tunables for an invaders wave.
// Distances are world units with the y axis pointing up; times are seconds.
type InvadersConfig struct {
	World  WorldConfig  `yaml:"world"`
	Ship   ShipConfig   `yaml:"ship"`
	Aliens AliensConfig `yaml:"aliens"`
	Bolts  BoltsConfig  `yaml:"bolts"`
	Wave   WaveConfig   `yaml:"wave"`
}

// WorldConfig defines the play area.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	DefenseLine float64 `yaml:"defense_line"` // Aliens below this y end the wave
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Bottom   float64 `yaml:"bottom"`   // y of the ship's bottom edge
	Movement float64 `yaml:"movement"` // x distance per tick while a move key is held
	Lives    int     `yaml:"lives"`
}

// AliensConfig defines the alien formation.
type AliensConfig struct {
	Rows         int      `yaml:"rows"`
	Columns      int      `yaml:"columns"`
	Width        float64  `yaml:"width"`
	Height       float64  `yaml:"height"`
	HSep         float64  `yaml:"h_sep"`         // Horizontal gap between aliens, also the edge margin
	VSep         float64  `yaml:"v_sep"`         // Vertical gap between rows
	Ceiling      float64  `yaml:"ceiling"`       // Gap between the top row and the top of the world
	HWalk        float64  `yaml:"h_walk"`        // Horizontal distance per formation step
	VWalk        float64  `yaml:"v_walk"`        // Drop distance when the formation turns
	StepInterval float64  `yaml:"step_interval"` // Seconds between formation steps
	Images       []string `yaml:"images"`        // Image variants, one per pair of rows
}

// BoltsConfig defines laser bolts.
type BoltsConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // y distance per tick
	Rate   int     `yaml:"rate"`  // Alien fire countdown is drawn from [1, rate] formation steps
}

// WaveConfig defines controller timing around a wave.
type WaveConfig struct {
	RespawnDelay float64 `yaml:"respawn_delay"` // Seconds between losing a ship and respawning
}

// Validate reports the first invalid setting, if any.
func (c InvadersConfig) Validate() error {
	positives := []struct {
		name string
		v    float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"ship.width", c.Ship.Width},
		{"ship.height", c.Ship.Height},
		{"ship.movement", c.Ship.Movement},
		{"aliens.width", c.Aliens.Width},
		{"aliens.height", c.Aliens.Height},
		{"aliens.h_walk", c.Aliens.HWalk},
		{"aliens.step_interval", c.Aliens.StepInterval},
		{"bolts.width", c.Bolts.Width},
		{"bolts.height", c.Bolts.Height},
		{"bolts.speed", c.Bolts.Speed},
	}
	for _, p := range positives {
		if !(p.v > 0) {
			return fmt.Errorf("config: %s must be positive, got %v", p.name, p.v)
		}
	}

	if c.Aliens.Rows <= 0 || c.Aliens.Columns <= 0 {
		return fmt.Errorf("config: alien grid must be at least 1x1, got %dx%d", c.Aliens.Rows, c.Aliens.Columns)
	}
	if c.Aliens.HSep < 0 || c.Aliens.VSep < 0 || c.Aliens.VWalk < 0 || c.Aliens.Ceiling < 0 {
		return errors.New("config: alien separations, ceiling and v_walk must not be negative")
	}
	if len(c.Aliens.Images) == 0 {
		return errors.New("config: aliens.images must list at least one image")
	}
	if c.Ship.Lives <= 0 {
		return fmt.Errorf("config: ship.lives must be positive, got %d", c.Ship.Lives)
	}
	if c.Bolts.Rate <= 0 {
		return fmt.Errorf("config: bolts.rate must be positive, got %d", c.Bolts.Rate)
	}
	if c.Wave.RespawnDelay < 0 {
		return fmt.Errorf("config: wave.respawn_delay must not be negative, got %v", c.Wave.RespawnDelay)
	}
	if c.World.DefenseLine < 0 || c.World.DefenseLine >= c.World.Height {
		return fmt.Errorf("config: world.defense_line must lie inside the world, got %v", c.World.DefenseLine)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
// Normal and empty presets leave the config untouched.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Lives = 5
		cfg.Aliens.StepInterval *= 1.25
		cfg.Bolts.Rate += 3
	case DifficultyHard:
		cfg.Ship.Lives = 2
		cfg.Aliens.StepInterval *= 0.6
		if cfg.Bolts.Rate > 2 {
			cfg.Bolts.Rate -= 2
		}
	}
}

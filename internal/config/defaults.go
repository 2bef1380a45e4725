package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in invaders configuration.
// It mirrors defaults/invaders.yaml.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		World: WorldConfig{
			Width:       800,
			Height:      700,
			DefenseLine: 100,
		},
		Ship: ShipConfig{
			Width:    44,
			Height:   44,
			Bottom:   32,
			Movement: 5,
			Lives:    3,
		},
		Aliens: AliensConfig{
			Rows:         5,
			Columns:      12,
			Width:        33,
			Height:       33,
			HSep:         16,
			VSep:         16,
			Ceiling:      100,
			HWalk:        8,  // width / 4
			VWalk:        16, // height / 2
			StepInterval: 1.0,
			Images:       []string{"alien1", "alien2", "alien3"},
		},
		Bolts: BoltsConfig{
			Width:  4,
			Height: 16,
			Speed:  10,
			Rate:   5,
		},
		Wave: WaveConfig{
			RespawnDelay: 1.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}

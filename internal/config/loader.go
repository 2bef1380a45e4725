package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const invadersFile = "invaders.yaml"

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml ->
// ./configs/invaders.yaml -> embedded default.
// Files are decoded over the defaults, so they may set only some fields.
// A custom path that cannot be read, parsed or validated is an error; the
// implicit locations are skipped when invalid.
func LoadInvaders(customPath string) (InvadersConfig, Source, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultInvadersConfig(), "", err
		}
		return cfg, Source(customPath), nil
	}

	candidates := []string{filepath.Join("configs", invadersFile)}
	if userCfgPath := userConfigPath(invadersFile); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, Source(path), nil
		}
	}

	cfg, err := Decode(defaultInvadersYAML)
	if err != nil {
		return DefaultInvadersConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// Decode parses YAML over the default configuration and validates the result.
func Decode(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Encode renders a configuration as YAML.
func Encode(cfg InvadersConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return data, nil
}

func loadFile(path string) (InvadersConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InvadersConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return InvadersConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

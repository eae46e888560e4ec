package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadInvaders loads Alien Attack configuration on top of the defaults.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
func LoadInvaders(customPath string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{"configs/invaders.yaml"}
	if userCfgPath := userConfigPath("invaders.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	// Optional locations are skipped when missing, malformed or invalid
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if c, ok := parseInvaders(data); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	if c, ok := parseInvaders(defaultInvadersYAML); ok {
		return c, nil
	}
	return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
}

// parseInvaders decodes data over the defaults and keeps it only if valid.
func parseInvaders(data []byte) (InvadersConfig, bool) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.StartLevel = StartLevelForPreset(preset)

	// Adjust spawn pressure based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.Threshold = 0.98
	case DifficultyHard:
		cfg.Spawn.Threshold = 0.95
	}
}

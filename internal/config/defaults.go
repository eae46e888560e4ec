package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default Alien Attack configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		World: InvadersWorld{
			CellSize: 10,
		},
		Player: InvadersPlayer{
			Cadence:  2,
			Motion:   MotionGlide,
			MaxNudge: 4,
			StepSize: 5,
		},
		Projectile: InvadersProjectile{
			Cadence: 1,
		},
		Adversary: InvadersAdversary{
			BaseCadence: 20,
			CadenceStep: 2,
			SpawnMargin: 10,
		},
		Spawn: InvadersSpawn{
			Threshold: 0.97,
			PerLevel:  20,
		},
		Input: InvadersInput{
			QueueSize: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			StartLevel: 1,
		},
	}
}

// ClassicInvadersConfig returns the configuration of the classic variant,
// where each key press moves the player a fixed distance at once.
func ClassicInvadersConfig() InvadersConfig {
	cfg := DefaultInvadersConfig()
	cfg.Player.Motion = MotionStep
	cfg.Player.Cadence = 1
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders", "invaders_classic":
		return defaultInvadersYAML
	default:
		return nil
	}
}

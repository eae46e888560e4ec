package config

import "math"

// DifficultyManager derives level-dependent game parameters.
type DifficultyManager struct {
	cfg        DifficultyConfig
	adversary  InvadersAdversary
	perLevel   int
	startLevel int
}

// NewDifficultyManager creates a new difficulty manager for the given config.
func NewDifficultyManager(cfg InvadersConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:        cfg.Difficulty,
		adversary:  cfg.Adversary,
		perLevel:   cfg.Spawn.PerLevel,
		startLevel: max(cfg.Difficulty.StartLevel, 1),
	}
}

// IsEnabled returns whether level progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// StartLevel returns the level a new session begins at.
func (d *DifficultyManager) StartLevel() int {
	return d.startLevel
}

// NextLevel returns the level that follows a cleared level.
// With progression disabled the level repeats.
func (d *DifficultyManager) NextLevel(level int) int {
	if !d.cfg.Enabled {
		return level
	}
	return level + 1
}

// Budget returns how many adversaries a level spawns.
func (d *DifficultyManager) Budget(level int) int {
	return max(level, 1) * d.perLevel
}

// Cadence returns the adversary cadence for a level. The base cadence is
// divided by the level and rounded to the nearest multiple of the cadence
// step, so higher levels move faster in coarse increments. The result never
// drops below one step.
func (d *DifficultyManager) Cadence(level int) int {
	step := max(d.adversary.CadenceStep, 1)
	base := max(d.adversary.BaseCadence, step)
	level = max(level, 1)

	scaled := float64(base) / float64(level)
	cadence := int(math.Round(scaled/float64(step))) * step
	return max(cadence, step)
}

// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains all configuration for the Alien Attack game.
type InvadersConfig struct {
	World      InvadersWorld      `yaml:"world"`
	Player     InvadersPlayer     `yaml:"player"`
	Projectile InvadersProjectile `yaml:"projectile"`
	Adversary  InvadersAdversary  `yaml:"adversary"`
	Spawn      InvadersSpawn      `yaml:"spawn"`
	Input      InvadersInput      `yaml:"input"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// InvadersWorld defines the playfield geometry.
type InvadersWorld struct {
	CellSize int `yaml:"cell_size"` // Pixels per grid cell, used for intersection math
}

// Motion selects how directional input moves the player.
type Motion string

const (
	MotionGlide Motion = "glide" // Input accumulates a goal consumed over several ticks
	MotionStep  Motion = "step"  // Input moves the player a fixed distance at once
)

// InvadersPlayer defines player parameters.
type InvadersPlayer struct {
	Cadence  int    `yaml:"cadence"`   // Ticks between goal consumption steps
	Motion   Motion `yaml:"motion"`    // "glide" or "step"
	MaxNudge int    `yaml:"max_nudge"` // Upper bound of the random goal increment (inclusive)
	StepSize int    `yaml:"step_size"` // Cells per key press in step motion
}

// InvadersProjectile defines projectile parameters.
type InvadersProjectile struct {
	Cadence int `yaml:"cadence"` // Ticks between horizontal advances
}

// InvadersAdversary defines adversary movement parameters.
type InvadersAdversary struct {
	BaseCadence int `yaml:"base_cadence"` // Cadence at level 1
	CadenceStep int `yaml:"cadence_step"` // Cadence is rounded to multiples of this, and never drops below it
	SpawnMargin int `yaml:"spawn_margin"` // Spawn column distance from the right edge
}

// InvadersSpawn defines the spawn scheduler.
type InvadersSpawn struct {
	Threshold float64 `yaml:"threshold"` // A spawn happens when a uniform draw exceeds this
	PerLevel  int     `yaml:"per_level"` // Spawn budget per level number
}

// InvadersInput defines input buffering.
type InvadersInput struct {
	QueueSize int `yaml:"queue_size"` // Capacity of the bounded input queue
}

// Validate reports every out-of-range value in the config.
func (c InvadersConfig) Validate() error {
	var errs []error
	positive := []struct {
		name  string
		value int
	}{
		{"world.cell_size", c.World.CellSize},
		{"player.cadence", c.Player.Cadence},
		{"projectile.cadence", c.Projectile.Cadence},
		{"adversary.base_cadence", c.Adversary.BaseCadence},
		{"adversary.cadence_step", c.Adversary.CadenceStep},
		{"spawn.per_level", c.Spawn.PerLevel},
		{"input.queue_size", c.Input.QueueSize},
	}
	for _, p := range positive {
		if p.value < 1 {
			errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", p.name, p.value))
		}
	}
	if c.Player.MaxNudge < 0 {
		errs = append(errs, fmt.Errorf("player.max_nudge must not be negative, got %d", c.Player.MaxNudge))
	}
	if c.Player.StepSize < 0 {
		errs = append(errs, fmt.Errorf("player.step_size must not be negative, got %d", c.Player.StepSize))
	}
	if c.Adversary.SpawnMargin < 0 {
		errs = append(errs, fmt.Errorf("adversary.spawn_margin must not be negative, got %d", c.Adversary.SpawnMargin))
	}
	switch c.Player.Motion {
	case MotionGlide, MotionStep:
	default:
		errs = append(errs, fmt.Errorf("player.motion must be %q or %q, got %q", MotionGlide, MotionStep, c.Player.Motion))
	}
	if c.Spawn.Threshold < 0 || c.Spawn.Threshold >= 1 {
		errs = append(errs, fmt.Errorf("spawn.threshold must be in [0, 1), got %g", c.Spawn.Threshold))
	}
	if c.Difficulty.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("difficulty.start_level must be at least 1, got %d", c.Difficulty.StartLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid invaders config: %w", err)
	}
	return nil
}

// DifficultyConfig defines the level progression system.
type DifficultyConfig struct {
	Enabled    bool `yaml:"enabled"`     // When false the level never advances; the budget refills at the same level
	StartLevel int  `yaml:"start_level"` // Level the session begins at
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartLevelForPreset returns the starting level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	if preset == DifficultyHard {
		return 3
	}
	return 1
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

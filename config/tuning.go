package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML-overridable subset of the global configuration.
// Fields omitted from a tuning file keep their current values.
type Tuning struct {
	World   Config        `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Combat  CombatConfig  `yaml:"combat"`
	Pickup  PickupConfig  `yaml:"pickup"`
	Score   ScoreConfig   `yaml:"score"`
}

var (
	ErrInvalidWorld   = errors.New("world size must be positive")
	ErrInvalidPhysics = errors.New("gravity and max fall speed must be positive")
	ErrInvalidPlayer  = errors.New("player size and health must be positive")
)

// Current captures the active tunable values.
func Current() Tuning {
	return Tuning{
		World:   *C,
		Physics: Physics,
		Player:  Player,
		Enemy:   Enemy,
		Combat:  Combat,
		Pickup:  Pickup,
		Score:   Score,
	}
}

// Apply replaces the active tunable values.
func Apply(t Tuning) {
	world := t.World
	C = &world
	Physics = t.Physics
	Player = t.Player
	Enemy = t.Enemy
	Combat = t.Combat
	Pickup = t.Pickup
	Score = t.Score
}

func (t Tuning) Validate() error {
	if t.World.Width <= 0 || t.World.Height <= 0 || t.World.CellSize <= 0 {
		return ErrInvalidWorld
	}
	if t.Physics.Gravity <= 0 || t.Physics.MaxFallSpeed <= 0 {
		return ErrInvalidPhysics
	}
	if t.Player.Width <= 0 || t.Player.Height <= 0 || t.Player.Health <= 0 {
		return ErrInvalidPlayer
	}
	return nil
}

// ParseTuning decodes data on top of the active values.
func ParseTuning(data []byte) (Tuning, error) {
	t := Current()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("validate tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads a YAML tuning file and applies it. On error the active
// values are left untouched.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	Apply(t)
	return nil
}

package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Cell size of the collision broadphase grid
	CellSize int `yaml:"cellSize"`
}

// PhysicsConfig contains global physics constants
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`

	// Multiplicative horizontal decay applied without directional input
	Friction     float64 `yaml:"friction"`
	FrictionSnap float64 `yaml:"frictionSnap"` // Speeds below this snap to zero
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Movement
	Speed            float64 `yaml:"speed"`
	JumpPower        float64 `yaml:"jumpPower"`
	WallJumpPower    float64 `yaml:"wallJumpPower"`
	WallJumpPush     float64 `yaml:"wallJumpPush"` // Fraction of Speed pushed away from the wall
	SprintMultiplier float64 `yaml:"sprintMultiplier"`

	// Slide mechanics
	SlideSpeed       float64 `yaml:"slideSpeed"`
	SlideMaxDuration int     `yaml:"slideMaxDuration"`
	SlideMinSpeed    float64 `yaml:"slideMinSpeed"` // |vx| required to start a slide

	// Stamina
	MaxStamina   float64 `yaml:"maxStamina"`
	StaminaRegen float64 `yaml:"staminaRegen"`
	SprintDrain  float64 `yaml:"sprintDrain"`
	SlideCost    float64 `yaml:"slideCost"`
	JumpCost     float64 `yaml:"jumpCost"`
	WallJumpCost float64 `yaml:"wallJumpCost"`

	// Combat
	Health        int `yaml:"health"`
	InvulnFrames  int `yaml:"invulnFrames"`
	MaxBullets    int `yaml:"maxBullets"`
	ShootCooldown int `yaml:"shootCooldown"`
	FallDamage    int `yaml:"fallDamage"`

	// Spawn point used when a level does not define one
	SpawnX float64 `yaml:"spawnX"`
	SpawnY float64 `yaml:"spawnY"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name           string  `yaml:"name"`
	Health         int     `yaml:"health"`
	Speed          float64 `yaml:"speed"`
	PatrolDistance float64 `yaml:"patrolDistance"` // Zero disables patrolling

	// Jumper
	JumpInterval int     `yaml:"jumpInterval"` // Grounded frames between jumps
	JumpImpulse  float64 `yaml:"jumpImpulse"`

	// Shooter
	ShootInterval  int     `yaml:"shootInterval"`
	DetectionRange float64 `yaml:"detectionRange"`
}

// EnemyConfig contains shared enemy configuration and per-type settings
type EnemyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Ledge probe offsets from the leading bottom corner
	LedgeProbeAhead float64 `yaml:"ledgeProbeAhead"`
	LedgeProbeDepth float64 `yaml:"ledgeProbeDepth"`

	// Enemies below Height+FallMargin are removed from play
	FallMargin float64 `yaml:"fallMargin"`

	Walker  EnemyTypeConfig `yaml:"walker"`
	Jumper  EnemyTypeConfig `yaml:"jumper"`
	Shooter EnemyTypeConfig `yaml:"shooter"`
}

// BulletConfig describes one projectile kind
type BulletConfig struct {
	Speed    float64 `yaml:"speed"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Lifetime int     `yaml:"lifetime"`
}

// CombatConfig contains contact and projectile rules
type CombatConfig struct {
	PlayerBullet BulletConfig `yaml:"playerBullet"`
	EnemyBullet  BulletConfig `yaml:"enemyBullet"`

	BulletDamage  int `yaml:"bulletDamage"`
	ContactDamage int `yaml:"contactDamage"`

	// A falling player whose previous bottom edge was within this many
	// pixels of the enemy top counts as a stomp.
	StompTolerance float64 `yaml:"stompTolerance"`
	StompBounce    float64 `yaml:"stompBounce"`
}

// PickupConfig contains coin and goal dimensions and animation rates
type PickupConfig struct {
	CoinWidth    float64 `yaml:"coinWidth"`
	CoinHeight   float64 `yaml:"coinHeight"`
	CoinAnimStep float64 `yaml:"coinAnimStep"` // Phase advance per frame
	GoalWidth    float64 `yaml:"goalWidth"`
	GoalHeight   float64 `yaml:"goalHeight"`
	GoalAnimStep float64 `yaml:"goalAnimStep"`
}

// ScoreConfig contains score awards
type ScoreConfig struct {
	EnemyDefeat   int `yaml:"enemyDefeat"`
	Coin          int `yaml:"coin"`
	LevelComplete int `yaml:"levelComplete"`
}

// RenderConfig contains the presentation palette
type RenderConfig struct {
	Background   color.RGBA
	Platform     color.RGBA
	Player       color.RGBA
	PlayerBlink  color.RGBA
	Walker       color.RGBA
	Jumper       color.RGBA
	Shooter      color.RGBA
	PlayerBullet color.RGBA
	EnemyBullet  color.RGBA
	Coin         color.RGBA
	Goal         color.RGBA
	Overlay      color.RGBA
	Text         color.RGBA
	StaminaBar   color.RGBA
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Pickup PickupConfig
var Score ScoreConfig
var Render RenderConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 60, G: 200, B: 90, A: 255}
	Blue         = color.RGBA{R: 70, G: 130, B: 255, A: 255}
	Purple       = color.RGBA{R: 160, G: 80, B: 220, A: 255}
	Brown        = color.RGBA{R: 120, G: 85, B: 50, A: 255}
	Sky          = color.RGBA{R: 30, G: 30, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()

	Render = RenderConfig{
		Background:   Sky,
		Platform:     Brown,
		Player:       Blue,
		PlayerBlink:  White,
		Walker:       Red,
		Jumper:       Orange,
		Shooter:      Purple,
		PlayerBullet: Yellow,
		EnemyBullet:  Red,
		Coin:         Yellow,
		Goal:         Green,
		Overlay:      BlackOverlay,
		Text:         White,
		StaminaBar:   Green,
	}
}

// Reset restores every tunable value to its shipped default.
func Reset() {
	C = &Config{
		Width:    800,
		Height:   600,
		CellSize: 32,
	}

	Physics = PhysicsConfig{
		Gravity:      0.4,
		MaxFallSpeed: 10.0,
		Friction:     0.8,
		FrictionSnap: 0.1,
	}

	Player = PlayerConfig{
		Width:  24,
		Height: 32,

		Speed:            2.5,
		JumpPower:        9.0,
		WallJumpPower:    5.0,
		WallJumpPush:     0.5,
		SprintMultiplier: 1.8,

		SlideSpeed:       6.0,
		SlideMaxDuration: 30,
		SlideMinSpeed:    1.0,

		MaxStamina:   100,
		StaminaRegen: 0.5,
		SprintDrain:  0.5,
		SlideCost:    20,
		JumpCost:     10,
		WallJumpCost: 15,

		Health:        5,
		InvulnFrames:  60,
		MaxBullets:    3,
		ShootCooldown: 20,
		FallDamage:    1,

		SpawnX: 50,
		SpawnY: 300,
	}

	Enemy = EnemyConfig{
		Width:           28,
		Height:          28,
		LedgeProbeAhead: 10,
		LedgeProbeDepth: 5,
		FallMargin:      100,

		Walker: EnemyTypeConfig{
			Name:           EnemyWalker.String(),
			Health:         1,
			Speed:          1.2,
			PatrolDistance: 100,
		},
		Jumper: EnemyTypeConfig{
			Name:           EnemyJumper.String(),
			Health:         1,
			Speed:          1.5,
			PatrolDistance: 100,
			JumpInterval:   60,
			JumpImpulse:    7.0,
		},
		Shooter: EnemyTypeConfig{
			Name:           EnemyShooter.String(),
			Health:         2,
			ShootInterval:  90,
			DetectionRange: 300,
		},
	}

	Combat = CombatConfig{
		PlayerBullet: BulletConfig{
			Speed:    8,
			Width:    8,
			Height:   4,
			Lifetime: 120,
		},
		EnemyBullet: BulletConfig{
			Speed:    4,
			Width:    6,
			Height:   6,
			Lifetime: 120,
		},
		BulletDamage:   1,
		ContactDamage:  1,
		StompTolerance: 10,
		StompBounce:    8,
	}

	Pickup = PickupConfig{
		CoinWidth:    16,
		CoinHeight:   16,
		CoinAnimStep: 0.1,
		GoalWidth:    40,
		GoalHeight:   80,
		GoalAnimStep: 0.05,
	}

	Score = ScoreConfig{
		EnemyDefeat:   100,
		Coin:          10,
		LevelComplete: 100,
	}
}

// Type returns the configuration for the given enemy kind.
func (e *EnemyConfig) Type(t EnemyType) (*EnemyTypeConfig, bool) {
	switch t {
	case EnemyWalker:
		return &e.Walker, true
	case EnemyJumper:
		return &e.Jumper, true
	case EnemyShooter:
		return &e.Shooter, true
	}
	return nil, false
}

package components

import (
	cfg "github.com/automoto/pixelquest/config"
	"github.com/yohamta/donburi"
)

// SessionData is the per-run game context shared by all systems.
type SessionData struct {
	Level    int // 1-based
	MaxLevel int
	Score    int
	Coins    int
	Status   cfg.GameStatus

	// LevelCleared is set when the goal is reached on a non-final level.
	// The next level is loaded after the current frame's systems finish.
	LevelCleared bool
}

var Session = donburi.NewComponentType[SessionData]()

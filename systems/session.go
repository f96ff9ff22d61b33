package systems

import (
	"github.com/automoto/pixelquest/archetypes"
	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/yohamta/donburi"
)

// GetOrCreateSession returns the singleton Session component, creating if needed.
func GetOrCreateSession(w donburi.World) *components.SessionData {
	entry, ok := components.Session.First(w)
	if !ok {
		entry = archetypes.Session.Spawn(w)
		components.Session.SetValue(entry, components.SessionData{
			Level:  1,
			Status: cfg.StatusRunning,
		})
	}
	return components.Session.Get(entry)
}

// IsRunning reports whether the session has not reached game over or victory.
func IsRunning(w donburi.World) bool {
	return GetOrCreateSession(w).Status == cfg.StatusRunning
}

func addScore(w donburi.World, points int) {
	GetOrCreateSession(w).Score += points
}

func endSession(w donburi.World, status cfg.GameStatus) {
	session := GetOrCreateSession(w)
	if session.Status != cfg.StatusRunning {
		return
	}
	session.Status = status
	switch status {
	case cfg.StatusGameOver:
		GameOverEvent.Publish(w, GameOver{Score: session.Score, Level: session.Level})
	case cfg.StatusVictory:
		VictoryEvent.Publish(w, Victory{Score: session.Score, Coins: session.Coins})
	}
}

// ResetSession starts a fresh run: score, coins and status are cleared and
// the game is unpaused.
func ResetSession(w donburi.World) {
	session := GetOrCreateSession(w)
	*session = components.SessionData{
		Level:  1,
		Status: cfg.StatusRunning,
	}
	GetOrCreatePause(w).IsPaused = false
}

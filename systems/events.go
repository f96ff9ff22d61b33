package systems

import (
	cfg "github.com/automoto/pixelquest/config"
	"github.com/yohamta/donburi/features/events"
)

// PlayerDamaged is published after damage is applied to the player.
type PlayerDamaged struct {
	Amount    int
	Remaining int
}

type EnemyDefeated struct {
	Type  cfg.EnemyType
	Score int // Session score after the award
}

type CoinCollected struct {
	Coins int
	Score int
}

type LevelCompleted struct {
	Level int // The level that was just finished
	Score int
}

type GameOver struct {
	Score int
	Level int
}

type Victory struct {
	Score int
	Coins int
}

var (
	PlayerDamagedEvent  = events.NewEventType[PlayerDamaged]()
	EnemyDefeatedEvent  = events.NewEventType[EnemyDefeated]()
	CoinCollectedEvent  = events.NewEventType[CoinCollected]()
	LevelCompletedEvent = events.NewEventType[LevelCompleted]()
	GameOverEvent       = events.NewEventType[GameOver]()
	VictoryEvent        = events.NewEventType[Victory]()
)

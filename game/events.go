package game

import (
	"github.com/automoto/pixelquest/systems"
	"github.com/yohamta/donburi"
)

// Events subscribes callbacks to the lifecycle events of one game.
type Events struct {
	world donburi.World
}

func (e *Events) OnPlayerDamaged(fn func(systems.PlayerDamaged)) {
	systems.PlayerDamagedEvent.Subscribe(e.world, func(_ donburi.World, ev systems.PlayerDamaged) {
		fn(ev)
	})
}

func (e *Events) OnEnemyDefeated(fn func(systems.EnemyDefeated)) {
	systems.EnemyDefeatedEvent.Subscribe(e.world, func(_ donburi.World, ev systems.EnemyDefeated) {
		fn(ev)
	})
}

func (e *Events) OnCoinCollected(fn func(systems.CoinCollected)) {
	systems.CoinCollectedEvent.Subscribe(e.world, func(_ donburi.World, ev systems.CoinCollected) {
		fn(ev)
	})
}

func (e *Events) OnLevelCompleted(fn func(systems.LevelCompleted)) {
	systems.LevelCompletedEvent.Subscribe(e.world, func(_ donburi.World, ev systems.LevelCompleted) {
		fn(ev)
	})
}

func (e *Events) OnGameOver(fn func(systems.GameOver)) {
	systems.GameOverEvent.Subscribe(e.world, func(_ donburi.World, ev systems.GameOver) {
		fn(ev)
	})
}

func (e *Events) OnVictory(fn func(systems.Victory)) {
	systems.VictoryEvent.Subscribe(e.world, func(_ donburi.World, ev systems.Victory) {
		fn(ev)
	})
}

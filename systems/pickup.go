package systems

import (
	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/automoto/pixelquest/tags"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// UpdateCoins animates uncollected coins and collects any the player touches.
func UpdateCoins(w donburi.World) {
	var playerRect gamemath.Rect
	playerEntry, hasPlayer := tags.Player.First(w)
	if hasPlayer {
		playerRect = components.Body.Get(playerEntry).Rect()
	}

	var coins []*donburi.Entry
	tags.Coin.Each(w, func(e *donburi.Entry) {
		coins = append(coins, e)
	})

	for _, e := range coins {
		coin := components.Coin.Get(e)
		if coin.Collected {
			continue
		}
		coin.Phase = advancePhase(coin.Tween, coin.Phase)

		if hasPlayer && gamemath.Intersects(playerRect, components.Body.Get(e).Rect()) {
			collectCoin(w, coin)
		}
	}
}

func collectCoin(w donburi.World, coin *components.CoinData) {
	coin.Collected = true

	session := GetOrCreateSession(w)
	session.Coins++
	session.Score += cfg.Score.Coin

	CoinCollectedEvent.Publish(w, CoinCollected{Coins: session.Coins, Score: session.Score})
}

// UpdateGoal animates the goal and completes the level when the player
// reaches it.
func UpdateGoal(w donburi.World) {
	goalEntry, ok := tags.Goal.First(w)
	if !ok {
		return
	}
	goal := components.Goal.Get(goalEntry)
	goal.Phase = advancePhase(goal.Tween, goal.Phase)

	if goal.Reached {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	if gamemath.Intersects(components.Body.Get(playerEntry).Rect(), components.Body.Get(goalEntry).Rect()) {
		goal.Reached = true
		completeLevel(w)
	}
}

// completeLevel awards the level bonus and either ends the run on the last
// level or flags the next one for loading at the end of the frame.
func completeLevel(w donburi.World) {
	session := GetOrCreateSession(w)
	session.Score += cfg.Score.LevelComplete
	LevelCompletedEvent.Publish(w, LevelCompleted{Level: session.Level, Score: session.Score})

	if session.Level >= session.MaxLevel {
		endSession(w, cfg.StatusVictory)
		return
	}
	session.LevelCleared = true
}

// advancePhase steps the looping phase tween by one frame.
func advancePhase(tween *gween.Tween, phase float32) float32 {
	if tween == nil {
		return phase
	}
	current, finished := tween.Update(1)
	if finished {
		tween.Reset()
		return 0
	}
	return current
}

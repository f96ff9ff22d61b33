package systems

import (
	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/yohamta/donburi"
)

// DamagePlayer applies damage unless the player is invulnerable, and ends the
// session when health runs out. It reports whether damage was applied.
func DamagePlayer(w donburi.World, e *donburi.Entry, amount int) bool {
	player := components.Player.Get(e)
	if player.Invincible() {
		return false
	}

	health := components.Health.Get(e)
	health.Current -= amount
	if health.Current < 0 {
		health.Current = 0
	}
	player.InvulnFrames = cfg.Player.InvulnFrames

	PlayerDamagedEvent.Publish(w, PlayerDamaged{Amount: amount, Remaining: health.Current})

	if health.Current <= 0 {
		endSession(w, cfg.StatusGameOver)
	}
	return true
}

// DamageEnemy applies damage to an active enemy. The defeat bonus is awarded
// once, on the hit that deactivates it; inactive enemies ignore damage.
func DamageEnemy(w donburi.World, e *donburi.Entry, amount int) bool {
	enemy := components.Enemy.Get(e)
	if !enemy.Active {
		return false
	}

	health := components.Health.Get(e)
	health.Current -= amount
	if health.Current > 0 {
		return true
	}

	health.Current = 0
	deactivateEnemy(e)
	addScore(w, cfg.Score.EnemyDefeat)
	EnemyDefeatedEvent.Publish(w, EnemyDefeated{
		Type:  enemy.Type,
		Score: GetOrCreateSession(w).Score,
	})
	return true
}

func deactivateEnemy(e *donburi.Entry) {
	components.Enemy.Get(e).Active = false
	weapon := components.Weapon.Get(e)
	weapon.Bullets = weapon.Bullets[:0]
}

// RespawnPlayer returns the player to the level start point with zero
// velocity. Health, stamina and score are kept.
func RespawnPlayer(w donburi.World, e *donburi.Entry) {
	x, y := cfg.Player.SpawnX, cfg.Player.SpawnY
	if level := getLevel(w); level != nil {
		x, y = level.Spawn.X, level.Spawn.Y
	}

	resetPlayerAtPosition(e, x, y)
	SettleBody(getSpace(w), components.Body.Get(e), components.Physics.Get(e), getPlatforms(w))
}

func resetPlayerAtPosition(e *donburi.Entry, x, y float64) {
	body := components.Body.Get(e)
	body.X = x
	body.Y = y
	body.VX = 0
	body.VY = 0

	components.Physics.SetValue(e, components.PhysicsData{})
	transitionToState(components.State.Get(e), cfg.Normal)
}

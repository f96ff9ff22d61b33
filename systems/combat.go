package systems

import (
	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/yohamta/donburi"
)

// resolvePlayerBulletHits removes every player bullet overlapping the enemy
// and applies its damage.
func resolvePlayerBulletHits(w donburi.World, playerEntry, enemyEntry *donburi.Entry) {
	weapon := components.Weapon.Get(playerEntry)
	enemy := components.Enemy.Get(enemyEntry)
	enemyRect := components.Body.Get(enemyEntry).Rect()

	kept := weapon.Bullets[:0]
	for _, b := range weapon.Bullets {
		if enemy.Active && gamemath.Intersects(b.Rect(), enemyRect) {
			DamageEnemy(w, enemyEntry, cfg.Combat.BulletDamage)
			continue
		}
		kept = append(kept, b)
	}
	weapon.Bullets = kept
}

// resolveEnemyBulletHits removes every enemy bullet overlapping the player.
// A bullet is spent even when the player is invulnerable.
func resolveEnemyBulletHits(w donburi.World, playerEntry, enemyEntry *donburi.Entry) {
	weapon := components.Weapon.Get(enemyEntry)
	playerRect := components.Body.Get(playerEntry).Rect()

	kept := weapon.Bullets[:0]
	for _, b := range weapon.Bullets {
		if gamemath.Intersects(b.Rect(), playerRect) {
			DamagePlayer(w, playerEntry, cfg.Combat.BulletDamage)
			continue
		}
		kept = append(kept, b)
	}
	weapon.Bullets = kept
}

// resolveEnemyContact handles direct overlap. A falling player whose bottom
// edge was above the enemy top last frame stomps it and bounces; a sliding
// player defeats it; otherwise the player is hurt.
func resolveEnemyContact(w donburi.World, playerEntry, enemyEntry *donburi.Entry) {
	if !components.Enemy.Get(enemyEntry).Active {
		return
	}
	playerBody := components.Body.Get(playerEntry)
	enemyBody := components.Body.Get(enemyEntry)
	if !gamemath.Intersects(playerBody.Rect(), enemyBody.Rect()) {
		return
	}

	if isStomp(playerBody, enemyBody) {
		DamageEnemy(w, enemyEntry, cfg.Combat.ContactDamage)
		playerBody.VY = -cfg.Combat.StompBounce
		return
	}

	if components.State.Get(playerEntry).CurrentState == cfg.Sliding {
		DamageEnemy(w, enemyEntry, cfg.Combat.ContactDamage)
		return
	}

	DamagePlayer(w, playerEntry, cfg.Combat.ContactDamage)
}

func isStomp(player, enemy *components.BodyData) bool {
	previousBottom := player.Y + player.H - player.VY
	return player.VY > 0 && previousBottom <= enemy.Y+cfg.Combat.StompTolerance
}

package systems

import (
	"math"

	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/gamemath"
	"github.com/automoto/pixelquest/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies advances each active enemy in spawn order, resolving its
// interactions with the player before moving on to the next one.
func UpdateEnemies(w donburi.World) {
	var playerEntry *donburi.Entry
	if entry, ok := tags.Player.First(w); ok {
		playerEntry = entry
	}
	platforms := getPlatforms(w)

	var enemies []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})

	for _, e := range enemies {
		if !components.Enemy.Get(e).Active {
			continue
		}
		updateEnemyAI(e, playerEntry, platforms)

		if playerEntry == nil {
			continue
		}
		resolvePlayerBulletHits(w, playerEntry, e)
		resolveEnemyBulletHits(w, playerEntry, e)
		resolveEnemyContact(w, playerEntry, e)
	}
}

func updateEnemyAI(e *donburi.Entry, playerEntry *donburi.Entry, platforms []gamemath.Rect) {
	enemy := components.Enemy.Get(e)
	body := components.Body.Get(e)
	contact := components.Physics.Get(e)

	switch enemy.Type {
	case cfg.EnemyJumper:
		handleJumpTimer(enemy, body, contact)
	case cfg.EnemyShooter:
		handleShooter(enemy, body, components.Weapon.Get(e), playerEntry)
	}

	if enemy.PatrolDistance > 0 {
		handlePatrol(enemy, body, platforms)
	}

	applyGravity(body)
	body.Y += body.VY
	ResolveVertical(body, contact, platforms)

	if body.Y > float64(cfg.C.Height)+cfg.Enemy.FallMargin {
		deactivateEnemy(e)
	}
}

// handleJumpTimer counts grounded frames and jumps every JumpInterval frames.
func handleJumpTimer(enemy *components.EnemyData, body *components.BodyData, contact *components.PhysicsData) {
	if !contact.OnGround {
		return
	}
	enemy.JumpTimer++
	if enemy.JumpTimer >= enemy.TypeConfig.JumpInterval {
		body.VY = -enemy.TypeConfig.JumpImpulse
		enemy.JumpTimer = 0
	}
}

// handleShooter fires toward the player's side once the cooldown has elapsed
// and the player is within detection range.
func handleShooter(enemy *components.EnemyData, body *components.BodyData, weapon *components.WeaponData, playerEntry *donburi.Entry) {
	if weapon.Cooldown > 0 {
		weapon.Cooldown--
	}

	if playerEntry != nil && weapon.Cooldown == 0 {
		playerBody := components.Body.Get(playerEntry)
		if math.Abs(playerBody.X-body.X) < enemy.TypeConfig.DetectionRange {
			direction := cfg.DirectionLeft
			if playerBody.X > body.X {
				direction = cfg.DirectionRight
			}
			weapon.Bullets = append(weapon.Bullets, newBullet(body.Rect().CenterX(), body.Rect().CenterY(), direction, cfg.Combat.EnemyBullet))
			weapon.Cooldown = enemy.TypeConfig.ShootInterval
		}
	}

	weapon.Bullets = updateBullets(weapon.Bullets)
}

// handlePatrol walks the enemy and turns it around at ledges or at the end
// of its patrol range.
func handlePatrol(enemy *components.EnemyData, body *components.BodyData, platforms []gamemath.Rect) {
	body.X += body.VX

	if !hasGroundAhead(body, platforms) || math.Abs(body.X-enemy.StartX) > enemy.PatrolDistance {
		body.VX = -body.VX
	}
}

func hasGroundAhead(body *components.BodyData, platforms []gamemath.Rect) bool {
	probeX := body.X - cfg.Enemy.LedgeProbeAhead
	if body.VX > 0 {
		probeX = body.X + body.W + cfg.Enemy.LedgeProbeAhead
	}
	probeY := body.Y + body.H + cfg.Enemy.LedgeProbeDepth
	return hasGroundAt(platforms, probeX, probeY)
}

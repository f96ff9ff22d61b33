package systems

import (
	"math"

	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayer advances the player by one frame: movement mode, horizontal
// input, stamina, shooting, bullets, integration and collision, jumping,
// fall respawn and finally the invulnerability countdown.
func UpdatePlayer(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	input := getOrCreateInput(w)

	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	contact := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	weapon := components.Weapon.Get(playerEntry)
	platforms := getPlatforms(w)

	if weapon.Cooldown > 0 {
		weapon.Cooldown--
	}

	updatePlayerState(player, body, contact, state, input)
	handlePlayerInput(player, body, contact, state, input)
	regenerateStamina(player, state)
	handleShootInput(player, body, weapon, input)
	weapon.Bullets = updateBullets(weapon.Bullets)

	applyGravity(body)

	body.X += body.VX
	clampToWorld(body)
	ResolveHorizontal(body, contact, platforms)

	body.Y += body.VY
	ResolveVertical(body, contact, platforms)

	handleJumpInput(player, body, contact, state, input)

	if body.Y > float64(cfg.C.Height) {
		DamagePlayer(w, playerEntry, cfg.Player.FallDamage)
		RespawnPlayer(w, playerEntry)
	}

	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
}

// updatePlayerState picks the movement mode for this frame. A running slide
// ends when its duration is spent or the player leaves the ground.
func updatePlayerState(player *components.PlayerData, body *components.BodyData, contact *components.PhysicsData, state *components.StateData, input *components.InputData) {
	if state.CurrentState == cfg.Sliding {
		if state.StateTimer < cfg.Player.SlideMaxDuration && contact.OnGround {
			return
		}
		transitionToState(state, cfg.Normal)
	}

	if canStartSlide(player, body, contact, input) {
		enterSlideState(player, state)
		return
	}

	if GetAction(input, cfg.ActionSprint).Pressed && player.Stamina > 0 {
		transitionToState(state, cfg.Sprinting)
	} else {
		transitionToState(state, cfg.Normal)
	}
}

func canStartSlide(player *components.PlayerData, body *components.BodyData, contact *components.PhysicsData, input *components.InputData) bool {
	return GetAction(input, cfg.ActionDown).Pressed &&
		contact.OnGround &&
		player.Stamina >= cfg.Player.SlideCost &&
		math.Abs(body.VX) > cfg.Player.SlideMinSpeed
}

func enterSlideState(player *components.PlayerData, state *components.StateData) {
	transitionToState(state, cfg.Sliding)
	spendStamina(player, cfg.Player.SlideCost)
}

func transitionToState(state *components.StateData, next cfg.StateID) {
	if state.CurrentState == next {
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
}

// handlePlayerInput sets horizontal velocity for the current mode.
func handlePlayerInput(player *components.PlayerData, body *components.BodyData, contact *components.PhysicsData, state *components.StateData, input *components.InputData) {
	state.StateTimer++

	if state.CurrentState == cfg.Sliding {
		body.VX = cfg.Player.SlideSpeed * player.Direction
		return
	}

	speed := cfg.Player.Speed
	if state.CurrentState == cfg.Sprinting && contact.OnGround {
		speed *= cfg.Player.SprintMultiplier
		spendStamina(player, cfg.Player.SprintDrain)
	}

	switch {
	case GetAction(input, cfg.ActionMoveLeft).Pressed:
		body.VX = -speed
		player.Direction = cfg.DirectionLeft
	case GetAction(input, cfg.ActionMoveRight).Pressed:
		body.VX = speed
		player.Direction = cfg.DirectionRight
	default:
		applyFriction(body)
	}
}

func regenerateStamina(player *components.PlayerData, state *components.StateData) {
	if state.CurrentState != cfg.Normal || player.Stamina >= player.MaxStamina {
		return
	}
	player.Stamina = math.Min(player.Stamina+cfg.Player.StaminaRegen, player.MaxStamina)
}

func spendStamina(player *components.PlayerData, amount float64) {
	player.Stamina = math.Max(player.Stamina-amount, 0)
}

func handleShootInput(player *components.PlayerData, body *components.BodyData, weapon *components.WeaponData, input *components.InputData) {
	if !GetAction(input, cfg.ActionFire).Pressed {
		return
	}
	if weapon.Cooldown > 0 || len(weapon.Bullets) >= cfg.Player.MaxBullets {
		return
	}

	x := body.X
	if player.Direction == cfg.DirectionRight {
		x += body.W
	}
	weapon.Bullets = append(weapon.Bullets, newBullet(x, body.Y+body.H/2, player.Direction, cfg.Combat.PlayerBullet))
	weapon.Cooldown = cfg.Player.ShootCooldown
}

// handleJumpInput runs after collision so the contact flags are current.
func handleJumpInput(player *components.PlayerData, body *components.BodyData, contact *components.PhysicsData, state *components.StateData, input *components.InputData) {
	if !GetAction(input, cfg.ActionJump).Pressed {
		return
	}

	if contact.OnGround && player.Stamina >= cfg.Player.JumpCost && state.CurrentState != cfg.Sliding {
		body.VY = -cfg.Player.JumpPower
		contact.OnGround = false
		spendStamina(player, cfg.Player.JumpCost)
		return
	}

	if contact.OnWall && !contact.OnGround && player.Stamina >= cfg.Player.WallJumpCost {
		body.VY = -cfg.Player.WallJumpPower
		body.VX = -float64(contact.WallSide) * cfg.Player.Speed * cfg.Player.WallJumpPush
		contact.OnWall = false
		spendStamina(player, cfg.Player.WallJumpCost)
	}
}

package scenes

import (
	cfg "github.com/automoto/pixelquest/config"
	"github.com/automoto/pixelquest/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyBindings maps each action to the keys that trigger it
var keyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	cfg.ActionMoveRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	cfg.ActionDown:      {ebiten.KeyArrowDown, ebiten.KeyS},
	cfg.ActionJump:      {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	cfg.ActionSprint:    {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	cfg.ActionFire:      {ebiten.KeyX, ebiten.KeyJ},
	cfg.ActionPause:     {ebiten.KeyEscape, ebiten.KeyP},
}

// readInput samples the held state of every bound action.
func readInput() game.Input {
	var input game.Input
	for action, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input[action] = true
				break
			}
		}
	}
	return input
}

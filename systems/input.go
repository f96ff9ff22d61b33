package systems

import (
	"github.com/automoto/pixelquest/archetypes"
	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/yohamta/donburi"
)

// StoreInput records this frame's pressed actions.
// Must run BEFORE UpdatePause and UpdatePlayer in the frame.
func StoreInput(w donburi.World, pressed [cfg.ActionCount]bool) {
	input := getOrCreateInput(w)

	// Swap buffers: current becomes previous
	input.Previous = input.Current
	input.Current = pressed
}

func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		// Zero-value InputData is correct (all bools false)
		entry = archetypes.Input.Spawn(w)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

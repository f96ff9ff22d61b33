package systems

import (
	"github.com/automoto/pixelquest/archetypes"
	"github.com/automoto/pixelquest/components"
	cfg "github.com/automoto/pixelquest/config"
	"github.com/yohamta/donburi"
)

// UpdatePause toggles pause on the pause action's press edge.
// This system should run AFTER the input snapshot is stored but BEFORE other game systems.
func UpdatePause(w donburi.World) {
	if !IsRunning(w) {
		return
	}
	pause := GetOrCreatePause(w)
	input := getOrCreateInput(w)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
}

// WithPauseCheck wraps a system to skip execution when paused
func WithPauseCheck(system System) System {
	return func(w donburi.World) {
		if pause := GetOrCreatePause(w); pause.IsPaused {
			return
		}
		system(w)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(w donburi.World) *components.PauseData {
	entry, ok := components.Pause.First(w)
	if !ok {
		entry = archetypes.Pause.Spawn(w)
	}
	return components.Pause.Get(entry)
}

// IsPaused reports whether gameplay systems are suspended.
func IsPaused(w donburi.World) bool {
	return GetOrCreatePause(w).IsPaused
}

package systems

import "github.com/yohamta/donburi"

// System advances one concern of the world by a single frame.
type System func(w donburi.World)

// WithStatusCheck wraps a system to skip execution once the session has ended.
func WithStatusCheck(system System) System {
	return func(w donburi.World) {
		if !IsRunning(w) {
			return
		}
		system(w)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or after
// the session has ended.
func WithGameplayChecks(system System) System {
	return WithPauseCheck(WithStatusCheck(system))
}

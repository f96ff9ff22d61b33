package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionDown
	ActionJump
	ActionSprint
	ActionFire
	ActionPause
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionDown:      "down",
	ActionJump:      "jump",
	ActionSprint:    "sprint",
	ActionFire:      "fire",
	ActionPause:     "pause",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

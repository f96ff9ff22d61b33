package components

import (
	cfg "github.com/automoto/pixelquest/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  cfg.StateID
	PreviousState cfg.StateID
	StateTimer    int // Frames spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()

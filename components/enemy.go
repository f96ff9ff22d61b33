package components

import (
	cfg "github.com/automoto/pixelquest/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Type       cfg.EnemyType
	TypeConfig *cfg.EnemyTypeConfig
	Active     bool

	StartX         float64
	PatrolDistance float64
	JumpTimer      int
}

var Enemy = donburi.NewComponentType[EnemyData]()

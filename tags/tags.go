package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Coin   = donburi.NewTag().SetName("Coin")
	Goal   = donburi.NewTag().SetName("Goal")

	// LevelEntity marks everything that is torn down when a level is replaced.
	LevelEntity = donburi.NewTag().SetName("LevelEntity")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvProbe = "probe"
)

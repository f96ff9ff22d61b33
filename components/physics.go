package components

import "github.com/yohamta/donburi"

// PhysicsData holds contact flags produced by collision resolution.
type PhysicsData struct {
	OnGround bool
	OnWall   bool
	WallSide int // 1 when the wall is to the right, -1 to the left
}

var Physics = donburi.NewComponentType[PhysicsData]()

package config

// StateID identifies the player's movement mode.
type StateID int

const (
	StateNone StateID = iota - 1
	Normal
	Sprinting
	Sliding
)

var stateNames = map[StateID]string{
	Normal:    "normal",
	Sprinting: "sprinting",
	Sliding:   "sliding",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// EnemyType names an enemy behavior. The values match the enemyType
// property used in level files.
type EnemyType string

const (
	EnemyWalker  EnemyType = "walker"
	EnemyJumper  EnemyType = "jumper"
	EnemyShooter EnemyType = "shooter"
)

func (t EnemyType) String() string {
	return string(t)
}

// GameStatus is the session lifecycle state.
type GameStatus int

const (
	StatusRunning GameStatus = iota
	StatusGameOver
	StatusVictory
)

func (s GameStatus) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game over"
	case StatusVictory:
		return "victory"
	}
	return "unknown"
}

package archetypes

import (
	"github.com/automoto/pixelquest/components"
	"github.com/automoto/pixelquest/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		tags.LevelEntity,
		components.Player,
		components.Body,
		components.Physics,
		components.Health,
		components.State,
		components.Weapon,
	)
	Enemy = newArchetype(
		tags.Enemy,
		tags.LevelEntity,
		components.Enemy,
		components.Body,
		components.Physics,
		components.Health,
		components.Weapon,
	)
	Coin = newArchetype(
		tags.Coin,
		tags.LevelEntity,
		components.Coin,
		components.Body,
	)
	Goal = newArchetype(
		tags.Goal,
		tags.LevelEntity,
		components.Goal,
		components.Body,
	)
	Level = newArchetype(
		tags.LevelEntity,
		components.Level,
	)
	Space = newArchetype(
		tags.LevelEntity,
		components.Space,
	)
	Session = newArchetype(
		components.Session,
	)
	Pause = newArchetype(
		components.Pause,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}

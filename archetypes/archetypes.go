package archetypes

import (
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Body,
		components.GroundDetection,
		components.Intent,
	)
	Level = newArchetype(
		components.Level,
	)
	WallCell = newArchetype(
		tags.PendingWall,
		components.WallCell,
	)
	Wall = newArchetype(
		tags.Wall,
		components.WallCollider,
	)
	Colliders = newArchetype(
		components.Colliders,
		components.LevelSelection,
	)
	Camera = newArchetype(
		components.Camera,
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
	all := append(append([]donburi.IComponentType(nil), a.components...), cs...)
	return w.Entry(w.Create(all...))
}

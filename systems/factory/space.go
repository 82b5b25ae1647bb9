package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/physics"
	"github.com/automoto/platformer/shared/collider"
	"github.com/automoto/platformer/shared/ground"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateColliders spawns the collision resource: a Chipmunk world mirroring
// the collider arena, and the ground tracker fed by its sensors.
func CreateColliders(w donburi.World) *donburi.Entry {
	entry := archetypes.Colliders.Spawn(w)

	world := physics.NewWorld(cfg.Physics.Gravity, cfg.Physics.Iterations)
	arena := collider.NewArena(world)
	arena.ShowDebug = cfg.Debug.ShowColliders

	components.Colliders.SetValue(entry, components.CollidersData{
		Arena:   arena,
		World:   world,
		Tracker: ground.NewTracker[physics.Handle](),
	})
	components.LevelSelection.SetValue(entry, components.LevelSelectionData{
		Current: leveldata.LevelID(cfg.Level.Start),
	})
	return entry
}

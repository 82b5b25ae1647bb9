package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePhysics steps the Chipmunk world one tick and copies body centers
// back into transforms.
func UpdatePhysics(w donburi.World) {
	res, ok := components.Colliders.First(w)
	if !ok {
		return
	}
	world := components.Colliders.Get(res).World
	world.Step(1 / float64(cfg.Physics.TickRate))

	components.Body.Each(w, func(e *donburi.Entry) {
		body, ok := world.Body(components.Body.Get(e).Handle)
		if !ok {
			return
		}
		x, y := body.Position()
		components.Transform.Get(e).Position = math.NewVec2(x, y)
	})
}

// UpdateGroundDetection feeds the contacts queued during the step into the
// ground tracker and mirrors the result into GroundDetection.
func UpdateGroundDetection(w donburi.World) {
	res, ok := components.Colliders.First(w)
	if !ok {
		return
	}
	colliders := components.Colliders.Get(res)
	colliders.Tracker.Apply(colliders.World.DrainContacts(), colliders.World.IsWall)

	components.GroundDetection.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		handle := components.Body.Get(e).Handle
		components.GroundDetection.Get(e).OnGround = colliders.Tracker.OnGround(handle)
	})
}

package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/gamemath"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
)

// UpdateMovement turns each player's intent into body velocity. Idle players
// are damped to a stop and jumps are only accepted while on the ground.
func UpdateMovement(w donburi.World) {
	res, ok := components.Colliders.First(w)
	if !ok {
		return
	}
	world := components.Colliders.Get(res).World
	dt := 1 / float64(cfg.Physics.TickRate)

	tags.Player.Each(w, func(e *donburi.Entry) {
		body, ok := world.Body(components.Body.Get(e).Handle)
		if !ok {
			return
		}
		intent := components.Intent.Get(e)
		player := components.Player.Get(e)
		vx, vy := body.Velocity()

		switch {
		case intent.MoveX > 0:
			vx = intent.MoveX * cfg.Player.WalkSpeed
			player.Direction = cfg.DirectionRight
		case intent.MoveX < 0:
			vx = intent.MoveX * cfg.Player.WalkSpeed
			player.Direction = cfg.DirectionLeft
		default:
			vx = gamemath.DampIdle(vx, cfg.Player.IdleDamping, dt, cfg.Player.IdleSnapSpeed)
		}

		// y grows downward, so a jump is a negative impulse.
		if intent.Jump && components.GroundDetection.Get(e).OnGround {
			vy = -cfg.Player.JumpSpeed
		}
		body.SetVelocity(vx, vy)
	})
}

package factory

import (
	"log"

	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ColliderBundle is the collider an entity kind spawns with.
type ColliderBundle struct {
	HalfWidth  float64
	HalfHeight float64
	Mass       float64
	Friction   float64
	// Sensor adds a ground sensor under the body.
	Sensor bool
}

// ColliderBundleFor returns the bundle for kind. Unknown kinds get a default
// 16x16 box without a ground sensor.
func ColliderBundleFor(kind components.ColliderKind) ColliderBundle {
	switch kind {
	case components.ColliderPlayer:
		return ColliderBundle{
			HalfWidth:  cfg.Player.CollisionWidth / 2,
			HalfHeight: cfg.Player.CollisionHeight / 2,
			Mass:       cfg.Player.Mass,
			Friction:   cfg.Player.Friction,
			Sensor:     true,
		}
	default:
		log.Printf("Unknown collider kind %q, using default collider", kind)
		return ColliderBundle{HalfWidth: 8, HalfHeight: 8, Mass: 1}
	}
}

// CreatePlayer spawns the player body centered at (x, y) in world space.
func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	bundle := ColliderBundleFor(components.ColliderPlayer)

	components.Player.SetValue(player, components.PlayerData{Direction: cfg.DirectionRight})
	components.Transform.SetValue(player, components.TransformData{
		Position:   math.NewVec2(x, y),
		HalfWidth:  bundle.HalfWidth,
		HalfHeight: bundle.HalfHeight,
	})

	res, ok := components.Colliders.First(w)
	if !ok {
		log.Printf("No collider world, player spawned without a body")
		return player
	}
	colliders := components.Colliders.Get(res)
	body := attachBody(colliders, bundle, x, y)
	components.Body.SetValue(player, body)
	return player
}

func attachBody(colliders *components.CollidersData, bundle ColliderBundle, x, y float64) components.BodyData {
	b := colliders.World.AddBody(physics.BodySpec{
		X:          x,
		Y:          y,
		HalfWidth:  bundle.HalfWidth,
		HalfHeight: bundle.HalfHeight,
		Mass:       bundle.Mass,
		Friction:   bundle.Friction,
	})
	data := components.BodyData{Handle: b.Handle}
	colliders.Tracker.AddDetector(b.Handle)

	if !bundle.Sensor {
		return data
	}
	sensor, err := colliders.World.AddGroundSensor(b.Handle, cfg.Player.SensorHeight)
	if err != nil {
		log.Printf("Cannot spawn ground sensor: %v", err)
		return data
	}
	colliders.Tracker.AddSensor(sensor, b.Handle)
	data.Sensor = sensor
	data.HasSensor = true
	return data
}

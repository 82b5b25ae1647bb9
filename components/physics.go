package components

import (
	"github.com/automoto/platformer/physics"
	"github.com/automoto/platformer/shared/collider"
	"github.com/automoto/platformer/shared/ground"
	"github.com/yohamta/donburi"
)

// ColliderKind selects the collider bundle an entity is spawned with.
type ColliderKind string

const (
	ColliderPlayer ColliderKind = "player"
)

// BodyData links an entity to its rigid body and ground sensor.
type BodyData struct {
	Handle    physics.Handle
	Sensor    physics.Handle
	HasSensor bool
}

var Body = donburi.NewComponentType[BodyData]()

// GroundDetectionData is true while any ground sensor contact is live.
type GroundDetectionData struct {
	OnGround bool
}

var GroundDetection = donburi.NewComponentType[GroundDetectionData]()

// CollidersData is the world resource shared by the collision systems.
type CollidersData struct {
	Arena   *collider.Arena
	World   *physics.World
	Tracker *ground.Tracker[physics.Handle]
}

var Colliders = donburi.NewComponentType[CollidersData]()

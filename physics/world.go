// Package physics runs the Chipmunk rigid body simulation: static wall boxes
// mirrored from the collider arena, dynamic character bodies, and ground
// sensors whose contacts are queued for the ground tracker.
package physics

import (
	"fmt"
	"math"

	"github.com/automoto/platformer/shared/collider"
	"github.com/automoto/platformer/shared/ground"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/jakecoffman/cp"
)

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeBody
	collisionTypeGroundSensor
)

// Handle identifies a body, sensor or wall shape owned by a World.
type Handle uint64

// Contact is a ground contact event between two handles.
type Contact = ground.ContactEvent[Handle]

// BodySpec describes a dynamic, rotation-locked box body.
type BodySpec struct {
	X, Y                  float64 // center
	HalfWidth, HalfHeight float64
	Mass                  float64
	Friction              float64
}

// Body is a dynamic body in the world.
type Body struct {
	Handle     Handle
	HalfWidth  float64
	HalfHeight float64

	body   *cp.Body
	shapes []*cp.Shape
}

// Position returns the body center.
func (b *Body) Position() (x, y float64) {
	p := b.body.Position()
	return p.X, p.Y
}

// SetPosition teleports the body.
func (b *Body) SetPosition(x, y float64) {
	b.body.SetPosition(cp.Vector{X: x, Y: y})
}

// Velocity returns the linear velocity.
func (b *Body) Velocity() (vx, vy float64) {
	v := b.body.Velocity()
	return v.X, v.Y
}

// SetVelocity sets the linear velocity.
func (b *Body) SetVelocity(vx, vy float64) {
	b.body.SetVelocity(vx, vy)
}

// World owns the Chipmunk space. It implements collider.Backend.
type World struct {
	space *cp.Space
	next  Handle

	bodies  map[Handle]*Body
	sensors map[Handle]*cp.Shape
	handles map[*cp.Shape]Handle
	walls   map[leveldata.LevelID][]*cp.Shape
	isWall  map[Handle]bool
	// retired holds detached walls whose end events are still queued.
	retired map[Handle]bool

	// active holds sensor/wall pairs currently touching, keyed in queue order.
	active   map[[2]Handle]bool
	contacts []Contact
}

// NewWorld creates an empty space with downward gravity in px/s².
func NewWorld(gravity float64, iterations uint) *World {
	space := cp.NewSpace()
	if iterations > 0 {
		space.Iterations = iterations
	}
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	w := &World{
		space:   space,
		bodies:  make(map[Handle]*Body),
		sensors: make(map[Handle]*cp.Shape),
		handles: make(map[*cp.Shape]Handle),
		walls:   make(map[leveldata.LevelID][]*cp.Shape),
		isWall:  make(map[Handle]bool),
		retired: make(map[Handle]bool),
		active:  make(map[[2]Handle]bool),
	}
	w.setupHandlers()
	return w
}

func (w *World) setupHandlers() {
	groundHandler := w.space.NewCollisionHandler(collisionTypeGroundSensor, collisionTypeWall)
	groundHandler.UserData = w
	groundHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if world, ok := userData.(*World); ok {
			world.queue(ground.Started, arb)
		}
		return true
	}
	groundHandler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		if world, ok := userData.(*World); ok {
			world.queue(ground.Stopped, arb)
		}
	}
}

func (w *World) queue(kind ground.ContactKind, arb *cp.Arbiter) {
	a, b := arb.Shapes()
	ha, okA := w.handles[a]
	hb, okB := w.handles[b]
	if !okA || !okB {
		return
	}
	w.push(kind, ha, hb)
}

func (w *World) push(kind ground.ContactKind, a, b Handle) {
	key := [2]Handle{a, b}
	switch kind {
	case ground.Started:
		w.active[key] = true
	case ground.Stopped:
		if !w.active[key] {
			return
		}
		delete(w.active, key)
	}
	w.contacts = append(w.contacts, Contact{Kind: kind, A: a, B: b})
}

// endContacts queues end events for every live contact involving h.
func (w *World) endContacts(h Handle) {
	for key := range w.active {
		if key[0] == h || key[1] == h {
			w.push(ground.Stopped, key[0], key[1])
		}
	}
}

func (w *World) handle() Handle {
	w.next++
	return w.next
}

// Attach adds one static box per collider in the bucket.
func (w *World) Attach(b *collider.Bucket) {
	w.Detach(b.Level)

	shapes := make([]*cp.Shape, 0, len(b.Colliders))
	for _, c := range b.Colliders {
		minX, minY := c.World.Min()
		maxX, maxY := c.World.Max()
		shape := cp.NewBox2(w.space.StaticBody, cp.BB{L: minX, B: minY, R: maxX, T: maxY}, 0)
		shape.SetFriction(c.Friction)
		shape.SetCollisionType(collisionTypeWall)
		w.space.AddShape(shape)

		h := w.handle()
		w.handles[shape] = h
		w.isWall[h] = true
		shapes = append(shapes, shape)
	}
	w.walls[b.Level] = shapes
}

// Detach removes every static box owned by level. Sensors touching them get
// their end events queued.
func (w *World) Detach(level leveldata.LevelID) {
	shapes, ok := w.walls[level]
	if !ok {
		return
	}
	for _, shape := range shapes {
		w.space.RemoveShape(shape)
	}
	// Separate callbacks may run during removal, so handles are dropped after.
	for _, shape := range shapes {
		h := w.handles[shape]
		w.endContacts(h)
		delete(w.isWall, h)
		w.retired[h] = true
		delete(w.handles, shape)
	}
	delete(w.walls, level)
}

// IsWall reports whether h is a static wall box. Detached boxes still count
// until the next DrainContacts so their end events can be matched.
func (w *World) IsWall(h Handle) bool {
	return w.isWall[h] || w.retired[h]
}

// WallCount returns the number of static wall boxes.
func (w *World) WallCount() int {
	return len(w.isWall)
}

// AddBody creates a dynamic, rotation-locked box.
func (w *World) AddBody(spec BodySpec) *Body {
	mass := spec.Mass
	if mass <= 0 {
		mass = 1
	}
	width, height := spec.HalfWidth*2, spec.HalfHeight*2

	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: spec.X, Y: spec.Y})
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(spec.Friction)
	shape.SetCollisionType(collisionTypeBody)

	w.space.AddBody(body)
	w.space.AddShape(shape)

	b := &Body{
		Handle:     w.handle(),
		HalfWidth:  spec.HalfWidth,
		HalfHeight: spec.HalfHeight,
		body:       body,
		shapes:     []*cp.Shape{shape},
	}
	w.handles[shape] = b.Handle
	w.bodies[b.Handle] = b
	return b
}

// AddGroundSensor attaches a sensor box below the body's feet. The sensor is
// half as wide as the body and 2*halfHeight tall, centered on the bottom edge.
func (w *World) AddGroundSensor(owner Handle, halfHeight float64) (Handle, error) {
	b, ok := w.bodies[owner]
	if !ok {
		return 0, fmt.Errorf("ground sensor: unknown body %d", owner)
	}
	if b.HalfWidth <= 0 || b.HalfHeight <= 0 {
		return 0, fmt.Errorf("ground sensor: body %d has no box", owner)
	}

	halfW := b.HalfWidth / 2
	bb := cp.BB{
		L: -halfW,
		B: b.HalfHeight - halfHeight,
		R: halfW,
		T: b.HalfHeight + halfHeight,
	}
	shape := cp.NewBox2(b.body, bb, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeGroundSensor)
	w.space.AddShape(shape)

	h := w.handle()
	w.handles[shape] = h
	w.sensors[h] = shape
	b.shapes = append(b.shapes, shape)
	return h, nil
}

// IsSensor reports whether h is a ground sensor.
func (w *World) IsSensor(h Handle) bool {
	_, ok := w.sensors[h]
	return ok
}

// Body returns the body for h.
func (w *World) Body(h Handle) (*Body, bool) {
	b, ok := w.bodies[h]
	return b, ok
}

// RemoveBody removes a body together with its sensors.
func (w *World) RemoveBody(h Handle) {
	b, ok := w.bodies[h]
	if !ok {
		return
	}
	for _, shape := range b.shapes {
		w.space.RemoveShape(shape)
	}
	w.space.RemoveBody(b.body)
	for _, shape := range b.shapes {
		sh := w.handles[shape]
		w.endContacts(sh)
		delete(w.sensors, sh)
		delete(w.handles, shape)
	}
	delete(w.bodies, h)
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// DrainContacts returns and clears the queued ground contact events.
func (w *World) DrainContacts() []Contact {
	out := w.contacts
	w.contacts = nil
	clear(w.retired)
	return out
}

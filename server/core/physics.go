package core

import (
	"math"

	"github.com/automoto/platformer/shared/gamemath"
	"github.com/automoto/platformer/shared/ground"
	"github.com/solarlune/resolv"
)

// Contact is a ground contact between a probe sensor and a wall object.
type Contact = ground.ContactEvent[*resolv.Object]

// maxStep keeps a single sub-step from tunnelling through a one-cell floor.
const maxStep = 16.0

// stepParams are the movement values shared by every probe.
type stepParams struct {
	gravity     float64
	walkSpeed   float64
	jumpSpeed   float64
	idleDamping float64
	idleSnap    float64
}

// stepProbe advances one probe by dt seconds. onGround is the tracker's view
// from the previous tick.
func stepProbe(p *Probe, dt float64, onGround bool, prm stepParams) {
	// --- Horizontal input ---
	if p.Direction != 0 {
		p.SpeedX = float64(p.Direction) * prm.walkSpeed
	} else {
		p.SpeedX = gamemath.DampIdle(p.SpeedX, prm.idleDamping, dt, prm.idleSnap)
	}

	// --- Jump (edge-triggered) ---
	if p.JumpPressed && !p.JumpWasPressed && onGround {
		p.SpeedY = -prm.jumpSpeed
	}
	p.JumpWasPressed = p.JumpPressed

	// --- Gravity ---
	p.SpeedY += prm.gravity * dt

	// --- Resolve horizontal collision ---
	dx := gamemath.ClampSpeed(p.SpeedX*dt, maxStep)
	if dx != 0 {
		if wall := firstSolid(p.Object, dx, 0); wall != nil {
			check := p.Object.Check(dx, 0, tagSolid)
			dx = check.ContactWithObject(wall).X()
			p.SpeedX = 0
		}
		p.Object.X += dx
	}

	// --- Resolve vertical collision ---
	dy := gamemath.ClampSpeed(p.SpeedY*dt, maxStep)
	checkDist := dy
	if dy >= 0 {
		checkDist++
	}
	if wall := firstSolid(p.Object, 0, checkDist); wall != nil {
		check := p.Object.Check(0, checkDist, tagSolid)
		p.Object.Y += check.ContactWithObject(wall).Y()
		p.SpeedY = 0
	} else {
		p.Object.Y += dy
	}
	p.Object.Update()

	p.Sensor.X = p.Object.X + p.Object.W/4
	p.Sensor.Y = p.Object.Y + p.Object.H - p.sensorHalf
	p.Sensor.Update()
}

// firstSolid returns the first wall the object would overlap after moving by
// (dx, dy). resolv reports everything sharing a cell, so candidates are
// filtered by their bounds.
func firstSolid(obj *resolv.Object, dx, dy float64) *resolv.Object {
	check := obj.Check(dx, dy, tagSolid)
	if check == nil {
		return nil
	}
	var best *resolv.Object
	bestDist := math.Inf(1)
	for _, wall := range check.ObjectsByTags(tagSolid) {
		if !overlaps(obj.X+dx, obj.Y+dy, obj.W, obj.H, wall) {
			continue
		}
		// Nearest along the motion wins so contact resolution stops early.
		d := math.Abs(wall.X-obj.X)*math.Abs(dx) + math.Abs(wall.Y-obj.Y)*math.Abs(dy)
		if d < bestDist {
			best, bestDist = wall, d
		}
	}
	return best
}

func overlaps(x, y, w, h float64, o *resolv.Object) bool {
	return x < o.X+o.W && o.X < x+w && y < o.Y+o.H && o.Y < y+h
}

// senseGround diffs the walls under the probe's sensor against the previous
// tick and returns the begin/end events.
func senseGround(p *Probe) []Contact {
	now := make(map[*resolv.Object]bool)
	if check := p.Sensor.Check(0, 0, tagSolid); check != nil {
		for _, wall := range check.ObjectsByTags(tagSolid) {
			if overlaps(p.Sensor.X, p.Sensor.Y, p.Sensor.W, p.Sensor.H, wall) {
				now[wall] = true
			}
		}
	}

	var events []Contact
	for wall := range p.touching {
		if !now[wall] {
			events = append(events, Contact{Kind: ground.Stopped, A: p.Sensor, B: wall})
		}
	}
	for wall := range now {
		if !p.touching[wall] {
			events = append(events, Contact{Kind: ground.Started, A: p.Sensor, B: wall})
		}
	}
	p.touching = now
	return events
}

// forgetWalls ends every contact the probe holds, used when its level's walls
// are replaced.
func forgetWalls(p *Probe) []Contact {
	var events []Contact
	for wall := range p.touching {
		events = append(events, Contact{Kind: ground.Stopped, A: p.Sensor, B: wall})
	}
	p.touching = make(map[*resolv.Object]bool)
	return events
}

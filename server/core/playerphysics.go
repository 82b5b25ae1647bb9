package core

import (
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/solarlune/resolv"
)

// Probe is a headless character body dropped at a spawn point. It is not a
// donburi entity; it exists only on the server.
type Probe struct {
	ID     int
	Level  leveldata.LevelID
	Object *resolv.Object
	// Sensor sits under the feet and is what ground contacts are measured with.
	Sensor *resolv.Object

	SpeedX, SpeedY float64
	// Direction is -1, 0 or 1; JumpPressed is edge-triggered against the
	// previous tick.
	Direction      int
	JumpPressed    bool
	JumpWasPressed bool

	sensorHalf float64
	touching   map[*resolv.Object]bool
}

func newProbe(level *ServerLevel, id int, x, y, w, h, sensorHalf float64) *Probe {
	obj := resolv.NewObject(x, y, w, h, tagProbe)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	level.Space.Add(obj)

	sw, sh := w/2, sensorHalf*2
	sensor := resolv.NewObject(x+w/4, y+h-sensorHalf, sw, sh, tagSensor)
	sensor.SetShape(resolv.NewRectangle(0, 0, sw, sh))
	level.Space.Add(sensor)

	return &Probe{
		ID:         id,
		Level:      level.Level.ID,
		Object:     obj,
		Sensor:     sensor,
		sensorHalf: sensorHalf,
		touching:   make(map[*resolv.Object]bool),
	}
}

func removeProbe(level *ServerLevel, p *Probe) {
	level.Space.Remove(p.Object)
	level.Space.Remove(p.Sensor)
}

// WorldPosition returns the probe's top-left corner in world space.
func (p *Probe) WorldPosition(level *leveldata.Level) (x, y float64) {
	return p.Object.X + level.OriginX, p.Object.Y + level.OriginY
}

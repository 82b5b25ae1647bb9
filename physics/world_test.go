package physics

import (
	"math"
	"testing"

	"github.com/automoto/platformer/shared/collider"
	"github.com/automoto/platformer/shared/ground"
	"github.com/automoto/platformer/shared/leveldata"
)

// floorLevel is a 10x4 level whose bottom row is solid.
func floorLevel() *leveldata.Level {
	l := &leveldata.Level{
		ID:         "floor",
		Name:       "floor",
		GridWidth:  10,
		GridHeight: 4,
		CellSize:   32,
		Walls:      make(leveldata.Cells),
	}
	for x := 0; x < 10; x++ {
		l.Walls.Add(leveldata.GridCoords{X: x, Y: 3})
	}
	return l
}

func TestWorldMirrorsArena(t *testing.T) {
	world := NewWorld(2000, 10)
	arena := collider.NewArena(world)

	if _, _, err := arena.Build(floorLevel()); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if world.WallCount() != 1 {
		t.Fatalf("expected one merged floor box, got %d", world.WallCount())
	}

	arena.Unload("floor")
	if world.WallCount() != 0 {
		t.Errorf("expected walls removed on unload, got %d", world.WallCount())
	}
}

func TestBodyLandsAndIsGrounded(t *testing.T) {
	world := NewWorld(2000, 10)
	arena := collider.NewArena(world)
	if _, _, err := arena.Build(floorLevel()); err != nil {
		t.Fatalf("Build: %v", err)
	}

	body := world.AddBody(BodySpec{X: 160, Y: 16, HalfWidth: 16, HalfHeight: 16, Mass: 1})
	sensor, err := world.AddGroundSensor(body.Handle, 2)
	if err != nil {
		t.Fatalf("AddGroundSensor: %v", err)
	}
	if !world.IsSensor(sensor) {
		t.Fatal("sensor handle not registered")
	}

	tracker := ground.NewTracker[Handle]()
	tracker.AddSensor(sensor, body.Handle)

	for i := 0; i < 120; i++ {
		world.Step(1.0 / 60)
		tracker.Apply(world.DrainContacts(), world.IsWall)
	}

	// Floor top is at y=96, so the body center rests near 80.
	_, y := body.Position()
	if math.Abs(y-80) > 2 {
		t.Errorf("expected body to rest on the floor near y=80, got %v", y)
	}
	if !tracker.OnGround(body.Handle) {
		t.Fatal("expected body on ground after landing")
	}

	arena.Unload("floor")
	tracker.Apply(world.DrainContacts(), world.IsWall)
	if tracker.OnGround(body.Handle) {
		t.Error("expected contact to end when the floor is unloaded")
	}
}

func TestAddGroundSensorUnknownBody(t *testing.T) {
	world := NewWorld(2000, 10)
	if _, err := world.AddGroundSensor(99, 2); err == nil {
		t.Error("expected error for unknown body")
	}
}

func TestRemoveBody(t *testing.T) {
	world := NewWorld(2000, 10)
	body := world.AddBody(BodySpec{X: 0, Y: 0, HalfWidth: 8, HalfHeight: 8})
	sensor, err := world.AddGroundSensor(body.Handle, 2)
	if err != nil {
		t.Fatalf("AddGroundSensor: %v", err)
	}

	world.RemoveBody(body.Handle)
	if _, ok := world.Body(body.Handle); ok {
		t.Error("body still present")
	}
	if world.IsSensor(sensor) {
		t.Error("sensor still present")
	}
	world.RemoveBody(body.Handle)
}

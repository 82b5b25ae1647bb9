package collider

import (
	"testing"

	"github.com/automoto/platformer/shared/leveldata"
	"github.com/automoto/platformer/shared/wallmesh"
)

type recordingBackend struct {
	attached map[leveldata.LevelID]int
	detached []leveldata.LevelID
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{attached: make(map[leveldata.LevelID]int)}
}

func (r *recordingBackend) Attach(b *Bucket) {
	r.attached[b.Level] = len(b.Colliders)
}

func (r *recordingBackend) Detach(level leveldata.LevelID) {
	delete(r.attached, level)
	r.detached = append(r.detached, level)
}

func testLevel(id leveldata.LevelID, originX, originY float64, rows ...string) *leveldata.Level {
	l := &leveldata.Level{
		ID:         id,
		Name:       string(id),
		GridHeight: len(rows),
		CellSize:   32,
		OriginX:    originX,
		OriginY:    originY,
		Walls:      make(leveldata.Cells),
	}
	for y, row := range rows {
		if len(row) > l.GridWidth {
			l.GridWidth = len(row)
		}
		for x, c := range row {
			if c == '#' {
				l.Walls.Add(leveldata.GridCoords{X: x, Y: y})
			}
		}
	}
	return l
}

func TestFromRect(t *testing.T) {
	testCases := []struct {
		rect wallmesh.Rect
		want Box
	}{
		{wallmesh.Rect{Left: 0, Right: 0, Bottom: 0, Top: 0}, Box{CenterX: 16, CenterY: 16, HalfWidth: 16, HalfHeight: 16}},
		{wallmesh.Rect{Left: 0, Right: 4, Bottom: 0, Top: 1}, Box{CenterX: 80, CenterY: 32, HalfWidth: 80, HalfHeight: 32}},
		{wallmesh.Rect{Left: 2, Right: 2, Bottom: 2, Top: 2}, Box{CenterX: 80, CenterY: 80, HalfWidth: 16, HalfHeight: 16}},
	}

	for _, tc := range testCases {
		if got := FromRect(tc.rect, 32); got != tc.want {
			t.Errorf("FromRect(%+v): expected %+v, got %+v", tc.rect, tc.want, got)
		}
	}
}

func TestBoxCorners(t *testing.T) {
	b := Box{CenterX: 10, CenterY: 20, HalfWidth: 5, HalfHeight: 2}
	if x, y := b.Min(); x != 5 || y != 18 {
		t.Errorf("unexpected min (%v, %v)", x, y)
	}
	if x, y := b.Max(); x != 15 || y != 22 {
		t.Errorf("unexpected max (%v, %v)", x, y)
	}
	if w, h := b.Size(); w != 10 || h != 4 {
		t.Errorf("unexpected size %vx%v", w, h)
	}
	if !b.Overlaps(Box{CenterX: 14, CenterY: 20, HalfWidth: 2, HalfHeight: 2}) {
		t.Error("expected overlap")
	}
	if b.Overlaps(Box{CenterX: 17, CenterY: 20, HalfWidth: 2, HalfHeight: 2}) {
		t.Error("boxes sharing an edge must not overlap")
	}
}

func TestArenaBuildAndUnload(t *testing.T) {
	backend := newRecordingBackend()
	arena := NewArena(backend)

	level := testLevel("a", 100, 50, "#####", "#####", "..#..")
	bucket, stats, err := arena.Build(level)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if stats.Rects != 2 || len(bucket.Colliders) != 2 {
		t.Fatalf("expected 2 colliders, got %d", len(bucket.Colliders))
	}
	if backend.attached["a"] != 2 {
		t.Errorf("backend did not receive the bucket")
	}

	for _, c := range bucket.Colliders {
		if c.World.CenterX != c.Local.CenterX+100 || c.World.CenterY != c.Local.CenterY+50 {
			t.Errorf("world box not placed relative to level origin: %+v", c)
		}
		if c.Friction != WallFriction {
			t.Errorf("expected wall friction %v, got %v", WallFriction, c.Friction)
		}
	}
	if len(bucket.Overlays) != 0 {
		t.Errorf("overlays must stay empty with debug off")
	}

	other := testLevel("b", 0, 0, "#")
	if _, _, err := arena.Build(other); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if arena.Count() != 3 {
		t.Errorf("expected 3 colliders total, got %d", arena.Count())
	}

	if !arena.Unload("a") {
		t.Fatal("expected level a to unload")
	}
	if _, ok := arena.Bucket("a"); ok {
		t.Error("bucket a still present after unload")
	}
	if _, ok := backend.attached["a"]; ok {
		t.Error("backend still holds level a")
	}
	if arena.Unload("a") {
		t.Error("second unload should report nothing removed")
	}
	if got := arena.Levels(); len(got) != 1 || got[0] != "b" {
		t.Errorf("expected only level b left, got %v", got)
	}
}

func TestArenaReemitReplacesBucket(t *testing.T) {
	backend := newRecordingBackend()
	arena := NewArena(backend)
	arena.ShowDebug = true

	level := testLevel("a", 0, 0, "##", "##")
	if _, _, err := arena.Build(level); err != nil {
		t.Fatalf("Build: %v", err)
	}
	level.Walls.Add(leveldata.GridCoords{X: 2, Y: 0})
	level.GridWidth = 3
	bucket, _, err := arena.Build(level)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(backend.detached) != 1 || backend.detached[0] != "a" {
		t.Errorf("expected old bucket detached once, got %v", backend.detached)
	}
	if len(bucket.Overlays) != len(bucket.Colliders) {
		t.Errorf("expected one overlay per collider, got %d/%d", len(bucket.Overlays), len(bucket.Colliders))
	}
	if arena.Count() != len(bucket.Colliders) {
		t.Errorf("stale colliders kept after re-emit")
	}
}

func TestArenaAddBackendReplays(t *testing.T) {
	arena := NewArena()
	if _, _, err := arena.Build(testLevel("a", 0, 0, "#")); err != nil {
		t.Fatalf("Build: %v", err)
	}

	late := newRecordingBackend()
	arena.AddBackend(late)
	if late.attached["a"] != 1 {
		t.Error("late backend missed existing bucket")
	}
}

func TestArenaBuildRejectsEmptyLevel(t *testing.T) {
	arena := NewArena()
	_, _, err := arena.Build(testLevel("void", 0, 0))
	if err == nil {
		t.Fatal("expected error for a level without rows")
	}
}

func TestArenaSetShowDebug(t *testing.T) {
	arena := NewArena()
	level := testLevel("a", 100, 0,
		"##.##",
		"#####",
	)
	b, _, err := arena.Build(level)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(b.Overlays) != 0 {
		t.Fatalf("overlays without debug = %d, want 0", len(b.Overlays))
	}

	arena.SetShowDebug(true)
	if len(b.Overlays) != len(b.Colliders) {
		t.Fatalf("overlays = %d, want %d", len(b.Overlays), len(b.Colliders))
	}
	for i, o := range b.Overlays {
		if o != b.Colliders[i].World {
			t.Errorf("overlay %d = %+v, want %+v", i, o, b.Colliders[i].World)
		}
	}

	arena.SetShowDebug(false)
	if len(b.Overlays) != 0 {
		t.Errorf("overlays after disabling = %d, want 0", len(b.Overlays))
	}
}

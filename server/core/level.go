package core

import (
	"log"

	"github.com/automoto/platformer/shared/collider"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/solarlune/resolv"
)

const (
	tagSolid  = "solid"
	tagProbe  = "probe"
	tagSensor = "sensor"
)

// ServerLevel holds the server's collision space for one level. Coordinates
// inside the space are level-local.
type ServerLevel struct {
	Level *leveldata.Level
	Space *resolv.Space
	Walls []*resolv.Object
}

// NewServerLevel creates an empty resolv.Space covering the level.
func NewServerLevel(level *leveldata.Level) *ServerLevel {
	cell := int(level.CellSize)
	if cell <= 0 {
		cell = 16
	}
	space := resolv.NewSpace(int(level.PixelWidth()), int(level.PixelHeight()), cell, cell)
	return &ServerLevel{Level: level, Space: space}
}

// SpaceBackend mirrors arena buckets into per-level resolv spaces: one solid
// object per meshed wall box instead of one per tile.
type SpaceBackend struct {
	levels map[leveldata.LevelID]*ServerLevel
	walls  map[*resolv.Object]struct{}
}

func NewSpaceBackend() *SpaceBackend {
	return &SpaceBackend{
		levels: make(map[leveldata.LevelID]*ServerLevel),
		walls:  make(map[*resolv.Object]struct{}),
	}
}

// IsWall reports whether obj is a wall object of any loaded level.
func (b *SpaceBackend) IsWall(obj *resolv.Object) bool {
	_, ok := b.walls[obj]
	return ok
}

// AddLevel registers a level's space. It must run before the level's
// colliders are emitted.
func (b *SpaceBackend) AddLevel(level *leveldata.Level) *ServerLevel {
	sl := NewServerLevel(level)
	b.levels[level.ID] = sl
	return sl
}

// RemoveLevel forgets a level's space.
func (b *SpaceBackend) RemoveLevel(id leveldata.LevelID) {
	b.Detach(id)
	delete(b.levels, id)
}

// Level returns the space for id.
func (b *SpaceBackend) Level(id leveldata.LevelID) (*ServerLevel, bool) {
	sl, ok := b.levels[id]
	return sl, ok
}

// Attach adds one solid object per collider.
func (b *SpaceBackend) Attach(bucket *collider.Bucket) {
	sl, ok := b.levels[bucket.Level]
	if !ok {
		log.Printf("No space for level %q, dropping %d colliders", bucket.Level, len(bucket.Colliders))
		return
	}
	b.Detach(bucket.Level)

	for _, c := range bucket.Colliders {
		x, y := c.Local.Min()
		w, h := c.Local.Size()
		obj := resolv.NewObject(x, y, w, h, tagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		sl.Space.Add(obj)
		sl.Walls = append(sl.Walls, obj)
		b.walls[obj] = struct{}{}
	}

	log.Printf("Loaded level %q: %d solid objects from %d wall cells, %dx%d map",
		sl.Level.Name, len(sl.Walls), sl.Level.Walls.Len(), int(sl.Level.PixelWidth()), int(sl.Level.PixelHeight()))
}

// Detach removes the level's solid objects.
func (b *SpaceBackend) Detach(id leveldata.LevelID) {
	sl, ok := b.levels[id]
	if !ok {
		return
	}
	for _, obj := range sl.Walls {
		sl.Space.Remove(obj)
		delete(b.walls, obj)
	}
	sl.Walls = nil
}

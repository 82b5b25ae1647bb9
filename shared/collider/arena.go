package collider

import (
	"sort"

	"github.com/automoto/platformer/shared/leveldata"
	"github.com/automoto/platformer/shared/wallmesh"
)

// WallFriction is applied to every static wall collider.
const WallFriction = 1.0

// Collider is one static, immovable wall box.
type Collider struct {
	Rect wallmesh.Rect
	// Local is relative to the owning level's anchor; World adds the anchor.
	Local    Box
	World    Box
	Friction float64
}

// Bucket holds every collider owned by one level.
type Bucket struct {
	Level            leveldata.LevelID
	OriginX, OriginY float64
	Colliders        []Collider
	// Overlays mirrors Colliders in world space when debug drawing is on.
	Overlays []Box
}

// Backend is a physics engine that mirrors the arena's static colliders.
type Backend interface {
	Attach(b *Bucket)
	Detach(level leveldata.LevelID)
}

// Arena stores colliders keyed by owning level. Unloading a level drops its
// whole bucket, which is the only cleanup colliders ever need.
type Arena struct {
	// ShowDebug makes Emit fill Bucket.Overlays.
	ShowDebug bool

	buckets  map[leveldata.LevelID]*Bucket
	backends []Backend
}

// NewArena creates an empty arena forwarding to the given backends.
func NewArena(backends ...Backend) *Arena {
	return &Arena{
		buckets:  make(map[leveldata.LevelID]*Bucket),
		backends: append([]Backend(nil), backends...),
	}
}

// AddBackend attaches another backend and replays existing buckets into it.
func (a *Arena) AddBackend(b Backend) {
	if b == nil {
		return
	}
	a.backends = append(a.backends, b)
	for _, id := range a.Levels() {
		b.Attach(a.buckets[id])
	}
}

// SetShowDebug toggles debug overlays, filling or clearing them on every
// existing bucket. Backends are not touched.
func (a *Arena) SetShowDebug(on bool) {
	a.ShowDebug = on
	for _, b := range a.buckets {
		b.Overlays = nil
		if !on {
			continue
		}
		for _, c := range b.Colliders {
			b.Overlays = append(b.Overlays, c.World)
		}
	}
}

// Build meshes a level's walls and emits the resulting colliders.
func (a *Arena) Build(level *leveldata.Level) (*Bucket, wallmesh.Stats, error) {
	rects, stats, err := wallmesh.MeshWithStats(level.Name, level)
	if err != nil {
		return nil, stats, err
	}
	return a.Emit(level, rects), stats, nil
}

// Emit converts rects into colliders owned by level, replacing any colliders
// the level had before.
func (a *Arena) Emit(level *leveldata.Level, rects []wallmesh.Rect) *Bucket {
	a.Unload(level.ID)

	b := &Bucket{
		Level:     level.ID,
		OriginX:   level.OriginX,
		OriginY:   level.OriginY,
		Colliders: make([]Collider, 0, len(rects)),
	}
	for _, r := range rects {
		local := FromRect(r, level.CellSize)
		c := Collider{
			Rect:     r,
			Local:    local,
			World:    local.Translate(level.OriginX, level.OriginY),
			Friction: WallFriction,
		}
		b.Colliders = append(b.Colliders, c)
		if a.ShowDebug {
			b.Overlays = append(b.Overlays, c.World)
		}
	}

	a.buckets[level.ID] = b
	for _, backend := range a.backends {
		backend.Attach(b)
	}
	return b
}

// Unload removes every collider owned by level. It reports whether the level
// had any.
func (a *Arena) Unload(level leveldata.LevelID) bool {
	if _, ok := a.buckets[level]; !ok {
		return false
	}
	delete(a.buckets, level)
	for _, backend := range a.backends {
		backend.Detach(level)
	}
	return true
}

// Bucket returns the colliders owned by level.
func (a *Arena) Bucket(level leveldata.LevelID) (*Bucket, bool) {
	b, ok := a.buckets[level]
	return b, ok
}

// Levels returns the ids of all levels with colliders, sorted.
func (a *Arena) Levels() []leveldata.LevelID {
	ids := make([]leveldata.LevelID, 0, len(a.buckets))
	for id := range a.buckets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Count returns the number of colliders across all levels.
func (a *Arena) Count() int {
	n := 0
	for _, b := range a.buckets {
		n += len(b.Colliders)
	}
	return n
}

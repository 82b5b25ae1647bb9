package systems

import (
	"log"

	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/automoto/platformer/systems/factory"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var pendingWalls = donburi.NewQuery(filter.Contains(tags.PendingWall, components.WallCell))

// UpdateWallColliders meshes every level that received new wall cells since
// the last frame. The level's whole cell set is re-meshed so cells observed
// over several frames still merge into one collider set.
func UpdateWallColliders(w donburi.World) {
	var pending []*donburi.Entry
	pendingWalls.Each(w, func(e *donburi.Entry) {
		pending = append(pending, e)
	})
	if len(pending) == 0 {
		return
	}

	dirty := make(map[leveldata.LevelID]bool)
	for _, e := range pending {
		dirty[components.WallCell.Get(e).Level] = true
		e.RemoveComponent(tags.PendingWall)
	}

	var observed []leveldata.WallCell
	components.WallCell.Each(w, func(e *donburi.Entry) {
		cell := components.WallCell.Get(e)
		if dirty[cell.Level] {
			observed = append(observed, leveldata.WallCell{Coords: cell.Coords, Level: cell.Level})
		}
	})
	walls := leveldata.IndexWalls(observed)

	res, ok := components.Colliders.First(w)
	if !ok {
		log.Printf("No collider world, dropping %d wall cells", len(pending))
		return
	}
	colliders := components.Colliders.Get(res)

	for _, id := range walls.Levels() {
		levelEntry, ok := factory.FindLevel(w, id)
		if !ok {
			log.Printf("Wall cells for unknown level %q", id)
			continue
		}
		level := components.Level.Get(levelEntry).Level
		cells, _ := walls.Level(id)

		grid := *level
		grid.Walls = cells

		bucket, stats, err := colliders.Arena.Build(&grid)
		if err != nil {
			log.Printf("Failed to mesh level %q: %v", level.Name, err)
			continue
		}
		removeWallEntities(w, id)
		for _, c := range bucket.Colliders {
			factory.CreateWall(w, id, c.World)
		}
		log.Printf("Meshed level %q: %d wall cells -> %d colliders", level.Name, stats.Cells, stats.Rects)
	}
}

func removeWallEntities(w donburi.World, id leveldata.LevelID) {
	var stale []donburi.Entity
	tags.Wall.Each(w, func(e *donburi.Entry) {
		if components.WallCollider.Get(e).Level == id {
			stale = append(stale, e.Entity())
		}
	})
	for _, e := range stale {
		w.Remove(e)
	}
}

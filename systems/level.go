package systems

import (
	"log"

	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/shared/camerafit"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/automoto/platformer/systems/factory"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
)

// UnloadLevel removes a level entity together with its wall cells, its wall
// colliders and its arena bucket.
func UnloadLevel(w donburi.World, id leveldata.LevelID) bool {
	levelEntry, ok := factory.FindLevel(w, id)
	if !ok {
		return false
	}

	var stale []donburi.Entity
	components.WallCell.Each(w, func(e *donburi.Entry) {
		if components.WallCell.Get(e).Level == id {
			stale = append(stale, e.Entity())
		}
	})
	for _, e := range stale {
		w.Remove(e)
	}
	removeWallEntities(w, id)

	if res, ok := components.Colliders.First(w); ok {
		components.Colliders.Get(res).Arena.Unload(id)
	}
	w.Remove(levelEntry.Entity())
	log.Printf("Unloaded level %q", id)
	return true
}

// UpdateLevelSelection selects the level whose bounds strictly contain the
// player. The selection is kept when the player is between levels.
func UpdateLevelSelection(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	res, ok := components.Colliders.First(w)
	if !ok {
		return
	}
	selection := components.LevelSelection.Get(res)
	pos := components.Transform.Get(playerEntry).Position

	var next *leveldata.Level
	components.Level.Each(w, func(e *donburi.Entry) {
		level := components.Level.Get(e).Level
		if next == nil && levelBounds(level).Contains(pos.X, pos.Y) {
			next = level
		}
	})
	if next == nil || next.ID == selection.Current {
		return
	}
	log.Printf("Entered level %q (%s)", next.Name, next.ID)
	selection.Current = next.ID
}

// SelectedLevel returns the currently selected level, falling back to the
// first loaded level when nothing is selected yet.
func SelectedLevel(w donburi.World) (*leveldata.Level, bool) {
	var current leveldata.LevelID
	if res, ok := components.Colliders.First(w); ok {
		current = components.LevelSelection.Get(res).Current
	}
	if current != "" {
		if e, ok := factory.FindLevel(w, current); ok {
			return components.Level.Get(e).Level, true
		}
	}
	e, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	return components.Level.Get(e).Level, true
}

func levelBounds(l *leveldata.Level) camerafit.Level {
	return camerafit.Level{
		Width:   l.PixelWidth(),
		Height:  l.PixelHeight(),
		OriginX: l.OriginX,
		OriginY: l.OriginY,
	}
}

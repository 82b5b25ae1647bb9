package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/shared/camerafit"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera fits the viewport to the selected level around the player.
// Frames without a player are skipped, which is normal during startup.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	level, ok := SelectedLevel(w)
	if !ok {
		return
	}

	pos := components.Transform.Get(playerEntry).Position
	camera.Frame = camerafit.Fit(levelBounds(level), pos.X, pos.Y)
	camera.Valid = true
}

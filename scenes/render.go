package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/shared/camerafit"
	"github.com/automoto/platformer/shared/collider"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	wallColor    = color.RGBA{R: 70, G: 66, B: 94, A: 255}
	playerColor  = color.RGBA{R: 230, G: 180, B: 80, A: 255}
	overlayColor = cfg.Green
)

// view maps world coordinates onto the screen for one camera frame.
type view struct {
	frame camerafit.Frame
	scale float64
}

func cameraView(w donburi.World, screen *ebiten.Image) (view, bool) {
	e, ok := components.Camera.First(w)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(e)
	if !camera.Valid {
		return view{}, false
	}
	return view{
		frame: camera.Frame,
		scale: camera.Frame.Scale(float64(screen.Bounds().Dx())),
	}, true
}

func (v view) rect(b collider.Box) (x, y, w, h float32) {
	minX, minY := b.Min()
	bw, bh := b.Size()
	return float32((minX - v.frame.X) * v.scale),
		float32((minY - v.frame.Y) * v.scale),
		float32(bw * v.scale),
		float32(bh * v.scale)
}

// DrawLevel fills every wall collider.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(e.World, screen)
	if !ok {
		return
	}
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		x, y, w, h := v.rect(components.WallCollider.Get(entry).Box)
		vector.DrawFilledRect(screen, x, y, w, h, wallColor, false)
	})
}

// DrawPlayers draws each player as its collision box.
func DrawPlayers(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(e.World, screen)
	if !ok {
		return
	}
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transform.Get(entry)
		box := collider.Box{
			CenterX:    t.Position.X,
			CenterY:    t.Position.Y,
			HalfWidth:  t.HalfWidth,
			HalfHeight: t.HalfHeight,
		}
		x, y, w, h := v.rect(box)
		vector.DrawFilledRect(screen, x, y, w, h, playerColor, false)
	})
}

// DrawDebug outlines the arena's debug overlays and prints collider stats.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}
	res, ok := components.Colliders.First(e.World)
	if !ok {
		return
	}
	colliders := components.Colliders.Get(res)

	if v, ok := cameraView(e.World, screen); ok {
		for _, id := range colliders.Arena.Levels() {
			b, _ := colliders.Arena.Bucket(id)
			for _, o := range b.Overlays {
				x, y, w, h := v.rect(o)
				vector.StrokeRect(screen, x, y, w, h, 1, overlayColor, false)
			}
		}
	}

	onGround := false
	if p, ok := tags.Player.First(e.World); ok {
		onGround = components.GroundDetection.Get(p).OnGround
	}
	lines := []string{
		fmt.Sprintf("levels: %d  colliders: %d", len(colliders.Arena.Levels()), colliders.Arena.Count()),
		fmt.Sprintf("on ground: %v", onGround),
		fmt.Sprintf("fps: %.0f", ebiten.ActualFPS()),
	}
	if fonts.Loaded(fonts.Small) {
		for i, line := range lines {
			text.Draw(screen, line, fonts.Small.Get(), 8, 16+i*14, cfg.Yellow)
		}
	}
}

func drawLoading(screen *ebiten.Image, tracker *assets.LoadTracker) {
	if !fonts.Loaded(fonts.Regular) {
		return
	}
	msg := fmt.Sprintf("Loading... %s", tracker.State())
	if failed := tracker.Failures(); len(failed) > 0 {
		msg += "\nFailed: " + strings.Join(failed, ", ")
	}
	text.Draw(screen, msg, fonts.Regular.Get(), 16, 32, cfg.White)
}

func drawPaused(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), cfg.BlackOverlay, false)
	if fonts.Loaded(fonts.Regular) {
		text.Draw(screen, "Paused", fonts.Regular.Get(), b.Dx()/2-24, b.Dy()/2, cfg.White)
	}
}

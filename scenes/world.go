package scenes

import (
	"image/color"
	"log"
	"path"
	"path/filepath"
	"sync"

	"github.com/automoto/platformer/assets"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/automoto/platformer/systems"
	factory2 "github.com/automoto/platformer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

const layerDefault ecs.LayerID = 0

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	loader       *assets.LevelLoader
	state        cfg.StateID
	reloads      <-chan string
	once         sync.Once
}

// NewPlatformerScene creates a scene that plays the bundled levels.
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{
		sceneChanger: sc,
		loader:       assets.NewLevelLoader(assets.EmbeddedLevels(), "levels", nil),
	}
}

// NewPlatformerSceneFromLoader creates a scene reading levels through loader.
// Paths sent on reloads are reloaded and re-meshed while running.
func NewPlatformerSceneFromLoader(sc SceneChanger, loader *assets.LevelLoader, reloads <-chan string) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, loader: loader, reloads: reloads}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	switch ps.state {
	case cfg.StateLoading:
		if ps.loader.Tracker().Ready() {
			ps.spawnPlayer()
			ps.setState(cfg.StateRunning)
		}
	case cfg.StateRunning:
		if justPressed(ActionPause) {
			ps.setState(cfg.StatePaused)
			return
		}
		if justPressed(ActionToggleDebug) {
			on := systems.ToggleShowColliders(ps.ecs.World)
			log.Printf("Collider overlay: %v", on)
		}
		ps.drainReloads()
		updateIntent(ps.ecs.World)
		ps.ecs.Update()
	case cfg.StatePaused:
		if justPressed(ActionPause) {
			ps.setState(cfg.StateRunning)
		}
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	switch ps.state {
	case cfg.StateLoading:
		drawLoading(screen, ps.loader.Tracker())
	default:
		screen.Fill(cfg.Camera.ClearColor)
		ps.ecs.Draw(screen)
		if ps.state == cfg.StatePaused {
			drawPaused(screen)
		}
	}
}

func (ps *PlatformerScene) setState(next cfg.StateID) {
	if next == ps.state {
		return
	}
	if ps.state != cfg.StateNone {
		log.Printf("Exiting: %s", ps.state)
	}
	ps.state = next
	log.Printf("Entering: %s", next)
}

func (ps *PlatformerScene) configure() {
	ps.setState(cfg.StateLoading)

	scene := ecs.NewECS(donburi.NewWorld())

	// Frame order: walls are meshed before the step, contacts are consumed
	// after it, and the camera goes last.
	scene.AddSystem(world(systems.UpdateWallColliders))
	scene.AddSystem(world(systems.UpdatePhysics))
	scene.AddSystem(world(systems.UpdateGroundDetection))
	scene.AddSystem(world(systems.UpdateMovement))
	scene.AddSystem(world(systems.UpdateLevelSelection))
	scene.AddSystem(world(systems.UpdateCamera))

	scene.AddRenderer(layerDefault, DrawLevel)
	scene.AddRenderer(layerDefault, DrawPlayers)
	scene.AddRenderer(layerDefault, DrawDebug)

	ps.ecs = scene

	factory2.CreateColliders(scene.World)
	factory2.CreateCamera(scene.World)

	levels, err := ps.loader.LoadLevels()
	if err != nil {
		log.Printf("Failed to load levels: %v", err)
		return
	}
	for _, level := range levels {
		factory2.CreateLevel(scene.World, level)
	}
	// Mesh before the first step so the player never spawns over empty space.
	systems.UpdateWallColliders(scene.World)
}

// world adapts a donburi.World system to the ECS scheduler.
func world(system func(donburi.World)) ecs.System {
	return func(e *ecs.ECS) { system(e.World) }
}

func (ps *PlatformerScene) spawnPlayer() {
	level, ok := systems.SelectedLevel(ps.ecs.World)
	if !ok {
		log.Printf("No level to spawn the player in")
		return
	}
	x, y := spawnPosition(level)
	factory2.CreatePlayer(ps.ecs.World, x, y)
	log.Printf("Spawned player in level %q at (%.0f, %.0f)", level.Name, x, y)
}

// spawnPosition returns the world position of the level's first spawn point,
// or the level center when it has none.
func spawnPosition(level *leveldata.Level) (x, y float64) {
	if len(level.SpawnPoints) == 0 {
		return level.OriginX + level.PixelWidth()/2, level.OriginY + level.PixelHeight()/2
	}
	sp := level.SpawnPoints[0]
	for _, p := range level.SpawnPoints[1:] {
		if p.Index < sp.Index {
			sp = p
		}
	}
	return level.OriginX + sp.X, level.OriginY + sp.Y - cfg.Player.CollisionHeight/2
}

func (ps *PlatformerScene) drainReloads() {
	if ps.reloads == nil {
		return
	}
	for {
		select {
		case file, ok := <-ps.reloads:
			if !ok {
				ps.reloads = nil
				return
			}
			ps.reload(file)
		default:
			return
		}
	}
}

func (ps *PlatformerScene) reload(file string) {
	name := path.Join(ps.loader.Dir(), filepath.Base(file))
	level, err := ps.loader.LoadLevel(name)
	if err != nil {
		log.Printf("Reload of %s failed: %v", name, err)
		return
	}
	systems.UnloadLevel(ps.ecs.World, level.ID)
	factory2.CreateLevel(ps.ecs.World, level)
	log.Printf("Reloaded level %q", level.Name)
}

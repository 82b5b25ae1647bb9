package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/scenes"
	"github.com/automoto/platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levelsDir string, reloads <-chan string) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if levelsDir == "" {
		g.scene = scenes.NewPlatformerScene(g)
	} else {
		loader := assets.NewLevelLoader(os.DirFS(levelsDir), ".", nil)
		g.scene = scenes.NewPlatformerSceneFromLoader(g, loader, reloads)
	}
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML config file (empty = defaults)")
	levelsDir := flag.String("levels", "", "Directory of .tmx levels (empty = bundled levels)")
	watch := flag.Bool("watch", false, "Reload levels when their .tmx file changes (needs -levels)")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	var reloads <-chan string
	if *watch && *levelsDir != "" {
		watcher, err := assets.NewWatcher(*levelsDir)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *levelsDir, err)
		}
		defer watcher.Close()
		reloads = watcher.Events
		go func() {
			for err := range watcher.Errors {
				log.Printf("Watcher error: %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.Physics.TickRate)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(*levelsDir, reloads)); err != nil {
		log.Fatal(err)
	}
}

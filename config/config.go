package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhysicsConfig contains the rigid body world settings
type PhysicsConfig struct {
	// Gravity in px/s², positive is down the screen
	Gravity    float64 `yaml:"gravity"`
	Iterations uint    `yaml:"iterations"`
	// TickRate is the fixed simulation rate in ticks per second
	TickRate int `yaml:"tick_rate"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`

	// Movement
	WalkSpeed     float64 `yaml:"walk_speed"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	IdleDamping   float64 `yaml:"idle_damping"`    // Fraction of speed kept per second when idle
	IdleSnapSpeed float64 `yaml:"idle_snap_speed"` // Below this the player stops dead

	// Physics
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`

	// Ground sensor thickness in pixels
	SensorHeight float64 `yaml:"sensor_height"`
}

// LevelConfig names the TMX layers and files levels are read from
type LevelConfig struct {
	Dir        string   `yaml:"dir"`
	WallLayers []string `yaml:"wall_layers"`
	SpawnGroup string   `yaml:"spawn_group"`
	// Start is the level id selected on startup; empty picks the first one
	Start string `yaml:"start"`
}

// CameraConfig contains camera configuration
type CameraConfig struct {
	ClearColor color.RGBA `yaml:"-"`
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowColliders bool `yaml:"show_colliders"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Level LevelConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1
	DirectionRight = 1
)

func init() {
	Reset()
}

// Reset restores every global to its default.
func Reset() {
	C = &Config{
		Width:  1024,
		Height: 640,
		Title:  "Platformer",
	}

	Physics = PhysicsConfig{
		Gravity:    2000,
		Iterations: 10,
		TickRate:   60,
	}

	Player = PlayerConfig{
		CollisionWidth:  32,
		CollisionHeight: 32,

		WalkSpeed:     250,
		JumpSpeed:     500,
		IdleDamping:   0.09,
		IdleSnapSpeed: 10,

		Mass:     1,
		Friction: 0,

		SensorHeight: 2,
	}

	Level = LevelConfig{
		Dir:        "assets/levels",
		WallLayers: []string{"walls", "wg-tiles"},
		SpawnGroup: "PlayerSpawn",
	}

	Camera = CameraConfig{
		ClearColor: color.RGBA{R: 24, G: 20, B: 37, A: 255},
	}

	Debug = DebugConfig{}
}

// file mirrors the globals for YAML overrides.
type file struct {
	Window  Config        `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Level   LevelConfig   `yaml:"level"`
	Camera  CameraConfig  `yaml:"camera"`
	Debug   DebugConfig   `yaml:"debug"`
}

// Load overlays the YAML file at path onto the globals. Keys missing from the
// file keep their current value.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Apply overlays YAML data onto the globals.
func Apply(data []byte) error {
	f := file{
		Window:  *C,
		Physics: Physics,
		Player:  Player,
		Level:   Level,
		Camera:  Camera,
		Debug:   Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", f.Window.Width, f.Window.Height)
	}
	if f.Physics.TickRate <= 0 {
		return fmt.Errorf("invalid tick rate %d", f.Physics.TickRate)
	}

	C = &f.Window
	Physics = f.Physics
	Player = f.Player
	Level = f.Level
	Camera = f.Camera
	Debug = f.Debug
	return nil
}

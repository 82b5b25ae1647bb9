package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

// SavedSettings represents the debug settings stored on disk
type SavedSettings struct {
	ShowColliders bool `json:"showColliders"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "platformer",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettingsGlobal applies loaded settings to the debug config before
// any world exists. Arenas created afterwards pick the flag up.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.ShowColliders = saved.ShowColliders
}

// SetShowColliders switches the collider debug overlay.
func SetShowColliders(w donburi.World, on bool) {
	cfg.Debug.ShowColliders = on
	if res, ok := components.Colliders.First(w); ok {
		components.Colliders.Get(res).Arena.SetShowDebug(on)
	}
}

// ToggleShowColliders flips the collider overlay and persists the choice.
func ToggleShowColliders(w donburi.World) bool {
	on := !cfg.Debug.ShowColliders
	SetShowColliders(w, on)
	_ = SaveSettings(&SavedSettings{ShowColliders: on})
	return on
}

package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/leveldata"
)

var (
	//go:embed levels/*.tmx
	assetFS embed.FS
)

// LevelOptions builds TMX import options from the level config.
func LevelOptions() leveldata.Options {
	opts := leveldata.DefaultOptions()
	if len(config.Level.WallLayers) > 0 {
		opts.WallLayers = config.Level.WallLayers
	}
	if config.Level.SpawnGroup != "" {
		opts.SpawnGroup = config.Level.SpawnGroup
	}
	return opts
}

// EmbeddedLevels returns the bundled level files, found under "levels".
func EmbeddedLevels() fs.FS {
	return assetFS
}

// LevelLoader reads every TMX file in a directory, reporting each one to a
// LoadTracker.
type LevelLoader struct {
	fsys    fs.FS
	dir     string
	tracker *LoadTracker
}

func NewLevelLoader(fsys fs.FS, dir string, tracker *LoadTracker) *LevelLoader {
	if tracker == nil {
		tracker = NewLoadTracker()
	}
	return &LevelLoader{fsys: fsys, dir: dir, tracker: tracker}
}

// Dir returns the directory levels are read from.
func (l *LevelLoader) Dir() string {
	return l.dir
}

// Tracker returns the tracker the loader reports to.
func (l *LevelLoader) Tracker() *LoadTracker {
	return l.tracker
}

// LoadLevels loads every level. A level that fails to parse is marked failed
// and skipped; the error is returned only when no level loaded at all.
func (l *LevelLoader) LoadLevels() ([]*leveldata.Level, error) {
	matches, err := fs.Glob(l.fsys, path.Join(l.dir, "*.tmx"))
	if err != nil {
		return nil, fmt.Errorf("glob levels: %w", err)
	}
	for _, m := range matches {
		l.tracker.Register(m)
	}

	var levels []*leveldata.Level
	var lastErr error
	for _, m := range matches {
		level, err := l.LoadLevel(m)
		if err != nil {
			lastErr = err
			continue
		}
		levels = append(levels, level)
	}

	if len(levels) == 0 {
		if lastErr == nil {
			lastErr = fmt.Errorf("no .tmx files found in %s", l.dir)
		}
		return nil, lastErr
	}
	return levels, nil
}

// LoadLevel loads a single TMX file and records the outcome.
func (l *LevelLoader) LoadLevel(tmxPath string) (*leveldata.Level, error) {
	level, err := leveldata.LoadLevel(l.fsys, tmxPath, LevelOptions())
	if err != nil {
		l.tracker.MarkFailed(tmxPath, err)
		return nil, err
	}
	l.tracker.MarkLoaded(tmxPath)
	l.tracker.LevelLoaded()
	log.Printf("Loaded level %q (%s): %dx%d cells, %d walls, %d spawn points",
		level.Name, level.ID, level.GridWidth, level.GridHeight, level.Walls.Len(), len(level.SpawnPoints))
	return level, nil
}

// MustLoadLevels loads the bundled levels and panics if none load.
func MustLoadLevels() []*leveldata.Level {
	levels, err := NewLevelLoader(assetFS, "levels", nil).LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("Failed to load bundled levels: %v", err))
	}
	return levels
}

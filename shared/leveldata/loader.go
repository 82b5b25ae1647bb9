package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ErrNoWallLayer is returned when a map has none of the configured wall layers.
// A missing collision layer would otherwise turn into silent holes in the level.
var ErrNoWallLayer = errors.New("no wall layer")

// Options selects which parts of a TMX map feed the collision core.
type Options struct {
	// WallLayers lists tile layer names whose non-empty tiles are walls.
	WallLayers []string
	// SpawnGroup is the object group holding player spawn points.
	SpawnGroup string
}

// DefaultOptions matches the layer names used by the bundled levels.
func DefaultOptions() Options {
	return Options{
		WallLayers: []string{"walls", "wg-tiles"},
		SpawnGroup: "PlayerSpawn",
	}
}

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers can
// pass embed.FS (client) or os.DirFS (server and tools).
func LoadLevel(fsys fs.FS, tmxPath string, opts Options) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	stem := strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath))
	id := LevelID(stem)
	var originX, originY float64
	// Maps without a <properties> block have nil Properties.
	if props := levelMap.Properties; props != nil {
		if iid := props.GetString("iid"); iid != "" {
			id = LevelID(iid)
		}
		originX = props.GetFloat("worldX")
		originY = props.GetFloat("worldY")
	}

	level := &Level{
		ID:         id,
		Name:       stem,
		GridWidth:  levelMap.Width,
		GridHeight: levelMap.Height,
		CellSize:   float64(levelMap.TileWidth),
		OriginX:    originX,
		OriginY:    originY,
		Walls:      make(Cells),
	}

	found := false
	for _, layer := range levelMap.Layers {
		if !isWallLayer(layer.Name, opts.WallLayers) {
			continue
		}
		found = true
		if want := levelMap.Width * levelMap.Height; len(layer.Tiles) != want {
			return nil, fmt.Errorf("level %q: layer %q has %d tiles, want %d", stem, layer.Name, len(layer.Tiles), want)
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				// Slopes and other non-rectangular tiles are not walls.
				if tile.Tileset != nil {
					if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil &&
						tilesetTile.Properties != nil &&
						tilesetTile.Properties.GetString("slope") != "" {
						continue
					}
				}
				level.Walls.Add(GridCoords{X: x, Y: y})
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("level %q: %w (looked for %s)", stem, ErrNoWallLayer, strings.Join(opts.WallLayers, ", "))
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != opts.SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
				X:     o.X,
				Y:     o.Y,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].X < level.SpawnPoints[j].X
	})

	return level, nil
}

// LoadLevels discovers all .tmx files in levelsDir within fsys and loads each
// one, returning them sorted by name.
func LoadLevels(fsys fs.FS, levelsDir string, opts Options) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	seen := make(map[LevelID]string, len(matches))
	for _, path := range matches {
		level, err := LoadLevel(fsys, path, opts)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		if prev, dup := seen[level.ID]; dup {
			return nil, fmt.Errorf("load %s: level id %q already used by %s", path, level.ID, prev)
		}
		seen[level.ID] = path
		levels = append(levels, level)
	}
	return levels, nil
}

// WallCells flattens a level's walls into the observation stream consumed by
// IndexWalls, ordered row by row.
func (l *Level) WallCells() []WallCell {
	cells := make([]WallCell, 0, len(l.Walls))
	for c := range l.Walls {
		cells = append(cells, WallCell{Coords: c, Level: l.ID})
	}
	sort.Slice(cells, func(i, j int) bool {
		a, b := cells[i].Coords, cells[j].Coords
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return cells
}

func isWallLayer(name string, wallLayers []string) bool {
	for _, n := range wallLayers {
		if n == name {
			return true
		}
	}
	return false
}

package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="5" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="2">
 <properties>
  <property name="iid" value="9a124bc0-c640-11ed-ac82-5927f77176f9"/>
  <property name="worldX" type="float" value="320"/>
  <property name="worldY" type="float" value="64"/>
 </properties>
 <tileset firstgid="1" name="terrain" tilewidth="32" tileheight="32" tilecount="2" columns="2">
  <image source="terrain.png" width="64" height="32"/>
 </tileset>
 <layer id="1" name="walls" width="5" height="3">
  <data encoding="csv">
1,1,1,1,1,
1,1,1,1,1,
0,0,2,0,0
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="96" y="40">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const noWallsTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="16" tileheight="16" infinite="0">
 <layer id="1" name="background" width="2" height="2">
  <data encoding="csv">
0,0,
0,0
</data>
 </layer>
</map>
`

func TestLoadLevel(t *testing.T) {
	fsys := fstest.MapFS{"levels/main.tmx": {Data: []byte(testTMX)}}

	level, err := LoadLevel(fsys, "levels/main.tmx", DefaultOptions())
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.ID != "9a124bc0-c640-11ed-ac82-5927f77176f9" {
		t.Errorf("expected iid from map properties, got %q", level.ID)
	}
	if level.Name != "main" {
		t.Errorf("expected name main, got %q", level.Name)
	}
	if level.GridWidth != 5 || level.GridHeight != 3 || level.CellSize != 32 {
		t.Errorf("unexpected grid %dx%d cell %v", level.GridWidth, level.GridHeight, level.CellSize)
	}
	if level.OriginX != 320 || level.OriginY != 64 {
		t.Errorf("expected origin (320, 64), got (%v, %v)", level.OriginX, level.OriginY)
	}
	if level.PixelWidth() != 160 || level.PixelHeight() != 96 {
		t.Errorf("unexpected pixel size %vx%v", level.PixelWidth(), level.PixelHeight())
	}
	if got := level.Walls.Len(); got != 11 {
		t.Errorf("expected 11 wall cells, got %d", got)
	}
	if !level.IsWall(2, 2) || level.IsWall(1, 2) {
		t.Errorf("wall membership wrong on the top row")
	}
	if len(level.SpawnPoints) != 1 || level.SpawnPoints[0].X != 96 {
		t.Errorf("unexpected spawn points %+v", level.SpawnPoints)
	}
}

func TestLoadLevelWithoutWallLayer(t *testing.T) {
	fsys := fstest.MapFS{"levels/empty.tmx": {Data: []byte(noWallsTMX)}}

	_, err := LoadLevel(fsys, "levels/empty.tmx", DefaultOptions())
	if !errors.Is(err, ErrNoWallLayer) {
		t.Fatalf("expected ErrNoWallLayer, got %v", err)
	}
}

const bareTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="1" columns="1"/>
 <layer id="1" name="walls" width="3" height="2">
  <data encoding="csv">
0,0,0,
1,1,1
</data>
 </layer>
</map>
`

func TestLoadLevelWithoutMapProperties(t *testing.T) {
	fsys := fstest.MapFS{"levels/bare.tmx": {Data: []byte(bareTMX)}}

	level, err := LoadLevel(fsys, "levels/bare.tmx", DefaultOptions())
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.ID != "bare" {
		t.Errorf("expected file stem as id, got %q", level.ID)
	}
	if level.OriginX != 0 || level.OriginY != 0 {
		t.Errorf("expected origin (0, 0), got (%v, %v)", level.OriginX, level.OriginY)
	}
	if got := level.Walls.Len(); got != 3 {
		t.Errorf("expected 3 wall cells, got %d", got)
	}
}

func TestLoadLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(noWallsTMX)},
		"levels/a.tmx": {Data: []byte(testTMX)},
	}

	opts := DefaultOptions()
	opts.WallLayers = append(opts.WallLayers, "background")

	levels, err := LoadLevels(fsys, "levels", opts)
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(levels))
	}
	if levels[0].Name != "a" || levels[1].Name != "b" {
		t.Errorf("expected levels sorted by file name, got %s, %s", levels[0].Name, levels[1].Name)
	}
	if levels[1].ID != "b" {
		t.Errorf("expected file stem as id fallback, got %q", levels[1].ID)
	}

	if _, err := LoadLevels(fsys, "missing", opts); err == nil {
		t.Error("expected error for a directory without levels")
	}
}

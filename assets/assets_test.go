package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/automoto/platformer/shared/leveldata"
)

const smallTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="terrain.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="walls" width="2" height="2">
  <data encoding="csv">
0,0,
1,1
</data>
 </layer>
</map>
`

func TestLoadTrackerStates(t *testing.T) {
	tr := NewLoadTracker()
	if tr.State() != Loaded || tr.Ready() {
		t.Fatalf("empty tracker: state %v ready %v", tr.State(), tr.Ready())
	}

	tr.Register("a")
	tr.Register("b")
	tr.Register("a")
	if tr.Len() != 2 {
		t.Errorf("expected 2 assets, got %d", tr.Len())
	}
	if tr.State() != Loading {
		t.Errorf("expected Loading, got %v", tr.State())
	}

	tr.MarkLoaded("a")
	tr.MarkLoaded("b")
	if tr.State() != Loaded {
		t.Errorf("expected Loaded, got %v", tr.State())
	}
	if tr.Ready() {
		t.Error("must not be ready before a level loaded")
	}

	tr.LevelLoaded()
	if !tr.Ready() {
		t.Error("expected ready")
	}

	boom := errors.New("boom")
	tr.Register("c")
	tr.MarkFailed("c", boom)
	if tr.State() != Failed || tr.Ready() {
		t.Errorf("expected Failed and not ready, got %v", tr.State())
	}
	if f := tr.Failures(); len(f) != 1 || f[0] != "c" {
		t.Errorf("unexpected failures %v", f)
	}
	if !errors.Is(tr.Err("c"), boom) {
		t.Errorf("expected recorded error, got %v", tr.Err("c"))
	}
}

func TestLevelLoaderSkipsBrokenLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/a.tmx": {Data: []byte(smallTMX)},
		"levels/b.tmx": {Data: []byte("<map>")},
	}
	loader := NewLevelLoader(fsys, "levels", nil)

	levels, err := loader.LoadLevels()
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	if len(levels) != 1 || levels[0].Name != "a" {
		t.Fatalf("expected only level a, got %v", levels)
	}
	if levels[0].Walls.Len() != 2 {
		t.Errorf("expected 2 walls, got %d", levels[0].Walls.Len())
	}

	tr := loader.Tracker()
	if tr.State() != Failed {
		t.Errorf("expected Failed state for the broken file, got %v", tr.State())
	}
	if f := tr.Failures(); len(f) != 1 || f[0] != "levels/b.tmx" {
		t.Errorf("unexpected failures %v", f)
	}
}

func TestLevelLoaderEmptyDir(t *testing.T) {
	_, err := NewLevelLoader(fstest.MapFS{}, "levels", nil).LoadLevels()
	if err == nil {
		t.Error("expected error for a directory without levels")
	}
}

func TestBundledLevelsLoad(t *testing.T) {
	levels := MustLoadLevels()
	if len(levels) < 2 {
		t.Fatalf("expected at least 2 bundled levels, got %d", len(levels))
	}
	ids := make(map[leveldata.LevelID]bool)
	for _, l := range levels {
		if ids[l.ID] {
			t.Errorf("duplicate level id %s", l.ID)
		}
		ids[l.ID] = true
		if l.Walls.Len() == 0 {
			t.Errorf("level %s has no walls", l.Name)
		}
	}
	if len(levels[0].SpawnPoints) == 0 {
		t.Errorf("first level has no spawn points")
	}
}

func TestWatcherReportsLevelChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "level.tmx")
	if err := os.WriteFile(target, []byte(smallTMX), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Errorf("expected %s, got %s", target, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

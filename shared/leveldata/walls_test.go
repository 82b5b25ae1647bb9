package leveldata

import "testing"

func TestIndexWallsGroupsByLevel(t *testing.T) {
	ws := IndexWalls([]WallCell{
		{Level: "b", Coords: GridCoords{X: 0, Y: 0}},
		{Level: "a", Coords: GridCoords{X: 1, Y: 2}},
		{Level: "a", Coords: GridCoords{X: 1, Y: 2}},
		{Level: "a", Coords: GridCoords{X: 3, Y: 2}},
	})

	if got := ws.Len(); got != 3 {
		t.Errorf("expected 3 distinct cells, got %d", got)
	}
	levels := ws.Levels()
	if len(levels) != 2 || levels[0] != "a" || levels[1] != "b" {
		t.Errorf("unexpected levels %v", levels)
	}
	a, ok := ws.Level("a")
	if !ok || a.Len() != 2 || !a.Contains(GridCoords{X: 3, Y: 2}) {
		t.Errorf("unexpected cells for a: %v", a)
	}

	ws.Remove("a")
	if _, ok := ws.Level("a"); ok {
		t.Error("removed level still indexed")
	}
	if got := ws.Len(); got != 1 {
		t.Errorf("expected 1 cell after remove, got %d", got)
	}
}

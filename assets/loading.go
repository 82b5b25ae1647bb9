package assets

import (
	"log"
	"sort"
)

// LoadState is the aggregate state of a group of assets.
type LoadState int

const (
	Loading LoadState = iota
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "Loading"
	case Loaded:
		return "Loaded"
	case Failed:
		return "Failed"
	}
	return "Unknown"
}

// LoadTracker follows labelled assets until all of them have loaded and at
// least one level is available.
type LoadTracker struct {
	assets      map[string]LoadState
	errors      map[string]error
	levelLoaded bool
}

func NewLoadTracker() *LoadTracker {
	return &LoadTracker{
		assets: make(map[string]LoadState),
		errors: make(map[string]error),
	}
}

// Register starts tracking label. Registering twice keeps the current state.
func (t *LoadTracker) Register(label string) {
	if _, ok := t.assets[label]; ok {
		return
	}
	log.Printf("Registering asset: %s", label)
	t.assets[label] = Loading
}

func (t *LoadTracker) MarkLoaded(label string) {
	t.assets[label] = Loaded
	delete(t.errors, label)
}

func (t *LoadTracker) MarkFailed(label string, err error) {
	log.Printf("Failed to load asset %s: %v", label, err)
	t.assets[label] = Failed
	t.errors[label] = err
}

// LevelLoaded records that a level became available.
func (t *LoadTracker) LevelLoaded() {
	t.levelLoaded = true
}

// State is Failed if any asset failed, Loaded once every asset loaded, and
// Loading otherwise.
func (t *LoadTracker) State() LoadState {
	state := Loaded
	for _, s := range t.assets {
		switch s {
		case Failed:
			return Failed
		case Loading:
			state = Loading
		}
	}
	return state
}

// Ready reports whether the game may leave the loading state.
func (t *LoadTracker) Ready() bool {
	return t.levelLoaded && t.State() == Loaded
}

// Failures returns the failed labels, sorted.
func (t *LoadTracker) Failures() []string {
	var out []string
	for label, s := range t.assets {
		if s == Failed {
			out = append(out, label)
		}
	}
	sort.Strings(out)
	return out
}

// Err returns the error recorded for label.
func (t *LoadTracker) Err(label string) error {
	return t.errors[label]
}

// Len returns the number of tracked assets.
func (t *LoadTracker) Len() int {
	return len(t.assets)
}

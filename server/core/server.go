package core

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/shared/collider"
	"github.com/automoto/platformer/shared/ground"
	"github.com/automoto/platformer/shared/leveldata"
	"github.com/solarlune/resolv"
)

// Server runs the level collision core headless: it meshes every level into
// resolv spaces and simulates one probe per spawn point.
type Server struct {
	backend *SpaceBackend
	arena   *collider.Arena
	tracker *ground.Tracker[*resolv.Object]
	loader  *assets.LevelLoader
	loop    *GameLoop

	levels  map[leveldata.LevelID]*leveldata.Level
	probes  []*Probe
	nextID  int
	params  stepParams
	reloads chan string

	mu sync.Mutex
}

// NewServer creates a server reading levels from dir inside fsys.
func NewServer(tickRate int, fsys fs.FS, dir string) *Server {
	backend := NewSpaceBackend()
	s := &Server{
		backend: backend,
		arena:   collider.NewArena(backend),
		tracker: ground.NewTracker[*resolv.Object](),
		loader:  assets.NewLevelLoader(fsys, dir, nil),
		levels:  make(map[leveldata.LevelID]*leveldata.Level),
		params: stepParams{
			gravity:     config.Physics.Gravity,
			walkSpeed:   config.Player.WalkSpeed,
			jumpSpeed:   config.Player.JumpSpeed,
			idleDamping: config.Player.IdleDamping,
			idleSnap:    config.Player.IdleSnapSpeed,
		},
		reloads: make(chan string, 16),
	}
	s.loop = NewGameLoop(s, tickRate)
	return s
}

// LoadLevels loads every level in the server's directory.
func (s *Server) LoadLevels() error {
	levels, err := s.loader.LoadLevels()
	if err != nil {
		return fmt.Errorf("loading levels: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, level := range levels {
		if err := s.addLevel(level); err != nil {
			log.Printf("Skipping level %q: %v", level.Name, err)
		}
	}
	return nil
}

// AddLevel meshes a level, builds its space and drops a probe on every spawn
// point. A level with the same ID replaces the old one.
func (s *Server) AddLevel(level *leveldata.Level) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLevel(level)
}

func (s *Server) addLevel(level *leveldata.Level) error {
	if _, ok := s.levels[level.ID]; ok {
		s.removeLevel(level.ID)
	}

	sl := s.backend.AddLevel(level)
	_, stats, err := s.arena.Build(level)
	if err != nil {
		s.backend.RemoveLevel(level.ID)
		return err
	}
	s.levels[level.ID] = level
	log.Printf("Meshed level %q: %d wall cells -> %d plates -> %d colliders",
		level.Name, stats.Cells, stats.Plates, stats.Rects)

	for _, sp := range level.SpawnPoints {
		s.spawnProbe(sl, sp)
	}
	return nil
}

func (s *Server) spawnProbe(sl *ServerLevel, sp leveldata.SpawnPoint) {
	s.nextID++
	p := newProbe(sl, s.nextID, sp.X, sp.Y,
		config.Player.CollisionWidth, config.Player.CollisionHeight, config.Player.SensorHeight)
	s.tracker.AddDetector(p.Object)
	s.tracker.AddSensor(p.Sensor, p.Object)
	s.probes = append(s.probes, p)
}

// RemoveLevel drops a level with its walls and probes.
func (s *Server) RemoveLevel(id leveldata.LevelID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLevel(id)
}

func (s *Server) removeLevel(id leveldata.LevelID) bool {
	if _, ok := s.levels[id]; !ok {
		return false
	}
	sl, _ := s.backend.Level(id)

	kept := s.probes[:0]
	for _, p := range s.probes {
		if p.Level != id {
			kept = append(kept, p)
			continue
		}
		s.tracker.Apply(forgetWalls(p), s.backend.IsWall)
		s.tracker.RemoveDetector(p.Object)
		if sl != nil {
			removeProbe(sl, p)
		}
	}
	s.probes = kept

	s.arena.Unload(id)
	s.backend.RemoveLevel(id)
	delete(s.levels, id)
	return true
}

// Reload queues a changed level file for reloading on the next tick.
func (s *Server) Reload(file string) {
	select {
	case s.reloads <- file:
	default:
		log.Printf("Reload queue full, dropping %s", file)
	}
}

// ReloadFile reloads one level file immediately. The file is resolved by
// name inside the server's level directory.
func (s *Server) ReloadFile(file string) error {
	name := path.Join(s.loader.Dir(), filepath.Base(file))
	level, err := s.loader.LoadLevel(name)
	if err != nil {
		return fmt.Errorf("reloading %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.addLevel(level); err != nil {
		return err
	}
	log.Printf("Reloaded level %q from %s", level.Name, name)
	return nil
}

// Step advances every probe by dt seconds and feeds their sensor contacts to
// the ground tracker.
func (s *Server) Step(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []Contact
	for _, p := range s.probes {
		stepProbe(p, dt, s.tracker.OnGround(p.Object), s.params)
		events = append(events, senseGround(p)...)
	}

	for _, obj := range s.tracker.Apply(events, s.backend.IsWall) {
		if p := s.probeFor(obj); p != nil {
			log.Printf("Probe %d on ground: %v", p.ID, s.tracker.OnGround(obj))
		}
	}
}

func (s *Server) drainReloads() {
	for {
		select {
		case file := <-s.reloads:
			if err := s.ReloadFile(file); err != nil {
				log.Printf("Reload failed: %v", err)
			}
		default:
			return
		}
	}
}

func (s *Server) probeFor(obj *resolv.Object) *Probe {
	for _, p := range s.probes {
		if p.Object == obj {
			return p
		}
	}
	return nil
}

// OnGround reports the tracker's view of a probe.
func (s *Server) OnGround(p *Probe) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.OnGround(p.Object)
}

// Probes returns the live probes ordered by ID.
func (s *Server) Probes() []*Probe {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]*Probe(nil), s.probes...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Level returns a loaded level's space.
func (s *Server) Level(id leveldata.LevelID) (*ServerLevel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Level(id)
}

// LevelCount returns the number of loaded levels.
func (s *Server) LevelCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.levels)
}

// Start runs the game loop until Stop is called.
func (s *Server) Start() {
	s.loop.Run()
}

// Stop gracefully shuts down the loop.
func (s *Server) Stop() {
	s.loop.Stop()
}

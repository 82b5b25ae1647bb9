package ground

import (
	"math/rand"
	"testing"
)

const (
	player = iota + 1
	sensor
	wallA
	wallB
	enemy
)

func isWall(e int) bool { return e == wallA || e == wallB }

func newTestTracker() *Tracker[int] {
	tr := NewTracker[int]()
	tr.AddSensor(sensor, player)
	return tr
}

func TestTwoContactsKeepOnGround(t *testing.T) {
	tr := newTestTracker()

	steps := []struct {
		kind   ContactKind
		ground int
		want   bool
	}{
		{Started, wallA, true},
		{Started, wallB, true},
		{Stopped, wallA, true},
		{Stopped, wallB, false},
	}

	for i, s := range steps {
		tr.Apply([]ContactEvent[int]{{Kind: s.kind, A: sensor, B: s.ground}}, isWall)
		if got := tr.OnGround(player); got != s.want {
			t.Errorf("step %d (%v %d): expected on_ground=%v, got %v", i, s.kind, s.ground, s.want, got)
		}
	}
}

func TestApplyEitherOrder(t *testing.T) {
	tr := newTestTracker()

	changed := tr.Apply([]ContactEvent[int]{{Kind: Started, A: wallA, B: sensor}}, isWall)
	if len(changed) != 1 || changed[0] != player {
		t.Fatalf("expected player to change, got %v", changed)
	}
	if !tr.OnGround(player) {
		t.Error("expected on_ground after reversed begin")
	}
}

func TestApplyReportsNetChanges(t *testing.T) {
	tr := newTestTracker()

	changed := tr.Apply([]ContactEvent[int]{
		{Kind: Started, A: sensor, B: wallA},
		{Kind: Stopped, A: sensor, B: wallA},
	}, isWall)
	if len(changed) != 0 {
		t.Errorf("begin and end in one batch should cancel out, got %v", changed)
	}

	changed = tr.Apply([]ContactEvent[int]{
		{Kind: Started, A: sensor, B: wallA},
		{Kind: Started, A: sensor, B: wallB},
	}, isWall)
	if len(changed) != 1 {
		t.Errorf("expected a single change, got %v", changed)
	}
}

func TestIgnoresUnrelatedEvents(t *testing.T) {
	tr := newTestTracker()

	events := []ContactEvent[int]{
		{Kind: Started, A: enemy, B: wallA},  // not a sensor
		{Kind: Started, A: sensor, B: enemy}, // not ground
		{Kind: Stopped, A: sensor, B: wallB}, // never began
		{Kind: Stopped, A: 99, B: wallA},     // unknown entity
	}
	if changed := tr.Apply(events, isWall); len(changed) != 0 {
		t.Errorf("expected no changes, got %v", changed)
	}
	if tr.OnGround(player) || tr.Contacts(player) != 0 {
		t.Error("unrelated events must not touch the contact set")
	}
}

func TestRedundantEndsNeverGoNegative(t *testing.T) {
	tr := newTestTracker()

	tr.Begin(sensor, wallA)
	tr.End(sensor, wallA)
	tr.End(sensor, wallA)
	tr.End(sensor, wallA)

	tr.Begin(sensor, wallB)
	if !tr.OnGround(player) {
		t.Error("a fresh begin after redundant ends must register")
	}
	if tr.Contacts(player) != 1 {
		t.Errorf("expected 1 contact, got %d", tr.Contacts(player))
	}
}

func TestRemoveSensorDropsContacts(t *testing.T) {
	tr := newTestTracker()
	tr.AddSensor(50, player)

	tr.Begin(sensor, wallA)
	tr.Begin(50, wallB)
	tr.RemoveSensor(sensor)

	if tr.Contacts(player) != 1 {
		t.Errorf("expected the other sensor's contact to remain, got %d", tr.Contacts(player))
	}
	if _, changed := tr.End(sensor, wallA); changed {
		t.Error("end from a removed sensor must be ignored")
	}

	tr.RemoveDetector(player)
	if tr.IsSensor(50) || tr.Detectors() != 0 {
		t.Error("RemoveDetector must forget its sensors")
	}
	if tr.OnGround(player) {
		t.Error("removed detector reported on ground")
	}
}

// Random begin/end sequences against a reference count of open contacts.
func TestMatchesReferenceModel(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	grounds := []int{wallA, wallB, 10, 11, 12}

	for run := 0; run < 100; run++ {
		tr := NewTracker[int]()
		tr.AddSensor(sensor, player)
		tr.AddDetector(100)
		tr.AddSensor(101, 100)

		open := map[[2]int]bool{}
		for i := 0; i < 200; i++ {
			s := sensor
			if rng.Intn(2) == 0 {
				s = 101
			}
			g := grounds[rng.Intn(len(grounds))]
			kind := Started
			if rng.Intn(2) == 0 {
				kind = Stopped
			}

			tr.Apply([]ContactEvent[int]{{Kind: kind, A: s, B: g}}, func(e int) bool {
				return e == wallA || e == wallB || e >= 10 && e <= 12
			})
			if kind == Started {
				open[[2]int{s, g}] = true
			} else {
				delete(open, [2]int{s, g})
			}

			want := map[int]int{}
			for k := range open {
				if k[0] == sensor {
					want[player]++
				} else {
					want[100]++
				}
			}
			for _, d := range []int{player, 100} {
				if tr.Contacts(d) != want[d] {
					t.Fatalf("run %d step %d: detector %d has %d contacts, want %d", run, i, d, tr.Contacts(d), want[d])
				}
				if tr.OnGround(d) != (want[d] > 0) {
					t.Fatalf("run %d step %d: detector %d on_ground mismatch", run, i, d)
				}
			}
		}
	}
}

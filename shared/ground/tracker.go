// Package ground keeps a per-entity "on ground" flag alive across frames by
// counting the contacts between ground sensors and ground-like colliders.
//
// Physics engines report contacts as begin/end pairs. A body standing across
// two wall boxes receives two begins, and when it walks off the first box the
// end for that box must not clear the flag while the second contact persists.
// Tracker stores the contact set per detector instead of a boolean for that
// reason.
package ground

// ContactKind distinguishes begin and end contact events.
type ContactKind int

const (
	Started ContactKind = iota
	Stopped
)

func (k ContactKind) String() string {
	switch k {
	case Started:
		return "started"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// ContactEvent is one contact between two colliders, in any order.
type ContactEvent[E comparable] struct {
	Kind ContactKind
	A, B E
}

type contact[E comparable] struct {
	sensor, ground E
}

// Tracker maps sensors to their detector and detectors to their live contacts.
type Tracker[E comparable] struct {
	sensors   map[E]E
	detectors map[E]map[contact[E]]struct{}
}

// NewTracker returns an empty tracker.
func NewTracker[E comparable]() *Tracker[E] {
	return &Tracker[E]{
		sensors:   make(map[E]E),
		detectors: make(map[E]map[contact[E]]struct{}),
	}
}

// AddDetector registers an entity whose on-ground state is tracked. Adding an
// existing detector keeps its contacts.
func (t *Tracker[E]) AddDetector(d E) {
	if _, ok := t.detectors[d]; !ok {
		t.detectors[d] = make(map[contact[E]]struct{})
	}
}

// AddSensor links a sensor collider to a detector, registering the detector
// if needed.
func (t *Tracker[E]) AddSensor(sensor, detector E) {
	t.AddDetector(detector)
	t.sensors[sensor] = detector
}

// RemoveSensor unlinks a sensor and drops the contacts it held.
func (t *Tracker[E]) RemoveSensor(sensor E) {
	d, ok := t.sensors[sensor]
	if !ok {
		return
	}
	delete(t.sensors, sensor)
	for c := range t.detectors[d] {
		if c.sensor == sensor {
			delete(t.detectors[d], c)
		}
	}
}

// RemoveDetector forgets a detector together with its sensors.
func (t *Tracker[E]) RemoveDetector(d E) {
	for s, owner := range t.sensors {
		if owner == d {
			delete(t.sensors, s)
		}
	}
	delete(t.detectors, d)
}

// IsSensor reports whether e is a registered sensor.
func (t *Tracker[E]) IsSensor(e E) bool {
	_, ok := t.sensors[e]
	return ok
}

// Begin records a contact between sensor and ground. It returns the sensor's
// detector and whether its on-ground state changed.
func (t *Tracker[E]) Begin(sensor, ground E) (E, bool) {
	d, ok := t.sensors[sensor]
	if !ok {
		return d, false
	}
	set := t.detectors[d]
	before := len(set) > 0
	set[contact[E]{sensor, ground}] = struct{}{}
	return d, !before
}

// End removes a contact. Unknown sensors or contacts are ignored.
func (t *Tracker[E]) End(sensor, ground E) (E, bool) {
	d, ok := t.sensors[sensor]
	if !ok {
		return d, false
	}
	set := t.detectors[d]
	key := contact[E]{sensor, ground}
	if _, ok := set[key]; !ok {
		return d, false
	}
	delete(set, key)
	return d, len(set) == 0
}

// OnGround reports whether any sensor of d currently touches ground.
func (t *Tracker[E]) OnGround(d E) bool {
	return len(t.detectors[d]) > 0
}

// Contacts returns the number of live contacts for d.
func (t *Tracker[E]) Contacts(d E) int {
	return len(t.detectors[d])
}

// Detectors returns the number of registered detectors.
func (t *Tracker[E]) Detectors() int {
	return len(t.detectors)
}

// Apply consumes a batch of events. For each event the side accepted by
// isGround is the ground and the other side must be a registered sensor.
// Events matching neither arrangement are skipped. It returns the detectors
// whose on-ground state flipped, in order of first change.
func (t *Tracker[E]) Apply(events []ContactEvent[E], isGround func(E) bool) []E {
	var changed []E
	seen := make(map[E]bool)
	before := make(map[E]bool)

	for _, ev := range events {
		sensor, g, ok := t.orient(ev, isGround)
		if !ok {
			continue
		}
		d := t.sensors[sensor]
		if _, recorded := before[d]; !recorded {
			before[d] = t.OnGround(d)
		}

		switch ev.Kind {
		case Started:
			t.Begin(sensor, g)
		case Stopped:
			t.End(sensor, g)
		}

		if !seen[d] {
			seen[d] = true
			changed = append(changed, d)
		}
	}

	out := changed[:0]
	for _, d := range changed {
		if t.OnGround(d) != before[d] {
			out = append(out, d)
		}
	}
	return out
}

func (t *Tracker[E]) orient(ev ContactEvent[E], isGround func(E) bool) (sensor, g E, ok bool) {
	if t.IsSensor(ev.A) && isGround(ev.B) {
		return ev.A, ev.B, true
	}
	if t.IsSensor(ev.B) && isGround(ev.A) {
		return ev.B, ev.A, true
	}
	return sensor, g, false
}

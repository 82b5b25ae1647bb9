package config

// StateID identifies a top-level game state.
type StateID int

const (
	StateNone StateID = iota
	StateLoading
	StateRunning
	StatePaused
)

var stateNames = map[StateID]string{
	StateNone:    "None",
	StateLoading: "GameLoading",
	StateRunning: "GameRunning",
	StatePaused:  "GamePaused",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

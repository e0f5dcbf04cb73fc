// Package state holds the wave-flow states of a session.
package state

// GameState is where the session is in the wave flow
type GameState int

const (
	// StateIntermission waits between waves for the confirm key
	StateIntermission GameState = iota
	StateWaveActive
	StateVictory
	StateDefeat
)

var names = [...]string{
	StateIntermission: "Intermission",
	StateWaveActive:   "WaveActive",
	StateVictory:      "Victory",
	StateDefeat:       "Defeat",
}

func (s GameState) String() string {
	if s < 0 || int(s) >= len(names) {
		return "Unknown"
	}
	return names[s]
}

// Finished reports whether the session is won. A defeat can be retried.
func (s GameState) Finished() bool {
	return s == StateVictory
}

// Ended reports whether play has stopped, won or lost
func (s GameState) Ended() bool {
	return s == StateVictory || s == StateDefeat
}

// Fighting reports whether player bullets can hit anything
func (s GameState) Fighting() bool {
	return s == StateWaveActive
}

package boss

import "github.com/younwookim/arena/internal/domain/entity"

// StateID names one of the boss states
type StateID int

const (
	StateIntro StateID = iota
	StateP1Fan
	StateP1Rest
	StateHalfCue
	StateLowHPCue
	StatePhase1Death
	StateRebirth
	StateP2Fan
	StateP2Rest
	StateLasersGrow
	StateLasers
	StatePlayerLose
	StateDeadFinal
)

// String returns the string representation of the state
func (s StateID) String() string {
	switch s {
	case StateIntro:
		return "Intro"
	case StateP1Fan:
		return "P1_Fan"
	case StateP1Rest:
		return "P1_Rest"
	case StateHalfCue:
		return "PhaseHalfCue"
	case StateLowHPCue:
		return "LowHpCue"
	case StatePhase1Death:
		return "Phase1Death"
	case StateRebirth:
		return "Rebirth"
	case StateP2Fan:
		return "P2_Fan"
	case StateP2Rest:
		return "P2_Rest"
	case StateLasersGrow:
		return "P2_LasersGrow"
	case StateLasers:
		return "P2_Lasers"
	case StatePlayerLose:
		return "PlayerLose"
	case StateDeadFinal:
		return "DeadFinal"
	default:
		return "Unknown"
	}
}

// Invulnerable reports whether player bullets are ignored in this state.
// The hit test itself is skipped, so bullets fly through.
func (s StateID) Invulnerable() bool {
	switch s {
	case StateIntro, StateHalfCue, StateLowHPCue, StatePhase1Death,
		StateRebirth, StatePlayerLose, StateDeadFinal:
		return true
	default:
		return false
	}
}

// harmless reports whether the boss has stopped hurting the player
func (s StateID) harmless() bool {
	return s == StatePlayerLose || s == StateDeadFinal
}

// State is the payload of the active state. Each state carries only the data
// it needs; entering a state always builds a fresh payload.
type State interface {
	ID() StateID
	isState()
}

// Clock counts the ticks spent in a state against its deadline
type Clock struct {
	Timer int
	Limit int
}

// Tick advances the clock and reports whether the deadline was reached
func (c *Clock) Tick() bool {
	c.Timer++
	return c.Timer >= c.Limit
}

// IntroState glides the boss in from above the arena. Hold counts the ticks
// spent at the center.
type IntroState struct {
	Hold int
}

// FanState fires radial volleys while drifting around
type FanState struct {
	Clock
	Phase int
	Angle float64 // base angle of the next volley, radians
}

// RestState homes slowly toward the player
type RestState struct {
	Clock
	Phase int
}

// CueState is a one-shot threshold cue. Resume is the state that was active
// when the cue triggered.
type CueState struct {
	Clock
	Which  StateID
	Resume StateID
}

// DeathState is the end of phase one
type DeathState struct {
	Clock
}

// RebirthState recenters the boss before phase two
type RebirthState struct {
	Clock
}

// GrowState extends the lasers from the dead zone to their full length
type GrowState struct {
	Remaining int
	Inner     float64
	Length    float64
	Lasers    []entity.Laser
}

// LaserState rotates the full-length lasers
type LaserState struct {
	Remaining int
	Inner     float64
	Length    float64
	Lasers    []entity.Laser
}

// LoseState waits out the player's defeat and plays the follow-up cue once
type LoseState struct {
	FollowupIn int
	Pending    bool
}

// FinalState is the defeated boss
type FinalState struct{}

func (IntroState) ID() StateID   { return StateIntro }
func (DeathState) ID() StateID   { return StatePhase1Death }
func (RebirthState) ID() StateID { return StateRebirth }
func (GrowState) ID() StateID    { return StateLasersGrow }
func (LaserState) ID() StateID   { return StateLasers }
func (LoseState) ID() StateID    { return StatePlayerLose }
func (FinalState) ID() StateID   { return StateDeadFinal }
func (c CueState) ID() StateID   { return c.Which }

// ID returns P1_Fan or P2_Fan depending on the phase
func (f FanState) ID() StateID {
	if f.Phase == 2 {
		return StateP2Fan
	}
	return StateP1Fan
}

// ID returns P1_Rest or P2_Rest depending on the phase
func (r RestState) ID() StateID {
	if r.Phase == 2 {
		return StateP2Rest
	}
	return StateP1Rest
}

func (IntroState) isState()   {}
func (FanState) isState()     {}
func (RestState) isState()    {}
func (CueState) isState()     {}
func (DeathState) isState()   {}
func (RebirthState) isState() {}
func (GrowState) isState()    {}
func (LaserState) isState()   {}
func (LoseState) isState()    {}
func (FinalState) isState()   {}

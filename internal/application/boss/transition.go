package boss

// Trigger is something that can move the boss to another state
type Trigger int

const (
	// TriggerExpired fires when the state's own deadline is reached
	TriggerExpired Trigger = iota
	// TriggerLaserRoll ends a phase-two fan in lasers instead of a rest
	TriggerLaserRoll
	TriggerHalfHP
	TriggerLowHP
	TriggerPhase1Down
	TriggerPhase2Down
	TriggerPlayerDown
)

// String returns the string representation of the trigger
func (t Trigger) String() string {
	switch t {
	case TriggerExpired:
		return "Expired"
	case TriggerLaserRoll:
		return "LaserRoll"
	case TriggerHalfHP:
		return "HalfHP"
	case TriggerLowHP:
		return "LowHP"
	case TriggerPhase1Down:
		return "Phase1Down"
	case TriggerPhase2Down:
		return "Phase2Down"
	case TriggerPlayerDown:
		return "PlayerDown"
	default:
		return "Unknown"
	}
}

// Next returns the state that follows s on trigger t. ok is false when the
// trigger does not apply to s.
func Next(s State, t Trigger) (StateID, bool) {
	id := s.ID()

	switch t {
	case TriggerHalfHP, TriggerLowHP, TriggerPhase1Down:
		if id != StateP1Fan && id != StateP1Rest {
			return 0, false
		}
		switch t {
		case TriggerHalfHP:
			return StateHalfCue, true
		case TriggerLowHP:
			return StateLowHPCue, true
		default:
			return StatePhase1Death, true
		}

	case TriggerPhase2Down:
		switch id {
		case StateP2Fan, StateP2Rest, StateLasersGrow, StateLasers:
			return StateDeadFinal, true
		}
		return 0, false

	case TriggerPlayerDown:
		if id.Invulnerable() {
			return 0, false
		}
		return StatePlayerLose, true

	case TriggerLaserRoll:
		if id == StateP2Fan {
			return StateLasersGrow, true
		}
		return 0, false

	case TriggerExpired:
		switch id {
		case StateIntro:
			return StateP1Fan, true
		case StateP1Fan:
			return StateP1Rest, true
		case StateP1Rest:
			return StateP1Fan, true
		case StateHalfCue, StateLowHPCue:
			return resumeOf(s)
		case StatePhase1Death:
			return StateRebirth, true
		case StateRebirth:
			return StateP2Fan, true
		case StateP2Fan:
			return StateP2Rest, true
		case StateP2Rest:
			return StateP2Fan, true
		case StateLasersGrow:
			return StateLasers, true
		case StateLasers:
			return StateP2Rest, true
		}
	}
	return 0, false
}

func resumeOf(s State) (StateID, bool) {
	switch c := s.(type) {
	case *CueState:
		return c.Resume, true
	case CueState:
		return c.Resume, true
	}
	return 0, false
}

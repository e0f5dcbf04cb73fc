package entity

// Event is something an actor reports back from its update
type Event interface {
	isEvent()
}

// KillEvent is emitted once when an actor is defeated
type KillEvent struct {
	ID   EntityID
	Kind Kind
	X, Y float64
}

func (KillEvent) isEvent() {}

// DropEvent asks the economy to place a coin
type DropEvent struct {
	X, Y  float64
	Value int
}

func (DropEvent) isEvent() {}

// PlayerHitEvent reports a damage attempt against the player that was not ignored
type PlayerHitEvent struct {
	Source  Kind
	Outcome DamageOutcome
}

func (PlayerHitEvent) isEvent() {}

// CueEvent asks the presentation layer to play an audio/visual cue
type CueEvent struct {
	Cue Cue
}

func (CueEvent) isEvent() {}

// Cue names a one-shot audio/visual signal
type Cue int

const (
	CueBlock Cue = iota
	CueTelegraph
	CueStage1Music
	CueBossIntro
	CueBossHalf
	CueBossLowHP
	CueBossDeath
	CueBossRebirth
	CueStage2Music
	CuePlayerLose
	CuePlayerLoseFollowup
	CueBossHitPlayer
)

// String returns the string representation of the cue
func (c Cue) String() string {
	switch c {
	case CueBlock:
		return "Block"
	case CueTelegraph:
		return "Telegraph"
	case CueStage1Music:
		return "Stage1Music"
	case CueBossIntro:
		return "BossIntro"
	case CueBossHalf:
		return "BossHalf"
	case CueBossLowHP:
		return "BossLowHP"
	case CueBossDeath:
		return "BossDeath"
	case CueBossRebirth:
		return "BossRebirth"
	case CueStage2Music:
		return "Stage2Music"
	case CuePlayerLose:
		return "PlayerLose"
	case CuePlayerLoseFollowup:
		return "PlayerLoseFollowup"
	case CueBossHitPlayer:
		return "BossHitPlayer"
	default:
		return "Unknown"
	}
}

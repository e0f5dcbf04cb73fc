// Package boss implements the two-phase boss encounter: a state machine of
// fan volleys, rests, threshold cues, a rebirth and rotating lasers.
package boss

import (
	"log/slog"
	"math"

	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// Boss is the wave-five encounter. It implements entity.Actor.
type Boss struct {
	id    entity.EntityID
	body  entity.Body
	cfg   config.BossConfig
	arena entity.Arena

	Phase int
	Shots []*entity.Shot

	state State

	halfPlayed     bool
	lowPlayed      bool
	phase1Finished bool
	firstRestDone  bool

	moveTimer       int // fan reposition countdown, kept across states
	contactCooldown int

	// The rebirth music transition outlives the Rebirth state itself
	stage2Pending bool
	rebirthAudio  int

	events []entity.Event
}

// NewBoss creates a boss and enters Intro. The intro cue events are returned
// by the first Update.
func NewBoss(id entity.EntityID, cfg config.BossConfig, arena entity.Arena) *Boss {
	b := &Boss{
		id:    id,
		body:  entity.NewBody(0, 0, cfg.Width, cfg.Height, cfg.Phase1HP),
		cfg:   cfg,
		arena: arena,
		Phase: 1,
		Shots: make([]*entity.Shot, 0, 128),
	}
	b.enter(StateIntro, nil, nil)
	return b
}

func (b *Boss) ID() entity.EntityID { return b.id }
func (b *Boss) Kind() entity.Kind   { return entity.KindBoss }
func (b *Boss) Body() *entity.Body  { return &b.body }

// State returns the payload of the active state
func (b *Boss) State() State {
	return b.state
}

// StateID returns the active state
func (b *Boss) StateID() StateID {
	return b.state.ID()
}

// HPRatio returns the health bar fill (0.0 ~ 1.0) of the current phase
func (b *Boss) HPRatio() float64 {
	if b.body.MaxHP <= 0 {
		return 0
	}
	return float64(b.body.DisplayHP()) / float64(b.body.MaxHP)
}

// Enraged reports whether the boss is in its second phase
func (b *Boss) Enraged() bool {
	return b.Phase == 2
}

// LaserView is what the renderer needs to draw the beams
type LaserView struct {
	CX, CY float64
	Inner  float64
	Length float64
	Lasers []entity.Laser
}

// Lasers returns the active beams. ok is false outside the laser states.
func (b *Boss) Lasers() (LaserView, bool) {
	cx, cy := b.body.Center()
	switch s := b.state.(type) {
	case *GrowState:
		return LaserView{CX: cx, CY: cy, Inner: s.Inner, Length: s.Length, Lasers: s.Lasers}, true
	case *LaserState:
		return LaserView{CX: cx, CY: cy, Inner: s.Inner, Length: s.Length, Lasers: s.Lasers}, true
	}
	return LaserView{}, false
}

// ShotHidden reports whether a shot is still inside the boss sprite. Such
// shots are simulated but not drawn.
func (b *Boss) ShotHidden(s *entity.Shot) bool {
	return b.body.Rect().Contains(s.X, s.Y)
}

// Update advances the boss by one tick: state behavior, body contact, bullet
// intake, its own shots, the rebirth audio timer and finally the player-lose
// check.
func (b *Boss) Update(t *entity.Tick) []entity.Event {
	if !b.body.Alive {
		return nil
	}
	out := b.events
	b.events = nil

	b.step(t)
	b.contact(t.Player)
	b.intake(t.Bullets, t.Rand)
	b.updateShots(t.Player)
	b.tickRebirthAudio()

	if !t.Player.Alive {
		b.fire(TriggerPlayerDown, t.Rand)
	}

	out = append(out, b.events...)
	b.events = nil
	return out
}

func (b *Boss) emit(e entity.Event) {
	b.events = append(b.events, e)
}

func (b *Boss) cue(c entity.Cue) {
	b.emit(entity.CueEvent{Cue: c})
}

// fire applies trigger t. It reports whether a transition happened.
func (b *Boss) fire(t Trigger, rng entity.Rand) bool {
	next, ok := Next(b.state, t)
	if !ok {
		return false
	}

	prev := b.state
	slog.Debug("boss transition", "id", b.id, "from", prev.ID(), "to", next, "trigger", t)

	if prev.ID() == StateRebirth {
		b.Phase = 2
	}
	b.enter(next, prev, rng)
	return true
}

// enter builds the payload of state id and runs its entry actions. prev is
// the state being left (nil on creation).
func (b *Boss) enter(id StateID, prev State, rng entity.Rand) {
	switch id {
	case StateIntro:
		b.clearShots()
		b.body.X, _ = b.centerOrigin()
		b.body.Y = -b.body.H - b.cfg.Intro.StartGap
		b.firstRestDone = false
		b.cue(entity.CueStage1Music)
		b.state = &IntroState{}

	case StateP1Fan, StateP2Fan:
		b.clearShots()
		phase := 1
		if id == StateP2Fan {
			phase = 2
		}
		b.state = &FanState{
			Clock: Clock{Limit: b.cfg.Fan.Duration},
			Phase: phase,
			Angle: float64(rng.Intn(360)) * math.Pi / 180,
		}

	case StateP1Rest:
		limit := b.cfg.Rest.FirstRest
		if b.firstRestDone {
			limit = entity.RandRange(rng, b.cfg.Rest.Min, b.cfg.Rest.Max)
		}
		b.firstRestDone = true
		b.state = &RestState{Clock: Clock{Limit: limit}, Phase: 1}

	case StateP2Rest:
		limit := entity.RandRange(rng, b.cfg.Rest.Min, b.cfg.Rest.Max)
		b.state = &RestState{Clock: Clock{Limit: limit}, Phase: 2}

	case StateHalfCue:
		b.halfPlayed = true
		b.cue(entity.CueBossHalf)
		b.state = &CueState{Clock: Clock{Limit: b.cfg.Cues.HalfDuration}, Which: id, Resume: prev.ID()}

	case StateLowHPCue:
		b.lowPlayed = true
		b.cue(entity.CueBossLowHP)
		b.state = &CueState{Clock: Clock{Limit: b.cfg.Cues.LowDuration}, Which: id, Resume: prev.ID()}

	case StatePhase1Death:
		b.body.HP = 0
		b.phase1Finished = true
		b.clearShots()
		b.cue(entity.CueBossDeath)
		b.state = &DeathState{Clock: Clock{Limit: b.cfg.Cues.DeathDuration}}

	case StateRebirth:
		b.recenter()
		b.clearShots()
		b.body.MaxHP = b.cfg.Phase2HP()
		b.body.HP = b.body.MaxHP
		b.stage2Pending = true
		b.rebirthAudio = b.cfg.Cues.RebirthAudio
		b.cue(entity.CueBossRebirth)
		b.state = &RebirthState{Clock: Clock{Limit: b.cfg.Cues.RebirthDuration}}

	case StateLasersGrow:
		b.recenter()
		inner := math.Max(b.body.W, b.body.H)/2 + b.cfg.Lasers.InnerPadding
		lasers := make([]entity.Laser, b.cfg.Lasers.Count)
		for i := range lasers {
			lasers[i].Angle = float64(i) * 2 * math.Pi / float64(len(lasers))
		}
		b.state = &GrowState{
			Remaining: b.cfg.Lasers.GrowDuration,
			Inner:     inner,
			Length:    inner,
			Lasers:    lasers,
		}

	case StateLasers:
		b.recenter()
		var lasers []entity.Laser
		if g, ok := prev.(*GrowState); ok {
			lasers = g.Lasers
		}
		b.state = &LaserState{
			Remaining: b.cfg.Lasers.Duration,
			Inner:     math.Max(b.body.W, b.body.H)/2 + b.cfg.Lasers.InnerPadding,
			Length:    b.cfg.Lasers.MaxLength,
			Lasers:    lasers,
		}

	case StatePlayerLose:
		b.cue(entity.CuePlayerLose)
		b.state = &LoseState{FollowupIn: b.cfg.Cues.PlayerLoseFollowup, Pending: true}

	case StateDeadFinal:
		b.body.HP = 0
		b.body.Alive = false
		b.clearShots()
		cx, cy := b.body.Center()
		b.emit(entity.KillEvent{ID: b.id, Kind: entity.KindBoss, X: cx, Y: cy})
		b.state = &FinalState{}
	}
}

// tickRebirthAudio lets the phase-two music start only after the rebirth
// cue has finished playing, even though phase two starts earlier
func (b *Boss) tickRebirthAudio() {
	if !b.stage2Pending {
		return
	}
	if b.rebirthAudio > 0 {
		b.rebirthAudio--
	}
	if b.rebirthAudio <= 0 && b.Phase == 2 {
		b.stage2Pending = false
		b.cue(entity.CueStage2Music)
	}
}

func (b *Boss) clearShots() {
	for i := range b.Shots {
		b.Shots[i] = nil
	}
	b.Shots = b.Shots[:0]
}

// centerOrigin returns the top-left corner that centers the boss in the arena
func (b *Boss) centerOrigin() (float64, float64) {
	cx, cy := b.arena.Center()
	return cx - b.body.W/2, cy - b.body.H/2
}

func (b *Boss) recenter() {
	b.body.X, b.body.Y = b.centerOrigin()
}

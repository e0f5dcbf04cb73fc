package boss

import (
	"math/rand"

	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// constRand returns v (mod n) from every Intn call
type constRand struct{ v int }

func (r constRand) Intn(n int) int    { return r.v % n }
func (r constRand) Float64() float64 { return 0.5 }

func testArena() entity.Arena {
	return entity.Arena{Width: 1600, Height: 1200, Margin: 50}
}

func newTestBoss() *Boss {
	b := NewBoss(1, config.Default().Boss, testArena())
	b.events = nil
	return b
}

// farPlayer stands in the top-left corner, away from the boss and its first volleys
func farPlayer() *entity.Player {
	p := entity.NewPlayer(testArena(), 48, 48, 6, 240)
	p.X, p.Y = 20, 20
	return p
}

// centerPlayer shares its center with a centered boss
func centerPlayer() *entity.Player {
	return entity.NewPlayer(testArena(), 48, 48, 6, 240)
}

func newTick(p *entity.Player, rng entity.Rand, bullets ...*entity.Bullet) *entity.Tick {
	return &entity.Tick{Player: p, Bullets: bullets, Arena: testArena(), Rand: rng}
}

// force jumps straight into state id as if coming from a phase-one fan.
// Phase-two states also switch the boss to phase two.
func force(b *Boss, id StateID, rng entity.Rand) {
	switch id {
	case StateP2Fan, StateP2Rest, StateLasersGrow, StateLasers:
		b.Phase = 2
		b.body.MaxHP = b.cfg.Phase2HP()
		b.body.HP = b.body.MaxHP
	}
	b.recenter()
	b.enter(id, &FanState{Phase: b.Phase}, rng)
	b.events = nil
}

// bulletInto returns a bullet sitting at the boss center
func bulletInto(b *Boss, damage int, piercing bool) *entity.Bullet {
	cx, cy := b.body.Center()
	return &entity.Bullet{X: cx, Y: cy, DX: 1, Damage: damage, Active: true, Piercing: piercing}
}

// run advances the boss n ticks and collects every event
func run(b *Boss, p *entity.Player, rng entity.Rand, n int) []entity.Event {
	var events []entity.Event
	for i := 0; i < n; i++ {
		events = append(events, b.Update(newTick(p, rng))...)
	}
	return events
}

func cues(events []entity.Event) []entity.Cue {
	var out []entity.Cue
	for _, e := range events {
		if c, ok := e.(entity.CueEvent); ok {
			out = append(out, c.Cue)
		}
	}
	return out
}

func hits(events []entity.Event) []entity.PlayerHitEvent {
	var out []entity.PlayerHitEvent
	for _, e := range events {
		if h, ok := e.(entity.PlayerHitEvent); ok {
			out = append(out, h)
		}
	}
	return out
}

package enemy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// runMelee advances m for n ticks and returns every event it emitted
func runMelee(m *Melee, p *entity.Player, n int) []entity.Event {
	var events []entity.Event
	for i := 0; i < n; i++ {
		events = append(events, m.Update(newTick(p))...)
	}
	return events
}

func TestMelee_AttackCycle(t *testing.T) {
	cfg := config.Default().Enemies.Melee
	m := NewMelee(1, 786, 576, cfg)
	p := newTestPlayer()

	events := runMelee(m, p, 1)
	require.Equal(t, MeleeTelegraph, m.State)
	assert.Contains(t, events, entity.Event(entity.CueEvent{Cue: entity.CueTelegraph}))

	// Telegraph lasts 30 ticks
	runMelee(m, p, 30)
	require.Equal(t, MeleeAttack, m.State)
	assert.Equal(t, 0, m.AttackFrame)

	// The swing lands on the second frame, 6 ticks in
	runMelee(m, p, 5)
	assert.Equal(t, 6, p.Hearts)
	events = runMelee(m, p, 1)
	assert.Equal(t, 1, m.AttackFrame)
	assert.Equal(t, 5, p.Hearts)
	hits := eventsOf[entity.PlayerHitEvent](events)
	require.Len(t, hits, 1)
	assert.Equal(t, entity.OutcomeDamaged, hits[0].Outcome)
	assert.InDelta(t, cfg.Knockback, math.Hypot(p.KnockbackDX, p.KnockbackDY), 1e-9)

	// Only one hit per swing even once the cooldown is over
	p.DamageCooldown = 0
	runMelee(m, p, 11)
	assert.Equal(t, 5, p.Hearts)
	require.Equal(t, MeleeAttack, m.State)

	runMelee(m, p, 1)
	require.Equal(t, MeleeRecover, m.State)

	runMelee(m, p, cfg.RecoverDuration-1)
	assert.Equal(t, MeleeRecover, m.State)
	runMelee(m, p, 1)
	assert.Equal(t, MeleeChase, m.State)
}

func TestMelee_ParryDuringTelegraph(t *testing.T) {
	cfg := config.Default().Enemies.Melee
	cfg.BlockedRecoverDuration = 90
	m := NewMelee(1, 786, 576, cfg)
	p := newTestPlayer()
	startX := p.X

	runMelee(m, p, 1)
	require.Equal(t, MeleeTelegraph, m.State)

	p.Blocking = true
	events := runMelee(m, p, 1)
	assert.Equal(t, startX+cfg.Backstep, p.X, "facing left, the player steps right")
	assert.Contains(t, events, entity.Event(entity.CueEvent{Cue: entity.CueBlock}))

	// Holding the block for the rest of the swing does not push again
	runMelee(m, p, 47)
	require.Equal(t, MeleeRecover, m.State)
	assert.Equal(t, startX+cfg.Backstep, p.X)
	assert.Equal(t, 6, p.Hearts)

	runMelee(m, p, 89)
	assert.Equal(t, MeleeRecover, m.State)
	runMelee(m, p, 1)
	assert.Equal(t, MeleeChase, m.State)
}

func TestMelee_LateBlockDuringAttack(t *testing.T) {
	cfg := config.Default().Enemies.Melee
	m := NewMelee(1, 786, 576, cfg)
	p := newTestPlayer()
	p.Facing = entity.FacingRight
	startX := p.X

	runMelee(m, p, 33)
	require.Equal(t, MeleeAttack, m.State)

	p.Blocking = true
	runMelee(m, p, 1)
	assert.Equal(t, startX-cfg.Backstep, p.X)

	runMelee(m, p, 20)
	assert.Equal(t, 6, p.Hearts)
}

func TestMelee_DeadStopsUpdating(t *testing.T) {
	m := NewMelee(3, 100, 100, config.Default().Enemies.Melee)
	p := newTestPlayer()

	events := m.Update(newTick(p, bulletAt(130, 130, 500, false)))
	require.False(t, m.Body().Alive)
	drops := eventsOf[entity.DropEvent](events)
	require.Len(t, drops, 1)
	assert.GreaterOrEqual(t, drops[0].Value, 3)
	assert.LessOrEqual(t, drops[0].Value, 5)

	x, y := m.Body().X, m.Body().Y
	assert.Nil(t, m.Update(newTick(p)))
	assert.Equal(t, x, m.Body().X)
	assert.Equal(t, y, m.Body().Y)
}

func TestMeleeState_String(t *testing.T) {
	assert.Equal(t, "Telegraph", MeleeTelegraph.String())
	assert.Equal(t, "Unknown", MeleeState(9).String())
}

package enemy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

func TestSlime_ChasesPlayer(t *testing.T) {
	s := NewSlime(1, 176, 576, config.Default().Enemies.Slime)
	p := newTestPlayer()

	s.Update(newTick(p))

	assert.InDelta(t, 176.5, s.Body().X, 1e-9)
	assert.InDelta(t, 576.0, s.Body().Y, 1e-9)
	assert.True(t, s.FacesRight)
}

func TestSlime_ContactDamage(t *testing.T) {
	tests := []struct {
		name       string
		y          float64
		blocking   bool
		wantHearts int
		wantEvent  entity.DamageOutcome
		wantEvents int
	}{
		{"lower body overlaps", 560, false, 5, entity.OutcomeDamaged, 1},
		{"blocked", 560, true, 6, entity.OutcomeBlocked, 2},
		{"only upper body overlaps", 610, false, 6, entity.OutcomeIgnored, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlime(1, 776, tt.y, config.Default().Enemies.Slime)
			p := newTestPlayer()
			p.Blocking = tt.blocking

			events := s.Update(newTick(p))

			assert.Equal(t, tt.wantHearts, p.Hearts)
			require.Len(t, events, tt.wantEvents)
			if tt.wantEvents > 0 {
				hit, ok := events[0].(entity.PlayerHitEvent)
				require.True(t, ok)
				assert.Equal(t, entity.KindSlime, hit.Source)
				assert.Equal(t, tt.wantEvent, hit.Outcome)
			}
		})
	}
}

func TestSlime_KnockbackAwayFromSlime(t *testing.T) {
	// Slime sits left of and slightly below the player
	s := NewSlime(1, 740, 575, config.Default().Enemies.Slime)
	p := newTestPlayer()

	s.Update(newTick(p))

	require.Equal(t, 5, p.Hearts)
	assert.Greater(t, p.KnockbackDX, 0.0)
	assert.Equal(t, 8, p.KnockbackTimer)
	assert.Equal(t, 240, p.DamageCooldown)
}

func TestSlime_SlowedAfterHit(t *testing.T) {
	cfg := config.Default().Enemies.Slime
	s := NewSlime(1, 100, 576, cfg)
	p := newTestPlayer()

	s.Update(newTick(p, bulletAt(132, 594, 10, false)))
	require.Equal(t, 90, s.Body().HP)
	require.Equal(t, cfg.SlowDuration, s.Body().SlowTimer)

	x := s.Body().X
	s.Update(newTick(p))
	assert.InDelta(t, x+0.25, s.Body().X, 1e-9)
	assert.Equal(t, cfg.SlowDuration-1, s.Body().SlowTimer)
}

func TestSlime_Death(t *testing.T) {
	s := NewSlime(9, 100, 100, config.Default().Enemies.Slime)
	p := newTestPlayer()

	events := s.Update(newTick(p, bulletAt(130, 118, 100, false)))

	assert.False(t, s.Body().Alive)
	assert.Equal(t, 0, s.Body().DisplayHP())

	kills := eventsOf[entity.KillEvent](events)
	require.Len(t, kills, 1)
	assert.Equal(t, entity.EntityID(9), kills[0].ID)
	assert.Equal(t, entity.KindSlime, kills[0].Kind)

	drops := eventsOf[entity.DropEvent](events)
	require.Len(t, drops, 1)
	assert.GreaterOrEqual(t, drops[0].Value, 2)
	assert.LessOrEqual(t, drops[0].Value, 4)
	cx, cy := s.Body().Center()
	assert.Equal(t, cx, drops[0].X)
	assert.Equal(t, cy, drops[0].Y)

	// A dead slime stays put and reports nothing
	x := s.Body().X
	assert.Nil(t, s.Update(newTick(p, bulletAt(130, 118, 100, false))))
	assert.Equal(t, x, s.Body().X)
}

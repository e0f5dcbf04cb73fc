// Package enemy implements the wave enemies: the chasing slime, the melee
// hilichurl and the archer hilichurl.
package enemy

import (
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// takeBullets applies every active bullet whose path crosses the body's full
// box this tick. Non-piercing bullets are consumed. Processing stops at the
// killing hit so a corpse is never hit twice.
func takeBullets(b *entity.Body, bullets []*entity.Bullet) (hit, killed bool) {
	rect := b.Rect()
	for _, bl := range bullets {
		if !bl.Hits(rect) {
			continue
		}
		hit = true
		depleted := b.TakeDamage(bl.Damage)
		bl.Consume()
		if depleted {
			b.Alive = false
			return hit, true
		}
	}
	return hit, false
}

// defeat returns the events every enemy emits once when it dies
func defeat(id entity.EntityID, kind entity.Kind, b *entity.Body, base config.EnemyBase, rng entity.Rand) []entity.Event {
	cx, cy := b.Center()
	return []entity.Event{
		entity.KillEvent{ID: id, Kind: kind, X: cx, Y: cy},
		entity.DropEvent{X: cx, Y: cy, Value: entity.RandRange(rng, base.CoinMin, base.CoinMax)},
	}
}

// hitEvents reports a damage attempt to the dispatcher. Ignored attempts are
// dropped; blocked ones also request the block cue.
func hitEvents(kind entity.Kind, outcome entity.DamageOutcome) []entity.Event {
	switch outcome {
	case entity.OutcomeIgnored:
		return nil
	case entity.OutcomeBlocked:
		return []entity.Event{
			entity.PlayerHitEvent{Source: kind, Outcome: outcome},
			entity.CueEvent{Cue: entity.CueBlock},
		}
	default:
		return []entity.Event{entity.PlayerHitEvent{Source: kind, Outcome: outcome}}
	}
}

// New creates an enemy of the named kind with its top-left corner at (x, y).
// ok is false for unknown kinds.
func New(kind string, id entity.EntityID, x, y float64, cfg config.EnemiesConfig) (entity.Actor, bool) {
	switch kind {
	case "slime":
		return NewSlime(id, x, y, cfg.Slime), true
	case "melee":
		return NewMelee(id, x, y, cfg.Melee), true
	case "archer":
		return NewArcher(id, x, y, cfg.Archer), true
	default:
		return nil, false
	}
}

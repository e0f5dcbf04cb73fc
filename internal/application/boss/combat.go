package boss

import (
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/domain/geom"
)

// hurtPlayer runs the shared damage contract and reports the outcome.
// The boss never pushes a blocking player back; a block only flashes.
func (b *Boss) hurtPlayer(p *entity.Player, src entity.DamageSource) {
	src.Block = entity.BlockFlash
	outcome := p.ApplyDamage(src)

	switch outcome {
	case entity.OutcomeIgnored:
		return
	case entity.OutcomeBlocked:
		b.cue(entity.CueBlock)
	case entity.OutcomeDamaged:
		b.cue(entity.CueBossHitPlayer)
	}
	b.emit(entity.PlayerHitEvent{Source: entity.KindBoss, Outcome: outcome})
}

// contact hurts a player touching the boss body, at most once per cooldown
func (b *Boss) contact(p *entity.Player) {
	if b.StateID().harmless() {
		return
	}
	if b.contactCooldown > 0 {
		b.contactCooldown--
		return
	}
	if !geom.RectsOverlap(b.body.Rect(), p.Rect()) {
		return
	}

	cx, cy := b.body.Center()
	b.hurtPlayer(p, entity.DamageSource{
		X:              cx,
		Y:              cy,
		Knockback:      b.cfg.Contact.Knockback,
		KnockbackTicks: b.cfg.Contact.KnockbackTicks,
	})
	b.contactCooldown = b.cfg.Contact.Cooldown
}

// intake applies player bullets. Thresholds are checked after every hit in a
// fixed order and the first one that fires ends processing for this tick.
func (b *Boss) intake(bullets []*entity.Bullet, rng entity.Rand) {
	if b.StateID().Invulnerable() {
		return
	}

	rect := b.body.Rect()
	for _, bl := range bullets {
		if !bl.Hits(rect) {
			continue
		}
		b.body.HP -= bl.Damage
		bl.Consume()

		if t, ok := b.threshold(); ok && b.fire(t, rng) {
			return
		}
	}
}

// threshold returns the highest-priority trigger the current hp qualifies for
func (b *Boss) threshold() (Trigger, bool) {
	hp := b.body.HP
	ceiling := b.cfg.Phase1HP

	switch {
	case b.Phase == 1 && !b.halfPlayed && hp <= ceiling/2:
		return TriggerHalfHP, true
	case b.Phase == 1 && !b.lowPlayed && hp <= int(float64(ceiling)*b.cfg.Cues.LowRatio):
		return TriggerLowHP, true
	case b.Phase == 1 && hp <= 0 && !b.phase1Finished:
		return TriggerPhase1Down, true
	case b.Phase == 2 && hp <= 0:
		return TriggerPhase2Down, true
	}
	return 0, false
}

// updateShots advances the fan shots and resolves hits on the player
func (b *Boss) updateShots(p *entity.Player) {
	harmful := !b.StateID().harmless()

	for _, s := range b.Shots {
		if !s.Active {
			continue
		}
		s.Advance()
		if !s.Active {
			continue
		}
		if b.arena.Escaped(s.X, s.Y) {
			s.Deactivate()
			continue
		}
		if harmful && s.TouchesPlayer(p) {
			b.hurtPlayer(p, entity.DamageSource{X: s.X, Y: s.Y})
			s.Deactivate()
		}
	}
	b.Shots = entity.CompactShots(b.Shots)
}

// laserDamage hurts the player if any beam covers its center. At most one
// beam counts per tick.
func (b *Boss) laserDamage(p *entity.Player, lasers []entity.Laser, inner, length float64) {
	cx, cy := b.body.Center()
	px, py := p.Center()

	for _, l := range lasers {
		if l.Reaches(cx, cy, px, py, inner, length, b.cfg.Lasers.HalfWidth) {
			b.hurtPlayer(p, entity.DamageSource{X: cx, Y: cy})
			return
		}
	}
}

package boss

import (
	"math"

	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/domain/geom"
)

// step runs the behavior of the active state
func (b *Boss) step(t *entity.Tick) {
	switch s := b.state.(type) {
	case *IntroState:
		b.stepIntro(s, t.Rand)

	case *FanState:
		b.reposition(t.Rand)
		if s.Timer < s.Limit && s.Timer%b.cfg.Fan.Interval == 0 {
			b.fireFan(s)
		}
		if s.Tick() {
			if s.Phase == 2 && t.Rand.Intn(100) < b.cfg.Fan.LaserChance {
				b.fire(TriggerLaserRoll, t.Rand)
			} else {
				b.fire(TriggerExpired, t.Rand)
			}
		}

	case *RestState:
		b.homeToward(t.Player)
		if s.Tick() {
			b.fire(TriggerExpired, t.Rand)
		}

	case *CueState:
		if s.Tick() {
			b.fire(TriggerExpired, t.Rand)
		}

	case *DeathState:
		if s.Tick() {
			b.fire(TriggerExpired, t.Rand)
		}

	case *RebirthState:
		if s.Tick() {
			b.fire(TriggerExpired, t.Rand)
		}

	case *GrowState:
		b.smoothRecenter()
		growth := (b.cfg.Lasers.MaxLength - s.Inner) / float64(b.cfg.Lasers.GrowDuration)
		s.Length = math.Min(b.cfg.Lasers.MaxLength, s.Length+growth)
		b.laserDamage(t.Player, s.Lasers, s.Inner, s.Length)
		s.Remaining--
		if s.Remaining <= 0 {
			b.fire(TriggerExpired, t.Rand)
		}

	case *LaserState:
		s.Length = b.cfg.Lasers.MaxLength
		b.smoothRecenter()
		for i := range s.Lasers {
			s.Lasers[i].Angle += b.cfg.Lasers.RotateSpeed
		}
		b.laserDamage(t.Player, s.Lasers, s.Inner, s.Length)
		s.Remaining--
		if s.Remaining <= 0 {
			b.fire(TriggerExpired, t.Rand)
		}

	case *LoseState:
		if s.Pending {
			s.FollowupIn--
			if s.FollowupIn <= 0 {
				s.Pending = false
				b.cue(entity.CuePlayerLoseFollowup)
			}
		}
	}
}

// stepIntro glides each axis toward the center independently and snaps
// within one unit. The hold starts on arrival.
func (b *Boss) stepIntro(s *IntroState, rng entity.Rand) {
	tx, ty := b.centerOrigin()
	speed := b.cfg.Intro.Speed

	if math.Abs(b.body.X-tx) > 1 {
		b.body.X += math.Copysign(speed, tx-b.body.X)
	}
	if math.Abs(b.body.Y-ty) > 1 {
		b.body.Y += math.Copysign(speed, ty-b.body.Y)
	}

	if math.Abs(b.body.X-tx) > 1 || math.Abs(b.body.Y-ty) > 1 {
		return
	}
	b.body.X, b.body.Y = tx, ty

	if s.Hold == 0 {
		b.cue(entity.CueBossIntro)
	}
	s.Hold++
	if s.Hold >= b.cfg.Intro.Hold {
		b.fire(TriggerExpired, rng)
	}
}

// reposition jumps by a random offset whenever the move timer runs out
func (b *Boss) reposition(rng entity.Rand) {
	if b.moveTimer > 0 {
		b.moveTimer--
		return
	}

	off := int(b.cfg.Reposition.Offset)
	dx := float64(entity.RandRange(rng, -off, off))
	dy := float64(entity.RandRange(rng, -off, off))
	b.body.X = geom.Clamp(b.body.X+dx, 0, b.arena.Width-b.body.W)
	b.body.Y = geom.Clamp(b.body.Y+dy, 0, b.arena.Height-b.body.H)
	b.moveTimer = entity.RandRange(rng, b.cfg.Reposition.MinDelay, b.cfg.Reposition.MaxDelay)
}

// fireFan spawns one radial volley from the boss center and advances the
// base angle so volleys do not stack
func (b *Boss) fireFan(s *FanState) {
	speed := b.cfg.Fan.Phase1Speed
	if s.Phase == 2 {
		speed = b.cfg.Fan.Phase2Speed
	}

	cx, cy := b.body.Center()
	n := b.cfg.Fan.Count
	for i := 0; i < n; i++ {
		angle := s.Angle + float64(i)*2*math.Pi/float64(n)
		b.Shots = append(b.Shots, entity.NewShot(cx, cy, angle, speed, b.cfg.Fan.ShotLife))
	}
	s.Angle += geom.DegToRad(b.cfg.Fan.AngleStepDeg)
}

// homeToward moves the boss center toward the player's corner at base speed
func (b *Boss) homeToward(p *entity.Player) {
	tx := p.X - b.body.W/2
	ty := p.Y - b.body.H/2
	nx, ny, dist, ok := geom.Normalize(tx-b.body.X, ty-b.body.Y)
	if !ok || dist <= 1 {
		return
	}
	b.body.X += nx * b.cfg.BaseSpeed
	b.body.Y += ny * b.cfg.BaseSpeed
}

// smoothRecenter closes a fixed fraction of the distance to the center
func (b *Boss) smoothRecenter() {
	tx, ty := b.centerOrigin()
	b.body.X += (tx - b.body.X) * b.cfg.Lasers.Recenter
	b.body.Y += (ty - b.body.Y) * b.cfg.Lasers.Recenter
}

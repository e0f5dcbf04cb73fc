package enemy

import (
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/domain/geom"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

const (
	slimeFrames     = 2
	slimeFrameTicks = 20
)

// Slime chases the player and hurts it with the lower part of its body.
// Each hit slows it for a while.
type Slime struct {
	id   entity.EntityID
	body entity.Body
	cfg  config.SlimeConfig

	FacesRight bool
	Frame      int
	frameTimer int
}

// NewSlime creates a new slime
func NewSlime(id entity.EntityID, x, y float64, cfg config.SlimeConfig) *Slime {
	body := entity.NewBody(x, y, cfg.Width, cfg.Height, cfg.HP)
	body.SlowFactor = cfg.SlowFactor
	return &Slime{id: id, body: body, cfg: cfg}
}

func (s *Slime) ID() entity.EntityID { return s.id }
func (s *Slime) Kind() entity.Kind   { return entity.KindSlime }
func (s *Slime) Body() *entity.Body  { return &s.body }

// HurtBox is the damaging lower part of the slime
func (s *Slime) HurtBox() geom.Rect {
	top := s.body.H * s.cfg.HitboxTop
	return geom.Rect{X: s.body.X, Y: s.body.Y + top, W: s.body.W, H: s.body.H - top}
}

// Update advances the slime by one tick
func (s *Slime) Update(t *entity.Tick) []entity.Event {
	if !s.body.Alive {
		return nil
	}
	p := t.Player

	s.frameTimer++
	if s.frameTimer >= slimeFrameTicks {
		s.Frame = (s.Frame + 1) % slimeFrames
		s.frameTimer = 0
	}

	s.body.MoveToward(p.X, p.Y, s.cfg.Speed*s.body.SpeedScale())
	if s.body.SlowTimer > 0 {
		s.body.SlowTimer--
	}
	s.FacesRight = p.X > s.body.X

	var events []entity.Event
	if p.Alive && geom.RectsOverlap(s.HurtBox(), p.Rect()) {
		cx, cy := s.body.Center()
		outcome := p.ApplyDamage(entity.DamageSource{
			X:              cx,
			Y:              cy,
			Knockback:      s.cfg.Knockback,
			KnockbackTicks: s.cfg.KnockbackTicks,
			Block:          entity.BlockAbsorb,
		})
		events = append(events, hitEvents(entity.KindSlime, outcome)...)
	}

	hit, killed := takeBullets(&s.body, t.Bullets)
	if hit {
		s.body.SlowTimer = s.cfg.SlowDuration
	}
	if killed {
		events = append(events, defeat(s.id, entity.KindSlime, &s.body, s.cfg.EnemyBase, t.Rand)...)
	}
	return events
}

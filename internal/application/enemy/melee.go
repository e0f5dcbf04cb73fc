package enemy

import (
	"math"

	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// MeleeState is the attack cycle of a melee hilichurl
type MeleeState int

const (
	MeleeChase MeleeState = iota
	MeleeTelegraph
	MeleeAttack
	MeleeRecover
)

// String returns the string representation of the state
func (s MeleeState) String() string {
	switch s {
	case MeleeChase:
		return "Chase"
	case MeleeTelegraph:
		return "Telegraph"
	case MeleeAttack:
		return "Attack"
	case MeleeRecover:
		return "Recover"
	default:
		return "Unknown"
	}
}

// Melee walks up to the player, telegraphs, swings once and recovers.
// Blocking at any point from the telegraph to the hit frame parries the swing.
type Melee struct {
	id   entity.EntityID
	body entity.Body
	cfg  config.MeleeConfig

	State       MeleeState
	AttackFrame int
	FacesRight  bool

	timer      int // telegraph or recover countdown
	frameTimer int
	blocked    bool // the current swing was parried
	resolved   bool // the current swing has been spent
}

// NewMelee creates a new melee hilichurl
func NewMelee(id entity.EntityID, x, y float64, cfg config.MeleeConfig) *Melee {
	return &Melee{
		id:   id,
		body: entity.NewBody(x, y, cfg.Width, cfg.Height, cfg.HP),
		cfg:  cfg,
	}
}

func (m *Melee) ID() entity.EntityID { return m.id }
func (m *Melee) Kind() entity.Kind   { return entity.KindMelee }
func (m *Melee) Body() *entity.Body  { return &m.body }

// inReach compares top-left corners, with the player's box widened by half
// the hilichurl's size
func (m *Melee) inReach(p *entity.Player) bool {
	return math.Abs(p.X-m.body.X) < p.W+m.body.W/2 &&
		math.Abs(p.Y-m.body.Y) < p.H+m.body.H/2
}

// parry lets a blocking player push back and spends the swing
func (m *Melee) parry(p *entity.Player) []entity.Event {
	outcome := p.ApplyDamage(entity.DamageSource{
		Block:    entity.BlockBackstep,
		Backstep: m.cfg.Backstep,
	})
	m.blocked = true
	m.resolved = true
	return hitEvents(entity.KindMelee, outcome)
}

// Update advances the melee hilichurl by one tick
func (m *Melee) Update(t *entity.Tick) []entity.Event {
	if !m.body.Alive {
		return nil
	}
	p := t.Player
	m.FacesRight = p.X > m.body.X

	var events []entity.Event
	switch m.State {
	case MeleeChase:
		m.body.MoveToward(p.X, p.Y, m.cfg.Speed)
		if m.inReach(p) {
			m.State = MeleeTelegraph
			m.timer = m.cfg.TelegraphDuration
			events = append(events, entity.CueEvent{Cue: entity.CueTelegraph})
		}

	case MeleeTelegraph:
		m.timer--
		if p.Blocking && !m.blocked {
			events = append(events, m.parry(p)...)
		}
		if m.timer <= 0 {
			m.State = MeleeAttack
			m.AttackFrame = 0
			m.frameTimer = 0
			m.resolved = m.blocked
		}

	case MeleeAttack:
		m.frameTimer++
		if m.frameTimer >= m.cfg.AttackFrameTicks {
			m.frameTimer = 0
			m.AttackFrame++
		}

		if !m.resolved && p.Blocking {
			events = append(events, m.parry(p)...)
		}

		if m.AttackFrame == m.cfg.HitFrame && !m.resolved && m.inReach(p) {
			cx, cy := m.body.Center()
			outcome := p.ApplyDamage(entity.DamageSource{
				X:              cx,
				Y:              cy,
				Knockback:      m.cfg.Knockback,
				KnockbackTicks: m.cfg.KnockbackTicks,
				Block:          entity.BlockBackstep,
				Backstep:       m.cfg.Backstep,
			})
			if outcome == entity.OutcomeBlocked {
				m.blocked = true
			}
			m.resolved = true
			events = append(events, hitEvents(entity.KindMelee, outcome)...)
		}

		if m.AttackFrame >= m.cfg.AttackFrames {
			m.State = MeleeRecover
			m.timer = m.cfg.RecoverDuration
			if m.blocked {
				m.timer = m.cfg.BlockedRecoverDuration
			}
			m.blocked = false
		}

	case MeleeRecover:
		m.timer--
		if m.timer <= 0 {
			m.State = MeleeChase
		}
	}

	if _, killed := takeBullets(&m.body, t.Bullets); killed {
		events = append(events, defeat(m.id, entity.KindMelee, &m.body, m.cfg.EnemyBase, t.Rand)...)
	}
	return events
}

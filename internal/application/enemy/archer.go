package enemy

import (
	"math"

	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/domain/geom"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// Archer keeps its distance from the player and shoots slow, inaccurate
// arrows after each reload.
type Archer struct {
	id   entity.EntityID
	body entity.Body
	cfg  config.ArcherConfig

	Loaded     bool
	FacesRight bool
	Arrows     []*entity.Shot

	reloadTimer  int
	displayTimer int
}

// NewArcher creates a new archer hilichurl, unloaded
func NewArcher(id entity.EntityID, x, y float64, cfg config.ArcherConfig) *Archer {
	return &Archer{
		id:          id,
		body:        entity.NewBody(x, y, cfg.Width, cfg.Height, cfg.HP),
		cfg:         cfg,
		Arrows:      make([]*entity.Shot, 0, 4),
		reloadTimer: cfg.ReloadTime,
	}
}

func (a *Archer) ID() entity.EntityID { return a.id }
func (a *Archer) Kind() entity.Kind   { return entity.KindArcher }
func (a *Archer) Body() *entity.Body  { return &a.body }

// Update advances the archer and its arrows by one tick
func (a *Archer) Update(t *entity.Tick) []entity.Event {
	if !a.body.Alive {
		return nil
	}
	p := t.Player
	a.FacesRight = p.X > a.body.X

	nx, ny, dist, _ := geom.Normalize(p.X-a.body.X, p.Y-a.body.Y)
	switch {
	case dist > a.cfg.PreferDistance+20:
		a.body.X += nx * a.cfg.Speed
		a.body.Y += ny * a.cfg.Speed
	case dist < a.cfg.MinDistance:
		a.body.X -= nx * a.cfg.Speed
		a.body.Y -= ny * a.cfg.Speed
	}

	a.reload(nx, ny, t.Rand)

	var events []entity.Event
	for _, arrow := range a.Arrows {
		if !arrow.Active {
			continue
		}
		arrow.Advance()
		if t.Arena.Escaped(arrow.X, arrow.Y) {
			arrow.Deactivate()
			continue
		}
		if p.Alive && arrow.TouchesPlayer(p) {
			outcome := p.ApplyDamage(entity.DamageSource{
				DirX:           arrow.VX,
				DirY:           arrow.VY,
				Knockback:      a.cfg.Knockback,
				KnockbackTicks: a.cfg.KnockbackTicks,
				Block:          entity.BlockBackstep,
				Backstep:       a.cfg.Backstep,
			})
			arrow.Deactivate()
			events = append(events, hitEvents(entity.KindArcher, outcome)...)
		}
	}
	a.Arrows = entity.CompactShots(a.Arrows)

	if _, killed := takeBullets(&a.body, t.Bullets); killed {
		events = append(events, defeat(a.id, entity.KindArcher, &a.body, a.cfg.EnemyBase, t.Rand)...)
	}
	return events
}

// reload runs the unloaded -> loaded -> fire cycle. (nx, ny) points at the player.
func (a *Archer) reload(nx, ny float64, rng entity.Rand) {
	if !a.Loaded {
		a.reloadTimer--
		if a.reloadTimer <= 0 {
			a.Loaded = true
			a.displayTimer = a.cfg.LoadedDisplayTime
		}
		return
	}

	if a.displayTimer > 0 {
		a.displayTimer--
		return
	}

	cx, cy := a.body.Center()
	spread := (rng.Float64()*2 - 1) * a.cfg.SpreadDeg
	angle := math.Atan2(ny, nx) + geom.DegToRad(spread)
	a.Arrows = append(a.Arrows, entity.NewShot(cx, cy, angle, a.cfg.ArrowSpeed, -1))

	a.Loaded = false
	a.reloadTimer = a.cfg.ReloadTime
}

package entity

import "github.com/younwookim/arena/internal/domain/geom"

// Player is the player-controlled combatant. Every damage source in the
// arena reads and mutates it in place during a tick.
type Player struct {
	X, Y   float64
	W, H   float64
	Speed  float64
	Facing Facing
	Alive  bool

	Hearts    int
	MaxHearts int

	DamageCooldown    int
	DamageCooldownMax int

	Blocking      bool
	BlockTimer    int
	BlockDuration int

	KnockbackDX    float64
	KnockbackDY    float64
	KnockbackTimer int

	Dashing   bool
	DashTimer int
	DashDX    float64
	DashDY    float64

	// JustHit is raised by a damaging hit and cleared by whoever consumes it
	JustHit bool

	Money int
}

// NewPlayer creates a player centered in the arena
func NewPlayer(arena Arena, w, h float64, hearts, cooldownMax int) *Player {
	return &Player{
		X:                 arena.Width/2 - w/2,
		Y:                 arena.Height/2 - h/2,
		W:                 w,
		H:                 h,
		Facing:            FacingLeft,
		Alive:             true,
		Hearts:            hearts,
		MaxHearts:         hearts,
		DamageCooldownMax: cooldownMax,
	}
}

// Rect returns the player's full box
func (p *Player) Rect() geom.Rect {
	return geom.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Center returns the center of the player's box
func (p *Player) Center() (float64, float64) {
	return p.X + p.W/2, p.Y + p.H/2
}

// IsInvincible returns true while the damage cooldown is running
func (p *Player) IsInvincible() bool {
	return p.DamageCooldown > 0
}

// TickCooldown decrements the damage cooldown by exactly one toward zero.
// It must be called once per simulation tick.
func (p *Player) TickCooldown() {
	if p.DamageCooldown > 0 {
		p.DamageCooldown--
	}
}

// Revive restores the player for a retry
func (p *Player) Revive() {
	p.Alive = true
	p.Hearts = p.MaxHearts
	p.DamageCooldown = 0
	p.Blocking = false
	p.BlockTimer = 0
	p.KnockbackDX, p.KnockbackDY, p.KnockbackTimer = 0, 0, 0
	p.Dashing = false
	p.DashTimer = 0
	p.JustHit = false
}

// BlockFeedback selects what a successful block does besides absorbing damage
type BlockFeedback int

const (
	// BlockAbsorb only prevents the health loss.
	BlockAbsorb BlockFeedback = iota
	// BlockBackstep pushes the player backwards, opposite to their facing.
	BlockBackstep
	// BlockFlash reports the block so a cue can be played.
	BlockFlash
)

// DamageSource describes one attempt to hurt the player
type DamageSource struct {
	// Origin of the hit. Knockback points from here to the player's center.
	X, Y float64

	// DirX/DirY override the knockback direction when non-zero (arrows push
	// along their flight path).
	DirX, DirY float64

	Knockback      float64
	KnockbackTicks int

	Block    BlockFeedback
	Backstep float64
}

// DamageOutcome is the result of ApplyDamage
type DamageOutcome int

const (
	// OutcomeIgnored means the player was in damage cooldown or already down.
	OutcomeIgnored DamageOutcome = iota
	OutcomeBlocked
	OutcomeDamaged
	OutcomeKilled
)

// String returns the string representation of the outcome
func (o DamageOutcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeBlocked:
		return "Blocked"
	case OutcomeDamaged:
		return "Damaged"
	case OutcomeKilled:
		return "Killed"
	default:
		return "Unknown"
	}
}

// Landed reports whether the hit cost the player a heart
func (o DamageOutcome) Landed() bool {
	return o == OutcomeDamaged || o == OutcomeKilled
}

// ApplyDamage is the single damage contract used by every enemy and the boss.
// A blocking player loses nothing. Otherwise, outside the damage cooldown,
// one heart is removed, the cooldown restarts, JustHit is raised and the
// knockback is set away from the source. Hearts reaching zero clears Alive.
func (p *Player) ApplyDamage(src DamageSource) DamageOutcome {
	if !p.Alive {
		return OutcomeIgnored
	}

	if p.Blocking {
		if src.Block == BlockBackstep {
			if p.Facing == FacingLeft {
				p.X += src.Backstep
			} else {
				p.X -= src.Backstep
			}
		}
		return OutcomeBlocked
	}

	if p.DamageCooldown > 0 {
		return OutcomeIgnored
	}

	p.Hearts--
	if p.Hearts < 0 {
		p.Hearts = 0
	}
	p.DamageCooldown = p.DamageCooldownMax
	p.JustHit = true

	if src.Knockback > 0 {
		p.applyKnockback(src)
	}

	if p.Hearts == 0 {
		p.Alive = false
		return OutcomeKilled
	}
	return OutcomeDamaged
}

func (p *Player) applyKnockback(src DamageSource) {
	dx, dy := src.DirX, src.DirY
	if dx == 0 && dy == 0 {
		cx, cy := p.Center()
		dx, dy = cx-src.X, cy-src.Y
	}

	nx, ny, _, ok := geom.Normalize(dx, dy)
	if !ok {
		return
	}
	p.KnockbackDX = nx * src.Knockback
	p.KnockbackDY = ny * src.Knockback
	p.KnockbackTimer = src.KnockbackTicks
}

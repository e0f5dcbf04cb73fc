package entity

import (
	"math"

	"github.com/younwookim/arena/internal/domain/geom"
)

// Bullet is a player projectile. DX/DY is this tick's displacement, so the
// previous position is always (X-DX, Y-DY).
type Bullet struct {
	X, Y     float64
	DX, DY   float64
	Damage   int
	Active   bool
	Piercing bool
}

// NewBullet creates a bullet aimed at angle (radians) with the given speed
func NewBullet(x, y, angle, speed float64, damage int, piercing bool) *Bullet {
	return &Bullet{
		X:        x,
		Y:        y,
		DX:       math.Cos(angle) * speed,
		DY:       math.Sin(angle) * speed,
		Damage:   damage,
		Active:   true,
		Piercing: piercing,
	}
}

// Advance moves the bullet by one tick
func (b *Bullet) Advance() {
	b.X += b.DX
	b.Y += b.DY
}

// Hits runs the swept-segment test against r
func (b *Bullet) Hits(r geom.Rect) bool {
	return b.Active && geom.SweptHit(b.X, b.Y, b.DX, b.DY, r)
}

// Consume deactivates the bullet after a confirmed hit unless it pierces
func (b *Bullet) Consume() {
	if !b.Piercing {
		b.Active = false
	}
}

// Rotation returns the flight angle in radians
func (b *Bullet) Rotation() float64 {
	return math.Atan2(b.DY, b.DX)
}

// Shot is a hostile point projectile (boss fan bullets, archer arrows).
// Life < 0 means the shot lives until it leaves the arena or hits.
type Shot struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Active bool
}

// NewShot creates a shot flying at angle (radians)
func NewShot(x, y, angle, speed float64, life int) *Shot {
	return &Shot{
		X:      x,
		Y:      y,
		VX:     math.Cos(angle) * speed,
		VY:     math.Sin(angle) * speed,
		Life:   life,
		Active: true,
	}
}

// Advance moves the shot and burns one tick of finite lifetime
func (s *Shot) Advance() {
	s.X += s.VX
	s.Y += s.VY
	if s.Life > 0 {
		s.Life--
		if s.Life == 0 {
			s.Active = false
		}
	}
}

// Deactivate removes the shot from play
func (s *Shot) Deactivate() {
	s.Active = false
}

// Rotation returns the flight angle in radians
func (s *Shot) Rotation() float64 {
	return math.Atan2(s.VY, s.VX)
}

// TouchesPlayer reports whether the shot point is within the player's half
// extents of the player's center.
func (s *Shot) TouchesPlayer(p *Player) bool {
	cx, cy := p.Center()
	return math.Abs(cx-s.X) < p.W/2 && math.Abs(cy-s.Y) < p.H/2
}

// CompactShots drops inactive shots, reusing the backing array
func CompactShots(shots []*Shot) []*Shot {
	alive := shots[:0]
	for _, s := range shots {
		if s.Active {
			alive = append(alive, s)
		}
	}
	for i := len(alive); i < len(shots); i++ {
		shots[i] = nil
	}
	return alive
}

// CompactBullets drops inactive bullets, reusing the backing array
func CompactBullets(bullets []*Bullet) []*Bullet {
	alive := bullets[:0]
	for _, b := range bullets {
		if b.Active {
			alive = append(alive, b)
		}
	}
	for i := len(alive); i < len(bullets); i++ {
		bullets[i] = nil
	}
	return alive
}

// Laser is a beam anchored at the boss center
type Laser struct {
	Angle float64
}

// Direction returns the unit vector of the beam
func (l Laser) Direction() (float64, float64) {
	return math.Cos(l.Angle), math.Sin(l.Angle)
}

// Reaches reports whether point (px,py) is inside the beam cast from (cx,cy).
// The projection onto the beam must lie in (inner, length] and the
// perpendicular distance must be under halfWidth.
func (l Laser) Reaches(cx, cy, px, py, inner, length, halfWidth float64) bool {
	dirX, dirY := l.Direction()
	relX, relY := px-cx, py-cy

	proj := relX*dirX + relY*dirY
	if proj <= inner || proj > length {
		return false
	}

	// Normal of the beam is (sin, -cos)
	dist := math.Abs(relX*dirY - relY*dirX)
	return dist < halfWidth
}

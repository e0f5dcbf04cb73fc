package entity

import "github.com/younwookim/arena/internal/domain/geom"

// Body holds the attributes every combatant shares
type Body struct {
	X, Y  float64
	W, H  float64
	HP    int
	MaxHP int
	Alive bool

	// Slow effect: while SlowTimer > 0 movement is scaled by SlowFactor
	SlowTimer  int
	SlowFactor float64
}

// NewBody creates a live body at the given position
func NewBody(x, y, w, h float64, hp int) Body {
	return Body{
		X:          x,
		Y:          y,
		W:          w,
		H:          h,
		HP:         hp,
		MaxHP:      hp,
		Alive:      true,
		SlowFactor: 1,
	}
}

// Rect returns the full bounding box
func (b *Body) Rect() geom.Rect {
	return geom.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Center returns the center of the bounding box
func (b *Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// DisplayHP returns hp clamped to zero. Intermediate arithmetic may go negative.
func (b *Body) DisplayHP() int {
	if b.HP < 0 {
		return 0
	}
	return b.HP
}

// TakeDamage subtracts damage and reports whether the body is now depleted
func (b *Body) TakeDamage(damage int) bool {
	b.HP -= damage
	return b.DisplayHP() == 0
}

// SpeedScale returns the movement multiplier from active status effects
func (b *Body) SpeedScale() float64 {
	if b.SlowTimer > 0 {
		return b.SlowFactor
	}
	return 1
}

// MoveToward steps the body's origin toward (tx, ty) by speed.
// A zero-length direction leaves the body in place.
func (b *Body) MoveToward(tx, ty, speed float64) bool {
	nx, ny, _, ok := geom.Normalize(tx-b.X, ty-b.Y)
	if !ok {
		return false
	}
	b.X += nx * speed
	b.Y += ny * speed
	return true
}

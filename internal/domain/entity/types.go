package entity

import "github.com/younwookim/arena/internal/domain/geom"

// EntityID is a unique identifier for an actor (never recycled)
type EntityID uint32

// Kind identifies what an actor is
type Kind int

const (
	KindSlime Kind = iota
	KindMelee
	KindArcher
	KindBoss
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindSlime:
		return "Slime"
	case KindMelee:
		return "Melee"
	case KindArcher:
		return "Archer"
	case KindBoss:
		return "Boss"
	default:
		return "Unknown"
	}
}

// Facing is the horizontal direction the player looks at
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

// Arena is the logical playfield. Every actor lives in its coordinate space.
// Projectiles are dropped once they are more than Margin outside it.
type Arena struct {
	Width  float64
	Height float64
	Margin float64
}

// Bounds returns the arena as a rectangle at the origin
func (a Arena) Bounds() geom.Rect {
	return geom.Rect{W: a.Width, H: a.Height}
}

// Center returns the arena center point
func (a Arena) Center() (float64, float64) {
	return a.Width / 2, a.Height / 2
}

// Outside reports whether a point lies beyond the arena by more than margin
func (a Arena) Outside(x, y, margin float64) bool {
	return x < -margin || x > a.Width+margin || y < -margin || y > a.Height+margin
}

// Escaped reports whether a projectile at (x,y) has left the arena margin
func (a Arena) Escaped(x, y float64) bool {
	return a.Outside(x, y, a.Margin)
}

// Rand is the single source of randomness for the simulation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// RandRange returns a uniform integer in [lo, hi]. hi <= lo returns lo.
func RandRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

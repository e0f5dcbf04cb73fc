package entity

import "github.com/younwookim/arena/internal/domain/geom"

// Tick is everything an actor may read or mutate during one simulation step
type Tick struct {
	Player  *Player
	Bullets []*Bullet // live bullets of the active weapon, may be empty
	Arena   Arena
	Rand    Rand
}

// Actor is a hostile combatant held by the roster.
// A dead actor stops updating but stays in the roster until it is reaped.
type Actor interface {
	ID() EntityID
	Kind() Kind
	Body() *Body
	Update(t *Tick) []Event
}

// Coin is a currency pickup dropped by a defeated enemy
type Coin struct {
	X, Y   float64
	Value  int
	Active bool
}

// NewCoin creates a new coin at the given position
func NewCoin(x, y float64, value int) *Coin {
	return &Coin{X: x, Y: y, Value: value, Active: true}
}

// Attract pulls the coin toward (tx, ty) and reports whether it is now within
// collectRadius. Coins closer than one unit stop moving.
func (c *Coin) Attract(tx, ty, speed, collectRadius float64) bool {
	if !c.Active {
		return false
	}

	nx, ny, dist, ok := geom.Normalize(tx-c.X, ty-c.Y)
	if ok && dist > 1 {
		c.X += nx * speed
		c.Y += ny * speed
	}
	return dist < collectRadius
}

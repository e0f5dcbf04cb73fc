package system

import (
	"math"

	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/domain/geom"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// NoWeapon is the slot value when nothing is equipped
const NoWeapon = -1

// WeaponSystem fires and advances the player's bullets. Every weapon keeps
// its own bullet list; only the equipped weapon's bullets can hit anything.
type WeaponSystem struct {
	weapons []config.WeaponConfig
	arena   entity.Arena
	bullets [][]*entity.Bullet

	active   int
	cooldown int
}

// NewWeaponSystem creates a weapon system with the first slot equipped
func NewWeaponSystem(weapons []config.WeaponConfig, arena entity.Arena) *WeaponSystem {
	s := &WeaponSystem{
		weapons: weapons,
		arena:   arena,
		bullets: make([][]*entity.Bullet, len(weapons)),
		active:  NoWeapon,
	}
	for i := range s.bullets {
		s.bullets[i] = make([]*entity.Bullet, 0, 32)
	}
	if len(weapons) > 0 {
		s.active = 0
	}
	return s
}

// Select equips slot (0-based). NoWeapon unequips. Unknown slots are ignored.
func (s *WeaponSystem) Select(slot int) bool {
	if slot != NoWeapon && (slot < 0 || slot >= len(s.weapons)) {
		return false
	}
	if slot != s.active {
		s.active = slot
		s.cooldown = 0
	}
	return true
}

// ActiveSlot returns the equipped slot or NoWeapon
func (s *WeaponSystem) ActiveSlot() int {
	return s.active
}

// Active returns the equipped weapon
func (s *WeaponSystem) Active() (config.WeaponConfig, bool) {
	if s.active == NoWeapon {
		return config.WeaponConfig{}, false
	}
	return s.weapons[s.active], true
}

// Weapons returns the configured weapons in slot order
func (s *WeaponSystem) Weapons() []config.WeaponConfig {
	return s.weapons
}

// Bullets returns the live bullets of the equipped weapon. It is empty when
// nothing is equipped.
func (s *WeaponSystem) Bullets() []*entity.Bullet {
	if s.active == NoWeapon {
		return nil
	}
	return s.bullets[s.active]
}

// AllBullets returns every weapon's bullets for drawing
func (s *WeaponSystem) AllBullets() [][]*entity.Bullet {
	return s.bullets
}

// Update fires the equipped weapon if requested and advances all bullets.
// pressed is the trigger edge, held the trigger level.
func (s *WeaponSystem) Update(player *entity.Player, pressed, held bool, aimX, aimY float64) {
	if s.cooldown > 0 {
		s.cooldown--
	}

	if w, ok := s.Active(); ok && player.Alive && !player.Blocking {
		trigger := pressed || (w.Auto && held)
		if trigger && s.cooldown <= 0 {
			s.fire(player, w, aimX, aimY)
			s.cooldown = w.Interval
		}
	}

	for i, list := range s.bullets {
		for _, b := range list {
			if !b.Active {
				continue
			}
			b.Advance()
			if s.arena.Outside(b.X, b.Y, 0) {
				b.Active = false
			}
		}
		s.bullets[i] = entity.CompactBullets(list)
	}
}

// fire spawns one bullet per pellet offset from the player center
func (s *WeaponSystem) fire(player *entity.Player, w config.WeaponConfig, aimX, aimY float64) {
	cx, cy := player.Center()
	base := math.Atan2(aimY-cy, aimX-cx)

	offsets := w.Offsets
	if len(offsets) == 0 {
		offsets = []float64{0}
	}
	for _, off := range offsets {
		angle := base + geom.DegToRad(off)
		s.bullets[s.active] = append(s.bullets[s.active],
			entity.NewBullet(cx, cy, angle, w.Speed, w.Damage, w.Piercing))
	}
}

// Reset drops every bullet and the fire cooldown
func (s *WeaponSystem) Reset() {
	for i, list := range s.bullets {
		for j := range list {
			list[j] = nil
		}
		s.bullets[i] = list[:0]
	}
	s.cooldown = 0
}

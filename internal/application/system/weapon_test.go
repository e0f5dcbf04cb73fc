package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/internal/infrastructure/config"
)

func newTestWeapons() *WeaponSystem {
	return NewWeaponSystem(config.Default().Weapons, testArena())
}

func TestNewWeaponSystem(t *testing.T) {
	sys := newTestWeapons()

	require.NotNil(t, sys)
	assert.Equal(t, 0, sys.ActiveSlot())
	w, ok := sys.Active()
	require.True(t, ok)
	assert.Equal(t, "pistol", w.Name)
	assert.Empty(t, sys.Bullets())
	assert.Len(t, sys.AllBullets(), 4)

	empty := NewWeaponSystem(nil, testArena())
	assert.Equal(t, NoWeapon, empty.ActiveSlot())
	assert.Nil(t, empty.Bullets())
}

func TestWeaponSystem_Select(t *testing.T) {
	sys := newTestWeapons()

	tests := []struct {
		name string
		slot int
		ok   bool
		want int
	}{
		{"shotgun", 2, true, 2},
		{"out of range", 4, false, 2},
		{"negative", -3, false, 2},
		{"unequip", NoWeapon, true, NoWeapon},
		{"awp", 3, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, sys.Select(tt.slot))
			assert.Equal(t, tt.want, sys.ActiveSlot())
		})
	}
}

func TestWeaponSystem_PistolSemiAuto(t *testing.T) {
	sys := newTestWeapons()
	player := newTestPlayer()
	cx, cy := player.Center()

	sys.Update(player, true, true, cx+100, cy)

	require.Len(t, sys.Bullets(), 1)
	b := sys.Bullets()[0]
	assert.InDelta(t, cx+50, b.X, 1e-9, "fired and advanced in the same tick")
	assert.InDelta(t, cy, b.Y, 1e-9)
	assert.Equal(t, 100, b.Damage)
	assert.False(t, b.Piercing)

	// Holding does not refire a semi-automatic weapon
	for i := 0; i < 30; i++ {
		sys.Update(player, false, true, cx+100, cy)
	}
	assert.Empty(t, sys.Bullets(), "first bullet left the arena, none refired")

	sys.Update(player, true, true, cx+100, cy)
	assert.Len(t, sys.Bullets(), 1)
}

func TestWeaponSystem_FireInterval(t *testing.T) {
	sys := newTestWeapons()
	player := newTestPlayer()
	cx, cy := player.Center()

	fired := 0
	for i := 0; i < 60; i++ {
		before := len(sys.Bullets())
		sys.Update(player, true, true, cx, cy-100)
		if len(sys.Bullets()) > before {
			fired++
		}
	}

	assert.Equal(t, 3, fired, "pistol fires every 20 ticks")
}

func TestWeaponSystem_AutoFire(t *testing.T) {
	sys := newTestWeapons()
	require.True(t, sys.Select(1))
	player := newTestPlayer()

	fired := 0
	for i := 0; i < 41; i++ {
		before := len(sys.Bullets())
		sys.Update(player, i == 0, true, 0, 0)
		if len(sys.Bullets()) > before {
			fired++
		}
	}

	assert.Equal(t, 3, fired, "holding keeps an automatic weapon firing")
	assert.NotEmpty(t, sys.Bullets())
}

func TestWeaponSystem_ShotgunPellets(t *testing.T) {
	sys := newTestWeapons()
	require.True(t, sys.Select(2))
	player := newTestPlayer()
	cx, cy := player.Center()

	sys.Update(player, true, false, cx+100, cy)

	bullets := sys.Bullets()
	require.Len(t, bullets, 7)
	assert.InDelta(t, -10*math.Pi/180, bullets[0].Rotation(), 1e-9)
	assert.InDelta(t, 10*math.Pi/180, bullets[6].Rotation(), 1e-9)
	for _, b := range bullets {
		assert.Equal(t, 24, b.Damage)
	}
}

func TestWeaponSystem_NoFireWhileBlockingOrDead(t *testing.T) {
	tests := []struct {
		name  string
		setup func(sys *WeaponSystem)
		block bool
		dead  bool
	}{
		{"blocking", nil, true, false},
		{"dead", nil, false, true},
		{"unequipped", func(sys *WeaponSystem) { sys.Select(NoWeapon) }, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := newTestWeapons()
			if tt.setup != nil {
				tt.setup(sys)
			}
			player := newTestPlayer()
			player.Blocking = tt.block
			player.Alive = !tt.dead

			sys.Update(player, true, true, 0, 0)

			for _, list := range sys.AllBullets() {
				assert.Empty(t, list)
			}
		})
	}
}

func TestWeaponSystem_SwitchKeepsBulletsSeparate(t *testing.T) {
	sys := newTestWeapons()
	player := newTestPlayer()
	cx, cy := player.Center()

	sys.Update(player, true, false, cx+100, cy)
	require.Len(t, sys.Bullets(), 1)

	require.True(t, sys.Select(3))
	assert.Empty(t, sys.Bullets(), "pistol bullets are not the awp's")
	assert.Len(t, sys.AllBullets()[0], 1, "pistol bullets keep flying")

	sys.Update(player, false, false, cx+100, cy)
	assert.Len(t, sys.AllBullets()[0], 1)
	assert.InDelta(t, cx+100, sys.AllBullets()[0][0].X, 1e-9)
}

func TestWeaponSystem_Reset(t *testing.T) {
	sys := newTestWeapons()
	player := newTestPlayer()
	sys.Update(player, true, false, 0, 0)
	require.NotEmpty(t, sys.Bullets())

	sys.Reset()

	assert.Empty(t, sys.Bullets())
	sys.Update(player, true, false, 0, 0)
	assert.Len(t, sys.Bullets(), 1, "cooldown cleared")
}

package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/younwookim/arena/internal/application/boss"
	"github.com/younwookim/arena/internal/application/enemy"
	"github.com/younwookim/arena/internal/application/system/mocks"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// constRand returns v (mod n) from every Intn call
type constRand struct{ v int }

func (r constRand) Intn(n int) int    { return r.v % n }
func (r constRand) Float64() float64 { return 0.5 }

func testArena() entity.Arena {
	return entity.Arena{Width: 1600, Height: 1200, Margin: 50}
}

func newTestPlayer() *entity.Player {
	return entity.NewPlayer(testArena(), 48, 48, 6, 240)
}

// fakeActor replays scripted events and records how often it was updated
type fakeActor struct {
	id      entity.EntityID
	body    entity.Body
	events  []entity.Event
	updates int
}

func newFakeActor(id entity.EntityID, events ...entity.Event) *fakeActor {
	return &fakeActor{id: id, body: entity.NewBody(0, 0, 10, 10, 1), events: events}
}

func (f *fakeActor) ID() entity.EntityID { return f.id }
func (f *fakeActor) Kind() entity.Kind   { return entity.KindSlime }
func (f *fakeActor) Body() *entity.Body  { return &f.body }

func (f *fakeActor) Update(*entity.Tick) []entity.Event {
	f.updates++
	return f.events
}

func TestNewCombatSystem(t *testing.T) {
	sys := NewCombatSystem(config.Default(), testArena(), nil)

	require.NotNil(t, sys)
	assert.NotNil(t, sys.cues, "nil sink is replaced")
	assert.Empty(t, sys.Actors())
	assert.Empty(t, sys.Coins())
	assert.Equal(t, entity.EntityID(1), sys.NextID())
	assert.Equal(t, entity.EntityID(2), sys.NextID())
}

func TestCombatSystem_SkipsDeadActors(t *testing.T) {
	sys := NewCombatSystem(config.Default(), testArena(), nil)
	live := newFakeActor(1)
	dead := newFakeActor(2)
	dead.body.Alive = false
	sys.Add(live)
	sys.Add(dead)

	sys.Update(newTestPlayer(), nil, testRNG())

	assert.Equal(t, 1, live.updates)
	assert.Equal(t, 0, dead.updates)
	assert.Len(t, sys.Actors(), 2, "dead actors stay until reaped")
	assert.Equal(t, 1, sys.AliveCount())

	sys.Reap()
	require.Len(t, sys.Actors(), 1)
	assert.Equal(t, entity.EntityID(1), sys.Actors()[0].ID())
}

func TestCombatSystem_KillAndDrop(t *testing.T) {
	sys := NewCombatSystem(config.Default(), testArena(), nil)
	var killed []entity.KillEvent
	sys.OnKill = func(ev entity.KillEvent) { killed = append(killed, ev) }

	sys.Add(newFakeActor(1,
		entity.KillEvent{ID: 1, Kind: entity.KindSlime, X: 10, Y: 10},
		entity.DropEvent{X: 10, Y: 10, Value: 3},
	))
	player := newTestPlayer()
	sys.Update(player, nil, testRNG())

	assert.Equal(t, 1, sys.Kills())
	assert.Equal(t, 12, sys.KillMarker())
	require.Len(t, killed, 1)
	assert.Equal(t, entity.EntityID(1), killed[0].ID)

	require.Len(t, sys.Coins(), 1)
	assert.Equal(t, 3, sys.Coins()[0].Value)
}

func TestCombatSystem_ForwardsCues(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockCueSink(ctrl)

	gomock.InOrder(
		sink.EXPECT().Play(entity.CueTelegraph),
		sink.EXPECT().Play(entity.CueBlock),
	)

	sys := NewCombatSystem(config.Default(), testArena(), sink)
	sys.Add(newFakeActor(1,
		entity.CueEvent{Cue: entity.CueTelegraph},
		entity.PlayerHitEvent{Source: entity.KindMelee, Outcome: entity.OutcomeBlocked},
		entity.CueEvent{Cue: entity.CueBlock},
	))

	sys.Update(newTestPlayer(), nil, testRNG())
}

func TestCombatSystem_ScreenShake(t *testing.T) {
	sys := NewCombatSystem(config.Default(), testArena(), nil)
	var shakes []int
	sys.OnScreenShake = func(ticks int) { shakes = append(shakes, ticks) }

	player := newTestPlayer()
	player.JustHit = true
	sys.Update(player, nil, testRNG())

	assert.False(t, player.JustHit, "hit flag is consumed")
	assert.Equal(t, []int{10}, shakes)
	assert.Equal(t, 10, sys.Shake())

	sys.Update(player, nil, testRNG())
	assert.Equal(t, 9, sys.Shake())
	assert.Len(t, shakes, 1)
}

func TestCombatSystem_Coins(t *testing.T) {
	sys := NewCombatSystem(config.Default(), testArena(), nil)
	player := newTestPlayer()
	px, py := player.Center()

	sys.dispatch([]entity.Event{
		entity.DropEvent{X: px + 50, Y: py, Value: 2},
		entity.DropEvent{X: px + 300, Y: py, Value: 5},
		entity.DropEvent{X: px, Y: py, Value: 0},
	})
	require.Len(t, sys.Coins(), 2, "zero-value drops place no coin")

	sys.Update(player, nil, testRNG())

	assert.Equal(t, 2, player.Money)
	require.Len(t, sys.Coins(), 1)
	assert.InDelta(t, px+290, sys.Coins()[0].X, 1e-9)
}

func TestCombatSystem_TicksCooldownOnce(t *testing.T) {
	sys := NewCombatSystem(config.Default(), testArena(), nil)
	for i := entity.EntityID(1); i <= 5; i++ {
		sys.Add(newFakeActor(i))
	}
	player := newTestPlayer()
	player.DamageCooldown = 100

	sys.Update(player, nil, testRNG())

	assert.Equal(t, 99, player.DamageCooldown)
}

func TestCombatSystem_Clear(t *testing.T) {
	sys := NewCombatSystem(config.Default(), testArena(), nil)
	sys.Add(newFakeActor(sys.NextID(), entity.KillEvent{ID: 1}, entity.DropEvent{Value: 1, X: 5000}))
	sys.Update(newTestPlayer(), nil, testRNG())

	sys.Clear()

	assert.Empty(t, sys.Actors())
	assert.Empty(t, sys.Coins())
	assert.Zero(t, sys.KillMarker())
	assert.Equal(t, 1, sys.Kills())
	assert.Equal(t, entity.EntityID(2), sys.NextID(), "ids are never recycled")
}

func TestCombatSystem_Boss(t *testing.T) {
	cfg := config.Default()
	sys := NewCombatSystem(cfg, testArena(), nil)

	_, ok := sys.Boss()
	assert.False(t, ok)

	sys.Add(newFakeActor(sys.NextID()))
	sys.Add(boss.NewBoss(sys.NextID(), cfg.Boss, testArena()))

	b, ok := sys.Boss()
	require.True(t, ok)
	assert.Equal(t, entity.EntityID(2), b.ID())
}

func TestCombatSystem_BulletKillsSlime(t *testing.T) {
	cfg := config.Default()
	sys := NewCombatSystem(cfg, testArena(), nil)
	slime := enemy.NewSlime(sys.NextID(), 100, 100, cfg.Enemies.Slime)
	sys.Add(slime)

	player := newTestPlayer()
	hurt := slime.HurtBox()
	bullet := entity.NewBullet(hurt.X+10, hurt.Y+hurt.H/2, 0, 20, 500, false)

	sys.Update(player, []*entity.Bullet{bullet}, testRNG())

	assert.False(t, slime.Body().Alive)
	assert.False(t, bullet.Active)
	assert.Equal(t, 1, sys.Kills())
	require.Len(t, sys.Coins(), 1)
	assert.GreaterOrEqual(t, sys.Coins()[0].Value, 2)
	assert.LessOrEqual(t, sys.Coins()[0].Value, 4)

	sys.Reap()
	assert.Empty(t, sys.Actors())
}

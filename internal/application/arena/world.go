// Package arena runs one play session without any rendering: the per-tick
// step in a fixed order and the wave flow around it.
package arena

import (
	"log/slog"

	"github.com/younwookim/arena/internal/application/boss"
	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// World owns every system of a session. It is driven one tick at a time by
// Step and never touches ebiten, so headless runs and replays use it as is.
type World struct {
	cfg   *config.Config
	arena entity.Arena
	rng   entity.Rand

	Player  *entity.Player
	Input   *system.InputSystem
	Weapons *system.WeaponSystem
	Combat  *system.CombatSystem
	Spawner *system.Spawner
	Wheel   *entity.WeaponWheel

	state  state.GameState
	tick   int
	banner int
	best   int // highest wave started
}

// New creates a world and starts wave 1
func New(cfg *config.Config, rng entity.Rand, cues system.CueSink) *World {
	arena := entity.Arena{
		Width:  cfg.Arena.Width,
		Height: cfg.Arena.Height,
		Margin: cfg.Arena.Margin,
	}

	w := &World{
		cfg:     cfg,
		arena:   arena,
		rng:     rng,
		Player:  newPlayer(cfg, arena),
		Input:   system.NewInputSystem(cfg.Player, arena),
		Weapons: system.NewWeaponSystem(cfg.Weapons, arena),
		Combat:  system.NewCombatSystem(cfg, arena, cues),
		Spawner: system.NewSpawner(cfg, arena),
		Wheel: entity.NewWeaponWheel(entity.WheelConfig{
			Radius:     cfg.Wheel.Radius,
			DeadZone:   cfg.Wheel.DeadZone,
			OpenFrames: cfg.Wheel.OpenFrames,
		}),
	}
	w.startWave(1)
	return w
}

func newPlayer(cfg *config.Config, arena entity.Arena) *entity.Player {
	p := entity.NewPlayer(arena, cfg.Player.Width, cfg.Player.Height, cfg.Player.Hearts, cfg.Player.DamageCooldown)
	p.Speed = cfg.Player.Speed
	p.BlockDuration = cfg.Player.BlockDuration
	return p
}

// Arena returns the playfield
func (w *World) Arena() entity.Arena {
	return w.arena
}

// State returns the wave-flow state
func (w *World) State() state.GameState {
	return w.state
}

// Tick returns the number of steps taken
func (w *World) Tick() int {
	return w.tick
}

// Wave returns the current wave number
func (w *World) Wave() int {
	return w.Spawner.Wave()
}

// BestWave returns the highest wave started in this session
func (w *World) BestWave() int {
	return w.best
}

// Banner returns the remaining ticks of the "wave N" banner
func (w *World) Banner() int {
	return w.banner
}

// Remaining returns the HUD enemy count of the running wave
func (w *World) Remaining() int {
	return w.Spawner.Remaining(w.Combat.AliveCount())
}

// BossBar returns the boss health ratio and phase flag while a boss lives
func (w *World) BossBar() (ratio float64, enraged bool, ok bool) {
	b, found := w.Combat.Boss()
	if !found || !b.Body().Alive {
		return 0, false, false
	}
	return b.HPRatio(), b.Enraged(), true
}

// Boss returns the boss of the current wave, if any
func (w *World) Boss() (*boss.Boss, bool) {
	return w.Combat.Boss()
}

// ToArena converts screen coordinates to arena coordinates
func (w *World) ToArena(sx, sy int) (float64, float64) {
	d := w.cfg.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return float64(sx), float64(sy)
	}
	return float64(sx) * w.arena.Width / float64(d.ScreenWidth),
		float64(sy) * w.arena.Height / float64(d.ScreenHeight)
}

// ToScreen converts arena coordinates to screen coordinates
func (w *World) ToScreen(x, y float64) (int, int) {
	d := w.cfg.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return int(x), int(y)
	}
	return int(x * float64(d.ScreenWidth) / w.arena.Width),
		int(y * float64(d.ScreenHeight) / w.arena.Height)
}

// Step advances the session by one tick
func (w *World) Step(in system.InputState) {
	w.tick++
	if w.banner > 0 {
		w.banner--
	}

	switch w.state {
	case state.StateWaveActive:
		w.stepWave(in)

	case state.StateIntermission:
		w.stepIdle(in)
		if in.Confirm {
			w.startWave(w.Spawner.Wave() + 1)
		}

	case state.StateDefeat:
		// Actors keep running so their reactions to the defeat play out
		w.Combat.Update(w.Player, nil, w.rng)
		w.Combat.Reap()
		if in.Retry {
			w.retry()
		}

	case state.StateVictory:
		w.stepIdle(in)
	}
}

// stepWave is the authoritative tick order while a wave runs
func (w *World) stepWave(in system.InputState) {
	firing := w.handleWeaponSelect(in)

	w.Input.UpdatePlayer(w.Player, in)

	ax, ay := w.ToArena(in.MouseX, in.MouseY)
	w.Weapons.Update(w.Player, in.FirePressed && firing, in.FireHeld && firing, ax, ay)

	w.Combat.Update(w.Player, w.Weapons.Bullets(), w.rng)

	inProgress := w.Spawner.Update(w.Combat, w.rng)

	w.Combat.Reap()

	switch {
	case !w.Player.Alive:
		slog.Info("player defeated", "wave", w.Spawner.Wave(), "tick", w.tick)
		w.state = state.StateDefeat
	case !inProgress && w.Spawner.IsBossWave():
		slog.Info("boss defeated", "tick", w.tick)
		w.state = state.StateVictory
	case !inProgress:
		w.state = state.StateIntermission
	}
}

// stepIdle lets the player walk and collect coins between waves
func (w *World) stepIdle(in system.InputState) {
	w.handleWeaponSelect(in)
	w.Input.UpdatePlayer(w.Player, in)
	w.Weapons.Update(w.Player, false, false, 0, 0)
	w.Combat.Update(w.Player, nil, w.rng)
	w.Combat.Reap()
}

// handleWeaponSelect applies number keys and the weapon wheel. It reports
// whether the trigger may fire this tick.
func (w *World) handleWeaponSelect(in system.InputState) bool {
	if in.Slot > 0 {
		w.Weapons.Select(in.Slot - 1)
	}

	d := w.cfg.Display
	w.Wheel.Update(in.WheelPressed, in.WheelReleased, in.MouseX, in.MouseY, d.ScreenWidth, d.ScreenHeight)
	if !w.Wheel.IsActive() {
		return true
	}

	slot := w.Wheel.Highlight(in.MouseX, in.MouseY)
	if in.WheelReleased && slot != entity.SlotNone {
		w.Weapons.Select(int(slot))
	}
	return false
}

// Apply switches to a reloaded config. It only takes effect between waves
// and reports whether it did. The arena size and the current wave survive.
func (w *World) Apply(cfg *config.Config) bool {
	if w.state != state.StateIntermission {
		return false
	}

	w.cfg = cfg
	w.Input = system.NewInputSystem(cfg.Player, w.arena)

	slot := w.Weapons.ActiveSlot()
	w.Weapons = system.NewWeaponSystem(cfg.Weapons, w.arena)
	if !w.Weapons.Select(slot) {
		w.Weapons.Select(0)
	}

	w.Combat.Reconfigure(cfg)
	w.Spawner.Reconfigure(cfg)

	w.Player.Speed = cfg.Player.Speed
	w.Player.BlockDuration = cfg.Player.BlockDuration
	w.Player.DamageCooldownMax = cfg.Player.DamageCooldown

	slog.Info("config applied", "wave", w.Spawner.Wave())
	return true
}

func (w *World) startWave(n int) {
	w.Spawner.StartWave(n)
	w.state = state.StateWaveActive
	w.banner = w.cfg.Feedback.WaveBanner
	if n > w.best {
		w.best = n
	}
}

// retry restores the player after a defeat. Losing to the boss rewinds to
// the intermission before it with one extra heart; any other defeat starts
// over from wave 1.
func (w *World) retry() {
	bossWave := w.Spawner.BossWave()
	wave := w.Spawner.Wave()

	w.Combat.Clear()
	w.Weapons.Reset()

	p := w.Player
	p.Revive()
	p.X = w.arena.Width/2 - p.W/2
	p.Y = w.arena.Height/2 - p.H/2

	if wave == bossWave {
		if p.MaxHearts < w.cfg.Player.HeartCap {
			p.MaxHearts++
		}
		p.Hearts = p.MaxHearts
		w.Spawner.StartWave(bossWave - 1)
		w.state = state.StateIntermission
		slog.Info("retrying boss", "maxHearts", p.MaxHearts)
		return
	}

	w.Weapons.Select(0)
	w.startWave(1)
	slog.Info("restarting from wave 1")
}

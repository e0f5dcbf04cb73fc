package system

import (
	"log/slog"

	"github.com/younwookim/arena/internal/application/boss"
	"github.com/younwookim/arena/internal/application/enemy"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// Spawner decides when, what and where to spawn during a wave
type Spawner struct {
	cfg     config.SpawnerConfig
	waves   *config.WavesConfig
	enemies config.EnemiesConfig
	boss    config.BossConfig
	arena   entity.Arena

	wave    int
	timer   int
	spawned int
	target  int
}

// NewSpawner creates a new spawner. StartWave must be called before Update.
func NewSpawner(cfg *config.Config, arena entity.Arena) *Spawner {
	waves := cfg.Waves
	if waves == nil {
		waves = config.DefaultWaves()
	}
	return &Spawner{
		cfg:     cfg.Spawner,
		waves:   waves,
		enemies: cfg.Enemies,
		boss:    cfg.Boss,
		arena:   arena,
	}
}

// Reconfigure swaps the tuning and keeps the wave counters. The arena size
// is not reloadable.
func (s *Spawner) Reconfigure(cfg *config.Config) {
	waves := cfg.Waves
	if waves == nil {
		waves = config.DefaultWaves()
	}
	s.cfg = cfg.Spawner
	s.waves = waves
	s.enemies = cfg.Enemies
	s.boss = cfg.Boss
	s.target = waves.Target(s.wave)
}

// StartWave resets the spawn counters for wave n
func (s *Spawner) StartWave(n int) {
	s.wave = n
	s.timer = 0
	s.spawned = 0
	s.target = s.waves.Target(n)
	slog.Info("wave started", "wave", n, "target", s.target, "boss", s.IsBossWave())
}

// Wave returns the current wave number
func (s *Spawner) Wave() int {
	return s.wave
}

// BossWave returns the number of the boss wave
func (s *Spawner) BossWave() int {
	return s.waves.BossWave
}

// IsBossWave reports whether the current wave is the boss wave
func (s *Spawner) IsBossWave() bool {
	return s.wave == s.waves.BossWave
}

// Target returns how many actors the current wave spawns in total
func (s *Spawner) Target() int {
	return s.target
}

// Spawned returns how many actors the current wave has spawned so far
func (s *Spawner) Spawned() int {
	return s.spawned
}

// Remaining returns the HUD count: live actors plus those still to spawn
func (s *Spawner) Remaining(alive int) int {
	left := s.target - s.spawned
	if left < 0 {
		left = 0
	}
	return alive + left
}

// Update runs once per tick while the wave is in progress. It may add one
// actor to the roster and reports whether the wave is still in progress.
func (s *Spawner) Update(cs *CombatSystem, rng entity.Rand) bool {
	alive := cs.AliveCount()
	if s.spawned >= s.target && alive == 0 {
		slog.Info("wave cleared", "wave", s.wave)
		return false
	}

	if s.IsBossWave() {
		if s.spawned == 0 {
			cs.Add(boss.NewBoss(cs.NextID(), s.boss, s.arena))
			s.spawned = 1
		}
		return true
	}

	s.timer++
	if s.timer < s.cfg.Interval {
		return true
	}
	s.timer = 0

	if alive >= s.cfg.ScreenCap || s.spawned >= s.target {
		return true
	}

	kind, ok := s.pickKind(rng)
	if !ok {
		return true
	}
	x, y := s.edgePosition(rng)

	actor, ok := enemy.New(kind, cs.NextID(), x, y, s.enemies)
	if !ok {
		return true
	}
	cs.Add(actor)
	s.spawned++
	return true
}

// pickKind rolls the weighted composition of the current wave
func (s *Spawner) pickKind(rng entity.Rand) (string, bool) {
	entry, ok := s.waves.Entry(s.wave)
	if !ok {
		return "", false
	}
	total := entry.TotalWeight()
	if total <= 0 {
		return "", false
	}

	roll := rng.Intn(total)
	for _, sw := range entry.Spawns {
		if roll < sw.Weight {
			return sw.Kind, true
		}
		roll -= sw.Weight
	}
	return "", false
}

// edgePosition returns a point just outside one of the four arena edges,
// side chosen uniformly
func (s *Spawner) edgePosition(rng entity.Rand) (float64, float64) {
	m := s.cfg.EdgeMargin
	w, h := s.arena.Width, s.arena.Height
	spanX := max(int(w-m), 1)
	spanY := max(int(h-m), 1)

	switch rng.Intn(4) {
	case 0: // top
		return float64(rng.Intn(spanX)), -m
	case 1: // right
		return w + m, float64(rng.Intn(spanY))
	case 2: // bottom
		return float64(rng.Intn(spanX)), h + m
	default: // left
		return -m, float64(rng.Intn(spanY))
	}
}

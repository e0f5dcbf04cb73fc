package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded config fails validation
var ErrInvalidConfig = errors.New("invalid config")

var knownKinds = map[string]bool{"slime": true, "melee": true, "archer": true}

// Validate rejects sizes, rates and durations that would stall or break the
// simulation
func (c *Config) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Display.TPS > 0, "display.tps must be positive"},
		{c.Arena.Width > 0 && c.Arena.Height > 0, "arena size must be positive"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive"},
		{c.Player.Hearts > 0, "player.hearts must be positive"},
		{c.Player.HeartCap >= c.Player.Hearts, "player.heartCap must not be below player.hearts"},
		{c.Player.DamageCooldown >= 0, "player.damageCooldown must not be negative"},
		{c.Player.KnockbackDecay >= 0 && c.Player.KnockbackDecay < 1, "player.knockbackDecay must be in [0,1)"},
		{len(c.Weapons) > 0, "at least one weapon is required"},
		{c.Enemies.Melee.AttackFrameTicks > 0, "enemies.melee.attackFrameTicks must be positive"},
		{c.Enemies.Melee.HitFrame < c.Enemies.Melee.AttackFrames, "enemies.melee.hitFrame must be below attackFrames"},
		{c.Boss.Phase1HP > 0, "boss.phase1HP must be positive"},
		{c.Boss.Fan.Interval > 0 && c.Boss.Fan.Count > 0, "boss.fan interval and count must be positive"},
		{c.Boss.Rest.Min <= c.Boss.Rest.Max, "boss.rest.min must not exceed max"},
		{c.Boss.Reposition.MinDelay <= c.Boss.Reposition.MaxDelay, "boss.reposition.minDelay must not exceed maxDelay"},
		{c.Boss.Lasers.GrowDuration > 0, "boss.lasers.growDuration must be positive"},
		{c.Boss.Lasers.HalfWidth > 0, "boss.lasers.halfWidth must be positive"},
		{c.Spawner.Interval > 0, "spawner.interval must be positive"},
		{c.Spawner.ScreenCap > 0, "spawner.screenCap must be positive"},
		{c.Spawner.EdgeMargin >= 0, "spawner.edgeMargin must not be negative"},
		{c.Spawner.EdgeMargin < c.Arena.Width && c.Spawner.EdgeMargin < c.Arena.Height, "spawner.edgeMargin must be below the arena size"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.what)
		}
	}

	for i, w := range c.Weapons {
		if w.Speed <= 0 || w.Interval <= 0 {
			return fmt.Errorf("%w: weapon %d (%s) needs positive speed and interval", ErrInvalidConfig, i, w.Name)
		}
	}

	for _, e := range []EnemyBase{c.Enemies.Slime.EnemyBase, c.Enemies.Melee.EnemyBase, c.Enemies.Archer.EnemyBase} {
		if e.Width <= 0 || e.Height <= 0 || e.HP <= 0 || e.CoinMin > e.CoinMax {
			return fmt.Errorf("%w: enemy size, hp and coin range must be sane", ErrInvalidConfig)
		}
	}

	if c.Waves != nil {
		if err := c.Waves.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the wave table
func (w *WavesConfig) Validate() error {
	if w.BossWave <= 0 {
		return fmt.Errorf("%w: boss_wave must be positive", ErrInvalidConfig)
	}
	if _, ok := w.Entry(1); !ok {
		return fmt.Errorf("%w: no wave entry covers wave 1", ErrInvalidConfig)
	}
	for _, e := range w.Waves {
		if e.TotalWeight() <= 0 {
			return fmt.Errorf("%w: wave entry from %d has no weight", ErrInvalidConfig, e.From)
		}
		for _, s := range e.Spawns {
			if !knownKinds[s.Kind] {
				return fmt.Errorf("%w: unknown enemy kind %q", ErrInvalidConfig, s.Kind)
			}
			if s.Weight < 0 {
				return fmt.Errorf("%w: negative weight for %s", ErrInvalidConfig, s.Kind)
			}
		}
	}
	return nil
}

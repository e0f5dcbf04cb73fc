package config

// WavesConfig is the root config for waves.yaml
type WavesConfig struct {
	BossWave   int         `yaml:"boss_wave"`
	BaseTarget int         `yaml:"base_target"`
	TargetStep int         `yaml:"target_step"`
	TargetCap  int         `yaml:"target_cap"`
	Waves      []WaveEntry `yaml:"waves"`
}

// WaveEntry applies from wave From until the next entry takes over
type WaveEntry struct {
	From   int           `yaml:"from"`
	Target int           `yaml:"target,omitempty"` // overrides the computed target when > 0
	Spawns []SpawnWeight `yaml:"spawns"`
}

// SpawnWeight is one weighted choice of enemy kind. The list keeps its file
// order so that a seeded roll always picks the same kind.
type SpawnWeight struct {
	Kind   string `yaml:"kind"`
	Weight int    `yaml:"weight"`
}

// Entry returns the entry in effect for wave n: the last one whose From <= n.
// ok is false when no entry covers n.
func (w *WavesConfig) Entry(n int) (WaveEntry, bool) {
	var (
		best  WaveEntry
		found bool
	)
	for _, e := range w.Waves {
		if e.From <= n && (!found || e.From >= best.From) {
			best = e
			found = true
		}
	}
	return best, found
}

// Target returns how many enemies wave n spawns in total. The boss wave
// always spawns exactly one actor.
func (w *WavesConfig) Target(n int) int {
	if n == w.BossWave {
		return 1
	}
	if e, ok := w.Entry(n); ok && e.Target > 0 {
		return e.Target
	}

	target := w.BaseTarget + (n-1)*w.TargetStep
	if w.TargetCap > 0 && target > w.TargetCap {
		target = w.TargetCap
	}
	return target
}

// TotalWeight sums the spawn weights of an entry
func (e WaveEntry) TotalWeight() int {
	total := 0
	for _, s := range e.Spawns {
		total += s.Weight
	}
	return total
}

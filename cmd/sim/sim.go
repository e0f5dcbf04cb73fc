package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/arena/internal/application/arena"
	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// cancelCheck is how often a run looks at its context, in ticks
const cancelCheck = 1024

// Result summarizes one finished session
type Result struct {
	RunID     string `json:"runId"`
	Seed      int64  `json:"seed"`
	Ticks     int    `json:"ticks"`
	State     string `json:"state"`
	Wave      int    `json:"wave"`
	BestWave  int    `json:"bestWave"`
	Kills     int    `json:"kills"`
	Money     int    `json:"money"`
	Hearts    int    `json:"hearts"`
	BossState string `json:"bossState,omitempty"`
	Replay    string `json:"replay,omitempty"`
}

func summarize(runID string, seed int64, w *arena.World) Result {
	r := Result{
		RunID:    runID,
		Seed:     seed,
		Ticks:    w.Tick(),
		State:    w.State().String(),
		Wave:     w.Wave(),
		BestWave: w.BestWave(),
		Kills:    w.Combat.Kills(),
		Money:    w.Player.Money,
		Hearts:   w.Player.Hearts,
	}
	if b, ok := w.Boss(); ok {
		r.BossState = b.StateID().String()
	}
	return r
}

// simulate runs one session until it ends or maxTicks pass
func simulate(ctx context.Context, cfg *config.Config, seed int64, maxTicks int, policy Policy) (Result, error) {
	runID := uuid.NewString()
	w := arena.New(cfg, rand.New(rand.NewSource(seed)), nil)

	for w.Tick() < maxTicks && !ended(w) {
		if w.Tick()%cancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		w.Step(policy(w))
	}

	r := summarize(runID, seed, w)
	slog.DebugContext(ctx, "run finished", "runId", runID, "seed", seed, "state", r.State, "ticks", r.Ticks)
	return r, nil
}

// ended reports whether the session has no further progress without a retry
func ended(w *arena.World) bool {
	return w.State().Ended()
}

// runBatch simulates seeds first..first+n-1 on at most workers goroutines.
// Results keep seed order.
func runBatch(ctx context.Context, cfg *config.Config, first int64, n, maxTicks, workers int, policy Policy) ([]Result, error) {
	results := make([]Result, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		seed := first + int64(i)
		g.Go(func() error {
			r, err := simulate(ctx, cfg, seed, maxTicks, policy)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// playback re-simulates a recording frame by frame
func playback(ctx context.Context, cfg *config.Config, data *replay.ReplayData) (Result, error) {
	rp := replay.NewReplayer(*data)
	w := arena.New(cfg, rand.New(rand.NewSource(rp.Seed())), system.NopCueSink{})

	for {
		if rp.CurrentFrame()%cancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		in, ok := rp.GetInput()
		if !ok {
			break
		}
		w.Step(in)
	}

	r := summarize(uuid.NewString(), rp.Seed(), w)
	r.Replay = data.ID
	return r, nil
}

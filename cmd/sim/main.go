// Command sim runs game sessions without a window: many seeds in parallel,
// or one recording played back. It prints one JSON result per line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

type options struct {
	seeds    int
	first    int64
	ticks    int
	workers  int
	policy   string
	replay   string
	config   string
	logLevel string
}

func main() {
	var opts options
	flag.IntVar(&opts.seeds, "seeds", 8, "Number of sessions to simulate")
	flag.Int64Var(&opts.first, "first-seed", 1, "Seed of the first session")
	flag.IntVar(&opts.ticks, "ticks", 120*60*5, "Tick limit per session")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "Sessions simulated at once")
	flag.StringVar(&opts.policy, "policy", "idle", "Input policy: idle, turret")
	flag.StringVar(&opts.replay, "replay", "", "Play back a recording instead of simulating seeds")
	flag.StringVar(&opts.config, "config", "", "Config directory (built-in tuning when empty)")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(opts.logLevel))); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", opts.logLevel, err)
		os.Exit(2)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)

	if opts.replay != "" {
		data, err := replay.LoadReplay(opts.replay)
		if err != nil {
			return err
		}
		r, err := playback(ctx, cfg, data)
		if err != nil {
			return err
		}
		return enc.Encode(r)
	}

	policy, err := lookupPolicy(opts.policy)
	if err != nil {
		return err
	}
	if opts.seeds <= 0 || opts.ticks <= 0 {
		return fmt.Errorf("-seeds and -ticks must be positive")
	}
	workers := max(opts.workers, 1)

	slog.InfoContext(ctx, "simulating", "seeds", opts.seeds, "ticks", opts.ticks, "workers", workers, "policy", opts.policy)
	results, err := runBatch(ctx, cfg, opts.first, opts.seeds, opts.ticks, workers, policy)
	if err != nil {
		return err
	}

	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

func loadConfig(dir string) (*config.Config, error) {
	if dir == "" {
		return config.Default(), nil
	}
	cfg, err := config.NewLoader(dir).LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/arena/internal/application/game"
	"github.com/younwookim/arena/internal/application/scene/playing"
	"github.com/younwookim/arena/internal/infrastructure/config"
	"github.com/younwookim/arena/internal/infrastructure/sfx"
)

//go:embed configs
var configFS embed.FS

func main() {
	configDir := flag.String("config", "", "Load arena.json and waves.yaml from this directory instead of the built-in copy")
	watch := flag.Bool("watch", false, "Reload -config between waves when the files change")
	record := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	seed := flag.Int64("seed", 0, "Fixed RNG seed (0 uses the clock)")
	mute := flag.Bool("mute", false, "Disable sound")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	level, err := parseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*configDir, *watch, *record, *seed, *mute); err != nil {
		slog.Error("game exited", "error", err)
		os.Exit(1)
	}
}

func run(configDir string, watch bool, record string, seed int64, mute bool) error {
	loader, err := newLoader(configDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var opts []playing.Option
	if seed != 0 {
		opts = append(opts, playing.WithSeed(seed))
	}
	if record != "" {
		opts = append(opts, playing.WithRecording(record))
	}

	switch {
	case watch && configDir == "":
		slog.Warn("-watch needs -config, ignoring")
	case watch && record != "":
		slog.Warn("reloading would break the recording, ignoring -watch")
	case watch:
		reloads, stop, err := watchConfig(configDir)
		if err != nil {
			return err
		}
		defer stop()
		opts = append(opts, playing.WithReloads(reloads))
	}

	if !mute {
		player, err := sfx.New()
		if err != nil {
			return fmt.Errorf("failed to init audio: %w", err)
		}
		defer player.Close()
		opts = append(opts, playing.WithCueSink(player))
	}

	d := cfg.Display
	g := game.New(playing.New(cfg, opts...), d.ScreenWidth, d.ScreenHeight, d.TPS)

	ebiten.SetWindowSize(d.ScreenWidth/2, d.ScreenHeight/2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.TPS)

	return ebiten.RunGame(g)
}

// newLoader reads from dir, or from the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid -log-level %q: %w", s, err)
	}
	return level, nil
}

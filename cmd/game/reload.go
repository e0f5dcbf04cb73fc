package main

import (
	"log/slog"

	"github.com/younwookim/arena/internal/infrastructure/config"
)

// watchConfig reloads dir whenever one of its config files changes and sends
// each valid result. Invalid files are logged and skipped. stop closes the
// watcher; the channel is closed afterwards.
func watchConfig(dir string) (<-chan *config.Config, func(), error) {
	w, err := config.NewWatcher(dir)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan *config.Config, 1)
	go forwardReloads(w, config.NewLoader(dir), out)

	stop := func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close config watcher", "error", err)
		}
	}
	return out, stop, nil
}

func forwardReloads(w *config.Watcher, loader *config.Loader, out chan *config.Config) {
	defer close(out)

	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			cfg, err := loader.LoadAll()
			if err != nil {
				slog.Error("config reload failed", "file", name, "error", err)
				continue
			}
			slog.Info("config reloaded", "file", name)
			sendNewest(out, cfg)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			slog.Warn("config watcher error", "error", err)
		}
	}
}

// sendNewest replaces a config the scene has not picked up yet. out must have
// a buffer of one and this must be its only sender.
func sendNewest(out chan *config.Config, cfg *config.Config) {
	select {
	case <-out:
	default:
	}
	out <- cfg
}

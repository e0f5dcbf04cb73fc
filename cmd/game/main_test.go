package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/internal/infrastructure/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmbeddedConfig(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, config.Default().Arena, cfg.Arena)
	assert.Equal(t, 5, cfg.Waves.BossWave)
	assert.Len(t, cfg.Weapons, 4)
}

func TestWatchConfig(t *testing.T) {
	dir := t.TempDir()
	src, err := configFS.ReadFile("configs/" + config.ArenaFile)
	require.NoError(t, err)
	waves, err := configFS.ReadFile("configs/" + config.WavesFile)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ArenaFile), src, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.WavesFile), waves, 0o600))

	reloads, stop, err := watchConfig(dir)
	require.NoError(t, err)

	// Swap the file in atomically, the way editors save
	tmp := filepath.Join(dir, "arena.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(`{"player": {"speed": 3}}`), 0o600))
	require.NoError(t, os.Rename(tmp, filepath.Join(dir, config.ArenaFile)))

	select {
	case cfg := <-reloads:
		require.NotNil(t, cfg)
		assert.Equal(t, 3.0, cfg.Player.Speed)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload received")
	}

	stop()
	for range reloads {
	}
}

func TestSendNewest(t *testing.T) {
	out := make(chan *config.Config, 1)
	first, second := config.Default(), config.Default()
	second.Player.Speed = 5

	sendNewest(out, first)
	sendNewest(out, second)

	require.Len(t, out, 1)
	assert.Same(t, second, <-out)
}

func TestForwardReloads_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	src, err := configFS.ReadFile("configs/" + config.ArenaFile)
	require.NoError(t, err)
	waves, err := configFS.ReadFile("configs/" + config.WavesFile)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ArenaFile), src, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.WavesFile), waves, 0o600))

	w := &config.Watcher{Events: make(chan string, 2), Errors: make(chan error)}
	w.Events <- config.ArenaFile
	w.Events <- config.WavesFile
	close(w.Events)

	out := make(chan *config.Config, 1)
	forwardReloads(w, config.NewLoader(dir), out)

	var got []*config.Config
	for cfg := range out {
		got = append(got, cfg)
	}
	assert.Len(t, got, 1, "two reloads without a reader leave one config")
}

package playing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/scene"
	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// scripted feeds fixed input and controls to a scene
type scripted struct {
	in  system.InputState
	ctl Controls
}

func newTestScene(t *testing.T, opts ...Option) (*Playing, *scripted) {
	t.Helper()
	cfg := config.Default()
	cfg.Spawner.Interval = 1

	s := &scripted{}
	p := New(cfg, append([]Option{WithSeed(12345)}, opts...)...)
	p.readInput = func() system.InputState { return s.in }
	p.readControls = func() Controls {
		ctl := s.ctl
		s.ctl = Controls{} // edges last one tick
		return ctl
	}
	return p, s
}

func update(t *testing.T, p *Playing, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		next, err := p.Update(1.0 / 120)
		require.NoError(t, err)
		require.Nil(t, next)
	}
}

func clearWave(t *testing.T, p *Playing) {
	t.Helper()
	update(t, p, 10)
	for _, a := range p.World().Combat.Actors() {
		a.Body().Alive = false
	}
	update(t, p, 1)
	require.Equal(t, state.StateIntermission, p.World().State())
}

func TestNew(t *testing.T) {
	p, _ := newTestScene(t)

	require.NotNil(t, p.World())
	assert.Equal(t, int64(12345), p.Seed())
	assert.False(t, p.Paused())
	assert.Nil(t, p.recorder)
	assert.Equal(t, 1600, p.screenW)
}

func TestPlaying_UpdateStepsWorld(t *testing.T) {
	p, s := newTestScene(t)
	s.in = system.InputState{Right: true}
	x := p.World().Player.X

	update(t, p, 5)

	assert.Equal(t, 5, p.World().Tick())
	assert.InDelta(t, x+10, p.World().Player.X, 1e-9)
}

func TestPlaying_Pause(t *testing.T) {
	p, s := newTestScene(t)

	s.ctl.Pause = true
	update(t, p, 1)
	require.True(t, p.Paused())

	update(t, p, 10)
	assert.Equal(t, 0, p.World().Tick(), "paused scene does not step")

	s.ctl.Pause = true
	update(t, p, 1)
	assert.False(t, p.Paused())
	assert.Equal(t, 1, p.World().Tick())
}

func TestPlaying_QuitOnlyWhilePaused(t *testing.T) {
	p, s := newTestScene(t)

	s.ctl.Quit = true
	update(t, p, 1)

	s.ctl = Controls{Pause: true}
	update(t, p, 1)

	s.ctl.Quit = true
	next, err := p.Update(1.0 / 120)
	assert.Nil(t, next)
	assert.ErrorIs(t, err, scene.ErrQuit)
}

func TestPlaying_RecordsAndSavesOnDefeat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p, s := newTestScene(t, WithRecording(path))
	require.NotNil(t, p.recorder)

	s.in = system.InputState{Up: true}
	update(t, p, 4)

	p.World().Player.Alive = false
	p.World().Player.Hearts = 0
	update(t, p, 1)
	require.Equal(t, state.StateDefeat, p.World().State())

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Len(t, data.Frames, 5)
	assert.True(t, data.Frames[0].U)
}

func TestPlaying_SaveKeyWithoutRecording(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	p, s := newTestScene(t)
	s.ctl.Save = true
	update(t, p, 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPlaying_ReloadWaitsForIntermission(t *testing.T) {
	reloads := make(chan *config.Config, 1)
	p, _ := newTestScene(t, WithReloads(reloads))

	next := config.Default()
	next.Player.Speed = 4
	reloads <- next

	update(t, p, 1)
	assert.Equal(t, 2.0, p.World().Player.Speed, "held while the wave runs")
	assert.Same(t, next, p.pending)

	clearWave(t, p)

	assert.Equal(t, 4.0, p.World().Player.Speed)
	assert.Nil(t, p.pending)
	assert.Same(t, next, p.config)
}

func TestPlaying_ReloadChannelClosed(t *testing.T) {
	reloads := make(chan *config.Config)
	close(reloads)
	p, _ := newTestScene(t, WithReloads(reloads))

	update(t, p, 1)

	assert.Nil(t, p.reloads)
}

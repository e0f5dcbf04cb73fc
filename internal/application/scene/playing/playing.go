// Package playing provides the main gameplay scene.
package playing

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/younwookim/arena/internal/application/arena"
	"github.com/younwookim/arena/internal/application/replay"
	"github.com/younwookim/arena/internal/application/scene"
	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// Controls are the scene keys that never reach the simulation
type Controls struct {
	Pause bool // Escape
	Quit  bool // Q while paused
	Save  bool // F5
}

// Playing is the main gameplay scene
type Playing struct {
	config *config.Config
	world  *arena.World
	cues   system.CueSink

	paused bool
	last   state.GameState

	screenW int
	screenH int

	seed int64

	// Input recording
	record         bool
	recorder       *replay.Recorder
	recordFilename string

	// Config reloads wait for the next intermission
	reloads <-chan *config.Config
	pending *config.Config

	readInput    func() system.InputState
	readControls func() Controls
}

// Option configures a Playing scene
type Option func(*Playing)

// WithSeed fixes the RNG seed instead of using the clock
func WithSeed(seed int64) Option {
	return func(p *Playing) { p.seed = seed }
}

// WithCueSink routes combat cues to sink
func WithCueSink(sink system.CueSink) Option {
	return func(p *Playing) { p.cues = sink }
}

// WithRecording records every tick and saves to path ("" picks a name)
func WithRecording(path string) Option {
	return func(p *Playing) {
		p.record = true
		p.recordFilename = path
	}
}

// WithReloads applies configs received on ch between waves
func WithReloads(ch <-chan *config.Config) Option {
	return func(p *Playing) { p.reloads = ch }
}

// New creates a new Playing scene
func New(cfg *config.Config, opts ...Option) *Playing {
	p := &Playing{
		config:  cfg,
		screenW: cfg.Display.ScreenWidth,
		screenH: cfg.Display.ScreenHeight,
		seed:    time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.world = arena.New(cfg, rand.New(rand.NewSource(p.seed)), p.cues)
	p.last = p.world.State()

	if p.record {
		p.recorder = replay.NewRecorder(p.seed)
		slog.Info("recording enabled", "file", p.recordFilename, "seed", p.seed)
	}
	if p.readInput == nil {
		p.readInput = readDevices
	}
	if p.readControls == nil {
		p.readControls = readKeys
	}
	return p
}

// World returns the simulation driven by the scene
func (p *Playing) World() *arena.World {
	return p.world
}

// Seed returns the RNG seed of the session
func (p *Playing) Seed() int64 {
	return p.seed
}

// Paused reports whether the simulation is paused
func (p *Playing) Paused() bool {
	return p.paused
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	ctl := p.readControls()

	if ctl.Save {
		p.saveRecording()
	}
	if ctl.Pause {
		p.paused = !p.paused
	}
	if p.paused {
		if ctl.Quit {
			return nil, scene.ErrQuit
		}
		return nil, nil
	}

	p.pollReload()

	in := p.readInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.world.Step(in)

	if cur := p.world.State(); cur != p.last {
		p.onStateChange(p.last, cur)
		p.last = cur
	}

	return nil, nil
}

func (p *Playing) onStateChange(from, to state.GameState) {
	slog.Info("game state changed", "from", from, "to", to, "wave", p.world.Wave())

	switch to {
	case state.StateIntermission:
		p.applyPending()
	case state.StateDefeat, state.StateVictory:
		p.saveRecording()
	}
}

func (p *Playing) pollReload() {
	if p.reloads == nil {
		return
	}
	select {
	case cfg, ok := <-p.reloads:
		if !ok {
			p.reloads = nil
			return
		}
		p.pending = cfg
		p.applyPending()
	default:
	}
}

func (p *Playing) applyPending() {
	if p.pending == nil {
		return
	}
	if p.world.Apply(p.pending) {
		p.config = p.pending
			p.pending = nil
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		slog.Error("failed to save recording", "file", filename, "error", err)
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	slog.Info("session started", "seed", p.seed)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

package system

import "github.com/younwookim/arena/internal/domain/entity"

//go:generate go tool mockgen -destination=./mocks/cue_sink_mock.go -package=mocks . CueSink

// CueSink plays audio/visual cues raised by the simulation. Implementations
// must not feed anything back into the simulation.
type CueSink interface {
	Play(cue entity.Cue)
}

// NopCueSink discards every cue (headless runs)
type NopCueSink struct{}

func (NopCueSink) Play(entity.Cue) {}

package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/arena/internal/application/system"
)

// ErrIncompatible is returned for recordings of another major version or
// with frames out of tick order
var ErrIncompatible = errors.New("incompatible replay")

// Replayer feeds recorded input back one tick at a time
type Replayer struct {
	data ReplayData
	next int
}

func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay reads and checks a recording file
func LoadReplay(filename string) (*ReplayData, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := ReadReplay(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	slog.Info("replay loaded", "file", filename, "id", data.ID, "seed", data.Seed, "frames", len(data.Frames))
	return data, nil
}

// ReadReplay decodes a recording. An empty version is accepted for
// hand-written files.
func ReadReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if err := data.check(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (d *ReplayData) check() error {
	if d.Version != "" && major(d.Version) != major(Version) {
		return fmt.Errorf("%w: version %s, want %s", ErrIncompatible, d.Version, Version)
	}
	for i, fi := range d.Frames {
		if fi.F != i {
			return fmt.Errorf("%w: frame %d has tick %d", ErrIncompatible, i, fi.F)
		}
	}
	return nil
}

func major(v string) string {
	m, _, _ := strings.Cut(v, ".")
	return m
}

// GetInput returns the next tick's input. ok is false once every frame has
// been played.
func (r *Replayer) GetInput() (in system.InputState, ok bool) {
	if r.Done() {
		return system.InputState{}, false
	}
	in = r.data.Frames[r.next].Input()
	r.next++
	return in, true
}

// CurrentFrame returns how many frames have been played
func (r *Replayer) CurrentFrame() int { return r.next }

func (r *Replayer) TotalFrames() int { return len(r.data.Frames) }

func (r *Replayer) Seed() int64 { return r.data.Seed }

func (r *Replayer) Done() bool { return r.next >= len(r.data.Frames) }

// Reset rewinds to the first frame
func (r *Replayer) Reset() { r.next = 0 }

// CreateTestReplayData builds a recording of an idle player holding the
// cursor at (mouseX, mouseY)
func CreateTestReplayData(frames int, mouseX, mouseY int) ReplayData {
	fs := make([]FrameInput, frames)
	for i := range fs {
		fs[i] = NewFrame(i, system.InputState{MouseX: mouseX, MouseY: mouseY})
	}
	return ReplayData{
		ID:        uuid.NewString(),
		Version:   Version,
		Seed:      12345,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    fs,
	}
}

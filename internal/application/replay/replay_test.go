package replay

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/internal/application/arena"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

func TestFrameInput_OmitsIdleFields(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, MX: 10, MY: 20})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":3,"mx":10,"my":20}`, string(data))
}

func TestFrame_RoundTripsInputState(t *testing.T) {
	in := system.InputState{
		Left:          true,
		Right:         true,
		Up:            true,
		Down:          true,
		DashPressed:   true,
		BlockPressed:  true,
		FirePressed:   true,
		FireHeld:      true,
		MouseX:        123,
		MouseY:        456,
		Slot:          3,
		WheelPressed:  true,
		WheelReleased: true,
		Confirm:       true,
		Retry:         true,
	}

	fi := NewFrame(7, in)

	assert.Equal(t, 7, fi.F)
	assert.Equal(t, in, fi.Input())
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Frames: []FrameInput{
			{F: 0, L: true, MX: 100, MY: 100},
			{F: 1, R: true, FP: true, FH: true, MX: 110, MY: 95},
			{F: 2, S: 2, MX: 120, MY: 90},
		},
	}

	replayer := NewReplayer(data)

	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)
	assert.Equal(t, 100, input.MouseX)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Left)
	assert.True(t, input.Right)
	assert.True(t, input.FirePressed)
	assert.True(t, input.FireHeld)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, 2, input.Slot)
	assert.True(t, replayer.Done())

	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrameAndReset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3, 100, 100))

	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.Equal(t, 3, replayer.TotalFrames())
	assert.Equal(t, int64(12345), replayer.Seed())

	for i := 0; i < 3; i++ {
		replayer.GetInput()
	}
	_, ok := replayer.GetInput()
	assert.False(t, ok)
	assert.Equal(t, 3, replayer.CurrentFrame())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.Equal(t, 100, input.MouseX)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, 200, 150)

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	_, err := uuid.Parse(data.ID)
	assert.NoError(t, err)
	require.Len(t, data.Frames, 60)

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.Equal(t, 200, frame.MX)
		assert.Equal(t, 150, frame.MY)
	}
}

func TestRecorder_RecordAndStop(t *testing.T) {
	rec := NewRecorder(77)
	require.True(t, rec.IsRecording())

	rec.RecordFrame(system.InputState{Left: true})
	rec.RecordFrame(system.InputState{FirePressed: true, MouseX: 5})
	rec.Stop()
	rec.RecordFrame(system.InputState{Right: true})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())

	data := rec.Data()
	assert.Equal(t, int64(77), data.Seed)
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, 1, data.Frames[1].F)
	assert.True(t, data.Frames[1].FP)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder(1)

	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))

	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder(99)
	rec.RecordFrame(system.InputState{Up: true, MouseX: 1, MouseY: 2})
	rec.RecordFrame(system.InputState{Confirm: true})

	path := filepath.Join(t.TempDir(), GenerateFilename())
	require.NoError(t, rec.Save(path))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Data().ID, loaded.ID)
	assert.Equal(t, int64(99), loaded.Seed)
	require.Len(t, loaded.Frames, 2)
	assert.True(t, loaded.Frames[0].U)
	assert.True(t, loaded.Frames[1].OK)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
	_, err = LoadReplay(bad)
	assert.ErrorContains(t, err, "failed to decode replay")
}

func TestReadReplay(t *testing.T) {
	data, err := ReadReplay(bytes.NewBufferString(`{"seed":5,"frames":[{"f":0,"l":true,"mx":1,"my":2}]}`))

	require.NoError(t, err)
	assert.Equal(t, int64(5), data.Seed)
	require.Len(t, data.Frames, 1)
	assert.True(t, data.Frames[0].L)
}

func TestReadReplay_Incompatible(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"other major version", `{"version":"1.0","seed":1,"frames":[]}`},
		{"frames out of order", `{"version":"2.0","seed":1,"frames":[{"f":0},{"f":2}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadReplay(bytes.NewBufferString(tt.json))
			assert.ErrorIs(t, err, ErrIncompatible)
		})
	}

	_, err := ReadReplay(bytes.NewBufferString(`{"version":"2.3","seed":1,"frames":[{"f":0}]}`))
	assert.NoError(t, err, "minor versions are compatible")
}

// scripted produces a varied but fixed input sequence
func scripted(tick int) system.InputState {
	return system.InputState{
		Left:        tick%300 < 100,
		Up:          tick%200 < 50,
		Right:       tick%300 >= 200,
		DashPressed: tick%97 == 0,
		FirePressed: tick%30 == 0,
		FireHeld:    tick%60 < 30,
		MouseX:      (tick * 7) % 1600,
		MouseY:      (tick * 3) % 1200,
		Slot:        (tick / 400) % 5,
	}
}

func TestReplay_Deterministic(t *testing.T) {
	const seed, ticks = 2024, 1500

	rec := NewRecorder(seed)
	original := arena.New(config.Default(), rand.New(rand.NewSource(seed)), nil)
	for i := 0; i < ticks; i++ {
		in := scripted(i)
		rec.RecordFrame(in)
		original.Step(in)
	}

	replayer := NewReplayer(rec.Data())
	replayed := arena.New(config.Default(), rand.New(rand.NewSource(replayer.Seed())), nil)
	for {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}
		replayed.Step(in)
	}

	assert.Equal(t, original.Tick(), replayed.Tick())
	assert.Equal(t, original.Player.X, replayed.Player.X)
	assert.Equal(t, original.Player.Y, replayed.Player.Y)
	assert.Equal(t, original.Player.Hearts, replayed.Player.Hearts)
	assert.Equal(t, original.Player.Money, replayed.Player.Money)
	assert.Equal(t, original.Combat.Kills(), replayed.Combat.Kills())
	assert.Equal(t, original.Spawner.Spawned(), replayed.Spawner.Spawned())
	assert.Equal(t, original.State(), replayed.State())
}

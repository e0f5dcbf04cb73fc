// Package sfx plays combat cues as short synthesized tones. Stage music
// cues loop a low drone until the next music cue or a stop cue.
package sfx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/arena/internal/domain/entity"
)

// SampleRate is used when no audio context exists yet
const SampleRate = 44100

// Tone is one synthesized sound: a sine at Freq sliding to FreqEnd
type Tone struct {
	Freq     float64
	FreqEnd  float64
	Duration time.Duration
	Volume   float64
	Music    bool
}

// Tones maps every cue to its sound
var Tones = map[entity.Cue]Tone{
	entity.CueBlock:              {Freq: 880, FreqEnd: 1320, Duration: 80 * time.Millisecond, Volume: 0.5},
	entity.CueTelegraph:          {Freq: 440, FreqEnd: 440, Duration: 120 * time.Millisecond, Volume: 0.3},
	entity.CueStage1Music:        {Freq: 110, FreqEnd: 110, Duration: 2 * time.Second, Volume: 0.15, Music: true},
	entity.CueBossIntro:          {Freq: 60, FreqEnd: 40, Duration: 600 * time.Millisecond, Volume: 0.8},
	entity.CueBossHalf:           {Freq: 330, FreqEnd: 165, Duration: 500 * time.Millisecond, Volume: 0.6},
	entity.CueBossLowHP:          {Freq: 220, FreqEnd: 110, Duration: 500 * time.Millisecond, Volume: 0.6},
	entity.CueBossDeath:          {Freq: 200, FreqEnd: 30, Duration: 1500 * time.Millisecond, Volume: 0.8},
	entity.CueBossRebirth:        {Freq: 50, FreqEnd: 300, Duration: 2 * time.Second, Volume: 0.7},
	entity.CueStage2Music:        {Freq: 146.83, FreqEnd: 146.83, Duration: 2 * time.Second, Volume: 0.2, Music: true},
	entity.CuePlayerLose:         {Freq: 392, FreqEnd: 98, Duration: 900 * time.Millisecond, Volume: 0.6},
	entity.CuePlayerLoseFollowup: {Freq: 98, FreqEnd: 98, Duration: 700 * time.Millisecond, Volume: 0.4},
	entity.CueBossHitPlayer:      {Freq: 180, FreqEnd: 90, Duration: 150 * time.Millisecond, Volume: 0.6},
}

// stopsMusic lists the cues that end the running track
var stopsMusic = map[entity.Cue]bool{
	entity.CueBossDeath:  true,
	entity.CuePlayerLose: true,
}

// Player implements system.CueSink on ebiten's audio context
type Player struct {
	ctx    *audio.Context
	pcm    map[entity.Cue][]byte
	music  *audio.Player
	volume float64
	muted  bool
}

// New renders every tone once. It reuses the process audio context when one
// exists, since ebiten allows only one.
func New() (*Player, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}

	p := &Player{
		ctx:    ctx,
		pcm:    make(map[entity.Cue][]byte, len(Tones)),
		volume: 1,
	}
	for cue, tone := range Tones {
		buf, err := Synth(tone, ctx.SampleRate())
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize %s: %w", cue, err)
		}
		p.pcm[cue] = buf
	}
	return p, nil
}

// SetVolume scales every following cue (0.0 ~ 1.0)
func (p *Player) SetVolume(v float64) {
	p.volume = math.Max(0, math.Min(1, v))
	if p.music != nil {
		p.music.SetVolume(p.volume)
	}
}

// SetMuted silences cue playback. Music keeps its position.
func (p *Player) SetMuted(muted bool) {
	p.muted = muted
	if p.music == nil {
		return
	}
	if muted {
		p.music.Pause()
	} else {
		p.music.Play()
	}
}

// Play starts the sound for cue
func (p *Player) Play(cue entity.Cue) {
	if stopsMusic[cue] {
		p.stopMusic()
	}

	buf, ok := p.pcm[cue]
	if !ok || p.muted {
		return
	}

	if Tones[cue].Music {
		p.playMusic(buf)
		return
	}

	sp := p.ctx.NewPlayerFromBytes(buf)
	sp.SetVolume(p.volume)
	sp.Play()
}

func (p *Player) playMusic(buf []byte) {
	p.stopMusic()

	loop := audio.NewInfiniteLoop(bytes.NewReader(buf), int64(len(buf)))
	mp, err := p.ctx.NewPlayer(loop)
	if err != nil {
		slog.Warn("failed to start music", "error", err)
		return
	}
	mp.SetVolume(p.volume)
	mp.Play()
	p.music = mp
}

func (p *Player) stopMusic() {
	if p.music == nil {
		return
	}
	if err := p.music.Close(); err != nil {
		slog.Warn("failed to close music player", "error", err)
	}
	p.music = nil
}

// Close stops the music
func (p *Player) Close() {
	p.stopMusic()
}

// Synth renders t as 16-bit little-endian stereo PCM, the format ebiten's
// audio players read. A short fade at both ends avoids clicks.
func Synth(t Tone, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 || t.Duration <= 0 {
		return nil, fmt.Errorf("invalid tone: rate %d, duration %s", sampleRate, t.Duration)
	}

	n := int(t.Duration.Seconds() * float64(sampleRate))
	fade := sampleRate / 200 // 5ms
	if fade*2 > n {
		fade = n / 2
	}

	var buf bytes.Buffer
	buf.Grow(n * 4)

	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Freq + (t.FreqEnd-t.Freq)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		amp := t.Volume
		switch {
		case i < fade:
			amp *= float64(i) / float64(fade)
		case i >= n-fade:
			amp *= float64(n-i) / float64(fade)
		}

		s := int16(math.Sin(phase) * amp * math.MaxInt16)
		_ = binary.Write(&buf, binary.LittleEndian, [2]int16{s, s})
	}
	return buf.Bytes(), nil
}

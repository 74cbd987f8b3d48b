package audio

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player mixes music and one-shot sounds onto the speaker. All
// playback no-ops until Initialize succeeds, so a machine without an
// audio device still runs the full frame loop.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	music        *beep.Ctrl
	musicPlaying atomic.Bool
}

// NewPlayer creates an uninitialized player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and attaches the mixer. Idempotent.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences playback. The speaker itself has no close; clearing
// the mixer stops all streams.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if p.music != nil {
		p.music.Paused = true
		p.music = nil
	}
	p.mixer.Clear()
	p.musicPlaying.Store(false)
	p.initialized = false
}

// PlayMusic rewinds the track and plays it loops times (-1 loops until
// stopped) at the given linear volume, replacing any current music.
func (p *Player) PlayMusic(m *Music, loops int, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	if p.music != nil {
		p.music.Paused = true
		p.music = nil
	}

	if err := m.Streamer.Seek(0); err != nil {
		return
	}

	var streamer beep.Streamer = beep.Loop(loops, m.Streamer)
	if m.Format.SampleRate != sampleRate {
		streamer = beep.Resample(4, m.Format.SampleRate, sampleRate, streamer)
	}
	streamer = volumed(streamer, volume)

	done := beep.Callback(func() { p.musicPlaying.Store(false) })
	ctrl := &beep.Ctrl{Streamer: beep.Seq(streamer, done)}

	p.music = ctrl
	p.musicPlaying.Store(true)
	p.mixer.Add(ctrl)
}

// StopMusic pauses the current track, if any.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music != nil {
		p.music.Paused = true
		p.music = nil
		p.musicPlaying.Store(false)
	}
}

// PlaySound mixes one playback of the buffered effect at the sound's
// current volume.
func (p *Player) PlaySound(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || s.Buffer == nil {
		return
	}

	var streamer beep.Streamer = s.Buffer.Streamer(0, s.Buffer.Len())
	if s.Buffer.Format().SampleRate != sampleRate {
		streamer = beep.Resample(4, s.Buffer.Format().SampleRate, sampleRate, streamer)
	}
	p.mixer.Add(volumed(streamer, s.Volume))
}

// MusicPlaying reports whether a music track is currently audible.
// Sampled by the bridge before each update to emit MusicStopped info.
func (p *Player) MusicPlaying() bool {
	return p.musicPlaying.Load()
}

// volumed maps a linear [0, 1] volume onto beep's exponential volume
// model. Zero is fully silent, not a large negative exponent.
func volumed(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

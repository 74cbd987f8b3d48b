// Package audio is the beep-backed playback sink: it owns the speaker
// lifecycle and executes music and sound instructions resolved by the
// frame bridge. It degrades gracefully when no output device exists.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/stagekit/core"
)

// Sound is a fully decoded one-shot effect. Volume is the last value
// set through the instruction path, linear in [0, 1].
type Sound struct {
	Buffer *beep.Buffer
	Volume float64
}

// Music is a streamed track. The streamer stays open and is rewound on
// each play.
type Music struct {
	Streamer beep.StreamSeekCloser
	Format   beep.Format
}

// Close releases the underlying stream.
func (m *Music) Close() error {
	return m.Streamer.Close()
}

// decode opens and decodes an audio file by extension.
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}

// SoundLoader decodes a file into a memory buffer, wrapped in a shared
// cell so volume writes and playback reads arbitrate at runtime.
type SoundLoader struct{}

func (SoundLoader) Load(path string) (*core.Cell[Sound], error) {
	streamer, format, err := decode(path)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return core.NewCell(Sound{Buffer: buffer, Volume: 1}), nil
}

// MusicLoader opens a streamed track, keeping the file open for
// playback.
type MusicLoader struct{}

func (MusicLoader) Load(path string) (*Music, error) {
	streamer, format, err := decode(path)
	if err != nil {
		return nil, err
	}
	return &Music{Streamer: streamer, Format: format}, nil
}

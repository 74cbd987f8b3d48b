package asset

import (
	"github.com/lixenwraith/stagekit/audio"
	"github.com/lixenwraith/stagekit/core"
	"github.com/lixenwraith/stagekit/loading"
)

// Storage aggregates one typed ticket store per resource kind. Sounds
// are wrapped in shared cells so volume writes and playback reads
// arbitrate at runtime.
type Storage struct {
	Textures *loading.Storage[*Texture, string]
	Fonts    *loading.Storage[*Font, FontArgs]
	Sounds   *loading.Storage[*core.Cell[audio.Sound], string]
	Music    *loading.Storage[*audio.Music, string]
}

// NewStorage creates the typed stores with their default loaders.
func NewStorage() *Storage {
	return &Storage{
		Textures: loading.NewStorage[*Texture, string](TextureLoader{}),
		Fonts:    loading.NewStorage[*Font, FontArgs](FontLoader{}),
		Sounds:   loading.NewStorage[*core.Cell[audio.Sound], string](audio.SoundLoader{}),
		Music:    loading.NewStorage[*audio.Music, string](audio.MusicLoader{}),
	}
}

// Directory builds the kind router over the typed stores.
func (s *Storage) Directory() *loading.Directory {
	d := loading.NewDirectory()
	d.Register(core.StorageTexture, s.Textures)
	d.Register(core.StorageFont, s.Fonts)
	d.Register(core.StorageSound, s.Sounds)
	d.Register(core.StorageMusic, s.Music)
	return d
}

// Lock freezes registration on every store. Call after initialization,
// before the first frame.
func (s *Storage) Lock() {
	s.Textures.Lock()
	s.Fonts.Lock()
	s.Sounds.Lock()
	s.Music.Lock()
}

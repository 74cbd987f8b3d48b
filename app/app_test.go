package app

import (
	"testing"

	"github.com/lixenwraith/stagekit/asset"
	"github.com/lixenwraith/stagekit/audio"
	"github.com/lixenwraith/stagekit/core"
	"github.com/lixenwraith/stagekit/input"
	"github.com/lixenwraith/stagekit/loading"
	"github.com/lixenwraith/stagekit/stage"
	"github.com/lixenwraith/stagekit/status"
)

// scriptedEvents returns one empty snapshot per scripted frame, then
// reports quit.
type scriptedEvents struct {
	frames int
}

func (s *scriptedEvents) Poll() (input.Snapshot, bool) {
	if s.frames <= 0 {
		return input.Snapshot{}, false
	}
	s.frames--
	return input.Snapshot{}, true
}

// recordingSink captures playback calls.
type recordingSink struct {
	music   []*audio.Music
	loops   []int
	volumes []float64
	sounds  []audio.Sound
	playing bool
}

func (r *recordingSink) PlayMusic(m *audio.Music, loops int, volume float64) {
	r.music = append(r.music, m)
	r.loops = append(r.loops, loops)
	r.volumes = append(r.volumes, volume)
}

func (r *recordingSink) PlaySound(s audio.Sound) {
	r.sounds = append(r.sounds, s)
}

func (r *recordingSink) MusicPlaying() bool { return r.playing }

// instructionScene emits a fixed instruction batch and records the
// info entries it was handed.
type instructionScene struct {
	instructions []core.Instruction
	lastInfo     []core.Info
}

func (s *instructionScene) Initialize(*stage.Initialize) error { return nil }

func (s *instructionScene) Update(upd *stage.Update, _ float64) ([]core.Instruction, error) {
	s.lastInfo = append([]core.Info(nil), upd.Info...)
	return s.instructions, nil
}

func (s *instructionScene) Draw(float64) ([]stage.Draw, error) { return nil, nil }

// testStorage builds an asset storage with in-memory fake loaders.
func testStorage() *asset.Storage {
	soundLoader := loading.LoaderFunc[*core.Cell[audio.Sound], string](
		func(string) (*core.Cell[audio.Sound], error) {
			return core.NewCell(audio.Sound{Volume: 1}), nil
		})
	musicLoader := loading.LoaderFunc[*audio.Music, string](
		func(string) (*audio.Music, error) { return &audio.Music{}, nil })
	textureLoader := loading.LoaderFunc[*asset.Texture, string](
		func(string) (*asset.Texture, error) { return &asset.Texture{}, nil })
	fontLoader := loading.LoaderFunc[*asset.Font, asset.FontArgs](
		func(asset.FontArgs) (*asset.Font, error) { return &asset.Font{}, nil })

	return &asset.Storage{
		Textures: loading.NewStorage[*asset.Texture, string](textureLoader),
		Fonts:    loading.NewStorage[*asset.Font, asset.FontArgs](fontLoader),
		Sounds:   loading.NewStorage[*core.Cell[audio.Sound], string](soundLoader),
		Music:    loading.NewStorage[*audio.Music, string](musicLoader),
	}
}

func newTestApp(scene stage.Scene, frames int) (*App, *recordingSink, *asset.Storage, *status.Registry) {
	st := stage.NewStage()
	if scene != nil {
		_ = st.AddScene("test", scene, true)
	}

	storage := testStorage()
	sink := &recordingSink{}
	reg := status.NewRegistry()

	a := New(Config{
		Events:  &scriptedEvents{frames: frames},
		Audio:   sink,
		Input:   input.NewMap(),
		Stage:   st,
		Storage: storage,
		Status:  reg,
	})
	return a, sink, storage, reg
}

func TestFrameExecutesInstructions(t *testing.T) {
	scene := &instructionScene{}
	a, sink, storage, reg := newTestApp(scene, 1)

	_ = storage.Sounds.Load("hit", "hit.wav")
	soundTicket, _ := storage.Sounds.TakeTicket("hit")
	_ = storage.Music.Load("theme", "theme.ogg")
	musicTicket, _ := storage.Music.TakeTicket("theme")
	storage.Lock()

	scene.instructions = []core.Instruction{
		core.PlayMusic(musicTicket, -1, 0.8),
		core.PlaySound(soundTicket, 0.5),
	}

	if !a.Frame(0.016) {
		t.Fatalf("Frame reported quit unexpectedly")
	}

	if len(sink.music) != 1 || sink.loops[0] != -1 || sink.volumes[0] != 0.8 {
		t.Errorf("Music instruction not executed faithfully: %+v", sink)
	}
	if len(sink.sounds) != 1 {
		t.Fatalf("Expected 1 sound played, got %d", len(sink.sounds))
	}
	if sink.sounds[0].Volume != 0.5 {
		t.Errorf("Sound volume %v, want 0.5 (set through instruction)", sink.sounds[0].Volume)
	}
	if got := reg.Ints.Get(status.MetricInstructionsRun).Load(); got != 2 {
		t.Errorf("Expected 2 instructions run, got %d", got)
	}
}

func TestPendingTicketDropsSingleInstruction(t *testing.T) {
	scene := &instructionScene{}
	a, sink, storage, reg := newTestApp(scene, 1)

	// Registered but never loaded: slot stays pending.
	pending, _ := storage.Sounds.TakeTicket("pending")
	_ = storage.Sounds.Load("loaded", "loaded.wav")
	loaded, _ := storage.Sounds.TakeTicket("loaded")
	storage.Lock()

	scene.instructions = []core.Instruction{
		core.PlaySound(pending, 1),
		core.PlaySound(loaded, 1),
	}

	a.Frame(0.016)

	// The pending instruction is dropped; the rest of the batch still
	// executes.
	if len(sink.sounds) != 1 {
		t.Fatalf("Expected 1 sound despite pending ticket, got %d", len(sink.sounds))
	}
	if got := reg.Ints.Get(status.MetricInstructionsDropped).Load(); got != 1 {
		t.Errorf("Expected 1 dropped instruction, got %d", got)
	}
}

func TestUnknownTicketDropped(t *testing.T) {
	scene := &instructionScene{}
	a, sink, storage, reg := newTestApp(scene, 1)
	storage.Lock()

	scene.instructions = []core.Instruction{core.PlayMusic(core.Ticket(9), 0, 1)}
	a.Frame(0.016)

	if len(sink.music) != 0 {
		t.Errorf("Unknown ticket should not reach the sink")
	}
	if got := reg.Ints.Get(status.MetricInstructionsDropped).Load(); got != 1 {
		t.Errorf("Expected 1 dropped instruction, got %d", got)
	}
}

func TestQuitSignalStopsFrame(t *testing.T) {
	a, _, _, _ := newTestApp(&instructionScene{}, 0)

	if a.Frame(0.016) {
		t.Errorf("Frame should report quit from the event source")
	}
}

func TestNoScenesIsNoOpFrame(t *testing.T) {
	a, _, _, reg := newTestApp(nil, 1)

	if !a.Frame(0.016) {
		t.Errorf("Empty stage must not abort the frame")
	}
	if got := reg.Ints.Get(status.MetricEmptyFrames).Load(); got != 1 {
		t.Errorf("Expected 1 empty frame recorded, got %d", got)
	}
}

func TestMusicStoppedInfo(t *testing.T) {
	scene := &instructionScene{}
	a, sink, _, _ := newTestApp(scene, 2)

	// Not playing: scenes see MusicStopped.
	sink.playing = false
	a.Frame(0.016)
	if len(scene.lastInfo) != 1 || scene.lastInfo[0] != core.InfoMusicStopped {
		t.Errorf("Expected MusicStopped info, got %v", scene.lastInfo)
	}

	// Playing: no info entry.
	sink.playing = true
	a.Frame(0.016)
	if len(scene.lastInfo) != 0 {
		t.Errorf("Expected no info while music plays, got %v", scene.lastInfo)
	}
}

func TestBorrowConflictSkipsVolumeWriteOnly(t *testing.T) {
	scene := &instructionScene{}
	a, sink, storage, reg := newTestApp(scene, 1)

	_ = storage.Sounds.Load("hit", "hit.wav")
	ticket, _ := storage.Sounds.TakeTicket("hit")
	storage.Lock()

	scene.instructions = []core.Instruction{core.PlaySound(ticket, 0.25)}

	// A collaborator holds a read borrow for the whole frame: the
	// volume write conflicts but playback (another read) proceeds at
	// the previous volume.
	cell, _ := storage.Sounds.GetByTicket(ticket)
	err := cell.Borrow(func(audio.Sound) {
		a.Frame(0.016)
	})
	if err != nil {
		t.Fatalf("Outer borrow failed: %v", err)
	}

	if len(sink.sounds) != 1 {
		t.Fatalf("Expected sound to play despite volume conflict, got %d", len(sink.sounds))
	}
	if sink.sounds[0].Volume != 1 {
		t.Errorf("Conflicted volume write should leave previous volume, got %v", sink.sounds[0].Volume)
	}
	if got := reg.Ints.Get(status.MetricBorrowConflicts).Load(); got != 1 {
		t.Errorf("Expected 1 borrow conflict recorded, got %d", got)
	}
}

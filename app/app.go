// Package app is the frame update/draw bridge. Each frame it polls
// backend events, resolves actions from the binding map, runs scene
// updates, executes the returned playback instructions against the
// resource stores, and submits the draw batch.
package app

import (
	"errors"
	"sync/atomic"

	"github.com/lixenwraith/stagekit"
	"github.com/lixenwraith/stagekit/asset"
	"github.com/lixenwraith/stagekit/audio"
	"github.com/lixenwraith/stagekit/core"
	"github.com/lixenwraith/stagekit/input"
	"github.com/lixenwraith/stagekit/loading"
	"github.com/lixenwraith/stagekit/stage"
	"github.com/lixenwraith/stagekit/status"
)

// EventSource polls backend events once per frame and produces the
// device snapshot for the resolution pass. ok is false when a quit
// signal was observed; the loop then exits cleanly between frames.
type EventSource interface {
	Poll() (snap input.Snapshot, ok bool)
}

// AudioSink executes playback instructions. Implemented by
// audio.Player; tests inject fakes.
type AudioSink interface {
	PlayMusic(m *audio.Music, loops int, volume float64)
	PlaySound(s audio.Sound)
	MusicPlaying() bool
}

// Surface receives the resolved draw batch at the end of a frame.
type Surface interface {
	Clear()
	Texture(t *asset.Texture, x, y float64)
	Text(f *asset.Font, text string, x, y float64)
	Present()
}

// nopSink drops all playback; used when audio is disabled.
type nopSink struct{}

func (nopSink) PlayMusic(*audio.Music, int, float64) {}
func (nopSink) PlaySound(audio.Sound)                {}
func (nopSink) MusicPlaying() bool                   { return false }

// Config wires the bridge's collaborators.
type Config struct {
	Events  EventSource
	Surface Surface

	// Audio may be nil when no backend is available; instructions are
	// then dropped silently.
	Audio AudioSink

	Input   *input.Map
	Stage   *stage.Stage
	Storage *asset.Storage

	// Status is optional; nil allocates a private registry.
	Status *status.Registry
}

// App drives one frame at a time:
// PollEvents → ResolveActions → SceneUpdate → ExecuteInstructions →
// SceneDraw → Present.
type App struct {
	events   EventSource
	surface  Surface
	audio    AudioSink
	bindings *input.Map
	resolver *input.Resolver
	stage    *stage.Stage
	storage  *asset.Storage

	info []core.Info

	frames    *atomic.Int64
	resolved  *atomic.Int64
	run       *atomic.Int64
	dropped   *atomic.Int64
	conflicts *atomic.Int64
	empty     *atomic.Int64
}

// New builds the frame bridge.
func New(cfg Config) *App {
	reg := cfg.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	sink := cfg.Audio
	if sink == nil {
		sink = nopSink{}
	}
	return &App{
		events:   cfg.Events,
		surface:  cfg.Surface,
		audio:    sink,
		bindings: cfg.Input,
		resolver: input.NewResolver(cfg.Input),
		stage:    cfg.Stage,
		storage:  cfg.Storage,

		frames:    reg.Ints.Get(status.MetricFrames),
		resolved:  reg.Ints.Get(status.MetricActionsResolved),
		run:       reg.Ints.Get(status.MetricInstructionsRun),
		dropped:   reg.Ints.Get(status.MetricInstructionsDropped),
		conflicts: reg.Ints.Get(status.MetricBorrowConflicts),
		empty:     reg.Ints.Get(status.MetricEmptyFrames),
	}
}

// Frame advances the update half of one frame: poll, resolve, update,
// execute. It returns false when the event source observed a quit
// signal; nothing inside a frame can abort the loop.
func (a *App) Frame(delta float64) bool {
	snap, ok := a.events.Poll()
	if !ok {
		return false
	}

	a.resolver.Resolve(snap)
	a.resolved.Add(int64(len(a.bindings.Entries())))

	a.prepareInfo()

	upd := &stage.Update{Input: a.bindings, Info: a.info}
	instructions, err := a.stage.Update(upd, delta)
	if err != nil {
		if errors.Is(err, stage.ErrNoScenesToUpdate) {
			stagekit.Logger().Warn("stage has no scenes to update")
			a.empty.Add(1)
		} else {
			stagekit.Logger().Warn("scene update failed", "error", err)
		}
	} else {
		for _, in := range instructions {
			a.execute(in)
		}
	}

	a.frames.Add(1)
	return true
}

// prepareInfo samples ambient backend state into the info entries
// handed to scene updates.
func (a *App) prepareInfo() {
	a.info = a.info[:0]
	if !a.audio.MusicPlaying() {
		a.info = append(a.info, core.InfoMusicStopped)
	}
}

// execute runs one playback instruction. A missing or pending resource
// drops this instruction only; the rest of the batch still executes.
func (a *App) execute(in core.Instruction) {
	switch in.Kind {
	case core.InstructionPlayMusic:
		a.playMusic(in)
	case core.InstructionPlaySound:
		a.playSound(in)
	}
}

func (a *App) playMusic(in core.Instruction) {
	m, err := a.storage.Music.GetByTicket(in.Ticket)
	if err != nil {
		loading.LogFailure(err, in.Ticket)
		a.dropped.Add(1)
		return
	}
	a.audio.PlayMusic(m, in.Loops, in.Volume)
	a.run.Add(1)
}

func (a *App) playSound(in core.Instruction) {
	cell, err := a.storage.Sounds.GetByTicket(in.Ticket)
	if err != nil {
		loading.LogFailure(err, in.Ticket)
		a.dropped.Add(1)
		return
	}

	// Volume write arbitrates against concurrent access; on conflict
	// the sound still plays at its previous volume.
	if err := cell.BorrowMut(func(s *audio.Sound) { s.Volume = in.Volume }); err != nil {
		stagekit.Logger().Warn("cannot set volume on a sound borrowed elsewhere",
			"ticket", int(in.Ticket))
		a.conflicts.Add(1)
	}

	if err := cell.Borrow(func(s audio.Sound) { a.audio.PlaySound(s) }); err != nil {
		stagekit.Logger().Warn("sound borrowed for writing, playback skipped",
			"ticket", int(in.Ticket))
		a.dropped.Add(1)
		return
	}
	a.run.Add(1)
}

// Draw runs the draw half of the frame. interp is the fraction of a
// tick elapsed since the last update. A ticket failure skips that
// batch entry and the rest still draws.
func (a *App) Draw(interp float64) {
	if a.surface == nil {
		return
	}

	batch, err := a.stage.Draw(interp)
	if err != nil {
		if errors.Is(err, stage.ErrNoScenesToDraw) {
			stagekit.Logger().Warn("stage has no scenes to draw")
		} else {
			stagekit.Logger().Warn("scene draw failed", "error", err)
		}
		return
	}

	a.surface.Clear()
	for _, d := range batch {
		switch d.Kind {
		case stage.DrawTexture:
			t, err := a.storage.Textures.GetByTicket(d.Ticket)
			if err != nil {
				loading.LogFailure(err, d.Ticket)
				continue
			}
			a.surface.Texture(t, d.X, d.Y)

		case stage.DrawText:
			f, err := a.storage.Fonts.GetByTicket(d.Ticket)
			if err != nil {
				loading.LogFailure(err, d.Ticket)
				continue
			}
			a.surface.Text(f, d.Text, d.X, d.Y)
		}
	}
	a.surface.Present()
}

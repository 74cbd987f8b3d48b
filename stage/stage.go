// Package stage holds the scene contract and the stage: an ordered
// collection of scenes the frame bridge updates and draws each frame.
package stage

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/stagekit/core"
	"github.com/lixenwraith/stagekit/input"
	"github.com/lixenwraith/stagekit/loading"
)

var (
	// ErrNoScenesToUpdate reports an update pass with no active scene.
	// The bridge logs it and treats the frame as a no-op, never fatal.
	ErrNoScenesToUpdate = errors.New("no scenes to update")

	// ErrNoScenesToDraw reports a draw pass with no active scene.
	ErrNoScenesToDraw = errors.New("no scenes to draw")

	// ErrDuplicateScene reports a scene key already registered.
	ErrDuplicateScene = errors.New("duplicate scene")
)

// Initialize carries what scenes need during registration: the binding
// map for declaring actions and the directory for reserving resource
// tickets.
type Initialize struct {
	Input     *input.Map
	Resources *loading.Directory
}

// Update is the read-only view handed to scene updates: resolved
// action values plus ambient info entries sampled before the pass.
type Update struct {
	Input *input.Map
	Info  []core.Info
}

// DrawKind discriminates draw batch entries.
type DrawKind int

const (
	DrawTexture DrawKind = iota
	DrawText
)

// Draw is one entry in a scene's draw batch. Tickets reference the
// texture store for DrawTexture and the font store for DrawText.
type Draw struct {
	Kind   DrawKind
	Ticket core.Ticket
	Text   string
	X, Y   float64
}

// Scene is the contract between the stage and game logic. Scenes read
// resolved actions and return playback instructions; they never touch
// backend resource objects directly.
type Scene interface {
	// Initialize declares the scene's actions and resource tickets.
	Initialize(init *Initialize) error

	// Update advances scene logic by delta seconds and returns playback
	// instructions for the bridge to execute.
	Update(upd *Update, delta float64) ([]core.Instruction, error)

	// Draw produces the scene's draw batch. interp is the fraction of a
	// tick elapsed since the last update, for motion interpolation.
	Draw(interp float64) ([]Draw, error)
}

// entry pairs a scene with its key and active flag.
type entry struct {
	key    string
	scene  Scene
	active bool
}

// Stage is an ordered scene collection. Scenes update and draw in
// registration order; inactive scenes are skipped.
type Stage struct {
	scenes []entry
}

// NewStage creates an empty stage.
func NewStage() *Stage {
	return &Stage{}
}

// AddScene registers a scene under a unique key.
func (s *Stage) AddScene(key string, scene Scene, active bool) error {
	for _, e := range s.scenes {
		if e.key == key {
			return ErrDuplicateScene
		}
	}
	s.scenes = append(s.scenes, entry{key: key, scene: scene, active: active})
	return nil
}

// Initialize runs every scene's Initialize in registration order,
// including inactive scenes, so they can declare actions and reserve
// tickets before the stores lock.
func (s *Stage) Initialize(init *Initialize) error {
	for _, e := range s.scenes {
		if err := e.scene.Initialize(init); err != nil {
			return fmt.Errorf("initialize scene %q: %w", e.key, err)
		}
	}
	return nil
}

// SetActive toggles a scene. Returns false if the key is unknown.
func (s *Stage) SetActive(key string, active bool) bool {
	for i := range s.scenes {
		if s.scenes[i].key == key {
			s.scenes[i].active = active
			return true
		}
	}
	return false
}

// Update runs every active scene and concatenates their instructions
// in scene order. With no active scene it fails with
// ErrNoScenesToUpdate.
func (s *Stage) Update(upd *Update, delta float64) ([]core.Instruction, error) {
	var instructions []core.Instruction
	ran := false
	for _, e := range s.scenes {
		if !e.active {
			continue
		}
		ran = true
		batch, err := e.scene.Update(upd, delta)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, batch...)
	}
	if !ran {
		return nil, ErrNoScenesToUpdate
	}
	return instructions, nil
}

// Draw collects every active scene's draw batch in scene order. With
// no active scene it fails with ErrNoScenesToDraw.
func (s *Stage) Draw(interp float64) ([]Draw, error) {
	var batch []Draw
	ran := false
	for _, e := range s.scenes {
		if !e.active {
			continue
		}
		ran = true
		draws, err := e.scene.Draw(interp)
		if err != nil {
			return nil, err
		}
		batch = append(batch, draws...)
	}
	if !ran {
		return nil, ErrNoScenesToDraw
	}
	return batch, nil
}

package stage

import (
	"errors"
	"testing"

	"github.com/lixenwraith/stagekit/core"
)

// scriptedScene returns canned instructions and records update calls.
type scriptedScene struct {
	instructions []core.Instruction
	draws        []Draw
	updates      int
	initialized  int
	initErr      error
}

func (s *scriptedScene) Initialize(*Initialize) error {
	s.initialized++
	return s.initErr
}

func (s *scriptedScene) Update(*Update, float64) ([]core.Instruction, error) {
	s.updates++
	return s.instructions, nil
}

func (s *scriptedScene) Draw(float64) ([]Draw, error) {
	return s.draws, nil
}

func TestStageUpdateConcatenatesInOrder(t *testing.T) {
	first := &scriptedScene{instructions: []core.Instruction{core.PlaySound(1, 0.5)}}
	second := &scriptedScene{instructions: []core.Instruction{core.PlayMusic(0, -1, 1.0)}}

	st := NewStage()
	_ = st.AddScene("world", first, true)
	_ = st.AddScene("ui", second, true)

	got, err := st.Update(&Update{}, 0.016)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 instructions, got %d", len(got))
	}
	if got[0].Kind != core.InstructionPlaySound || got[1].Kind != core.InstructionPlayMusic {
		t.Errorf("Instructions out of scene order: %+v", got)
	}
}

func TestStageSkipsInactiveScenes(t *testing.T) {
	active := &scriptedScene{}
	inactive := &scriptedScene{}

	st := NewStage()
	_ = st.AddScene("on", active, true)
	_ = st.AddScene("off", inactive, false)

	if _, err := st.Update(&Update{}, 0.016); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if active.updates != 1 || inactive.updates != 0 {
		t.Errorf("Expected only active scene updated: %d/%d", active.updates, inactive.updates)
	}
}

func TestStageNoActiveScenes(t *testing.T) {
	st := NewStage()
	_ = st.AddScene("off", &scriptedScene{}, false)

	if _, err := st.Update(&Update{}, 0.016); !errors.Is(err, ErrNoScenesToUpdate) {
		t.Errorf("Expected ErrNoScenesToUpdate, got %v", err)
	}
	if _, err := st.Draw(0); !errors.Is(err, ErrNoScenesToDraw) {
		t.Errorf("Expected ErrNoScenesToDraw, got %v", err)
	}
}

func TestStageDuplicateKey(t *testing.T) {
	st := NewStage()
	_ = st.AddScene("hud", &scriptedScene{}, true)

	if err := st.AddScene("hud", &scriptedScene{}, true); !errors.Is(err, ErrDuplicateScene) {
		t.Errorf("Expected ErrDuplicateScene, got %v", err)
	}
}

func TestStageSetActive(t *testing.T) {
	sc := &scriptedScene{}
	st := NewStage()
	_ = st.AddScene("menu", sc, false)

	if !st.SetActive("menu", true) {
		t.Fatalf("SetActive returned false for known key")
	}
	if st.SetActive("ghost", true) {
		t.Errorf("SetActive returned true for unknown key")
	}

	if _, err := st.Update(&Update{}, 0.016); err != nil {
		t.Fatalf("Update failed after activation: %v", err)
	}
	if sc.updates != 1 {
		t.Errorf("Expected activated scene to update")
	}
}

func TestStageInitializeVisitsAllScenes(t *testing.T) {
	active := &scriptedScene{}
	inactive := &scriptedScene{}

	st := NewStage()
	_ = st.AddScene("on", active, true)
	_ = st.AddScene("off", inactive, false)

	if err := st.Initialize(&Initialize{}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if active.initialized != 1 || inactive.initialized != 1 {
		t.Errorf("Inactive scenes must initialize too: %d/%d",
			active.initialized, inactive.initialized)
	}

	failing := &scriptedScene{initErr: errors.New("no such font")}
	st = NewStage()
	_ = st.AddScene("broken", failing, true)
	if err := st.Initialize(&Initialize{}); err == nil {
		t.Errorf("Initialize should surface scene errors")
	}
}

func TestStageDrawCollects(t *testing.T) {
	st := NewStage()
	_ = st.AddScene("world", &scriptedScene{draws: []Draw{{Kind: DrawTexture, Ticket: 2}}}, true)
	_ = st.AddScene("hud", &scriptedScene{draws: []Draw{{Kind: DrawText, Ticket: 0, Text: "score"}}}, true)

	batch, err := st.Draw(0.5)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if len(batch) != 2 {
		t.Fatalf("Expected 2 draw entries, got %d", len(batch))
	}
	if batch[0].Kind != DrawTexture || batch[1].Text != "score" {
		t.Errorf("Unexpected batch %+v", batch)
	}
}

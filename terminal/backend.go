// Package terminal adapts a tcell screen to the frame bridge: an event
// source producing per-frame device snapshots, a cell-based draw
// surface, and a lifecycle service owning the screen.
package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stagekit/device"
	"github.com/lixenwraith/stagekit/input"
)

// keyHold is how long a key press counts as held. Terminals report
// presses only, never releases, so held state is approximated by a
// decay window slightly longer than one typematic repeat interval.
const keyHold = 150 * time.Millisecond

// Backend drains the terminal event channel once per frame and folds
// the events into a device snapshot. Escape, Ctrl-C and a closed event
// channel signal quit.
type Backend struct {
	events <-chan tcell.Event

	held     map[device.Key]time.Time
	mouseX   float64
	mouseY   float64
	buttons  map[device.MouseButton]bool
	resized  func(w, h int)
	now      func() time.Time
}

// NewBackend creates a backend over a terminal event channel. onResize
// may be nil.
func NewBackend(events <-chan tcell.Event, onResize func(w, h int)) *Backend {
	return &Backend{
		events:  events,
		held:    make(map[device.Key]time.Time),
		buttons: make(map[device.MouseButton]bool),
		resized: onResize,
		now:     time.Now,
	}
}

// Poll drains pending events and returns the frame's snapshot. ok is
// false once a quit signal was observed; the snapshot is then invalid.
func (b *Backend) Poll() (input.Snapshot, bool) {
	now := b.now()

drain:
	for {
		select {
		case ev, open := <-b.events:
			if !open {
				return input.Snapshot{}, false
			}
			if !b.apply(ev, now) {
				return input.Snapshot{}, false
			}
		default:
			break drain
		}
	}

	kb := make(keyboardState, len(b.held))
	for k, deadline := range b.held {
		if deadline.After(now) {
			kb[k] = true
		} else {
			delete(b.held, k)
		}
	}

	return input.Snapshot{
		Keyboard: kb,
		Mouse: &mouseState{
			x:       b.mouseX,
			y:       b.mouseY,
			buttons: b.buttons,
		},
	}, true
}

// apply folds one event into the held state. false means quit.
func (b *Backend) apply(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		for _, k := range keysFromEvent(ev) {
			b.held[k] = now.Add(keyHold)
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		b.mouseX, b.mouseY = float64(x), float64(y)
		b.buttons = mouseButtons(ev.Buttons())

	case *tcell.EventResize:
		if b.resized != nil {
			b.resized(ev.Size())
		}
	}
	return true
}

// keyboardState is a frozen per-frame keyboard snapshot.
type keyboardState map[device.Key]bool

func (s keyboardState) KeyHeld(k device.Key) bool { return s[k] }

// mouseState is a frozen per-frame pointer snapshot.
type mouseState struct {
	x, y    float64
	buttons map[device.MouseButton]bool
}

func (m *mouseState) ButtonHeld(b device.MouseButton) bool { return m.buttons[b] }
func (m *mouseState) Position() (float64, float64)         { return m.x, m.y }

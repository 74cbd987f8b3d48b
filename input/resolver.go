package input

import (
	"errors"
	"math"

	"github.com/lixenwraith/stagekit"
	"github.com/lixenwraith/stagekit/device"
)

// Snapshot is the device state sampled once at the top of a frame. It
// must stay internally consistent for the whole resolution pass.
// Keyboard and Mouse may be nil when the backend has no such device;
// their alternatives are then rejected.
type Snapshot struct {
	Keyboard device.Keyboard
	Mouse    device.Mouse

	// Gamepads lists connected devices in a stable order.
	Gamepads []device.Gamepad
}

// Resolver recomputes every action's value from the binding map once
// per frame.
type Resolver struct {
	bindings *Map
}

// NewResolver creates a resolver over a binding map.
func NewResolver(bindings *Map) *Resolver {
	return &Resolver{bindings: bindings}
}

// Resolve walks the flattened binding list and stores each action's
// resolved value. An out-of-range action index is logged and skipped:
// it indicates a stale binding, not a corrupt frame.
func (r *Resolver) Resolve(snap Snapshot) {
	for _, entry := range r.bindings.Entries() {
		v := resolveEntry(entry, snap)
		if err := r.bindings.UpdateAction(entry.User, entry.Action, v); err != nil {
			if errors.Is(err, ErrActionIndexOutOfBounds) || errors.Is(err, ErrUserIndexOutOfBounds) {
				stagekit.Logger().Warn("stale action binding",
					"user", entry.User,
					"action", entry.Action,
					"error", err)
				continue
			}
		}
	}
}

// resolveEntry evaluates an action's alternatives in declaration
// order. The first alternative producing an accepted value wins; the
// rest are not evaluated. No alternative matching leaves the action at
// the shape's neutral value.
func resolveEntry(entry Entry, snap Snapshot) Value {
	for _, cmd := range entry.Commands {
		if v, ok := evalCommand(cmd, snap); ok {
			return v
		}
	}
	return Neutral(entry.Shape)
}

// evalCommand evaluates one alternative. Digital alternatives require
// every listed predicate to hold simultaneously; a failing predicate
// rejects only this alternative. Analog and axis alternatives are
// accepted only when their magnitude clears the dead-zone.
func evalCommand(cmd Command, snap Snapshot) (Value, bool) {
	switch cmd.Kind {
	case CommandKeys:
		if snap.Keyboard == nil {
			return Value{}, false
		}
		for _, k := range cmd.Keys {
			if !snap.Keyboard.KeyHeld(k) {
				return Value{}, false
			}
		}
		return Digital(Down), true

	case CommandMouseButtons:
		if snap.Mouse == nil {
			return Value{}, false
		}
		for _, b := range cmd.MouseButtons {
			if !snap.Mouse.ButtonHeld(b) {
				return Value{}, false
			}
		}
		return Digital(Down), true

	case CommandMousePosition:
		if snap.Mouse == nil {
			return Value{}, false
		}
		x, y := snap.Mouse.Position()
		if math.Hypot(x, y) < device.DeadZone {
			return Value{}, false
		}
		return Analog(x, y), true

	case CommandGamepadButtons, CommandGamepadAxis, CommandGamepadStick:
		return evalGamepad(cmd, snap.Gamepads)
	}
	return Value{}, false
}

// evalGamepad dispatches a gamepad alternative to one explicit device
// or, for AnyDevice, to the first connected device that satisfies it.
// First-match across devices, never an OR-merge.
func evalGamepad(cmd Command, pads []device.Gamepad) (Value, bool) {
	if cmd.Device != AnyDevice {
		if cmd.Device < 0 || cmd.Device >= len(pads) {
			return Value{}, false
		}
		return evalGamepadDevice(cmd, pads[cmd.Device])
	}
	for _, pad := range pads {
		if v, ok := evalGamepadDevice(cmd, pad); ok {
			return v, true
		}
	}
	return Value{}, false
}

func evalGamepadDevice(cmd Command, pad device.Gamepad) (Value, bool) {
	switch cmd.Kind {
	case CommandGamepadButtons:
		for _, b := range cmd.Buttons {
			if !pad.ButtonHeld(b) {
				return Value{}, false
			}
		}
		return Digital(Down), true

	case CommandGamepadAxis:
		// NormalizeAxis zeroes readings inside the dead-zone.
		v := device.NormalizeAxis(pad.AxisValue(cmd.AxisX))
		if v == 0 {
			return Value{}, false
		}
		return Axis(v), true

	case CommandGamepadStick:
		x := device.NormalizeAxis(pad.AxisValue(cmd.AxisX))
		y := device.NormalizeAxis(pad.AxisValue(cmd.AxisY))
		if x == 0 && y == 0 {
			return Value{}, false
		}
		return Analog(x, y), true
	}
	return Value{}, false
}

// Package device defines the per-frame snapshot contract a multimedia
// backend must satisfy for action resolution, plus the normalization
// rules for raw analog readings. Snapshots must stay internally
// consistent for the whole resolution pass.
package device

// Key identifies a physical keyboard key in a backend-independent
// scancode space.
type Key int

const (
	KeyNone Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyTab
	KeyEscape
	KeyLShift
	KeyRShift
	KeyLCtrl
	KeyRCtrl
	KeyLAlt
	KeyRAlt
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
)

// Button identifies a gamepad button.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
)

// Axis identifies a gamepad analog axis.
type Axis int

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisTriggerLeft
	AxisTriggerRight
)

// Keyboard is a keyboard state snapshot.
type Keyboard interface {
	// KeyHeld reports whether the key is currently held.
	KeyHeld(k Key) bool
}

// Mouse is a pointer state snapshot.
type Mouse interface {
	// ButtonHeld reports whether the button is currently held.
	ButtonHeld(b MouseButton) bool

	// Position returns the current pointer position.
	Position() (x, y float64)
}

// Gamepad is a controller state snapshot.
type Gamepad interface {
	// ButtonHeld reports whether the button is currently held.
	ButtonHeld(b Button) bool

	// AxisValue returns the raw signed axis reading.
	AxisValue(a Axis) int16
}

// DeadZone is the minimum normalized magnitude below which an analog
// reading is treated as exactly neutral. One constant covers both the
// explicit-device and any-device resolution paths.
const DeadZone = 0.1

const (
	axisMaxPositive = 32767
	axisMaxNegative = 32768
)

// NormalizeAxis maps a raw signed 16-bit axis reading to [-1.0, 1.0].
// The positive and negative halves scale independently because their
// raw magnitudes differ. A reading inside the dead-zone returns
// exactly 0, never a partially scaled value.
func NormalizeAxis(raw int16) float64 {
	var v float64
	if raw >= 0 {
		v = float64(raw) / axisMaxPositive
	} else {
		v = float64(raw) / axisMaxNegative
	}
	if v > -DeadZone && v < DeadZone {
		return 0
	}
	return v
}

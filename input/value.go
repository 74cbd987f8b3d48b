// Package input maps raw device state to abstract per-user actions:
// a binding map declares ordered device-command alternatives per
// action, and the resolver recomputes every action value once per
// frame from a consistent device snapshot.
package input

// State is the digital action state.
type State int

const (
	Up State = iota
	Down
)

// Shape declares which variant of Value an action carries. The set is
// closed; resolver and store code switch exhaustively over it.
type Shape int

const (
	ShapeDigital Shape = iota
	ShapeAnalog
	ShapeAxis
)

// Value is the resolved action value: a closed tagged variant of
// digital state, 2D analog vector, or single axis.
type Value struct {
	Shape Shape

	// State is set for ShapeDigital.
	State State

	// X, Y are set for ShapeAnalog.
	X, Y float64

	// Axis is set for ShapeAxis, normalized to [-1, 1].
	Axis float64
}

// Digital builds a digital value.
func Digital(s State) Value {
	return Value{Shape: ShapeDigital, State: s}
}

// Analog builds a 2D analog value.
func Analog(x, y float64) Value {
	return Value{Shape: ShapeAnalog, X: x, Y: y}
}

// Axis builds a single-axis value.
func Axis(v float64) Value {
	return Value{Shape: ShapeAxis, Axis: v}
}

// Neutral returns the shape's resting value: digital up, analog
// origin, axis zero.
func Neutral(shape Shape) Value {
	return Value{Shape: shape}
}

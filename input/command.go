package input

import "github.com/lixenwraith/stagekit/device"

// AnyDevice selects first-match iteration over all connected gamepads
// instead of one explicit device index.
const AnyDevice = -1

// CommandKind discriminates the device-level command expressions a
// binding alternative can use.
type CommandKind int

const (
	// CommandKeys matches when every listed key is held.
	CommandKeys CommandKind = iota

	// CommandMouseButtons matches when every listed button is held.
	CommandMouseButtons

	// CommandMousePosition samples the pointer position as an analog
	// value.
	CommandMousePosition

	// CommandGamepadButtons matches when every listed button is held on
	// the selected device.
	CommandGamepadButtons

	// CommandGamepadAxis samples one normalized axis.
	CommandGamepadAxis

	// CommandGamepadStick samples two axes as an analog value.
	CommandGamepadStick
)

// Command is one alternative in an action's binding list: either a
// conjunction of digital predicates or a direct analog/axis source.
type Command struct {
	Kind CommandKind

	Keys         []device.Key
	MouseButtons []device.MouseButton
	Buttons      []device.Button

	// AxisX is the axis for CommandGamepadAxis and the horizontal axis
	// for CommandGamepadStick; AxisY is the stick's vertical axis.
	AxisX device.Axis
	AxisY device.Axis

	// Device is the gamepad index, or AnyDevice.
	Device int
}

// Keys binds a conjunction of held keyboard keys.
func Keys(keys ...device.Key) Command {
	return Command{Kind: CommandKeys, Keys: keys}
}

// MouseButtons binds a conjunction of held mouse buttons.
func MouseButtons(buttons ...device.MouseButton) Command {
	return Command{Kind: CommandMouseButtons, MouseButtons: buttons}
}

// MousePosition binds the pointer position.
func MousePosition() Command {
	return Command{Kind: CommandMousePosition}
}

// GamepadButtons binds a conjunction of held gamepad buttons on one
// device, or the first matching device when dev is AnyDevice.
func GamepadButtons(dev int, buttons ...device.Button) Command {
	return Command{Kind: CommandGamepadButtons, Device: dev, Buttons: buttons}
}

// GamepadAxis binds one analog axis.
func GamepadAxis(dev int, axis device.Axis) Command {
	return Command{Kind: CommandGamepadAxis, Device: dev, AxisX: axis}
}

// GamepadStick binds a two-axis stick.
func GamepadStick(dev int, x, y device.Axis) Command {
	return Command{Kind: CommandGamepadStick, Device: dev, AxisX: x, AxisY: y}
}

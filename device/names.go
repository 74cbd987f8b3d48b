package device

import "strings"

// keyNames maps manifest spellings to keys. Lookup is case-insensitive.
var keyNames = map[string]Key{
	"a": KeyA, "b": KeyB, "c": KeyC, "d": KeyD, "e": KeyE, "f": KeyF,
	"g": KeyG, "h": KeyH, "i": KeyI, "j": KeyJ, "k": KeyK, "l": KeyL,
	"m": KeyM, "n": KeyN, "o": KeyO, "p": KeyP, "q": KeyQ, "r": KeyR,
	"s": KeyS, "t": KeyT, "u": KeyU, "v": KeyV, "w": KeyW, "x": KeyX,
	"y": KeyY, "z": KeyZ,
	"0": Key0, "1": Key1, "2": Key2, "3": Key3, "4": Key4,
	"5": Key5, "6": Key6, "7": Key7, "8": Key8, "9": Key9,
	"up": KeyUp, "down": KeyDown, "left": KeyLeft, "right": KeyRight,
	"space": KeySpace, "enter": KeyEnter, "tab": KeyTab, "escape": KeyEscape,
	"lshift": KeyLShift, "rshift": KeyRShift,
	"lctrl": KeyLCtrl, "rctrl": KeyRCtrl,
	"lalt": KeyLAlt, "ralt": KeyRAlt,
}

var mouseButtonNames = map[string]MouseButton{
	"left":   MouseLeft,
	"middle": MouseMiddle,
	"right":  MouseRight,
}

var buttonNames = map[string]Button{
	"a": ButtonA, "b": ButtonB, "x": ButtonX, "y": ButtonY,
	"back": ButtonBack, "guide": ButtonGuide, "start": ButtonStart,
	"leftstick": ButtonLeftStick, "rightstick": ButtonRightStick,
	"leftshoulder": ButtonLeftShoulder, "rightshoulder": ButtonRightShoulder,
	"dpadup": ButtonDPadUp, "dpaddown": ButtonDPadDown,
	"dpadleft": ButtonDPadLeft, "dpadright": ButtonDPadRight,
}

var axisNames = map[string]Axis{
	"leftx": AxisLeftX, "lefty": AxisLeftY,
	"rightx": AxisRightX, "righty": AxisRightY,
	"triggerleft": AxisTriggerLeft, "triggerright": AxisTriggerRight,
}

// KeyByName resolves a manifest key name.
func KeyByName(name string) (Key, bool) {
	k, ok := keyNames[strings.ToLower(name)]
	return k, ok
}

// MouseButtonByName resolves a manifest mouse button name.
func MouseButtonByName(name string) (MouseButton, bool) {
	b, ok := mouseButtonNames[strings.ToLower(name)]
	return b, ok
}

// ButtonByName resolves a manifest gamepad button name.
func ButtonByName(name string) (Button, bool) {
	b, ok := buttonNames[strings.ToLower(name)]
	return b, ok
}

// AxisByName resolves a manifest gamepad axis name.
func AxisByName(name string) (Axis, bool) {
	a, ok := axisNames[strings.ToLower(name)]
	return a, ok
}

package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stagekit/device"
)

// keysFromEvent translates one tcell key event to the backend-neutral
// key space. An uppercase rune implies the shift key. Unmapped keys
// return an empty slice.
func keysFromEvent(ev *tcell.EventKey) []device.Key {
	var keys []device.Key

	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r >= 'a' && r <= 'z':
			keys = append(keys, device.KeyA+device.Key(r-'a'))
		case r >= 'A' && r <= 'Z':
			keys = append(keys, device.KeyA+device.Key(r-'A'), device.KeyLShift)
		case r >= '0' && r <= '9':
			keys = append(keys, device.Key0+device.Key(r-'0'))
		case r == ' ':
			keys = append(keys, device.KeySpace)
		}
	case tcell.KeyUp:
		keys = append(keys, device.KeyUp)
	case tcell.KeyDown:
		keys = append(keys, device.KeyDown)
	case tcell.KeyLeft:
		keys = append(keys, device.KeyLeft)
	case tcell.KeyRight:
		keys = append(keys, device.KeyRight)
	case tcell.KeyEnter:
		keys = append(keys, device.KeyEnter)
	case tcell.KeyTab:
		keys = append(keys, device.KeyTab)
	}

	mods := ev.Modifiers()
	if mods&tcell.ModShift != 0 {
		keys = appendKey(keys, device.KeyLShift)
	}
	if mods&tcell.ModCtrl != 0 {
		keys = appendKey(keys, device.KeyLCtrl)
	}
	if mods&tcell.ModAlt != 0 {
		keys = appendKey(keys, device.KeyLAlt)
	}
	return keys
}

func appendKey(keys []device.Key, k device.Key) []device.Key {
	for _, have := range keys {
		if have == k {
			return keys
		}
	}
	return append(keys, k)
}

// mouseButtons translates a tcell button mask. Button1 is the primary
// button, Button2 the secondary, Button3 the middle.
func mouseButtons(mask tcell.ButtonMask) map[device.MouseButton]bool {
	held := make(map[device.MouseButton]bool, 3)
	if mask&tcell.Button1 != 0 {
		held[device.MouseLeft] = true
	}
	if mask&tcell.Button2 != 0 {
		held[device.MouseRight] = true
	}
	if mask&tcell.Button3 != 0 {
		held[device.MouseMiddle] = true
	}
	return held
}

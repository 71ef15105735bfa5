package keymap

import (
	"strings"

	"bigredbutton-go/errcode"
)

// Key is a host key the button can emit. The firmware maps it onto a HID
// keycode; the simulator only logs its name.
type Key uint8

const (
	KeyNone Key = iota
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	numKeys
)

var keyNames = [numKeys]string{
	KeyNone:      "none",
	KeyF13:       "f13",
	KeyF14:       "f14",
	KeyF15:       "f15",
	KeyF16:       "f16",
	KeyF17:       "f17",
	KeyF18:       "f18",
	KeyF19:       "f19",
	KeyF20:       "f20",
	KeyF21:       "f21",
	KeyF22:       "f22",
	KeyF23:       "f23",
	KeyF24:       "f24",
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeySpace:     "space",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
}

func (k Key) String() string {
	if k < numKeys {
		return keyNames[k]
	}
	return "key?"
}

// ParseKey resolves a key name, case-insensitively.
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, s := range keyNames {
		if s == n {
			return Key(k), nil
		}
	}
	return KeyNone, errcode.Wrap(errcode.InvalidParams, "keymap.ParseKey", "unknown key "+name, nil)
}

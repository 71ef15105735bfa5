//go:build rp2040

package main

import (
	tgk "machine/usb/hid/keyboard"

	"bigredbutton-go/services/keymap"
)

var hidCodes = map[keymap.Key]tgk.Keycode{
	keymap.KeyF13:       tgk.KeyF13,
	keymap.KeyF14:       tgk.KeyF14,
	keymap.KeyF15:       tgk.KeyF15,
	keymap.KeyF16:       tgk.KeyF16,
	keymap.KeyF17:       tgk.KeyF17,
	keymap.KeyF18:       tgk.KeyF18,
	keymap.KeyF19:       tgk.KeyF19,
	keymap.KeyF20:       tgk.KeyF20,
	keymap.KeyF21:       tgk.KeyF21,
	keymap.KeyF22:       tgk.KeyF22,
	keymap.KeyF23:       tgk.KeyF23,
	keymap.KeyF24:       tgk.KeyF24,
	keymap.KeyEnter:     tgk.KeyEnter,
	keymap.KeyEsc:       tgk.KeyEsc,
	keymap.KeySpace:     tgk.KeySpace,
	keymap.KeyTab:       tgk.KeyTab,
	keymap.KeyBackspace: tgk.KeyBackspace,
	keymap.KeyUp:        tgk.KeyUp,
	keymap.KeyDown:      tgk.KeyDown,
	keymap.KeyLeft:      tgk.KeyLeft,
	keymap.KeyRight:     tgk.KeyRight,
}

// hidKeyboard sends keymap actions over the USB HID keyboard interface.
type hidKeyboard struct{}

func (hidKeyboard) Tap(k keymap.Key) {
	if c, ok := hidCodes[k]; ok {
		if err := tgk.Port().Press(c); err != nil {
			println("[hid] press:", err.Error())
		}
	}
}

func (hidKeyboard) Hold(k keymap.Key) {
	if c, ok := hidCodes[k]; ok {
		if err := tgk.Port().Down(c); err != nil {
			println("[hid] down:", err.Error())
		}
	}
}

func (hidKeyboard) ReleaseAll() {
	if err := tgk.Port().Release(); err != nil {
		println("[hid] release:", err.Error())
	}
}

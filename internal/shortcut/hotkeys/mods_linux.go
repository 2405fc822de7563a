//go:build linux

package hotkeys

import (
	"golang.design/x/hotkey"

	"go.klb.dev/floatclip/internal/shortcut"
)

// Super and Alt follow the usual X11 Mod4 / Mod1 layout.
var modifierMap = map[shortcut.Modifier]hotkey.Modifier{
	shortcut.Super: hotkey.Mod4,
	shortcut.Shift: hotkey.ModShift,
	shortcut.Ctrl:  hotkey.ModCtrl,
	shortcut.Alt:   hotkey.Mod1,
}

var keyMap = map[shortcut.Key]hotkey.Key{
	shortcut.KeyC: hotkey.KeyC,
	shortcut.KeyV: hotkey.KeyV,
}

//go:build windows

package hotkeys

import (
	"golang.design/x/hotkey"

	"go.klb.dev/floatclip/internal/shortcut"
)

// Super is the Windows key.
var modifierMap = map[shortcut.Modifier]hotkey.Modifier{
	shortcut.Super: hotkey.ModWin,
	shortcut.Shift: hotkey.ModShift,
	shortcut.Ctrl:  hotkey.ModCtrl,
	shortcut.Alt:   hotkey.ModAlt,
}

var keyMap = map[shortcut.Key]hotkey.Key{
	shortcut.KeyC: hotkey.KeyC,
	shortcut.KeyV: hotkey.KeyV,
}

//go:build darwin

package hotkeys

import (
	"golang.design/x/hotkey"

	"go.klb.dev/floatclip/internal/shortcut"
)

// Super is Cmd.
var modifierMap = map[shortcut.Modifier]hotkey.Modifier{
	shortcut.Super: hotkey.ModCmd,
	shortcut.Shift: hotkey.ModShift,
	shortcut.Ctrl:  hotkey.ModCtrl,
	shortcut.Alt:   hotkey.ModOption,
}

var keyMap = map[shortcut.Key]hotkey.Key{
	shortcut.KeyC: hotkey.KeyC,
	shortcut.KeyV: hotkey.KeyV,
}

// Package shortcut routes global keyboard shortcuts to floatclip's two
// actions. Native hotkey delivery is hidden behind Source so the routing
// state machine can be driven from a plain channel.
package shortcut

import "strings"

// Action is what a shortcut does.
type Action string

const (
	// ActionCapture stores the clipboard text and hides the panel.
	ActionCapture Action = "capture"
	// ActionReveal shows the panel.
	ActionReveal Action = "reveal"
)

// State is the key phase delivered with an Event.
type State uint8

const (
	Pressed State = iota + 1
	Released
)

func (s State) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}

// Modifier is a platform-neutral modifier key.
type Modifier uint8

const (
	// Super is Cmd on macOS and the Windows/Super key elsewhere.
	Super Modifier = iota + 1
	Shift
	Ctrl
	Alt
)

func (m Modifier) String() string {
	switch m {
	case Super:
		return "super"
	case Shift:
		return "shift"
	case Ctrl:
		return "ctrl"
	case Alt:
		return "alt"
	default:
		return "unknown"
	}
}

// Key is a platform-neutral key code.
type Key string

const (
	KeyC Key = "c"
	KeyV Key = "v"
)

// Binding pairs a key combination with an action.
type Binding struct {
	Mods   []Modifier
	Key    Key
	Action Action
}

// String renders the combination, e.g. "super+shift+v".
func (b Binding) String() string {
	parts := make([]string, 0, len(b.Mods)+1)
	for _, m := range b.Mods {
		parts = append(parts, m.String())
	}
	parts = append(parts, string(b.Key))
	return strings.Join(parts, "+")
}

// DefaultBindings returns the two fixed shortcuts, reveal first.
func DefaultBindings() []Binding {
	return []Binding{
		{Mods: []Modifier{Super, Shift}, Key: KeyV, Action: ActionReveal},
		{Mods: []Modifier{Super}, Key: KeyC, Action: ActionCapture},
	}
}

// Event is one press or release of a registered shortcut.
type Event struct {
	Action Action
	State  State
}

// Source delivers shortcut events from the operating system.
type Source interface {
	// Name returns a human-readable name for the source.
	Name() string
	// Register installs b globally. Events for it appear on Events.
	Register(b Binding) error
	// Events is closed by Close.
	Events() <-chan Event
	// Close unregisters every binding.
	Close()
}

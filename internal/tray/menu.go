// Package tray builds the status-bar icon and its static menu.
package tray

import (
	"errors"
	"log/slog"
)

// Menu entry identifiers.
const (
	IDHide = "hide"
	IDQuit = "quit"
)

// ErrNoIcon is returned by Build when the tray icon is empty.
var ErrNoIcon = errors.New("tray icon is empty")

// Item is one menu entry. A separator has no ID.
type Item struct {
	ID        string
	Label     string
	Separator bool
}

// Items returns the fixed menu, top to bottom.
func Items() []Item {
	return []Item{
		{ID: IDHide, Label: "Hide"},
		{Separator: true},
		{ID: IDQuit, Label: "Quit"},
	}
}

// Hider hides the application's windows without quitting.
type Hider interface {
	HideApplication() error
}

// Quitter ends the process with the given exit code.
type Quitter interface {
	Quit(code int)
}

// Menu maps clicked entry IDs to application actions.
type Menu struct {
	hider   Hider
	quitter Quitter
}

// NewMenu returns a Menu wired to h and q.
func NewMenu(h Hider, q Quitter) *Menu {
	return &Menu{hider: h, quitter: q}
}

// Handle runs the action for id. Unknown IDs are logged and ignored.
func (m *Menu) Handle(id string) {
	switch id {
	case IDQuit:
		slog.Info("quit menu item clicked")
		m.quitter.Quit(0)
	case IDHide:
		slog.Info("hide menu item clicked")
		if err := m.hider.HideApplication(); err != nil {
			slog.Error("hide application failed", "err", err)
		}
	default:
		slog.Warn("menu item not handled", "id", id)
	}
}

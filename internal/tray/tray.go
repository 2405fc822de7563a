package tray

import (
	"log/slog"
	"sync"

	"github.com/getlantern/systray"
)

// Tray is the status-bar icon. All clicks are funnelled through one goroutine
// so Menu.Handle never runs concurrently with itself.
type Tray struct {
	menu    *Menu
	icon    []byte
	tooltip string

	clicks chan string
	done   chan struct{}
	once   sync.Once
}

// New returns a Tray showing icon and dispatching clicks to menu.
func New(menu *Menu, icon []byte, tooltip string) *Tray {
	return &Tray{
		menu:    menu,
		icon:    icon,
		tooltip: tooltip,
		clicks:  make(chan string),
		done:    make(chan struct{}),
	}
}

// Build adds the icon and menu entries. Call from the systray onReady callback.
func (t *Tray) Build() error {
	if len(t.icon) == 0 {
		return ErrNoIcon
	}
	systray.SetTemplateIcon(t.icon, t.icon)
	systray.SetTooltip(t.tooltip)

	for _, it := range Items() {
		if it.Separator {
			systray.AddSeparator()
			continue
		}
		mi := systray.AddMenuItem(it.Label, it.Label)
		go t.forward(it.ID, mi.ClickedCh)
	}
	go t.Serve()
	slog.Debug("tray built", "items", len(Items()))
	return nil
}

func (t *Tray) forward(id string, clicked <-chan struct{}) {
	for {
		select {
		case <-t.done:
			return
		case <-clicked:
			select {
			case t.clicks <- id:
			case <-t.done:
				return
			}
		}
	}
}

// Serve handles clicks until Stop.
func (t *Tray) Serve() {
	for {
		select {
		case <-t.done:
			return
		case id := <-t.clicks:
			t.menu.Handle(id)
		}
	}
}

// Click injects a click on the entry id, as if the user had chosen it.
func (t *Tray) Click(id string) {
	select {
	case t.clicks <- id:
	case <-t.done:
	}
}

// Stop ends click handling. The systray loop itself is ended with systray.Quit.
func (t *Tray) Stop() {
	t.once.Do(func() { close(t.done) })
}

//go:build !darwin

package appkit

import (
	"log/slog"
	"sync"

	"go.klb.dev/floatclip/internal/panel"
)

// Desktop keeps windows in memory. It has no window manager to talk to, so it
// only records what a real one would have been asked to do.
type Desktop struct {
	mu      sync.Mutex
	windows map[string]*memWindow
	hidden  bool
}

// New returns an empty in-memory desktop.
func New() *Desktop {
	return &Desktop{windows: make(map[string]*memWindow)}
}

// Name returns a human-readable name for the window backend.
func (*Desktop) Name() string { return "headless windows" }

// CreatePanel registers a window called name. Creating an existing name is a
// no-op.
func (d *Desktop) CreatePanel(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.windows[name]; !ok {
		d.windows[name] = &memWindow{name: name}
	}
	return nil
}

// Lookup returns the window called name.
func (d *Desktop) Lookup(name string) (panel.Window, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.windows[name]
	if !ok {
		return nil, lookupErr(name)
	}
	return w, nil
}

// HideApplication marks the application hidden.
func (d *Desktop) HideApplication() error {
	d.mu.Lock()
	d.hidden = true
	d.mu.Unlock()
	slog.Debug("application hidden")
	return nil
}

// SetAccessory is a no-op without a Dock.
func (*Desktop) SetAccessory() {}

type memWindow struct {
	name string

	mu         sync.Mutex
	level      int
	styleMask  uint
	collection uint
	visible    bool
}

func (w *memWindow) SetLevel(level int) {
	w.mu.Lock()
	w.level = level
	w.mu.Unlock()
}

func (w *memWindow) SetStyleMask(mask uint) {
	w.mu.Lock()
	w.styleMask = mask
	w.mu.Unlock()
}

func (w *memWindow) SetCollectionBehavior(behavior uint) {
	w.mu.Lock()
	w.collection = behavior
	w.mu.Unlock()
}

func (w *memWindow) Show() {
	w.mu.Lock()
	w.visible = true
	w.mu.Unlock()
}

func (w *memWindow) OrderOut() {
	w.mu.Lock()
	w.visible = false
	w.mu.Unlock()
}

// Package panel controls the single floating panel window: a non-activating
// window that floats above others and follows the user across spaces.
package panel

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// MainWindow is the logical name of the one window floatclip owns.
const MainWindow = "main"

var (
	// ErrWindowNotFound is returned when the locator has no window by the
	// requested name. There is exactly one window, so this is never transient.
	ErrWindowNotFound = errors.New("window not found")

	// ErrNotConfigured is returned by Show and Hide before Configure succeeded.
	ErrNotConfigured = errors.New("panel not configured")
)

// Window is the native window boundary.
type Window interface {
	SetLevel(level int)
	SetStyleMask(mask uint)
	SetCollectionBehavior(behavior uint)
	// Show orders the window front without activating the application.
	Show()
	// OrderOut removes the window from the screen without closing it.
	OrderOut()
}

// Locator finds native windows by logical name.
type Locator interface {
	Lookup(name string) (Window, error)
}

// Controller shows and hides the panel.
type Controller struct {
	loc  Locator
	name string

	mu         sync.Mutex
	configured bool
	visible    bool
}

// New returns a Controller for the window called name.
func New(loc Locator, name string) *Controller {
	return &Controller{loc: loc, name: name}
}

func (c *Controller) window() (Window, error) {
	w, err := c.loc.Lookup(c.name)
	if err != nil {
		return nil, fmt.Errorf("panel %q: %w", c.name, err)
	}
	if w == nil {
		return nil, fmt.Errorf("panel %q: %w", c.name, ErrWindowNotFound)
	}
	return w, nil
}

// Configure turns the window into a floating, non-activating panel that
// joins every space. Call once at startup.
func (c *Controller) Configure() error {
	w, err := c.window()
	if err != nil {
		return err
	}
	a := encode(PanelFlags)
	w.SetLevel(a.level)
	w.SetStyleMask(a.styleMask)
	w.SetCollectionBehavior(a.collection)

	c.mu.Lock()
	c.configured = true
	c.mu.Unlock()

	slog.Debug("panel configured", "window", c.name, "flags", flagNames(PanelFlags))
	return nil
}

// Show makes the panel visible. Calling it on a visible panel is harmless.
func (c *Controller) Show() error {
	return c.set(true)
}

// Hide orders the panel out. The window stays alive for the next Show.
func (c *Controller) Hide() error {
	return c.set(false)
}

func (c *Controller) set(visible bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.configured {
		return ErrNotConfigured
	}
	w, err := c.window()
	if err != nil {
		return err
	}
	if visible {
		w.Show()
	} else {
		w.OrderOut()
	}
	c.visible = visible
	slog.Debug("panel visibility", "window", c.name, "visible", visible)
	return nil
}

// Visible reports the state of the most recent successful Show or Hide.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

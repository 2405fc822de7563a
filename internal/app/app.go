// Package app wires floatclip together. App is the one application context:
// it owns the history, the panel and the shortcut source, and every native
// callback reaches them through it.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.klb.dev/floatclip/internal/clip"
	"go.klb.dev/floatclip/internal/history"
	"go.klb.dev/floatclip/internal/panel"
	"go.klb.dev/floatclip/internal/shortcut"
	"go.klb.dev/floatclip/internal/tray"
)

// Desktop is the native window manager.
type Desktop interface {
	panel.Locator
	tray.Hider
	Name() string
	CreatePanel(name string) error
	SetAccessory()
}

// Tray is the status-bar icon once built.
type Tray interface {
	Build() error
	Stop()
}

// Options are the user-facing settings.
type Options struct {
	// Accessory hides the Dock icon.
	Accessory bool
}

// Deps are the platform pieces App drives.
type Deps struct {
	Desktop   Desktop
	Clipboard clip.Backend
	Shortcuts shortcut.Source
	Bindings  []shortcut.Binding
	NewTray   func(*tray.Menu) Tray

	// History receives captured text. Nil means a fresh history.History.
	History shortcut.Appender
	// Stop ends the native event loop, which in turn calls Exited.
	Stop func()
	// Exit terminates the process.
	Exit func(code int)
}

// App is the floatclip application context.
type App struct {
	opts Options
	deps Deps

	history    shortcut.Appender
	panel      *panel.Controller
	dispatcher *shortcut.Dispatcher

	mu       sync.Mutex
	tray     Tray
	cancel   context.CancelFunc
	stopping bool
	code     int
	err      error
}

// New builds the application context. Nothing native happens until Ready.
func New(opts Options, deps Deps) *App {
	var h shortcut.Appender = deps.History
	if h == nil {
		h = history.New()
	}
	p := panel.New(deps.Desktop, panel.MainWindow)
	return &App{
		opts:       opts,
		deps:       deps,
		history:    h,
		panel:      p,
		dispatcher: shortcut.NewDispatcher(deps.Clipboard, h, p),
	}
}

// Start performs the one-time setup and starts dispatching shortcut events.
// Every error is a fatal startup fault.
func (a *App) Start(ctx context.Context) error {
	slog.Info("floatclip starting",
		"desktop", a.deps.Desktop.Name(),
		"clipboard", a.deps.Clipboard.Name(),
		"shortcuts", a.deps.Shortcuts.Name(),
	)

	if a.opts.Accessory {
		a.deps.Desktop.SetAccessory()
	}
	if err := a.deps.Desktop.CreatePanel(panel.MainWindow); err != nil {
		return fmt.Errorf("create main window: %w", err)
	}
	if err := a.panel.Configure(); err != nil {
		return fmt.Errorf("configure panel: %w", err)
	}

	for _, b := range a.deps.Bindings {
		if err := a.deps.Shortcuts.Register(b); err != nil {
			return fmt.Errorf("register shortcut %s: %w", b, err)
		}
		slog.Info("shortcut ready", "shortcut", b.String(), "action", b.Action)
	}

	t := a.deps.NewTray(tray.NewMenu(a.deps.Desktop, a))
	if err := t.Build(); err != nil {
		return fmt.Errorf("build tray: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	a.mu.Lock()
	a.tray = t
	a.cancel = cancel
	a.mu.Unlock()

	go func() {
		if err := a.dispatcher.Run(ctx, a.deps.Shortcuts.Events()); err != nil {
			a.fail(fmt.Errorf("panel fault: %w", err))
		}
	}()
	return nil
}

// Ready is the tray-loop ready callback: it runs Start and stops the process
// if setup fails.
func (a *App) Ready() {
	if err := a.Start(context.Background()); err != nil {
		a.fail(err)
	}
}

// Exited is the tray-loop exit callback.
func (a *App) Exited() {
	a.mu.Lock()
	code, err := a.code, a.err
	a.mu.Unlock()

	if err != nil {
		slog.Error("floatclip stopped", "err", err)
	} else {
		slog.Info("floatclip stopped")
	}
	a.deps.Exit(code)
}

// Quit tears everything down and ends the process with code.
func (a *App) Quit(code int) {
	a.shutdown(code, nil)
}

func (a *App) fail(err error) {
	a.shutdown(1, err)
}

func (a *App) shutdown(code int, err error) {
	a.mu.Lock()
	if a.stopping {
		a.mu.Unlock()
		return
	}
	a.stopping = true
	a.code, a.err = code, err
	t, cancel := a.tray, a.cancel
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	a.deps.Shortcuts.Close()
	if t != nil {
		t.Stop()
	}
	a.deps.Stop()
}

// Err returns the fault that stopped the application, if any.
func (a *App) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

//go:build darwin || linux || windows

// Package hotkeys registers floatclip's shortcuts with the operating system
// through golang.design/x/hotkey. On Linux that library needs an X display
// as soon as it is imported, so only the binary imports this package.
package hotkeys

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.design/x/hotkey"

	"go.klb.dev/floatclip/internal/shortcut"
)

// Source is a shortcut.Source backed by OS-level hotkeys.
// On darwin, Register must run while the Cocoa run loop is active.
type Source struct {
	events chan shortcut.Event
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup

	mu   sync.Mutex
	keys []*hotkey.Hotkey
}

// New returns a source with nothing registered.
func New() *Source {
	return &Source{
		events: make(chan shortcut.Event, 16),
		done:   make(chan struct{}),
	}
}

func (s *Source) Name() string { return "golang.design/x/hotkey" }

func (s *Source) Register(b shortcut.Binding) error {
	mods, key, err := nativeCombo(b)
	if err != nil {
		return err
	}
	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register %s: %w", b, err)
	}

	s.mu.Lock()
	s.keys = append(s.keys, hk)
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		shortcut.Relay(s.done, b.Action, hk.Keydown(), hk.Keyup(), s.emit)
	}()
	slog.Debug("shortcut registered", "shortcut", b.String(), "action", b.Action)
	return nil
}

func (s *Source) emit(e shortcut.Event) bool {
	select {
	case s.events <- e:
		return true
	case <-s.done:
		return false
	}
}

func (s *Source) Events() <-chan shortcut.Event { return s.events }

// Close stops relaying before unregistering: Unregister closes the library's
// Keydown/Keyup channels.
func (s *Source) Close() {
	s.once.Do(func() {
		close(s.done)
		s.mu.Lock()
		for _, hk := range s.keys {
			if err := hk.Unregister(); err != nil {
				slog.Debug("shortcut unregister failed", "err", err)
			}
		}
		s.keys = nil
		s.mu.Unlock()
		s.wg.Wait()
		close(s.events)
	})
}

// nativeCombo translates b with the per-platform tables in mods_*.go.
func nativeCombo(b shortcut.Binding) ([]hotkey.Modifier, hotkey.Key, error) {
	key, ok := keyMap[b.Key]
	if !ok {
		return nil, 0, fmt.Errorf("shortcut %s: unsupported key %q", b, b.Key)
	}
	mods := make([]hotkey.Modifier, 0, len(b.Mods))
	for _, m := range b.Mods {
		nm, ok := modifierMap[m]
		if !ok {
			return nil, 0, fmt.Errorf("shortcut %s: unsupported modifier %s", b, m)
		}
		mods = append(mods, nm)
	}
	return mods, key, nil
}

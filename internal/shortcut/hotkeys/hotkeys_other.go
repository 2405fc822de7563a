//go:build !darwin && !linux && !windows

package hotkeys

import (
	"errors"
	"fmt"

	"go.klb.dev/floatclip/internal/shortcut"
)

// ErrUnsupported is returned by Register on platforms without global hotkeys.
var ErrUnsupported = errors.New("global shortcuts unsupported on this platform")

// Source refuses every registration.
type Source struct {
	events chan shortcut.Event
}

// New returns a source whose Register always fails.
func New() *Source {
	return &Source{events: make(chan shortcut.Event)}
}

func (s *Source) Name() string { return "unsupported" }

func (s *Source) Register(b shortcut.Binding) error {
	return fmt.Errorf("register %s: %w", b, ErrUnsupported)
}

func (s *Source) Events() <-chan shortcut.Event { return s.events }
func (s *Source) Close()                        {}

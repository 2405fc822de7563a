// Package appkit is the native window-manager boundary:
//
//	appkit_darwin.go — Cocoa via cgo; every call runs on the main queue
//	appkit_other.go  — in-memory windows for Linux, Windows and CI
//
// Callers on darwin must only use a Desktop once the Cocoa run loop is
// running (systray.Run provides it), otherwise main-queue calls never return.
package appkit

import (
	"fmt"

	"go.klb.dev/floatclip/internal/panel"
)

// lookupErr formats a missing-window error the same way on every platform.
func lookupErr(name string) error {
	return fmt.Errorf("lookup %q: %w", name, panel.ErrWindowNotFound)
}

// Package clip reads text from the system clipboard. Build constraints select
// the implementation:
//
//	clip_native.go   — macOS / Linux / Windows via golang.design/x/clipboard
//	clip_other.go    — every other platform, always headless
//
// floatclip never writes to the clipboard.
package clip

import "errors"

// ErrNoText is returned by ReadText when the clipboard is empty or holds only
// non-text content such as an image.
var ErrNoText = errors.New("clipboard holds no text")

// Backend is the interface that all clipboard implementations satisfy.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// ReadText returns the current clipboard text, or ErrNoText.
	ReadText() (string, error)
}

// Package history holds the clipboard snapshots captured by the capture
// shortcut. The history only grows; nothing is ever removed or rewritten.
package history

import (
	"log/slog"
	"sync"

	"go.klb.dev/floatclip/internal/logging"
)

// History is an append-only, insertion-ordered list of captured clipboard
// text. It is safe for concurrent use.
type History struct {
	mu    sync.Mutex
	clips []string
}

// New returns an empty History.
func New() *History {
	return &History{}
}

// Append records text as the newest snapshot.
func (h *History) Append(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clips = append(h.clips, text)
	slog.Info("clip captured", "total", len(h.clips))
	slog.Debug("clip contents", "preview", logging.Preview(text), "bytes", len(text))
}

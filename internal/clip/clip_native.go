//go:build darwin || linux || windows

package clip

import (
	"log/slog"
	"runtime"

	"golang.design/x/clipboard"
)

type nativeBackend struct {
	name string
}

// New returns the platform clipboard backend, or a headless backend if the
// clipboard cannot be initialised (e.g. Linux without X11).
// clipboard.Init is called here rather than in init() so that the version
// sub-command never touches the display server.
func New() Backend {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable, running headless", "err", err)
		return headless{}
	}
	return &nativeBackend{name: backendName()}
}

func backendName() string {
	switch runtime.GOOS {
	case "darwin":
		return "macOS NSPasteboard"
	case "windows":
		return "Windows Clipboard"
	default:
		return "X11 clipboard"
	}
}

func (b *nativeBackend) Name() string { return b.name }

func (b *nativeBackend) ReadText() (string, error) {
	text := clipboard.Read(clipboard.FmtText)
	if len(text) == 0 {
		return "", ErrNoText
	}
	return string(text), nil
}

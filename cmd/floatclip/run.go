package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/getlantern/systray"
	"github.com/spf13/viper"

	"go.klb.dev/floatclip/internal/app"
	"go.klb.dev/floatclip/internal/appkit"
	"go.klb.dev/floatclip/internal/clip"
	"go.klb.dev/floatclip/internal/shortcut"
	"go.klb.dev/floatclip/internal/shortcut/hotkeys"
	"go.klb.dev/floatclip/internal/tray"
)

// runApp blocks in the tray loop until the user quits. The process exits from
// App.Exited, which systray calls when the loop ends.
func runApp(v *viper.Viper) error {
	setupLogging(v)
	slog.Debug("floatclip", "version", Version)

	a := app.New(appOptions(v), app.Deps{
		Desktop:   appkit.New(),
		Clipboard: clip.New(),
		Shortcuts: hotkeys.New(),
		Bindings:  shortcut.DefaultBindings(),
		NewTray: func(m *tray.Menu) app.Tray {
			return tray.New(m, tray.DefaultIcon(), "floatclip")
		},
		Stop: systray.Quit,
		Exit: os.Exit,
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-sig
		slog.Info("signal received, quitting", "signal", s)
		a.Quit(0)
	}()

	systray.Run(a.Ready, a.Exited)
	return a.Err()
}

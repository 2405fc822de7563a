// floatclip: capture the clipboard into a floating panel with global shortcuts.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/floatclip/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "floatclip",
		Short: "Clipboard capture panel driven by global shortcuts",
		Long: `floatclip runs in the background with a status-bar icon and two global
shortcuts:

  Cmd+Shift+V   show the floating panel
  Cmd+C         capture the clipboard text and hide the panel

On Linux and Windows, Super (the Windows key) stands in for Cmd.

Config file search order (first found wins):
  /etc/floatclip/floatclip.toml
  $HOME/.config/floatclip/floatclip.toml
  path supplied via --config (skips the search)

All flags can be set via FLOATCLIP_<FLAG> env vars or config-file keys.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE:      func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:         func(_ *cobra.Command, _ []string) error { return runApp(v) },
	}
	addRunFlags(root)

	run := &cobra.Command{
		Use:     "run",
		Short:   "Run floatclip (the default command)",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runApp(v) },
	}
	addRunFlags(run)

	root.AddCommand(run, newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "floatclip %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(interactive bool, formatStr, levelStr string) {
	fallback := slog.LevelInfo
	if interactive {
		fallback = slog.LevelDebug
	}
	level, _ := logging.ParseLevel(levelStr, fallback)
	logging.Setup(logging.ParseFormat(formatStr), level)
}

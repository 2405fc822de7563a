package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/floatclip/internal/app"
	"go.klb.dev/floatclip/internal/logging"
)

// Config keys shared by flags, env vars and the config file.
const (
	keyDock         = "dock"
	keyNoBackground = "no-background"
	keyLogFormat    = "log-format"
	keyLogLevel     = "log-level"
	keyConfig       = "config"
)

// configDirs is the search path for floatclip.toml, lowest priority first.
func configDirs() []string {
	dirs := []string{"/etc/floatclip"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "floatclip"))
	}
	return dirs
}

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and FLOATCLIP_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → FLOATCLIP_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	v.SetDefault(keyDock, false)

	configFlag, _ := cmd.Flags().GetString(keyConfig)
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("floatclip")
		v.SetConfigType("toml")
		for _, dir := range configDirs() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("FLOATCLIP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addRunFlags adds every flag the run command reads.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(keyDock, false, "keep the Dock icon (macOS); by default floatclip runs as an accessory app")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(keyNoBackground, false, "run interactively: tinter logs + debug level")
	cmd.Flags().String(keyLogFormat, "auto", "log format: auto|text|json")
	cmd.Flags().String(keyLogLevel, "", "log level: debug|info|warn|error (default: info, debug when interactive)")
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String(keyConfig, "", "path to config file (overrides auto-discovery)")
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper) {
	interactive := v.GetBool(keyNoBackground) || logging.IsTTY(os.Stderr)
	resolveLogging(interactive, v.GetString(keyLogFormat), v.GetString(keyLogLevel))
	if f := v.ConfigFileUsed(); f != "" {
		slog.Debug("config loaded", "file", f)
	}
}

// appOptions maps resolved settings onto the application options.
func appOptions(v *viper.Viper) app.Options {
	return app.Options{Accessory: !v.GetBool(keyDock)}
}

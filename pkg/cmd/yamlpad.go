// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"io"
	"os"

	"carvel.dev/yamlpad/pkg/cmd/ui"
	"carvel.dev/yamlpad/pkg/config"
	"carvel.dev/yamlpad/pkg/connection"
	"carvel.dev/yamlpad/pkg/editor"
	"carvel.dev/yamlpad/pkg/settings"
	"carvel.dev/yamlpad/pkg/tui"
	"carvel.dev/yamlpad/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type YamlpadOptions struct {
	Debug      bool
	ConfigFile string

	stdout io.Writer
	stderr io.Writer
}

func NewDefaultYamlpadOptions() *YamlpadOptions {
	return &YamlpadOptions{stdout: os.Stdout, stderr: os.Stderr}
}

func NewDefaultYamlpadCmd() *cobra.Command {
	return NewYamlpadCmd(NewDefaultYamlpadOptions())
}

func NewYamlpadCmd(o *YamlpadOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "yamlpad",
		Version: version.Version,
		Short:   "yamlpad formats YAML and manages Qualtrics connection files",
		Long: `yamlpad formats YAML and manages Qualtrics connection files.

Without a subcommand it opens the launcher: a terminal UI to pick
the Qualtrics token file and the project config file, edit them
and check that they are valid.`,
		RunE: func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.Flags()) },
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.PersistentFlags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.PersistentFlags().StringVar(&o.ConfigFile, "config", "", "Config file (default is config.yaml in user config directory)")
	cmd.PersistentFlags().String("settings-file", "", "Settings file (default is settings.toml in user config directory)")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error, disabled)")
	cmd.PersistentFlags().String("log-file", "", "Log file used while terminal UI is shown")

	cmd.AddCommand(NewFmtCmd(NewFmtOptions(o)))
	cmd.AddCommand(NewCheckCmd(NewCheckOptions(o)))
	cmd.AddCommand(NewEditCmd(NewEditOptions(o)))
	cmd.AddCommand(NewSettingsCmd(NewSettingsOptions(o)))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions(o)))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, disallowUndeclaredArgs, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}

// Run shows the launcher.
func (o *YamlpadOptions) Run(flags *pflag.FlagSet) error {
	cfg, err := o.loadConfig(flags)
	if err != nil {
		return err
	}

	formatOpts, err := cfg.FormatOptions()
	if err != nil {
		return err
	}

	logger, closer, err := ui.NewFileLogger(cfg.Log.File, o.logLevel(cfg))
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := o.loadSettings(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info().Str("version", version.Version).Msg("launcher started")

	return tui.RunLauncher(tui.LauncherDeps{
		Store:     store,
		Registry:  editor.NewRegistry(logger),
		Validator: newValidator(cfg, logger),
		Format:    formatOpts,
		Logger:    logger,
	})
}

func (o *YamlpadOptions) newUI() ui.UI {
	return ui.NewCustomWriterTTY(o.Debug, o.stdout, o.stderr)
}

func (o *YamlpadOptions) loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	return config.Load(o.ConfigFile, flags)
}

func (o *YamlpadOptions) logLevel(cfg *config.Config) string {
	if o.Debug {
		return "debug"
	}
	return cfg.Log.Level
}

// cliLogger writes structured logs to stderr for non-interactive commands.
func (o *YamlpadOptions) cliLogger(cfg *config.Config) (zerolog.Logger, error) {
	stderr := o.stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	return ui.NewLogger(stderr, o.logLevel(cfg))
}

func (o *YamlpadOptions) loadSettings(cfg *config.Config, logger zerolog.Logger) (*settings.Store, error) {
	store, err := settings.Load(cfg.Settings.Path, logger)
	if err != nil {
		return nil, err
	}
	if store.IsReadOnly() {
		o.newUI().Warnf("Warning: %s (%s)\n", settings.ErrReadOnly, store.Path())
	}
	return store, nil
}

func newValidator(cfg *config.Config, logger zerolog.Logger) connection.Validator {
	validator := connection.NewValidator(logger)
	validator.TokenKey = cfg.Connection.TokenKey
	validator.ConfigKey = cfg.Connection.ConfigKey
	return validator
}

// disallowUndeclaredArgs rejects positional arguments unless command
// declared which ones it accepts.
func disallowUndeclaredArgs(cmd *cobra.Command) {
	if cmd.Args == nil {
		cobrautil.DisallowExtraArgs(cmd)
	}
}

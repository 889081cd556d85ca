// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/yamlpad/pkg/cmd/ui"
	"carvel.dev/yamlpad/pkg/editor"
	"carvel.dev/yamlpad/pkg/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type EditOptions struct {
	*YamlpadOptions
}

func NewEditOptions(global *YamlpadOptions) *EditOptions {
	return &EditOptions{YamlpadOptions: global}
}

func NewEditCmd(o *EditOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [FILE]",
		Short: "Open YAML editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return o.Run(cmd.Flags(), path)
		},
	}
	return cmd
}

func (o *EditOptions) Run(flags *pflag.FlagSet, path string) error {
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

	session, err := openSession(editor.NewRegistry(logger), path)
	if err != nil {
		return err
	}

	return tui.RunEditor(tui.NewEditor(session, tui.EditorOpts{Format: formatOpts, Logger: logger}))
}

// openSession opens path for editing, or an untitled buffer when path is empty.
func openSession(registry *editor.Registry, path string) (*editor.Session, error) {
	if len(path) == 0 {
		return registry.New(), nil
	}
	return registry.Open(path)
}

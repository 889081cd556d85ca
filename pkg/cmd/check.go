// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/yamlpad/pkg/connection"
	"carvel.dev/yamlpad/pkg/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type CheckOptions struct {
	*YamlpadOptions

	TokenFile         string
	ProjectConfigFile string
}

func NewCheckOptions(global *YamlpadOptions) *CheckOptions {
	return &CheckOptions{YamlpadOptions: global}
}

func NewCheckCmd(o *CheckOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check Qualtrics token and project config files",
		Long: `Check Qualtrics token and project config files.

Files default to the paths saved from the launcher.`,
		RunE: func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.Flags()) },
	}
	cmd.Flags().StringVar(&o.TokenFile, "token-file", "", "Qualtrics token file")
	cmd.Flags().StringVar(&o.ProjectConfigFile, "config-file", "", "Project config file")
	return cmd
}

func (o *CheckOptions) Run(flags *pflag.FlagSet) error {
	cfg, err := o.loadConfig(flags)
	if err != nil {
		return err
	}

	logger, err := o.cliLogger(cfg)
	if err != nil {
		return err
	}

	tokenFile, configFile := o.TokenFile, o.ProjectConfigFile

	if len(tokenFile) == 0 || len(configFile) == 0 {
		store, err := o.loadSettings(cfg, logger)
		if err != nil {
			return err
		}
		if len(tokenFile) == 0 {
			tokenFile = store.Get(settings.TokenPathKey)
		}
		if len(configFile) == 0 {
			configFile = store.Get(settings.ProjectConfigPathKey)
		}
	}

	err = newValidator(cfg, logger).Validate(tokenFile, configFile)
	if err != nil {
		return err
	}

	o.newUI().Printf("%s\n", connection.SuccessMessage)
	return nil
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"

	"carvel.dev/yamlpad/pkg/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var knownSettingsKeys = []string{settings.TokenPathKey, settings.ProjectConfigPathKey}

type SettingsOptions struct {
	*YamlpadOptions

	Set []string
}

func NewSettingsOptions(global *YamlpadOptions) *SettingsOptions {
	return &SettingsOptions{YamlpadOptions: global}
}

func NewSettingsCmd(o *SettingsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print or update saved settings",
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.Flags()) },
	}
	cmd.Flags().StringArrayVar(&o.Set, "set", nil, fmt.Sprintf("Set value (format: key=value, empty value removes key; keys: %s) (can be specified multiple times)",
		strings.Join(knownSettingsKeys, ", ")))
	return cmd
}

func (o *SettingsOptions) Run(flags *pflag.FlagSet) error {
	ui := o.newUI()

	cfg, err := o.loadConfig(flags)
	if err != nil {
		return err
	}

	logger, err := o.cliLogger(cfg)
	if err != nil {
		return err
	}

	store, err := o.loadSettings(cfg, logger)
	if err != nil {
		return err
	}

	if len(o.Set) == 0 {
		keys := store.Keys()
		if len(keys) == 0 {
			ui.Warnf("No settings saved in '%s'\n", store.Path())
			return nil
		}
		for _, key := range keys {
			ui.Printf("%s = %s\n", key, store.Get(key))
		}
		return nil
	}

	var changed bool

	for _, kv := range o.Set {
		key, val, err := parseSetting(kv)
		if err != nil {
			return err
		}
		if store.Set(key, val) {
			changed = true
		}
	}

	if !changed {
		ui.Debugf("settings unchanged\n")
		return nil
	}

	err = store.Save()
	if err != nil {
		return err
	}

	ui.Printf("Saved settings to '%s'\n", store.Path())
	return nil
}

func parseSetting(kv string) (string, string, error) {
	key, val, found := strings.Cut(kv, "=")
	if !found {
		return "", "", fmt.Errorf("Expected setting '%s' to be in format key=value", kv)
	}

	key = strings.TrimSpace(key)
	for _, knownKey := range knownSettingsKeys {
		if key == knownKey {
			return key, strings.TrimSpace(val), nil
		}
	}
	return "", "", fmt.Errorf("Unknown setting '%s' (expected one of: %s)", key, strings.Join(knownSettingsKeys, ", "))
}

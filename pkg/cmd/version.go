// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/yamlpad/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct {
	*YamlpadOptions
}

func NewVersionOptions(global *YamlpadOptions) *VersionOptions {
	return &VersionOptions{YamlpadOptions: global}
}

func NewVersionCmd(o *VersionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	return cmd
}

func (o *VersionOptions) Run() error {
	o.newUI().Printf("yamlpad version %s\n", version.Version)

	return nil
}

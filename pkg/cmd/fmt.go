// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"
	"time"

	"carvel.dev/yamlpad/pkg/cmd/ui"
	"carvel.dev/yamlpad/pkg/files"
	"carvel.dev/yamlpad/pkg/yamlfmt"
	"carvel.dev/yamlpad/pkg/yamlmeta"
	"github.com/k14s/difflib"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type FmtOptions struct {
	*YamlpadOptions

	Files     []string
	Recursive bool
	Write     bool
	Check     bool
	Diff      bool
}

type fmtOutcome int

const (
	fmtUnchanged fmtOutcome = iota
	fmtChanged
	fmtEmpty
	fmtFailed
)

func NewFmtOptions(global *YamlpadOptions) *FmtOptions {
	return &FmtOptions{YamlpadOptions: global, Recursive: true}
}

func NewFmtCmd(o *FmtOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Format YAML files",
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.Flags()) },
	}

	defaults := yamlfmt.DefaultFormatOptions()

	cmd.Flags().StringArrayVarP(&o.Files, "file", "f", nil, "File (ie local path, directory, -) (can be specified multiple times)")
	cmd.Flags().BoolVarP(&o.Recursive, "recursive", "R", true, "Include YAML files from subdirectories")
	cmd.Flags().BoolVarP(&o.Write, "write", "w", false, "Write result back to the file instead of stdout")
	cmd.Flags().BoolVar(&o.Check, "check", false, "Only list files that are not formatted (fails if there are any)")
	cmd.Flags().BoolVar(&o.Diff, "diff", false, "Show changes formatting would make instead of the result")
	cmd.Flags().Int("mapping-indent", defaults.MappingIndent, "Indentation of nested mappings")
	cmd.Flags().Int("sequence-indent", defaults.SequenceIndent, "Indentation of sequence item contents")
	cmd.Flags().Int("sequence-offset", defaults.SequenceOffset, "Indentation of sequence dashes")
	return cmd
}

func (o *FmtOptions) Run(flags *pflag.FlagSet) error {
	ui := o.newUI()
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	if len(o.Files) == 0 {
		return fmt.Errorf("Expected at least one file to be specified via --file (-f)")
	}
	if o.Write && o.Check {
		return fmt.Errorf("Expected only one of --write or --check to be specified")
	}

	cfg, err := o.loadConfig(flags)
	if err != nil {
		return err
	}

	opts, err := cfg.FormatOptions()
	if err != nil {
		return err
	}

	ui.Debugf("format options: %s\n", opts)

	filesToProcess, err := files.NewSortedFilesFromPaths(o.Files, o.Recursive)
	if err != nil {
		return err
	}

	var unformatted []string
	var failed int

	for _, file := range filesToProcess {
		outcome, err := o.formatFile(ui, file, opts)
		if err != nil {
			return err
		}

		switch outcome {
		case fmtChanged:
			unformatted = append(unformatted, displayName(file))
		case fmtFailed:
			failed++
		}
	}

	if o.Check && len(unformatted) > 0 {
		for _, name := range unformatted {
			ui.Printf("%s\n", name)
		}
	}

	switch {
	case failed > 0:
		return fmt.Errorf("Formatting failed for %d file(s)", failed)
	case o.Check && len(unformatted) > 0:
		return fmt.Errorf("Found %d file(s) that are not formatted", len(unformatted))
	}
	return nil
}

func (o *FmtOptions) formatFile(ui ui.UI, file *files.File, opts yamlfmt.FormatOptions) (fmtOutcome, error) {
	data, err := file.Bytes()
	if err != nil {
		return fmtFailed, err
	}

	name := displayName(file)
	result := yamlfmt.FormatWithName(string(data), name, opts)

	switch result.Kind {
	case yamlfmt.ResultEmpty:
		ui.Warnf("%s: %s\n", name, result.Message())
		return fmtEmpty, nil

	case yamlfmt.ResultParseFailed:
		ui.Errorf("%s\n", result.Err.Error())
		if len(result.Err.Excerpt) > 0 {
			ui.Errorf("%s\n", strings.TrimRight(result.Err.Excerpt, "\n"))
		}
		return fmtFailed, nil
	}

	ui.Debugf("%s: %s\n", name, result.Message())
	if o.Debug {
		o.debugTree(ui, name, data)
	}

	outcome := fmtUnchanged
	if result.Changed {
		outcome = fmtChanged
	}

	switch {
	case o.Check:
		// listed by caller

	case o.Diff:
		if result.Changed {
			diff := difflib.PPDiff(strings.Split(string(data), "\n"), strings.Split(result.Text, "\n"))
			ui.Printf("%s\n", name)
			ui.PrintDiff(ensureTrailingNewline(diff))
		}

	case o.Write && !file.IsStdin():
		if result.Changed {
			err := files.WriteFileAtomic(file.Path(), []byte(result.Text), 0644)
			if err != nil {
				return fmtFailed, err
			}
			ui.Debugf("wrote %s\n", name)
		}

	default:
		ui.Printf("%s", result.Text)
	}

	return outcome, nil
}

// debugTree dumps parsed nodes with their positions and comments.
func (o *FmtOptions) debugTree(ui ui.UI, name string, data []byte) {
	docSet, err := yamlmeta.NewDocumentSetFromBytes(data, yamlmeta.DocSetOpts{AssociatedName: name})
	if err != nil {
		return
	}
	ui.Debugf("%s: parsed tree:\n", name)
	yamlmeta.NewPrinter(ui.DebugWriter()).Print(docSet)
}

func displayName(file *files.File) string {
	if path := file.Path(); len(path) > 0 {
		return path
	}
	return file.RelativePath()
}

func ensureTrailingNewline(str string) string {
	if len(str) == 0 || strings.HasSuffix(str, "\n") {
		return str
	}
	return str + "\n"
}

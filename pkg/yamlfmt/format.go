// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"fmt"
	"strings"

	"carvel.dev/yamlpad/pkg/filepos"
	"carvel.dev/yamlpad/pkg/yamlmeta"
)

// ResultKind distinguishes outcomes of Format.
type ResultKind int

const (
	// ResultFormatted means Text holds the formatted source.
	ResultFormatted ResultKind = iota
	// ResultParseFailed means source is not valid YAML; Err describes why.
	ResultParseFailed
	// ResultEmpty means source contained nothing but whitespace.
	ResultEmpty
)

func (k ResultKind) String() string {
	switch k {
	case ResultFormatted:
		return "formatted"
	case ResultParseFailed:
		return "parse-failed"
	case ResultEmpty:
		return "empty"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Result is the outcome of formatting a single source.
type Result struct {
	Kind ResultKind
	Text string
	// Changed reports whether Text differs from the source.
	Changed bool
	Err     *yamlmeta.ParseError
}

// Message describes the result for display in a status line.
func (r Result) Message() string {
	switch r.Kind {
	case ResultFormatted:
		if r.Changed {
			return "Formatted"
		}
		return "Already formatted"
	case ResultEmpty:
		return "Nothing to format"
	case ResultParseFailed:
		return fmt.Sprintf("Invalid YAML: %s", r.Err.Error())
	default:
		return r.Kind.String()
	}
}

// Format parses source and prints it back in canonical form.
// Invalid options are raised to the closest valid values;
// use FormatOptions.Validate to reject them instead.
func Format(source string, opts FormatOptions) Result {
	return FormatWithName(source, "", opts)
}

// FormatWithName is like Format but associates source with a file name
// which is then included in error positions.
func FormatWithName(source, name string, opts FormatOptions) (result Result) {
	if len(strings.TrimSpace(source)) == 0 {
		return Result{Kind: ResultEmpty}
	}

	defer func() {
		if err := recover(); err != nil {
			pos := filepos.NewUnknownPositionInFile(name)
			result = Result{
				Kind: ResultParseFailed,
				Err: &yamlmeta.ParseError{
					Position: pos,
					Message:  fmt.Sprintf("Unable to format: %v", err),
				},
			}
		}
	}()

	docSet, err := yamlmeta.NewDocumentSetFromBytes([]byte(source), yamlmeta.DocSetOpts{AssociatedName: name})
	if err != nil {
		parseErr, ok := yamlmeta.AsParseError(err)
		if !ok {
			parseErr = &yamlmeta.ParseError{
				Position: filepos.NewUnknownPositionInFile(name),
				Message:  err.Error(),
				Err:      err,
			}
		}
		return Result{Kind: ResultParseFailed, Err: parseErr}
	}

	text := NewPrinterWithOpts(nil, opts).PrintStr(docSet)

	return Result{Kind: ResultFormatted, Text: text, Changed: text != source}
}

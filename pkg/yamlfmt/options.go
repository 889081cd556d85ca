// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"fmt"
)

// FormatOptions controls block layout. Values are column counts.
type FormatOptions struct {
	// MappingIndent is the indentation of nested mapping entries relative to the parent key.
	MappingIndent int
	// SequenceIndent is the column of sequence item content relative to the parent.
	SequenceIndent int
	// SequenceOffset is the column of the item dash relative to the parent.
	SequenceOffset int
}

func DefaultFormatOptions() FormatOptions {
	return FormatOptions{MappingIndent: 2, SequenceIndent: 4, SequenceOffset: 2}
}

func (o FormatOptions) Validate() error {
	if o.MappingIndent < 1 {
		return fmt.Errorf("Expected mapping indent to be at least 1, but was %d", o.MappingIndent)
	}
	if o.SequenceOffset < 0 {
		return fmt.Errorf("Expected sequence offset to be non-negative, but was %d", o.SequenceOffset)
	}
	if o.SequenceIndent < o.SequenceOffset+2 {
		return fmt.Errorf("Expected sequence indent (%d) to leave room for '- ' after sequence offset (%d)",
			o.SequenceIndent, o.SequenceOffset)
	}
	return nil
}

// normalized raises invalid values to the closest valid ones.
func (o FormatOptions) normalized() FormatOptions {
	if o.MappingIndent < 1 {
		o.MappingIndent = 1
	}
	if o.SequenceOffset < 0 {
		o.SequenceOffset = 0
	}
	if o.SequenceIndent < o.SequenceOffset+2 {
		o.SequenceIndent = o.SequenceOffset + 2
	}
	return o
}

func (o FormatOptions) String() string {
	return fmt.Sprintf("mapping=%d sequence=%d offset=%d", o.MappingIndent, o.SequenceIndent, o.SequenceOffset)
}

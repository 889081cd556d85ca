// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

type DocSetOpts struct {
	WithoutComments bool
	// associatedName is typically a file name where data came from
	AssociatedName string
}

func NewDocumentSetFromBytes(data []byte, opts DocSetOpts) (*DocumentSet, error) {
	parserOpts := ParserOpts{WithoutComments: opts.WithoutComments}
	return NewParser(parserOpts).ParseBytes(data, opts.AssociatedName)
}

// IsEmpty reports whether stream has no documents at all.
func (d *DocumentSet) IsEmpty() bool { return len(d.Items) == 0 }

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlfmt implements the "fmt" command — formatting YAML (preserving
comments and key order) into a canonical form.

Layout is controlled by FormatOptions:

	a:
	  b: 1          # mapping children: MappingIndent (2)
	c:
	  - 1           # dash: SequenceOffset (2) from parent column
	  - x: 1        # item content: SequenceIndent (4) from parent column
	    y: 2

Formatting is idempotent: formatting already formatted output with the same
options yields identical bytes.
*/
package yamlfmt

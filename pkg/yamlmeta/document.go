// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"gopkg.in/yaml.v3"
)

// IsEmpty reports whether document has no value (comments may still be present).
func (n *Document) IsEmpty() bool {
	if n.Value == nil {
		return true
	}
	if scalar, ok := n.Value.(*Scalar); ok {
		return scalar.IsNull() && len(scalar.Anchor) == 0 && scalar.Style&yaml.TaggedStyle == 0
	}
	return false
}

// IsInjected reports whether Document was synthesized by the parser
// (eg to hold comments of a stream without any YAML values).
func (n *Document) IsInjected() bool { return n.injected }

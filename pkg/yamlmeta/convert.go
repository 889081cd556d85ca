// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"gopkg.in/yaml.v3"
)

// ToYAMLNode converts node back into yaml library representation.
// Comments are not carried over.
func ToYAMLNode(node Node) *yaml.Node {
	switch typedVal := node.(type) {
	case *Map:
		result := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Anchor: typedVal.Anchor}
		if len(typedVal.Tag) > 0 {
			result.Tag = typedVal.Tag
			result.Style |= yaml.TaggedStyle
		}
		if typedVal.Flow {
			result.Style |= yaml.FlowStyle
		}
		for _, item := range typedVal.Items {
			result.Content = append(result.Content, ToYAMLNode(item.Key), ToYAMLNode(item.Value))
		}
		return result

	case *Array:
		result := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Anchor: typedVal.Anchor}
		if len(typedVal.Tag) > 0 {
			result.Tag = typedVal.Tag
			result.Style |= yaml.TaggedStyle
		}
		if typedVal.Flow {
			result.Style |= yaml.FlowStyle
		}
		for _, item := range typedVal.Items {
			result.Content = append(result.Content, ToYAMLNode(item.Value))
		}
		return result

	case *Scalar:
		return &yaml.Node{
			Kind:   yaml.ScalarNode,
			Tag:    typedVal.Tag,
			Value:  typedVal.Value,
			Style:  typedVal.Style,
			Anchor: typedVal.Anchor,
		}

	case *Alias:
		return &yaml.Node{Kind: yaml.AliasNode, Value: typedVal.Name}

	case *Document:
		result := &yaml.Node{Kind: yaml.DocumentNode}
		if typedVal.Value != nil {
			result.Content = []*yaml.Node{ToYAMLNode(typedVal.Value)}
		}
		return result

	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"}
	}
}

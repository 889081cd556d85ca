// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"carvel.dev/yamlpad/pkg/yamlmeta"
	"gopkg.in/yaml.v3"
)

// eg `|`, `>-`, `&a !!str |+`
var blockHeaderRegexp = regexp.MustCompile(`(?:^|\s)[|>]([0-9+-]*)$`)

// scalarText renders scalar as a header (text following key or dash)
// plus block scalar content lines (without indentation).
func scalarText(s *yamlmeta.Scalar) (string, []string) {
	if s.IsNull() && s.Style&yaml.TaggedStyle == 0 {
		return nodeProps(s.Anchor, ""), nil
	}

	node := scalarNode(s)
	if node.Style&yaml.SingleQuotedStyle != 0 && strings.Contains(node.Value, "\n") {
		node.Style = doubleQuoted(node.Style)
	}

	text, ok := encodeNode(node)
	if !ok {
		return quotedScalarText(s), nil
	}

	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return text, nil
	}

	match := blockHeaderRegexp.FindStringSubmatch(lines[0])
	if match != nil && !strings.ContainsAny(match[1], "123456789") {
		return lines[0], blockContent(lines[1:])
	}

	// indentation indicators are relative to the parent column
	// which changes when formatting so avoid them altogether
	node.Style = doubleQuoted(node.Style)

	text, ok = encodeNode(node)
	if !ok || strings.Contains(text, "\n") {
		return quotedScalarText(s), nil
	}
	return text, nil
}

func scalarKeyText(s *yamlmeta.Scalar) string {
	node := scalarNode(s)
	if s.IsNull() {
		node.Value = "null"
	}
	if node.Style&(yaml.LiteralStyle|yaml.FoldedStyle) != 0 || strings.Contains(node.Value, "\n") {
		node.Style = doubleQuoted(node.Style)
	}

	text, ok := encodeNode(node)
	if !ok || strings.Contains(text, "\n") {
		return quotedScalarText(s)
	}
	return text
}

func scalarNode(s *yamlmeta.Scalar) *yaml.Node {
	return &yaml.Node{
		Kind:   yaml.ScalarNode,
		Tag:    s.Tag,
		Value:  s.Value,
		Style:  s.Style,
		Anchor: s.Anchor,
	}
}

func doubleQuoted(style yaml.Style) yaml.Style {
	return style&yaml.TaggedStyle | yaml.DoubleQuotedStyle
}

// quotedScalarText is used when yaml library refuses to render scalar
// on a single line. Go escape sequences are valid in double quoted YAML.
func quotedScalarText(s *yamlmeta.Scalar) string {
	var tag string
	if s.Style&yaml.TaggedStyle != 0 {
		tag = s.Tag
	}
	return strings.TrimSpace(nodeProps(s.Anchor, tag) + " " + strconv.Quote(s.Value))
}

func blockContent(lines []string) []string {
	var result []string
	for _, line := range lines {
		result = append(result, strings.TrimPrefix(line, "  "))
	}
	return result
}

// encodeNode renders node as standalone YAML without trailing newline.
func encodeNode(node *yaml.Node) (text string, ok bool) {
	defer func() {
		if err := recover(); err != nil {
			text, ok = "", false
		}
	}()

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(node); err != nil {
		return "", false
	}
	if err := enc.Close(); err != nil {
		return "", false
	}

	text = strings.TrimSuffix(buf.String(), "\n")
	text = strings.TrimSuffix(text, "\n...")
	return strings.TrimPrefix(text, "--- "), true
}

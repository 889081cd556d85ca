// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"fmt"
	"io"
	"strings"

	"carvel.dev/yamlpad/pkg/yamlmeta"
	"gopkg.in/yaml.v3"
)

// Printer renders yamlmeta nodes as canonical block-style YAML.
type Printer struct {
	writer *writer
	opts   FormatOptions
}

func NewPrinter(writer io.Writer) *Printer {
	return NewPrinterWithOpts(writer, DefaultFormatOptions())
}

func NewPrinterWithOpts(writer io.Writer, opts FormatOptions) *Printer {
	return &Printer{newWriter(writer), opts.normalized()}
}

func (p *Printer) Print(val yamlmeta.Node) error {
	p.print(val, p.writer)
	return p.writer.Flush()
}

func (p *Printer) PrintStr(val yamlmeta.Node) string {
	w := newWriter(nil)
	p.print(val, w)
	return w.String()
}

func (p *Printer) print(val yamlmeta.Node, writer *writer) {
	switch typedVal := val.(type) {
	case *yamlmeta.DocumentSet:
		for i, doc := range typedVal.Items {
			p.printDocument(doc, i, writer)
		}

	case *yamlmeta.Document:
		p.printDocument(typedVal, 0, writer)

	case *yamlmeta.MapItem, *yamlmeta.ArrayItem:
		panic(fmt.Sprintf("Unexpected %T in Printer", val))

	default:
		writer.AddContent(p.rootLines(val)...)
	}
}

func (p *Printer) printDocument(doc *yamlmeta.Document, idx int, writer *writer) {
	meta := newPrinterMeta(doc.Comments)

	// an empty document has to keep its start marker; otherwise
	// the stream would parse back with one document less
	if idx > 0 || len(meta.Line) > 0 || (doc.IsEmpty() && !doc.IsInjected()) {
		writer.AddContent(writerChunk{Content: "---" + meta.Suffix()})
	}
	writer.AddContent(commentChunks(meta.Head, 0)...)
	if doc.Value != nil {
		writer.AddContent(p.rootLines(doc.Value)...)
	}
	writer.AddContent(commentChunks(meta.Foot, 0)...)
}

// rootLines renders value that is not nested in any collection.
func (p *Printer) rootLines(val yamlmeta.Node) []writerChunk {
	switch typedVal := val.(type) {
	case *yamlmeta.Map:
		if _, ok := p.flowText(typedVal); !ok {
			return p.rootCollectionLines(typedVal.Comments, typedVal.Anchor, typedVal.Tag, p.mapLines(typedVal, 0))
		}
	case *yamlmeta.Array:
		if _, ok := p.flowText(typedVal); !ok {
			return p.rootCollectionLines(typedVal.Comments, typedVal.Anchor, typedVal.Tag, p.arrayLines(typedVal, 0))
		}
	}

	meta := newPrinterMeta(val.GetComments())
	text, extra := p.leafText(val, p.opts.MappingIndent)

	result := commentChunks(meta.Head, 0)
	if len(text) > 0 || len(meta.Line) > 0 {
		result = append(result, writerChunk{Content: joinNonEmpty(text, meta.Suffix())})
	}
	result = append(result, extra...)
	return append(result, commentChunks(meta.Foot, 0)...)
}

func (p *Printer) rootCollectionLines(comments []*yamlmeta.Comment, anchor, tag string, entries []writerChunk) []writerChunk {
	meta := newPrinterMeta(comments)
	var result []writerChunk

	props := nodeProps(anchor, tag)
	if len(props) > 0 {
		result = append(result, writerChunk{Content: props + meta.Suffix()})
	} else {
		// nothing to attach line comment to at the root
		result = append(result, commentChunks(meta.Line, 0)...)
	}
	return append(result, entries...)
}

// mapLines renders block mapping with its keys at column col.
func (p *Printer) mapLines(m *yamlmeta.Map, col int) []writerChunk {
	meta := newPrinterMeta(m.Comments)

	result := commentChunks(meta.Head, col)
	for _, item := range m.Items {
		result = append(result, p.mapItemLines(item, col)...)
	}
	return append(result, commentChunks(meta.Foot, col)...)
}

func (p *Printer) mapItemLines(item *yamlmeta.MapItem, col int) []writerChunk {
	meta := newPrinterMeta(item.Comments)
	key := p.keyText(item.Key)

	result := commentChunks(meta.Head, col)

	switch typedVal := item.Value.(type) {
	case *yamlmeta.Map:
		if _, ok := p.flowText(typedVal); !ok {
			valMeta := newPrinterMeta(typedVal.Comments)
			result = append(result, writerChunk{
				Indent:  col,
				Content: key + ":" + prefixed(nodeProps(typedVal.Anchor, typedVal.Tag)) + joinSuffixes(meta, valMeta),
			})
			result = append(result, p.mapLines(typedVal, col+p.opts.MappingIndent)...)
			return append(result, commentChunks(meta.Foot, col)...)
		}

	case *yamlmeta.Array:
		if _, ok := p.flowText(typedVal); !ok {
			valMeta := newPrinterMeta(typedVal.Comments)
			result = append(result, writerChunk{
				Indent:  col,
				Content: key + ":" + prefixed(nodeProps(typedVal.Anchor, typedVal.Tag)) + joinSuffixes(meta, valMeta),
			})
			result = append(result, p.arrayLines(typedVal, col)...)
			return append(result, commentChunks(meta.Foot, col)...)
		}
	}

	valMeta := printerMeta{}
	if item.Value != nil {
		valMeta = newPrinterMeta(item.Value.GetComments())
	}
	text, extra := p.leafText(item.Value, col+p.opts.MappingIndent)

	result = append(result, commentChunks(valMeta.Head, col)...)
	result = append(result, writerChunk{
		Indent:  col,
		Content: key + ":" + prefixed(text) + joinSuffixes(meta, valMeta),
	})
	result = append(result, extra...)
	result = append(result, commentChunks(valMeta.Foot, col)...)
	return append(result, commentChunks(meta.Foot, col)...)
}

// arrayLines renders block sequence belonging to a parent at column col.
func (p *Printer) arrayLines(a *yamlmeta.Array, col int) []writerChunk {
	meta := newPrinterMeta(a.Comments)
	dashCol := col + p.opts.SequenceOffset
	contentCol := col + p.opts.SequenceIndent

	result := commentChunks(meta.Head, dashCol)
	for _, item := range a.Items {
		result = append(result, p.arrayItemLines(item, dashCol, contentCol)...)
	}
	return append(result, commentChunks(meta.Foot, dashCol)...)
}

func (p *Printer) arrayItemLines(item *yamlmeta.ArrayItem, dashCol, contentCol int) []writerChunk {
	meta := newPrinterMeta(item.Comments)
	result := commentChunks(meta.Head, dashCol)

	var nested []writerChunk
	var nestedMeta printerMeta
	var nestedProps string

	switch typedVal := item.Value.(type) {
	case *yamlmeta.Map:
		if _, ok := p.flowText(typedVal); !ok {
			// mapping keys line up with item content
			nestedMeta = newPrinterMeta(typedVal.Comments)
			nestedProps = nodeProps(typedVal.Anchor, typedVal.Tag)
			nested = p.mapLines(typedVal, contentCol)
		}

	case *yamlmeta.Array:
		if _, ok := p.flowText(typedVal); !ok {
			// nested dash lines up with item content
			nestedMeta = newPrinterMeta(typedVal.Comments)
			nestedProps = nodeProps(typedVal.Anchor, typedVal.Tag)
			nested = p.arrayLines(typedVal, contentCol-p.opts.SequenceOffset)
		}
	}

	if nested != nil {
		if len(nestedProps) > 0 || len(meta.Line) > 0 || len(nestedMeta.Line) > 0 {
			result = append(result, writerChunk{
				Indent:  dashCol,
				Content: "-" + prefixed(nestedProps) + joinSuffixes(meta, nestedMeta),
			})
			result = append(result, nested...)
		} else {
			result = append(result, inlineAfterDash(nested, dashCol)...)
		}
		return append(result, commentChunks(meta.Foot, dashCol)...)
	}

	valMeta := printerMeta{}
	if item.Value != nil {
		valMeta = newPrinterMeta(item.Value.GetComments())
	}
	text, extra := p.leafText(item.Value, contentCol)

	result = append(result, commentChunks(valMeta.Head, dashCol)...)
	result = append(result, writerChunk{
		Indent:  dashCol,
		Content: "-" + prefixed(text) + joinSuffixes(meta, valMeta),
	})
	result = append(result, extra...)
	result = append(result, commentChunks(valMeta.Foot, dashCol)...)
	return append(result, commentChunks(meta.Foot, dashCol)...)
}

// leafText renders value that fits after a key or a dash. Block scalar
// content lines are returned separately, indented at contentCol.
func (p *Printer) leafText(val yamlmeta.Node, contentCol int) (string, []writerChunk) {
	switch typedVal := val.(type) {
	case nil:
		return "", nil

	case *yamlmeta.Scalar:
		header, content := scalarText(typedVal)
		var extra []writerChunk
		for _, line := range content {
			extra = append(extra, writerChunk{Indent: contentCol, Content: line})
		}
		return header, extra

	case *yamlmeta.Alias:
		return "*" + typedVal.Name, nil

	case *yamlmeta.Map, *yamlmeta.Array:
		if text, ok := p.flowText(typedVal); ok {
			return text, nil
		}
		panic(fmt.Sprintf("Expected %T to render on a single line", val))

	default:
		panic(fmt.Sprintf("Unexpected %T in Printer", val))
	}
}

// flowText renders empty or flow collections on a single line.
// Flow collections holding comments are expanded into block style instead.
func (p *Printer) flowText(val yamlmeta.Node) (string, bool) {
	switch typedVal := val.(type) {
	case *yamlmeta.Map:
		if !typedVal.IsEmpty() && (!typedVal.Flow || yamlmeta.HasComments(typedVal)) {
			return "", false
		}
	case *yamlmeta.Array:
		if !typedVal.IsEmpty() && (!typedVal.Flow || yamlmeta.HasComments(typedVal)) {
			return "", false
		}
	default:
		return "", false
	}

	text, ok := encodeNode(yamlmeta.ToYAMLNode(val))
	if !ok || strings.Contains(text, "\n") {
		return "", false
	}
	return text, true
}

func (p *Printer) keyText(key yamlmeta.Node) string {
	switch typedVal := key.(type) {
	case *yamlmeta.Scalar:
		return scalarKeyText(typedVal)

	case *yamlmeta.Alias:
		// space keeps colon out of the alias name
		return "*" + typedVal.Name + " "

	case *yamlmeta.Map, *yamlmeta.Array:
		node := yamlmeta.ToYAMLNode(typedVal)
		node.Style |= yaml.FlowStyle
		if text, ok := encodeNode(node); ok && !strings.Contains(text, "\n") {
			return text
		}
		panic(fmt.Sprintf("Expected %T key to render on a single line", key))

	default:
		return "null"
	}
}

type printerMeta struct {
	Head []*yamlmeta.Comment
	Line []*yamlmeta.Comment
	Foot []*yamlmeta.Comment
}

func newPrinterMeta(comments []*yamlmeta.Comment) printerMeta {
	return printerMeta{
		Head: yamlmeta.CommentsOfKind(comments, yamlmeta.CommentHead),
		Line: yamlmeta.CommentsOfKind(comments, yamlmeta.CommentLine),
		Foot: yamlmeta.CommentsOfKind(comments, yamlmeta.CommentFoot),
	}
}

// Suffix joins line comments into a single trailing comment.
func (m printerMeta) Suffix() string {
	var suffix string
	for _, comment := range m.Line {
		suffix += " " + comment.Data
	}
	return suffix
}

func joinSuffixes(metas ...printerMeta) string {
	var suffix string
	for _, meta := range metas {
		suffix += meta.Suffix()
	}
	return suffix
}

func commentChunks(comments []*yamlmeta.Comment, col int) []writerChunk {
	var result []writerChunk
	for _, comment := range comments {
		result = append(result, writerChunk{Indent: col, Content: comment.Data, Comment: true})
	}
	return result
}

func nodeProps(anchor, tag string) string {
	var props []string
	if len(anchor) > 0 {
		props = append(props, "&"+anchor)
	}
	if len(tag) > 0 {
		props = append(props, tag)
	}
	return strings.Join(props, " ")
}

func prefixed(text string) string {
	if len(text) == 0 {
		return ""
	}
	return " " + text
}

func joinNonEmpty(text, suffix string) string {
	if len(text) == 0 {
		return strings.TrimPrefix(suffix, " ")
	}
	return text + suffix
}

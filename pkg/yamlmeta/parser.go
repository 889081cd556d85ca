// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"carvel.dev/yamlpad/pkg/filepos"
	"gopkg.in/yaml.v3"
)

var (
	// eg "yaml: line 2: found character that cannot start any token"
	lineErrRegexp = regexp.MustCompile(`^yaml: line (?P<num>\d+): (?P<msg>.+)$`)

	// yaml library only accepts 1.1 directives; 1.2 content parses the same
	yaml12DirectiveRegexp = regexp.MustCompile(`(?m)^%YAML[ \t]+1\.2\b`)
)

type ParserOpts struct {
	WithoutComments bool
}

type Parser struct {
	opts           ParserOpts
	associatedName string
}

func NewParser(opts ParserOpts) *Parser {
	return &Parser{opts, ""}
}

// ParseBytes parses a YAML stream. Whitespace-only input produces a
// DocumentSet without documents. Failures are always *ParseError.
func (p *Parser) ParseBytes(data []byte, associatedName string) (docSet *DocumentSet, err error) {
	p.associatedName = associatedName

	// yaml library panics on a handful of malformed inputs
	defer func() {
		if rec := recover(); rec != nil {
			docSet = nil
			err = p.newParseError(data, fmt.Errorf("yaml: %v", rec))
		}
	}()

	docSet = &DocumentSet{Position: p.newUnknownPosition()}

	dec := yaml.NewDecoder(bytes.NewReader(downgradeVersionDirectives(data)))

	for {
		var rawDoc yaml.Node

		err := dec.Decode(&rawDoc)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, p.newParseError(data, err)
		}

		docSet.Items = append(docSet.Items, p.parseDocument(&rawDoc))
	}

	if len(docSet.Items) == 0 {
		// yaml library drops streams that only hold comments
		comments := p.looseComments(data)
		if len(comments) > 0 {
			docSet.Items = append(docSet.Items, &Document{
				Comments: comments,
				Position: p.newUnknownPosition(),
				injected: true,
			})
		}
	}

	return docSet, nil
}

// downgradeVersionDirectives rewrites "%YAML 1.2" as "%YAML 1.1".
// Replacement has the same length so positions stay intact.
func downgradeVersionDirectives(data []byte) []byte {
	if !yaml12DirectiveRegexp.Match(data) {
		return data
	}
	return yaml12DirectiveRegexp.ReplaceAllFunc(data, func(directive []byte) []byte {
		return append(directive[:len(directive)-1:len(directive)-1], '1')
	})
}

func (p *Parser) parseDocument(raw *yaml.Node) *Document {
	doc := &Document{
		Comments: p.comments(raw),
		Position: p.newPosition(raw.Line, raw.Column),
	}
	if raw.Kind == yaml.DocumentNode {
		if len(raw.Content) > 0 {
			doc.Value = p.parse(raw.Content[0])
		}
	} else {
		doc.Value = p.parse(raw)
	}
	return doc
}

func (p *Parser) parse(raw *yaml.Node) Node {
	switch raw.Kind {
	case yaml.MappingNode:
		result := &Map{
			Comments: p.comments(raw),
			Anchor:   raw.Anchor,
			Tag:      explicitTag(raw),
			Flow:     raw.Style&yaml.FlowStyle != 0,
			Position: p.newPosition(raw.Line, raw.Column),
		}
		for i := 0; i+1 < len(raw.Content); i += 2 {
			key, val := raw.Content[i], raw.Content[i+1]
			result.Items = append(result.Items, &MapItem{
				// comments on keys belong to the whole entry
				Comments: p.comments(key),
				Key:      p.parseWithoutComments(key),
				Value:    p.parse(val),
				Position: p.newPosition(key.Line, key.Column),
			})
		}
		return result

	case yaml.SequenceNode:
		result := &Array{
			Comments: p.comments(raw),
			Anchor:   raw.Anchor,
			Tag:      explicitTag(raw),
			Flow:     raw.Style&yaml.FlowStyle != 0,
			Position: p.newPosition(raw.Line, raw.Column),
		}
		for _, item := range raw.Content {
			result.Items = append(result.Items, &ArrayItem{
				Value:    p.parse(item),
				Position: p.newPosition(item.Line, item.Column),
			})
		}
		return result

	case yaml.AliasNode:
		return &Alias{
			Comments: p.comments(raw),
			Name:     raw.Value,
			Position: p.newPosition(raw.Line, raw.Column),
		}

	case yaml.DocumentNode:
		// documents never nest; treat as its content
		if len(raw.Content) > 0 {
			return p.parse(raw.Content[0])
		}
		return &Scalar{Tag: "!!null", Position: p.newPosition(raw.Line, raw.Column)}

	default:
		return &Scalar{
			Comments: p.comments(raw),
			Value:    raw.Value,
			Tag:      raw.ShortTag(),
			Style:    raw.Style,
			Anchor:   raw.Anchor,
			Position: p.newPosition(raw.Line, raw.Column),
		}
	}
}

func (p *Parser) parseWithoutComments(raw *yaml.Node) Node {
	node := p.parse(raw)
	switch typed := node.(type) {
	case *Scalar:
		typed.Comments = nil
	case *Alias:
		typed.Comments = nil
	case *Map:
		typed.Comments = nil
	case *Array:
		typed.Comments = nil
	}
	return node
}

// explicitTag returns collection tag only when it was spelled out in source
// or cannot be implied from the collection kind.
func explicitTag(raw *yaml.Node) string {
	if raw.Style&yaml.TaggedStyle != 0 {
		return raw.Tag
	}
	switch raw.ShortTag() {
	case "!!map", "!!seq", "":
		return ""
	default:
		return raw.Tag
	}
}

func (p *Parser) comments(raw *yaml.Node) []*Comment {
	if p.opts.WithoutComments {
		return nil
	}

	pos := p.newPosition(raw.Line, raw.Column)

	var result []*Comment
	result = append(result, p.splitComments(raw.HeadComment, CommentHead, pos)...)
	result = append(result, p.splitComments(raw.LineComment, CommentLine, pos)...)
	result = append(result, p.splitComments(raw.FootComment, CommentFoot, pos)...)
	return result
}

func (p *Parser) splitComments(data string, kind CommentKind, pos *filepos.Position) []*Comment {
	var result []*Comment
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			line = "# " + line
		}
		result = append(result, &Comment{Kind: kind, Data: line, Position: pos.DeepCopy()})
	}
	return result
}

func (p *Parser) looseComments(data []byte) []*Comment {
	if p.opts.WithoutComments {
		return nil
	}

	var result []*Comment
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			result = append(result, &Comment{
				Kind:     CommentHead,
				Data:     line,
				Position: p.newPosition(i+1, 1),
			})
		}
	}
	return result
}

func (p *Parser) newParseError(data []byte, err error) *ParseError {
	msg := err.Error()
	line := 0

	submatches := lineErrRegexp.FindStringSubmatch(msg)
	if len(submatches) == 3 {
		if num, convErr := strconv.Atoi(submatches[1]); convErr == nil {
			line = num
		}
		msg = submatches[2]
	} else {
		msg = strings.TrimPrefix(msg, "yaml: ")
	}

	var col int
	var excerpt string

	if loc, ok := locateSyntaxError(data); ok {
		switch {
		case line == 0 && loc.line > 0:
			line, col, excerpt = loc.line, loc.column, loc.excerpt
		case line > 0 && loc.line == line:
			col, excerpt = loc.column, loc.excerpt
		}
	}

	pos := p.newUnknownPosition()
	if line > 0 {
		pos = filepos.NewPositionWithColumn(line, col)
		pos.SetFile(p.associatedName)
		pos.SetLineFromSource(data)
	}

	return &ParseError{Position: pos, Message: msg, Excerpt: excerpt, Err: err}
}

func (p *Parser) newPosition(line, column int) *filepos.Position {
	if line <= 0 {
		return p.newUnknownPosition()
	}
	pos := filepos.NewPositionWithColumn(line, column)
	pos.SetFile(p.associatedName)
	return pos
}

func (p *Parser) newUnknownPosition() *filepos.Position {
	pos := filepos.NewUnknownPosition()
	pos.SetFile(p.associatedName)
	return pos
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"carvel.dev/yamlpad/pkg/filepos"
	"gopkg.in/yaml.v3"
)

type Node interface {
	GetPosition() *filepos.Position

	GetValues() []interface{} // ie children

	GetComments() []*Comment
	addComments(...*Comment)

	sealed() // limit the concrete types of Node to map directly only to types allowed in YAML spec.
}

var _ = []Node{&DocumentSet{}, &Document{}, &Map{}, &MapItem{}, &Array{}, &ArrayItem{}, &Scalar{}, &Alias{}}

type DocumentSet struct {
	Comments []*Comment
	Items    []*Document
	Position *filepos.Position
}

type Document struct {
	Comments []*Comment
	Value    Node // nil when document only holds comments
	Position *filepos.Position

	injected bool // indicates that Document was not present in the parsed content
}

type Map struct {
	Comments []*Comment
	Items    []*MapItem
	Anchor   string
	Tag      string // explicit tag only
	Flow     bool
	Position *filepos.Position
}

type MapItem struct {
	Comments []*Comment
	Key      Node
	Value    Node
	Position *filepos.Position
}

type Array struct {
	Comments []*Comment
	Items    []*ArrayItem
	Anchor   string
	Tag      string // explicit tag only
	Flow     bool
	Position *filepos.Position
}

type ArrayItem struct {
	Comments []*Comment
	Value    Node
	Position *filepos.Position
}

type Scalar struct {
	Comments []*Comment
	Value    string
	Tag      string // resolved short tag, eg !!str
	Style    yaml.Style
	Anchor   string
	Position *filepos.Position
}

type Alias struct {
	Comments []*Comment
	Name     string
	Position *filepos.Position
}

type CommentKind int

const (
	// CommentHead sits on its own line(s) above the node.
	CommentHead CommentKind = iota
	// CommentLine trails the node on the same line.
	CommentLine
	// CommentFoot sits on its own line(s) below the node.
	CommentFoot
)

func (k CommentKind) String() string {
	switch k {
	case CommentHead:
		return "head"
	case CommentLine:
		return "line"
	case CommentFoot:
		return "foot"
	default:
		return "unknown"
	}
}

type Comment struct {
	Kind     CommentKind
	Data     string // includes leading '#'
	Position *filepos.Position
}

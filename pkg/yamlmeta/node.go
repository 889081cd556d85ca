// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"carvel.dev/yamlpad/pkg/filepos"
)

func (n *DocumentSet) GetPosition() *filepos.Position { return n.Position }
func (n *Document) GetPosition() *filepos.Position    { return n.Position }
func (n *Map) GetPosition() *filepos.Position         { return n.Position }
func (n *MapItem) GetPosition() *filepos.Position     { return n.Position }
func (n *Array) GetPosition() *filepos.Position       { return n.Position }
func (n *ArrayItem) GetPosition() *filepos.Position   { return n.Position }
func (n *Scalar) GetPosition() *filepos.Position      { return n.Position }
func (n *Alias) GetPosition() *filepos.Position       { return n.Position }

func (n *DocumentSet) GetValues() []interface{} {
	var result []interface{}
	for _, item := range n.Items {
		result = append(result, item)
	}
	return result
}

func (n *Document) GetValues() []interface{} {
	if n.Value == nil {
		return nil
	}
	return []interface{}{n.Value}
}

func (n *Map) GetValues() []interface{} {
	var result []interface{}
	for _, item := range n.Items {
		result = append(result, item)
	}
	return result
}

func (n *MapItem) GetValues() []interface{} { return []interface{}{n.Key, n.Value} }

func (n *Array) GetValues() []interface{} {
	var result []interface{}
	for _, item := range n.Items {
		result = append(result, item)
	}
	return result
}

func (n *ArrayItem) GetValues() []interface{} { return []interface{}{n.Value} }
func (n *Scalar) GetValues() []interface{}    { return nil }
func (n *Alias) GetValues() []interface{}     { return nil }

func (n *DocumentSet) GetComments() []*Comment { return n.Comments }
func (n *Document) GetComments() []*Comment    { return n.Comments }
func (n *Map) GetComments() []*Comment         { return n.Comments }
func (n *MapItem) GetComments() []*Comment     { return n.Comments }
func (n *Array) GetComments() []*Comment       { return n.Comments }
func (n *ArrayItem) GetComments() []*Comment   { return n.Comments }
func (n *Scalar) GetComments() []*Comment      { return n.Comments }
func (n *Alias) GetComments() []*Comment       { return n.Comments }

func (n *DocumentSet) addComments(c ...*Comment) { n.Comments = append(n.Comments, c...) }
func (n *Document) addComments(c ...*Comment)    { n.Comments = append(n.Comments, c...) }
func (n *Map) addComments(c ...*Comment)         { n.Comments = append(n.Comments, c...) }
func (n *MapItem) addComments(c ...*Comment)     { n.Comments = append(n.Comments, c...) }
func (n *Array) addComments(c ...*Comment)       { n.Comments = append(n.Comments, c...) }
func (n *ArrayItem) addComments(c ...*Comment)   { n.Comments = append(n.Comments, c...) }
func (n *Scalar) addComments(c ...*Comment)      { n.Comments = append(n.Comments, c...) }
func (n *Alias) addComments(c ...*Comment)       { n.Comments = append(n.Comments, c...) }

func (n *DocumentSet) sealed() {}
func (n *Document) sealed()    {}
func (n *Map) sealed()         {}
func (n *MapItem) sealed()     {}
func (n *Array) sealed()       {}
func (n *ArrayItem) sealed()   {}
func (n *Scalar) sealed()      {}
func (n *Alias) sealed()       {}

// CommentsOfKind filters comments down to a single kind preserving order.
func CommentsOfKind(comments []*Comment, kind CommentKind) []*Comment {
	var result []*Comment
	for _, c := range comments {
		if c.Kind == kind {
			result = append(result, c)
		}
	}
	return result
}

// IsNull reports whether scalar was written as an empty (implicit) null, eg `key:`.
func (n *Scalar) IsNull() bool {
	return n.Tag == "!!null" && n.Value == ""
}

// IsEmpty reports whether a collection has no entries.
func (n *Map) IsEmpty() bool   { return len(n.Items) == 0 }
func (n *Array) IsEmpty() bool { return len(n.Items) == 0 }

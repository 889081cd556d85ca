// Copyright 2021 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

// Visitor performs an operation on the given Node while traversing the AST.
// Typically defines the action taken during a Walk().
type Visitor interface {
	Visit(Node) error
}

// VisitorFunc adapts a plain function to Visitor.
type VisitorFunc func(Node) error

func (f VisitorFunc) Visit(n Node) error { return f(n) }

// Walk traverses the tree starting at `n`, recursively, depth-first, invoking `v` on each node.
// if `v` returns non-nil error, the traversal is aborted.
func Walk(n Node, v Visitor) error {
	err := v.Visit(n)
	if err != nil {
		return err
	}

	for _, c := range n.GetValues() {
		if cn, ok := c.(Node); ok && cn != nil {
			err := Walk(cn, v)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

type stopWalk struct{}

func (stopWalk) Error() string { return "stop" }

// HasComments reports whether any node strictly below `n` carries a comment.
func HasComments(n Node) bool {
	found := false
	for _, c := range n.GetValues() {
		cn, ok := c.(Node)
		if !ok || cn == nil {
			continue
		}
		_ = Walk(cn, VisitorFunc(func(node Node) error {
			if len(node.GetComments()) > 0 {
				found = true
				return stopWalk{}
			}
			return nil
		}))
		if found {
			return true
		}
	}
	return false
}

package ast

import (
	"fmt"
	"strings"

	"github.com/matty-l/violet"
)

// Node is a node of an abstract syntax tree. Nodes are read-only once created.
type Node struct {
	kind     Kind
	value    string
	label    string
	line     int
	span     violet.Span
	children []*Node
}

// NewNode creates an AST node. It is intended for trees built by hand; Normalize
// creates nodes from parse trees.
func NewNode(kind Kind, value string, line int, children ...*Node) *Node {
	n := &Node{
		kind:     kind,
		value:    value,
		label:    value,
		line:     line,
		children: children,
	}
	for i, ch := range children {
		if i == 0 {
			n.span = ch.span
		} else {
			n.span = n.span.Extend(ch.span)
		}
	}
	return n
}

// Kind returns the node kind.
func (n *Node) Kind() Kind {
	return n.kind
}

// Value returns the literal value of terminal-like nodes, or a structural label.
func (n *Node) Value() string {
	return n.value
}

// Label returns the name of the grammar symbol the node stems from.
func (n *Node) Label() string {
	return n.label
}

// Line returns the source line of the node's first token.
func (n *Node) Line() int {
	return n.line
}

// Span returns the range of input tokens the node covers.
func (n *Node) Span() violet.Span {
	return n.span
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns child number i, or nil.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the list of children.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// FirstChildOfKind returns the first child of kind k, or nil.
func (n *Node) FirstChildOfKind(k Kind) *Node {
	for _, child := range n.children {
		if child.kind == k {
			return child
		}
	}
	return nil
}

// ChildrenOfKind returns all children of kind k, in order.
func (n *Node) ChildrenOfKind(k Kind) []*Node {
	var result []*Node
	for _, child := range n.children {
		if child.kind == k {
			result = append(result, child)
		}
	}
	return result
}

// Walk visits the subtree rooted at n in pre-order. If f returns false, the
// children of the current node are skipped.
func (n *Node) Walk(f func(node *Node, depth int) bool) {
	n.walk(f, 0)
}

func (n *Node) walk(f func(*Node, int) bool, depth int) {
	if !f(n, depth) {
		return
	}
	for _, child := range n.children {
		child.walk(f, depth+1)
	}
}

// Dump traces the subtree at debug level, with kind names taken from kinds.
func (n *Node) Dump(kinds *KindTable) {
	n.Walk(func(node *Node, depth int) bool {
		tracer().Debugf("%s%s %q @%d", strings.Repeat("  ", depth), kinds.Name(node.kind),
			node.value, node.line)
		return true
	})
}

func (n *Node) String() string {
	if n.label == n.value {
		return fmt.Sprintf("(%s)", n.label)
	}
	return fmt.Sprintf("(%s %q)", n.label, n.value)
}

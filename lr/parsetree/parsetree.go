/*
Package parsetree implements the raw parse tree produced by the forest extractor.

Trees are built in two phases. A Builder wraps a chart item and collects child
builders while the extractor resolves the item's RHS. Freezing a builder yields an
immutable Node; from then on the builder refuses further mutation. Frozen nodes
support structural equality and carry a structural hash, computed once at freeze
time.

    b := parsetree.NewBuilder(rootItem)
    c := b.AddChild(childItem)
    …
    root := b.Freeze()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parsetree

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/matty-l/violet"
	"github.com/matty-l/violet/lr/chart"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'violet.lr'.
func tracer() tracing.Trace {
	return tracing.Select("violet.lr")
}

// --- Builder ---------------------------------------------------------------

// Builder is the mutable construction-time form of a parse tree node.
type Builder struct {
	item     *chart.Item
	children []*Builder
	frozen   bool
}

// NewBuilder creates a builder for a tree node wrapping a chart item.
func NewBuilder(item *chart.Item) *Builder {
	return &Builder{item: item}
}

// Item returns the chart item of the node under construction.
func (b *Builder) Item() *chart.Item {
	return b.item
}

// AddChild appends a child node for item and returns its builder.
// After Freeze has been called, AddChild returns nil.
func (b *Builder) AddChild(item *chart.Item) *Builder {
	if b.frozen {
		tracer().Errorf("parse tree node for %v is frozen, cannot add child %v", b.item, item)
		return nil
	}
	child := &Builder{item: item}
	b.children = append(b.children, child)
	return child
}

// Children returns the child builders, in RHS order.
func (b *Builder) Children() []*Builder {
	return append([]*Builder(nil), b.children...)
}

// Freeze finalizes the subtree rooted at b and returns its immutable form.
func (b *Builder) Freeze() *Node {
	b.frozen = true
	n := &Node{item: b.item}
	if b.item.Token != nil {
		n.line = b.item.Token.Line()
	}
	if len(b.children) > 0 {
		n.children = make([]*Node, len(b.children))
		for i, child := range b.children {
			n.children[i] = child.Freeze()
			if n.line == 0 {
				n.line = n.children[i].line
			}
		}
	}
	n.hash = n.computeHash()
	return n
}

// --- Frozen nodes ----------------------------------------------------------

// Node is an immutable node of a raw parse tree. Every node wraps one completed
// chart item and holds one child per resolved RHS element.
type Node struct {
	item     *chart.Item
	children []*Node
	line     int
	hash     string
}

// signature is the pointer-free projection of a node used for hashing.
type signature struct {
	Symbol     string
	Production []string
	From, To   uint64
	Lexeme     string
	Children   []string
}

func (n *Node) computeHash() string {
	sig := signature{
		Symbol:     n.item.Name,
		Production: n.item.Production,
		From:       n.item.Start,
		To:         n.item.End,
		Lexeme:     n.Lexeme(),
		Children:   make([]string, len(n.children)),
	}
	for i, ch := range n.children {
		sig.Children[i] = ch.hash
	}
	h, err := structhash.Hash(sig, 1)
	if err != nil {
		tracer().Errorf("cannot hash parse tree node %v: %v", n.item, err)
		return ""
	}
	return h
}

// Item returns the chart item the node wraps.
func (n *Node) Item() *chart.Item {
	return n.item
}

// Symbol returns the name of the matched grammar symbol.
func (n *Node) Symbol() string {
	return n.item.Name
}

// Span returns the input range covered by the node.
func (n *Node) Span() violet.Span {
	return n.item.Span()
}

// Lexeme returns the scanned text of a terminal node, or "".
func (n *Node) Lexeme() string {
	if n.item.Token == nil {
		return ""
	}
	return n.item.Token.Lexeme()
}

// Line returns the source line of the first token covered by the node, or 0.
func (n *Node) Line() int {
	return n.line
}

// IsLeaf is true for nodes without children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// IsTerminal is true for nodes wrapping a self-referential terminal item.
func (n *Node) IsTerminal() bool {
	return n.item.IsTerminal()
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

// Hash returns the structural hash of the subtree rooted at n.
func (n *Node) Hash() string {
	return n.hash
}

// Equal is true if two subtrees are structurally equal: same symbols, productions,
// spans and lexemes, with equal children in the same order.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.hash != other.hash || n.item.Name != other.item.Name ||
		n.item.Start != other.item.Start || n.item.End != other.item.End ||
		n.Lexeme() != other.Lexeme() || len(n.children) != len(other.children) {
		return false
	}
	for i, ch := range n.children {
		if !ch.Equal(other.children[i]) {
			return false
		}
	}
	return true
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
	for _, ch := range n.children {
		ch.walk(f, depth+1)
	}
}

// Dump traces the subtree at debug level.
func (n *Node) Dump() {
	n.Walk(func(node *Node, depth int) bool {
		tracer().Debugf("%s%s", strings.Repeat(". ", depth), node)
		return true
	})
}

func (n *Node) String() string {
	if n.item.Token != nil {
		return fmt.Sprintf("%q%s", n.Lexeme(), n.Span())
	}
	return fmt.Sprintf("%s%s", n.item.Name, n.Span())
}

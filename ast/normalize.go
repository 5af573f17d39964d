package ast

import (
	"errors"
	"fmt"

	"github.com/matty-l/violet/lr/parsetree"
)

// ErrSyntheticRoot is returned if the root of a tree is synthetic and has more
// than one child, so there is no node to promote in its place.
var ErrSyntheticRoot = errors.New("synthetic root with more than one child")

// Normalize creates an AST from a raw parse tree. Nodes are classified with kinds;
// nodes of kind kinds.Synthetic() are spliced out: their children replace them in
// their parent's child list, in order.
//
// The value of a leaf is its lexeme. The value of an interior node whose
// production consists of a single terminal is that terminal's lexeme, otherwise
// it is the name of the grammar symbol.
//
// A synthetic root with exactly one child is replaced by that child.
func Normalize(raw *parsetree.Node, kinds *KindTable) (*Node, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: empty parse tree", ErrUnknownSymbol)
	}
	root, err := normalize(raw, kinds)
	if err != nil {
		return nil, err
	}
	root, err = promote(root, kinds.Synthetic())
	if err != nil {
		return nil, err
	}
	tracer().Infof("normalized AST for dialect %s, root = %v", kinds.Dialect(), root)
	return root, nil
}

// normalize works depth-first, post-order.
func normalize(raw *parsetree.Node, kinds *KindTable) (*Node, error) {
	kind, err := kinds.KindOf(raw)
	if err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	n := &Node{
		kind:  kind,
		label: raw.Symbol(),
		line:  raw.Line(),
		span:  raw.Span(),
	}
	n.value = valueOf(raw)
	if raw.ChildCount() > 0 {
		n.children = make([]*Node, 0, raw.ChildCount())
	}
	for _, rawChild := range raw.Children() {
		child, err := normalize(rawChild, kinds)
		if err != nil {
			return nil, err
		}
		n.children = splice(n.children, child, kinds.Synthetic())
	}
	return n, nil
}

func valueOf(raw *parsetree.Node) string {
	if raw.IsLeaf() {
		if lexeme := raw.Lexeme(); lexeme != "" || raw.IsTerminal() {
			return lexeme
		}
		return raw.Symbol()
	}
	if raw.ChildCount() == 1 && raw.Child(0).IsTerminal() {
		return raw.Child(0).Lexeme()
	}
	return raw.Symbol()
}

// splice appends child to children, or the children of child if it is synthetic.
func splice(children []*Node, child *Node, synthetic Kind) []*Node {
	if child.kind != synthetic {
		return append(children, child)
	}
	tracer().Debugf("splicing %d children of %v", len(child.children), child)
	return append(children, child.children...)
}

func promote(root *Node, synthetic Kind) (*Node, error) {
	if root.kind != synthetic {
		return root, nil
	}
	if len(root.children) != 1 {
		err := fmt.Errorf("%w: %v", ErrSyntheticRoot, root)
		tracer().Errorf(err.Error())
		return nil, err
	}
	return root.children[0], nil
}

// Resplice normalizes an existing AST with respect to a synthetic kind.
// If the tree contains no synthetic node, n itself is returned.
func Resplice(n *Node, synthetic Kind) (*Node, error) {
	r, _ := resplice(n, synthetic)
	return promote(r, synthetic)
}

func resplice(n *Node, synthetic Kind) (*Node, bool) {
	changed := false
	children := make([]*Node, 0, len(n.children))
	for _, child := range n.children {
		c, ch := resplice(child, synthetic)
		if ch || c.kind == synthetic {
			changed = true
		}
		children = splice(children, c, synthetic)
	}
	if !changed {
		return n, false
	}
	copied := *n
	copied.children = children
	return &copied, true
}

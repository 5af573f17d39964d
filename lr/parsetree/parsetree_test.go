package parsetree

import (
	"testing"

	"github.com/matty-l/violet"
	"github.com/matty-l/violet/lr"
	"github.com/matty-l/violet/lr/chart"
	"github.com/matty-l/violet/lr/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeTree(t *testing.T) (*Builder, *Node) {
	b := lr.NewGrammarBuilder("G")
	b.LHS("S").N("A").T("a", 1).End()
	b.LHS("A").T("b", 2).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	tokB := scanner.MakeDefaultToken(2, "b", violet.Span{0, 1}, 3)
	tokA := scanner.MakeDefaultToken(1, "a", violet.Span{1, 2}, 4)
	root := NewBuilder(chart.NewRuleItem(g.Rule(1), 2, 0, 2))
	A := root.AddChild(chart.NewRuleItem(g.Rule(2), 1, 0, 1))
	A.AddChild(chart.NewTerminalItem(tokB, "b", 0))
	root.AddChild(chart.NewTerminalItem(tokA, "a", 1))
	return root, root.Freeze()
}

func TestFreeze(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.lr")
	defer teardown()
	//
	builder, root := makeTree(t)
	root.Dump()
	if root.Symbol() != "S" || root.ChildCount() != 2 {
		t.Fatalf("Expected root S with 2 children, is %v", root)
	}
	if root.Line() != 3 {
		t.Errorf("Expected root to start in line 3, is %d", root.Line())
	}
	leaf := root.Child(0).Child(0)
	if !leaf.IsLeaf() || !leaf.IsTerminal() || leaf.Lexeme() != "b" {
		t.Errorf("Expected leaf for terminal b, is %v", leaf)
	}
	if builder.AddChild(chart.NewTerminalItem(nil, "x", 2)) != nil {
		t.Errorf("Expected frozen builder to refuse new children")
	}
	if len(builder.Children()) != 2 {
		t.Errorf("Expected builder to still have 2 children")
	}
}

func TestEqualAndHash(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.lr")
	defer teardown()
	//
	_, t1 := makeTree(t)
	_, t2 := makeTree(t)
	if t1.Hash() == "" || t1.Hash() != t2.Hash() {
		t.Errorf("Expected equal hashes, are %q and %q", t1.Hash(), t2.Hash())
	}
	if !t1.Equal(t2) {
		t.Errorf("Expected trees to be equal")
	}
	if t1.Equal(t1.Child(0)) || t1.Child(0).Hash() == t1.Child(1).Hash() {
		t.Errorf("Expected different subtrees to differ")
	}
}

func TestWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.lr")
	defer teardown()
	//
	_, root := makeTree(t)
	var symbols []string
	root.Walk(func(n *Node, depth int) bool {
		symbols = append(symbols, n.Symbol())
		return n.Symbol() != "A"
	})
	if len(symbols) != 3 || symbols[1] != "A" || symbols[2] != "a" {
		t.Errorf("Expected pre-order walk S A a, is %v", symbols)
	}
}

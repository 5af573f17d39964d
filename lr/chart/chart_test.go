package chart

import (
	"errors"
	"testing"

	"github.com/matty-l/violet/lr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeGrammar(t *testing.T) *lr.Grammar {
	b := lr.NewGrammarBuilder("G")
	b.LHS("S").N("A").T("a", 1).End()
	b.LHS("A").T("b", 2).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.lr")
	defer teardown()
	//
	g := makeGrammar(t)
	item := NewRuleItem(g.Rule(1), 0, 0, 0)
	if item.Completed() {
		t.Errorf("Expected %v to be incomplete", item)
	}
	if item.Next().Name != "A" {
		t.Errorf("Expected symbol after dot to be A, is %v", item.Next())
	}
	item = item.Advance(1).Advance(2)
	if !item.Completed() || item.Span().Len() != 2 {
		t.Errorf("Expected %v to be completed with span length 2", item)
	}
	if item.IsTerminal() {
		t.Errorf("Expected rule item not to be terminal")
	}
	term := NewTerminalItem(nil, "b", 0)
	if !term.IsTerminal() || !term.Completed() || term.Serial() != -1 {
		t.Errorf("Expected %v to be a completed terminal item", term)
	}
	t.Logf("item = %v, terminal = %v", item, term)
}

func TestChartAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.lr")
	defer teardown()
	//
	g := makeGrammar(t)
	c := New(2)
	if c.Len() != 3 || c.Last() != 2 {
		t.Fatalf("Expected chart with 3 rows, has %d", c.Len())
	}
	first, added := c.Add(0, NewRuleItem(g.Rule(0), 0, 0, 0))
	if !added || first.Seq != 1 {
		t.Errorf("Expected first item to be added with serial 1, is %d", first.Seq)
	}
	again, added := c.Add(0, NewRuleItem(g.Rule(0), 0, 0, 0))
	if added || again != first {
		t.Errorf("Expected duplicate item to be rejected")
	}
	c.Add(1, NewTerminalItem(nil, "b", 0))
	c.Add(1, NewRuleItem(g.Rule(2), 1, 0, 1))
	if c.Size(1) != 2 || c.Row(1, 1).Name != "A" {
		t.Errorf("Expected row 1 to hold 2 items, second one for A")
	}
	completed := c.Completed()
	if len(completed) != 2 || completed[0].Name != "b" {
		t.Errorf("Expected 2 completed items in encounter order, have %v", completed)
	}
	if err := c.Validate(); err != nil {
		t.Error(err)
	}
}

func TestChartValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.lr")
	defer teardown()
	//
	g := makeGrammar(t)
	c := New(1)
	c.Add(0, NewRuleItem(g.Rule(2), 1, 0, 1)) // item ends in row 1
	if err := c.Validate(); !errors.Is(err, ErrMalformedChart) {
		t.Errorf("Expected chart to be malformed, err = %v", err)
	}
}

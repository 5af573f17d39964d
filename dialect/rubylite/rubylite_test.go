package rubylite

import (
	"testing"

	"github.com/matty-l/violet/ast"
	"github.com/matty-l/violet/classtree"
	"github.com/matty-l/violet/decorator"
	"github.com/matty-l/violet/lr/earley"
	"github.com/matty-l/violet/lr/forest"
	"github.com/matty-l/violet/lr/scanner"
	"github.com/matty-l/violet/semantic"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func normalized(t *testing.T, source string) *ast.Node {
	g, err := Grammar()
	if err != nil {
		t.Fatal(err)
	}
	tok, err := Tokenizer(source)
	if err != nil {
		t.Fatal(err)
	}
	p := earley.NewParser(g)
	if accept, err := p.Parse(tok); !accept || err != nil {
		t.Fatalf("Expected source to be accepted, stuck at token #%d, err = %v", p.Furthest(), err)
	}
	raw, err := forest.Extract(p.Chart())
	if err != nil {
		t.Fatal(err)
	}
	root, err := ast.Normalize(raw, Kinds())
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func decorate(t *testing.T, source string) (*classtree.Tree, []semantic.Outcome) {
	reg := decorator.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatal(err)
	}
	d := decorator.New(reg)
	tree := classtree.New()
	if err := d.Decorate(normalized(t, source), tree, Name); err != nil {
		t.Fatal(err)
	}
	return tree, d.Outcomes()
}

func TestLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.scanner")
	defer teardown()
	//
	tok, err := Tokenizer("class Point < Shape # comment\n  attr x\nend")
	if err != nil {
		t.Fatal(err)
	}
	expected := []int{TokenIDs["class"], TokenIDs["CONST"], TokenIDs["<"], TokenIDs["CONST"],
		TokenIDs["attr"], TokenIDs["ID"], TokenIDs["end"]}
	for i, typ := range expected {
		token := tok.NextToken()
		if int(token.TokType()) != typ {
			t.Errorf("Expected token #%d %q to be of type %d, is %d", i, token.Lexeme(), typ, token.TokType())
		}
	}
	if tok.NextToken().TokType() != scanner.EOF {
		t.Errorf("Expected end of input")
	}
}

func TestNormalizedShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.ast")
	defer teardown()
	//
	root := normalized(t, "class A attr x def f(a, b) @x end end")
	if root.Kind() != Program || root.ChildCount() != 1 {
		t.Fatalf("Expected Program with 1 class, is %v", root)
	}
	class := root.Child(0)
	if class.Kind() != ClassDef {
		t.Fatalf("Expected ClassDef, is %v", class)
	}
	if len(class.ChildrenOfKind(AttrDecl)) != 1 || len(class.ChildrenOfKind(MethodDef)) != 1 {
		class.Dump(Kinds())
		t.Errorf("Expected body items to be spliced into the class")
	}
	m := class.FirstChildOfKind(MethodDef)
	if m.FirstChildOfKind(Ref) == nil {
		m.Dump(Kinds())
		t.Errorf("Expected method body to contain a Ref")
	}
}

func TestEndToEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	tree, outcomes := decorate(t, `
class Shape
  attr name
  def describe() self.name end
end
class Point < Shape
  attr x
  def getX @x end
  def move(dx, dy) undefinedMessage(@x, 1) end
end`)
	if len(outcomes) != 0 {
		t.Errorf("Expected no outcomes, have %v", outcomes)
	}
	if tree.Size() != 2 {
		t.Fatalf("Expected 2 classes, have %d", tree.Size())
	}
	point := tree.Class("Point")
	if point.Super != "Shape" {
		t.Errorf("Expected superclass of Point to be Shape, is %q", point.Super)
	}
	if f := point.Field("x"); f == nil || f.Type != DynamicType {
		t.Errorf("Expected Point to have field x, has %v", point.Fields())
	}
	if len(point.Methods()) != 2 {
		t.Errorf("Expected Point to have 2 methods, has %v", point.Methods())
	}
	if m, owner := tree.ResolveMethod(point, "describe"); m == nil || owner.Name != "Shape" {
		t.Errorf("Expected describe to be inherited from Shape")
	}
}

func TestDiagnostics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	_, outcomes := decorate(t, `class A
  attr x
  attr x
  def f(a) end
  def f(a, b) end
end
class B < Missing
end`)
	expected := []semantic.Outcome{
		{Line: 7, Message: "undefined superclass 'Missing' of class 'B'"},
		{Line: 3, Message: "duplicate field 'x' in class 'A'"},
		{Line: 5, Message: "duplicate method 'f()' in class 'A'"},
	}
	if len(outcomes) != len(expected) {
		t.Fatalf("Expected %d outcomes, have %v", len(expected), outcomes)
	}
	for i, o := range expected {
		if outcomes[i] != o {
			t.Errorf("Expected outcome #%d to be %v, is %v", i, o, outcomes[i])
		}
	}
}

func TestUndeclaredField(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	_, outcomes := decorate(t, `class A def f @y end end`)
	if len(outcomes) != 1 || outcomes[0] != (semantic.Outcome{Line: 1, Message: "undeclared field 'y' in class 'A'"}) {
		t.Errorf("Expected undeclared field y in class A, have %v", outcomes)
	}
	_, outcomes = decorate(t, `class A
  attr x
end
class B < A
  def f(y) @x end
  def g @y end
end`)
	if len(outcomes) != 1 || outcomes[0] != (semantic.Outcome{Line: 6, Message: "undeclared field 'y' in class 'B'"}) {
		t.Errorf("Expected inherited @x to resolve and @y to be undeclared, have %v", outcomes)
	}
}

package semantic

import (
	"testing"

	"github.com/matty-l/violet/ast"
	"github.com/matty-l/violet/classtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDrain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	var o Outcomes
	o.Add(1, "first")
	o.Addf(2, "second %d", 2)
	drained := o.Drain()
	if len(drained) != 2 || drained[1].Message != "second 2" {
		t.Errorf("Expected 2 outcomes, have %v", drained)
	}
	if o.Len() != 0 || len(o.Drain()) != 0 {
		t.Errorf("Expected buffer to be empty after draining")
	}
	o.Add(3, "third")
	if drained[0].Message != "first" {
		t.Errorf("Expected drained outcomes to be independent of the buffer")
	}
}

func TestClassTreeBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	tree := classtree.New()
	b := NewClassTreeBuilder(tree)
	b.DeclareClass("A", 1)
	b.DeclareSuperclass("Object", 1)
	b.EndClass()
	b.DeclareClass("B", 2)
	b.DeclareSuperclass("Z", 2)
	b.EndClass()
	if b.DeclareClass("A", 3) {
		t.Errorf("Expected duplicate class A to be rejected")
	}
	b.DeclareSuperclass("B", 3) // ignored for the duplicate
	b.EndClass()
	if err := b.Finish(); err != nil {
		t.Fatal(err)
	}
	outcomes := b.Drain()
	if len(outcomes) != 2 {
		t.Fatalf("Expected 2 outcomes, have %v", outcomes)
	}
	if outcomes[0].Line != 3 || outcomes[0].Message != "duplicate class 'A'" {
		t.Errorf("Expected duplicate class A in line 3, is %v", outcomes[0])
	}
	if outcomes[1].Line != 2 || outcomes[1].Message != "undefined superclass 'Z' of class 'B'" {
		t.Errorf("Expected undefined superclass Z in line 2, is %v", outcomes[1])
	}
	if tree.Class("A").Super != "Object" {
		t.Errorf("Expected superclass of A to be untouched by duplicate declaration")
	}
}

func TestInheritanceCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	b := NewClassTreeBuilder(classtree.New())
	for i, decl := range [][2]string{{"A", "C"}, {"B", "A"}, {"C", "B"}, {"D", "A"}} {
		b.DeclareClass(decl[0], i+1)
		b.DeclareSuperclass(decl[1], i+1)
		b.EndClass()
	}
	b.Finish()
	outcomes := b.Drain()
	if len(outcomes) != 1 || outcomes[0].Message != "inheritance cycle involving class 'A'" {
		t.Errorf("Expected exactly one cycle outcome for A, have %v", outcomes)
	}
}

func TestDuplicateField(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	tree := classtree.New()
	tree.Define("A", 1)
	fi := NewFieldIdentifier(tree)
	fi.EnterClass("A")
	fi.DeclareField(ast.NewNode(1, "x", 2), "x", "int", 2)
	fi.DeclareField(ast.NewNode(1, "x", 3), "x", "int", 3)
	fi.ExitClass()
	outcomes := fi.Drain()
	if len(outcomes) != 1 {
		t.Fatalf("Expected exactly one duplicate-field outcome, have %v", outcomes)
	}
	if outcomes[0].Line != 3 || outcomes[0].Message != "duplicate field 'x' in class 'A'" {
		t.Errorf("Unexpected outcome %v", outcomes[0])
	}
	if len(fi.Fields()) != 1 || len(fi.Fields()) != 0 {
		t.Errorf("Expected one collected field, cleared after retrieval")
	}
}

func TestDuplicateMethod(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	tree := classtree.New()
	tree.Define("A", 1)
	mi := NewMethodIdentifier(tree)
	mi.EnterClass("A")
	mi.DeclareMethod("f", "int", []string{"int"}, 2)
	mi.DeclareMethod("f", "int", nil, 3)
	mi.DeclareMethod("f", "void", []string{"int"}, 4)
	mi.ExitClass()
	outcomes := mi.Drain()
	if len(outcomes) != 1 || outcomes[0].Message != "duplicate method 'f(int)' in class 'A'" {
		t.Errorf("Expected one duplicate method outcome, have %v", outcomes)
	}
	if len(tree.Class("A").Methods()) != 2 {
		t.Errorf("Expected 2 methods in class A")
	}
}

func TestDispatchResolver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	tree := classtree.New()
	a, _ := tree.Define("A", 1)
	a.AddMethod(&classtree.Method{Name: "foo", ReturnType: "int"})
	b, _ := tree.Define("B", 5)
	b.Super = "A"
	b.AddMethod(&classtree.Method{Name: "run", ReturnType: "int"})
	dr := NewDispatchResolver(tree)
	dr.EnterClass("B")
	dr.EnterMethod("run")
	dr.ResolveCall("foo", 6)
	dr.ResolveCall("bar", 7)
	dr.ResolveSuperCall("run", 8)
	dr.ExitMethod()
	dr.ExitClass()
	outcomes := dr.Drain()
	if len(outcomes) != 2 {
		t.Fatalf("Expected 2 unresolved calls, have %v", outcomes)
	}
	if outcomes[0].Line != 7 || outcomes[0].Message != "unresolved method 'bar' in class 'B'" {
		t.Errorf("Expected unresolved bar in line 7, is %v", outcomes[0])
	}
	if outcomes[1].Line != 8 {
		t.Errorf("Expected super.run() in line 8 to be unresolved, is %v", outcomes[1])
	}
	resolved := dr.Resolved()
	if len(resolved) != 1 || resolved[0].Target != "A" || resolved[0].Caller != "run" {
		t.Errorf("Expected B.run ➞ A.foo, have %v", resolved)
	}
}

func TestScopeTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	tree := classtree.New()
	tree.Define("A", 1)
	s := classScope{tree: tree}
	if s.Current() != nil {
		t.Errorf("Expected no current class outside of a class")
	}
	s.EnterClass("A")
	s.scopes.Current().Bind("x", 1)
	m := s.scopes.PushNewScope("f")
	m.Bind("a", 2)
	if s.Current() == nil || s.Current().Name != "A" {
		t.Errorf("Expected current class to be A inside of method scope")
	}
	if sc := m.Resolve("a"); sc != m {
		t.Errorf("Expected a to be bound in method scope, is %v", sc)
	}
	if sc := m.Resolve("x"); sc == nil || sc.Name != "A" {
		t.Errorf("Expected x to be bound in class scope, is %v", sc)
	}
	s.scopes.PushNewScope("B").class = true
	if sc := s.scopes.Current().Resolve("a"); sc != nil {
		t.Errorf("Expected resolution to stop at class scope B, found %v", sc)
	}
	s.ExitClass()
	if s.scopes.Current() != m {
		t.Errorf("Expected method scope f to be TOS, is %v", s.scopes.Current())
	}
	s.ExitClass() // leaves f open
	if s.scopes.Current() != nil || s.scopes.ScopeBase != nil {
		t.Errorf("Expected all scopes to be popped, TOS is %v", s.scopes.Current())
	}
	if s.scopes.PopScope() != nil {
		t.Errorf("Expected pop from empty stack to return nil")
	}
}

func TestFieldResolver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	tree := classtree.New()
	a, _ := tree.Define("A", 1)
	a.AddField(&classtree.Field{Name: "x", Type: "int", Line: 2})
	b, _ := tree.Define("B", 5)
	b.Super = "A"
	fr := NewFieldResolver(tree)
	fr.EnterClass("B")
	fr.ResolveField("x", 6)
	fr.EnterMethod("f")
	fr.Bind("y", 7)
	fr.ResolveField("y", 8)
	fr.ResolveField("w", 9)
	fr.ExitMethod()
	fr.ResolveField("y", 10)
	fr.Bind("z", 11) // outside of a method, ignored
	fr.ResolveField("z", 12)
	fr.ExitClass()
	expected := []Outcome{
		{Line: 9, Message: "undeclared field 'w' in class 'B'"},
		{Line: 10, Message: "undeclared field 'y' in class 'B'"},
		{Line: 12, Message: "undeclared field 'z' in class 'B'"},
	}
	outcomes := fr.Drain()
	if len(outcomes) != len(expected) {
		t.Fatalf("Expected %d outcomes, have %v", len(expected), outcomes)
	}
	for i, o := range expected {
		if outcomes[i] != o {
			t.Errorf("Expected outcome #%d to be %v, is %v", i, o, outcomes[i])
		}
	}
	resolved := fr.Resolved()
	if len(resolved) != 1 || resolved[0].Class != "B" || resolved[0].Owner != "A" || resolved[0].Line != 6 {
		t.Errorf("Expected x in B to resolve to A.x, have %v", resolved)
	}
}

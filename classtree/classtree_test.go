package classtree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	tree := New()
	b, ok := tree.Define("B", 1)
	if !ok || b == nil {
		t.Fatalf("Expected class B to be defined")
	}
	tree.Define("A", 2)
	again, ok := tree.Define("B", 3)
	if ok || again != b || again.Line != 1 {
		t.Errorf("Expected redefinition to leave B untouched")
	}
	if tree.Size() != 2 {
		t.Errorf("Expected 2 classes, have %d", tree.Size())
	}
	if names := tree.Names(); names[0] != "A" || names[1] != "B" {
		t.Errorf("Expected sorted names A B, are %v", names)
	}
	if classes := tree.Classes(); classes[0].Name != "B" {
		t.Errorf("Expected declaration order B A, is %v", classes)
	}
}

func TestMembers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	c, _ := New().Define("A", 1)
	if !c.AddField(&Field{Name: "x", Type: "int", Line: 2}) {
		t.Errorf("Expected field x to be added")
	}
	if c.AddField(&Field{Name: "x", Type: "boolean", Line: 3}) {
		t.Errorf("Expected duplicate field x to be rejected")
	}
	if c.Field("x").Type != "int" || len(c.Fields()) != 1 {
		t.Errorf("Expected first declaration of x to be kept")
	}
	c.AddMethod(&Method{Name: "f", ReturnType: "int", Params: []string{"int"}})
	if !c.AddMethod(&Method{Name: "f", ReturnType: "int"}) {
		t.Errorf("Expected overload f() to be added")
	}
	if c.AddMethod(&Method{Name: "f", ReturnType: "void", Params: []string{"int"}}) {
		t.Errorf("Expected duplicate signature f(int) to be rejected")
	}
	if len(c.MethodsNamed("f")) != 2 {
		t.Errorf("Expected 2 methods named f")
	}
}

func TestResolveMethod(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	tree := New()
	a, _ := tree.Define("A", 1)
	a.AddMethod(&Method{Name: "getX", ReturnType: "int"})
	b, _ := tree.Define("B", 5)
	b.Super = "A"
	m, decl := tree.ResolveMethod(b, "getX")
	if m == nil || decl != a {
		t.Errorf("Expected getX to resolve in superclass A, is %v in %v", m, decl)
	}
	if m, _ := tree.ResolveMethod(b, "bar"); m != nil {
		t.Errorf("Expected bar to be unresolved")
	}
}

func TestSuperchainCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	tree := New()
	a, _ := tree.Define("A", 1)
	b, _ := tree.Define("B", 2)
	a.Super, b.Super = "B", "A"
	if chain := tree.Superchain(a); len(chain) != 2 {
		t.Errorf("Expected cyclic chain to stop after 2 classes, is %v", chain)
	}
	if m, _ := tree.ResolveMethod(a, "f"); m != nil {
		t.Errorf("Expected f to be unresolved")
	}
}

func TestEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	build := func() *Tree {
		tree := New()
		a, _ := tree.Define("A", 1)
		a.AddField(&Field{Name: "x", Type: "int", Line: 1})
		return tree
	}
	t1, t2 := build(), build()
	if !t1.Equal(t2) {
		t.Errorf("Expected trees to be equal:\n%s\n%s", t1, t2)
	}
	t2.Class("A").AddMethod(&Method{Name: "f"})
	if t1.Equal(t2) {
		t.Errorf("Expected trees to differ")
	}
}

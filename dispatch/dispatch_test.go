package dispatch

import (
	"errors"
	"testing"

	"github.com/matty-l/violet/ast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const (
	kAbstract ast.Kind = iota
	kToken
	kClass
	kField
	kMethod
)

func makeTable() *Table {
	kinds := ast.NewKindTable("test", map[ast.Kind]string{
		kAbstract: "AbstractNode",
		kToken:    "Token",
		kClass:    "Class",
		kField:    "Field",
		kMethod:   "Method",
	}, kAbstract, kToken)
	return NewTable(kinds)
}

func makeAST() *ast.Node {
	return ast.NewNode(kClass, "A", 1,
		ast.NewNode(kField, "x", 2),
		ast.NewNode(kMethod, "f", 3, ast.NewNode(kField, "y", 4)),
		ast.NewNode(kField, "z", 5),
	)
}

type recorder struct {
	capability Capability
	visited    []string
}

func (r *recorder) Capability() Capability {
	return r.capability
}

func TestDefaultTraversal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	table := makeTable()
	table.Register(FieldIdentification, kField, func(d *Dispatcher, v Visitor, n *ast.Node) error {
		v.(*recorder).visited = append(v.(*recorder).visited, n.Value())
		return d.VisitChildren(n, v)
	})
	r := &recorder{capability: FieldIdentification}
	if err := table.For(FieldIdentification).Accept(makeAST(), r); err != nil {
		t.Fatal(err)
	}
	if len(r.visited) != 3 || r.visited[0] != "x" || r.visited[1] != "y" || r.visited[2] != "z" {
		t.Errorf("Expected fields x y z in pre-order, are %v", r.visited)
	}
}

func TestHandlerControlsDescent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	table := makeTable()
	table.Register(MethodIdentification, kMethod, func(d *Dispatcher, v Visitor, n *ast.Node) error {
		v.(*recorder).visited = append(v.(*recorder).visited, n.Value())
		return nil // do not descend
	})
	table.Register(MethodIdentification, kField, func(d *Dispatcher, v Visitor, n *ast.Node) error {
		v.(*recorder).visited = append(v.(*recorder).visited, n.Value())
		return nil
	})
	r := &recorder{capability: MethodIdentification}
	if err := table.For(MethodIdentification).Accept(makeAST(), r); err != nil {
		t.Fatal(err)
	}
	if len(r.visited) != 3 || r.visited[1] != "f" {
		t.Errorf("Expected field y inside method f to be skipped, visited = %v", r.visited)
	}
}

func TestUnregisteredKind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	table := makeTable()
	tree := ast.NewNode(kClass, "A", 1, ast.NewNode(ast.Kind(42), "?", 2))
	err := table.For(ClassBuilding).Accept(tree, &recorder{capability: ClassBuilding})
	if !errors.Is(err, ErrUnregisteredKind) {
		t.Fatalf("Expected ErrUnregisteredKind, is %v", err)
	}
	var derr *Error
	if !errors.As(err, &derr) || derr.Kind != 42 || derr.Dialect != "test" {
		t.Errorf("Expected dispatch error for kind 42 in dialect test, is %v", err)
	}
}

func TestCapabilityMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	err := makeTable().For(ClassBuilding).Accept(makeAST(), &recorder{capability: DispatchResolution})
	if !errors.Is(err, ErrCapabilityMismatch) {
		t.Errorf("Expected ErrCapabilityMismatch, is %v", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	defer func() {
		if recover() == nil {
			t.Errorf("Expected registration of a kind outside the enumeration to panic")
		}
	}()
	makeTable().Register(ClassBuilding, ast.Kind(42), nil)
}

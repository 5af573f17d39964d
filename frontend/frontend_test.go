package frontend

import (
	"errors"
	"testing"

	"github.com/matty-l/violet/decorator"
	"github.com/matty-l/violet/dialect/javalite"
	"github.com/matty-l/violet/dialect/rubylite"
	"github.com/matty-l/violet/lr/forest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const javaSource = `
class A {
  int x;
  int getX() { return x; }
}
class B extends A {
  int useGetX() { return getX(); }
}`

const rubySource = `
class A
  attr x
  def getX @x end
end
class B < A
  def useGetX() getX() end
end`

func TestAnalyzeJavalite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	unit, err := Analyze(DefaultRegistry(), javalite.Name, javaSource)
	if err != nil {
		t.Fatal(err)
	}
	if unit.AST == nil || unit.ParseTree == nil || unit.Chart == nil {
		t.Fatalf("Expected all phases to have run")
	}
	if unit.Classes.Size() != 2 || unit.Classes.Class("B").Super != "A" {
		t.Errorf("Expected class B extending A, is\n%s", unit.Classes)
	}
	if len(unit.Outcomes) != 0 {
		t.Errorf("Expected no outcomes, have %v", unit.Outcomes)
	}
	if len(unit.Resolutions) != 1 || unit.Resolutions[0].Target != "A" {
		t.Errorf("Expected getX() to resolve to A.getX, is %v", unit.Resolutions)
	}
	if len(unit.Fields) != 1 {
		t.Errorf("Expected 1 field, have %d", len(unit.Fields))
	}
}

func TestAnalyzeRubylite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	unit, err := Analyze(DefaultRegistry(), rubylite.Name, rubySource)
	if err != nil {
		t.Fatal(err)
	}
	if unit.Classes.Size() != 2 || unit.Classes.Class("B").Super != "A" {
		t.Errorf("Expected class B inheriting from A, is\n%s", unit.Classes)
	}
	if len(unit.Outcomes) != 0 || len(unit.Resolutions) != 0 {
		t.Errorf("Expected neither outcomes nor resolutions, have %v / %v", unit.Outcomes, unit.Resolutions)
	}
}

func TestUndeclaredFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	reg := DefaultRegistry()
	for dialect, source := range map[string]string{
		javalite.Name: `class A { int f() { return y; } }`,
		rubylite.Name: `class A def f @y end end`,
	} {
		unit, err := Analyze(reg, dialect, source)
		if err != nil {
			t.Fatalf("%s: %v", dialect, err)
		}
		if len(unit.Outcomes) != 1 || unit.Outcomes[0].Message != "undeclared field 'y' in class 'A'" {
			t.Errorf("%s: Expected undeclared field y in class A, have %v", dialect, unit.Outcomes)
		}
	}
	unit, err := Analyze(reg, rubylite.Name, rubySource)
	if err != nil {
		t.Fatal(err)
	}
	if len(unit.References) != 1 || unit.References[0].Owner != "A" {
		t.Errorf("Expected @x to refer to A.x, have %v", unit.References)
	}
}

func TestDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	reg := DefaultRegistry()
	u1, err := Analyze(reg, javalite.Name, javaSource)
	if err != nil {
		t.Fatal(err)
	}
	u2, err := Analyze(reg, javalite.Name, javaSource)
	if err != nil {
		t.Fatal(err)
	}
	if !u1.Classes.Equal(u2.Classes) {
		t.Errorf("Expected equal class trees, have\n%s\nand\n%s", u1.Classes, u2.Classes)
	}
	if !u1.ParseTree.Equal(u2.ParseTree) || u1.ParseTree.Hash() != u2.ParseTree.Hash() {
		t.Errorf("Expected equal parse trees")
	}
	u3, err := Analyze(reg, javalite.Name, javaSource, WithPolicy(forest.FirstMatch))
	if err != nil {
		t.Fatal(err)
	}
	if !u1.Classes.Equal(u3.Classes) {
		t.Errorf("Expected first-match policy to yield the same class tree")
	}
}

func TestNotRecognized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	unit, err := Analyze(DefaultRegistry(), javalite.Name, "class A { int x }")
	if !errors.Is(err, ErrNotRecognized) {
		t.Fatalf("Expected ErrNotRecognized, is %v", err)
	}
	if unit.ParseTree != nil || unit.AST != nil {
		t.Errorf("Expected no tree for rejected input")
	}
	if len(unit.Expected) == 0 {
		t.Errorf("Expected terminals to be listed for rejected input")
	}
}

func TestUnknownDialect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	reg := DefaultRegistry()
	if _, err := Analyze(reg, "cobol", "IDENTIFICATION DIVISION."); !errors.Is(err, decorator.ErrUnknownDialect) {
		t.Errorf("Expected ErrUnknownDialect, is %v", err)
	}
	if err := reg.Register(javalite.Dialect()); err == nil {
		t.Errorf("Expected second registration of javalite to fail")
	}
	if names := reg.Dialects(); len(names) != 2 || names[0] != javalite.Name || names[1] != rubylite.Name {
		t.Errorf("Expected dialects [javalite rubylite], are %v", names)
	}
}

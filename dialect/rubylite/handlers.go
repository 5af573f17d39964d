package rubylite

import (
	"github.com/matty-l/violet/ast"
	"github.com/matty-l/violet/classtree"
	"github.com/matty-l/violet/decorator"
	"github.com/matty-l/violet/dialect"
	"github.com/matty-l/violet/dispatch"
	"github.com/matty-l/violet/lr"
	"github.com/matty-l/violet/lr/scanner"
	"github.com/matty-l/violet/semantic"
)

// DynamicType is the type of all fields.
const DynamicType = "object"

// Table returns the dispatch table of Rubylite.
func Table() *dispatch.Table {
	return newTable(Kinds())
}

func newTable(kinds *ast.KindTable) *dispatch.Table {
	enter := dialect.EnterClass("CONST")
	table := dispatch.NewTable(kinds)
	table.Register(dispatch.ClassBuilding, ClassDef, declareClass)
	table.Register(dispatch.FieldIdentification, ClassDef, enter)
	table.Register(dispatch.FieldIdentification, AttrDecl, declareField)
	table.Register(dispatch.FieldIdentification, MethodDef, dialect.Skip)
	table.Register(dispatch.MethodIdentification, ClassDef, enter)
	table.Register(dispatch.MethodIdentification, MethodDef, declareMethod)
	table.Register(dispatch.FieldResolution, ClassDef, enter)
	table.Register(dispatch.FieldResolution, Ref, resolveRef)
	return table
}

// Pipeline creates the passes of Rubylite, in order.
func Pipeline(tree *classtree.Tree) []semantic.Pass {
	return []semantic.Pass{
		semantic.NewClassTreeBuilder(tree),
		semantic.NewFieldIdentifier(tree),
		semantic.NewMethodIdentifier(tree),
		semantic.NewFieldResolver(tree),
	}
}

func declareClass(d *dispatch.Dispatcher, v dispatch.Visitor, n *ast.Node) error {
	b := v.(*semantic.ClassTreeBuilder)
	b.DeclareClass(dialect.ValueOf(n, "CONST"), n.Line())
	if inherit := n.FirstChildOfKind(Inherit); inherit != nil {
		b.DeclareSuperclass(dialect.ValueOf(inherit, "CONST"), inherit.Line())
	}
	b.EndClass()
	return nil
}

func declareField(d *dispatch.Dispatcher, v dispatch.Visitor, n *ast.Node) error {
	fi := v.(*semantic.FieldIdentifier)
	fi.DeclareField(n, dialect.ValueOf(n, "ID"), DynamicType, dialect.LineOf(n, "ID"))
	return nil
}

func declareMethod(d *dispatch.Dispatcher, v dispatch.Visitor, n *ast.Node) error {
	mi := v.(*semantic.MethodIdentifier)
	mi.DeclareMethod(dialect.ValueOf(n, "ID"), "", nil, dialect.LineOf(n, "ID"))
	return nil
}

// resolveRef checks an instance variable reference @name against the attrs of
// the class and its superclasses.
func resolveRef(d *dispatch.Dispatcher, v dispatch.Visitor, n *ast.Node) error {
	fr := v.(*semantic.FieldResolver)
	fr.ResolveField(dialect.ValueOf(n, "ID"), dialect.LineOf(n, "ID"))
	return nil
}

// --- Dialect ---------------------------------------------------------------

type rubylite struct{}

// Dialect returns Rubylite as a dialect for hosts.
func Dialect() dialect.Dialect {
	return rubylite{}
}

func (rubylite) Name() string {
	return Name
}

func (rubylite) Grammar() (*lr.Grammar, error) {
	return Grammar()
}

func (rubylite) Tokenizer(source string) (scanner.Tokenizer, error) {
	return Tokenizer(source)
}

func (rubylite) Registration() decorator.Registration {
	kinds := Kinds()
	return decorator.Registration{
		Kinds:    kinds,
		Table:    newTable(kinds),
		Pipeline: Pipeline,
	}
}

// Register registers Rubylite with a decorator registry.
func Register(reg *decorator.Registry) error {
	return reg.Register(Name, Dialect().Registration())
}

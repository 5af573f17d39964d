package javalite

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

// Table returns the dispatch table of Javalite.
func Table() *dispatch.Table {
	return newTable(Kinds())
}

func newTable(kinds *ast.KindTable) *dispatch.Table {
	enter := dialect.EnterClass("ID")
	table := dispatch.NewTable(kinds)
	table.Register(dispatch.ClassBuilding, ClassDecl, declareClass)
	table.Register(dispatch.FieldIdentification, ClassDecl, enter)
	table.Register(dispatch.FieldIdentification, FieldDecl, declareField)
	table.Register(dispatch.FieldIdentification, MethodDecl, dialect.Skip)
	table.Register(dispatch.MethodIdentification, ClassDecl, enter)
	table.Register(dispatch.MethodIdentification, MethodDecl, declareMethod)
	table.Register(dispatch.MethodIdentification, FieldDecl, dialect.Skip)
	table.Register(dispatch.FieldResolution, ClassDecl, enter)
	table.Register(dispatch.FieldResolution, MethodDecl, enterBody)
	table.Register(dispatch.FieldResolution, LocalVarDecl, bindLocal)
	table.Register(dispatch.FieldResolution, NameRef, resolveName)
	table.Register(dispatch.DispatchResolution, ClassDecl, enter)
	table.Register(dispatch.DispatchResolution, MethodDecl, enterMethod)
	table.Register(dispatch.DispatchResolution, Call, resolveCall)
	return table
}

// Pipeline creates the passes of Javalite, in order.
func Pipeline(tree *classtree.Tree) []semantic.Pass {
	return []semantic.Pass{
		semantic.NewClassTreeBuilder(tree),
		semantic.NewFieldIdentifier(tree),
		semantic.NewMethodIdentifier(tree),
		semantic.NewFieldResolver(tree),
		semantic.NewDispatchResolver(tree),
	}
}

func declareClass(d *dispatch.Dispatcher, v dispatch.Visitor, n *ast.Node) error {
	b := v.(*semantic.ClassTreeBuilder)
	b.DeclareClass(dialect.ValueOf(n, "ID"), n.Line())
	if ext := n.FirstChildOfKind(Extends); ext != nil {
		b.DeclareSuperclass(dialect.ValueOf(ext, "ID"), ext.Line())
	}
	b.EndClass()
	return nil
}

func declareField(d *dispatch.Dispatcher, v dispatch.Visitor, n *ast.Node) error {
	fi := v.(*semantic.FieldIdentifier)
	typ := n.FirstChildOfKind(Type)
	fi.DeclareField(n, dialect.ValueOf(n, "ID"), typ.Value(), dialect.LineOf(n, "ID"))
	return nil
}

func declareMethod(d *dispatch.Dispatcher, v dispatch.Visitor, n *ast.Node) error {
	mi := v.(*semantic.MethodIdentifier)
	var params []string
	for _, p := range n.ChildrenOfKind(Param) {
		params = append(params, p.FirstChildOfKind(Type).Value())
	}
	ret := n.FirstChildOfKind(Type).Value()
	mi.DeclareMethod(dialect.ValueOf(n, "ID"), ret, params, dialect.LineOf(n, "ID"))
	return nil
}

// enterBody binds the parameters of a method before visiting its body.
func enterBody(d *dispatch.Dispatcher, v dispatch.Visitor, n *ast.Node) error {
	fr := v.(*semantic.FieldResolver)
	fr.EnterMethod(dialect.ValueOf(n, "ID"))
	defer fr.ExitMethod()
	for _, p := range n.ChildrenOfKind(Param) {
		fr.Bind(dialect.ValueOf(p, "ID"), dialect.LineOf(p, "ID"))
	}
	return d.VisitChildren(n, v)
}

// bindLocal binds a local variable after its initializer has been checked.
func bindLocal(d *dispatch.Dispatcher, v dispatch.Visitor, n *ast.Node) error {
	if err := d.VisitChildren(n, v); err != nil {
		return err
	}
	v.(*semantic.FieldResolver).Bind(dialect.ValueOf(n, "ID"), dialect.LineOf(n, "ID"))
	return nil
}

func resolveName(d *dispatch.Dispatcher, v dispatch.Visitor, n *ast.Node) error {
	v.(*semantic.FieldResolver).ResolveField(n.Value(), n.Line())
	return nil
}

func enterMethod(d *dispatch.Dispatcher, v dispatch.Visitor, n *ast.Node) error {
	dr := v.(*semantic.DispatchResolver)
	dr.EnterMethod(dialect.ValueOf(n, "ID"))
	defer dr.ExitMethod()
	return d.VisitChildren(n, v)
}

func resolveCall(d *dispatch.Dispatcher, v dispatch.Visitor, n *ast.Node) error {
	dr := v.(*semantic.DispatchResolver)
	name, line := dialect.ValueOf(n, "ID"), dialect.LineOf(n, "ID")
	if dialect.ChildLabeled(n, "super") != nil {
		dr.ResolveSuperCall(name, line)
	} else {
		dr.ResolveCall(name, line)
	}
	return d.VisitChildren(n, v) // calls in arguments
}

// --- Dialect ---------------------------------------------------------------

type javalite struct{}

// Dialect returns Javalite as a dialect for hosts.
func Dialect() dialect.Dialect {
	return javalite{}
}

func (javalite) Name() string {
	return Name
}

func (javalite) Grammar() (*lr.Grammar, error) {
	return Grammar()
}

func (javalite) Tokenizer(source string) (scanner.Tokenizer, error) {
	return Tokenizer(source)
}

func (javalite) Registration() decorator.Registration {
	kinds := Kinds()
	return decorator.Registration{
		Kinds:    kinds,
		Table:    newTable(kinds),
		Pipeline: Pipeline,
	}
}

// Register registers Javalite with a decorator registry.
func Register(reg *decorator.Registry) error {
	return reg.Register(Name, Dialect().Registration())
}

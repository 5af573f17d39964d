/*
Package dialect holds what the Violet dialects have in common.

Each dialect lives in a sub-package and provides a grammar, a lexer, a kind table,
a dispatch table and an ordered pipeline of semantic passes. The Dialect interface
bundles these for hosts like package frontend.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dialect

import (
	"github.com/matty-l/violet/ast"
	"github.com/matty-l/violet/classtree"
	"github.com/matty-l/violet/decorator"
	"github.com/matty-l/violet/dispatch"
	"github.com/matty-l/violet/lr"
	"github.com/matty-l/violet/lr/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'violet.semantic'.
func tracer() tracing.Trace {
	return tracing.Select("violet.semantic")
}

// Dialect is a source language of the Violet front end.
type Dialect interface {
	Name() string
	Grammar() (*lr.Grammar, error)
	Tokenizer(source string) (scanner.Tokenizer, error)
	Registration() decorator.Registration
}

// ChildLabeled returns the first child of n stemming from grammar symbol label,
// or nil.
func ChildLabeled(n *ast.Node, label string) *ast.Node {
	for _, child := range n.Children() {
		if child.Label() == label {
			return child
		}
	}
	return nil
}

// ValueOf returns the value of the first child of n labeled label, or "".
func ValueOf(n *ast.Node, label string) string {
	if child := ChildLabeled(n, label); child != nil {
		return child.Value()
	}
	return ""
}

// LineOf returns the line of the first child of n labeled label, or the line of n.
func LineOf(n *ast.Node, label string) int {
	if child := ChildLabeled(n, label); child != nil && child.Line() > 0 {
		return child.Line()
	}
	return n.Line()
}

// ClassScope is implemented by passes tracking the current class.
type ClassScope interface {
	EnterClass(name string) *classtree.Class
	ExitClass()
}

// EnterClass creates a handler for class declaration nodes. The handler makes the
// class named by the child labeled nameLabel the current class while visiting
// the children of the declaration.
func EnterClass(nameLabel string) dispatch.Handler {
	return func(d *dispatch.Dispatcher, v dispatch.Visitor, n *ast.Node) error {
		scope, ok := v.(ClassScope)
		if !ok {
			tracer().Errorf("visitor %T does not track classes", v)
			return d.VisitChildren(n, v)
		}
		scope.EnterClass(ValueOf(n, nameLabel))
		defer scope.ExitClass()
		return d.VisitChildren(n, v)
	}
}

// Skip is a handler which does not descend into children.
func Skip(d *dispatch.Dispatcher, v dispatch.Visitor, n *ast.Node) error {
	return nil
}

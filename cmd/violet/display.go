package main

import (
	"fmt"

	"github.com/matty-l/violet/ast"
	"github.com/matty-l/violet/frontend"
	"github.com/pterm/pterm"
)

// display prints the results of all phases run for a unit.
func display(reg *frontend.Registry, unit *frontend.Unit) {
	if unit == nil {
		return
	}
	if len(unit.Expected) > 0 {
		tracer().Debugf("expected one of %v", unit.Expected)
	}
	if unit.AST != nil {
		registration, err := reg.Decorators().Lookup(unit.Dialect)
		if err == nil {
			root := pterm.NewTreeFromLeveledList(leveledAST(unit.AST, registration.Kinds))
			pterm.DefaultTree.WithRoot(root).Render()
		}
	}
	if unit.Classes != nil {
		pterm.Println(unit.Classes.String())
	}
	for _, r := range unit.Resolutions {
		pterm.Info.Println(r.String())
	}
	for _, o := range unit.Outcomes {
		pterm.Warning.Println(o.String())
	}
}

// leveledAST flattens a syntax tree into a leveled list for pterm.
func leveledAST(root *ast.Node, kinds *ast.KindTable) pterm.LeveledList {
	var ll pterm.LeveledList
	root.Walk(func(n *ast.Node, depth int) bool {
		ll = append(ll, pterm.LeveledListItem{
			Level: depth,
			Text:  nodeText(n, kinds),
		})
		return true
	})
	return ll
}

func nodeText(n *ast.Node, kinds *ast.KindTable) string {
	if n.Kind() == kinds.Terminal() {
		return fmt.Sprintf("%q @%d", n.Value(), n.Line())
	}
	if n.Value() == n.Label() {
		return kinds.Name(n.Kind())
	}
	return fmt.Sprintf("%s %q", kinds.Name(n.Kind()), n.Value())
}

package semantic

import (
	"github.com/matty-l/violet/ast"
	"github.com/matty-l/violet/classtree"
	"github.com/matty-l/violet/dispatch"
)

// FieldIdentifier is the pass appending field records to classes.
// Declaration nodes of all fields are collected in a flat list.
type FieldIdentifier struct {
	Outcomes
	classScope
	fields []*ast.Node
}

var _ Pass = (*FieldIdentifier)(nil)

// NewFieldIdentifier creates a field identifier working on tree.
func NewFieldIdentifier(tree *classtree.Tree) *FieldIdentifier {
	return &FieldIdentifier{classScope: classScope{tree: tree}}
}

// Capability is part of interface dispatch.Visitor.
func (fi *FieldIdentifier) Capability() dispatch.Capability {
	return dispatch.FieldIdentification
}

// Name is part of interface Pass.
func (fi *FieldIdentifier) Name() string {
	return "field identifier"
}

// DeclareField appends a field to the current class. Duplicate field names within
// a class are reported.
func (fi *FieldIdentifier) DeclareField(node *ast.Node, name, typ string, line int) {
	c := fi.Current()
	if c == nil {
		tracer().Errorf("field %s declared outside of a class", name)
		return
	}
	if !c.AddField(&classtree.Field{Name: name, Type: typ, Line: line}) {
		fi.Addf(line, "duplicate field '%s' in class '%s'", name, c.Name)
		return
	}
	fi.fields = append(fi.fields, node)
}

// Fields returns the collected field declaration nodes and clears the collection.
func (fi *FieldIdentifier) Fields() []*ast.Node {
	fields := fi.fields
	fi.fields = nil
	return fields
}

// MethodIdentifier is the pass appending method records to classes.
type MethodIdentifier struct {
	Outcomes
	classScope
}

var _ Pass = (*MethodIdentifier)(nil)

// NewMethodIdentifier creates a method identifier working on tree.
func NewMethodIdentifier(tree *classtree.Tree) *MethodIdentifier {
	return &MethodIdentifier{classScope: classScope{tree: tree}}
}

// Capability is part of interface dispatch.Visitor.
func (mi *MethodIdentifier) Capability() dispatch.Capability {
	return dispatch.MethodIdentification
}

// Name is part of interface Pass.
func (mi *MethodIdentifier) Name() string {
	return "method identifier"
}

// DeclareMethod appends a method to the current class. Duplicate signatures within
// a class are reported.
func (mi *MethodIdentifier) DeclareMethod(name, returnType string, params []string, line int) {
	c := mi.Current()
	if c == nil {
		tracer().Errorf("method %s declared outside of a class", name)
		return
	}
	m := &classtree.Method{Name: name, ReturnType: returnType, Params: params, Line: line}
	if !c.AddMethod(m) {
		mi.Addf(line, "duplicate method '%s' in class '%s'", m.Signature(), c.Name)
	}
}

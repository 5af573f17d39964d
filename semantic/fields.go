package semantic

import (
	"fmt"

	"github.com/matty-l/violet/classtree"
	"github.com/matty-l/violet/dispatch"
)

// FieldReference is a name in a method body or initializer resolved to a field.
type FieldReference struct {
	Class string // class of the referring code
	Field string
	Owner string // class declaring the field
	Line  int
}

func (r FieldReference) String() string {
	return fmt.Sprintf("%s: %s.%s @%d", r.Class, r.Owner, r.Field, r.Line)
}

// FieldResolver is the pass checking field references against the class tree.
// Names bound inside a method body (parameters, locals) shadow fields. All other
// names are looked up in the current class, then along its superclass chain.
// It has to run after the field identifier.
type FieldResolver struct {
	Outcomes
	classScope
	resolved []FieldReference
}

var _ Pass = (*FieldResolver)(nil)

// NewFieldResolver creates a field resolver working on tree.
func NewFieldResolver(tree *classtree.Tree) *FieldResolver {
	return &FieldResolver{classScope: classScope{tree: tree}}
}

// Capability is part of interface dispatch.Visitor.
func (fr *FieldResolver) Capability() dispatch.Capability {
	return dispatch.FieldResolution
}

// Name is part of interface Pass.
func (fr *FieldResolver) Name() string {
	return "field resolver"
}

// EnterMethod opens a scope for the parameters and locals of a method.
func (fr *FieldResolver) EnterMethod(name string) {
	fr.scopes.PushNewScope(name)
}

// ExitMethod closes the scope of the current method.
func (fr *FieldResolver) ExitMethod() {
	if sc := fr.scopes.Current(); sc != nil && !sc.class {
		fr.scopes.PopScope()
	}
}

// Bind binds a parameter or local variable name in the current method.
func (fr *FieldResolver) Bind(name string, line int) {
	sc := fr.scopes.Current()
	if sc == nil || sc.class {
		tracer().Errorf("binding of %s outside of a method", name)
		return
	}
	if !sc.Bind(name, line) {
		tracer().Debugf("%s rebound in %v", name, sc)
	}
}

// ResolveField resolves a reference to name. Names neither bound in the current
// method nor declared as a field of the current class or its superclasses are
// reported.
func (fr *FieldResolver) ResolveField(name string, line int) {
	c := fr.Current()
	if c == nil {
		tracer().Errorf("reference to %s outside of a class", name)
		return
	}
	if sc := fr.scopes.Current(); sc.Resolve(name) != nil {
		tracer().Debugf("%s is bound in %v", name, sc)
		return
	}
	f, owner := fr.tree.ResolveField(c, name)
	if f == nil {
		fr.Addf(line, "undeclared field '%s' in class '%s'", name, c.Name)
		return
	}
	fr.resolved = append(fr.resolved, FieldReference{Class: c.Name, Field: f.Name, Owner: owner.Name, Line: line})
}

// Resolved returns the resolved field references, in traversal order.
func (fr *FieldResolver) Resolved() []FieldReference {
	return append([]FieldReference(nil), fr.resolved...)
}

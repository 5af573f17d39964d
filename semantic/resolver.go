package semantic

import (
	"fmt"

	"github.com/matty-l/violet/classtree"
	"github.com/matty-l/violet/dispatch"
)

// Resolution is a resolved method call.
type Resolution struct {
	Class  string // class of the calling method
	Caller string // calling method
	Method string // called method
	Target string // class declaring the called method
	Line   int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%s.%s ➞ %s.%s @%d", r.Class, r.Caller, r.Target, r.Method, r.Line)
}

// DispatchResolver is the pass resolving method calls against the class tree.
// Calls are resolved in the calling class first, then along its superclass chain.
type DispatchResolver struct {
	Outcomes
	classScope
	method   string
	resolved []Resolution
}

var _ Pass = (*DispatchResolver)(nil)

// NewDispatchResolver creates a dispatch resolver working on tree.
func NewDispatchResolver(tree *classtree.Tree) *DispatchResolver {
	return &DispatchResolver{classScope: classScope{tree: tree}}
}

// Capability is part of interface dispatch.Visitor.
func (dr *DispatchResolver) Capability() dispatch.Capability {
	return dispatch.DispatchResolution
}

// Name is part of interface Pass.
func (dr *DispatchResolver) Name() string {
	return "dispatch resolver"
}

// EnterMethod sets the name of the method whose body is traversed.
func (dr *DispatchResolver) EnterMethod(name string) {
	dr.method = name
}

// ExitMethod leaves the current method body.
func (dr *DispatchResolver) ExitMethod() {
	dr.method = ""
}

// ResolveCall resolves a call of method name, starting in the current class.
func (dr *DispatchResolver) ResolveCall(name string, line int) {
	dr.resolve(dr.Current(), name, line)
}

// ResolveSuperCall resolves a call of method name, starting in the superclass of
// the current class.
func (dr *DispatchResolver) ResolveSuperCall(name string, line int) {
	c := dr.Current()
	if c == nil {
		return
	}
	var super *classtree.Class
	if c.Super != "" {
		super = dr.tree.Class(c.Super)
	}
	if super == nil {
		dr.Addf(line, "unresolved method '%s' in class '%s'", name, c.Name)
		return
	}
	dr.resolveFrom(c, super, name, line)
}

func (dr *DispatchResolver) resolve(c *classtree.Class, name string, line int) {
	if c == nil {
		tracer().Errorf("call of %s outside of a class", name)
		return
	}
	dr.resolveFrom(c, c, name, line)
}

func (dr *DispatchResolver) resolveFrom(caller, start *classtree.Class, name string, line int) {
	m, decl := dr.tree.ResolveMethod(start, name)
	if m == nil {
		dr.Addf(line, "unresolved method '%s' in class '%s'", name, caller.Name)
		return
	}
	r := Resolution{Class: caller.Name, Caller: dr.method, Method: m.Name, Target: decl.Name, Line: line}
	tracer().Debugf("resolved %v", r)
	dr.resolved = append(dr.resolved, r)
}

// Resolved returns the resolved calls, in traversal order.
func (dr *DispatchResolver) Resolved() []Resolution {
	return append([]Resolution(nil), dr.resolved...)
}

package semantic

import (
	"fmt"

	"github.com/matty-l/violet/classtree"
)

// === Scopes ================================================================

// Scope is a named scope, which may contain name bindings. Scopes link back to a
// parent scope, forming a tree. A class scope refers to its class record.
type Scope struct {
	Name   string
	Parent *Scope
	Class  *classtree.Class // class record of a class scope, if declared
	names  map[string]int   // bound names and the line of their binding
	class  bool             // is this a class scope?
}

// NewScope creates a new scope.
func NewScope(nm string, parent *Scope) *Scope {
	return &Scope{
		Name:   nm,
		Parent: parent,
		names:  make(map[string]int),
	}
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Bind binds a name in the scope. It returns false if the name has already been
// bound in this scope.
func (s *Scope) Bind(name string, line int) bool {
	if _, ok := s.names[name]; ok {
		return false
	}
	s.names[name] = line
	return true
}

// Resolve finds the scope binding a name, looking outwards from s up to the
// enclosing class scope. Returns nil if no such scope exists. Bindings outside
// of the class are not visible.
func (s *Scope) Resolve(name string) *Scope {
	for ; s != nil; s = s.Parent {
		if _, ok := s.names[name]; ok {
			return s
		}
		if s.class {
			break
		}
	}
	return nil
}

// ---------------------------------------------------------------------------

// ScopeTree can be treated as a stack during static analysis, thus
// building a tree from scopes which are pushed and popped to/from the stack.
type ScopeTree struct {
	ScopeBase *Scope
	ScopeTOS  *Scope
}

// Current gets the current scope of a stack (TOS), or nil.
func (scst *ScopeTree) Current() *Scope {
	return scst.ScopeTOS
}

// PushNewScope pushes a new scope onto the stack of scopes.
func (scst *ScopeTree) PushNewScope(nm string) *Scope {
	scp := scst.ScopeTOS
	newsc := NewScope(nm, scp)
	if scp == nil { // the new scope is the outermost scope
		scst.ScopeBase = newsc
	}
	scst.ScopeTOS = newsc
	tracer().Debugf("pushing new scope %s", newsc.Name)
	return newsc
}

// PopScope pops the top-most (recent) scope. Popping from an empty stack
// is traced and returns nil.
func (scst *ScopeTree) PopScope() *Scope {
	if scst.ScopeTOS == nil {
		tracer().Errorf("attempt to pop scope from empty stack")
		return nil
	}
	sc := scst.ScopeTOS
	tracer().Debugf("popping scope %s", sc.Name)
	scst.ScopeTOS = sc.Parent
	if scst.ScopeTOS == nil {
		scst.ScopeBase = nil
	}
	return sc
}

// === Class scopes ==========================================================

// classScope tracks the class a traversal currently is in. Classes and method
// bodies are pushed and popped as scopes during static analysis.
type classScope struct {
	tree   *classtree.Tree
	scopes ScopeTree
}

// EnterClass makes the class named name the current class.
func (s *classScope) EnterClass(name string) *classtree.Class {
	c := s.tree.Class(name)
	if c == nil {
		tracer().Errorf("class %s has not been declared", name)
	}
	sc := s.scopes.PushNewScope(name)
	sc.Class, sc.class = c, true
	return c
}

// ExitClass leaves the current class, together with any scope opened inside it.
func (s *classScope) ExitClass() {
	for sc := s.scopes.PopScope(); sc != nil && !sc.class; sc = s.scopes.PopScope() {
		tracer().Errorf("scope %s left open", sc.Name)
	}
}

// Current returns the current class, or nil.
func (s *classScope) Current() *classtree.Class {
	for sc := s.scopes.Current(); sc != nil; sc = sc.Parent {
		if sc.class {
			return sc.Class
		}
	}
	return nil
}

// Tree returns the class tree the pass works on.
func (s *classScope) Tree() *classtree.Tree {
	return s.tree
}

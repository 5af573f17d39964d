package semantic

import (
	"github.com/matty-l/violet/classtree"
	"github.com/matty-l/violet/dispatch"
)

// ClassTreeBuilder is the pass creating class records.
type ClassTreeBuilder struct {
	Outcomes
	tree       *classtree.Tree
	current    *classtree.Class
	superLines map[*classtree.Class]int
}

var _ Pass = (*ClassTreeBuilder)(nil)
var _ Finisher = (*ClassTreeBuilder)(nil)

// NewClassTreeBuilder creates a class tree builder working on tree.
func NewClassTreeBuilder(tree *classtree.Tree) *ClassTreeBuilder {
	return &ClassTreeBuilder{
		tree:       tree,
		superLines: make(map[*classtree.Class]int),
	}
}

// Capability is part of interface dispatch.Visitor.
func (b *ClassTreeBuilder) Capability() dispatch.Capability {
	return dispatch.ClassBuilding
}

// Name is part of interface Pass.
func (b *ClassTreeBuilder) Name() string {
	return "class-tree builder"
}

// DeclareClass creates a class record. A class name colliding with a previously
// declared class is reported; it returns false in this case.
func (b *ClassTreeBuilder) DeclareClass(name string, line int) bool {
	c, ok := b.tree.Define(name, line)
	if !ok {
		b.Addf(line, "duplicate class '%s'", name)
		b.current = nil
		return false
	}
	b.current = c
	return true
}

// DeclareSuperclass records the superclass of the class declared last.
func (b *ClassTreeBuilder) DeclareSuperclass(name string, line int) {
	if b.current == nil || b.current.Super != "" {
		return
	}
	b.current.Super = name
	b.superLines[b.current] = line
}

// EndClass closes the declaration of the current class.
func (b *ClassTreeBuilder) EndClass() {
	b.current = nil
}

// Finish checks superclass references, after all classes have been declared.
// Undefined superclasses and inheritance cycles are reported.
func (b *ClassTreeBuilder) Finish() error {
	classes := b.tree.Classes()
	for _, c := range classes {
		if c.Super != "" && c.Super != RootClass && b.tree.Class(c.Super) == nil {
			b.Addf(b.superLines[c], "undefined superclass '%s' of class '%s'", c.Super, c.Name)
		}
	}
	order := make(map[*classtree.Class]int, len(classes))
	for i, c := range classes {
		order[c] = i
	}
	reported := make(map[*classtree.Class]bool)
	for _, c := range classes {
		cycle := b.cycleFrom(c)
		if len(cycle) == 0 || reported[cycle[0]] {
			continue
		}
		first := cycle[0]
		for _, member := range cycle {
			reported[member] = true
			if order[member] < order[first] {
				first = member
			}
		}
		b.Addf(first.Line, "inheritance cycle involving class '%s'", first.Name)
	}
	return nil
}

// cycleFrom returns the members of the inheritance cycle reachable from c, or nil.
func (b *ClassTreeBuilder) cycleFrom(c *classtree.Class) []*classtree.Class {
	chain := b.tree.Superchain(c)
	last := chain[len(chain)-1]
	if last.Super == "" {
		return nil
	}
	repeated := b.tree.Class(last.Super)
	if repeated == nil {
		return nil
	}
	for i, cl := range chain {
		if cl == repeated {
			return chain[i:]
		}
	}
	return nil
}

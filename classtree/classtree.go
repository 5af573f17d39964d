/*
Package classtree implements the class tree, the symbol table of a compilation unit.

A class tree maps class names to class records. Class records hold ordered field
declarations, ordered method declarations and an optional superclass, referenced
by name. Superclass references are resolved lazily, much like scopes linking back
to their parent scope: method lookup walks the chain of superclasses.

Class trees only grow: defining a class, a field or a method never replaces an
existing entry.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package classtree

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'violet.semantic'.
func tracer() tracing.Trace {
	return tracing.Select("violet.semantic")
}

// --- Members ---------------------------------------------------------------

// Field is a field declaration.
type Field struct {
	Name string
	Type string
	Line int
}

func (f *Field) String() string {
	return fmt.Sprintf("%s %s", f.Type, f.Name)
}

// Method is a method declaration. Params holds the parameter types.
type Method struct {
	Name       string
	ReturnType string
	Params     []string
	Line       int
}

// Signature returns the name of the method together with its parameter types,
// e.g. "f(int,boolean)".
func (m *Method) Signature() string {
	return fmt.Sprintf("%s(%s)", m.Name, strings.Join(m.Params, ","))
}

func (m *Method) String() string {
	if m.ReturnType == "" {
		return m.Signature()
	}
	return fmt.Sprintf("%s %s", m.ReturnType, m.Signature())
}

// --- Classes ---------------------------------------------------------------

// Class is a class record.
type Class struct {
	Name    string
	Line    int
	Super   string // name of the superclass, "" if none
	fields  []*Field
	methods []*Method
}

// Fields returns the field declarations in declaration order.
func (c *Class) Fields() []*Field {
	return append([]*Field(nil), c.fields...)
}

// Methods returns the method declarations in declaration order.
func (c *Class) Methods() []*Method {
	return append([]*Method(nil), c.methods...)
}

// Field returns the field declaration for name, or nil.
func (c *Class) Field(name string) *Field {
	for _, f := range c.fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// MethodsNamed returns all methods with a given name, in declaration order.
func (c *Class) MethodsNamed(name string) []*Method {
	var methods []*Method
	for _, m := range c.methods {
		if m.Name == name {
			methods = append(methods, m)
		}
	}
	return methods
}

// AddField appends a field declaration. It returns false, and leaves the class
// untouched, if a field with the same name exists.
func (c *Class) AddField(f *Field) bool {
	if c.Field(f.Name) != nil {
		return false
	}
	c.fields = append(c.fields, f)
	return true
}

// AddMethod appends a method declaration. It returns false, and leaves the class
// untouched, if a method with the same signature exists.
func (c *Class) AddMethod(m *Method) bool {
	sig := m.Signature()
	for _, other := range c.methods {
		if other.Signature() == sig {
			return false
		}
	}
	c.methods = append(c.methods, m)
	return true
}

func (c *Class) String() string {
	if c.Super == "" {
		return fmt.Sprintf("<class %s>", c.Name)
	}
	return fmt.Sprintf("<class %s < %s>", c.Name, c.Super)
}

// --- Class tree ------------------------------------------------------------

// Tree is the class tree of a compilation unit. Create one with New.
// A tree is not safe for concurrent mutation.
type Tree struct {
	classes map[string]*Class
	order   []*Class // declaration order
	names   *treeset.Set
}

// New creates an empty class tree.
func New() *Tree {
	return &Tree{
		classes: make(map[string]*Class),
		names:   treeset.NewWithStringComparator(),
	}
}

// Define creates a class record. If a class with this name exists, it is
// returned unchanged together with false.
func (t *Tree) Define(name string, line int) (*Class, bool) {
	if c, ok := t.classes[name]; ok {
		return c, false
	}
	c := &Class{Name: name, Line: line}
	t.classes[name] = c
	t.order = append(t.order, c)
	t.names.Add(name)
	tracer().Debugf("defined class %s in line %d", name, line)
	return c, true
}

// Class returns the class record for name, or nil.
func (t *Tree) Class(name string) *Class {
	return t.classes[name]
}

// Size returns the number of classes.
func (t *Tree) Size() int {
	return len(t.classes)
}

// Names returns the class names in lexical order.
func (t *Tree) Names() []string {
	names := make([]string, 0, t.names.Size())
	for _, x := range t.names.Values() {
		names = append(names, x.(string))
	}
	return names
}

// Classes returns the class records in declaration order.
func (t *Tree) Classes() []*Class {
	return append([]*Class(nil), t.order...)
}

// Superchain returns c followed by its superclasses, nearest first. The chain
// ends at the first superclass without a record, or before a class would be
// repeated.
func (t *Tree) Superchain(c *Class) []*Class {
	var chain []*Class
	seen := make(map[*Class]bool)
	for c != nil && !seen[c] {
		seen[c] = true
		chain = append(chain, c)
		if c.Super == "" {
			break
		}
		c = t.classes[c.Super]
	}
	return chain
}

// ResolveMethod looks up a method by name, starting in class c and continuing
// along the superclass chain. It returns the first method found and the class
// declaring it, or nil.
func (t *Tree) ResolveMethod(c *Class, name string) (*Method, *Class) {
	for _, cl := range t.Superchain(c) {
		if methods := cl.MethodsNamed(name); len(methods) > 0 {
			return methods[0], cl
		}
	}
	return nil, nil
}

// ResolveField looks up a field by name along the superclass chain of c.
func (t *Tree) ResolveField(c *Class, name string) (*Field, *Class) {
	for _, cl := range t.Superchain(c) {
		if f := cl.Field(name); f != nil {
			return f, cl
		}
	}
	return nil, nil
}

// Equal is true if two trees hold the same classes with the same superclasses,
// fields and methods, in the same order.
func (t *Tree) Equal(other *Tree) bool {
	return t.String() == other.String()
}

// String returns a canonical, multi-line listing of the tree.
func (t *Tree) String() string {
	var b bytes.Buffer
	for _, c := range t.order {
		b.WriteString(c.String())
		b.WriteString(fmt.Sprintf(" @%d\n", c.Line))
		for _, f := range c.fields {
			b.WriteString(fmt.Sprintf("    field %s @%d\n", f, f.Line))
		}
		for _, m := range c.methods {
			b.WriteString(fmt.Sprintf("    method %s @%d\n", m, m.Line))
		}
	}
	return b.String()
}

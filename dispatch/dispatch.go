/*
Package dispatch routes AST nodes to visitor handlers.

Dispatch depends on three things: the kind of a node, the dialect the AST belongs
to, and what a visitor is up to. Every dialect owns a Table, mapping
(capability, node kind) to a handler. A visitor declares its capability,
and a Dispatcher for that capability is selected from the table once, before a
traversal starts. Dispatching a node then is a single map lookup.

Nodes without a registered handler are handled by a default traversal, visiting
all children depth-first in pre-order. Handlers decide themselves whether and how
to continue into children, usually by calling VisitChildren.

A node kind outside of the dialect's enumeration means that the AST and the
dialect's tables have drifted apart. Accept reports this as an *Error wrapping
ErrUnregisteredKind.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dispatch

import (
	"errors"
	"fmt"

	"github.com/matty-l/violet/ast"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'violet.semantic'.
func tracer() tracing.Trace {
	return tracing.Select("violet.semantic")
}

// Capability identifies what a visitor does.
type Capability int

// Capabilities of the semantic passes.
const (
	ClassBuilding Capability = iota
	FieldIdentification
	MethodIdentification
	DispatchResolution
	FieldResolution
)

var capabilityNames = map[Capability]string{
	ClassBuilding:        "ClassBuilding",
	FieldIdentification:  "FieldIdentification",
	MethodIdentification: "MethodIdentification",
	DispatchResolution:   "DispatchResolution",
	FieldResolution:      "FieldResolution",
}

func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Capability(%d)", int(c))
}

// Visitor is implemented by every AST visitor.
type Visitor interface {
	Capability() Capability
}

// Handler handles a single node for a visitor.
type Handler func(d *Dispatcher, v Visitor, n *ast.Node) error

// ErrUnregisteredKind is the reason for dispatch errors for nodes with a kind
// outside of the dialect's enumeration.
var ErrUnregisteredKind = errors.New("node kind not registered for dialect")

// ErrCapabilityMismatch is the reason for dispatch errors for visitors whose
// capability differs from the dispatcher's.
var ErrCapabilityMismatch = errors.New("visitor capability does not match dispatcher")

// Error is the error type for dispatch failures.
type Error struct {
	Dialect    string
	Kind       ast.Kind
	Capability Capability
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: kind %d, dialect %s, capability %s", e.Err, e.Kind, e.Dialect, e.Capability)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Table is the handler table of a dialect.
type Table struct {
	kinds    *ast.KindTable
	handlers map[Capability]map[ast.Kind]Handler
}

// NewTable creates an empty handler table for the kinds of a dialect.
func NewTable(kinds *ast.KindTable) *Table {
	return &Table{
		kinds:    kinds,
		handlers: make(map[Capability]map[ast.Kind]Handler),
	}
}

// Kinds returns the kind table of the dialect.
func (t *Table) Kinds() *ast.KindTable {
	return t.kinds
}

// Register sets the handler for nodes of kind k and visitors of capability c.
// Registering a kind outside of the enumeration is a programming error and
// will panic.
func (t *Table) Register(c Capability, k ast.Kind, h Handler) *Table {
	if !t.kinds.Contains(k) {
		panic(fmt.Sprintf("dispatch table %s: kind %d is not enumerated", t.kinds.Dialect(), k))
	}
	m := t.handlers[c]
	if m == nil {
		m = make(map[ast.Kind]Handler)
		t.handlers[c] = m
	}
	m[k] = h
	return t
}

// For selects the handlers for visitors of capability c.
func (t *Table) For(c Capability) *Dispatcher {
	return &Dispatcher{
		kinds:      t.kinds,
		capability: c,
		handlers:   t.handlers[c],
	}
}

// Dispatcher dispatches nodes to the handlers of a single capability.
type Dispatcher struct {
	kinds      *ast.KindTable
	capability Capability
	handlers   map[ast.Kind]Handler
}

// Capability returns the capability the dispatcher serves.
func (d *Dispatcher) Capability() Capability {
	return d.capability
}

// Dialect returns the name of the dialect the dispatcher serves.
func (d *Dispatcher) Dialect() string {
	return d.kinds.Dialect()
}

// Accept dispatches node n to the handler registered for visitor v. Nodes without
// a handler are traversed with VisitChildren.
func (d *Dispatcher) Accept(n *ast.Node, v Visitor) error {
	if n == nil {
		return nil
	}
	if !d.kinds.Contains(n.Kind()) {
		err := &Error{Dialect: d.Dialect(), Kind: n.Kind(), Capability: d.capability, Err: ErrUnregisteredKind}
		tracer().Errorf(err.Error())
		return err
	}
	if v.Capability() != d.capability {
		return &Error{Dialect: d.Dialect(), Kind: n.Kind(), Capability: v.Capability(), Err: ErrCapabilityMismatch}
	}
	if h, ok := d.handlers[n.Kind()]; ok {
		return h(d, v, n)
	}
	return d.VisitChildren(n, v)
}

// VisitChildren dispatches all children of n, in order.
func (d *Dispatcher) VisitChildren(n *ast.Node, v Visitor) error {
	for i := 0; i < n.ChildCount(); i++ {
		if err := d.Accept(n.Child(i), v); err != nil {
			return err
		}
	}
	return nil
}

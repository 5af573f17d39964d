/*
Package decorator runs the semantic passes of a dialect over an AST.

Dialects are registered with a Registry. A registration holds the dialect's kind
table (including its synthetic kind, used for normalization), its dispatch table
and a factory for its ordered pipeline of passes. Adding a dialect means adding a
registration; nothing else changes.

A Decorator runs the passes of a dialect in pipeline order against an AST and a
class tree. Later passes depend on the class tree populated by earlier ones.
Outcomes of all passes are collected until the caller drains them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package decorator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/matty-l/violet/ast"
	"github.com/matty-l/violet/classtree"
	"github.com/matty-l/violet/dispatch"
	"github.com/matty-l/violet/semantic"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'violet.semantic'.
func tracer() tracing.Trace {
	return tracing.Select("violet.semantic")
}

// ErrUnknownDialect is returned for dialects without a registration.
var ErrUnknownDialect = errors.New("unknown dialect")

// ErrInvalidRegistration is returned for incomplete registrations.
var ErrInvalidRegistration = errors.New("invalid dialect registration")

// PipelineFactory creates the ordered passes of a dialect for a class tree.
type PipelineFactory func(tree *classtree.Tree) []semantic.Pass

// Registration holds everything needed to decorate ASTs of a dialect.
type Registration struct {
	Kinds    *ast.KindTable
	Table    *dispatch.Table
	Pipeline PipelineFactory
}

// Registry holds the registered dialects. Create one with NewRegistry.
type Registry struct {
	dialects map[string]Registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{dialects: make(map[string]Registration)}
}

// Register adds a dialect.
func (r *Registry) Register(dialect string, reg Registration) error {
	if reg.Kinds == nil || reg.Table == nil || reg.Pipeline == nil {
		return fmt.Errorf("%w: %s", ErrInvalidRegistration, dialect)
	}
	if _, exists := r.dialects[dialect]; exists {
		return fmt.Errorf("%w: %s registered twice", ErrInvalidRegistration, dialect)
	}
	tracer().Infof("registering dialect %s", dialect)
	r.dialects[dialect] = reg
	return nil
}

// Lookup returns the registration of a dialect.
func (r *Registry) Lookup(dialect string) (Registration, error) {
	reg, ok := r.dialects[dialect]
	if !ok {
		return Registration{}, fmt.Errorf("%w: %s", ErrUnknownDialect, dialect)
	}
	return reg, nil
}

// Dialects returns the names of all registered dialects, sorted.
func (r *Registry) Dialects() []string {
	names := make([]string, 0, len(r.dialects))
	for name := range r.dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- Decorator -------------------------------------------------------------

// Decorator decorates ASTs with class trees. A decorator is meant to serve one
// compilation unit at a time; it does no locking.
type Decorator struct {
	registry    *Registry
	outcomes    []semantic.Outcome
	fields      []*ast.Node
	resolutions []semantic.Resolution
	references  []semantic.FieldReference
}

// New creates a decorator for the dialects of a registry.
func New(registry *Registry) *Decorator {
	return &Decorator{registry: registry}
}

// Decorate runs the passes of dialect over root, populating tree. Fatal errors,
// e.g., nodes without an entry in the dialect's tables, abort the remaining
// passes. Outcomes of passes already run remain available.
func (d *Decorator) Decorate(root *ast.Node, tree *classtree.Tree, dialect string) error {
	reg, err := d.registry.Lookup(dialect)
	if err != nil {
		tracer().Errorf(err.Error())
		return err
	}
	d.resolutions, d.references = nil, nil
	for _, pass := range reg.Pipeline(tree) {
		tracer().Infof("running %s for dialect %s", pass.Name(), dialect)
		err := reg.Table.For(pass.Capability()).Accept(root, pass)
		if err == nil {
			if f, ok := pass.(semantic.Finisher); ok {
				err = f.Finish()
			}
		}
		d.collect(pass)
		if err != nil {
			tracer().Errorf("%s failed: %v", pass.Name(), err)
			return err
		}
	}
	return nil
}

func (d *Decorator) collect(pass semantic.Pass) {
	d.outcomes = append(d.outcomes, pass.Drain()...)
	switch p := pass.(type) {
	case *semantic.FieldIdentifier:
		d.fields = append(d.fields, p.Fields()...)
	case *semantic.DispatchResolver:
		d.resolutions = append(d.resolutions, p.Resolved()...)
	case *semantic.FieldResolver:
		d.references = append(d.references, p.Resolved()...)
	}
}

// Outcomes returns the collected outcomes and clears them.
func (d *Decorator) Outcomes() []semantic.Outcome {
	outcomes := d.outcomes
	d.outcomes = nil
	return outcomes
}

// Fields returns the collected field declaration nodes and clears them.
func (d *Decorator) Fields() []*ast.Node {
	fields := d.fields
	d.fields = nil
	return fields
}

// Resolutions returns the calls resolved by the last call to Decorate.
func (d *Decorator) Resolutions() []semantic.Resolution {
	return append([]semantic.Resolution(nil), d.resolutions...)
}

// FieldReferences returns the field references resolved by the last call to Decorate.
func (d *Decorator) FieldReferences() []semantic.FieldReference {
	return append([]semantic.FieldReference(nil), d.references...)
}

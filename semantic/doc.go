/*
Package semantic implements the semantic passes over Violet ASTs.

Every pass is a visitor with a dispatch capability. Dialects register handlers for
their node kinds, which extract names, types and lines from the AST and call the
declaration methods of a pass (DeclareClass, DeclareField, ResolveCall, …). The
passes themselves are dialect-agnostic: they maintain the class tree handed to
them and collect outcomes.

Outcomes are (line, message) pairs. They never abort a pass; a caller observes
them by draining a pass, which copies the outcomes and clears the buffer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package semantic

import (
	"github.com/matty-l/violet/dispatch"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'violet.semantic'.
func tracer() tracing.Trace {
	return tracing.Select("violet.semantic")
}

// Pass is a semantic pass.
type Pass interface {
	dispatch.Visitor
	Name() string
	Drain() []Outcome
}

// Finisher is implemented by passes which have work to do after the traversal.
type Finisher interface {
	Finish() error
}

// RootClass is the implicit superclass of all classes. It needs no declaration.
const RootClass = "Object"

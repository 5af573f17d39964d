/*
Package ast implements abstract syntax trees for the Violet dialects.

ASTs are homogeneous: every node carries a kind drawn from the closed enumeration of
its dialect, a value and an ordered list of children. A KindTable classifies the
grammar symbols of a dialect. Exactly one kind of every table is reserved as
synthetic: it tags grammar-internal helper productions, which never survive
normalization. Normalize converts a raw parse tree into an AST, splicing the
children of synthetic nodes into their parents at the position the synthetic
node occupied.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'violet.ast'.
func tracer() tracing.Trace {
	return tracing.Select("violet.ast")
}

/*
Package forest extracts a single derivation tree from a recognition chart.

A chart produced by an Earley recognizer may encode more than one derivation for
an input. Package forest reduces it to exactly one raw parse tree:

1. The unique completed item for the synthetic start symbol GAMMA, spanning the
whole input and stored in the last row, becomes the root.

2. A work list holds pending items, the root first. For every pending item, each
element of its production is resolved to a completed item of the same name,
chosen by a Policy among all items not visited so far.

3. Resolved items are marked visited, attached as children in RHS order and pushed
onto the work list. Terminal items (t ➞ t) are marked visited but never pushed,
which breaks the self-cycle of leaves rewriting to themselves.

Every completed item is expanded at most once, therefore extraction terminates
for every chart.

Policies

FirstMatch resolves each RHS element to the first unvisited completed item of
matching name, in chart encounter order, without regard to spans.

LeftmostShortest, the default, requires the children of an item to tile its span:
the first child starts where the parent starts, every other child where its left
sibling ends, and the last child ends where the parent ends. Candidates are
tried shortest span first, then by lower rule serial, then in encounter order,
backtracking over siblings if a choice leaves the rest of the span unmatched.
This makes results reproducible for ambiguous charts.

Configuration key "extract-first-match" switches the default to FirstMatch.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package forest

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'violet.lr'.
func tracer() tracing.Trace {
	return tracing.Select("violet.lr")
}

/*
Package lr implements the grammar model for Violet's front end.
A grammar is consumed by the recognizer (package lr/earley) and its rules are
referenced by the items of a recognition chart (package lr/chart).

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals
carry a token value of type int. Grammars may contain epsilon-productions.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a", 1).End()  // S  ->  A a
    b.LHS("A").N("B").N("D").End()     // A  ->  B D
    b.LHS("B").T("b", 2).End()         // B  ->  b
    b.LHS("B").Epsilon()               // B  ->
    b.LHS("D").T("d", 3).End()         // D  ->  d
    b.LHS("D").Epsilon()               // D  ->
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: [GAMMA] ::= [S]
   1: [S] ::= [A a]
   2: [A] ::= [B D]
   3: [B] ::= [b]
   4: [B] ::= []
   5: [D] ::= [d]
   6: [D] ::= []

Rule 0 is always the synthetic start rule. Its left-hand side, GAMMA, is the
symbol a recognizer looks for in the last row of a chart to signal a successful
recognition.

Nullable Symbols

After the grammar is complete, all epsilon-derivable non-terminals are determined.
The recognizer needs them to complete items of nullable symbols during prediction.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'violet.lr'.
func tracer() tracing.Trace {
	return tracing.Select("violet.lr")
}

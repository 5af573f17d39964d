/*
Package violet is the front-end analysis core of the Violet compiler toolchain.

Violet takes the completed recognition chart of a context-free grammar for an
input program, extracts a single derivation from it, normalizes the derivation
into an abstract syntax tree and decorates the tree with a class tree and
diagnostics. Package structure is as follows:

■ lr: Package lr implements the grammar model. Sub-packages hold the chart
contract (lr/chart), an Earley recognizer producing charts (lr/earley), the raw
parse tree (lr/parsetree) and the forest extractor (lr/forest).

■ ast: Package ast implements typed syntax tree nodes and the normalizer, which
splices out synthetic nodes of grammar helper productions.

■ dispatch, semantic, classtree, decorator: visitor dispatch over
(node kind × dialect × visitor), the semantic passes, the symbol table they populate
and the per-dialect orchestration of the passes.

■ dialect: two language dialects sharing the framework.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package violet

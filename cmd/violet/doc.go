/*
Command violet is a developer tool for the Violet front-end.

    violet check --dialect javalite [--trace Info] [--config violet.yaml] FILE...
    violet repl --dialect rubylite

Check analyzes each file as a compilation unit and prints its syntax tree,
the decorated class tree and all outcomes. The exit status is 1 if a unit
could not be analyzed. Repl reads one compilation unit per line.

Settings may be given in a YAML file:

    dialect: javalite
    trace: Info
    policy: leftmost-shortest

Flags override settings of the file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'violet.semantic'
func tracer() tracing.Trace {
	return tracing.Select("violet.semantic")
}

// traceKeys are the trace keys of all packages of Violet.
var traceKeys = []string{"violet.lr", "violet.scanner", "violet.ast", "violet.semantic"}

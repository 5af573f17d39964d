package ast

import (
	"errors"
	"fmt"
	"sort"

	"github.com/matty-l/violet/lr"
	"github.com/matty-l/violet/lr/parsetree"
)

// Kind is a node kind. Every dialect defines its own closed enumeration of kinds.
type Kind int

// ErrUnknownSymbol is returned for raw parse tree nodes whose grammar symbol a kind
// table cannot classify.
var ErrUnknownSymbol = errors.New("unknown grammar symbol")

// KindTable maps the grammar symbols of a dialect to node kinds.
//
// Terminals without an explicit mapping classify as the table's terminal kind.
// Non-terminals must either be mapped or be declared as helpers with Synthesize.
// The start symbol GAMMA is always synthetic.
type KindTable struct {
	dialect   string
	names     map[Kind]string
	symbols   map[string]Kind
	synthetic Kind
	terminal  Kind
}

// NewKindTable creates a kind table for a dialect. names is the closed enumeration
// of kinds, which must include the synthetic and the terminal kind.
func NewKindTable(dialect string, names map[Kind]string, synthetic, terminal Kind) *KindTable {
	kt := &KindTable{
		dialect:   dialect,
		names:     make(map[Kind]string, len(names)),
		symbols:   make(map[string]Kind),
		synthetic: synthetic,
		terminal:  terminal,
	}
	for k, name := range names {
		kt.names[k] = name
	}
	if !kt.Contains(synthetic) || !kt.Contains(terminal) {
		panic(fmt.Sprintf("kind table %s: synthetic and terminal kinds must be enumerated", dialect))
	}
	kt.symbols[lr.StartSymbol] = synthetic
	return kt
}

// Map assigns a kind to a grammar symbol. Mapping a kind outside of the
// enumeration is a programming error and will panic.
func (kt *KindTable) Map(symbol string, kind Kind) *KindTable {
	if !kt.Contains(kind) {
		panic(fmt.Sprintf("kind table %s: kind %d for symbol %s is not enumerated",
			kt.dialect, kind, symbol))
	}
	kt.symbols[symbol] = kind
	return kt
}

// Synthesize declares helper non-terminals, which will be spliced out during
// normalization.
func (kt *KindTable) Synthesize(symbols ...string) *KindTable {
	for _, s := range symbols {
		kt.symbols[s] = kt.synthetic
	}
	return kt
}

// KindOf classifies a raw parse tree node.
func (kt *KindTable) KindOf(n *parsetree.Node) (Kind, error) {
	if k, ok := kt.symbols[n.Symbol()]; ok {
		return k, nil
	}
	if n.IsTerminal() {
		return kt.terminal, nil
	}
	return 0, fmt.Errorf("%w: %s in dialect %s", ErrUnknownSymbol, n.Symbol(), kt.dialect)
}

// Contains is true if k is part of the enumeration.
func (kt *KindTable) Contains(k Kind) bool {
	_, ok := kt.names[k]
	return ok
}

// Name returns the name of kind k.
func (kt *KindTable) Name(k Kind) string {
	if name, ok := kt.names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Kinds returns the enumeration in ascending order.
func (kt *KindTable) Kinds() []Kind {
	kinds := make([]Kind, 0, len(kt.names))
	for k := range kt.names {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Dialect returns the name of the dialect.
func (kt *KindTable) Dialect() string {
	return kt.dialect
}

// Synthetic returns the reserved synthetic kind ("AbstractNode").
func (kt *KindTable) Synthetic() Kind {
	return kt.synthetic
}

// Terminal returns the kind of unmapped terminals.
func (kt *KindTable) Terminal() Kind {
	return kt.terminal
}

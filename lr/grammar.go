package lr

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/matty-l/violet"
)

// StartSymbol is the name of the synthetic start symbol. Every grammar has
// a rule 0 of the form
//
//     GAMMA ➞ S
//
// where S is the left hand side of the first rule added by a client.
const StartSymbol = "GAMMA"

// NonTermType is the token value of non-terminal symbols.
const NonTermType = -1000

// ErrMalformedGrammar is returned by the grammar builder for inconsistent grammars.
var ErrMalformedGrammar = errors.New("malformed grammar")

// --- Symbols ---------------------------------------------------------------

// Symbol is a grammar symbol, either a terminal or a non-terminal.
// Terminals carry the token type a scanner produces for them.
type Symbol struct {
	Name  string
	Value int
}

// IsTerminal returns true if this symbol represents a terminal.
func (s *Symbol) IsTerminal() bool {
	return s.Value != NonTermType
}

// TokenType returns the token type of a terminal symbol.
func (s *Symbol) TokenType() violet.TokType {
	return violet.TokType(s.Value)
}

func (s *Symbol) String() string {
	return s.Name
}

// --- Rules -----------------------------------------------------------------

// Rule is a grammar production
//
//     LHS ➞ RHS
//
// Serial is the rule number within its grammar, starting with 0 for the
// synthetic start rule.
type Rule struct {
	Serial int
	LHS    *Symbol
	rhs    []*Symbol
}

// RHS returns a copy of the right hand side symbols of a rule.
func (r *Rule) RHS() []*Symbol {
	return append([]*Symbol(nil), r.rhs...)
}

// Len returns the number of symbols of the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// At returns the RHS symbol at position i.
func (r *Rule) At(i int) *Symbol {
	if i < 0 || i >= len(r.rhs) {
		return nil
	}
	return r.rhs[i]
}

// IsEpsilon is true for rules with an empty right hand side.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

// Names returns the names of the RHS symbols, in order.
func (r *Rule) Names() []string {
	names := make([]string, len(r.rhs))
	for i, s := range r.rhs {
		names[i] = s.Name
	}
	return names
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("%d: [%s] ::= [", r.Serial, r.LHS.Name))
	for i, s := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(s.Name)
	}
	b.WriteString("]")
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a context free grammar. Create one with a GrammarBuilder.
type Grammar struct {
	Name      string
	rules     []*Rule
	symbols   map[string]*Symbol
	order     []*Symbol // symbols in order of first appearance
	terminals map[int]*Symbol
	nullable  map[*Symbol]bool
}

func newGrammar(name string) *Grammar {
	g := &Grammar{
		Name:      name,
		rules:     make([]*Rule, 0, 32),
		symbols:   make(map[string]*Symbol),
		terminals: make(map[int]*Symbol),
		nullable:  make(map[*Symbol]bool),
	}
	start := g.symbol(StartSymbol, NonTermType)
	g.rules = append(g.rules, &Rule{Serial: 0, LHS: start})
	return g
}

func (g *Grammar) symbol(name string, value int) *Symbol {
	if sym, ok := g.symbols[name]; ok {
		return sym
	}
	sym := &Symbol{Name: name, Value: value}
	g.symbols[name] = sym
	g.order = append(g.order, sym)
	if value != NonTermType {
		g.terminals[value] = sym
	}
	return sym
}

// Rule returns rule number n, or nil.
func (g *Grammar) Rule(n int) *Rule {
	if n < 0 || n >= len(g.rules) {
		return nil
	}
	return g.rules[n]
}

// Size returns the number of rules, including the start rule.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// SymbolByName returns a grammar symbol or nil.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.symbols[name]
}

// Terminal returns the terminal symbol for a token value, or nil.
func (g *Grammar) Terminal(tokval int) *Symbol {
	return g.terminals[tokval]
}

// RulesFor returns all rules with LHS A, in rule order.
func (g *Grammar) RulesFor(A *Symbol) []*Rule {
	var rules []*Rule
	for _, r := range g.rules {
		if r.LHS == A {
			rules = append(rules, r)
		}
	}
	return rules
}

// IsNullable is true if symbol A derives the empty string.
func (g *Grammar) IsNullable(A *Symbol) bool {
	return g.nullable[A]
}

// EachSymbol calls mapper for every symbol of the grammar, in order of first
// appearance.
func (g *Grammar) EachSymbol(mapper func(*Symbol)) {
	for _, sym := range g.order {
		mapper(sym)
	}
}

// Dump traces the rules of the grammar at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%s", r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// computeNullable determines all epsilon-derivable non-terminals by iterating to
// a fixpoint.
func (g *Grammar) computeNullable() {
	changed := true
	for changed {
		changed = false
		for _, r := range g.rules {
			if g.nullable[r.LHS] {
				continue
			}
			allNullable := true
			for _, s := range r.rhs {
				if s.IsTerminal() || !g.nullable[s] {
					allNullable = false
					break
				}
			}
			if allNullable {
				g.nullable[r.LHS] = true
				changed = true
			}
		}
	}
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a builder type for grammars. Create one with
// NewGrammarBuilder and retrieve the grammar with Grammar().
type GrammarBuilder struct {
	g   *Grammar
	err error
}

// NewGrammarBuilder creates a new builder for a grammar with a given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{g: newGrammar(name)}
}

// RuleBuilder collects the right hand side of a single rule.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs *Symbol
	rhs []*Symbol
}

// LHS starts a new rule for non-terminal s.
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	lhs := gb.nonterminal(s)
	if gb.g.rules[0].rhs == nil && lhs != nil {
		gb.g.rules[0].rhs = []*Symbol{lhs}
	}
	return &RuleBuilder{gb: gb, lhs: lhs}
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(s string) *RuleBuilder {
	if sym := rb.gb.nonterminal(s); sym != nil {
		rb.rhs = append(rb.rhs, sym)
	}
	return rb
}

// T appends a terminal with token value tokval to the right hand side.
func (rb *RuleBuilder) T(s string, tokval int) *RuleBuilder {
	if sym := rb.gb.terminal(s, tokval); sym != nil {
		rb.rhs = append(rb.rhs, sym)
	}
	return rb
}

// End closes the rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	if rb.lhs == nil {
		return nil
	}
	r := &Rule{
		Serial: len(rb.gb.g.rules),
		LHS:    rb.lhs,
		rhs:    rb.rhs,
	}
	rb.gb.g.rules = append(rb.gb.g.rules, r)
	return r
}

// Epsilon adds an epsilon-rule for the LHS.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rhs = nil
	return rb.End()
}

func (gb *GrammarBuilder) nonterminal(name string) *Symbol {
	if name == StartSymbol {
		gb.fail(fmt.Errorf("%w: %s is reserved", ErrMalformedGrammar, StartSymbol))
		return nil
	}
	if sym := gb.g.symbols[name]; sym != nil && sym.IsTerminal() {
		gb.fail(fmt.Errorf("%w: %s used as terminal and non-terminal", ErrMalformedGrammar, name))
		return nil
	}
	return gb.g.symbol(name, NonTermType)
}

func (gb *GrammarBuilder) terminal(name string, tokval int) *Symbol {
	if tokval == NonTermType {
		gb.fail(fmt.Errorf("%w: terminal %s uses reserved token value", ErrMalformedGrammar, name))
		return nil
	}
	if sym := gb.g.symbols[name]; sym != nil {
		if !sym.IsTerminal() {
			gb.fail(fmt.Errorf("%w: %s used as terminal and non-terminal", ErrMalformedGrammar, name))
			return nil
		}
		if sym.Value != tokval {
			gb.fail(fmt.Errorf("%w: terminal %s with token values %d and %d",
				ErrMalformedGrammar, name, sym.Value, tokval))
			return nil
		}
		return sym
	}
	if other := gb.g.terminals[tokval]; other != nil {
		gb.fail(fmt.Errorf("%w: terminals %s and %s share token value %d",
			ErrMalformedGrammar, other.Name, name, tokval))
		return nil
	}
	return gb.g.symbol(name, tokval)
}

func (gb *GrammarBuilder) fail(err error) {
	tracer().Errorf(err.Error())
	if gb.err == nil {
		gb.err = err
	}
}

// Grammar returns the grammar built so far. It returns an error if the grammar is
// empty or inconsistent, e.g., if a non-terminal is referenced but never
// defined by a rule.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	g := gb.g
	if len(g.rules) < 2 {
		return nil, fmt.Errorf("%w: grammar %s has no rules", ErrMalformedGrammar, g.Name)
	}
	defined := make(map[*Symbol]bool)
	for _, r := range g.rules {
		defined[r.LHS] = true
	}
	for _, sym := range g.order {
		if !sym.IsTerminal() && !defined[sym] {
			return nil, fmt.Errorf("%w: non-terminal %s has no rules", ErrMalformedGrammar, sym.Name)
		}
	}
	g.computeNullable()
	return g, nil
}

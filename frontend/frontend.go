/*
Package frontend runs the Violet front-end over a single compilation unit.

A unit flows through the following phases:

    source ⟶ tokens ⟶ chart ⟶ parse tree ⟶ AST ⟶ decorated class tree

Lexing and recognition are done by the host part of Violet (packages lr/scanner
and lr/earley); extraction, normalization and decoration are the analysis core.
Input rejected by the recognizer is reported with ErrNotRecognized. It is an
upstream failure: no tree is extracted from the chart of a rejected unit.

Units share no state. Analyzing the same source twice yields equal class trees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frontend

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/matty-l/violet/ast"
	"github.com/matty-l/violet/classtree"
	"github.com/matty-l/violet/decorator"
	"github.com/matty-l/violet/dialect"
	"github.com/matty-l/violet/dialect/javalite"
	"github.com/matty-l/violet/dialect/rubylite"
	"github.com/matty-l/violet/lr/chart"
	"github.com/matty-l/violet/lr/earley"
	"github.com/matty-l/violet/lr/forest"
	"github.com/matty-l/violet/lr/parsetree"
	"github.com/matty-l/violet/semantic"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'violet.semantic'.
func tracer() tracing.Trace {
	return tracing.Select("violet.semantic")
}

// ErrNotRecognized is returned for source text rejected by the recognizer.
var ErrNotRecognized = errors.New("input not recognized")

// --- Registry --------------------------------------------------------------

// Registry holds the dialects available to hosts, together with their
// decorator registrations.
type Registry struct {
	dialects   map[string]dialect.Dialect
	decorators *decorator.Registry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		dialects:   make(map[string]dialect.Dialect),
		decorators: decorator.NewRegistry(),
	}
}

// DefaultRegistry returns a registry with all dialects of Violet registered.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	for _, d := range []dialect.Dialect{javalite.Dialect(), rubylite.Dialect()} {
		if err := reg.Register(d); err != nil {
			panic(err) // dialects of Violet are well-formed
		}
	}
	return reg
}

// Register adds a dialect. Registering a dialect name twice is an error.
func (reg *Registry) Register(d dialect.Dialect) error {
	if err := reg.decorators.Register(d.Name(), d.Registration()); err != nil {
		return err
	}
	reg.dialects[d.Name()] = d
	return nil
}

// Lookup returns the dialect registered for name.
func (reg *Registry) Lookup(name string) (dialect.Dialect, error) {
	d, ok := reg.dialects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", decorator.ErrUnknownDialect, name)
	}
	return d, nil
}

// Dialects returns the names of all registered dialects, sorted.
func (reg *Registry) Dialects() []string {
	names := make([]string, 0, len(reg.dialects))
	for name := range reg.dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decorators returns the decorator registry.
func (reg *Registry) Decorators() *decorator.Registry {
	return reg.decorators
}

// --- Units -----------------------------------------------------------------

// Unit is a single compilation unit together with the results of all phases
// which have been run for it.
type Unit struct {
	Dialect     string
	Source      string
	Tokens      int                       // number of tokens read
	Chart       *chart.Chart              // chart filled by the recognizer
	ParseTree   *parsetree.Node           // raw parse tree, extracted from the chart
	AST         *ast.Node                 // normalized syntax tree
	Classes     *classtree.Tree           // decorated class tree
	Outcomes    []semantic.Outcome        // recoverable semantic problems
	Fields      []*ast.Node               // field declarations found
	Resolutions []semantic.Resolution     // resolved method calls
	References  []semantic.FieldReference // resolved field references
	ScanErrors  []error                   // input skipped by the lexer
	Expected    []string                  // terminals expected where recognition failed
}

// Option configures the analysis of a unit.
type Option func(*config)

type config struct {
	policy     forest.Policy
	traceChart bool
}

// WithPolicy selects the tie-break policy of the forest extractor.
func WithPolicy(p forest.Policy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// TraceChart dumps the chart of the recognizer at debug level.
func TraceChart(b bool) Option {
	return func(c *config) {
		c.traceChart = b
	}
}

// Analyze runs all phases for source text written in a dialect. On errors
// the unit is returned together with the error, filled up to the phase which
// failed.
func Analyze(reg *Registry, dialectName, source string, opts ...Option) (*Unit, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	unit := &Unit{Dialect: dialectName, Source: source}
	d, err := reg.Lookup(dialectName)
	if err != nil {
		return unit, err
	}
	g, err := d.Grammar()
	if err != nil {
		return unit, err
	}
	tok, err := d.Tokenizer(source)
	if err != nil {
		return unit, err
	}
	tok.SetErrorHandler(func(e error) {
		tracer().Errorf("scanner: %v", e)
		unit.ScanErrors = append(unit.ScanErrors, e)
	})
	var popts []earley.Option
	if cfg.traceChart {
		popts = append(popts, earley.TraceChart(true))
	}
	parser := earley.NewParser(g, popts...)
	accept, err := parser.Parse(tok)
	unit.Tokens = parser.Tokens()
	unit.Chart = parser.Chart()
	if err != nil {
		return unit, err
	}
	if !accept {
		pos := parser.Furthest()
		unit.Expected = parser.Expected(pos)
		return unit, fmt.Errorf("%w: %s", ErrNotRecognized, rejection(parser, pos, unit.Expected))
	}
	var fopts []forest.Option
	if cfg.policy != nil {
		fopts = append(fopts, forest.WithPolicy(cfg.policy))
	}
	if unit.ParseTree, err = forest.Extract(unit.Chart, fopts...); err != nil {
		return unit, err
	}
	registration, err := reg.decorators.Lookup(dialectName)
	if err != nil {
		return unit, err
	}
	if unit.AST, err = ast.Normalize(unit.ParseTree, registration.Kinds); err != nil {
		return unit, err
	}
	unit.Classes = classtree.New()
	deco := decorator.New(reg.decorators)
	err = deco.Decorate(unit.AST, unit.Classes, dialectName)
	unit.Outcomes = deco.Outcomes()
	unit.Fields = deco.Fields()
	unit.Resolutions = deco.Resolutions()
	unit.References = deco.FieldReferences()
	if err != nil {
		return unit, err
	}
	tracer().Infof("%s unit: %d classes, %d outcomes", dialectName, unit.Classes.Size(), len(unit.Outcomes))
	return unit, nil
}

func rejection(p *earley.Parser, pos uint64, expected []string) string {
	var b strings.Builder
	if tok := p.TokenAt(pos); tok != nil {
		fmt.Fprintf(&b, "unexpected %q in line %d", tok.Lexeme(), tok.Line())
	} else {
		b.WriteString("unexpected end of input")
	}
	if len(expected) > 0 {
		fmt.Fprintf(&b, ", expected one of %s", strings.Join(expected, " "))
	}
	return b.String()
}

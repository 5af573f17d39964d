/*
Package earley provides an Earley recognizer, producing the chart for the forest
extractor of package lr/forest.

Earley parsing is a general context-free parsing method: it accepts any CFG,
including ambiguous and left-recursive ones. The recognizer implemented here
follows the classic formulation with predict, scan and complete steps, and adds
the fix of Aycock and Horspool for nullable non-terminals:
when predicting a nullable non-terminal B for an item [A ➞ α • B β, j],
the item [A ➞ α B • β, j] is added immediately.

Scanning a token t at input position i adds the terminal item [t ➞ t •, i, i+1]
to row i+1, together with all items advanced over t. Terminal items make the
chart self-contained: every element of a completed item's RHS is matched by a
completed item of the same name.

Further Reading

"Practical Earley Parsing" by John Aycock and R. Nigel Horspool, 2002.

A tutorial by Loup Vaillant (http://loup-vaillant.fr/tutorials/earley-parsing/)
provides a very approachable introduction.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package earley

import (
	"github.com/matty-l/violet"
	"github.com/matty-l/violet/lr"
	"github.com/matty-l/violet/lr/chart"
	"github.com/matty-l/violet/lr/scanner"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'violet.lr'.
func tracer() tracing.Trace {
	return tracing.Select("violet.lr")
}

// Parser is an Earley recognizer for a grammar. Create one with NewParser.
// A parser is not intended to be re-used for different inputs.
type Parser struct {
	g          *lr.Grammar
	rules      map[*lr.Symbol][]*lr.Rule
	chart      *chart.Chart
	tokens     []violet.Token
	furthest   uint64
	traceChart bool
}

// Option configures a parser.
type Option func(p *Parser)

// TraceChart sets or clears tracing of every chart row after recognition.
// The default is taken from configuration key "trace-chart".
func TraceChart(b bool) Option {
	return func(p *Parser) {
		p.traceChart = b
	}
}

// NewParser creates an Earley recognizer for grammar g.
func NewParser(g *lr.Grammar, opts ...Option) *Parser {
	p := &Parser{
		g:          g,
		rules:      make(map[*lr.Symbol][]*lr.Rule),
		traceChart: gconf.GetBool("trace-chart"),
	}
	g.EachSymbol(func(A *lr.Symbol) {
		if !A.IsTerminal() {
			p.rules[A] = g.RulesFor(A)
		}
	})
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Chart returns the chart of the last call to Parse, or nil.
func (p *Parser) Chart() *chart.Chart {
	return p.chart
}

// TokenAt returns the input token at position pos, or nil.
func (p *Parser) TokenAt(pos uint64) violet.Token {
	if pos < uint64(len(p.tokens)) {
		return p.tokens[pos]
	}
	return nil
}

// Tokens returns the number of input tokens read by the last call to Parse.
func (p *Parser) Tokens() int {
	return len(p.tokens)
}

// Furthest returns the index of the last chart row which contains at least one
// item. For rejected input, the token at this position is the first one
// the recognizer could not make sense of.
func (p *Parser) Furthest() uint64 {
	return p.furthest
}

// Parse reads all tokens from scan and fills the chart. It returns true if the
// input is a sentence of the grammar. Rejected input is not an error; the chart
// remains available for inspection.
func (p *Parser) Parse(scan scanner.Tokenizer) (bool, error) {
	p.tokens = p.tokens[:0]
	for {
		tok := scan.NextToken()
		if tok == nil || tok.TokType() == scanner.EOF {
			break
		}
		p.tokens = append(p.tokens, tok)
	}
	n := uint64(len(p.tokens))
	tracer().Infof("Earley recognizer for %s: %d tokens", p.g.Name, n)
	p.chart = chart.New(n)
	p.chart.Add(0, chart.NewRuleItem(p.g.Rule(0), 0, 0, 0))
	for i := uint64(0); i <= n; i++ {
		if p.chart.Size(i) == 0 {
			break
		}
		p.furthest = i
		for j := 0; j < p.chart.Size(i); j++ { // row i grows while we iterate
			item := p.chart.Row(i, j)
			if item.Completed() {
				p.complete(item, i)
			} else if B := item.Next(); B.IsTerminal() {
				p.scan(item, B, i)
			} else {
				p.predict(item, B, i)
			}
		}
	}
	if p.traceChart {
		for i := uint64(0); i <= p.furthest; i++ {
			p.chart.Dump(i)
		}
		dumpCompleted(p.chart)
	}
	accept := p.accepted()
	if !accept {
		tracer().Infof("input rejected at token #%d", p.furthest)
	}
	return accept, nil
}

func (p *Parser) predict(item *chart.Item, B *lr.Symbol, i uint64) {
	for _, r := range p.rules[B] {
		p.chart.Add(i, chart.NewRuleItem(r, 0, i, i))
	}
	if p.g.IsNullable(B) {
		p.chart.Add(i, item.Advance(i))
	}
}

func (p *Parser) scan(item *chart.Item, t *lr.Symbol, i uint64) {
	if i >= uint64(len(p.tokens)) {
		return
	}
	tok := p.tokens[i]
	if tok.TokType() != t.TokenType() {
		return
	}
	p.chart.Add(i+1, chart.NewTerminalItem(tok, t.Name, i))
	p.chart.Add(i+1, item.Advance(i+1))
}

func (p *Parser) complete(item *chart.Item, i uint64) {
	if item.Rule == nil { // terminal items are handled by scan
		return
	}
	for j := 0; j < p.chart.Size(item.Start); j++ {
		waiting := p.chart.Row(item.Start, j)
		if B := waiting.Next(); B != nil && B == item.Rule.LHS {
			p.chart.Add(i, waiting.Advance(i))
		}
	}
}

func (p *Parser) accepted() bool {
	last := p.chart.Last()
	for _, item := range p.chart.Items(last) {
		if item.Completed() && item.Name == lr.StartSymbol && item.Start == 0 {
			return true
		}
	}
	return false
}

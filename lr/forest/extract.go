package forest

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/matty-l/violet/lr"
	"github.com/matty-l/violet/lr/chart"
	"github.com/matty-l/violet/lr/parsetree"
	"github.com/npillmayer/schuko/gconf"
)

// ErrNoDerivationFound is returned if the last row of a chart does not hold a
// completed item for the start symbol.
var ErrNoDerivationFound = errors.New("no derivation found")

// ErrDerivationStuck is returned if the production of an item cannot be
// resolved to completed items tiling its span. This happens for malformed charts
// only. Empty items of nullable rules may fill more than one place of a tree and
// never cause this error.
var ErrDerivationStuck = errors.New("derivation is stuck")

// ExtractionError is the error type for failed extractions.
type ExtractionError struct {
	Row  uint64      // chart row the extractor looked at
	Item *chart.Item // item being resolved, if any
	Err  error       // ErrNoDerivationFound or ErrDerivationStuck
}

func (e *ExtractionError) Error() string {
	if e.Item != nil {
		return fmt.Sprintf("%v: item %v in row %d", e.Err, e.Item, e.Row)
	}
	return fmt.Sprintf("%v: row %d", e.Err, e.Row)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPolicy sets the tie-break policy for ambiguous charts.
func WithPolicy(p Policy) Option {
	return func(e *Extractor) {
		if p != nil {
			e.policy = p
		}
	}
}

// Extractor reduces a chart to one derivation tree. Create one with NewExtractor.
// An extractor is good for one extraction.
type Extractor struct {
	chart   *chart.Chart
	policy  Policy
	index   *Index
	visited *treeset.Set // Seq of items
}

// NewExtractor creates an extractor for chart c.
func NewExtractor(c *chart.Chart, opts ...Option) *Extractor {
	e := &Extractor{
		chart:   c,
		policy:  LeftmostShortest,
		visited: treeset.NewWith(seqComparator),
	}
	if gconf.GetBool("extract-first-match") {
		e.policy = FirstMatch
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func seqComparator(a, b interface{}) int {
	s1, s2 := a.(uint64), b.(uint64)
	switch {
	case s1 < s2:
		return -1
	case s1 > s2:
		return 1
	}
	return 0
}

// Extract is a shortcut for creating an extractor and calling its Extract method.
func Extract(c *chart.Chart, opts ...Option) (*parsetree.Node, error) {
	return NewExtractor(c, opts...).Extract()
}

// Policy returns the tie-break policy in use.
func (e *Extractor) Policy() Policy {
	return e.policy
}

// Visited returns the serials of all items visited so far, in ascending order.
func (e *Extractor) Visited() []uint64 {
	seqs := make([]uint64, 0, e.visited.Size())
	for _, x := range e.visited.Values() {
		seqs = append(seqs, x.(uint64))
	}
	return seqs
}

type pending struct {
	item    *chart.Item
	builder *parsetree.Builder
	up      *pending // pending item of the parent node
}

// derives is true if item is p's item or the item of one of p's ancestors.
func (p *pending) derives(item *chart.Item) bool {
	for ; p != nil; p = p.up {
		if p.item == item {
			return true
		}
	}
	return false
}

// isEmpty is true for completed items deriving the empty string.
func isEmpty(item *chart.Item) bool {
	return item.Start == item.End
}

// Extract returns the frozen root of the derivation tree.
func (e *Extractor) Extract() (*parsetree.Node, error) {
	if e.chart == nil {
		return nil, &ExtractionError{Err: ErrNoDerivationFound}
	}
	if err := e.chart.Validate(); err != nil {
		return nil, err
	}
	root := e.startItem()
	if root == nil {
		err := &ExtractionError{Row: e.chart.Last(), Err: ErrNoDerivationFound}
		tracer().Errorf(err.Error())
		return nil, err
	}
	tracer().Infof("extracting derivation from %v with policy %s", root, e.policy.Name())
	e.index = NewIndex(e.chart)
	e.visited.Add(root.Seq)
	rootBuilder := parsetree.NewBuilder(root)
	expanded := map[uint64]*parsetree.Builder{root.Seq: rootBuilder}
	var shared []*parsetree.Builder
	worklist := []*pending{{item: root, builder: rootBuilder}}
	for len(worklist) > 0 {
		p := worklist[0]
		worklist = worklist[1:]
		children, err := e.resolve(p)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			b := p.builder.AddChild(child)
			if child.IsTerminal() {
				e.visited.Add(child.Seq)
				continue // terminal self-cycle guard
			}
			if e.visited.Contains(child.Seq) { // empty item placed again
				shared = append(shared, b)
				continue
			}
			e.visited.Add(child.Seq)
			expanded[child.Seq] = b
			worklist = append(worklist, &pending{item: child, builder: b, up: p})
		}
	}
	for _, b := range shared {
		e.copySubtree(b, expanded, map[uint64]bool{})
	}
	tree := rootBuilder.Freeze()
	tracer().Infof("extracted derivation, %d items visited", e.visited.Size())
	return tree, nil
}

// copySubtree gives dst the children of the builder which expanded dst's item.
// Items already on the current copy path are left as leaves.
func (e *Extractor) copySubtree(dst *parsetree.Builder, expanded map[uint64]*parsetree.Builder,
	onPath map[uint64]bool) {
	//
	item := dst.Item()
	src := expanded[item.Seq]
	if src == nil || onPath[item.Seq] {
		tracer().Debugf("not copying subtree of %v", item)
		return
	}
	onPath[item.Seq] = true
	defer delete(onPath, item.Seq)
	for _, child := range src.Children() {
		b := dst.AddChild(child.Item())
		if !child.Item().IsTerminal() {
			e.copySubtree(b, expanded, onPath)
		}
	}
}

func (e *Extractor) startItem() *chart.Item {
	var start *chart.Item
	last := e.chart.Last()
	for _, item := range e.chart.Items(last) {
		if item.Completed() && item.Name == lr.StartSymbol && item.Start == 0 {
			if start != nil {
				tracer().Errorf("more than one completed start item in row %d, using %v", last, start)
				break
			}
			start = item
		}
	}
	return start
}

// resolve finds completed items for the production of a pending item.
func (e *Extractor) resolve(p *pending) ([]*chart.Item, error) {
	item := p.item
	if item.IsTerminal() || len(item.Production) == 0 {
		return nil, nil
	}
	if !e.policy.Contiguous() {
		return e.resolveGreedy(item), nil
	}
	children := make([]*chart.Item, len(item.Production))
	if !e.split(p, children, 0, item.Start, map[uint64]bool{}) {
		err := &ExtractionError{Row: item.End, Item: item, Err: ErrDerivationStuck}
		tracer().Errorf(err.Error())
		return nil, err
	}
	return children, nil
}

// resolveGreedy picks, for every RHS element, the first unvisited candidate.
// Elements without a candidate are left out.
func (e *Extractor) resolveGreedy(item *chart.Item) []*chart.Item {
	var children []*chart.Item
	taken := make(map[uint64]bool)
	pos := item.Start
	for _, symbol := range item.Production {
		var found *chart.Item
		for _, c := range e.policy.Candidates(e.index, item, symbol, pos) {
			if !e.visited.Contains(c.Seq) && !taken[c.Seq] {
				found = c
				break
			}
		}
		if found == nil {
			tracer().Infof("no unvisited item for %s in %v", symbol, item)
			continue
		}
		taken[found.Seq] = true
		children = append(children, found)
		pos = found.End
	}
	return children
}

// split fills children[k:] with items tiling the span from pos to the end of
// the pending parent, backtracking over candidates. Non-empty items are used once
// per tree. An empty item may fill several places, unless it would have to derive
// one of its ancestors.
func (e *Extractor) split(p *pending, children []*chart.Item, k int, pos uint64,
	taken map[uint64]bool) bool {
	//
	parent := p.item
	if k == len(children) {
		return pos == parent.End
	}
	for _, c := range e.policy.Candidates(e.index, parent, parent.Production[k], pos) {
		if c == parent {
			continue
		}
		if isEmpty(c) {
			if !e.derivesEmpty(c, p) {
				continue
			}
		} else if taken[c.Seq] || e.visited.Contains(c.Seq) {
			continue
		}
		children[k] = c
		if isEmpty(c) {
			if e.split(p, children, k+1, c.End, taken) {
				return true
			}
			continue
		}
		taken[c.Seq] = true
		if e.split(p, children, k+1, c.End, taken) {
			return true
		}
		delete(taken, c.Seq)
	}
	children[k] = nil
	return false
}

// derivesEmpty is true if the empty item c, placed below p, can be resolved
// without using any item on the path from c up to the root.
func (e *Extractor) derivesEmpty(c *chart.Item, p *pending) bool {
	if p.derives(c) {
		return false
	}
	below := &pending{item: c, up: p}
	for _, symbol := range c.Production {
		found := false
		for _, cc := range e.policy.Candidates(e.index, c, symbol, c.Start) {
			if isEmpty(cc) && !cc.IsTerminal() && e.derivesEmpty(cc, below) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

package forest

import (
	"sort"

	"github.com/matty-l/violet/lr/chart"
)

// Index provides access to the completed items of a chart.
type Index struct {
	completed []*chart.Item
	byName    map[string][]*chart.Item
	byStart   map[string]map[uint64][]*chart.Item
}

// NewIndex creates an index over the completed items of chart c.
func NewIndex(c *chart.Chart) *Index {
	ix := &Index{
		completed: c.Completed(),
		byName:    make(map[string][]*chart.Item),
		byStart:   make(map[string]map[uint64][]*chart.Item),
	}
	for _, item := range ix.completed {
		ix.byName[item.Name] = append(ix.byName[item.Name], item)
		m := ix.byStart[item.Name]
		if m == nil {
			m = make(map[uint64][]*chart.Item)
			ix.byStart[item.Name] = m
		}
		m[item.Start] = append(m[item.Start], item)
	}
	return ix
}

// Completed returns all completed items in encounter order.
func (ix *Index) Completed() []*chart.Item {
	return ix.completed
}

// Named returns the completed items for symbol name, in encounter order.
func (ix *Index) Named(name string) []*chart.Item {
	return ix.byName[name]
}

// StartingAt returns the completed items for symbol name starting at pos,
// in encounter order.
func (ix *Index) StartingAt(name string, pos uint64) []*chart.Item {
	return ix.byStart[name][pos]
}

// Policy decides which completed items may resolve an element of a production.
type Policy interface {
	Name() string
	// Candidates returns the ordered candidates for RHS element symbol of parent,
	// with the left sibling ending at pos.
	Candidates(ix *Index, parent *chart.Item, symbol string, pos uint64) []*chart.Item
	// Contiguous is true if children must tile the span of their parent.
	Contiguous() bool
}

// --- First match -----------------------------------------------------------

type firstMatch struct{}

// FirstMatch is the policy picking the first unvisited item of matching name in
// chart encounter order.
var FirstMatch Policy = firstMatch{}

func (firstMatch) Name() string { return "first-match" }

func (firstMatch) Contiguous() bool { return false }

func (firstMatch) Candidates(ix *Index, parent *chart.Item, symbol string, pos uint64) []*chart.Item {
	return ix.Named(symbol)
}

// --- Leftmost shortest -----------------------------------------------------

type leftmostShortest struct{}

// LeftmostShortest is the policy resolving RHS elements left to right with
// span-consistent children, shortest span first.
var LeftmostShortest Policy = leftmostShortest{}

func (leftmostShortest) Name() string { return "leftmost-shortest" }

func (leftmostShortest) Contiguous() bool { return true }

func (leftmostShortest) Candidates(ix *Index, parent *chart.Item, symbol string, pos uint64) []*chart.Item {
	var candidates []*chart.Item
	for _, item := range ix.StartingAt(symbol, pos) {
		if item.End <= parent.End {
			candidates = append(candidates, item)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Span().Len() != b.Span().Len() {
			return a.Span().Len() < b.Span().Len()
		}
		return a.Serial() < b.Serial()
	})
	return candidates
}

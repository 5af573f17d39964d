/*
Package chart holds the recognition chart of an Earley-style recognizer.

A chart for an input of n tokens has rows 0…n. Every row holds parser items
("states") whose end position equals the row index. Items are kept in
encounter order: rows in ascending order, items within a row in insertion order.
Each item receives a chart-wide serial number when it is added, which clients may
use as a compact identity.

Items of the form

    [t ➞ t •, i, i+1]

are terminal items: the recognizer places one for every scanned token.
Their production consists of a single element naming the item itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chart

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/matty-l/violet"
	"github.com/matty-l/violet/lr"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'violet.lr'.
func tracer() tracing.Trace {
	return tracing.Select("violet.lr")
}

// ErrMalformedChart is returned by Validate for charts violating the row contract.
var ErrMalformedChart = errors.New("malformed chart")

// --- Items -----------------------------------------------------------------

// Item is a parser item, often called "state" in the Earley literature.
// Items are immutable once added to a chart.
type Item struct {
	Name       string       // matched symbol
	Production []string     // RHS symbol names
	Rule       *lr.Rule     // nil for terminal items
	Dot        int          // number of RHS symbols matched
	Start      uint64       // origin row
	End        uint64       // row the item is stored in
	Token      violet.Token // scanned token of terminal items
	Seq        uint64       // chart-wide serial, assigned by Add
}

// NewRuleItem creates an item [A ➞ α • β, origin, end] for a grammar rule,
// with |α| = dot.
func NewRuleItem(rule *lr.Rule, dot int, origin, end uint64) *Item {
	return &Item{
		Name:       rule.LHS.Name,
		Production: rule.Names(),
		Rule:       rule,
		Dot:        dot,
		Start:      origin,
		End:        end,
	}
}

// NewTerminalItem creates a completed terminal item [t ➞ t •, pos, pos+1].
func NewTerminalItem(tok violet.Token, name string, pos uint64) *Item {
	return &Item{
		Name:       name,
		Production: []string{name},
		Dot:        1,
		Start:      pos,
		End:        pos + 1,
		Token:      tok,
	}
}

// Completed is true if the item has matched its complete RHS.
func (item *Item) Completed() bool {
	return item.Dot >= len(item.Production)
}

// Span returns the input range covered by the item.
func (item *Item) Span() violet.Span {
	return violet.Span{item.Start, item.End}
}

// IsTerminal is true for self-referential items: their production is a single
// element equal to the item's name.
func (item *Item) IsTerminal() bool {
	return len(item.Production) == 1 && item.Production[0] == item.Name
}

// Next returns the grammar symbol after the dot, or nil.
func (item *Item) Next() *lr.Symbol {
	if item.Rule == nil {
		return nil
	}
	return item.Rule.At(item.Dot)
}

// Advance returns a copy of the item with the dot moved one symbol to the right,
// ending in row end.
func (item *Item) Advance(end uint64) *Item {
	adv := *item
	adv.Dot++
	adv.End = end
	adv.Seq = 0
	return &adv
}

// Serial returns the rule serial of the item, or -1 for terminal items.
func (item *Item) Serial() int {
	if item.Rule == nil {
		return -1
	}
	return item.Rule.Serial
}

func (item *Item) key() string {
	if item.Rule == nil {
		return fmt.Sprintf("t:%s:%d", item.Name, item.Start)
	}
	return fmt.Sprintf("%d:%d:%d", item.Rule.Serial, item.Dot, item.Start)
}

func (item *Item) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("[%s ➞", item.Name))
	for i, s := range item.Production {
		if i == item.Dot {
			b.WriteString(" •")
		}
		b.WriteString(" " + s)
	}
	if item.Completed() {
		b.WriteString(" •")
	}
	b.WriteString(fmt.Sprintf(", %d…%d]", item.Start, item.End))
	return b.String()
}

// --- Chart -----------------------------------------------------------------

type row struct {
	items *arraylist.List
	keys  map[string]*Item
}

// Chart is a sequence of rows of parser items. Create one with New.
type Chart struct {
	rows []*row
	seq  uint64
}

// New creates an empty chart for an input of n tokens, i.e. with n+1 rows.
func New(n uint64) *Chart {
	c := &Chart{rows: make([]*row, n+1)}
	for i := range c.rows {
		c.rows[i] = &row{
			items: arraylist.New(),
			keys:  make(map[string]*Item),
		}
	}
	return c
}

// Len returns the number of rows.
func (c *Chart) Len() int {
	return len(c.rows)
}

// Last returns the index of the final row.
func (c *Chart) Last() uint64 {
	return uint64(len(c.rows) - 1)
}

// Add appends an item to row i, unless an equal item is already present.
// It returns the item stored in the chart and true if it has been newly added.
func (c *Chart) Add(i uint64, item *Item) (*Item, bool) {
	if i >= uint64(len(c.rows)) {
		tracer().Errorf("chart has no row %d", i)
		return nil, false
	}
	r := c.rows[i]
	k := item.key()
	if existing, ok := r.keys[k]; ok {
		return existing, false
	}
	c.seq++
	item.Seq = c.seq
	r.keys[k] = item
	r.items.Add(item)
	return item, true
}

// Size returns the number of items in row i.
func (c *Chart) Size(i uint64) int {
	if i >= uint64(len(c.rows)) {
		return 0
	}
	return c.rows[i].items.Size()
}

// Row returns the item at index j of row i, or nil.
func (c *Chart) Row(i uint64, j int) *Item {
	if i >= uint64(len(c.rows)) {
		return nil
	}
	x, ok := c.rows[i].items.Get(j)
	if !ok {
		return nil
	}
	return x.(*Item)
}

// Items returns the items of row i, in insertion order.
func (c *Chart) Items(i uint64) []*Item {
	if i >= uint64(len(c.rows)) {
		return nil
	}
	items := make([]*Item, 0, c.rows[i].items.Size())
	it := c.rows[i].items.Iterator()
	for it.Next() {
		items = append(items, it.Value().(*Item))
	}
	return items
}

// Completed returns all completed items of the chart, in encounter order.
func (c *Chart) Completed() []*Item {
	var completed []*Item
	for i := range c.rows {
		for _, item := range c.Items(uint64(i)) {
			if item.Completed() {
				completed = append(completed, item)
			}
		}
	}
	return completed
}

// Validate checks the row contract: every item is stored in the row its span ends
// in, starts no later than it ends, and row 0 holds only empty-span items.
func (c *Chart) Validate() error {
	for i := range c.rows {
		for _, item := range c.Items(uint64(i)) {
			if item.End != uint64(i) || item.Start > item.End {
				err := fmt.Errorf("%w: item %v stored in row %d", ErrMalformedChart, item, i)
				tracer().Errorf(err.Error())
				return err
			}
		}
	}
	return nil
}

// Dump traces row i at debug level.
func (c *Chart) Dump(i uint64) {
	tracer().Debugf("--- Row %04d ------------------------------------", i)
	for n, item := range c.Items(i) {
		tracer().Debugf("[%2d] %s", n+1, item)
	}
}

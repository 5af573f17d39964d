package earley

import (
	"bytes"

	"github.com/matty-l/violet/lr/chart"
)

// Expected returns the names of the terminals the recognizer would have accepted
// at input position pos. Clients use it for error messages about rejected input.
func (p *Parser) Expected(pos uint64) []string {
	if p.chart == nil || pos >= uint64(p.chart.Len()) {
		return nil
	}
	var names []string
	seen := make(map[string]bool)
	for _, item := range p.chart.Items(pos) {
		if B := item.Next(); B != nil && B.IsTerminal() && !seen[B.Name] {
			seen[B.Name] = true
			names = append(names, B.Name)
		}
	}
	return names
}

func itemsString(items []*chart.Item) string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, item := range items {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteString(" }")
	return b.String()
}

// dumpCompleted traces the completed items of the chart.
func dumpCompleted(c *chart.Chart) {
	tracer().Debugf("completed = %s", itemsString(c.Completed()))
}

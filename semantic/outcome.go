package semantic

import "fmt"

// Outcome is a diagnostic message of a semantic pass.
type Outcome struct {
	Line    int
	Message string
}

func (o Outcome) String() string {
	return fmt.Sprintf("line %d: %s", o.Line, o.Message)
}

// Outcomes is a buffer of outcomes, kept in order of creation.
type Outcomes struct {
	list []Outcome
}

// Add appends an outcome.
func (o *Outcomes) Add(line int, msg string) {
	tracer().Infof("line %d: %s", line, msg)
	o.list = append(o.list, Outcome{Line: line, Message: msg})
}

// Addf appends an outcome with a formatted message.
func (o *Outcomes) Addf(line int, format string, args ...interface{}) {
	o.Add(line, fmt.Sprintf(format, args...))
}

// Len returns the number of buffered outcomes.
func (o *Outcomes) Len() int {
	return len(o.list)
}

// Drain returns the buffered outcomes and clears the buffer.
func (o *Outcomes) Drain() []Outcome {
	drained := make([]Outcome, len(o.list))
	copy(drained, o.list)
	o.list = o.list[:0]
	return drained
}

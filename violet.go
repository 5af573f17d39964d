package violet

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to dialects to define them.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for an identifier:
//
//    TokType = Ident       // identifier for this kind of tokens (dialect specific)
//    Lexeme  = "getX"      // lexeme how it appeared in the input stream
//    Value   = nil         // scanners may attach a converted value
//    Span    = 67…71       // occured from position 67 in the input stream
//    Line    = 3           // source line, used for diagnostics
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
	Line() int
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, a chart item tracks which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the empty span (0…0).
func (s Span) IsNull() bool {
	return s == Span{}
}

// Contains is true if other lies within s.
func (s Span) Contains(other Span) bool {
	return other[0] >= s[0] && other[1] <= s[1]
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

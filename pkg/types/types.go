// Package types defines the core data structures for the unilook character
// lookup system. These types represent the facts the source-table providers
// and the classification provider report about a single Unicode code point.
//
// All types in this package are immutable once constructed: providers build
// them exactly once per process and every later lookup returns the same
// values.
package types

import "fmt"

// Alias is a secondary name for a character together with its category label
// from the name-alias table (e.g. "control", "abbreviation", "correction").
type Alias struct {
	Name  string `json:"name"`  // Alias text, e.g. "BACKSPACE"
	Label string `json:"label"` // Alias category, e.g. "control"
}

// InputSequence is one ordered way to produce a character through a
// compose-key input method. Each element is either a printable punctuation
// character or a symbolic key token such as "<Multi_key>".
type InputSequence []string

// Block is a contiguous named range of code points. A character belongs to at
// most one block; unassigned scalar values outside every defined block have
// none.
type Block struct {
	Lo   rune   `json:"lo"`   // First code point of the block
	Hi   rune   `json:"hi"`   // Last code point of the block (inclusive)
	Name string `json:"name"` // Block name, e.g. "Latin Extended-A"
}

// Contains reports whether r falls inside the block.
func (b Block) Contains(r rune) bool {
	return b.Lo <= r && r <= b.Hi
}

// String renders the block as "U+XXXX..U+XXXX Name".
func (b Block) String() string {
	return fmt.Sprintf("U+%04X..U+%04X %s", b.Lo, b.Hi, b.Name)
}

// PropertyValue is a short/long name pair for an enumerated property value,
// such as a script ("Latn", "Latin").
type PropertyValue struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

// String renders the pair as "Short (Long)".
func (p PropertyValue) String() string {
	return fmt.Sprintf("%s (%s)", p.Short, p.Long)
}

// Rational is an exact numeric value in lowest terms. The denominator is
// always positive; the sign lives on the numerator.
type Rational struct {
	Num int64 `json:"num"`
	Den int64 `json:"den"`
}

// Float64 converts the rational back to the nearest float64.
func (q Rational) Float64() float64 {
	return float64(q.Num) / float64(q.Den)
}

// String renders "Num/Den", or just "Num" for integers.
func (q Rational) String() string {
	if q.Den == 1 {
		return fmt.Sprintf("%d", q.Num)
	}
	return fmt.Sprintf("%d/%d", q.Num, q.Den)
}

package schema

import "github.com/lindqvist-dev/svalid/value"

// Literal matches only values deeply equal to a concrete Value, using
// value.Equal for the comparison.
type Literal struct {
	named
	val value.Value
}

// NewLiteral constructs a fully initialized Literal node.
func NewLiteral(val value.Value) Literal {
	return Literal{val: val}
}

func (Literal) schemaType() {}

// Value returns the literal value to match against.
func (l Literal) Value() value.Value { return l.val }

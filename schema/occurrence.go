package schema

// OccurrenceNode is the schema node produced by a postfix `?`, `+`, or
// `*` qualifier applied to an arbitrary base type.
// It is distinct from List's own occurrence field: List comes from the
// `[T]`/`list T` grammar forms, while OccurrenceNode comes from
// qualifying any expression, including a bare identifier or map.
type OccurrenceNode struct {
	named
	base     SchemaType
	modifier Occurrence
}

// NewOccurrence constructs a fully initialized Occurrence node. modifier
// must be Optional, OneOrMore, or ZeroOrMore; Exactly has no postfix
// spelling and NewOccurrence panics if given it.
func NewOccurrence(base SchemaType, modifier Occurrence) OccurrenceNode {
	if modifier == Exactly {
		panic("schema.NewOccurrence: Exactly is not a valid postfix modifier")
	}
	return OccurrenceNode{base: base, modifier: modifier}
}

func (OccurrenceNode) schemaType() {}

// Base returns the qualified base type.
func (o OccurrenceNode) Base() SchemaType { return o.base }

// Modifier returns the postfix qualifier.
func (o OccurrenceNode) Modifier() Occurrence { return o.modifier }

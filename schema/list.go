package schema

// List matches a value.List whose items all match Element and whose
// length satisfies Occurrence.
type List struct {
	named
	element    SchemaType
	occurrence Occurrence
}

// NewList constructs a fully initialized List node with the Exactly
// occurrence: the bare `[T]`/`list T` grammar forms carry no length
// qualifier beyond being a list.
func NewList(element SchemaType) List {
	return List{element: element, occurrence: Exactly}
}

// NewListWithOccurrence constructs a List node with an explicit
// occurrence bound, used when a postfix `+`/`*`/`?` qualifier is applied
// directly to a `[T]` expression.
func NewListWithOccurrence(element SchemaType, occurrence Occurrence) List {
	return List{element: element, occurrence: occurrence}
}

func (List) schemaType() {}

// Element returns the element type every item must match.
func (l List) Element() SchemaType { return l.element }

// OccurrenceBound returns the length constraint on the list.
func (l List) OccurrenceBound() Occurrence { return l.occurrence }

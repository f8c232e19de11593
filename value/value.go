// Package value defines the opaque document-value model the validator
// operates on: a discriminable Kind plus narrow capability
// interfaces for lists, maps, and tagged elements. Adapters translate a
// concrete document format (JSON, YAML, native Go data) into trees of
// these values; the validator never imports an adapter.
package value

// Kind discriminates the shape of a Value.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Int
	Float
	Decimal
	String
	List
	Map
	Element
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Decimal:
		return "Decimal"
	case String:
		return "String"
	case List:
		return "List"
	case Map:
		return "Map"
	case Element:
		return "Element"
	default:
		return "Unknown"
	}
}

// Value is the minimal capability every document value provides: its own
// kind. Narrower interfaces ([Lister], [Mapper], [Elementer]) add the
// per-shape operations the validator needs; a caller type-asserts against
// them after checking Kind().
type Value interface {
	Kind() Kind
}

// Lister is implemented by List-kind values: an ordered sequence.
type Lister interface {
	Value
	Len() int
	Item(i int) Value
}

// Mapper is implemented by Map-kind values: a string-keyed collection
// whose iteration order carries no meaning.
type Mapper interface {
	Value
	Len() int
	Keys() []string
	Get(key string) (Value, bool)
}

// Elementer is implemented by Element-kind values: a tag name, named
// attributes (same shape as a Mapper), and ordered positional content.
type Elementer interface {
	Value
	Tag() string
	AttrKeys() []string
	Attr(name string) (Value, bool)
	ContentLen() int
	ContentItem(i int) Value
}

package schema

// SchemaType is the tagged variant every schema node implements: one of
// Primitive, Literal, List, Map, Element, Union, Occurrence, or
// Reference. The unexported schemaType method seals the
// interface so no type outside this package can satisfy it.
type SchemaType interface {
	// Name returns the declared name this node was bound to via a
	// top-level `type NAME = expr` binding, or "" if the node is
	// anonymous (e.g. nested inside another expression).
	Name() string

	schemaType()
}

// named is embedded by every variant to provide the optional declared
// name a schema node carries.
type named struct {
	name string
}

func (n named) Name() string { return n.name }

// WithName returns a copy of t carrying name as its declared name. Used
// by the parser when installing a top-level `type NAME = expr` binding;
// t itself is left unmodified since every variant is a plain value type.
func WithName(t SchemaType, name string) SchemaType {
	switch v := t.(type) {
	case Primitive:
		v.named.name = name
		return v
	case Literal:
		v.named.name = name
		return v
	case List:
		v.named.name = name
		return v
	case Map:
		v.named.name = name
		return v
	case Element:
		v.named.name = name
		return v
	case Union:
		v.named.name = name
		return v
	case OccurrenceNode:
		v.named.name = name
		return v
	case Reference:
		v.named.name = name
		return v
	default:
		return t
	}
}

// Field is a named member of a Map's field list or an Element's
// attribute list: the same shape serves both.
type Field struct {
	Name     string
	Type     SchemaType
	Required bool
}

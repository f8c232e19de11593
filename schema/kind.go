package schema

// PrimitiveKind enumerates the primitive value kinds a Primitive schema
// node may expect, plus the two compatibility groups Number and Any that
// only schema expressions can name (no value ever reports Number or Any
// as its own kind).
type PrimitiveKind uint8

const (
	KindNull PrimitiveKind = iota
	KindBool
	KindInt
	KindFloat
	KindDecimal
	KindString
	// KindNumber matches value.Int, value.Float, and value.Decimal.
	KindNumber
	// KindAny matches every value kind.
	KindAny
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindDecimal:
		return "Decimal"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// Occurrence constrains how many items a List may hold, or — when
// carried by an Occurrence node — how many times a base type may repeat.
type Occurrence uint8

const (
	// Exactly imposes no length requirement beyond being a list; used by
	// the `[T]`/`list T` grammar forms, which carry no postfix qualifier.
	Exactly Occurrence = iota
	// Optional (`?`) accepts a length of 0 or 1.
	Optional
	// OneOrMore (`+`) requires a length of at least 1.
	OneOrMore
	// ZeroOrMore (`*`) accepts any length, including 0.
	ZeroOrMore
)

func (o Occurrence) String() string {
	switch o {
	case Exactly:
		return "Exactly"
	case Optional:
		return "?"
	case OneOrMore:
		return "+"
	case ZeroOrMore:
		return "*"
	default:
		return "Unknown"
	}
}

// Accepts reports whether a list of length n satisfies the occurrence
// bound.
func (o Occurrence) Accepts(n int) bool {
	switch o {
	case Exactly:
		return true
	case Optional:
		return n == 0 || n == 1
	case OneOrMore:
		return n >= 1
	case ZeroOrMore:
		return true
	default:
		return false
	}
}

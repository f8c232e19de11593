package schema

// Map matches a value.Map by declared field. Fields are checked in
// declaration order; Open, when false, makes any map key not present in
// Fields an UNEXPECTED_FIELD.
type Map struct {
	named
	fields []Field
	open   bool
}

// NewMap constructs a fully initialized Map node; the default Open is
// true, use [Map.Closed] to build a closed variant.
func NewMap(fields []Field) Map {
	return Map{fields: fields, open: true}
}

// Closed returns a copy of m with Open set to false.
func (m Map) Closed() Map {
	m.open = false
	return m
}

func (Map) schemaType() {}

// Fields returns the declared fields, in declaration order. The returned
// slice is the node's own backing slice; callers must not mutate it.
func (m Map) Fields() []Field { return m.fields }

// Open reports whether keys outside the declared field set are
// permitted.
func (m Map) Open() bool { return m.open }

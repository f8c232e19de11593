package schema

// Primitive matches values of a single kind, or one of the compatibility
// groups (Number, Any) a PrimitiveKind may also name.
type Primitive struct {
	named
	kind PrimitiveKind
}

// NewPrimitive constructs a fully initialized Primitive node.
func NewPrimitive(kind PrimitiveKind) Primitive {
	return Primitive{kind: kind}
}

func (Primitive) schemaType() {}

// PrimitiveKind returns the expected kind or compatibility group.
func (p Primitive) PrimitiveKind() PrimitiveKind { return p.kind }

func (p Primitive) String() string { return p.kind.String() }

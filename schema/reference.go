package schema

// Reference names a schema binding to be looked up in a [Registry] at
// traversal time. Resolution never recurses: Resolve
// returns the immediately targeted SchemaType, which may itself be
// another Reference; the validate package's cycle guard is responsible
// for safely walking a chain.
type Reference struct {
	named
	target string
}

// NewReference constructs a fully initialized Reference node.
func NewReference(target string) Reference {
	return Reference{target: target}
}

func (Reference) schemaType() {}

// Target returns the referenced name.
func (r Reference) Target() string { return r.target }

// Resolve looks up the target name in reg, returning the bound
// SchemaType and true, or the zero value and false if unresolved.
func (r Reference) Resolve(reg *Registry) (SchemaType, bool) {
	return reg.Get(r.target)
}

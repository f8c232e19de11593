package schema

// Registry is the validator's flat, non-scoped name→SchemaType map:
// loading schema text installs each top-level `type NAME = expr`
// binding here under NAME.
//
// Insertion is idempotent: reinserting under a name already present
// silently replaces the prior binding. There is no cross-file
// composition to keep stable, so replace-on-reinsert is simply the
// correct semantics here rather than a hazard to guard against.
//
// Registry is not safe for concurrent use: each validator instance,
// and therefore each Registry, is owned by a single thread.
type Registry struct {
	bindings map[string]SchemaType
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[string]SchemaType)}
}

// Set installs t under name, replacing any prior binding.
func (r *Registry) Set(name string, t SchemaType) {
	r.bindings[name] = t
}

// Get looks up name, returning the bound SchemaType and true, or the
// zero value and false.
func (r *Registry) Get(name string) (SchemaType, bool) {
	t, ok := r.bindings[name]
	return t, ok
}

// Contains reports whether name has a binding.
func (r *Registry) Contains(name string) bool {
	_, ok := r.bindings[name]
	return ok
}

// Len returns the number of bindings.
func (r *Registry) Len() int {
	return len(r.bindings)
}

// Names returns the bound names. Order is unspecified (map iteration).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.bindings))
	for name := range r.bindings {
		names = append(names, name)
	}
	return names
}

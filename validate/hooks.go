package validate

import (
	"github.com/lindqvist-dev/svalid/diag"
	"github.com/lindqvist-dev/svalid/schema"
	"github.com/lindqvist-dev/svalid/value"
)

// CustomValidatorFunc is a caller-supplied hook invoked after the
// built-in per-shape routine finishes handling a value-with-schema pair.
// A hook may only add errors or warnings to the Result it returns; the
// dispatcher merges that result on top of the built-in one, so a hook
// can never suppress a diagnostic the built-in routine already raised.
type CustomValidatorFunc func(val value.Value, st schema.SchemaType, ctx *Context) diag.Result

// CustomValidator is a named, self-describing hook. Scope restricts
// which schema nodes it runs against: when non-empty, the hook only
// fires for schema nodes whose declared Name() matches Scope; when
// empty, it fires for every node the dispatcher visits.
type CustomValidator struct {
	Name        string
	Description string
	Scope       string
	Fn          CustomValidatorFunc
}

// HookRegistry holds a Validator's registered custom validators, run in
// registration order after a value's built-in validation completes.
//
// Registration is idempotent by name: registering under a name already
// present replaces the prior hook, mirroring schema.Registry's
// replace-on-reinsert semantics rather than a duplicate-rejecting
// design.
type HookRegistry struct {
	order  []string
	byName map[string]CustomValidator
}

// NewHookRegistry creates an empty HookRegistry.
func NewHookRegistry() *HookRegistry {
	return &HookRegistry{byName: make(map[string]CustomValidator)}
}

// Register installs cv, replacing any prior hook under the same name.
func (r *HookRegistry) Register(cv CustomValidator) {
	if _, exists := r.byName[cv.Name]; !exists {
		r.order = append(r.order, cv.Name)
	}
	r.byName[cv.Name] = cv
}

// Unregister removes the hook registered under name, if any.
func (r *HookRegistry) Unregister(name string) {
	if _, exists := r.byName[name]; !exists {
		return
	}
	delete(r.byName, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// List returns the registered hooks in registration order.
func (r *HookRegistry) List() []CustomValidator {
	out := make([]CustomValidator, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// applicable returns the registered hooks whose scope matches st, in
// registration order.
func (r *HookRegistry) applicable(st schema.SchemaType) []CustomValidator {
	var out []CustomValidator
	for _, name := range r.order {
		cv := r.byName[name]
		if cv.Scope == "" || cv.Scope == st.Name() {
			out = append(out, cv)
		}
	}
	return out
}

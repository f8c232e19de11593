// Package validate implements the recursive structural validator:
// the dispatcher that walks a value tree against a schema type graph,
// the per-shape algorithms for each schema.SchemaType variant, the
// reference cycle guard and depth/timeout bookkeeping, and the registry
// of caller-supplied custom validator hooks that run after a value's
// built-in validation completes.
//
// A Validator owns a schema.Registry and a HookRegistry; it is not safe
// for concurrent use — validation is single-threaded cooperative, with
// no suspension points between the start and end of a single
// ValidateItem call. Independent Validator instances never interfere
// with each other.
package validate

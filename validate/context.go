package validate

import (
	"time"

	"github.com/lindqvist-dev/svalid/path"
)

// Context carries the per-call-stack state a single ValidateItem descent
// threads through its recursion: depth bookkeeping against the
// configured max depth, the Reference cycle guard, and a best-effort
// wall-clock deadline polled only at dispatcher entry.
//
// A Context must never be shared across concurrent descents, and must
// not leak its visited set beyond the call that created it — the cycle
// guard is per-call-stack, not per-Validator.
type Context struct {
	depth       int
	maxDepth    int
	visited     map[string]struct{}
	deadline    time.Time
	hasDeadline bool
	currentPath path.Path
}

// NewContext creates a Context bounding recursion to maxDepth and, when
// timeout > 0, carrying a deadline timeout from now. A zero timeout
// disables the deadline, matching the façade's timeout_ms=0 semantics.
func NewContext(maxDepth int, timeout time.Duration) *Context {
	ctx := &Context{maxDepth: maxDepth, visited: make(map[string]struct{})}
	if timeout > 0 {
		ctx.deadline = time.Now().Add(timeout)
		ctx.hasDeadline = true
	}
	return ctx
}

// Path returns the path of the value currently being validated, as seen
// by a custom validator hook invoked for it.
func (c *Context) Path() path.Path {
	return c.currentPath
}

func (c *Context) expired() bool {
	return c.hasDeadline && time.Now().After(c.deadline)
}

// enterReference records name as visited on the current descent,
// reporting false if it was already present (a cycle).
func (c *Context) enterReference(name string) bool {
	if _, seen := c.visited[name]; seen {
		return false
	}
	c.visited[name] = struct{}{}
	return true
}

func (c *Context) exitReference(name string) {
	delete(c.visited, name)
}

// descendIntoValue resets the reference cycle guard for a recursive
// descent into a new value (a list item, a map field's value, or an
// element attribute/content value), returning a restore func that puts
// the caller's visited set back in place once the descent returns.
//
// A reference visited while validating the parent value doesn't
// constrain a reference revisited one value level down: consuming a
// value level makes the recursion productive even when the same
// reference name is revisited, so only a reference re-entered without
// intervening value consumption (e.g. A -> B -> A with no list/map/
// element step between) should trip the cycle guard.
func (c *Context) descendIntoValue() func() {
	prev := c.visited
	c.visited = make(map[string]struct{})
	return func() { c.visited = prev }
}

package diag

import "fmt"

// Collector accumulates issues produced during a single validate_item
// descent and produces an immutable [Result] snapshot.
//
// Unlike a concurrent collector, Collector is not safe for use across
// goroutines: the validation model is single-threaded cooperative, and a
// validator handle (which owns one Collector per top-level validate call)
// must not be shared mutably across threads. This intentionally diverges
// from a thread-safe design; two independent validator instances never
// interfere because each owns its own Collector.
//
// Collect/CollectAll preserve insertion order; [Collector.Result] does not
// re-sort. Errors and warnings appear in the order produced by the
// depth-first left-to-right traversal that drove collection.
type Collector struct {
	issues       []Issue
	errorCount   int
	warningCount int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Collect adds an issue, in order.
//
// Panics if the issue is a zero value or otherwise invalid; use [NewIssue]
// and [IssueBuilder] to construct valid issues. This catches programmer
// errors where issues are built via direct struct literals.
func (c *Collector) Collect(issue Issue) {
	c.validateIssue(issue)
	c.issues = append(c.issues, issue)
	switch issue.Severity() {
	case SeverityError:
		c.errorCount++
	case SeverityWarning:
		c.warningCount++
	}
}

// CollectAll adds multiple issues, preserving their relative order.
func (c *Collector) CollectAll(issues []Issue) {
	for _, issue := range issues {
		c.Collect(issue)
	}
}

// Merge incorporates all issues from a Result.
//
// The source Result's issues are appended, preserving order; the source
// itself is unaffected (Result is immutable). Splicing a node into two
// lists isn't an aliasing hazard here because issues are value types, so
// no explicit clear step is needed.
func (c *Collector) Merge(res Result) {
	c.CollectAll(res.issues)
}

func (c *Collector) validateIssue(issue Issue) {
	if issue.IsZero() {
		panic("diag.Collector.Collect: zero-value Issue")
	}
	if !issue.IsValid() {
		panic(fmt.Sprintf("diag.Collector.Collect: invalid Issue (code=%s, message=%q)", issue.Code(), issue.Message()))
	}
}

// HasErrors reports whether any error-severity issue has been collected.
func (c *Collector) HasErrors() bool {
	return c.errorCount > 0
}

// Len returns the number of collected issues (errors plus warnings).
func (c *Collector) Len() int {
	return len(c.issues)
}

// Result produces an immutable snapshot. The returned Result is
// independent of the Collector; subsequent Collect calls do not affect it.
func (c *Collector) Result() Result {
	issues := make([]Issue, len(c.issues))
	copy(issues, c.issues)
	return newResult(issues, c.errorCount, c.warningCount)
}

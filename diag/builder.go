package diag

import (
	"fmt"

	"github.com/lindqvist-dev/svalid/path"
)

// IssueBuilder provides fluent construction of [Issue] values.
//
// IssueBuilder is the only valid construction path for Issue values in
// production code. Direct struct literal construction bypasses validity
// checks and will cause panics when the issue is collected.
//
// Example:
//
//	issue := diag.NewIssue(diag.SeverityError, diag.TypeMismatch, "expected int, got string").
//	    WithPath(p).
//	    WithExpectedGot("int", "string").
//	    Build()
type IssueBuilder struct {
	issue Issue
}

// NewIssue starts building an issue with required fields.
//
// Panics if code is zero or message is empty — these catch programmer
// errors at construction time rather than deferring failure to
// [Collector.Collect].
func NewIssue(severity Severity, c Code, message string) *IssueBuilder {
	if c.IsZero() {
		panic("diag.NewIssue: zero code")
	}
	if message == "" {
		panic("diag.NewIssue: empty message")
	}
	return &IssueBuilder{
		issue: Issue{severity: severity, code: c, message: message},
	}
}

// WithPath sets the path snapshot.
func (b *IssueBuilder) WithPath(p path.Path) *IssueBuilder {
	b.issue.path = p
	return b
}

// WithSuggestions sets the "did you mean" candidate list, overwriting any
// previous value. Callers are expected to have already capped and ordered
// the list (see validate's suggestion computation).
func (b *IssueBuilder) WithSuggestions(suggestions ...string) *IssueBuilder {
	b.issue.suggestions = append([]string(nil), suggestions...)
	return b
}

// WithDetail adds a single key-value detail. Multiple calls append.
func (b *IssueBuilder) WithDetail(key, value string) *IssueBuilder {
	b.issue.details = append(b.issue.details, Detail{Key: key, Value: value})
	return b
}

// WithDetails adds key-value context. Multiple calls append.
func (b *IssueBuilder) WithDetails(details ...Detail) *IssueBuilder {
	b.issue.details = append(b.issue.details, details...)
	return b
}

// WithExpectedGot is a convenience for type-mismatch issues, equivalent to
// WithDetails(ExpectedGot(expected, actual)...).
func (b *IssueBuilder) WithExpectedGot(expected, actual string) *IssueBuilder {
	return b.WithDetails(ExpectedGot(expected, actual)...)
}

// Build returns the constructed issue.
//
// Build deep-copies the suggestions and details slices into fresh,
// tight-capacity slices so builder reuse cannot mutate previously-built
// issues.
func (b *IssueBuilder) Build() Issue {
	result := b.issue
	if len(b.issue.suggestions) > 0 {
		result.suggestions = make([]string, len(b.issue.suggestions))
		copy(result.suggestions, b.issue.suggestions)
	}
	if len(b.issue.details) > 0 {
		result.details = make([]Detail, len(b.issue.details))
		copy(result.details, b.issue.details)
	}
	return result
}

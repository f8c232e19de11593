package diag

import (
	"fmt"
	"strings"
)

// Result is svalid's validation outcome: an immutable snapshot carrying
// a valid flag, an append-only list of errors, an append-only list of
// warnings, and their counts.
//
// valid becomes false as soon as the first error is collected and never
// returns to true for that Result. There is no public constructor
// accepting arbitrary issues other than [OK]; use [Collector] to build
// one up during a validate_item descent.
type Result struct {
	issues     []Issue
	errorCount int
	warnCount  int
}

// newResult builds a Result from an ordered issue slice the caller
// guarantees is not shared with any other code (Collector passes a fresh
// copy).
func newResult(issues []Issue, errorCount, warnCount int) Result {
	return Result{issues: issues, errorCount: errorCount, warnCount: warnCount}
}

// OK returns a Result representing success: no errors, no warnings.
func OK() Result {
	return Result{}
}

// Valid reports whether the result has no errors. Warnings alone never
// flip this: strict_mode promotion of warnings to failures is a
// validate-level concern, applied by the caller via [ElevateWarnings],
// not stored here.
func (r Result) Valid() bool {
	return r.errorCount == 0
}

// Errors returns a defensive copy of the collected errors, in the order
// produced by the validation descent.
func (r Result) Errors() []Issue {
	if r.errorCount == 0 {
		return nil
	}
	out := make([]Issue, 0, r.errorCount)
	for _, issue := range r.issues {
		if issue.Severity() == SeverityError {
			out = append(out, issue.Clone())
		}
	}
	return out
}

// Warnings returns a defensive copy of the collected warnings, in the
// order produced by the validation descent.
func (r Result) Warnings() []Issue {
	if r.warnCount == 0 {
		return nil
	}
	out := make([]Issue, 0, r.warnCount)
	for _, issue := range r.issues {
		if issue.Severity() == SeverityWarning {
			out = append(out, issue.Clone())
		}
	}
	return out
}

// ErrorCount returns the number of collected errors.
func (r Result) ErrorCount() int {
	return r.errorCount
}

// WarningCount returns the number of collected warnings.
func (r Result) WarningCount() int {
	return r.warnCount
}

// Merge appends all of other's errors and warnings to r and disjoins the
// valid flag, returning the combined Result: merging an invalid source
// makes the destination invalid, merging two valid results stays valid.
func (r Result) Merge(other Result) Result {
	if len(other.issues) == 0 {
		return r
	}
	merged := make([]Issue, 0, len(r.issues)+len(other.issues))
	merged = append(merged, r.issues...)
	merged = append(merged, other.issues...)
	return newResult(merged, r.errorCount+other.errorCount, r.warnCount+other.warnCount)
}

// ElevateWarnings returns a copy of r with every warning's severity
// changed to error, flipping Valid to false if it had only warnings.
// Errors already present are unaffected. If r carries no warnings,
// ElevateWarnings returns r unchanged.
func (r Result) ElevateWarnings() Result {
	if r.warnCount == 0 {
		return r
	}
	issues := make([]Issue, len(r.issues))
	for i, issue := range r.issues {
		if issue.Severity() == SeverityWarning {
			issue.severity = SeverityError
		}
		issues[i] = issue
	}
	return newResult(issues, r.errorCount+r.warnCount, 0)
}

// String returns a minimal multi-line representation suitable for
// debugging: "OK" when the result has no errors and no warnings,
// otherwise a count summary followed by one formatted line per issue
// (errors and warnings, in collection order).
func (r Result) String() string {
	if r.Valid() && r.warnCount == 0 {
		return "OK"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d error(s), %d warning(s)\n", r.errorCount, r.warnCount)
	for _, issue := range r.issues {
		fmt.Fprintf(&sb, "  %s\n", Format(issue))
	}
	return sb.String()
}

// Format renders an issue in its user-visible form:
//
//	[CODE] PATH: MESSAGE (expected TYPENAME) [Did you mean X, Y?]
//
// Bracketed segments are omitted when empty: a root path formats to an
// empty PATH segment, a missing expected-type detail omits the
// "(expected ...)" clause, and an empty suggestion list omits the
// "[Did you mean ...]" clause.
func Format(issue Issue) string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(issue.Code().String())
	sb.WriteString("] ")
	sb.WriteString(issue.Path().Format())
	sb.WriteString(": ")
	sb.WriteString(issue.Message())
	if expected, ok := issue.Detail(DetailKeyExpected); ok && expected != "" {
		sb.WriteString(" (expected ")
		sb.WriteString(expected)
		sb.WriteByte(')')
	}
	if suggestions := issue.Suggestions(); len(suggestions) > 0 {
		sb.WriteString(" [Did you mean ")
		sb.WriteString(strings.Join(suggestions, ", "))
		sb.WriteString("?]")
	}
	return sb.String()
}

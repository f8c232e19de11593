// Package diag provides the structured diagnostic model used throughout
// svalid: ValidationError and ValidationWarning (the two faces of [Issue],
// discriminated by [Severity]), the ten-code error taxonomy ([Code]), and
// [Result], the immutable snapshot a validate_item descent produces.
//
// # Design Principles
//
//   - Structured data, string-last presentation: a path is stored as a
//     [path.Path] value, never embedded in the message string. [Format]
//     renders the final bracketed presentation on demand.
//   - Immutable results: [Issue] and [Result] store their fields
//     unexported and return defensive copies from accessors.
//   - Stable error codes: [Code] wraps an unexported string so only the
//     codes declared in this package can exist.
//   - Insertion-order preserved, never re-sorted: issues surface in the
//     depth-first left-to-right order the validator visited them in.
//     Unlike a renderer that sorts for deterministic diffing, svalid's
//     concurrency model is single-threaded cooperative per validation
//     call, so traversal order already is the deterministic order.
//   - Builder pattern: [IssueBuilder] is the only valid construction path
//     for [Issue]; [Collector.Collect] panics on a struct literal that
//     skipped it.
//   - Precomputed counts: [Collector] maintains O(1) error/warning counts
//     updated incrementally during collection.
//
// # Severity semantics
//
// [Severity] has exactly two values: [SeverityError] and [SeverityWarning].
// The first error collected into a [Result] flips its Valid() flag to
// false; warnings never do so on their own. Promoting warnings to
// failures under strict_mode is a concern of the validate package, not of
// diag: this package never inspects a "mode" to decide severity.
//
// # Issue construction
//
//	issue := diag.NewIssue(diag.SeverityError, diag.TypeMismatch, "expected int, got string").
//	    WithPath(p).
//	    WithExpectedGot("int", "string").
//	    Build()
//
// # Collection and results
//
//	collector := diag.NewCollector()
//	collector.Collect(issue)
//	result := collector.Result()
//
//	if !result.Valid() {
//	    // handle errors
//	}
//
// Collector is not safe for concurrent use; see [Collector]'s doc comment.
//
// # Package dependencies
//
// diag imports only stdlib and [github.com/lindqvist-dev/svalid/path]. It
// must not import schema, value, validate, or adapter.
package diag

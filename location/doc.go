// Package location provides source location tracking for diagnostics.
//
// This package defines the core types used by svalid's diagnostic system to
// track source locations within schema text. It sits at the foundation tier
// and can be imported by all other packages without introducing circular
// dependencies.
//
// # SourceID
//
// SourceID identifies a schema source uniquely within a validation session.
// Sources are always synthetic (no file-path resolution): a caller-supplied
// label such as "inline:person" or "<stdin>". Construct via NewSourceID or
// MustNewSourceID.
//
// SourceID is comparable and safe for use as map keys.
//
// # Position
//
// Position identifies a point in a UTF-8 encoded source file:
//   - Line: 1-based line number (0 = unknown)
//   - Column: 1-based column counting Unicode code points (runes), not bytes
//   - Byte: 0-based byte offset (-1 = unknown)
//
// Use IsZero() to check for unknown positions, IsKnown() to check for valid
// line/column, and HasByte() to check for known byte offsets.
//
// # Span
//
// Span represents a half-open range [Start, End) in a source file:
//   - Source: SourceID identifying the source
//   - Start: Inclusive start position
//   - End: Exclusive end position (equals Start for point spans)
//
// Create spans via Point, PointWithByte, Range, or RangeWithBytes. The Range
// constructors panic if end < start (geometric soundness invariant).
//
// Use IsZero() to check for "no location" and IsGeometricallySafe() to
// validate spans from untrusted sources (e.g. adapter-supplied offsets).
//
// # RelatedInfo
//
// RelatedInfo provides supplementary location context for diagnostics: a
// Span paired with a short message such as "declared here".
//
// # Dependencies
//
// This package depends only on the standard library and
// golang.org/x/text/unicode/norm (for NFC normalization of synthetic source
// identifiers). It does not import any other svalid package, enabling it to
// be imported by all other packages without cycles.
package location

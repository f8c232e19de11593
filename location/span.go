package location

import "fmt"

// Span represents a half-open range [Start, End) in a source file.
//
// Span is a value type with exported fields. Always pass by value.
// The zero value represents "no location"; use IsZero() to check.
type Span struct {
	// Source is the identity key for this span.
	Source SourceID

	// Start is the inclusive start position of the span.
	Start Position

	// End is the exclusive end position of the span.
	// For single-point spans, End equals Start.
	End Position
}

// Point creates a single-point Span where Start == End.
// This is the canonical way to create spans from parser token positions.
// The byte offset is set to -1 (unknown).
func Point(source SourceID, line, column int) Span {
	pos := Position{Line: line, Column: column, Byte: -1}
	return Span{Source: source, Start: pos, End: pos}
}

// PointWithByte creates a single-point Span with a known byte offset.
func PointWithByte(source SourceID, line, column, byteOffset int) Span {
	pos := Position{Line: line, Column: column, Byte: byteOffset}
	return Span{Source: source, Start: pos, End: pos}
}

// Range creates a Span from start to end positions (byte offsets unknown).
//
// Panics if end < start (geometric soundness invariant). For point spans
// where start == end, use Point() instead.
func Range(source SourceID, startLine, startCol, endLine, endCol int) Span {
	start := Position{Line: startLine, Column: startCol, Byte: -1}
	end := Position{Line: endLine, Column: endCol, Byte: -1}
	if positionBefore(end, start) {
		panic(fmt.Sprintf("location.Range: end %v before start %v", end, start))
	}
	return Span{Source: source, Start: start, End: end}
}

// RangeWithBytes creates a Span with known byte offsets.
//
// Panics if end < start (geometric soundness invariant). When byte offsets
// are present, the byte comparison takes precedence over line/column
// comparison.
func RangeWithBytes(source SourceID, startLine, startCol, startByte, endLine, endCol, endByte int) Span {
	start := Position{Line: startLine, Column: startCol, Byte: startByte}
	end := Position{Line: endLine, Column: endCol, Byte: endByte}

	if start.HasByte() && end.HasByte() {
		if end.Byte < start.Byte {
			panic(fmt.Sprintf("location.RangeWithBytes: end byte %d before start byte %d", endByte, startByte))
		}
	} else if positionBefore(end, start) {
		panic(fmt.Sprintf("location.RangeWithBytes: end %v before start %v", end, start))
	}
	return Span{Source: source, Start: start, End: end}
}

// IsZero reports whether the span is the zero value.
func (s Span) IsZero() bool {
	return s.Source.IsZero() && s.Start.IsZero() && s.End.IsZero()
}

// IsPoint reports whether the span represents a single point (Start == End).
func (s Span) IsPoint() bool {
	return s.Start == s.End
}

// IsValid reports whether the span has a known source and start position.
//
// For non-point spans, the end position must also be known.
func (s Span) IsValid() bool {
	if s.Source.IsZero() {
		return false
	}
	if !s.Start.IsKnown() {
		return false
	}
	if !s.IsPoint() && !s.End.IsKnown() {
		return false
	}
	return true
}

// IsGeometricallySafe reports whether the span satisfies Start <= End.
//
// Returns true for zero spans, point spans, and valid range spans where
// Start is at or before End. Use this to validate spans constructed via
// struct literals or received from adapters.
func (s Span) IsGeometricallySafe() bool {
	if s.IsZero() || s.IsPoint() {
		return true
	}
	if s.Start.HasByte() && s.End.HasByte() {
		return s.Start.Byte <= s.End.Byte
	}
	return !positionBefore(s.End, s.Start)
}

// String returns a human-readable representation of the span.
//
// Returns "<no location>" for zero spans, "source:line:column" for point
// spans, and "source:startLine:startCol-endLine:endCol" for range spans.
func (s Span) String() string {
	if s.IsZero() {
		return "<no location>"
	}
	src := s.Source.String()
	if s.IsPoint() {
		return fmt.Sprintf("%s:%s", src, s.Start.String())
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", src, s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

// Contains reports whether position p is within this span.
//
// The span is half-open: Start is inclusive, End is exclusive. Point spans
// contain no positions by definition; use ContainsOrEquals for that case.
func (s Span) Contains(p Position) bool {
	if s.IsZero() || p.IsZero() {
		return false
	}
	if s.Start.HasByte() && s.End.HasByte() && p.HasByte() {
		return p.Byte >= s.Start.Byte && p.Byte < s.End.Byte
	}
	if positionBefore(p, s.Start) {
		return false
	}
	if !positionBefore(p, s.End) {
		return false
	}
	return true
}

// ContainsOrEquals reports whether position p is within this span OR equals
// the location of a point span.
func (s Span) ContainsOrEquals(p Position) bool {
	if s.Contains(p) {
		return true
	}
	return s.IsPoint() && s.Start == p
}

// Merge combines two spans into one covering both.
//
// Panics on source mismatch or invalid spans. For untrusted-provenance
// spans, use MergeSafe instead.
func Merge(a, b Span) Span {
	if a.Source != b.Source {
		panic(fmt.Sprintf("location.Merge: source mismatch: %q vs %q", a.Source.String(), b.Source.String()))
	}
	if !a.IsValid() {
		panic(fmt.Sprintf("location.Merge: first span is invalid: %v", a))
	}
	if !b.IsValid() {
		panic(fmt.Sprintf("location.Merge: second span is invalid: %v", b))
	}
	return mergeSpans(a, b)
}

// MergeSafe is the safe variant of Merge for untrusted-provenance spans.
//
// Returns ok=false instead of panicking when sources differ or either span
// is invalid or geometrically unsound.
func MergeSafe(a, b Span) (Span, bool) {
	if a.Source != b.Source {
		return Span{}, false
	}
	if !a.IsValid() || !b.IsValid() {
		return Span{}, false
	}
	if !a.IsGeometricallySafe() || !b.IsGeometricallySafe() {
		return Span{}, false
	}
	return mergeSpans(a, b), true
}

func mergeSpans(a, b Span) Span {
	var start, end Position
	if positionBefore(a.Start, b.Start) {
		start = a.Start
	} else {
		start = b.Start
	}
	if positionBefore(a.End, b.End) {
		end = b.End
	} else {
		end = a.End
	}
	return Span{Source: a.Source, Start: start, End: end}
}

// Compare compares two spans for ordering: source, then start, then end.
//
// Returns -1 if a < b, 0 if a == b, +1 if a > b.
func Compare(a, b Span) int {
	srcA, srcB := a.Source.String(), b.Source.String()
	if srcA < srcB {
		return -1
	}
	if srcA > srcB {
		return 1
	}
	if cmp := comparePositions(a.Start, b.Start); cmp != 0 {
		return cmp
	}
	return comparePositions(a.End, b.End)
}

func comparePositions(a, b Position) int {
	if a.Line != b.Line {
		if a.Line < b.Line {
			return -1
		}
		return 1
	}
	if a.Column != b.Column {
		if a.Column < b.Column {
			return -1
		}
		return 1
	}
	return 0
}

// positionBefore reports whether a is strictly before b using line/column.
func positionBefore(a, b Position) bool {
	if !a.IsKnown() || !b.IsKnown() {
		return false
	}
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}

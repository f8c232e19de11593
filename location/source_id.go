package location

import (
	"golang.org/x/text/unicode/norm"
)

// SourceID identifies a schema source uniquely within a validation session.
//
// Sources are always synthetic: a caller-supplied label such as
// "inline:person" or "<stdin>". There is no file-path resolution; reading
// schema text from disk is the caller's responsibility, outside this module.
//
// SourceID is a value type with an unexported field. Always pass by value.
// The zero value is invalid; use IsZero() to check. SourceID is comparable
// and safe for use as a map key.
type SourceID struct {
	id string
}

// NewSourceID creates a SourceID from a caller-supplied identifier, after
// NFC-normalizing it so that visually identical identifiers with different
// Unicode decompositions compare equal.
//
// Returns ErrEmptySourceID if identifier is empty.
func NewSourceID(identifier string) (SourceID, error) {
	if identifier == "" {
		return SourceID{}, ErrEmptySourceID
	}
	return SourceID{id: norm.NFC.String(identifier)}, nil
}

// MustNewSourceID is like NewSourceID but panics on error.
//
// Use in application code, tests, and high-level APIs where the identifier
// is known-valid, e.g. a string literal.
func MustNewSourceID(identifier string) SourceID {
	sid, err := NewSourceID(identifier)
	if err != nil {
		panic("location.MustNewSourceID: " + err.Error())
	}
	return sid
}

// String returns the source identifier.
func (s SourceID) String() string {
	return s.id
}

// IsZero reports whether this is a zero-value SourceID.
func (s SourceID) IsZero() bool {
	return s.id == ""
}

package location

// Common RelatedInfo message constants for consistent diagnostic output.
const (
	MsgDeclaredHere    = "declared here"
	MsgReferencedFrom  = "referenced from here"
	MsgPreviousBinding = "previous binding here"
)

// RelatedInfo describes an additional location associated with a diagnostic.
//
// Used for supplementary context, such as pointing at the declaration site
// of a field that's missing from an instance.
type RelatedInfo struct {
	// Span identifies the related source location.
	Span Span

	// Message provides context about why this location is related.
	// Prefer using the Msg* constants for consistency.
	Message string
}

// IsValid reports whether the related info has meaningful content.
// At minimum, either the Span must be valid or the Message must be non-empty.
func (r RelatedInfo) IsValid() bool {
	return r.Span.IsValid() || r.Message != ""
}

// String returns a human-readable representation.
func (r RelatedInfo) String() string {
	if r.Span.IsZero() {
		return r.Message
	}
	if r.Message == "" {
		return r.Span.String()
	}
	return r.Span.String() + ": " + r.Message
}

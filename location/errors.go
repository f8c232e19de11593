package location

import "errors"

// Sentinel errors for programmatic error handling.
//
// These errors enable callers to distinguish between different failure modes
// using errors.Is(). Error messages may include additional context (e.g. the
// offending identifier), but the sentinel error is always the root cause and
// can be matched with errors.Is().
//
// Example usage:
//
//	_, err := location.NewSourceID("")
//	if errors.Is(err, location.ErrEmptySourceID) {
//	    // handle empty source ID
//	}

// ErrEmptySourceID is returned when a source ID is empty.
//
// Returned by: NewSourceID (MustNewSourceID panics with it instead).
var ErrEmptySourceID = errors.New("location: source ID cannot be empty")

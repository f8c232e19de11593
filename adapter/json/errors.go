package json

import "errors"

// ErrEmptyDocument is returned when Parse is given empty or whitespace-only
// input.
var ErrEmptyDocument = errors.New("json adapter: empty document")

// ErrTrailingContent is returned when the document contains additional
// non-whitespace tokens after its single top-level value.
var ErrTrailingContent = errors.New("json adapter: unexpected content after top-level value")

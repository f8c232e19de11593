package yaml

import "errors"

// ErrEmptyDocument is returned when Parse is given empty or whitespace-only
// input, or a YAML document containing only comments.
var ErrEmptyDocument = errors.New("yaml adapter: empty document")

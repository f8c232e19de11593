package parse

import "fmt"

// SyntaxError is a lexical or grammatical failure at a byte offset in
// the source text. The caller (validate.Validator.LoadSchema) wraps this
// into a diag.Issue with code PARSE_ERROR; parse itself
// has no dependency on diag so it can be used standalone.
type SyntaxError struct {
	Pos     int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Message)
}

package validate

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lindqvist-dev/svalid/diag"
	"github.com/lindqvist-dev/svalid/schema"
	"github.com/lindqvist-dev/svalid/value"
)

// UUIDValidator builds a builtin custom validator hook that checks
// RFC-4122 UUID formatting on String-kind values. It is not registered
// by default; a caller opts in via
// Validator.RegisterCustomValidator(UUIDValidator(scope)).
// scope restricts the hook to schema nodes with that declared name, or
// every node when scope is "".
func UUIDValidator(scope string) CustomValidator {
	return CustomValidator{
		Name:        "uuid",
		Description: "checks that a string value is a well-formed RFC-4122 UUID",
		Scope:       scope,
		Fn: func(val value.Value, _ schema.SchemaType, ctx *Context) diag.Result {
			s, ok := val.(value.StringValue)
			if !ok {
				return diag.OK()
			}
			if _, err := uuid.Parse(s.String()); err != nil {
				return singleError(ctx.Path(), diag.ConstraintViolation, fmt.Sprintf("invalid UUID: %s", s))
			}
			return diag.OK()
		},
	}
}

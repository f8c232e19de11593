package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lindqvist-dev/svalid/diag"
	"github.com/lindqvist-dev/svalid/validate"
	"github.com/lindqvist-dev/svalid/value"
)

func TestUUIDValidator_AcceptsWellFormed(t *testing.T) {
	v := validate.NewValidator()
	v.RegisterCustomValidator(validate.UUIDValidator(""))
	require.NoError(t, v.LoadSchema(`string`, "root"))

	r := v.ValidateDocument(value.StringValue("550e8400-e29b-41d4-a716-446655440000"), "root")
	assert.True(t, r.Valid())
}

func TestUUIDValidator_RejectsMalformed(t *testing.T) {
	v := validate.NewValidator()
	v.RegisterCustomValidator(validate.UUIDValidator(""))
	require.NoError(t, v.LoadSchema(`string`, "root"))

	r := v.ValidateDocument(value.StringValue("not-a-uuid"), "root")
	require.False(t, r.Valid())
	assert.Equal(t, diag.ConstraintViolation, r.Errors()[0].Code())
}

func TestUUIDValidator_SkipsNonStringValues(t *testing.T) {
	v := validate.NewValidator()
	v.RegisterCustomValidator(validate.UUIDValidator(""))
	require.NoError(t, v.LoadSchema(`int`, "root"))

	r := v.ValidateDocument(value.IntValue(1), "root")
	assert.True(t, r.Valid())
}

func TestUUIDValidator_ScopedToName(t *testing.T) {
	v := validate.NewValidator()
	v.RegisterCustomValidator(validate.UUIDValidator("IDField"))
	require.NoError(t, v.LoadSchema(`string`, "root"))

	// Not scoped to "root" (anonymous), so the hook never fires here.
	r := v.ValidateDocument(value.StringValue("not-a-uuid"), "root")
	assert.True(t, r.Valid())
}

package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(99).String())
}

func TestSeverity_IsFailure(t *testing.T) {
	assert.True(t, SeverityError.IsFailure())
	assert.False(t, SeverityWarning.IsFailure())
}

func TestSeverity_IsMoreSevereThan(t *testing.T) {
	assert.True(t, SeverityError.IsMoreSevereThan(SeverityWarning))
	assert.False(t, SeverityWarning.IsMoreSevereThan(SeverityError))
	assert.False(t, SeverityError.IsMoreSevereThan(SeverityError))
}

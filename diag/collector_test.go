package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollector_Collect_PreservesOrder(t *testing.T) {
	c := NewCollector()
	c.Collect(NewIssue(SeverityError, MissingField, "first").Build())
	c.Collect(NewIssue(SeverityWarning, ConstraintViolation, "second").Build())
	c.Collect(NewIssue(SeverityError, TypeMismatch, "third").Build())

	result := c.Result()
	assert.Equal(t, 2, result.ErrorCount())
	assert.Equal(t, 1, result.WarningCount())

	errs := result.Errors()
	assert.Len(t, errs, 2)
	assert.Equal(t, "first", errs[0].Message())
	assert.Equal(t, "third", errs[1].Message())
}

func TestCollector_Collect_PanicsOnZeroIssue(t *testing.T) {
	c := NewCollector()
	assert.Panics(t, func() {
		c.Collect(Issue{})
	})
}

func TestCollector_HasErrors(t *testing.T) {
	c := NewCollector()
	assert.False(t, c.HasErrors())
	c.Collect(NewIssue(SeverityWarning, ConstraintViolation, "just a warning").Build())
	assert.False(t, c.HasErrors())
	c.Collect(NewIssue(SeverityError, TypeMismatch, "a real error").Build())
	assert.True(t, c.HasErrors())
}

func TestCollector_Merge(t *testing.T) {
	src := NewCollector()
	src.Collect(NewIssue(SeverityError, MissingField, "from src").Build())
	srcResult := src.Result()

	dst := NewCollector()
	dst.Collect(NewIssue(SeverityWarning, ConstraintViolation, "from dst").Build())
	dst.Merge(srcResult)

	result := dst.Result()
	assert.Equal(t, 1, result.ErrorCount())
	assert.Equal(t, 1, result.WarningCount())
	assert.Equal(t, 1, srcResult.ErrorCount()+srcResult.WarningCount()) // src untouched
}

func TestCollector_Result_IndependentSnapshot(t *testing.T) {
	c := NewCollector()
	c.Collect(NewIssue(SeverityError, MissingField, "one").Build())
	result := c.Result()

	c.Collect(NewIssue(SeverityError, MissingField, "two").Build())

	assert.Equal(t, 1, result.ErrorCount())
	assert.Equal(t, 2, c.Len())
}

func TestCollector_Len(t *testing.T) {
	c := NewCollector()
	assert.Equal(t, 0, c.Len())
	c.CollectAll([]Issue{
		NewIssue(SeverityError, MissingField, "a").Build(),
		NewIssue(SeverityWarning, ConstraintViolation, "b").Build(),
	})
	assert.Equal(t, 2, c.Len())
}

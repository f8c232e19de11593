package diag

import (
	"testing"

	"github.com/lindqvist-dev/svalid/path"
	"github.com/stretchr/testify/assert"
)

func TestIssue_Accessors(t *testing.T) {
	p := path.Root().PushField("name")
	issue := NewIssue(SeverityError, TypeMismatch, "expected string, got int").
		WithPath(p).
		WithExpectedGot("string", "int").
		WithSuggestions("fullName", "firstName").
		Build()

	assert.Equal(t, SeverityError, issue.Severity())
	assert.Equal(t, TypeMismatch, issue.Code())
	assert.Equal(t, "expected string, got int", issue.Message())
	assert.Equal(t, ".name", issue.Path().Format())
	assert.Equal(t, []string{"fullName", "firstName"}, issue.Suggestions())

	expected, ok := issue.Detail(DetailKeyExpected)
	assert.True(t, ok)
	assert.Equal(t, "string", expected)

	_, ok = issue.Detail("nonexistent")
	assert.False(t, ok)
}

func TestIssue_IsZero(t *testing.T) {
	var zero Issue
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsValid())

	issue := NewIssue(SeverityError, TypeMismatch, "bad value").Build()
	assert.False(t, issue.IsZero())
	assert.True(t, issue.IsValid())
}

func TestIssue_Clone_Independence(t *testing.T) {
	issue := NewIssue(SeverityWarning, MissingField, "missing field").
		WithSuggestions("a", "b").
		Build()

	clone := issue.Clone()
	suggestions := clone.Suggestions()
	suggestions[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, issue.Suggestions())
}

func TestIssue_DefensiveCopies(t *testing.T) {
	issue := NewIssue(SeverityError, UnexpectedField, "unexpected field").
		WithSuggestions("a").
		WithDetail(DetailKeyField, "extra").
		Build()

	s1 := issue.Suggestions()
	s1[0] = "tampered"
	assert.Equal(t, []string{"a"}, issue.Suggestions())

	d1 := issue.Details()
	d1[0].Value = "tampered"
	assert.Equal(t, "extra", issue.Details()[0].Value)
}

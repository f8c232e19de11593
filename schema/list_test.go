package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewList_DefaultsToExactly(t *testing.T) {
	l := NewList(NewPrimitive(KindInt))
	assert.Equal(t, Exactly, l.OccurrenceBound())
}

func TestNewListWithOccurrence(t *testing.T) {
	l := NewListWithOccurrence(NewPrimitive(KindInt), OneOrMore)
	assert.Equal(t, OneOrMore, l.OccurrenceBound())
	assert.Equal(t, KindInt, l.Element().(Primitive).PrimitiveKind())
}

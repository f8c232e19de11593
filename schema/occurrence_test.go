package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOccurrence(t *testing.T) {
	o := NewOccurrence(NewPrimitive(KindString), Optional)
	assert.Equal(t, Optional, o.Modifier())
	assert.Equal(t, KindString, o.Base().(Primitive).PrimitiveKind())
}

func TestNewOccurrence_PanicsOnExactly(t *testing.T) {
	assert.Panics(t, func() {
		NewOccurrence(NewPrimitive(KindString), Exactly)
	})
}

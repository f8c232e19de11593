package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUnion_FlattensNested(t *testing.T) {
	inner := NewUnion([]SchemaType{NewPrimitive(KindInt), NewPrimitive(KindFloat)})
	outer := NewUnion([]SchemaType{inner, NewPrimitive(KindString)})

	assert.Len(t, outer.Alternatives(), 3)
}

func TestNewUnion_NoNesting(t *testing.T) {
	u := NewUnion([]SchemaType{NewPrimitive(KindBool), NewPrimitive(KindNull)})
	assert.Len(t, u.Alternatives(), 2)
}

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithName(t *testing.T) {
	p := NewPrimitive(KindInt)
	assert.Equal(t, "", p.Name())

	named := WithName(p, "Age")
	assert.Equal(t, "Age", named.Name())
	assert.Equal(t, "", p.Name(), "original node must be unmodified")
}

func TestWithName_AllVariants(t *testing.T) {
	variants := []SchemaType{
		NewPrimitive(KindInt),
		NewLiteral(nil),
		NewList(NewPrimitive(KindString)),
		NewMap(nil),
		NewElement("tag", nil, nil),
		NewUnion(nil),
		NewOccurrence(NewPrimitive(KindBool), Optional),
		NewReference("Other"),
	}
	for _, v := range variants {
		named := WithName(v, "X")
		assert.Equal(t, "X", named.Name())
	}
}

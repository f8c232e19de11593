package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual_Primitives(t *testing.T) {
	assert.True(t, Equal(IntValue(1), IntValue(1)))
	assert.False(t, Equal(IntValue(1), IntValue(2)))
	assert.False(t, Equal(IntValue(1), FloatValue(1)))
	assert.True(t, Equal(NullValue{}, NullValue{}))
}

func TestEqual_StringsNFCNormalize(t *testing.T) {
	// "café" as precomposed (NFC) vs decomposed (NFD, e + combining acute)
	nfc := StringValue("café")
	nfd := StringValue("café")
	assert.True(t, Equal(nfc, nfd))
}

func TestEqual_Lists(t *testing.T) {
	a := NewList([]Value{IntValue(1), StringValue("x")})
	b := NewList([]Value{IntValue(1), StringValue("x")})
	c := NewList([]Value{IntValue(1), StringValue("y")})
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestEqual_Maps(t *testing.T) {
	a := NewMap(map[string]Value{"x": IntValue(1), "y": StringValue("z")})
	b := NewMap(map[string]Value{"y": StringValue("z"), "x": IntValue(1)})
	c := NewMap(map[string]Value{"x": IntValue(2)})
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestEqual_Elements(t *testing.T) {
	a := NewElement("person", map[string]Value{"id": IntValue(1)}, []Value{StringValue("a")})
	b := NewElement("person", map[string]Value{"id": IntValue(1)}, []Value{StringValue("a")})
	c := NewElement("other", map[string]Value{"id": IntValue(1)}, []Value{StringValue("a")})
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestEqual_DifferentKinds(t *testing.T) {
	assert.False(t, Equal(IntValue(1), StringValue("1")))
}

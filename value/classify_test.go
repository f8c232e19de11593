package value

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Primitives(t *testing.T) {
	assert.Equal(t, NullValue{}, Classify(nil))
	assert.Equal(t, BoolValue(true), Classify(true))
	assert.Equal(t, StringValue("hi"), Classify("hi"))
	assert.Equal(t, IntValue(42), Classify(42))
	assert.Equal(t, FloatValue(3.5), Classify(3.5))
}

func TestClassify_JSONNumber(t *testing.T) {
	assert.Equal(t, IntValue(7), Classify(json.Number("7")))
	assert.Equal(t, FloatValue(7.5), Classify(json.Number("7.5")))
}

func TestClassify_JSONNumber_InvalidPanics(t *testing.T) {
	assert.Panics(t, func() {
		Classify(json.Number("not-a-number"))
	})
}

func TestClassify_NestedList(t *testing.T) {
	result := Classify([]any{1, "x", []any{true}})
	list, ok := result.(ListValue)
	assert.True(t, ok)
	assert.Equal(t, 3, list.Len())
	assert.Equal(t, IntValue(1), list.Item(0))
	assert.Equal(t, StringValue("x"), list.Item(1))

	inner, ok := list.Item(2).(ListValue)
	assert.True(t, ok)
	assert.Equal(t, BoolValue(true), inner.Item(0))
}

func TestClassify_NestedMap(t *testing.T) {
	result := Classify(map[string]any{"a": 1, "b": map[string]any{"c": "d"}})
	m, ok := result.(MapValue)
	assert.True(t, ok)

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, IntValue(1), v)

	nested, ok := m.Get("b")
	assert.True(t, ok)
	nestedMap, ok := nested.(MapValue)
	assert.True(t, ok)
	v, ok = nestedMap.Get("c")
	assert.True(t, ok)
	assert.Equal(t, StringValue("d"), v)
}

func TestClassify_UnrecognizedPanics(t *testing.T) {
	assert.Panics(t, func() {
		Classify(struct{}{})
	})
}

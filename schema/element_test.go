package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewElement_DefaultsOpen(t *testing.T) {
	e := NewElement("person", []Field{{Name: "id", Type: NewPrimitive(KindInt), Required: true}}, nil)
	assert.True(t, e.Open())
	assert.True(t, e.HasTag())
	assert.Equal(t, "person", e.Tag())
}

func TestNewElement_EmptyTagMeansAny(t *testing.T) {
	e := NewElement("", nil, nil)
	assert.False(t, e.HasTag())
}

func TestElement_Closed(t *testing.T) {
	e := NewElement("x", nil, nil).Closed()
	assert.False(t, e.Open())
}

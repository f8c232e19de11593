package yaml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lindqvist-dev/svalid/value"
	yamladapter "github.com/lindqvist-dev/svalid/adapter/yaml"
)

func TestParse_Scalars(t *testing.T) {
	a := yamladapter.NewAdapter()

	v, err := a.Parse([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, value.String, v.Kind())

	v, err = a.Parse([]byte("42"))
	require.NoError(t, err)
	assert.Equal(t, value.Int, v.Kind())
}

func TestParse_MappingAndSequence(t *testing.T) {
	a := yamladapter.NewAdapter()

	v, err := a.Parse([]byte("name: Ada\ntags:\n  - x\n  - y\nage: 30\n"))
	require.NoError(t, err)
	require.Equal(t, value.Map, v.Kind())

	m := v.(value.Mapper)
	name, ok := m.Get("name")
	require.True(t, ok)
	assert.Equal(t, value.StringValue("Ada"), name)

	tags, ok := m.Get("tags")
	require.True(t, ok)
	require.Equal(t, value.List, tags.Kind())
	assert.Equal(t, 2, tags.(value.Lister).Len())
}

func TestParse_EmptyDocument(t *testing.T) {
	a := yamladapter.NewAdapter()

	_, err := a.Parse([]byte("   \n"))
	assert.ErrorIs(t, err, yamladapter.ErrEmptyDocument)
}

func TestParse_RejectsMultipleDocuments(t *testing.T) {
	a := yamladapter.NewAdapter()

	_, err := a.Parse([]byte("a: 1\n---\nb: 2\n"))
	assert.Error(t, err)
}

func TestParse_InvalidYAML(t *testing.T) {
	a := yamladapter.NewAdapter()

	_, err := a.Parse([]byte("a: [unterminated"))
	assert.Error(t, err)
}

package json_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsonadapter "github.com/lindqvist-dev/svalid/adapter/json"
	"github.com/lindqvist-dev/svalid/value"
)

func TestParse_Scalars(t *testing.T) {
	a := jsonadapter.NewAdapter()

	v, err := a.Parse([]byte(`"hello"`))
	require.NoError(t, err)
	assert.Equal(t, value.String, v.Kind())

	v, err = a.Parse([]byte(`42`))
	require.NoError(t, err)
	assert.Equal(t, value.Int, v.Kind())

	v, err = a.Parse([]byte(`3.5`))
	require.NoError(t, err)
	assert.Equal(t, value.Float, v.Kind())

	v, err = a.Parse([]byte(`null`))
	require.NoError(t, err)
	assert.Equal(t, value.Null, v.Kind())
}

func TestParse_NestedObjectAndArray(t *testing.T) {
	a := jsonadapter.NewAdapter()

	v, err := a.Parse([]byte(`{"name": "Ada", "tags": ["x", "y"], "age": 30}`))
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

func TestParse_CommentsAndTrailingCommasByDefault(t *testing.T) {
	a := jsonadapter.NewAdapter()

	v, err := a.Parse([]byte("// a comment\n{\"x\": 1,}"))
	require.NoError(t, err)
	m := v.(value.Mapper)
	x, ok := m.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.IntValue(1), x)
}

func TestParse_StrictJSONRejectsComments(t *testing.T) {
	a := jsonadapter.NewAdapter(jsonadapter.WithStrictJSON(true))

	_, err := a.Parse([]byte("// a comment\n{\"x\": 1}"))
	assert.Error(t, err)
}

func TestParse_EmptyDocument(t *testing.T) {
	a := jsonadapter.NewAdapter()

	_, err := a.Parse([]byte("   "))
	assert.ErrorIs(t, err, jsonadapter.ErrEmptyDocument)
}

func TestParse_TrailingContent(t *testing.T) {
	a := jsonadapter.NewAdapter()

	_, err := a.Parse([]byte(`{"x": 1} {"y": 2}`))
	assert.ErrorIs(t, err, jsonadapter.ErrTrailingContent)
}

func TestParse_InvalidJSON(t *testing.T) {
	a := jsonadapter.NewAdapter()

	_, err := a.Parse([]byte(`{not json`))
	assert.Error(t, err)
}

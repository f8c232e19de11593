package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedGot(t *testing.T) {
	details := ExpectedGot("int", "string")
	assert.Equal(t, []Detail{
		{Key: DetailKeyExpected, Value: "int"},
		{Key: DetailKeyActual, Value: "string"},
	}, details)
}

package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoot(t *testing.T) {
	p := Root()
	assert.Equal(t, "", p.Format())
	assert.True(t, p.IsRoot())
	assert.Equal(t, 0, p.Len())
}

func TestPushField(t *testing.T) {
	p := Root().PushField("name")
	assert.Equal(t, ".name", p.Format())
	assert.False(t, p.IsRoot())
}

func TestPushIndex(t *testing.T) {
	p := Root().PushField("items").PushIndex(3)
	assert.Equal(t, ".items[3]", p.Format())
}

func TestPushElementAndAttribute(t *testing.T) {
	p := Root().PushField("body").PushElement("link").PushAttribute("href")
	assert.Equal(t, ".body<link>@href", p.Format())
}

func TestCombinedOrdering(t *testing.T) {
	p := Root().PushField("field").PushIndex(3).PushAttribute("attr").PushElement("tag")
	assert.Equal(t, ".field[3]@attr<tag>", p.Format())
}

func TestPushIsImmutable(t *testing.T) {
	base := Root().PushField("a")
	child1 := base.PushField("b")
	child2 := base.PushField("c")

	assert.Equal(t, ".a", base.Format())
	assert.Equal(t, ".a.b", child1.Format())
	assert.Equal(t, ".a.c", child2.Format())
}

func TestParent(t *testing.T) {
	p := Root().PushField("a").PushIndex(1)
	parent := p.Parent()
	assert.Equal(t, ".a", parent.Format())

	root := Root()
	assert.True(t, root.Parent().IsRoot())
}

func TestSegmentsDefensiveCopy(t *testing.T) {
	p := Root().PushField("a").PushField("b")
	segs := p.Segments()
	segs[0].Name = "mutated"

	assert.Equal(t, ".a.b", p.Format(), "external mutation of returned slice must not affect the Path")
}

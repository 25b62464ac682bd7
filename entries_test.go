package twodict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryListAppendDuplicatePanics(t *testing.T) {
	l := newEntryList[string](0)
	l.append("a")

	assert.PanicsWithValue(t,
		"twodict: internal error: duplicate entry for key a",
		func() { l.append("a") })
}

func TestEntryListRebind(t *testing.T) {
	l := newEntryList[string](0)
	l.append("a")
	el := l.append("b")
	l.append("c")

	l.rebind(el, "z")

	assert.False(t, l.has("b"))
	assert.True(t, l.has("z"))
	assert.Equal(t, 3, l.len())

	rebound, ok := l.element("z")
	assert.True(t, ok)
	assert.Same(t, el, rebound)

	var keys []string
	for key := range l.forward() {
		keys = append(keys, key)
	}
	assert.Equal(t, []string{"a", "z", "c"}, keys)
}

func TestEntryListEmptyTraversals(t *testing.T) {
	l := newEntryList[int](0)

	for range l.forward() {
		t.Fatal("empty list yielded forward")
	}
	for range l.backward() {
		t.Fatal("empty list yielded backward")
	}

	_, ok := l.first()
	assert.False(t, ok)
	_, ok = l.last()
	assert.False(t, ok)

	// a zero value tolerates order-side reads
	var zero entryList[int]
	assert.Nil(t, zero.frontElement())
	assert.Nil(t, zero.backElement())
}

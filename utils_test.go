package twodict

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertLenEqual[T comparable](t *testing.T, d *TwoDict[T], expectedLen int) {
	t.Helper()

	assert.Equal(t, expectedLen, d.Len())
	// the entry list must agree with the index
	assert.Equal(t, expectedLen, d.entries.order.Len())
}

// assertOrderedPairsEqual asserts the dict holds exactly the given
// entries in that insertion order, walking both directions.
func assertOrderedPairsEqual[T comparable](t *testing.T, d *TwoDict[T], expectedKeys, expectedValues []T) {
	t.Helper()

	assertOrderedPairsEqualFromOldest(t, d, expectedKeys, expectedValues)
	assertOrderedPairsEqualFromNewest(t, d, expectedKeys, expectedValues)
}

func assertOrderedPairsEqualFromOldest[T comparable](t *testing.T, d *TwoDict[T], expectedKeys, expectedValues []T) {
	t.Helper()

	if assert.Equal(t, len(expectedKeys), len(expectedValues)) && assert.Equal(t, len(expectedKeys), d.Len()) {
		i := 0
		for pair := d.Oldest(); pair != nil; pair = pair.Next() {
			assert.Equal(t, expectedKeys[i], pair.Key)
			assert.Equal(t, expectedValues[i], pair.Value)
			i++
		}
	}
}

func assertOrderedPairsEqualFromNewest[T comparable](t *testing.T, d *TwoDict[T], expectedKeys, expectedValues []T) {
	t.Helper()

	if assert.Equal(t, len(expectedKeys), len(expectedValues)) && assert.Equal(t, len(expectedKeys), d.Len()) {
		i := len(expectedKeys) - 1
		for pair := d.Newest(); pair != nil; pair = pair.Prev() {
			assert.Equal(t, expectedKeys[i], pair.Key)
			assert.Equal(t, expectedValues[i], pair.Value)
			i--
		}
	}
}

// assertStoreEqual pins down the flat dual mapping slot for slot, the
// strongest statement one can make about a dict's state.
func assertStoreEqual[T comparable](t *testing.T, d *TwoDict[T], expected map[T]T) {
	t.Helper()

	assert.Equal(t, expected, map[T]T(d.store))
}

// checkInvariants asserts the structural contract as a whole: the two
// directions are mutual inverses, every entry key is tracked, only one
// side of a pair carries the entry, and the slot count matches the
// entry count.
func checkInvariants[T comparable](t *testing.T, d *TwoDict[T]) {
	t.Helper()

	for x, counterpart := range d.store {
		back, ok := d.store.lookup(counterpart)
		if assert.True(t, ok, "dangling slot: %v -> %v", x, counterpart) {
			assert.Equal(t, x, back, "broken involution at %v", x)
		}
	}

	selfPairs := 0
	for key := range d.entries.forward() {
		value, ok := d.store.lookup(key)
		assert.True(t, ok, "entry key %v not tracked", key)
		if key == value {
			selfPairs++
		} else {
			assert.False(t, d.entries.has(value), "both sides of (%v, %v) carry an entry", key, value)
		}
	}

	for key, el := range d.entries.index {
		assert.Equal(t, key, el.Value, "index entry %v points at element %v", key, el.Value)
	}

	assert.Equal(t, d.Len(), d.entries.order.Len())
	assert.Equal(t, 2*d.Len()-selfPairs, d.store.slots())
}

func randomHexString(t *testing.T, length int) string {
	b := length / 2
	randBytes := make([]byte, b)

	if n, err := rand.Read(randBytes); err != nil || n != b {
		if err == nil {
			err = fmt.Errorf("only got %v random bytes, expected %v", n, b)
		}
		t.Fatal(err)
	}

	return hex.EncodeToString(randBytes)
}

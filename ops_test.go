package twodict

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func popFixture() *TwoDict[any] {
	return New[any](WithInitialData(
		Pair[any]{Key: "a", Value: 1},
		Pair[any]{Key: "b", Value: 2},
		Pair[any]{Key: "c", Value: 3},
	))
}

func TestPop(t *testing.T) {
	t.Run("by key", func(t *testing.T) {
		d := popFixture()
		value, err := d.Pop("a")
		assert.Nil(t, err)
		assert.Equal(t, 1, value)
		assertOrderedPairsEqual(t, d, []any{"b", "c"}, []any{2, 3})
		checkInvariants(t, d)
	})

	t.Run("by value", func(t *testing.T) {
		d := popFixture()
		key, err := d.Pop(1)
		assert.Nil(t, err)
		assert.Equal(t, "a", key)
		assertOrderedPairsEqual(t, d, []any{"b", "c"}, []any{2, 3})
		checkInvariants(t, d)
	})

	t.Run("untracked", func(t *testing.T) {
		d := popFixture()
		_, err := d.Pop("d")
		assert.Equal(t, &KeyNotFoundError[any]{"d"}, err)

		var notFound *KeyNotFoundError[any]
		assert.True(t, errors.As(err, &notFound))
		assert.Equal(t, "d", notFound.MissingKey)

		assertLenEqual(t, d, 3)
	})

	t.Run("with default", func(t *testing.T) {
		d := popFixture()
		assert.Equal(t, "fallback", d.PopDefault("d", "fallback"))
		assertLenEqual(t, d, 3)

		assert.Equal(t, 2, d.PopDefault("b", "fallback"))
		assertOrderedPairsEqual(t, d, []any{"a", "c"}, []any{1, 3})
	})
}

func TestPopEnds(t *testing.T) {
	t.Run("newest", func(t *testing.T) {
		d := popFixture()
		pair, err := d.PopNewest()
		assert.Nil(t, err)
		assert.Equal(t, "c", pair.Key)
		assert.Equal(t, 3, pair.Value)
		assertOrderedPairsEqual(t, d, []any{"a", "b"}, []any{1, 2})
		checkInvariants(t, d)
	})

	t.Run("oldest", func(t *testing.T) {
		d := popFixture()
		pair, err := d.PopOldest()
		assert.Nil(t, err)
		assert.Equal(t, "a", pair.Key)
		assert.Equal(t, 1, pair.Value)
		assertOrderedPairsEqual(t, d, []any{"b", "c"}, []any{2, 3})
		checkInvariants(t, d)
	})

	t.Run("drained", func(t *testing.T) {
		d := popFixture()
		for d.Len() > 0 {
			_, err := d.PopNewest()
			assert.Nil(t, err)
		}

		_, err := d.PopNewest()
		assert.True(t, errors.Is(err, ErrEmpty))
		_, err = d.PopOldest()
		assert.True(t, errors.Is(err, ErrEmpty))
		checkInvariants(t, d)
	})
}

func TestSetDefault(t *testing.T) {
	d := New[any](WithInitialData(
		Pair[any]{Key: "a", Value: 1},
		Pair[any]{Key: "b", Value: 2},
	))

	// tracked on either side: counterpart comes back, nothing changes
	assert.Equal(t, 1, d.SetDefault("a", 99))
	assert.Equal(t, "a", d.SetDefault(1, 99))
	assertLenEqual(t, d, 2)

	// untracked: the default pair is appended
	assert.Equal(t, "cc", d.SetDefault("c", "cc"))
	assert.Equal(t, "dd", d.SetDefault("d", "dd"))

	assertOrderedPairsEqual(t, d,
		[]any{"a", "b", "c", "d"},
		[]any{1, 2, "cc", "dd"})
	checkInvariants(t, d)
}

func TestAddPairs(t *testing.T) {
	d := New[any]()
	d.AddPairs(
		Pair[any]{
			Key:   28,
			Value: "foo",
		},
		Pair[any]{
			Key:   12,
			Value: "bar",
		},
		Pair[any]{
			Key:   28,
			Value: "baz",
		},
	)

	assertOrderedPairsEqual(t, d,
		[]any{28, 12},
		[]any{"baz", "bar"})
	checkInvariants(t, d)
}

func TestUpdate(t *testing.T) {
	base := func() *TwoDict[string] {
		return New[string](WithInitialData(
			Pair[string]{Key: "a", Value: "1"},
			Pair[string]{Key: "b", Value: "2"},
		))
	}

	t.Run("ordered source", func(t *testing.T) {
		d := base()
		other := New[string](WithInitialData(
			Pair[string]{Key: "a", Value: "10"},
			Pair[string]{Key: "c", Value: "3"},
			Pair[string]{Key: "d", Value: "4"},
			Pair[string]{Key: "e", Value: "5"},
		))

		assert.Nil(t, d.Update(other.FromOldest()))
		assertOrderedPairsEqual(t, d,
			[]string{"a", "b", "c", "d", "e"},
			[]string{"10", "2", "3", "4", "5"})
		checkInvariants(t, d)
	})

	t.Run("from a plain map", func(t *testing.T) {
		// a single entry keeps the unordered source deterministic
		d := base()
		assert.Nil(t, d.Update(maps.All(map[string]string{"c": "3"})))
		assertOrderedPairsEqual(t, d,
			[]string{"a", "b", "c"},
			[]string{"1", "2", "3"})
	})

	t.Run("no sources", func(t *testing.T) {
		d := base()
		assert.Nil(t, d.Update())
		assertOrderedPairsEqual(t, d, []string{"a", "b"}, []string{"1", "2"})
	})

	t.Run("too many sources", func(t *testing.T) {
		d := base()
		s1 := maps.All(map[string]string{"x": "y"})
		s2 := maps.All(map[string]string{"y": "z"})

		err := d.Update(s1, s2)
		assert.Equal(t, &TooManySourcesError{Count: 2}, err)

		var tooMany *TooManySourcesError
		assert.True(t, errors.As(err, &tooMany))

		// the dict is left untouched
		assertOrderedPairsEqual(t, d, []string{"a", "b"}, []string{"1", "2"})
	})

	t.Run("source aliasing the dict", func(t *testing.T) {
		// the source's pair claims an existing key as its value
		d := base()
		other := New[string](WithInitialData(
			Pair[string]{Key: "z", Value: "a"},
		))

		assert.Nil(t, d.Update(other.FromOldest()))
		assertOrderedPairsEqual(t, d, []string{"b", "z"}, []string{"2", "a"})
		checkInvariants(t, d)
	})
}

func TestCopy(t *testing.T) {
	d := New[any](WithInitialData(
		Pair[any]{Key: "a", Value: 1},
		Pair[any]{Key: "b", Value: 2},
	))

	dc := d.Copy()
	assert.True(t, d.Equal(dc))
	assertOrderedPairsEqual(t, dc, []any{"a", "b"}, []any{1, 2})

	// the copy is independent in both content and order
	dc.Set("c", 3)
	assert.False(t, d.Equal(dc))
	assertLenEqual(t, d, 2)

	assert.Nil(t, dc.MoveToFront("c"))
	assertOrderedPairsEqual(t, d, []any{"a", "b"}, []any{1, 2})
	checkInvariants(t, d)
	checkInvariants(t, dc)
}

func TestClear(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		d := New[string]()
		d.Clear()
		assertLenEqual(t, d, 0)
	})

	t.Run("not empty", func(t *testing.T) {
		d := New[any](WithInitialData(
			Pair[any]{Key: "a", Value: 1},
			Pair[any]{Key: "b", Value: "b"},
			Pair[any]{Key: "c", Value: 3},
		))

		d.Clear()
		assertLenEqual(t, d, 0)
		assert.Equal(t, 0, d.store.slots())

		// the dict is reusable, with no trace of the old pairs
		d.Set("a", 2)
		assert.False(t, d.Has(1))
		assertOrderedPairsEqual(t, d, []any{"a"}, []any{2})
		checkInvariants(t, d)
	})
}

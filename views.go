package twodict

import (
	"fmt"
	"iter"
	"strings"
)

// Keys returns a live view of the dict's entry keys. The view reads
// through to the dict, so later mutations show up in it.
func (d *TwoDict[T]) Keys() KeysView[T] {
	return KeysView[T]{dict: d}
}

// Values returns a live view of the dict's entry values.
func (d *TwoDict[T]) Values() ValuesView[T] {
	return ValuesView[T]{dict: d}
}

// Items returns a live view of the dict's logical entries.
func (d *TwoDict[T]) Items() ItemsView[T] {
	return ItemsView[T]{dict: d}
}

// KeysView is a read-through view of a dict's entry keys, oldest first.
type KeysView[T comparable] struct {
	dict *TwoDict[T]
}

func (v KeysView[T]) Len() int {
	return v.dict.Len()
}

// Contains reports whether x is an entry key. The value side of a pair
// does not count; use TwoDict.Has for either-side membership.
func (v KeysView[T]) Contains(x T) bool {
	return v.dict.entries.has(x)
}

// All returns an iterator over the entry keys, oldest first.
func (v KeysView[T]) All() iter.Seq[T] {
	return v.dict.KeysFromOldest()
}

func (v KeysView[T]) String() string {
	return renderView("keys", v.All())
}

// ValuesView is a read-through view of a dict's entry values, oldest
// entry first.
type ValuesView[T comparable] struct {
	dict *TwoDict[T]
}

func (v ValuesView[T]) Len() int {
	return v.dict.Len()
}

// Contains reports whether x is the value side of some entry. Entry keys
// do not count unless self-paired.
func (v ValuesView[T]) Contains(x T) bool {
	owner, ok := v.dict.store.lookup(x)
	if !ok {
		return false
	}
	return v.dict.entries.has(owner)
}

// All returns an iterator over the entry values, oldest entry first.
func (v ValuesView[T]) All() iter.Seq[T] {
	return v.dict.ValuesFromOldest()
}

func (v ValuesView[T]) String() string {
	return renderView("values", v.All())
}

// ItemsView is a read-through view of a dict's logical entries, oldest
// first.
type ItemsView[T comparable] struct {
	dict *TwoDict[T]
}

func (v ItemsView[T]) Len() int {
	return v.dict.Len()
}

// Contains reports whether the dict holds exactly the entry (key, value),
// key side first. A pair addressed by its value side does not count.
func (v ItemsView[T]) Contains(key, value T) bool {
	if !v.dict.entries.has(key) {
		return false
	}
	return v.dict.Value(key) == value
}

// All returns an iterator over the entries, oldest first.
func (v ItemsView[T]) All() iter.Seq2[T, T] {
	return v.dict.FromOldest()
}

func (v ItemsView[T]) String() string {
	var sb strings.Builder
	sb.WriteString("items[")
	first := true
	for key, value := range v.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", key, value)
	}
	sb.WriteByte(']')
	return sb.String()
}

func renderView[T any](name string, seq iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('[')
	first := true
	for x := range seq {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteByte(']')
	return sb.String()
}

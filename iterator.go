package twodict

import (
	"iter"
)

// From creates a new TwoDict from an iterator over key-value pairs,
// assigning them in iteration order.
func From[T comparable](pairs iter.Seq2[T, T]) *TwoDict[T] {
	d := New[T]()
	for key, value := range pairs {
		d.Set(key, value)
	}
	return d
}

// FromOldest returns an iterator over the logical entries, oldest first.
// Each entry is yielded as its key and the value it has at yield time.
// The sequence is restartable and safe on a nil dict.
func (d *TwoDict[T]) FromOldest() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for pair := d.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// FromNewest returns an iterator over the logical entries, newest first.
func (d *TwoDict[T]) FromNewest() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for pair := d.Newest(); pair != nil; pair = pair.Prev() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// KeysFromOldest returns an iterator over the entry keys, oldest first.
// Value sides are not yielded on their own; they are reachable through
// FromOldest or ValuesFromOldest.
func (d *TwoDict[T]) KeysFromOldest() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pair := d.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key) {
				return
			}
		}
	}
}

// KeysFromNewest returns an iterator over the entry keys, newest first.
func (d *TwoDict[T]) KeysFromNewest() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pair := d.Newest(); pair != nil; pair = pair.Prev() {
			if !yield(pair.Key) {
				return
			}
		}
	}
}

// ValuesFromOldest returns an iterator over the entry values, oldest
// entry first.
func (d *TwoDict[T]) ValuesFromOldest() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pair := d.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Value) {
				return
			}
		}
	}
}

// ValuesFromNewest returns an iterator over the entry values, newest
// entry first.
func (d *TwoDict[T]) ValuesFromNewest() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pair := d.Newest(); pair != nil; pair = pair.Prev() {
			if !yield(pair.Value) {
				return
			}
		}
	}
}

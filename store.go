package twodict

// dualStore is the flat dual mapping: both sides of every pair live in one
// namespace, so for a tracked pair (k, v) it holds store[k] = v and
// store[v] = k. A self-pair (k == v) occupies a single slot. The store
// guarantees the involution invariant store[store[x]] == x as long as
// callers retract stale slots before committing new pairs; it never
// retracts on its own.
type dualStore[T comparable] map[T]T

// lookup returns the counterpart of x, addressed by either side.
func (s dualStore[T]) lookup(x T) (T, bool) {
	counterpart, ok := s[x]
	return counterpart, ok
}

func (s dualStore[T]) contains(x T) bool {
	_, ok := s[x]
	return ok
}

// slots reports the number of flat-mapping slots. This is not the logical
// entry count: a pair with distinct sides takes two slots, a self-pair one.
func (s dualStore[T]) slots() int {
	return len(s)
}

// writePair installs both directions of (k, v), overwriting whatever the
// two slots held. When k == v the second write lands on the same slot.
func (s dualStore[T]) writePair(k, v T) {
	s[k] = v
	s[v] = k
}

// eraseSide drops only the slot at x, leaving any counterpart slot alone.
// Used while untangling aliased pairs, where one side is about to be
// reused by another pair.
func (s dualStore[T]) eraseSide(x T) {
	delete(s, x)
}

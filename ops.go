package twodict

import (
	"iter"
)

// Pop removes the pair owning x, addressed by either side, and returns
// x's counterpart. It returns a *KeyNotFoundError if x is not tracked.
func (d *TwoDict[T]) Pop(x T) (T, error) {
	counterpart, ok := d.Delete(x)
	if !ok {
		return counterpart, &KeyNotFoundError[T]{x}
	}
	return counterpart, nil
}

// PopDefault is Pop with a fallback: it returns def instead of an error
// when x is not tracked.
func (d *TwoDict[T]) PopDefault(x, def T) T {
	counterpart, ok := d.Delete(x)
	if !ok {
		return def
	}
	return counterpart
}

// PopOldest removes and returns the oldest pair. It returns ErrEmpty when
// there is nothing to pop. The returned pair is detached; Next and Prev
// on it are meaningless.
func (d *TwoDict[T]) PopOldest() (Pair[T], error) {
	key, ok := d.entries.first()
	if !ok {
		return Pair[T]{}, ErrEmpty
	}
	value, _ := d.Delete(key)
	return Pair[T]{Key: key, Value: value}, nil
}

// PopNewest removes and returns the newest pair. It returns ErrEmpty when
// there is nothing to pop.
func (d *TwoDict[T]) PopNewest() (Pair[T], error) {
	key, ok := d.entries.last()
	if !ok {
		return Pair[T]{}, ErrEmpty
	}
	value, _ := d.Delete(key)
	return Pair[T]{Key: key, Value: value}, nil
}

// SetDefault returns the counterpart of x if x is tracked on either side;
// otherwise it inserts the pair (x, def) at the end and returns def.
func (d *TwoDict[T]) SetDefault(x, def T) T {
	if counterpart, ok := d.store.lookup(x); ok {
		return counterpart
	}
	d.Set(x, def)
	return def
}

// AddPairs assigns all the given pairs, in order, with Set semantics.
func (d *TwoDict[T]) AddPairs(pairs ...Pair[T]) {
	for _, pair := range pairs {
		d.Set(pair.Key, pair.Value)
	}
}

// Update assigns every pair of the given source into d with Set
// semantics, in the source's order. At most one source is accepted,
// mirroring dict.update; passing more returns a *TooManySourcesError and
// leaves d untouched. Sources built from unordered data (a plain map,
// say) feed pairs in whatever order they come, so the resulting insertion
// order is theirs to define.
func (d *TwoDict[T]) Update(sources ...iter.Seq2[T, T]) error {
	if len(sources) > 1 {
		return &TooManySourcesError{Count: len(sources)}
	}
	for _, source := range sources {
		for key, value := range source {
			d.Set(key, value)
		}
	}
	return nil
}

// Copy returns a new dict holding the same pairs in the same insertion
// order.
func (d *TwoDict[T]) Copy() *TwoDict[T] {
	out := New[T](WithCapacity[T](d.Len()))
	for key, value := range d.FromOldest() {
		out.Set(key, value)
	}
	return out
}

// Clear removes all pairs, resetting the dict to empty in O(1).
func (d *TwoDict[T]) Clear() {
	d.store = make(dualStore[T])
	d.entries.reset(0)
}

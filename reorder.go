package twodict

import (
	list "github.com/PrismAIO/generic-list-go"
)

// MoveToBack moves the pair owning x, addressed by either side, to the
// newest position. It returns a *KeyNotFoundError if x is not tracked.
func (d *TwoDict[T]) MoveToBack(x T) error {
	el, err := d.entryElement(x)
	if err != nil {
		return err
	}
	d.entries.moveToBack(el)
	return nil
}

// MoveToFront moves the pair owning x, addressed by either side, to the
// oldest position. It returns a *KeyNotFoundError if x is not tracked.
func (d *TwoDict[T]) MoveToFront(x T) error {
	el, err := d.entryElement(x)
	if err != nil {
		return err
	}
	d.entries.moveToFront(el)
	return nil
}

// MoveAfter moves the pair owning x to immediately after the pair owning
// mark. Both arguments may address their pair by either side; x and mark
// resolving to the same pair is a no-op. It returns a *KeyNotFoundError
// naming the first untracked argument.
func (d *TwoDict[T]) MoveAfter(x, mark T) error {
	el, err := d.entryElement(x)
	if err != nil {
		return err
	}
	markEl, err := d.entryElement(mark)
	if err != nil {
		return err
	}
	d.entries.moveAfter(el, markEl)
	return nil
}

// MoveBefore moves the pair owning x to immediately before the pair
// owning mark. It behaves like MoveAfter otherwise.
func (d *TwoDict[T]) MoveBefore(x, mark T) error {
	el, err := d.entryElement(x)
	if err != nil {
		return err
	}
	markEl, err := d.entryElement(mark)
	if err != nil {
		return err
	}
	d.entries.moveBefore(el, markEl)
	return nil
}

// GetAndMoveToBack combines Get with MoveToBack: it returns x's
// counterpart and moves x's pair to the newest position.
func (d *TwoDict[T]) GetAndMoveToBack(x T) (T, error) {
	el, err := d.entryElement(x)
	if err != nil {
		var zero T
		return zero, err
	}
	d.entries.moveToBack(el)
	return d.Value(x), nil
}

// GetAndMoveToFront combines Get with MoveToFront: it returns x's
// counterpart and moves x's pair to the oldest position.
func (d *TwoDict[T]) GetAndMoveToFront(x T) (T, error) {
	el, err := d.entryElement(x)
	if err != nil {
		var zero T
		return zero, err
	}
	d.entries.moveToFront(el)
	return d.Value(x), nil
}

// InsertAfter assigns value to key with full Set semantics, then moves
// the resulting entry to immediately after the pair owning mark. When
// mark is not tracked, or stops being tracked once the assignment
// resolves its collisions, the entry stays where Set left it.
func (d *TwoDict[T]) InsertAfter(mark, key, value T) {
	d.Set(key, value)
	markEl, err := d.entryElement(mark)
	if err != nil {
		return
	}
	el, _ := d.entries.element(key)
	d.entries.moveAfter(el, markEl)
}

// InsertBefore assigns value to key with full Set semantics, then moves
// the resulting entry to immediately before the pair owning mark. It
// behaves like InsertAfter otherwise.
func (d *TwoDict[T]) InsertBefore(mark, key, value T) {
	d.Set(key, value)
	markEl, err := d.entryElement(mark)
	if err != nil {
		return
	}
	el, _ := d.entries.element(key)
	d.entries.moveBefore(el, markEl)
}

// Replace substitutes the pair owning x, addressed by either side, with
// the pair (key, value) at the same position. Pairs owning key or value
// elsewhere are retracted first, the way Set retracts them. The entry is
// rebound in place rather than relinked, so a traversal standing on it
// carries on undisturbed. When x is not tracked, Replace acts as Set.
func (d *TwoDict[T]) Replace(x, key, value T) {
	el, err := d.entryElement(x)
	if err != nil {
		d.Set(key, value)
		return
	}

	// Retract the replaced pair's slots up front so the claims below
	// cannot resolve through them.
	oldKey := el.Value
	oldValue, _ := d.store.lookup(oldKey)
	d.store.eraseSide(oldValue)
	d.store.eraseSide(oldKey)

	d.Delete(key)
	d.Delete(value)

	d.entries.rebind(el, key)
	d.store.writePair(key, value)
}

// Filter keeps only the pairs for which keep returns true, preserving
// the relative order of the survivors. keep sees each pair as its entry
// key and value.
func (d *TwoDict[T]) Filter(keep func(key, value T) bool) {
	var doomed []T
	for key, value := range d.FromOldest() {
		if !keep(key, value) {
			doomed = append(doomed, key)
		}
	}
	for _, key := range doomed {
		d.Delete(key)
	}
}

// entryElement resolves either side of a tracked pair to the element of
// its one logical entry.
func (d *TwoDict[T]) entryElement(x T) (*list.Element[T], error) {
	if el, ok := d.entries.element(x); ok {
		return el, nil
	}
	if counterpart, ok := d.store.lookup(x); ok {
		if el, ok := d.entries.element(counterpart); ok {
			return el, nil
		}
	}
	return nil, &KeyNotFoundError[T]{x}
}

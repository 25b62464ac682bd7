package twodict

import (
	"fmt"
	"iter"

	list "github.com/PrismAIO/generic-list-go"
)

// entryList tracks the dict's logical entries in insertion order. Each
// entry is the key side of one tracked pair; the element payload is the
// key itself, and the index maps a key to its element so entries can be
// unlinked in O(1). The list's internal root doubles as the sentinel:
// an empty list is just Front() == Back() == nil, and elements are stable
// handles that survive unrelated mutations.
type entryList[T comparable] struct {
	order *list.List[T]
	index map[T]*list.Element[T]
}

func newEntryList[T comparable](capacity int) entryList[T] {
	return entryList[T]{
		order: list.New[T](),
		index: make(map[T]*list.Element[T], capacity),
	}
}

func (l *entryList[T]) len() int {
	return len(l.index)
}

func (l *entryList[T]) has(key T) bool {
	_, ok := l.index[key]
	return ok
}

func (l *entryList[T]) element(key T) (*list.Element[T], bool) {
	el, ok := l.index[key]
	return el, ok
}

// append links a new entry for key at the end of the order and registers
// it in the index. Appending a key that is already indexed means the
// mutation algorithm failed to retract a superseded entry first; that is
// a bug in this package, not a caller error.
func (l *entryList[T]) append(key T) *list.Element[T] {
	if _, ok := l.index[key]; ok {
		panic(fmt.Sprintf("twodict: internal error: duplicate entry for key %v", key))
	}
	el := l.order.PushBack(key)
	l.index[key] = el
	return el
}

// rebind renames an entry in place: the element keeps its position and
// identity, only the index moves from the old key to the new one. A
// traversal standing on the element is not disturbed.
func (l *entryList[T]) rebind(el *list.Element[T], newKey T) {
	delete(l.index, el.Value)
	el.Value = newKey
	l.index[newKey] = el
}

// remove unlinks key's entry and unregisters it, reporting whether an
// entry existed.
func (l *entryList[T]) remove(key T) bool {
	el, ok := l.index[key]
	if !ok {
		return false
	}
	l.order.Remove(el)
	delete(l.index, key)
	return true
}

// frontElement returns the oldest entry's element, nil when there is
// none. It tolerates a zero-value list so reads on an uninitialized dict
// stay safe.
func (l *entryList[T]) frontElement() *list.Element[T] {
	if l.order == nil {
		return nil
	}
	return l.order.Front()
}

func (l *entryList[T]) backElement() *list.Element[T] {
	if l.order == nil {
		return nil
	}
	return l.order.Back()
}

func (l *entryList[T]) first() (T, bool) {
	if el := l.frontElement(); el != nil {
		return el.Value, true
	}
	var zero T
	return zero, false
}

func (l *entryList[T]) last() (T, bool) {
	if el := l.backElement(); el != nil {
		return el.Value, true
	}
	var zero T
	return zero, false
}

// forward yields entry keys in insertion order. The traversal is lazy
// and restartable, and it walks the live links; the mid-traversal
// mutation semantics this buys are spelled out in the package
// documentation.
func (l *entryList[T]) forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for el := l.frontElement(); el != nil; el = el.Next() {
			if !yield(el.Value) {
				return
			}
		}
	}
}

// backward is forward's mirror, newest entry first.
func (l *entryList[T]) backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for el := l.backElement(); el != nil; el = el.Prev() {
			if !yield(el.Value) {
				return
			}
		}
	}
}

func (l *entryList[T]) moveToFront(el *list.Element[T]) {
	l.order.MoveToFront(el)
}

func (l *entryList[T]) moveToBack(el *list.Element[T]) {
	l.order.MoveToBack(el)
}

func (l *entryList[T]) moveAfter(el, mark *list.Element[T]) {
	l.order.MoveAfter(el, mark)
}

func (l *entryList[T]) moveBefore(el, mark *list.Element[T]) {
	l.order.MoveBefore(el, mark)
}

func (l *entryList[T]) reset(capacity int) {
	l.order = list.New[T]()
	l.index = make(map[T]*list.Element[T], capacity)
}

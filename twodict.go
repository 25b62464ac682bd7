// Package twodict implements a two-way ordered dictionary: an
// insertion-ordered map in which every key maps to its value and every
// value simultaneously maps back to its key. Both directions share one
// namespace, so a lookup resolves either side of a pair in O(1), and
// iteration walks the logical entries in the order their keys were
// inserted, like a regular ordered map.
//
// Keys and values live in the same namespace and must therefore share one
// comparable type; use TwoDict[any] to mix types the way the Python
// original mixes them (values still have to be comparable at runtime).
// The pairing is strictly one-to-one: assigning a value that is already
// tracked, on either side, retracts whatever pair owned it first.
//
// A TwoDict is not safe for concurrent use; callers that need that wrap
// it in their own synchronization. Traversals follow the live entry
// links, so mutating the dict mid-traversal is allowed: entries
// retracted before being reached are skipped, entries inserted or moved
// ahead of the current position are visited, and Replace rebinds
// entries in place so even replacing the pair currently being visited
// does not derail the walk.
package twodict

import (
	"fmt"
	"strings"

	list "github.com/PrismAIO/generic-list-go"
)

// TwoDict is a two-way ordered dictionary. The zero value is not ready
// for use; create one with New or From (decoding into a zero value with
// UnmarshalJSON or UnmarshalYAML initializes it as well).
type TwoDict[T comparable] struct {
	store   dualStore[T]
	entries entryList[T]
}

// Pair is one logical entry of the dict: the entry's key and its current
// counterpart. Pairs returned by dict lookups and traversal carry their
// position, so Next and Prev walk the insertion order hand over hand.
type Pair[T comparable] struct {
	Key   T
	Value T

	element *list.Element[T]
	dict    *TwoDict[T]
}

// Next returns the pair inserted after p, or nil when p is the newest.
func (p *Pair[T]) Next() *Pair[T] {
	if next := p.element.Next(); next != nil {
		return p.dict.pairAt(next)
	}
	return nil
}

// Prev returns the pair inserted before p, or nil when p is the oldest.
func (p *Pair[T]) Prev() *Pair[T] {
	if prev := p.element.Prev(); prev != nil {
		return p.dict.pairAt(prev)
	}
	return nil
}

const invalidOptionMessage = `when using twodict.New[T](...) with options, provide either one or several InitOption[T], or a single integer which is then interpreted as a capacity`

func invalidOption() {
	panic(invalidOptionMessage)
}

type initConfig[T comparable] struct {
	capacity    int
	initialData []Pair[T]
}

// InitOption configures a dict at construction time.
type InitOption[T comparable] func(config *initConfig[T])

// WithCapacity allocates the dict's internal maps for an expected number
// of logical entries.
func WithCapacity[T comparable](capacity int) InitOption[T] {
	return func(config *initConfig[T]) {
		config.capacity = capacity
	}
}

// WithInitialData loads the given pairs into the new dict, in argument
// order.
func WithInitialData[T comparable](pairs ...Pair[T]) InitOption[T] {
	return func(config *initConfig[T]) {
		config.initialData = pairs
		if config.capacity < len(pairs) {
			config.capacity = len(pairs)
		}
	}
}

// New creates a new TwoDict. It takes zero or more options: either one or
// several InitOption[T], or a single integer, which is then interpreted
// as a capacity hint. Any other argument panics.
func New[T comparable](options ...any) *TwoDict[T] {
	var config initConfig[T]

	for _, untypedOption := range options {
		switch option := untypedOption.(type) {
		case int:
			if len(options) != 1 {
				invalidOption()
			}
			config.capacity = option
		case InitOption[T]:
			option(&config)
		default:
			invalidOption()
		}
	}

	d := &TwoDict[T]{
		store:   make(dualStore[T], config.capacity),
		entries: newEntryList[T](config.capacity),
	}
	d.AddPairs(config.initialData...)
	return d
}

// Len returns the number of logical entries. This is not the number of
// flat-mapping slots: a pair with distinct sides is still one entry.
func (d *TwoDict[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.entries.len()
}

// Has reports whether x is tracked, as a key or as a value.
func (d *TwoDict[T]) Has(x T) bool {
	return d.store.contains(x)
}

// Get returns the counterpart of x: the value when x is a key, the key
// when x is a value. The boolean reports whether x is tracked at all.
func (d *TwoDict[T]) Get(x T) (T, bool) {
	return d.store.lookup(x)
}

// Value returns the counterpart of x, or the zero value when x is not
// tracked.
func (d *TwoDict[T]) Value(x T) T {
	counterpart, _ := d.store.lookup(x)
	return counterpart
}

// GetPair returns the logical entry owning x, addressed by either side:
// GetPair of a key and GetPair of its value return the same (key, value)
// pair. It returns nil when x is not tracked.
func (d *TwoDict[T]) GetPair(x T) *Pair[T] {
	counterpart, ok := d.store.lookup(x)
	if !ok {
		return nil
	}
	if el, ok := d.entries.element(x); ok {
		return d.pairAt(el)
	}
	el, ok := d.entries.element(counterpart)
	if !ok {
		return nil
	}
	return d.pairAt(el)
}

// Set assigns value to key, tracking the reverse direction as well. It
// returns key's previous counterpart and whether key was already tracked
// on either side.
//
// Both arguments may alias existing state: key may currently be a key, a
// value, or self-paired, and so may value. Every stale half-pair and
// superseded ordering entry is retracted before the new pair is
// committed, which yields the ordering rules of the Python original:
// re-assigning an existing key keeps its position, while a brand-new key
// is appended at the end, even when it steals its value from another
// entry (which loses its entry altogether).
func (d *TwoDict[T]) Set(key, value T) (T, bool) {
	var old T
	var present bool

	if oldValue, ok := d.store.lookup(key); ok {
		old, present = oldValue, true
		// The superseded counterpart would be orphaned if it had its
		// own entry. When key is self-paired the entry is key's own
		// and must survive the reassignment.
		if oldValue != key {
			d.entries.remove(oldValue)
		}
		// Retract the stale slot. For a self-pair this drops key's
		// slot too; the commit below rewrites it.
		d.store.eraseSide(oldValue)
	}

	if _, ok := d.store.lookup(value); ok {
		// value is being claimed away from the pair that owns it. If
		// value is itself an entry key it loses its entry, unless it
		// is key itself, which keeps its position.
		if value != key {
			d.entries.remove(value)
		}
		// And if value used to be the value side of another entry,
		// that entry and its slot go away too. reverse can never
		// equal key here: store[value] == key would have emptied
		// value's slot in the first step.
		reverse, _ := d.store.lookup(value)
		d.entries.remove(reverse)
		d.store.eraseSide(reverse)
	}

	if !d.entries.has(key) {
		d.entries.append(key)
	}

	d.store.writePair(key, value)
	return old, present
}

// Delete removes the pair owning x, addressed by either side, and returns
// x's counterpart. The boolean reports whether x was tracked.
func (d *TwoDict[T]) Delete(x T) (T, bool) {
	counterpart, ok := d.store.lookup(x)
	if !ok {
		var zero T
		return zero, false
	}

	d.entries.remove(counterpart)
	d.entries.remove(x)

	d.store.eraseSide(counterpart)
	// Already gone for a self-pair, which only ever had the one slot.
	d.store.eraseSide(x)

	return counterpart, true
}

// Oldest returns the dict's oldest pair, or nil if the dict is empty or
// nil.
func (d *TwoDict[T]) Oldest() *Pair[T] {
	if d == nil {
		return nil
	}
	if el := d.entries.frontElement(); el != nil {
		return d.pairAt(el)
	}
	return nil
}

// Newest returns the dict's newest pair, or nil if the dict is empty or
// nil.
func (d *TwoDict[T]) Newest() *Pair[T] {
	if d == nil {
		return nil
	}
	if el := d.entries.backElement(); el != nil {
		return d.pairAt(el)
	}
	return nil
}

// Equal reports whether both dicts hold the same pairs in the same
// insertion order. Two empty dicts are equal, nil dicts included.
func (d *TwoDict[T]) Equal(other *TwoDict[T]) bool {
	if d.Len() != other.Len() {
		return false
	}
	p, q := d.Oldest(), other.Oldest()
	for p != nil && q != nil {
		if p.Key != q.Key || p.Value != q.Value {
			return false
		}
		p, q = p.Next(), q.Next()
	}
	return p == nil && q == nil
}

// String renders the dict in insertion order, in the spirit of fmt's map
// formatting: twodict[k1:v1 k2:v2].
func (d *TwoDict[T]) String() string {
	if d == nil {
		return "twodict[]"
	}

	var sb strings.Builder
	sb.WriteString("twodict[")
	first := true
	for key := range d.entries.forward() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", key, d.Value(key))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (d *TwoDict[T]) pairAt(el *list.Element[T]) *Pair[T] {
	value, _ := d.store.lookup(el.Value)
	return &Pair[T]{
		Key:     el.Value,
		Value:   value,
		element: el,
		dict:    d,
	}
}

// ensureInit readies a zero-value dict for writes. The unmarshaling
// entry points use it so decoding into a fresh struct just works.
func (d *TwoDict[T]) ensureInit(capacity int) {
	if d.store == nil {
		d.store = make(dualStore[T], capacity)
	}
	if d.entries.order == nil {
		d.entries.reset(capacity)
	}
}

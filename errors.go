package twodict

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned by PopOldest and PopNewest when the dict holds no
// entries.
var ErrEmpty = errors.New("twodict: dict is empty")

// KeyNotFoundError is returned when an operation that requires its argument
// to be tracked (as a key or as a value) is given an unknown one.
type KeyNotFoundError[T comparable] struct {
	MissingKey T
}

func (e *KeyNotFoundError[T]) Error() string {
	return fmt.Sprintf("missing key: %v", e.MissingKey)
}

// TooManySourcesError is returned by Update when it is given more than one
// source; Update mirrors the at-most-one-mapping-argument contract of
// standard dict updates.
type TooManySourcesError struct {
	Count int
}

func (e *TooManySourcesError) Error() string {
	return fmt.Sprintf("twodict: update expected at most 1 source, got %d", e.Count)
}

package soa

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by checked operations. Concrete error types
// wrap these so callers can match with errors.Is.
var (
	// ErrOutOfRange reports an index or range outside the current bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrBadPermutation reports a permutation argument that is not a
	// bijection over the container's indices.
	ErrBadPermutation = errors.New("invalid permutation")
)

// IndexError reports a single position outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

// Error returns a human-readable description.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Len)
}

// Unwrap makes the error match ErrOutOfRange via errors.Is.
func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

// RangeError reports resolved bounds [Lo, Hi) that do not fit a
// container of length Len.
type RangeError struct {
	Lo  int
	Hi  int
	Len int
}

// Error returns a human-readable description.
func (e *RangeError) Error() string {
	return fmt.Sprintf("range [%d, %d) out of range for length %d", e.Lo, e.Hi, e.Len)
}

// Unwrap makes the error match ErrOutOfRange via errors.Is.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// CheckIndex returns nil if i addresses an element of a length-n
// container, or an *IndexError otherwise.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Index: i, Len: n}
	}

	return nil
}

// CheckInsertIndex is like CheckIndex but also accepts i == n, the
// append position for insert-style operations.
func CheckInsertIndex(i, n int) error {
	if i < 0 || i > n {
		return &IndexError{Index: i, Len: n}
	}

	return nil
}

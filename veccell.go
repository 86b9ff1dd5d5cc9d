package veccell

import (
	"fmt"
	"iter"
)

// VecCell is a slice-backed container whose elements can be borrowed
// independently. Each index carries its own borrow state, so holding a mutable
// guard on one element does not block access to the others. Not goroutine-safe.
type VecCell[T any] struct {
	elems   []T
	borrows []borrowState

	// Container-wide shadows of the per-index states, kept so whole-container
	// checks stay O(1).
	sharedBorrows    int
	exclusiveBorrows int
}

// New creates an empty VecCell.
func New[T any]() *VecCell[T] {
	return &VecCell[T]{}
}

// WithCapacity creates an empty VecCell with storage reserved for n elements.
// If n <= 0, no storage is reserved.
func WithCapacity[T any](n int) *VecCell[T] {
	if n <= 0 {
		return &VecCell[T]{}
	}
	return &VecCell[T]{
		elems:   make([]T, 0, n),
		borrows: make([]borrowState, 0, n),
	}
}

// FromSlice creates a VecCell that takes ownership of elems. The caller must
// not retain the slice; writes through it would bypass borrow tracking.
func FromSlice[T any](elems []T) *VecCell[T] {
	return &VecCell[T]{
		elems:   elems,
		borrows: make([]borrowState, len(elems)),
	}
}

// Collect creates a VecCell holding the elements of seq in order.
// seq must be finite.
func Collect[T any](seq iter.Seq[T]) *VecCell[T] {
	var elems []T
	for e := range seq {
		elems = append(elems, e)
	}
	return FromSlice(elems)
}

// Len returns the number of elements in the container.
func (v *VecCell[T]) Len() int {
	return len(v.elems)
}

// IsEmpty reports whether the container holds no elements.
func (v *VecCell[T]) IsEmpty() bool {
	return len(v.elems) == 0
}

// Cap returns the capacity of the backing storage.
func (v *VecCell[T]) Cap() int {
	return cap(v.elems)
}

// Get borrows the element at index shared. The returned guard reads the
// element until its Release. Fails with ErrOutOfBounds if index is not in
// [0, Len()), or with ErrAliasing if the element is exclusively borrowed.
// Shared borrows of the same index may coexist.
func (v *VecCell[T]) Get(index int) (*Ref[T], error) {
	if index < 0 || index >= len(v.elems) {
		return nil, fmt.Errorf("veccell: index %d out of range [0, %d): %w", index, len(v.elems), ErrOutOfBounds)
	}
	if v.borrows[index].exclusive() {
		return nil, fmt.Errorf("veccell: index %d is exclusively borrowed: %w", index, ErrAliasing)
	}
	v.borrows[index]++
	v.sharedBorrows++
	return &Ref[T]{index: index, vec: v}, nil
}

// GetMut borrows the element at index exclusively. The returned guard reads
// and writes the element until its Release. Fails with ErrOutOfBounds if index
// is not in [0, Len()), or with ErrAliasing if any borrow of the element is
// outstanding.
func (v *VecCell[T]) GetMut(index int) (*RefMut[T], error) {
	if index < 0 || index >= len(v.elems) {
		return nil, fmt.Errorf("veccell: index %d out of range [0, %d): %w", index, len(v.elems), ErrOutOfBounds)
	}
	if !v.borrows[index].free() {
		return nil, fmt.Errorf("veccell: index %d is already borrowed: %w", index, ErrAliasing)
	}
	v.borrows[index] = borrowExclusive
	v.exclusiveBorrows++
	return &RefMut[T]{index: index, vec: v}, nil
}

// Push appends elem. Panics if any borrow is outstanding: resizing would let
// guards observe moved storage.
func (v *VecCell[T]) Push(elem T) {
	v.assertNoBorrows("Push")
	v.elems = append(v.elems, elem)
	v.borrows = append(v.borrows, 0)
}

// Pop removes and returns the last element, or a zero value and false if the
// container is empty. Panics if any borrow is outstanding.
func (v *VecCell[T]) Pop() (T, bool) {
	v.assertNoBorrows("Pop")
	var zero T
	if len(v.elems) == 0 {
		return zero, false
	}
	last := len(v.elems) - 1
	elem := v.elems[last]
	v.elems[last] = zero // drop the reference so it can be collected
	v.elems = v.elems[:last]
	v.borrows = v.borrows[:last]
	return elem, true
}

// assertNoBorrows enforces whole-container exclusivity at runtime. Structural
// mutation with a guard outstanding is a logic error, not a recoverable
// failure.
func (v *VecCell[T]) assertNoBorrows(op string) {
	if v.sharedBorrows != 0 || v.exclusiveBorrows != 0 {
		panic(fmt.Sprintf("veccell: %s with %d shared and %d exclusive borrows outstanding",
			op, v.sharedBorrows, v.exclusiveBorrows))
	}
}

package veccell

import (
	"fmt"
	"iter"
)

// TryIter returns a sequence of the current elements in order. It fails with
// ErrAliasing while any exclusive borrow is outstanding anywhere in the
// container; shared borrows do not block it.
//
// The sequence reads the backing storage directly, skipping per-index checks.
// The caller must not acquire an exclusive borrow or resize the container
// while ranging over it. The sequence may be ranged over again after a failed
// attempt succeeds, but is not re-entrant.
func (v *VecCell[T]) TryIter() (iter.Seq[T], error) {
	if v.exclusiveBorrows != 0 {
		return nil, fmt.Errorf("veccell: %d exclusive borrows outstanding: %w", v.exclusiveBorrows, ErrAliasing)
	}
	elems := v.elems
	return func(yield func(T) bool) {
		for _, e := range elems {
			if !yield(e) {
				return
			}
		}
	}, nil
}

// IterMut returns a sequence of pointers to the elements in order, for
// in-place mutation. It requires exclusive access to the whole container and
// panics if any borrow is outstanding; with none, no other access path can
// alias the yielded pointers. The pointers are invalidated by any resize.
func (v *VecCell[T]) IterMut() iter.Seq[*T] {
	v.assertNoBorrows("IterMut")
	return func(yield func(*T) bool) {
		for i := range v.elems {
			if !yield(&v.elems[i]) {
				return
			}
		}
	}
}

// Drain empties the container and returns a sequence of its former elements by
// value in original order. Panics if any borrow is outstanding. The container
// is empty and immediately reusable after the call; elements not ranged over
// are discarded.
func (v *VecCell[T]) Drain() iter.Seq[T] {
	v.assertNoBorrows("Drain")
	elems := v.elems
	v.elems = nil
	v.borrows = nil
	return func(yield func(T) bool) {
		for _, e := range elems {
			if !yield(e) {
				return
			}
		}
	}
}

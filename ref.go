package veccell

import "fmt"

// Ref is a shared borrow of a single element. It reads the element through the
// container's backing storage; the per-index state machine guarantees no
// exclusive borrow of the same element exists while the guard is live.
//
// Release must be called exactly once. Any use after Release panics.
type Ref[T any] struct {
	index    int
	vec      *VecCell[T]
	released bool
}

// Value returns the borrowed element.
func (r *Ref[T]) Value() T {
	r.assertLive()
	return r.vec.elems[r.index]
}

// Release ends the borrow. The element's index returns to the free state once
// its last shared borrow is released.
func (r *Ref[T]) Release() {
	if r.released {
		panic("veccell: double release of shared borrow")
	}
	if !r.vec.borrows[r.index].shared() {
		panic("veccell: shared borrow state corrupted")
	}
	r.released = true
	r.vec.borrows[r.index]--
	r.vec.sharedBorrows--
}

// String formats the borrowed element with fmt.Sprint.
func (r *Ref[T]) String() string {
	return fmt.Sprint(r.Value())
}

func (r *Ref[T]) assertLive() {
	if r.released {
		panic("veccell: use of released shared borrow")
	}
}

// RefMut is an exclusive borrow of a single element. While it is live no other
// guard of any kind references the same element, so reads and writes through
// it cannot alias.
//
// Release must be called exactly once. Any use after Release panics.
type RefMut[T any] struct {
	index    int
	vec      *VecCell[T]
	released bool
}

// Value returns the borrowed element.
func (r *RefMut[T]) Value() T {
	r.assertLive()
	return r.vec.elems[r.index]
}

// Set replaces the borrowed element.
func (r *RefMut[T]) Set(elem T) {
	r.assertLive()
	r.vec.elems[r.index] = elem
}

// Ptr returns a pointer to the element inside the backing storage, for in-place
// mutation. The pointer is invalidated by Release and by any resize of the
// container; do not retain it past either.
func (r *RefMut[T]) Ptr() *T {
	r.assertLive()
	return &r.vec.elems[r.index]
}

// Release ends the borrow and returns the element's index to the free state.
func (r *RefMut[T]) Release() {
	if r.released {
		panic("veccell: double release of exclusive borrow")
	}
	r.released = true
	r.vec.borrows[r.index] = 0
	r.vec.exclusiveBorrows--
}

// String formats the borrowed element with fmt.Sprint.
func (r *RefMut[T]) String() string {
	return fmt.Sprint(r.Value())
}

func (r *RefMut[T]) assertLive() {
	if r.released {
		panic("veccell: use of released exclusive borrow")
	}
}

// Package veccell implements a slice-backed container with per-element
// runtime borrow tracking.
//
// # Overview
//
// A plain slice forces a choice: either hand out pointers to elements and give
// up any aliasing guarantees, or require exclusive access to the whole slice
// to mutate a single element. VecCell tracks borrows per index instead, so
// callers can hold mutable access to element 3 and element 7 at the same time
// while the container itself stays usable:
//
//   - Independent elements can be borrowed (shared or exclusively) at once
//   - Conflicting borrows of the same element fail with an error, not a data race
//   - Whole-container iteration is gated on no exclusive borrow existing anywhere
//
// # Basic Usage
//
//	v := veccell.FromSlice([]int{1, 2})
//
//	a, _ := v.GetMut(0)
//	b, _ := v.GetMut(1) // different index, no conflict
//	a.Set(a.Value() + 1)
//	b.Set(b.Value() + 1)
//	a.Release()
//	b.Release()
//
//	if _, err := v.GetMut(0); errors.Is(err, veccell.ErrAliasing) {
//		// element 0 is still borrowed elsewhere
//	}
//
// # Borrow Rules
//
// Get returns a shared guard: any number of shared guards may target the same
// element, but no exclusive guard can coexist with them. GetMut returns an
// exclusive guard: it requires the element to be completely unborrowed.
// Releasing a guard is the only way borrow state reverts; guards are intended
// to be released with defer in the scope that acquired them.
//
// # Iteration
//
//	seq, err := v.TryIter() // fails while any exclusive borrow is live
//	for e := range seq {
//		...
//	}
//
//	for p := range v.IterMut() { // requires no outstanding borrows
//		*p *= 2
//	}
//
//	for e := range v.Drain() { // consumes the elements
//		...
//	}
//
// # Thread Safety
//
// VecCell is not goroutine-safe. Borrow tracking is plain non-atomic state;
// the overlap it manages is temporal overlap of guard lifetimes within one
// goroutine. Synchronize externally for concurrent use.
//
// # Important Notes
//
//   - Recoverable failures (out-of-bounds index, conflicting borrow) are
//     returned as errors matching ErrOutOfBounds or ErrAliasing via errors.Is
//   - Contract violations (resizing or draining with guards outstanding, using
//     a guard after Release) are logic errors and panic
//   - Guards are only valid while the container exists and is not resized
package veccell

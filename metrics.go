package veccell

// SharedBorrows returns the number of shared guards currently outstanding
// across the whole container.
func (v *VecCell[T]) SharedBorrows() int {
	return v.sharedBorrows
}

// ExclusiveBorrows returns the number of exclusive guards currently
// outstanding across the whole container.
func (v *VecCell[T]) ExclusiveBorrows() int {
	return v.exclusiveBorrows
}

// BorrowedElems returns the number of distinct elements with at least one
// borrow of any kind outstanding. O(Len).
func (v *VecCell[T]) BorrowedElems() int {
	n := 0
	for _, s := range v.borrows {
		if !s.free() {
			n++
		}
	}
	return n
}

// Metrics returns a snapshot of container statistics.
func (v *VecCell[T]) Metrics() CellMetrics {
	return CellMetrics{
		Len:              v.Len(),
		Cap:              v.Cap(),
		SharedBorrows:    v.SharedBorrows(),
		ExclusiveBorrows: v.ExclusiveBorrows(),
		BorrowedElems:    v.BorrowedElems(),
	}
}

// CellMetrics contains statistical information about a VecCell.
type CellMetrics struct {
	Len              int // Number of elements
	Cap              int // Capacity of the backing storage
	SharedBorrows    int // Outstanding shared guards
	ExclusiveBorrows int // Outstanding exclusive guards
	BorrowedElems    int // Distinct elements with any borrow outstanding
}

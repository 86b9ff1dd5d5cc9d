package veccell

// borrowState tracks the outstanding borrows of a single index. Zero means the
// index is free, a positive value counts outstanding shared borrows, and
// borrowExclusive marks a single exclusive borrow.
type borrowState int32

const borrowExclusive borrowState = -1

func (s borrowState) free() bool      { return s == 0 }
func (s borrowState) shared() bool    { return s > 0 }
func (s borrowState) exclusive() bool { return s == borrowExclusive }

package core

// Arena owns one contiguous block of cell records and hands out
// non-overlapping sub-ranges from the front of its single free region.
// Storage is allocated once, never grown, moved, or reclaimed, so every
// Buffer ever issued stays valid for the Arena's whole lifetime. There is
// no release operation; allocation is strictly monotonic.
type Arena[T any] struct {
	cells []T
	next  int // start of the free region
}

// NewArena allocates backing storage for capacity records with one free
// region spanning the whole block.
func NewArena[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena[T]{cells: make([]T, capacity)}
}

// Cap reports the total record capacity.
func (a *Arena[T]) Cap() int { return len(a.cells) }

// Free reports how many records remain unissued.
func (a *Arena[T]) Free() int { return len(a.cells) - a.next }

// Alloc cuts n records from the front of the free region. It returns the
// null Buffer when n is not positive, exceeds the total capacity, or
// exceeds the remaining free length. A failed call leaves the free region
// unchanged.
func (a *Arena[T]) Alloc(n int) Buffer[T] {
	if n <= 0 || n > len(a.cells) || n > len(a.cells)-a.next {
		return Buffer[T]{}
	}
	b := Buffer[T]{cells: a.cells[a.next : a.next+n : a.next+n]}
	a.next += n
	return b
}

// Cells exposes the backing storage. Issued Buffers alias sub-ranges of it;
// records past the free cursor are unissued.
func (a *Arena[T]) Cells() []T { return a.cells }

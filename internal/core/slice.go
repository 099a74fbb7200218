package core

// Buffer is a non-owning view of a contiguous run of arena records. The
// zero value is the null Buffer: no backing storage, length 0.
type Buffer[T any] struct {
	cells []T
}

// Len reports the number of records in the view.
func (b Buffer[T]) Len() int { return len(b.cells) }

// IsNull reports whether the view has no backing storage.
func (b Buffer[T]) IsNull() bool { return b.cells == nil }

// Cells exposes the viewed records.
func (b Buffer[T]) Cells() []T { return b.cells }

// Slice adds bounds-checked 2-D addressing over a Buffer. Res.X*Res.Y must
// equal the Buffer length; that is the caller's contract and is not checked
// here.
type Slice[T any] struct {
	Buf Buffer[T]
	Res P
}

// Size returns the element count implied by the resolution.
func (s Slice[T]) Size() int { return s.Res.X * s.Res.Y }

// OOB reports whether p falls outside the slice resolution.
func (s Slice[T]) OOB(p P) bool {
	return p.X < 0 || p.Y < 0 || p.X >= s.Res.X || p.Y >= s.Res.Y
}

// Get returns a pointer to the record at p, or nil when the backing is null
// or p is out of bounds.
func (s Slice[T]) Get(p P) *T {
	if s.Buf.cells == nil {
		return nil
	}
	if s.OOB(p) {
		return nil
	}
	return &s.Buf.cells[Flatten(p, s.Res)]
}

// At returns a pointer to the record at linear offset i, or nil when the
// backing is null or i is out of range.
func (s Slice[T]) At(i int) *T {
	if s.Buf.cells == nil || i < 0 || i >= len(s.Buf.cells) {
		return nil
	}
	return &s.Buf.cells[i]
}

package core

import "testing"

func TestSliceRowMajorOffset(t *testing.T) {
	a := NewArena[int](16)
	s := Slice[int]{Buf: a.Alloc(16), Res: Pt(4, 4)}

	got := s.Get(Pt(2, 3))
	if got == nil {
		t.Fatal("in-bounds get returned nil")
	}
	if want := &s.Buf.Cells()[11]; got != want {
		t.Fatalf("get((2,3)) resolved to the wrong record, want linear offset 11")
	}
	if got2 := s.At(11); got2 != got {
		t.Fatal("At(11) and Get((2,3)) disagree")
	}
}

func TestSliceGetNilIffOOBOrNullBacking(t *testing.T) {
	a := NewArena[int](12)
	s := Slice[int]{Buf: a.Alloc(12), Res: Pt(3, 4)}

	for x := -2; x <= s.Res.X+1; x++ {
		for y := -2; y <= s.Res.Y+1; y++ {
			p := Pt(x, y)
			got := s.Get(p)
			if s.OOB(p) && got != nil {
				t.Fatalf("get(%v) should be nil out of bounds", p)
			}
			if !s.OOB(p) && got == nil {
				t.Fatalf("get(%v) should be non-nil in bounds", p)
			}
		}
	}

	var null Slice[int]
	null.Res = Pt(3, 4)
	if null.Get(Pt(1, 1)) != nil {
		t.Fatal("get on a null backing should be nil even in bounds")
	}
}

func TestSliceSize(t *testing.T) {
	s := Slice[byte]{Res: Pt(5, 7)}
	if s.Size() != 35 {
		t.Fatalf("size = %d, want 35", s.Size())
	}
}

func TestSliceAtBounds(t *testing.T) {
	a := NewArena[int](4)
	s := Slice[int]{Buf: a.Alloc(4), Res: Pt(2, 2)}
	if s.At(-1) != nil || s.At(4) != nil {
		t.Fatal("At outside [0, len) should be nil")
	}
	if s.At(0) == nil || s.At(3) == nil {
		t.Fatal("At inside [0, len) should be non-nil")
	}
}
